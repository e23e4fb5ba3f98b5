package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	errwrap "github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/thiremani/graphtex/types"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "globals.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadGlobals(t *testing.T) {
	path := writeFile(t, "globals:\n  x: Number\n  xs: List\n")

	globals, err := LoadGlobals(path)
	require.NoError(t, err)
	require.Equal(t, map[string]types.ValType{"x": types.Number, "xs": types.List}, globals)
}

func TestLoadGlobalsEmptyPath(t *testing.T) {
	globals, err := LoadGlobals("")
	require.NoError(t, err)
	require.Empty(t, globals)
}

func TestLoadGlobalsEmptyFile(t *testing.T) {
	globals, err := LoadGlobals(writeFile(t, ""))
	require.NoError(t, err)
	require.Empty(t, globals)
}

func TestLoadGlobalsMissingFile(t *testing.T) {
	_, err := LoadGlobals(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "could not read globals file")
	require.True(t, os.IsNotExist(errwrap.Cause(err)))
}

func TestLoadGlobalsUnknownTypes(t *testing.T) {
	path := writeFile(t, "globals:\n  b: Matrix\n  a: Vector\n  c: Number\n")

	_, err := LoadGlobals(path)
	require.Error(t, err)
	msg := err.Error()
	require.Contains(t, msg, `global "a": unknown type name "Vector"`)
	require.Contains(t, msg, `global "b": unknown type name "Matrix"`)
	require.Less(t, strings.Index(msg, `"a"`), strings.Index(msg, `"b"`))
}

func TestLoadGlobalsStrict(t *testing.T) {
	path := writeFile(t, "globals:\n  x: Number\nlocals:\n  y: List\n")

	_, err := LoadGlobals(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "could not parse globals file")
}
