package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseValType(t *testing.T) {
	for _, name := range ReservedTypeNames() {
		vt, err := ParseValType(name)
		require.NoError(t, err)
		require.Equal(t, name, vt.String())
		require.True(t, IsReservedTypeName(name))
	}

	_, err := ParseValType("Str")
	require.Error(t, err)
	require.Contains(t, err.Error(), `"Str"`)
	require.False(t, IsReservedTypeName("Str"))
}

func TestTypesStr(t *testing.T) {
	require.Equal(t, "", TypesStr(nil))
	require.Equal(t, "Number, List", TypesStr([]ValType{Number, List}))
}
