// Package config loads the globals declaration file.
package config

import (
	"os"
	"slices"

	"github.com/hashicorp/go-multierror"
	errwrap "github.com/pkg/errors"
	"github.com/thiremani/graphtex/types"
	"gopkg.in/yaml.v2"
)

// File is the yaml layout of a globals file:
//
//	globals:
//	  x: Number
//	  xs: List
type File struct {
	Globals map[string]string `yaml:"globals"`
}

// Parse decodes data into the file structure. Unknown keys are rejected.
func (f *File) Parse(data []byte) error {
	if err := yaml.UnmarshalStrict(data, f); err != nil {
		return errwrap.Wrapf(err, "could not parse globals file")
	}
	return nil
}

// Types resolves every declared type name. All unknown names are reported,
// in name order.
func (f *File) Types() (map[string]types.ValType, error) {
	names := make([]string, 0, len(f.Globals))
	for name := range f.Globals {
		names = append(names, name)
	}
	slices.Sort(names)

	var result error
	out := make(map[string]types.ValType, len(names))
	for _, name := range names {
		t, err := types.ParseValType(f.Globals[name])
		if err != nil {
			result = multierror.Append(result, errwrap.Wrapf(err, "global %q", name))
			continue
		}
		out[name] = t
	}
	if result != nil {
		return nil, result
	}
	return out, nil
}

// LoadGlobals reads the globals file at path. An empty path means no
// globals.
func LoadGlobals(path string) (map[string]types.ValType, error) {
	if path == "" {
		return map[string]types.ValType{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errwrap.Wrapf(err, "could not read globals file")
	}
	var f File
	if err := f.Parse(data); err != nil {
		return nil, errwrap.Wrapf(err, "%s", path)
	}
	return f.Types()
}
