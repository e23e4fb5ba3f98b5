package main

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	errwrap "github.com/pkg/errors"
)

const lockSuffix = ".lock"

// writeOutput replaces the contents of path with text. The file lock at
// path+".lock" is held for the whole write, and the new contents are moved
// into place by rename, so readers see either the old or the new output.
func writeOutput(path, text string) error {
	lock := flock.New(path + lockSuffix)
	if err := lock.Lock(); err != nil {
		return errwrap.Wrapf(err, "acquire output lock")
	}
	defer lock.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errwrap.Wrapf(err, "create temporary output")
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return errwrap.Wrapf(err, "write %s", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return errwrap.Wrapf(err, "close %s", tmp.Name())
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return errwrap.Wrapf(err, "chmod %s", tmp.Name())
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errwrap.Wrapf(err, "move output into place")
	}
	return nil
}
