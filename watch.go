package main

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	errwrap "github.com/pkg/errors"
)

// watch builds once, then again every time the input is written, until ctx
// is done. Build errors are printed and do not stop the loop.
func (b *builder) watch(ctx context.Context) error {
	input, err := filepath.Abs(b.args.Input)
	if err != nil {
		return errwrap.Wrapf(err, "resolve input path")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errwrap.Wrapf(err, "could not start watcher")
	}
	defer watcher.Close()

	// the parent directory is watched so a file replaced by rename is still seen
	if err := watcher.Add(filepath.Dir(input)); err != nil {
		return errwrap.Wrapf(err, "could not watch %s", filepath.Dir(input))
	}

	b.report(b.build())
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != input {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			b.logf("%s changed, recompiling", b.args.Input)
			b.report(b.build())

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return errwrap.Wrapf(err, "watcher error")
		}
	}
}
