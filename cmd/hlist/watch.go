package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/ayn2op/hlist/internal/fixture"
	"github.com/fsnotify/fsnotify"
	"github.com/go-logr/logr"
)

// reloadDelay coalesces the bursts of events editors produce on save.
const reloadDelay = 100 * time.Millisecond

// watchItems calls reload with the freshly parsed document whenever the file
// at path changes, until ctx is done. Files that fail to parse are logged and
// skipped so a half-written file never replaces the tree.
func watchItems(ctx context.Context, path string, log logr.Logger, reload func(fixture.Document)) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	// The directory is watched because editors replace files with renames.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}
	log.V(1).Info("watching", "path", path)

	timer := time.NewTimer(reloadDelay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			timer.Reset(reloadDelay)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Error(err, "watcher")
		case <-timer.C:
			doc, err := fixture.Load(path)
			if err != nil {
				log.Error(err, "reload skipped", "path", path)
				continue
			}
			log.V(1).Info("reloaded", "path", path)
			reload(doc)
		}
	}
}
