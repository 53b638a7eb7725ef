// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// DebounceDelay is how long a [Watcher] waits after the last change
// to a file before reporting it, since editors often write a file
// in several steps.
var DebounceDelay = 100 * time.Millisecond

// Watcher reports changes to a set of files. The directories of the
// files are watched rather than the files themselves, so that files
// which are replaced by a rename are still followed.
type Watcher struct {
	watcher *fsnotify.Watcher
	files   map[string]bool
	changed chan string
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewWatcher returns a new watcher for the given files, which
// need not exist yet, although their directories must.
func NewWatcher(files ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		watcher: fw,
		files:   map[string]bool{},
		changed: make(chan string, len(files)+1),
		done:    make(chan struct{}),
	}
	dirs := map[string]bool{}
	for _, f := range files {
		fp, err := homedir.Expand(f)
		if err == nil {
			fp, err = filepath.Abs(fp)
		}
		if err != nil {
			fw.Close()
			return nil, err
		}
		w.files[fp] = true
		dir := filepath.Dir(fp)
		if dirs[dir] {
			continue
		}
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, err
		}
		dirs[dir] = true
	}
	w.wg.Add(1)
	go w.watch()
	return w, nil
}

// Changed returns the channel on which the absolute paths of changed
// files are sent.
func (w *Watcher) Changed() <-chan string {
	return w.changed
}

// Close stops watching and closes the Changed channel.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) watch() {
	defer w.wg.Done()
	defer close(w.changed)
	pending := map[string]bool{}
	timer := time.NewTimer(DebounceDelay)
	timer.Stop()
	for {
		select {
		case <-w.done:
			timer.Stop()
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !w.files[name] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending[name] = true
			timer.Reset(DebounceDelay)
		case <-timer.C:
			for name := range pending {
				select {
				case w.changed <- name:
				case <-w.done:
					return
				}
			}
			clear(pending)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("fsx.Watcher: " + err.Error())
		}
	}
}
