// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"log/slog"

	"cogentcore.org/nanogui/base/fsx"
)

// Watcher reloads a theme file whenever it changes on disk.
// Reloaded themes are delivered on [Watcher.Updates] and are meant to
// be installed by the UI thread; the watcher never touches widgets.
type Watcher struct {
	filename string
	fw       *fsx.Watcher
	updates  chan *Theme
}

// Watch starts watching the given theme file.
func Watch(filename string) (*Watcher, error) {
	if _, err := FormatFromFilename(filename); err != nil {
		return nil, err
	}
	fw, err := fsx.NewWatcher(filename)
	if err != nil {
		return nil, err
	}
	w := &Watcher{filename: filename, fw: fw, updates: make(chan *Theme, 1)}
	go w.run()
	return w, nil
}

// Updates returns the channel on which reloaded themes are sent.
// Only the most recent theme is kept when the receiver falls behind.
// The channel is closed by [Watcher.Close].
func (w *Watcher) Updates() <-chan *Theme {
	return w.updates
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fw.Close()
}

func (w *Watcher) run() {
	defer close(w.updates)
	for range w.fw.Changed() {
		t, err := Open(w.filename)
		if err != nil {
			slog.Error("theme.Watcher: " + err.Error())
			continue
		}
		slog.Info("theme reloaded", "file", w.filename)
		select {
		case <-w.updates:
		default:
		}
		w.updates <- t
	}
}
