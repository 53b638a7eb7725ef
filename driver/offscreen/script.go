// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"cogentcore.org/nanogui/base/fsx"
	"cogentcore.org/nanogui/base/iox/tomlx"
	"cogentcore.org/nanogui/base/iox/yamlx"
	"cogentcore.org/nanogui/core"
	"cogentcore.org/nanogui/events"
	"cogentcore.org/nanogui/events/key"
	"cogentcore.org/nanogui/math32"
	"cogentcore.org/nanogui/theme"
)

// Script is a sequence of input steps, loaded from a TOML or YAML file:
//
//	steps:
//	  - {type: mouse-move, pos: [20, 12]}
//	  - {type: mouse-down, button: left, pos: [20, 12]}
//	  - {type: key-char, text: hello}
//	  - {wait: 600ms, snapshot: tooltip.png}
type Script struct {
	Steps []Step
}

// Step is one step of a [Script]. It waits, sends the events of its
// type, draws a frame and optionally saves it.
type Step struct {

	// Type is the type of the events. A step without a type
	// only waits, draws and saves.
	Type events.Types

	// Pos is the mouse position of mouse and scroll events.
	Pos [2]int32

	// Button is the button of mouse events.
	Button events.Buttons

	// Mods are the modifier keys held down.
	Mods key.Modifiers

	// Delta is the offset of scroll events.
	Delta [2]float32

	// Key is the key code of key-down and key-up events.
	Key key.Codes

	// Text is the text of key-char events, sent as one
	// event per rune.
	Text string

	// Size is the framebuffer size of window-resize events.
	Size [2]int32

	// Wait is a duration, like "500ms", that the host clock is
	// advanced by before the events are sent.
	Wait string

	// Snapshot is an image file that the frame is saved to
	// after the events are handled.
	Snapshot string
}

// OpenScript opens the script in the given TOML or YAML file.
func OpenScript(filename string) (*Script, error) {
	fm, err := theme.FormatFromFilename(filename)
	if err != nil {
		return nil, fmt.Errorf("offscreen: unsupported script file %q", filename)
	}
	fsys, fname, err := fsx.DirFS(filename)
	if err != nil {
		return nil, err
	}
	s := &Script{}
	switch fm {
	case theme.TOML:
		err = tomlx.OpenFS(s, fsys, fname)
	default:
		err = yamlx.OpenFS(s, fsys, fname)
	}
	if err != nil {
		return nil, fmt.Errorf("offscreen: opening script %q: %w", filename, err)
	}
	return s, nil
}

// ReadScript reads a script in the given format from r.
func ReadScript(r io.Reader, fm theme.Format) (*Script, error) {
	s := &Script{}
	var err error
	switch fm {
	case theme.TOML:
		err = tomlx.Read(s, r)
	case theme.YAML:
		err = yamlx.Read(s, r)
	default:
		return nil, fmt.Errorf("offscreen: unknown script format %q", fm)
	}
	if err != nil {
		return nil, fmt.Errorf("offscreen: reading script: %w", err)
	}
	return s, nil
}

// Events returns the events of the step.
func (st *Step) Events() []events.Event {
	pos := math32.Vec2i(st.Pos[0], st.Pos[1])
	switch st.Type {
	case events.MouseDown, events.MouseUp, events.MouseMove:
		return []events.Event{events.NewMouse(st.Type, st.Button, pos, st.Mods)}
	case events.Scroll:
		return []events.Event{events.NewScroll(pos, math32.Vec2(st.Delta[0], st.Delta[1]), st.Mods)}
	case events.KeyDown, events.KeyUp:
		return []events.Event{events.NewKey(st.Type, st.Key, st.Mods)}
	case events.KeyChar:
		var evs []events.Event
		for _, r := range st.Text {
			evs = append(evs, events.NewKeyChar(r, st.Mods))
		}
		return evs
	case events.WindowResize:
		return []events.Event{events.NewWindowResize(math32.Vec2i(st.Size[0], st.Size[1]))}
	case events.Quit:
		return []events.Event{events.NewQuit()}
	}
	return nil
}

// Play runs the steps of the script, one frame per step, logging
// changes of the hovered and focused widgets. It stops early when
// the screen quits.
func (h *Host) Play(s *Script) error {
	var hover, focus core.Widget
	for i := range s.Steps {
		st := &s.Steps[i]
		if st.Wait != "" {
			d, err := time.ParseDuration(st.Wait)
			if err != nil {
				return fmt.Errorf("offscreen: step %d: %w", i, err)
			}
			h.Advance(d)
		}
		for _, ev := range st.Events() {
			h.Send(ev)
		}
		h.Step()
		if w := h.Screen.FindWidget(h.Screen.MousePos); w != hover {
			hover = w
			slog.Info("hover", "step", i, "widget", widgetPath(w))
		}
		if f := h.focused(); f != focus {
			focus = f
			slog.Info("focus", "step", i, "widget", widgetPath(f))
		}
		if st.Snapshot != "" {
			if err := h.SavePNG(st.Snapshot); err != nil {
				return err
			}
		}
		if h.Screen.IsQuit() {
			slog.Debug("offscreen: screen quit", "step", i)
			break
		}
	}
	return nil
}

// focused returns the deepest focused widget, or nil.
func (h *Host) focused() core.Widget {
	if len(h.Screen.FocusPath) == 0 {
		return nil
	}
	return h.Screen.FocusPath[0]
}

func widgetPath(w core.Widget) string {
	if w == nil {
		return ""
	}
	return w.AsTree().Path()
}
