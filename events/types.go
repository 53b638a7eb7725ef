// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"strings"
)

// Types determines the type of host input event. Each type has
// a corresponding concrete event struct: [Mouse] for mouse buttons
// and motion, [MouseScroll] for scrolling, [Key] for keyboard events,
// [Resize] for [WindowResize], and [Base] for [Quit].
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down.
	MouseDown

	// MouseUp happens when a mouse button is released.
	MouseUp

	// MouseMove is sent whenever the mouse moves, whether or not
	// a button is held down.
	MouseMove

	// Scroll is for scroll wheel or other scrolling events.
	Scroll

	// KeyDown is when a key is pressed down.
	KeyDown

	// KeyUp is when a key is released.
	KeyUp

	// KeyChar is sent with the unicode character produced by
	// a key press, after any modifier translation.
	KeyChar

	// WindowResize happens when the framebuffer has been resized.
	WindowResize

	// Quit is sent when the host window is asked to close.
	Quit

	typesN
)

var typeNames = [...]string{"unknown", "mouse-down", "mouse-up", "mouse-move", "scroll",
	"key-down", "key-up", "key-char", "window-resize", "quit"}

// TypesValues returns all possible values of the event type.
func TypesValues() []Types {
	vals := make([]Types, typesN)
	for i := range vals {
		vals[i] = Types(i)
	}
	return vals
}

func (tp Types) String() string {
	if tp < 0 || tp >= typesN {
		return fmt.Sprintf("Types(%d)", int32(tp))
	}
	return typeNames[tp]
}

// SetString sets the type from its name, as returned by String.
func (tp *Types) SetString(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range typeNames {
		if n == s {
			*tp = Types(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type events.Types", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (tp Types) MarshalText() ([]byte, error) {
	return []byte(tp.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (tp *Types) UnmarshalText(text []byte) error {
	return tp.SetString(string(text))
}
