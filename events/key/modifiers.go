// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines keyboard modifiers, key codes and chords
// for keyboard events.
package key

import (
	"fmt"
	"strings"
)

// Modifiers are used as bitflags representing a set of modifier keys.
type Modifiers int64

const (
	// Shift is the shift key.
	Shift Modifiers = 1 << iota

	// Control is the control key.
	Control

	// Alt is the alt or option key.
	Alt

	// Meta is the system meta key (Command on macOS, Windows key on Windows).
	Meta
)

var modifierNames = []struct {
	mod  Modifiers
	name string
}{{Control, "Control"}, {Meta, "Meta"}, {Alt, "Alt"}, {Shift, "Shift"}}

// HasFlag returns whether all of the given modifiers are set.
func (m Modifiers) HasFlag(f Modifiers) bool {
	return m&f == f
}

// SetFlag sets or clears the given modifiers.
func (m *Modifiers) SetFlag(on bool, f Modifiers) {
	if on {
		*m |= f
	} else {
		*m &^= f
	}
}

// ModifiersString returns the names of the set modifiers joined by +,
// followed by a trailing + if any are set, as used in a [Chord].
func (m Modifiers) ModifiersString() string {
	s := m.String()
	if s == "" {
		return ""
	}
	return s + "+"
}

func (m Modifiers) String() string {
	var names []string
	for _, mn := range modifierNames {
		if m.HasFlag(mn.mod) {
			names = append(names, mn.name)
		}
	}
	return strings.Join(names, "+")
}

// SetString sets the modifiers from a string of names separated by + or |.
func (m *Modifiers) SetString(s string) error {
	*m = 0
	for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r == '+' || r == '|' }) {
		mod, err := modifierFromName(strings.TrimSpace(f))
		if err != nil {
			return err
		}
		*m |= mod
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (m Modifiers) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Modifiers) UnmarshalText(text []byte) error {
	return m.SetString(string(text))
}

func modifierFromName(name string) (Modifiers, error) {
	for _, mn := range modifierNames {
		if strings.EqualFold(mn.name, name) {
			return mn.mod, nil
		}
	}
	return 0, fmt.Errorf("%q is not a valid key.Modifiers name", name)
}
