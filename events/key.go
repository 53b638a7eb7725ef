// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"cogentcore.org/nanogui/events/key"
)

// Key is a low-level immediately generated key event, tracking press
// and release of keys, and the characters they produce.
type Key struct {
	Base

	// Code is the identity of the physical key.
	Code key.Codes

	// Rune is the unicode character generated by the key,
	// for [KeyChar] events.
	Rune rune
}

// NewKey returns a new [KeyDown] or [KeyUp] event.
func NewKey(typ Types, code key.Codes, mods key.Modifiers) *Key {
	ev := &Key{}
	ev.Typ = typ
	ev.Init()
	ev.Code = code
	ev.Mods = mods
	return ev
}

// NewKeyChar returns a new [KeyChar] event for the given character.
func NewKeyChar(r rune, mods key.Modifiers) *Key {
	ev := NewKey(KeyChar, key.CodeFromRune(r), mods)
	ev.Rune = r
	return ev
}

// Chord returns the key chord of the event.
func (ev *Key) Chord() key.Chord {
	return key.NewChord(ev.Rune, ev.Code, ev.Mods)
}

func (ev *Key) String() string {
	return fmt.Sprintf("%v{Chord: %v, Rune: %d, Hex: %X, Mods: %v, Time: %v}", ev.Type(), ev.Chord(), ev.Rune, ev.Rune, ev.Mods.ModifiersString(), ev.Time().Format("04:05"))
}
