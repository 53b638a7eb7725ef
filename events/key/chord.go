// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Chord represents the key chord associated with a given key function.
// It is a string of modifier names separated by +, followed by
// either a single typed character or a key code name, for example
// "a", "Control+A" or "Shift+Tab".
type Chord string

// NewChord returns a string representation of the keyboard event suitable
// for keyboard function maps, etc. Printable runes are sent directly, and
// non-printable ones are converted to their corresponding code names.
func NewChord(r rune, code Codes, mods Modifiers) Chord {
	if r != 0 {
		return Chord(mods.ModifiersString() + string(r))
	}
	return Chord(mods.ModifiersString() + code.String())
}

// Decode decodes a chord string into rune and modifiers (set as bit flags)
func (ch Chord) Decode() (r rune, code Codes, mods Modifiers, err error) {
	cs := string(ch)
	if cs == "" {
		return 0, CodeUnknown, 0, errors.New("key.Chord.Decode: empty chord")
	}
	parts := strings.Split(cs, "+")
	last := parts[len(parts)-1]
	if last == "" && len(parts) > 1 { // "Control++"
		last = "+"
		parts = parts[:len(parts)-1]
	}
	for _, p := range parts[:len(parts)-1] {
		mod, err := modifierFromName(p)
		if err != nil {
			return 0, CodeUnknown, 0, err
		}
		mods |= mod
	}
	if utf8.RuneCountInString(last) == 1 {
		r, _ = utf8.DecodeRuneInString(last)
		return r, CodeFromRune(r), mods, nil
	}
	err = code.SetString(last)
	return 0, code, mods, err
}

func (ch Chord) String() string {
	return string(ch)
}
