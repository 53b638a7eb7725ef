// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cursors defines the standard mouse cursor shapes that a
// widget can request while the mouse is over it. Showing the cursor
// is the job of the host.
package cursors

import (
	"fmt"
	"strings"
)

// Cursor is a mouse cursor shape hint.
type Cursor int32

const (
	// Arrow is the normal arrow cursor.
	Arrow Cursor = iota

	// IBeam is the text editing cursor.
	IBeam

	// Crosshair is a precise selection cursor.
	Crosshair

	// Hand is a pointing hand, typically for links and buttons.
	Hand

	// HResize is a horizontal resize cursor.
	HResize

	// VResize is a vertical resize cursor.
	VResize

	cursorsN
)

var cursorNames = [...]string{"arrow", "ibeam", "crosshair", "hand", "hresize", "vresize"}

// Values returns all possible values of the cursor type.
func Values() []Cursor {
	vals := make([]Cursor, cursorsN)
	for i := range vals {
		vals[i] = Cursor(i)
	}
	return vals
}

func (c Cursor) String() string {
	if c < 0 || c >= cursorsN {
		return fmt.Sprintf("Cursor(%d)", int32(c))
	}
	return cursorNames[c]
}

// SetString sets the cursor from its case insensitive name.
func (c *Cursor) SetString(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range cursorNames {
		if n == s {
			*c = Cursor(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type cursors.Cursor", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (c Cursor) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Cursor) UnmarshalText(text []byte) error {
	return c.SetString(string(text))
}
