// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"strings"

	"cogentcore.org/nanogui/events/key"
	"cogentcore.org/nanogui/math32"
)

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right

	buttonsN
)

var buttonNames = [...]string{"none", "left", "middle", "right"}

func (bt Buttons) String() string {
	if bt < 0 || bt >= buttonsN {
		return fmt.Sprintf("Buttons(%d)", int32(bt))
	}
	return buttonNames[bt]
}

// SetString sets the button from its case insensitive name.
func (bt *Buttons) SetString(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range buttonNames {
		if n == s {
			*bt = Buttons(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type events.Buttons", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (bt Buttons) MarshalText() ([]byte, error) {
	return []byte(bt.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (bt *Buttons) UnmarshalText(text []byte) error {
	return bt.SetString(string(text))
}

// Mouse is a basic mouse event for all mouse events except Scroll
type Mouse struct {
	Base

	// Button is the button that changed state for [MouseDown]
	// and [MouseUp], and the button held down for [MouseMove].
	Button Buttons
}

// NewMouse returns a new [MouseDown] or [MouseUp] event.
func NewMouse(typ Types, but Buttons, where math32.Vector2i, mods key.Modifiers) *Mouse {
	ev := &Mouse{}
	ev.Typ = typ
	ev.Init()
	ev.Button = but
	ev.Where = where
	ev.Mods = mods
	return ev
}

// NewMouseMove returns a new [MouseMove] event.
func NewMouseMove(but Buttons, where math32.Vector2i, mods key.Modifiers) *Mouse {
	return NewMouse(MouseMove, but, where, mods)
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Mods: %v, Time: %v}", ev.Type(), ev.Button, ev.Where, ev.Mods.ModifiersString(), ev.Time().Format("04:05"))
}

func (ev *Mouse) HasPos() bool {
	return true
}

// MouseScroll is for mouse scrolling, recording the delta of the scroll
type MouseScroll struct {
	Mouse

	// Delta is the amount of scrolling in each axis.
	Delta math32.Vector2
}

// NewScroll returns a new [Scroll] event.
func NewScroll(where math32.Vector2i, delta math32.Vector2, mods key.Modifiers) *MouseScroll {
	ev := &MouseScroll{}
	ev.Typ = Scroll
	ev.Init()
	ev.Where = where
	ev.Delta = delta
	ev.Mods = mods
	return ev
}

func (ev *MouseScroll) String() string {
	return fmt.Sprintf("%v{Delta: %v, Pos: %v, Mods: %v, Time: %v}", ev.Type(), ev.Delta, ev.Where, ev.Mods.ModifiersString(), ev.Time().Format("04:05"))
}
