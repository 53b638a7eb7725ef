// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the host input events that drive a
// widget tree, along with a lock-free event queue and per-type
// listener lists.
package events

import (
	"fmt"
	"time"

	"cogentcore.org/nanogui/events/key"
	"cogentcore.org/nanogui/math32"
)

// Event is the interface for all host input events.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types

	// Time returns the time at which the event was generated.
	Time() time.Time

	// KeyMods returns the modifier keys held down when the event was generated.
	KeyMods() key.Modifiers

	// HasPos returns whether the event has a meaningful [Event.Pos].
	HasPos() bool

	// Pos returns the position of the event in framebuffer coordinates.
	Pos() math32.Vector2i

	// IsHandled returns whether this event has already been processed.
	IsHandled() bool

	// SetHandled marks the event as having been processed,
	// which stops further listener calls.
	SetHandled()
}

// Base is the base type for events. It is embedded in all
// other event types and is used directly for [Quit] events.
type Base struct {

	// Typ is the type of event.
	Typ Types

	// GenTime records the time when the event was first generated.
	GenTime time.Time

	// Mods are the modifier keys held down during the event.
	Mods key.Modifiers

	// Where is the event location in framebuffer coordinates,
	// for events with a position.
	Where math32.Vector2i

	handled bool
}

// NewQuit returns a new [Quit] event.
func NewQuit() *Base {
	ev := &Base{Typ: Quit}
	ev.Init()
	return ev
}

// Init sets the generation time to now.
func (ev *Base) Init() {
	ev.GenTime = time.Now()
}

func (ev *Base) Type() Types {
	return ev.Typ
}

func (ev *Base) Time() time.Time {
	return ev.GenTime
}

func (ev *Base) KeyMods() key.Modifiers {
	return ev.Mods
}

func (ev *Base) HasPos() bool {
	return false
}

func (ev *Base) Pos() math32.Vector2i {
	return ev.Where
}

func (ev *Base) IsHandled() bool {
	return ev.handled
}

func (ev *Base) SetHandled() {
	ev.handled = true
}

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Time: %v}", ev.Typ, ev.GenTime.Format("04:05"))
}
