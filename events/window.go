// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"cogentcore.org/nanogui/math32"
)

// Resize is a [WindowResize] event, reporting a new framebuffer size.
type Resize struct {
	Base

	// Size is the new framebuffer size in pixels.
	Size math32.Vector2i
}

// NewWindowResize returns a new [WindowResize] event.
func NewWindowResize(size math32.Vector2i) *Resize {
	ev := &Resize{}
	ev.Typ = WindowResize
	ev.Init()
	ev.Size = size
	return ev
}

func (ev *Resize) String() string {
	return fmt.Sprintf("%v{Size: %v, Time: %v}", ev.Type(), ev.Size, ev.Time().Format("04:05"))
}
