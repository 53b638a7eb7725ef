// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"log/slog"

	"cogentcore.org/nanogui/colors"
	"cogentcore.org/nanogui/math32"
)

// State is the drawing state that is pushed and popped by
// [Context.Save] and [Context.Restore].
type State struct {

	// Offset is the current translation of the origin.
	Offset math32.Vector2

	// Font is the current font face.
	Font Font

	// Size is the current font size.
	Size float32

	// Align is the current text alignment.
	Align Align

	// Fill is the current fill color.
	Fill colors.Color

	// Stroke is the current stroke color.
	Stroke colors.Color

	// Width is the current stroke width.
	Width float32
}

// Defaults sets the state to the values at the start of a frame.
func (st *State) Defaults() {
	*st = State{
		Font:   NoFont,
		Size:   16,
		Align:  DefaultAlign,
		Fill:   colors.White,
		Stroke: colors.Black,
		Width:  1,
	}
}

// Transform returns the given point translated by the current offset.
func (st *State) Transform(x, y float32) (float32, float32) {
	return x + st.Offset.X, y + st.Offset.Y
}

// StateStack is a stack of [State] values, with the current state
// at the top. Backends embed it to implement the state parts of
// [Context].
type StateStack struct {
	stack []State
}

// Reset clears the stack down to a single default state.
func (ss *StateStack) Reset() {
	ss.stack = ss.stack[:0]
	var st State
	st.Defaults()
	ss.stack = append(ss.stack, st)
}

// Current returns the current state, which can be modified in place.
func (ss *StateStack) Current() *State {
	if len(ss.stack) == 0 {
		ss.Reset()
	}
	return &ss.stack[len(ss.stack)-1]
}

// Depth returns the number of states on the stack.
func (ss *StateStack) Depth() int {
	return len(ss.stack)
}

func (ss *StateStack) Save() {
	ss.stack = append(ss.stack, *ss.Current())
}

// Restore pops the current state. The bottom state is never popped;
// an unbalanced Restore is logged and ignored.
func (ss *StateStack) Restore() {
	if len(ss.stack) <= 1 {
		slog.Error("paint.StateStack: Restore without matching Save")
		return
	}
	ss.stack = ss.stack[:len(ss.stack)-1]
}

func (ss *StateStack) Translate(x, y float32) {
	st := ss.Current()
	st.Offset = st.Offset.Add(math32.Vec2(x, y))
}

func (ss *StateStack) FontFace(f Font)            { ss.Current().Font = f }
func (ss *StateStack) FontSize(size float32)      { ss.Current().Size = size }
func (ss *StateStack) TextAlign(align Align)      { ss.Current().Align = align }
func (ss *StateStack) FillColor(c colors.Color)   { ss.Current().Fill = c }
func (ss *StateStack) StrokeColor(c colors.Color) { ss.Current().Stroke = c }
func (ss *StateStack) StrokeWidth(width float32)  { ss.Current().Width = width }
