// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"cogentcore.org/nanogui/colors"
	"cogentcore.org/nanogui/math32"
)

// Context is the vector drawing capability that widgets draw into.
// Every call is made on the UI thread between BeginFrame and EndFrame.
type Context interface {

	// BeginFrame starts a new frame of the given framebuffer size,
	// resetting the state stack. ratio is the device pixel ratio.
	BeginFrame(width, height int32, ratio float32)

	// EndFrame finishes the current frame, flushing any pending output.
	EndFrame()

	// Save pushes a copy of the current state onto the stack.
	Save()

	// Restore pops the state saved by the matching Save.
	Restore()

	// Translate moves the origin of the current state.
	Translate(x, y float32)

	FontFace(f Font)
	FontSize(size float32)
	TextAlign(align Align)
	FillColor(c colors.Color)
	StrokeColor(c colors.Color)
	StrokeWidth(width float32)

	// BeginPath clears the current path.
	BeginPath()
	Rect(x, y, w, h float32)
	RoundedRect(x, y, w, h, r float32)
	MoveTo(x, y float32)
	LineTo(x, y float32)
	ClosePath()

	// Fill fills the current path with the fill color.
	Fill()

	// Stroke strokes the current path with the stroke color and width.
	Stroke()

	// Text draws s at the given point according to the text alignment,
	// returning the horizontal position where the text ends.
	Text(x, y float32, s string) float32

	// TextBox draws s word-wrapped to the given width, one line below
	// the other.
	TextBox(x, y, width float32, s string)

	// TextBounds returns the horizontal advance of s together with its
	// bounding box when drawn at the given point.
	TextBounds(x, y float32, s string) (float32, math32.Box2)

	// TextBoxBounds returns the bounding box of s as drawn by TextBox.
	TextBoxBounds(x, y, width float32, s string) math32.Box2
}

// Align is a set of text alignment flags, combining one horizontal
// and one vertical alignment.
type Align int32

const (
	// AlignLeft aligns the text start to x.
	AlignLeft Align = 1 << iota

	// AlignCenter centers the text horizontally on x.
	AlignCenter

	// AlignRight aligns the text end to x.
	AlignRight

	// AlignTop aligns the top of the text to y.
	AlignTop

	// AlignMiddle centers the text vertically on y.
	AlignMiddle

	// AlignBottom aligns the bottom of the text to y.
	AlignBottom

	// AlignBaseline aligns the baseline of the text to y.
	AlignBaseline
)

// DefaultAlign is the alignment of a freshly started frame.
const DefaultAlign = AlignLeft | AlignBaseline

// HasFlag returns whether a contains the given flag.
func (a Align) HasFlag(f Align) bool {
	return a&f != 0
}
