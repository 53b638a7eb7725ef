// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package recorder provides a [paint.Context] that records the drawing
// operations made on it instead of rendering them. Text is measured
// with fixed metrics that only depend on the font size, so results
// are the same on every platform. It is mainly used in tests.
package recorder

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"cogentcore.org/nanogui/colors"
	"cogentcore.org/nanogui/math32"
	"cogentcore.org/nanogui/paint"
)

const (
	// CharWidth is the advance of one rune, as a fraction of the font size.
	CharWidth = 0.5

	// Ascent is the ascent, as a fraction of the font size.
	Ascent = 0.8

	// Descent is the descent, as a fraction of the font size.
	Descent = 0.2
)

// Op is one recorded drawing operation. Coordinates in Args are in
// frame space, after applying the current translation.
type Op struct {

	// Kind is the name of the [paint.Context] method, such as "Rect" or "Text".
	Kind string

	// Args are the numeric arguments.
	Args []float32

	// Text is the text drawn by a "Text" operation.
	Text string

	// State is the drawing state when the operation was made.
	State paint.State
}

func (op Op) String() string {
	var b strings.Builder
	b.WriteString(op.Kind)
	for _, a := range op.Args {
		fmt.Fprintf(&b, " %g", a)
	}
	if op.Text != "" {
		fmt.Fprintf(&b, " %q", op.Text)
	}
	return b.String()
}

// Recorder is a recording [paint.Context].
type Recorder struct {
	paint.StateStack

	// Ops are the operations recorded since the last BeginFrame.
	Ops []Op

	// Frames is the number of completed frames.
	Frames int

	// Size is the framebuffer size of the current frame.
	Size math32.Vector2i

	// Ratio is the pixel ratio of the current frame.
	Ratio float32
}

// New returns a new recorder.
func New() *Recorder {
	rc := &Recorder{}
	rc.Reset()
	return rc
}

func (rc *Recorder) record(kind string, text string, args ...float32) {
	rc.Ops = append(rc.Ops, Op{Kind: kind, Args: args, Text: text, State: *rc.Current()})
}

func (rc *Recorder) BeginFrame(width, height int32, ratio float32) {
	rc.Reset()
	rc.Ops = rc.Ops[:0]
	rc.Size = math32.Vec2i(width, height)
	rc.Ratio = ratio
	rc.record("BeginFrame", "", float32(width), float32(height), ratio)
}

func (rc *Recorder) EndFrame() {
	rc.record("EndFrame", "")
	rc.Frames++
}

func (rc *Recorder) BeginPath() {
	rc.record("BeginPath", "")
}

func (rc *Recorder) Rect(x, y, w, h float32) {
	x, y = rc.Current().Transform(x, y)
	rc.record("Rect", "", x, y, w, h)
}

func (rc *Recorder) RoundedRect(x, y, w, h, r float32) {
	x, y = rc.Current().Transform(x, y)
	rc.record("RoundedRect", "", x, y, w, h, r)
}

func (rc *Recorder) MoveTo(x, y float32) {
	x, y = rc.Current().Transform(x, y)
	rc.record("MoveTo", "", x, y)
}

func (rc *Recorder) LineTo(x, y float32) {
	x, y = rc.Current().Transform(x, y)
	rc.record("LineTo", "", x, y)
}

func (rc *Recorder) ClosePath() {
	rc.record("ClosePath", "")
}

func (rc *Recorder) Fill() {
	rc.record("Fill", "")
}

func (rc *Recorder) Stroke() {
	rc.record("Stroke", "")
}

// Advance implements [paint.Measurer].
func (rc *Recorder) Advance(s string) float32 {
	return float32(utf8.RuneCountInString(s)) * rc.Current().Size * CharWidth
}

// Metrics implements [paint.Measurer].
func (rc *Recorder) Metrics() paint.Metrics {
	sz := rc.Current().Size
	return paint.Metrics{Ascent: sz * Ascent, Descent: sz * Descent, LineHeight: sz}
}

func (rc *Recorder) Text(x, y float32, s string) float32 {
	st := rc.Current()
	ln := paint.LayoutText(rc, st.Align, x, y, s)
	tx, ty := st.Transform(ln.X, ln.Y)
	rc.record("Text", s, tx, ty)
	return ln.X + ln.Width
}

func (rc *Recorder) TextBox(x, y, width float32, s string) {
	st := rc.Current()
	for _, ln := range paint.LayoutTextBox(rc, st.Align, x, y, width, s) {
		tx, ty := st.Transform(ln.X, ln.Y)
		rc.record("Text", ln.Text, tx, ty)
	}
}

func (rc *Recorder) TextBounds(x, y float32, s string) (float32, math32.Box2) {
	return paint.TextBounds(rc, rc.Current().Align, x, y, s)
}

func (rc *Recorder) TextBoxBounds(x, y, width float32, s string) math32.Box2 {
	return paint.TextBoxBounds(rc, rc.Current().Align, x, y, width, s)
}

// Kinds returns the kinds of the recorded operations, in order.
func (rc *Recorder) Kinds() []string {
	kinds := make([]string, len(rc.Ops))
	for i, op := range rc.Ops {
		kinds[i] = op.Kind
	}
	return kinds
}

// Find returns the recorded operations of the given kind.
func (rc *Recorder) Find(kind string) []Op {
	var ops []Op
	for _, op := range rc.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}

// Texts returns the strings drawn since the last BeginFrame.
func (rc *Recorder) Texts() []string {
	var txt []string
	for _, op := range rc.Find("Text") {
		txt = append(txt, op.Text)
	}
	return txt
}

// Fills returns the fill colors used by Fill operations.
func (rc *Recorder) Fills() []colors.Color {
	var cs []colors.Color
	for _, op := range rc.Find("Fill") {
		cs = append(cs, op.State.Fill)
	}
	return cs
}

func (rc *Recorder) String() string {
	var b strings.Builder
	for _, op := range rc.Ops {
		b.WriteString(op.String())
		b.WriteByte('\n')
	}
	return b.String()
}

var _ paint.Context = (*Recorder)(nil)
