// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"strings"
	"unicode"

	"cogentcore.org/nanogui/math32"
)

// Metrics are the vertical metrics of a font face at a given size.
// Ascent and Descent are both positive distances from the baseline.
type Metrics struct {
	Ascent     float32
	Descent    float32
	LineHeight float32
}

// Measurer measures text in the current font of a backend.
type Measurer interface {

	// Advance returns the horizontal advance of s.
	Advance(s string) float32

	// Metrics returns the vertical metrics of the current face.
	Metrics() Metrics
}

// Line is one laid out line of text, with the pen position of
// its baseline.
type Line struct {
	Text  string
	X, Y  float32
	Width float32
}

// Baseline returns the offset from the alignment point to the
// baseline for the vertical flags of a.
func (a Align) Baseline(m Metrics) float32 {
	switch {
	case a.HasFlag(AlignTop):
		return m.Ascent
	case a.HasFlag(AlignMiddle):
		return (m.Ascent - m.Descent) / 2
	case a.HasFlag(AlignBottom):
		return -m.Descent
	}
	return 0
}

// Horizontal returns the offset from the alignment point to the
// start of a run of the given width, for the horizontal flags of a.
func (a Align) Horizontal(width float32) float32 {
	switch {
	case a.HasFlag(AlignCenter):
		return -width / 2
	case a.HasFlag(AlignRight):
		return -width
	}
	return 0
}

// LayoutText returns the single line of s aligned at (x, y).
func LayoutText(m Measurer, align Align, x, y float32, s string) Line {
	w := m.Advance(s)
	return Line{Text: s, X: x + align.Horizontal(w), Y: y + align.Baseline(m.Metrics()), Width: w}
}

// TextBounds returns the advance of s and its bounding box when aligned at (x, y).
func TextBounds(m Measurer, align Align, x, y float32, s string) (float32, math32.Box2) {
	ln := LayoutText(m, align, x, y, s)
	return ln.Width, ln.Bounds(m.Metrics())
}

// Bounds returns the bounding box of the line.
func (ln *Line) Bounds(m Metrics) math32.Box2 {
	return math32.B2(ln.X, ln.Y-m.Ascent, ln.X+ln.Width, ln.Y+m.Descent)
}

// LayoutTextBox word-wraps s to the given width and returns its lines.
// Each line is aligned horizontally within [x, x+width]; the first
// line is aligned vertically at y and the others follow at the line height.
func LayoutTextBox(m Measurer, align Align, x, y, width float32, s string) []Line {
	met := m.Metrics()
	rows := WrapText(m, s, width)
	lines := make([]Line, len(rows))
	by := y + align.Baseline(met)
	for i, r := range rows {
		w := m.Advance(r)
		lx := x
		switch {
		case align.HasFlag(AlignCenter):
			lx += (width - w) / 2
		case align.HasFlag(AlignRight):
			lx += width - w
		}
		lines[i] = Line{Text: r, X: lx, Y: by + float32(i)*met.LineHeight, Width: w}
	}
	return lines
}

// TextBoxBounds returns the union of the bounds of the lines of
// the text box. An empty text has the bounds of one empty line.
func TextBoxBounds(m Measurer, align Align, x, y, width float32, s string) math32.Box2 {
	met := m.Metrics()
	lines := LayoutTextBox(m, align, x, y, width, s)
	if len(lines) == 0 {
		ln := Line{X: x, Y: y + align.Baseline(met)}
		return ln.Bounds(met)
	}
	bb := lines[0].Bounds(met)
	for i := 1; i < len(lines); i++ {
		bb = bb.Union(lines[i].Bounds(met))
	}
	return bb
}

// WrapText breaks s into lines no wider than width, breaking at
// spaces. Explicit newlines always break. A single word that is
// wider than width is put on its own line.
func WrapText(m Measurer, s string, width float32) []string {
	var lines []string
	for para := range strings.SplitSeq(s, "\n") {
		words := strings.FieldsFunc(para, unicode.IsSpace)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		cur := words[0]
		for _, w := range words[1:] {
			try := cur + " " + w
			if m.Advance(try) <= width {
				cur = try
				continue
			}
			lines = append(lines, cur)
			cur = w
		}
		lines = append(lines, cur)
	}
	return lines
}
