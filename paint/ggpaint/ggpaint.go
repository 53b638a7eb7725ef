// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ggpaint provides a [paint.Context] backed by a
// [github.com/gogpu/gg] drawing context.
package ggpaint

import (
	"image"

	"cogentcore.org/nanogui/base/errors"
	"cogentcore.org/nanogui/math32"
	"cogentcore.org/nanogui/paint"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

type faceKey struct {
	font paint.Font
	size float32
}

// Context is a [paint.Context] that draws through a gg context.
// Coordinates are transformed and scaled by the pixel ratio here,
// so the gg context always works in framebuffer pixels.
type Context struct {
	paint.StateStack

	// Fonts is the registry used to resolve font handles.
	Fonts *paint.Fonts

	// GG is the current gg context, reallocated by BeginFrame
	// when the framebuffer size changes.
	GG *gg.Context

	ratio   float32
	sources map[paint.Font]*text.FontSource
	faces   map[faceKey]text.Face
}

// New returns a new gg-backed context using the given font registry.
func New(fonts *paint.Fonts) *Context {
	gc := &Context{Fonts: fonts, ratio: 1}
	gc.Reset()
	return gc
}

func (gc *Context) BeginFrame(width, height int32, ratio float32) {
	if ratio <= 0 {
		ratio = 1
	}
	gc.ratio = ratio
	w, h := int(math32.Ceil(float32(width)*ratio)), int(math32.Ceil(float32(height)*ratio))
	if gc.GG == nil || gc.GG.Width() != w || gc.GG.Height() != h {
		if gc.GG != nil {
			errors.Log(gc.GG.Close())
		}
		gc.GG = gg.NewContext(w, h)
	}
	gc.GG.Clear()
	gc.GG.ClearPath()
	gc.Reset()
}

func (gc *Context) EndFrame() {
	gc.GG.ClearPath()
}

// Image returns the rendered image of the last frame.
func (gc *Context) Image() image.Image {
	if gc.GG == nil {
		return nil
	}
	return gc.GG.Image()
}

// Close releases the gg context and the loaded font sources.
func (gc *Context) Close() error {
	var errs []error
	for _, src := range gc.sources {
		errs = append(errs, src.Close())
	}
	gc.sources = nil
	gc.faces = nil
	if gc.GG != nil {
		errs = append(errs, gc.GG.Close())
		gc.GG = nil
	}
	return errors.Join(errs...)
}

func (gc *Context) device(x, y float32) (float64, float64) {
	x, y = gc.Current().Transform(x, y)
	return float64(x * gc.ratio), float64(y * gc.ratio)
}

func (gc *Context) scale(v float32) float64 {
	return float64(v * gc.ratio)
}

func (gc *Context) BeginPath() {
	gc.GG.ClearPath()
}

func (gc *Context) MoveTo(x, y float32) {
	gc.GG.MoveTo(gc.device(x, y))
}

func (gc *Context) LineTo(x, y float32) {
	gc.GG.LineTo(gc.device(x, y))
}

func (gc *Context) ClosePath() {
	gc.GG.ClosePath()
}

func (gc *Context) Rect(x, y, w, h float32) {
	dx, dy := gc.device(x, y)
	gc.GG.NewSubPath()
	gc.GG.DrawRectangle(dx, dy, gc.scale(w), gc.scale(h))
}

func (gc *Context) RoundedRect(x, y, w, h, r float32) {
	dx, dy := gc.device(x, y)
	gc.GG.NewSubPath()
	gc.GG.DrawRoundedRectangle(dx, dy, gc.scale(w), gc.scale(h), gc.scale(r))
}

func (gc *Context) Fill() {
	gc.GG.SetColor(gc.Current().Fill.NRGBA)
	errors.Log(gc.GG.FillPreserve())
}

func (gc *Context) Stroke() {
	st := gc.Current()
	gc.GG.SetColor(st.Stroke.NRGBA)
	gc.GG.SetLineWidth(gc.scale(st.Width))
	errors.Log(gc.GG.StrokePreserve())
}

// face returns the gg face for the current font at the current size in pixels.
func (gc *Context) face() text.Face {
	st := gc.Current()
	if gc.Fonts == nil || gc.Fonts.Len() == 0 {
		return nil
	}
	f := st.Font
	if f == paint.NoFont {
		f = 0
	}
	key := faceKey{f, st.Size * gc.ratio}
	if fc, ok := gc.faces[key]; ok {
		return fc
	}
	src, ok := gc.sources[f]
	if !ok {
		var err error
		src, err = text.NewFontSource(gc.Fonts.Data(f))
		if errors.Log(err) != nil {
			return nil
		}
		if gc.sources == nil {
			gc.sources = map[paint.Font]*text.FontSource{}
		}
		gc.sources[f] = src
	}
	fc := src.Face(float64(key.size))
	if gc.faces == nil {
		gc.faces = map[faceKey]text.Face{}
	}
	gc.faces[key] = fc
	return fc
}

// Advance implements [paint.Measurer].
func (gc *Context) Advance(s string) float32 {
	fc := gc.face()
	if fc == nil {
		return 0
	}
	return float32(fc.Advance(s)) / gc.ratio
}

// Metrics implements [paint.Measurer].
func (gc *Context) Metrics() paint.Metrics {
	fc := gc.face()
	if fc == nil {
		return paint.Metrics{LineHeight: gc.Current().Size}
	}
	m := fc.Metrics()
	return paint.Metrics{
		Ascent:     float32(m.Ascent) / gc.ratio,
		Descent:    float32(m.Descent) / gc.ratio,
		LineHeight: float32(m.LineHeight()) / gc.ratio,
	}
}

func (gc *Context) drawLine(x, y float32, s string) {
	fc := gc.face()
	if fc == nil {
		return
	}
	gc.GG.SetFont(fc)
	gc.GG.SetColor(gc.Current().Fill.NRGBA)
	dx, dy := gc.device(x, y)
	gc.GG.DrawString(s, dx, dy)
}

func (gc *Context) Text(x, y float32, s string) float32 {
	ln := paint.LayoutText(gc, gc.Current().Align, x, y, s)
	gc.drawLine(ln.X, ln.Y, s)
	return ln.X + ln.Width
}

func (gc *Context) TextBox(x, y, width float32, s string) {
	for _, ln := range paint.LayoutTextBox(gc, gc.Current().Align, x, y, width, s) {
		gc.drawLine(ln.X, ln.Y, ln.Text)
	}
}

func (gc *Context) TextBounds(x, y float32, s string) (float32, math32.Box2) {
	return paint.TextBounds(gc, gc.Current().Align, x, y, s)
}

func (gc *Context) TextBoxBounds(x, y, width float32, s string) math32.Box2 {
	return paint.TextBoxBounds(gc, gc.Current().Align, x, y, width, s)
}

var _ paint.Context = (*Context)(nil)
