// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster provides a software [paint.Context] that renders
// into an [image.RGBA], using golang.org/x/image for path
// rasterization and font rendering.
package raster

import (
	"image"
	"log/slog"

	"cogentcore.org/nanogui/math32"
	"cogentcore.org/nanogui/paint"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// faceKey identifies a cached font face.
type faceKey struct {
	font paint.Font
	size float32
}

// Context is a [paint.Context] that renders into Image.
// Path and text coordinates are scaled by the pixel ratio of the frame,
// so Image is the framebuffer size times the ratio.
type Context struct {
	paint.StateStack

	// Fonts is the registry used to resolve font handles.
	Fonts *paint.Fonts

	// Image is the render target, reallocated by BeginFrame
	// when the framebuffer size changes.
	Image *image.RGBA

	ratio float32
	path  Path
	rast  vector.Rasterizer
	fonts map[paint.Font]*opentype.Font
	faces map[faceKey]font.Face
}

// New returns a new raster context using the given font registry.
// A nil registry means text is measured as empty and not drawn.
func New(fonts *paint.Fonts) *Context {
	rc := &Context{Fonts: fonts, ratio: 1}
	rc.Reset()
	return rc
}

func (rc *Context) BeginFrame(width, height int32, ratio float32) {
	if ratio <= 0 {
		ratio = 1
	}
	rc.ratio = ratio
	sz := image.Pt(int(math32.Ceil(float32(width)*ratio)), int(math32.Ceil(float32(height)*ratio)))
	if rc.Image == nil || rc.Image.Bounds().Size() != sz {
		rc.Image = image.NewRGBA(image.Rectangle{Max: sz})
	} else {
		clear(rc.Image.Pix)
	}
	rc.Reset()
	rc.path.Clear()
}

func (rc *Context) EndFrame() {
	rc.path.Clear()
}

// device returns the given point in image pixels.
func (rc *Context) device(x, y float32) (float32, float32) {
	x, y = rc.Current().Transform(x, y)
	return x * rc.ratio, y * rc.ratio
}

func (rc *Context) BeginPath() {
	rc.path.Clear()
}

func (rc *Context) MoveTo(x, y float32) {
	rc.path.MoveTo(rc.device(x, y))
}

func (rc *Context) LineTo(x, y float32) {
	rc.path.LineTo(rc.device(x, y))
}

func (rc *Context) ClosePath() {
	rc.path.Close()
}

func (rc *Context) Rect(x, y, w, h float32) {
	rc.MoveTo(x, y)
	rc.LineTo(x+w, y)
	rc.LineTo(x+w, y+h)
	rc.LineTo(x, y+h)
	rc.ClosePath()
}

func (rc *Context) RoundedRect(x, y, w, h, r float32) {
	r = math32.Min(r, math32.Min(w, h)/2)
	if r <= 0 {
		rc.Rect(x, y, w, h)
		return
	}
	rc.MoveTo(x+r, y)
	rc.LineTo(x+w-r, y)
	rc.arc(x+w-r, y+r, r, -90)
	rc.LineTo(x+w, y+h-r)
	rc.arc(x+w-r, y+h-r, r, 0)
	rc.LineTo(x+r, y+h)
	rc.arc(x+r, y+h-r, r, 90)
	rc.LineTo(x, y+r)
	rc.arc(x+r, y+r, r, 180)
	rc.ClosePath()
}

// arc adds a quarter circle around (cx, cy) starting at the given angle in degrees.
func (rc *Context) arc(cx, cy, r, start float32) {
	const steps = 8
	for i := 1; i <= steps; i++ {
		a := (start + 90*float32(i)/steps) * math32.Pi / 180
		rc.LineTo(cx+r*math32.Cos(a), cy+r*math32.Sin(a))
	}
}

func (rc *Context) Fill() {
	if rc.Image == nil || rc.path.IsEmpty() {
		return
	}
	sz := rc.Image.Bounds().Size()
	rc.rast.Reset(sz.X, sz.Y)
	rc.path.AddTo(&rc.rast)
	rc.rast.Draw(rc.Image, rc.Image.Bounds(), image.NewUniform(rc.Current().Fill.NRGBA), image.Point{})
}

func (rc *Context) Stroke() {
	st := rc.Current()
	if rc.Image == nil || rc.path.IsEmpty() || st.Width <= 0 {
		return
	}
	sz := rc.Image.Bounds().Size()
	rc.rast.Reset(sz.X, sz.Y)
	rc.path.Outline(st.Width*rc.ratio).AddTo(&rc.rast)
	rc.rast.Draw(rc.Image, rc.Image.Bounds(), image.NewUniform(st.Stroke.NRGBA), image.Point{})
}

// face returns the face for the current font at the current size in pixels.
func (rc *Context) face() font.Face {
	st := rc.Current()
	if rc.Fonts == nil || rc.Fonts.Len() == 0 {
		return nil
	}
	f := st.Font
	if f == paint.NoFont {
		f = 0
	}
	key := faceKey{f, st.Size * rc.ratio}
	if fc, ok := rc.faces[key]; ok {
		return fc
	}
	otf, ok := rc.fonts[f]
	if !ok {
		var err error
		otf, err = opentype.Parse(rc.Fonts.Data(f))
		if err != nil {
			slog.Error("paint/raster: invalid font", "font", rc.Fonts.Name(f), "err", err)
			return nil
		}
		if rc.fonts == nil {
			rc.fonts = map[paint.Font]*opentype.Font{}
		}
		rc.fonts[f] = otf
	}
	fc, err := opentype.NewFace(otf, &opentype.FaceOptions{Size: float64(key.size), DPI: 72, Hinting: font.HintingNone})
	if err != nil {
		slog.Error("paint/raster: creating face", "font", rc.Fonts.Name(f), "err", err)
		return nil
	}
	if rc.faces == nil {
		rc.faces = map[faceKey]font.Face{}
	}
	rc.faces[key] = fc
	return fc
}

func fromFixed(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// Advance implements [paint.Measurer].
func (rc *Context) Advance(s string) float32 {
	fc := rc.face()
	if fc == nil {
		return 0
	}
	return fromFixed(font.MeasureString(fc, s)) / rc.ratio
}

// Metrics implements [paint.Measurer].
func (rc *Context) Metrics() paint.Metrics {
	fc := rc.face()
	if fc == nil {
		sz := rc.Current().Size
		return paint.Metrics{LineHeight: sz}
	}
	m := fc.Metrics()
	return paint.Metrics{
		Ascent:     fromFixed(m.Ascent) / rc.ratio,
		Descent:    fromFixed(m.Descent) / rc.ratio,
		LineHeight: fromFixed(m.Height) / rc.ratio,
	}
}

// drawLine draws one line of text with its baseline start at (x, y).
func (rc *Context) drawLine(x, y float32, s string) {
	fc := rc.face()
	if fc == nil || rc.Image == nil {
		return
	}
	dx, dy := rc.device(x, y)
	d := font.Drawer{
		Dst:  rc.Image,
		Src:  image.NewUniform(rc.Current().Fill.NRGBA),
		Face: fc,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(dx * 64), Y: fixed.Int26_6(dy * 64)},
	}
	d.DrawString(s)
}

func (rc *Context) Text(x, y float32, s string) float32 {
	ln := paint.LayoutText(rc, rc.Current().Align, x, y, s)
	rc.drawLine(ln.X, ln.Y, s)
	return ln.X + ln.Width
}

func (rc *Context) TextBox(x, y, width float32, s string) {
	for _, ln := range paint.LayoutTextBox(rc, rc.Current().Align, x, y, width, s) {
		rc.drawLine(ln.X, ln.Y, ln.Text)
	}
}

func (rc *Context) TextBounds(x, y float32, s string) (float32, math32.Box2) {
	return paint.TextBounds(rc, rc.Current().Align, x, y, s)
}

func (rc *Context) TextBoxBounds(x, y, width float32, s string) math32.Box2 {
	return paint.TextBoxBounds(rc, rc.Current().Align, x, y, width, s)
}

var _ paint.Context = (*Context)(nil)
