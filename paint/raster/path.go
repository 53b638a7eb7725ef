// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"cogentcore.org/nanogui/math32"
	"golang.org/x/image/vector"
)

// subpath is a polyline, which is closed when it is filled or when
// Close was called.
type subpath struct {
	pts    []math32.Vector2
	closed bool
}

// Path is a flattened path in device coordinates.
type Path struct {
	subs []subpath
}

// Clear removes all subpaths.
func (p *Path) Clear() {
	p.subs = p.subs[:0]
}

// IsEmpty returns whether the path has no segments.
func (p *Path) IsEmpty() bool {
	for _, sp := range p.subs {
		if len(sp.pts) > 1 {
			return false
		}
	}
	return true
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float32) {
	p.subs = append(p.subs, subpath{pts: []math32.Vector2{math32.Vec2(x, y)}})
}

// LineTo adds a segment to the current subpath, starting a new one
// if there is none.
func (p *Path) LineTo(x, y float32) {
	if len(p.subs) == 0 || p.subs[len(p.subs)-1].closed {
		p.MoveTo(x, y)
		return
	}
	sp := &p.subs[len(p.subs)-1]
	sp.pts = append(sp.pts, math32.Vec2(x, y))
}

// Close closes the current subpath.
func (p *Path) Close() {
	if len(p.subs) == 0 {
		return
	}
	p.subs[len(p.subs)-1].closed = true
}

// AddTo adds the path to the rasterizer as closed polygons.
func (p *Path) AddTo(z *vector.Rasterizer) {
	for _, sp := range p.subs {
		if len(sp.pts) < 2 {
			continue
		}
		z.MoveTo(sp.pts[0].X, sp.pts[0].Y)
		for _, pt := range sp.pts[1:] {
			z.LineTo(pt.X, pt.Y)
		}
		z.ClosePath()
	}
}

// Outline returns a path that covers each segment of p widened to
// the given width, with square caps so that joins are filled.
func (p *Path) Outline(width float32) *Path {
	out := &Path{}
	hw := width / 2
	seg := func(a, b math32.Vector2) {
		d := b.Sub(a)
		l := math32.Hypot(d.X, d.Y)
		if l == 0 {
			return
		}
		t := d.MulScalar(hw / l)
		n := math32.Vec2(-t.Y, t.X)
		a = a.Sub(t)
		b = b.Add(t)
		out.MoveTo(a.X+n.X, a.Y+n.Y)
		out.LineTo(b.X+n.X, b.Y+n.Y)
		out.LineTo(b.X-n.X, b.Y-n.Y)
		out.LineTo(a.X-n.X, a.Y-n.Y)
		out.Close()
	}
	for _, sp := range p.subs {
		for i := 1; i < len(sp.pts); i++ {
			seg(sp.pts[i-1], sp.pts[i])
		}
		if sp.closed && len(sp.pts) > 2 {
			seg(sp.pts[len(sp.pts)-1], sp.pts[0])
		}
	}
	return out
}
