// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Box2 represents a 2D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vector2{x0, y0}, Vector2{x1, y1}}
}

// Size returns the size of this bounding box.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// IsEmpty returns whether the box has no area.
func (b Box2) IsEmpty() bool {
	return b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y
}

// Union returns the smallest box containing both this box and other.
func (b Box2) Union(other Box2) Box2 {
	return Box2{b.Min.Min(other.Min), b.Max.Max(other.Max)}
}

// Translate returns this box moved by the given offset.
func (b Box2) Translate(off Vector2) Box2 {
	return Box2{b.Min.Add(off), b.Max.Add(off)}
}

// ContainsPoint returns whether the given point is inside this box,
// using half-open bounds.
func (b Box2) ContainsPoint(p Vector2) bool {
	return p.X >= b.Min.X && p.X < b.Max.X && p.Y >= b.Min.Y && p.Y < b.Max.Y
}
