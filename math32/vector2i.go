// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"
)

// Vector2i is a 2D vector/point with X and Y int32 components.
// Widget positions and sizes are Vector2i values.
type Vector2i struct {
	X int32
	Y int32
}

// Vec2i returns a new [Vector2i] with the given x and y components.
func Vec2i(x, y int32) Vector2i {
	return Vector2i{X: x, Y: y}
}

// Vector2iScalar returns a new [Vector2i] with all components set to the given scalar value.
func Vector2iScalar(s int32) Vector2i {
	return Vector2i{X: s, Y: s}
}

// FromPoint returns a new [Vector2i] from the given [image.Point].
func FromPoint(pt image.Point) Vector2i {
	return Vector2i{int32(pt.X), int32(pt.Y)}
}

// Set sets this vector X and Y components.
func (v *Vector2i) Set(x, y int32) {
	v.X = x
	v.Y = y
}

// SetDim sets this vector component value by dimension index.
func (v *Vector2i) SetDim(dim Dims, value int32) {
	switch dim {
	case X:
		v.X = value
	case Y:
		v.Y = value
	default:
		panic("dim is out of range")
	}
}

// Dim returns this vector component
func (v Vector2i) Dim(dim Dims) int32 {
	switch dim {
	case X:
		return v.X
	case Y:
		return v.Y
	default:
		panic("dim is out of range")
	}
}

// IsZero returns whether both components are zero.
func (v Vector2i) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Add adds other vector to this one and returns result in a new vector.
func (v Vector2i) Add(other Vector2i) Vector2i {
	return Vector2i{v.X + other.X, v.Y + other.Y}
}

// AddScalar adds scalar s to each component of this vector and returns new vector.
func (v Vector2i) AddScalar(s int32) Vector2i {
	return Vector2i{v.X + s, v.Y + s}
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector2i) Sub(other Vector2i) Vector2i {
	return Vector2i{v.X - other.X, v.Y - other.Y}
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector2i) MulScalar(s int32) Vector2i {
	return Vector2i{v.X * s, v.Y * s}
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
func (v Vector2i) DivScalar(s int32) Vector2i {
	return Vector2i{v.X / s, v.Y / s}
}

// Max returns a vector with the maximum components of this vector and other.
func (v Vector2i) Max(other Vector2i) Vector2i {
	return Vector2i{max(v.X, other.X), max(v.Y, other.Y)}
}

// Min returns a vector with the minimum components of this vector and other.
func (v Vector2i) Min(other Vector2i) Vector2i {
	return Vector2i{min(v.X, other.X), min(v.Y, other.Y)}
}

// Clamp returns a vector with each component clamped to the
// corresponding components of minv and maxv.
func (v Vector2i) Clamp(minv, maxv Vector2i) Vector2i {
	return Vector2i{Clamp(v.X, minv.X, maxv.X), Clamp(v.Y, minv.Y, maxv.Y)}
}

// ToVector2 returns the [Vector2] (float32) version of this vector.
func (v Vector2i) ToVector2() Vector2 {
	return Vector2{float32(v.X), float32(v.Y)}
}

// ToPoint returns the [image.Point] version of this vector.
func (v Vector2i) ToPoint() image.Point {
	return image.Point{int(v.X), int(v.Y)}
}

func (v Vector2i) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}
