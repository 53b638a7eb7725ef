// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2(t *testing.T) {
	v := Vec2(1.5, -2)
	assert.Equal(t, float32(1.5), v.Dim(X))
	assert.Equal(t, float32(-2), v.Dim(Y))
	assert.Panics(t, func() { v.Dim(Dims(2)) })

	assert.Equal(t, Vec2(2.5, 0), v.Add(Vec2(1, 2)))
	assert.Equal(t, Vec2(0.5, -4), v.Sub(Vec2(1, 2)))
	assert.Equal(t, Vec2(3, -4), v.MulScalar(2))
	assert.Equal(t, Vec2(1.5, 0), v.Max(Vec2(0, 0)))
	assert.Equal(t, Vec2(0, -2), v.Min(Vec2(0, 0)))
	assert.Equal(t, Vec2(2, -2), v.Ceil())
	assert.Equal(t, Vec2i(2, -2), v.ToVector2i())
	assert.Equal(t, "(1.5, -2)", v.String())
}

func TestBox2(t *testing.T) {
	b := B2(1, 2, 11, 7)
	assert.Equal(t, Vec2(10, 5), b.Size())
	assert.False(t, b.IsEmpty())
	assert.True(t, B2(0, 0, 0, 5).IsEmpty())

	assert.True(t, b.ContainsPoint(Vec2(1, 2)))
	assert.False(t, b.ContainsPoint(Vec2(11, 3)), "the max edge is outside")

	assert.Equal(t, B2(0, 2, 11, 9), b.Union(B2(0, 4, 3, 9)))
	assert.Equal(t, B2(2, 4, 12, 9), b.Translate(Vec2(1, 2)))
}

func TestMath(t *testing.T) {
	assert.Equal(t, float32(3), Abs(-3))
	assert.Equal(t, float32(2), Ceil(1.2))
	assert.Equal(t, float32(1), Floor(1.8))
	assert.InDelta(t, 5, Hypot(3, 4), 1e-6)
	assert.Equal(t, 4, Clamp(7, 0, 4))
	assert.Equal(t, int32(0), ClampZero(int32(-3)))
	assert.Equal(t, float32(2), ClampZero(float32(2)))
	assert.Equal(t, Y, OtherDim(X))
	assert.Equal(t, "X", X.String())
}
