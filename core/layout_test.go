// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"testing"

	"cogentcore.org/nanogui/math32"
	"cogentcore.org/nanogui/paint/recorder"
	"cogentcore.org/nanogui/theme"
	"github.com/stretchr/testify/assert"
)

func TestBoxLayoutDefaults(t *testing.T) {
	bl := NewBoxLayout(Vertical)
	assert.Equal(t, Vertical, bl.Orientation)
	assert.Equal(t, AlignMiddle, bl.Alignment)
	assert.Zero(t, bl.Margin)
	assert.Zero(t, bl.Spacing)
	assert.Equal(t, math32.Y, bl.Orientation.Dim())
	assert.Equal(t, math32.X, Horizontal.Dim())
}

func TestBoxLayoutPreferredSize(t *testing.T) {
	rc := recorder.New()
	c := NewWidget(nil)
	c.SetLayout(NewBoxLayout(Horizontal).SetMargin(1).SetSpacing(1))
	kid := NewWidget(c)
	kid.SetSize(math32.Vec2i(10, 10)).SetVisible(false)
	assert.Equal(t, math32.Vec2i(2, 2), c.PreferredSize(rc))

	kid.SetVisible(true)
	assert.Equal(t, math32.Vec2i(12, 12), c.PreferredSize(rc))

	kid.SetFixedSize(math32.Vec2i(5, 5))
	assert.Equal(t, math32.Vec2i(7, 7), c.PreferredSize(rc))

	// spacing only goes between visible children
	NewWidget(c).SetSize(math32.Vec2i(4, 9))
	NewWidget(c).SetSize(math32.Vec2i(4, 9)).SetVisible(false)
	assert.Equal(t, math32.Vec2i(12, 11), c.PreferredSize(rc))
}

func TestBoxLayoutNested(t *testing.T) {
	rc := recorder.New()
	a := NewWidget(nil)
	a.SetLayout(NewBoxLayout(Horizontal).SetMargin(1).SetSpacing(1))
	b := NewWidget(a)
	b.SetLayout(NewBoxLayout(Horizontal).SetMargin(1).SetSpacing(1))
	b.SetSize(math32.Vec2i(10, 10))
	NewWidget(b).SetSize(math32.Vec2i(10, 10))
	assert.Equal(t, math32.Vec2i(14, 14), a.PreferredSize(rc))
}

func TestBoxLayoutVerticalFill(t *testing.T) {
	rc := recorder.New()
	c := NewWidget(nil)
	c.SetSize(math32.Vec2i(50, 100))
	c.SetLayout(NewBoxLayout(Vertical).SetMargin(2).SetSpacing(3).SetAlignment(AlignFill))
	k1 := NewWidget(c)
	k1.SetSize(math32.Vec2i(10, 10))
	k2 := NewWidget(c)
	k2.SetSize(math32.Vec2i(20, 5))
	k3 := NewWidget(c)
	k3.SetFixedSize(math32.Vec2i(8, 0)).SetSize(math32.Vec2i(1, 4))

	c.PerformLayout(rc)
	assert.Equal(t, math32.Vec2i(2, 2), k1.Pos)
	assert.Equal(t, math32.Vec2i(50, 10), k1.Size)
	assert.Equal(t, math32.Vec2i(2, 15), k2.Pos)
	assert.Equal(t, math32.Vec2i(50, 5), k2.Size)
	assert.Equal(t, math32.Vec2i(2, 23), k3.Pos)
	assert.Equal(t, math32.Vec2i(8, 4), k3.Size)
}

func TestBoxLayoutAlignment(t *testing.T) {
	rc := recorder.New()
	c := NewWidget(nil)
	c.SetFixedSize(math32.Vec2i(100, 40)).SetSize(math32.Vec2i(1, 1))
	bl := NewBoxLayout(Horizontal).SetMargin(3).SetSpacing(2)
	c.SetLayout(bl)
	k1 := NewWidget(c)
	k1.SetSize(math32.Vec2i(10, 10))
	k2 := NewWidget(c)
	k2.SetSize(math32.Vec2i(6, 50))

	c.PerformLayout(rc)
	assert.Equal(t, math32.Vec2i(3, 15), k1.Pos)
	assert.Equal(t, math32.Vec2i(15, 0), k2.Pos, "clamped at zero")

	bl.SetAlignment(AlignMinimum)
	c.PerformLayout(rc)
	assert.Equal(t, math32.Vec2i(3, 3), k1.Pos)

	bl.SetAlignment(AlignMaximum)
	c.PerformLayout(rc)
	assert.Equal(t, math32.Vec2i(3, 27), k1.Pos)
	assert.Equal(t, math32.Vec2i(15, 0), k2.Pos)
	assert.Equal(t, math32.Vec2i(6, 50), k2.Size)
}

func TestBoxLayoutWindowHeader(t *testing.T) {
	rc := recorder.New()
	win := NewWindow(nil, "")
	win.SetLayout(NewBoxLayout(Vertical).SetMargin(4).SetAlignment(AlignMinimum))
	kid := NewWidget(win)
	kid.SetSize(math32.Vec2i(10, 10))
	assert.Equal(t, math32.Vec2i(18, 18), win.PreferredSize(rc), "no header without a theme")

	win.SetTheme(theme.Default())
	assert.Equal(t, math32.Vec2i(18, 46), win.PreferredSize(rc))

	win.SetSize(win.PreferredSize(rc))
	win.PerformLayout(rc)
	assert.Equal(t, math32.Vec2i(4, 32), kid.Pos)
}

func TestEnumText(t *testing.T) {
	var a Alignment
	assert.NoError(t, a.UnmarshalText([]byte("Fill")))
	assert.Equal(t, AlignFill, a)
	assert.Error(t, a.SetString("diagonal"))
	assert.Equal(t, "maximum", AlignMaximum.String())

	var o Orientation
	assert.NoError(t, o.UnmarshalText([]byte("vertical")))
	assert.Equal(t, Vertical, o)
	b, err := Horizontal.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "horizontal", string(b))
}
