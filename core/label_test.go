// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"testing"

	"cogentcore.org/nanogui/colors"
	"cogentcore.org/nanogui/math32"
	"cogentcore.org/nanogui/paint"
	"cogentcore.org/nanogui/paint/recorder"
	"cogentcore.org/nanogui/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelPreferredSize(t *testing.T) {
	rc := recorder.New()
	lb := NewLabel(nil, "")
	assert.Equal(t, math32.Vector2i{}, lb.PreferredSize(rc))

	lb.SetCaption("hello")
	assert.Equal(t, math32.Vec2i(30, 12), lb.PreferredSize(rc))

	lb.SetTheme(theme.Default())
	assert.Equal(t, math32.Vec2i(40, 16), lb.PreferredSize(rc))

	lb.SetFontSize(10)
	assert.Equal(t, math32.Vec2i(25, 10), lb.PreferredSize(rc))
	assert.Equal(t, 1, rc.Depth(), "measuring restores the state")
}

func TestLabelFixedWidth(t *testing.T) {
	rc := recorder.New()
	lb := NewLabel(nil, "aa bb cc")
	lb.SetFixedSize(math32.Vec2i(20, 0))
	// three lines of 12px text
	assert.Equal(t, math32.Vec2i(20, 36), lb.PreferredSize(rc))

	rc.BeginFrame(100, 100, 1)
	lb.SetPos(math32.Vec2i(5, 5))
	lb.Draw(rc)
	assert.Equal(t, []string{"aa", "bb", "cc"}, rc.Texts())
	ops := rc.Find("Text")
	assert.InDelta(t, 5+9.6, ops[0].Args[1], 0.001)
	assert.InDelta(t, 5+9.6+12, ops[1].Args[1], 0.001)
	assert.Equal(t, paint.AlignLeft|paint.AlignTop, ops[0].State.Align)
}

func TestLabelColor(t *testing.T) {
	lb := NewLabel(nil, "x")
	assert.Equal(t, DefaultLabelColor, lb.TextColor())

	th := theme.Default()
	lb.SetTheme(th)
	assert.Equal(t, th.TextColor, lb.TextColor())

	red := colors.RGBA(255, 0, 0, 255)
	lb.SetColor(red)
	assert.Equal(t, red, lb.TextColor())
}

func TestLabelDraw(t *testing.T) {
	rc := recorder.New()
	lb := NewLabel(nil, "label")
	lb.SetPos(math32.Vec2i(10, 20)).SetSize(math32.Vec2i(30, 20))
	rc.BeginFrame(100, 100, 1)
	lb.Draw(rc)
	require.Len(t, rc.Find("Text"), 1)
	op := rc.Find("Text")[0]
	assert.Equal(t, "label", op.Text)
	assert.InDelta(t, 10, op.Args[0], 0.001)
	// vertically centered at pos.y + size.y/2
	assert.InDelta(t, 30+(9.6-2.4)/2, op.Args[1], 0.001)
	assert.Equal(t, DefaultLabelColor, op.State.Fill)
	assert.Equal(t, paint.AlignLeft|paint.AlignMiddle, op.State.Align)
	assert.Equal(t, float32(12), op.State.Size)
}

func TestLabelFont(t *testing.T) {
	fonts := paint.DefaultFonts()
	sc := NewScreen(recorder.New(), math32.Vec2i(100, 100), "fonts")
	lb := NewLabel(sc, "x")
	assert.Equal(t, paint.NoFont, lb.Font(), "no registry")

	sc.SetFonts(fonts)
	sans, _ := fonts.Font("sans")
	mono, _ := fonts.Font("mono")
	bold, _ := fonts.Font("sans-bold")
	assert.Equal(t, sans, lb.Font())

	sc.SetTheme(theme.Default())
	assert.Equal(t, sans, sc.Theme.FontNormal)
	assert.Equal(t, bold, sc.Theme.FontBold)

	lb.SetFontName("mono")
	assert.Equal(t, mono, lb.Font())
	lb.SetFontName("missing")
	assert.Equal(t, sans, lb.Font())
}
