// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"testing"

	"cogentcore.org/nanogui/events"
	"cogentcore.org/nanogui/math32"
	"cogentcore.org/nanogui/paint/recorder"
	"cogentcore.org/nanogui/theme"
	"github.com/stretchr/testify/assert"
)

func TestWindowPreferredSize(t *testing.T) {
	rc := recorder.New()
	win := NewWindow(nil, "abcd")
	win.SetTheme(theme.Default())
	win.SetLayout(NewBoxLayout(Vertical).SetMargin(4))
	NewWidget(win).SetSize(math32.Vec2i(10, 10))
	// layout: (18, 46); title: 4 runes at 18px plus 20
	assert.Equal(t, math32.Vec2i(56, 46), win.PreferredSize(rc))

	win.SetTitle("")
	assert.Equal(t, math32.Vec2i(18, 46), win.PreferredSize(rc))
}

func TestWindowDraw(t *testing.T) {
	rc := recorder.New()
	th := theme.Default()
	win := NewWindow(nil, "title")
	win.SetPos(math32.Vec2i(10, 10)).SetSize(math32.Vec2i(100, 80))
	lb := NewLabel(win, "child")
	lb.SetPos(math32.Vec2i(5, 40)).SetSize(math32.Vec2i(30, 10))

	rc.BeginFrame(200, 200, 1)
	win.Draw(rc)
	assert.Equal(t, []string{"child"}, rc.Texts(), "no chrome without a theme")

	win.SetTheme(th)
	rc.BeginFrame(200, 200, 1)
	win.Draw(rc)
	assert.Equal(t, []string{"title", "child"}, rc.Texts())
	fills := rc.Fills()
	if assert.Len(t, fills, 3) {
		assert.Equal(t, th.DropShadow, fills[0])
		assert.Equal(t, th.WindowFillUnfocused, fills[1])
	}
	// children are drawn in the frame of the window
	child := rc.Find("Text")[1]
	assert.InDelta(t, 15, child.Args[0], 0.001)
	title := rc.Find("Text")[0]
	assert.Equal(t, th.WindowTitleUnfocused, title.State.Fill)
	assert.Equal(t, 1, rc.Depth())
}

func TestWindowCenter(t *testing.T) {
	sc := NewScreen(recorder.New(), math32.Vec2i(200, 100), "center")
	win := NewWindow(sc, "")
	win.SetLayout(NewBoxLayout(Vertical))
	NewWidget(win).SetSize(math32.Vec2i(40, 20))
	win.Center()
	assert.Equal(t, math32.Vec2i(40, 20), win.Size)
	assert.Equal(t, math32.Vec2i(80, 40), win.Pos)

	big := NewWindow(sc, "")
	big.SetSize(math32.Vec2i(300, 50))
	big.Center()
	assert.Equal(t, math32.Vec2i(0, 25), big.Pos)
}

func TestWindowDrag(t *testing.T) {
	parent := NewWidget(nil)
	parent.SetSize(math32.Vec2i(200, 200))
	win := NewWindow(parent, "drag")
	win.SetTheme(theme.Default())
	win.SetPos(math32.Vec2i(20, 20)).SetSize(math32.Vec2i(100, 100))

	// press in the body does not start a drag, but is consumed
	assert.True(t, win.MouseButtonEvent(math32.Vec2i(30, 80), events.Left, true, 0))
	assert.False(t, win.Drag)
	assert.False(t, win.MouseDragEvent(math32.Vec2i(35, 85), math32.Vec2i(5, 5), events.Left, 0))

	assert.True(t, win.MouseButtonEvent(math32.Vec2i(30, 30), events.Left, true, 0))
	assert.True(t, win.Drag)
	assert.False(t, win.MouseDragEvent(math32.Vec2i(35, 35), math32.Vec2i(5, 5), events.Right, 0))
	assert.True(t, win.MouseDragEvent(math32.Vec2i(35, 35), math32.Vec2i(5, 5), events.Left, 0))
	assert.Equal(t, math32.Vec2i(25, 25), win.Pos)

	// clamped within the parent
	win.MouseDragEvent(math32.Vec2i(0, 0), math32.Vec2i(500, -500), events.Left, 0)
	assert.Equal(t, math32.Vec2i(100, 0), win.Pos)

	win.MouseButtonEvent(math32.Vec2i(110, 10), events.Left, false, 0)
	assert.False(t, win.Drag)
}
