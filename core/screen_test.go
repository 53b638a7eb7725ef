// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"testing"
	"time"

	"cogentcore.org/nanogui/cursors"
	"cogentcore.org/nanogui/events"
	"cogentcore.org/nanogui/events/key"
	"cogentcore.org/nanogui/math32"
	"cogentcore.org/nanogui/paint/recorder"
	"cogentcore.org/nanogui/theme"
	"cogentcore.org/nanogui/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spy is a widget that records the events it receives.
type spy struct {
	WidgetBase
	consume bool
	keys    []key.Codes
	chars   []rune
	scrolls []math32.Vector2
	focus   []bool
}

func (sp *spy) KeyboardEvent(code key.Codes, down bool, mods key.Modifiers) bool {
	if down {
		sp.keys = append(sp.keys, code)
	}
	return sp.consume
}

func (sp *spy) KeyboardCharacterEvent(r rune) bool {
	sp.chars = append(sp.chars, r)
	return sp.consume
}

func (sp *spy) ScrollEvent(p math32.Vector2i, rel math32.Vector2) bool {
	sp.scrolls = append(sp.scrolls, rel)
	return true
}

func (sp *spy) FocusEvent(focused bool) bool {
	sp.focus = append(sp.focus, focused)
	return sp.WidgetBase.FocusEvent(focused)
}

func newSpy(parent tree.Node, pos, size math32.Vector2i) *spy {
	sp := tree.New[spy](parent)
	sp.SetPos(pos).SetSize(size)
	return sp
}

// testScreen returns a themed 200x200 screen holding a window at
// (10, 10) of size 100x100 with a label at (10, 40) of size 30x10.
func testScreen() (*Screen, *Window, *Label, *recorder.Recorder) {
	rc := recorder.New()
	sc := NewScreen(rc, math32.Vec2i(200, 200), "test")
	sc.SetTheme(theme.Default())
	win := NewWindow(sc, "win")
	win.SetPos(math32.Vec2i(10, 10)).SetSize(math32.Vec2i(100, 100))
	lb := NewLabel(win, "hi")
	lb.SetPos(math32.Vec2i(10, 40)).SetSize(math32.Vec2i(30, 10))
	return sc, win, lb, rc
}

func press(sc *Screen, x, y int32, down bool) bool {
	typ := events.MouseUp
	if down {
		typ = events.MouseDown
	}
	return sc.HandleEvent(events.NewMouse(typ, events.Left, math32.Vec2i(x, y), 0))
}

func TestScreenDefaults(t *testing.T) {
	sc := NewScreen(nil, math32.Vec2i(64, 32), "caption")
	assert.Equal(t, "caption", sc.Caption)
	assert.Equal(t, math32.Vec2i(64, 32), sc.Size)
	assert.Equal(t, math32.Vec2i(64, 32), sc.FramebufferSize)
	assert.Equal(t, float32(1), sc.PixelRatio)
	assert.Equal(t, DefaultBackground, sc.Background)
	assert.True(t, sc.Visible)
	assert.False(t, sc.IsQuit())
	assert.Equal(t, sc, sc.Screen())

	sc.SetPixelRatio(2)
	assert.Equal(t, math32.Vec2i(32, 16), sc.Size)
	sc.DrawWidgets() // no context
	sc.UpdateLayout()
}

func TestScreenFocusPath(t *testing.T) {
	sc, win, lb, _ := testScreen()
	assert.True(t, press(sc, 25, 55, true))
	assert.True(t, lb.Focused)
	assert.True(t, win.Focused)
	assert.True(t, sc.Focused)
	require.Len(t, sc.FocusPath, 3)
	assert.Equal(t, Widget(lb), sc.FocusPath[0])
	assert.Equal(t, Widget(sc), sc.FocusPath[2])
	assert.True(t, sc.DragActive)
	assert.Equal(t, Widget(lb), sc.DragWidget)

	press(sc, 25, 55, false)
	assert.False(t, sc.DragActive)
	assert.Nil(t, sc.DragWidget)

	// focusing another window defocuses the old path
	win2 := NewWindow(sc, "win2")
	win2.SetPos(math32.Vec2i(120, 10)).SetSize(math32.Vec2i(50, 50))
	press(sc, 130, 50, true)
	press(sc, 130, 50, false)
	assert.False(t, lb.Focused)
	assert.False(t, win.Focused)
	assert.True(t, win2.Focused)
	assert.True(t, sc.Focused)
	assert.Equal(t, []Widget{win2, sc}, sc.FocusPath)

	// the focused window is moved to the front
	press(sc, 50, 15, true)
	press(sc, 50, 15, false)
	assert.Equal(t, tree.Node(win), sc.Children[len(sc.Children)-1])
	assert.True(t, win.Focused)
	assert.False(t, win2.Focused)
}

func TestScreenFocusEvents(t *testing.T) {
	sc := NewScreen(recorder.New(), math32.Vec2i(100, 100), "focus")
	a := newSpy(sc, math32.Vec2i(0, 0), math32.Vec2i(50, 50))
	b := newSpy(sc, math32.Vec2i(50, 0), math32.Vec2i(50, 50))
	a.RequestFocus()
	a.RequestFocus()
	assert.Equal(t, []bool{true}, a.focus, "no repeated focus events")
	b.RequestFocus()
	assert.Equal(t, []bool{true, false}, a.focus)
	assert.Equal(t, []bool{true}, b.focus)

	// clicking the empty screen clears the focus of widgets
	c := newSpy(sc, math32.Vec2i(0, 60), math32.Vec2i(10, 10))
	c.SetVisible(false)
	press(sc, 5, 65, true)
	assert.Equal(t, []bool{true, false}, b.focus)
	assert.Equal(t, []Widget{sc}, sc.FocusPath)
	assert.True(t, sc.Focused)
}

func TestScreenWindowDrag(t *testing.T) {
	sc, win, _, _ := testScreen()
	press(sc, 50, 15, true)
	assert.True(t, win.Drag)
	assert.Equal(t, Widget(win), sc.DragWidget)
	sc.HandleEvent(events.NewMouseMove(events.Left, math32.Vec2i(60, 25), 0))
	assert.Equal(t, math32.Vec2i(20, 20), win.Pos)
	assert.Equal(t, math32.Vec2i(60, 25), sc.MousePos)
	press(sc, 60, 25, false)
	assert.False(t, win.Drag)
	sc.HandleEvent(events.NewMouseMove(events.NoButton, math32.Vec2i(70, 35), 0))
	assert.Equal(t, math32.Vec2i(20, 20), win.Pos)
}

func TestScreenNestedWindowDrag(t *testing.T) {
	sc := NewScreen(recorder.New(), math32.Vec2i(200, 200), "nested")
	panel := NewWidget(sc)
	panel.SetPos(math32.Vec2i(20, 20)).SetSize(math32.Vec2i(160, 160))
	win := NewWindow(panel, "")
	win.SetPos(math32.Vec2i(10, 10)).SetSize(math32.Vec2i(80, 80))
	sc.SetTheme(theme.Default())

	assert.True(t, press(sc, 50, 35, true))
	assert.True(t, win.Drag)
	assert.True(t, sc.DragActive)
	assert.Equal(t, Widget(win), sc.DragWidget)
	assert.True(t, win.Focused)

	sc.HandleEvent(events.NewMouseMove(events.Left, math32.Vec2i(60, 45), 0))
	assert.Equal(t, math32.Vec2i(20, 20), win.Pos)
	assert.Equal(t, math32.Vec2i(40, 40), win.AbsolutePosition())

	// the window stays inside its parent
	sc.HandleEvent(events.NewMouseMove(events.Left, math32.Vec2i(260, 45), 0))
	assert.Equal(t, math32.Vec2i(80, 20), win.Pos)

	press(sc, 130, 45, false)
	assert.False(t, win.Drag)
	assert.False(t, sc.DragActive)
	sc.HandleEvent(events.NewMouseMove(events.NoButton, math32.Vec2i(140, 55), 0))
	assert.Equal(t, math32.Vec2i(80, 20), win.Pos)

	// a press below the title bar does not drag
	press(sc, 130, 100, true)
	assert.False(t, win.Drag)
	sc.HandleEvent(events.NewMouseMove(events.Left, math32.Vec2i(120, 90), 0))
	assert.Equal(t, math32.Vec2i(80, 20), win.Pos)
}

func TestScreenMouseEnter(t *testing.T) {
	sc, win, lb, _ := testScreen()
	lb.SetCursor(cursors.IBeam)
	sc.HandleEvent(events.NewMouseMove(events.NoButton, math32.Vec2i(25, 55), 0))
	assert.True(t, win.MouseFocus)
	assert.True(t, lb.MouseFocus)
	assert.Equal(t, cursors.IBeam, sc.CurrentCursor)

	sc.HandleEvent(events.NewMouseMove(events.NoButton, math32.Vec2i(60, 90), 0))
	assert.True(t, win.MouseFocus)
	assert.False(t, lb.MouseFocus)
	assert.Equal(t, cursors.Arrow, sc.CurrentCursor)

	sc.HandleEvent(events.NewMouseMove(events.NoButton, math32.Vec2i(150, 150), 0))
	assert.False(t, win.MouseFocus)
}

func TestScreenKeyboard(t *testing.T) {
	sc := NewScreen(recorder.New(), math32.Vec2i(100, 100), "keys")
	outer := newSpy(sc, math32.Vec2i(0, 0), math32.Vec2i(100, 100))
	inner := newSpy(outer, math32.Vec2i(10, 10), math32.Vec2i(20, 20))

	assert.False(t, sc.HandleEvent(events.NewKey(events.KeyDown, key.CodeA, 0)), "nothing focused")

	inner.RequestFocus()
	outer.consume = true
	assert.True(t, sc.HandleEvent(events.NewKey(events.KeyDown, key.CodeA, key.Shift)))
	assert.Equal(t, []key.Codes{key.CodeA}, inner.keys)
	assert.Equal(t, []key.Codes{key.CodeA}, outer.keys)
	assert.Equal(t, key.Shift, sc.Modifiers)

	inner.consume = true
	assert.True(t, sc.HandleEvent(events.NewKeyChar('x', 0)))
	assert.Equal(t, []rune{'x'}, inner.chars)
	assert.Empty(t, outer.chars)

	assert.True(t, sc.HandleEvent(events.NewKey(events.KeyUp, key.CodeA, 0)))
	assert.Len(t, inner.keys, 1)
}

func TestScreenListeners(t *testing.T) {
	sc := NewScreen(recorder.New(), math32.Vec2i(100, 100), "listen")
	sp := newSpy(sc, math32.Vec2i(0, 0), math32.Vec2i(100, 100))
	sp.RequestFocus()
	var seen []events.Types
	sc.On(events.KeyChar, func(ev events.Event) {
		seen = append(seen, ev.Type())
		if ev.(*events.Key).Rune == 'q' {
			ev.SetHandled()
		}
	})
	assert.True(t, sc.HandleEvent(events.NewKeyChar('q', 0)))
	assert.Empty(t, sp.chars)
	sc.HandleEvent(events.NewKeyChar('w', 0))
	assert.Equal(t, []rune{'w'}, sp.chars)
	assert.Len(t, seen, 2)
}

func TestScreenScroll(t *testing.T) {
	sc := NewScreen(recorder.New(), math32.Vec2i(100, 100), "scroll")
	sp := newSpy(sc, math32.Vec2i(50, 50), math32.Vec2i(50, 50))
	assert.False(t, sc.HandleEvent(events.NewScroll(math32.Vec2i(10, 10), math32.Vec2(0, 1), 0)))
	assert.True(t, sc.HandleEvent(events.NewScroll(math32.Vec2i(60, 60), math32.Vec2(0, -2), 0)))
	assert.Equal(t, []math32.Vector2{math32.Vec2(0, -2)}, sp.scrolls)
	assert.Equal(t, math32.Vec2i(60, 60), sc.MousePos)
}

func TestScreenModal(t *testing.T) {
	sc, win, _, _ := testScreen()
	modal := NewWindow(sc, "modal")
	modal.SetModal(true).SetPos(math32.Vec2i(120, 120)).SetSize(math32.Vec2i(50, 50))
	modal.RequestFocus()
	assert.True(t, modal.Focused)

	assert.False(t, press(sc, 50, 50, true))
	assert.False(t, win.Focused)
	assert.True(t, modal.Focused)

	assert.True(t, press(sc, 130, 160, true))
	assert.True(t, modal.Focused)
}

func TestScreenResizeQuit(t *testing.T) {
	sc := NewScreen(recorder.New(), math32.Vec2i(100, 100), "resize")
	win := NewWindow(sc, "")
	win.SetLayout(NewBoxLayout(Horizontal).SetMargin(2))
	NewWidget(win).SetSize(math32.Vec2i(10, 10))

	sc.SetPixelRatio(2)
	assert.True(t, sc.HandleEvent(events.NewWindowResize(math32.Vec2i(300, 200))))
	assert.Equal(t, math32.Vec2i(300, 200), sc.FramebufferSize)
	assert.Equal(t, math32.Vec2i(150, 100), sc.Size)
	assert.Equal(t, math32.Vec2i(14, 14), win.Size, "layout is run")

	assert.True(t, sc.HandleEvent(events.NewQuit()))
	assert.True(t, sc.IsQuit())
}

func TestScreenDrawWidgets(t *testing.T) {
	sc, _, _, rc := testScreen()
	sc.DrawWidgets()
	require.NotEmpty(t, rc.Ops)
	assert.Equal(t, "BeginFrame 200 200 1", rc.Ops[0].String())
	assert.Equal(t, "Rect 0 0 200 200", rc.Ops[2].String())
	assert.Equal(t, "EndFrame", rc.Ops[len(rc.Ops)-1].String())
	assert.Equal(t, DefaultBackground, rc.Fills()[0])
	assert.Equal(t, []string{"win", "hi"}, rc.Texts())
	assert.Equal(t, 1, rc.Frames)

	sc.SetVisible(false)
	sc.DrawWidgets()
	assert.Equal(t, 1, rc.Frames)
}

func TestScreenTooltip(t *testing.T) {
	sc, _, lb, rc := testScreen()
	lb.SetTooltip("tip")
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	sc.Now = func() time.Time { return now }
	sc.HandleEvent(events.NewMouseMove(events.NoButton, math32.Vec2i(25, 55), 0))

	now = now.Add(100 * time.Millisecond)
	sc.DrawWidgets()
	assert.NotContains(t, rc.Texts(), "tip")

	now = now.Add(time.Second)
	sc.DrawWidgets()
	assert.Equal(t, "tip", rc.Texts()[len(rc.Texts())-1])
}
