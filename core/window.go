// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"cogentcore.org/nanogui/colors"
	"cogentcore.org/nanogui/events"
	"cogentcore.org/nanogui/events/key"
	"cogentcore.org/nanogui/math32"
	"cogentcore.org/nanogui/paint"
	"cogentcore.org/nanogui/tree"
)

// TitleFontSize is the font size of window titles.
const TitleFontSize = 18

// Window is a movable top-level container with a title bar.
// A [BoxLayout] on a themed window leaves room for the title bar.
type Window struct {
	WidgetBase

	// Title is drawn centered in the title bar.
	Title string

	// Modal windows block mouse button events to the rest of
	// the [Screen] while they are on the focus path.
	Modal bool

	// Drag is whether the window is being dragged by its title bar.
	Drag bool `toml:"-" yaml:"-"`
}

// NewWindow returns a new [Window] with the given title,
// added to the given parent if it is non-nil.
func NewWindow(parent tree.Node, title string) *Window {
	win := tree.New[Window](parent)
	win.Title = title
	return win
}

// SetTitle sets [Window.Title].
func (win *Window) SetTitle(title string) *Window {
	win.Title = title
	return win
}

// SetModal sets [Window.Modal].
func (win *Window) SetModal(modal bool) *Window {
	win.Modal = modal
	return win
}

// headerHeight returns the height of the title bar, which
// is zero without a theme.
func (win *Window) headerHeight() int32 {
	if win.Theme == nil {
		return 0
	}
	return win.Theme.WindowHeaderHeight
}

func (win *Window) titleFont(ctx paint.Context) {
	if win.Theme != nil {
		ctx.FontFace(win.Theme.FontBold)
	}
	ctx.FontSize(TitleFontSize)
}

// PreferredSize is the preferred size of the layout or the base
// widget, grown to fit the title.
func (win *Window) PreferredSize(ctx paint.Context) math32.Vector2i {
	ps := win.WidgetBase.PreferredSize(ctx)
	if win.Title == "" {
		return ps
	}
	ctx.Save()
	win.titleFont(ctx)
	ctx.TextAlign(paint.AlignLeft | paint.AlignTop)
	_, bb := ctx.TextBounds(0, 0, win.Title)
	ctx.Restore()
	tsz := bb.Size()
	return ps.Max(math32.Vec2i(int32(tsz.X)+20, int32(tsz.Y)))
}

// Draw draws the drop shadow, the body and the title bar of the
// window when it has a theme, and then its children.
func (win *Window) Draw(ctx paint.Context) {
	if th := win.Theme; th != nil {
		pos := win.Pos.ToVector2()
		sz := win.Size.ToVector2()
		ds := float32(th.WindowDropShadowSize)
		cr := float32(th.WindowCornerRadius)
		hh := float32(th.WindowHeaderHeight)
		ctx.Save()

		ctx.BeginPath()
		ctx.RoundedRect(pos.X-ds, pos.Y-ds+ds/2, sz.X+2*ds, sz.Y+2*ds, cr*2)
		ctx.FillColor(th.DropShadow)
		ctx.Fill()

		ctx.BeginPath()
		ctx.RoundedRect(pos.X, pos.Y, sz.X, sz.Y, cr)
		if win.MouseFocus {
			ctx.FillColor(th.WindowFillFocused)
		} else {
			ctx.FillColor(th.WindowFillUnfocused)
		}
		ctx.Fill()

		if win.Title != "" {
			ctx.BeginPath()
			ctx.RoundedRect(pos.X, pos.Y, sz.X, hh, cr)
			ctx.FillColor(colors.Blend(th.WindowHeaderGradientTop, th.WindowHeaderGradientBot, 0.5))
			ctx.Fill()

			ctx.BeginPath()
			ctx.MoveTo(pos.X+0.5, pos.Y+hh-1.5)
			ctx.LineTo(pos.X+sz.X-0.5, pos.Y+hh-1.5)
			ctx.StrokeColor(th.WindowHeaderSepBot)
			ctx.Stroke()

			win.titleFont(ctx)
			ctx.TextAlign(paint.AlignCenter | paint.AlignMiddle)
			if win.Focused {
				ctx.FillColor(th.WindowTitleFocused)
			} else {
				ctx.FillColor(th.WindowTitleUnfocused)
			}
			ctx.Text(pos.X+sz.X/2, pos.Y+hh/2, win.Title)
		}
		ctx.Restore()
	}
	win.WidgetBase.Draw(ctx)
}

// Center places the window in the middle of its parent. A window
// without a size first gets its preferred size and a layout, using
// the drawing context of its [Screen].
func (win *Window) Center() {
	pwb := win.parentWidget()
	if pwb == nil {
		return
	}
	if win.Size.IsZero() {
		if sc := win.Screen(); sc != nil && sc.Context != nil {
			win.Size = win.PreferredSize(sc.Context)
			win.PerformLayout(sc.Context)
		}
	}
	win.Pos = pwb.Size.Sub(win.Size).DivScalar(2).Max(math32.Vector2i{})
}

// MouseButtonEvent starts dragging on a left press in the title bar
// and ends it on release. The window consumes all button events.
func (win *Window) MouseButtonEvent(p math32.Vector2i, button events.Buttons, down bool, mods key.Modifiers) bool {
	if win.WidgetBase.MouseButtonEvent(p, button, down, mods) {
		return true
	}
	if button == events.Left {
		win.Drag = down && p.Y-win.Pos.Y < win.headerHeight()
	}
	return true
}

// MouseDragEvent moves the window by rel while it is dragged with
// the left button, keeping it within its parent.
func (win *Window) MouseDragEvent(p, rel math32.Vector2i, button events.Buttons, mods key.Modifiers) bool {
	if !win.Drag || button != events.Left {
		return false
	}
	pos := win.Pos.Add(rel)
	if pwb := win.parentWidget(); pwb != nil {
		pos = pos.Min(pwb.Size.Sub(win.Size))
	}
	win.Pos = pos.Max(math32.Vector2i{})
	return true
}
