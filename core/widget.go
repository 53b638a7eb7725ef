// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package core provides the widget tree of nanogui: the [Widget]
// interface and its [WidgetBase] implementation, box layout, event
// routing and focus, and the [Label], [Window] and [Screen] widgets.
package core

import (
	"cogentcore.org/nanogui/cursors"
	"cogentcore.org/nanogui/events"
	"cogentcore.org/nanogui/events/key"
	"cogentcore.org/nanogui/math32"
	"cogentcore.org/nanogui/paint"
	"cogentcore.org/nanogui/theme"
	"cogentcore.org/nanogui/tree"
)

// DefaultFontSize is the font size of a widget that has neither
// a font size override nor a theme.
const DefaultFontSize = 12

// Widget is the interface that all nanogui widgets satisfy.
// The core widget functionality is defined on [WidgetBase],
// and all higher-level widget types must embed it. This
// interface only contains the methods that higher-level
// widget types may need to override. You can call
// [Widget.AsWidget] to get the [WidgetBase] of a Widget
// and access the core widget functionality.
//
// Points given to the event methods are in the coordinate frame
// of the widget's parent, the same frame as [WidgetBase.Pos].
type Widget interface {
	tree.Node

	// AsWidget returns the [WidgetBase] of this Widget. Most
	// core widget functionality is implemented on [WidgetBase].
	AsWidget() *WidgetBase

	// PreferredSize returns the size the widget would like to have,
	// measuring any content with the given drawing context.
	PreferredSize(ctx paint.Context) math32.Vector2i

	// PerformLayout sets the position and size of the children
	// of the widget, and recursively lays out their descendants.
	PerformLayout(ctx paint.Context)

	// Draw renders the widget and its visible children. The drawing
	// context is translated to the widget's parent frame.
	Draw(ctx paint.Context)

	// MouseButtonEvent handles a mouse button press or release,
	// returning whether the event was consumed.
	MouseButtonEvent(p math32.Vector2i, button events.Buttons, down bool, mods key.Modifiers) bool

	// MouseMotionEvent handles the mouse moving by rel to p with
	// the given button held down.
	MouseMotionEvent(p, rel math32.Vector2i, button events.Buttons, mods key.Modifiers) bool

	// MouseDragEvent handles the mouse moving by rel to p while this
	// widget is the drag target of its [Screen].
	MouseDragEvent(p, rel math32.Vector2i, button events.Buttons, mods key.Modifiers) bool

	// MouseEnterEvent handles the mouse entering (enter = true)
	// or leaving the widget.
	MouseEnterEvent(p math32.Vector2i, enter bool) bool

	// ScrollEvent handles a scroll by rel at p.
	ScrollEvent(p math32.Vector2i, rel math32.Vector2) bool

	// FocusEvent handles the widget gaining or losing the focus.
	FocusEvent(focused bool) bool

	// KeyboardEvent handles a key press or release.
	KeyboardEvent(code key.Codes, down bool, mods key.Modifiers) bool

	// KeyboardCharacterEvent handles a character typed on the keyboard.
	KeyboardCharacterEvent(r rune) bool
}

// WidgetBase implements the [Widget] interface and provides the core
// functionality of a widget. You must use WidgetBase as an embedded
// struct in all higher-level widget types.
type WidgetBase struct {
	tree.NodeBase

	// Pos is the position of the widget relative to its parent.
	Pos math32.Vector2i

	// Size is the current size of the widget, typically set
	// by the layout of its parent.
	Size math32.Vector2i

	// FixedSize pins the size of the widget on each axis on which
	// it is non-zero, overriding the preferred size during layout.
	FixedSize math32.Vector2i

	// Visible is whether the widget is visible. Invisible widgets
	// are skipped by layout, drawing and event dispatch.
	Visible bool

	// Enabled is whether the widget accepts interaction.
	Enabled bool

	// Focused is whether the widget is on the focus path of its [Screen].
	Focused bool

	// MouseFocus is whether the mouse is over the widget.
	MouseFocus bool

	// Tooltip is shown by the [Screen] when the mouse rests on the widget.
	Tooltip string

	// FontSizeOverride is the font size of the widget if it is non-zero.
	// See [WidgetBase.FontSize].
	FontSizeOverride int32

	// Theme is the theme shared by the widget and typically its whole tree.
	// A widget without a theme inherits the theme of its parent when added.
	Theme *theme.Theme `toml:"-" yaml:"-"`

	// Layout places the children of the widget. Without a layout,
	// children keep their position and get their preferred size.
	Layout Layout `toml:"-" yaml:"-"`

	// Cursor is the cursor shape shown while the mouse is over the widget.
	Cursor cursors.Cursor
}

// NewWidget returns a new plain widget, added to the given parent
// if it is non-nil. Plain widgets are typically used as containers.
func NewWidget(parent tree.Node) *WidgetBase {
	return tree.New[WidgetBase](parent)
}

// AsWidget returns the given [tree.Node] as a [Widget] interface
// and a [WidgetBase]. It returns nil, nil if the node is not a widget.
func AsWidget(n tree.Node) (Widget, *WidgetBase) {
	if w, ok := n.(Widget); ok {
		return w, w.AsWidget()
	}
	return nil, nil
}

func (wb *WidgetBase) AsWidget() *WidgetBase {
	return wb
}

// Init sets the default field values. It is called once
// by [tree.InitNode].
func (wb *WidgetBase) Init() {
	wb.Visible = true
	wb.Enabled = true
}

// OnAdd inherits the theme of the new parent if this widget
// does not already have one.
func (wb *WidgetBase) OnAdd() {
	if wb.Theme != nil {
		return
	}
	if pwb := wb.parentWidget(); pwb != nil && pwb.Theme != nil {
		wb.inheritTheme(pwb.Theme)
	}
}

// inheritTheme sets the given theme on this widget and on
// all descendants that do not have a theme of their own.
func (wb *WidgetBase) inheritTheme(th *theme.Theme) {
	wb.WalkDown(func(n tree.Node) bool {
		_, cwb := AsWidget(n)
		if cwb == nil || (cwb != wb && cwb.Theme != nil) {
			return tree.Break
		}
		cwb.Theme = th
		return tree.Continue
	})
}

// this returns the widget as its true underlying type, so that
// overridden methods are called.
func (wb *WidgetBase) this() Widget {
	if w, ok := wb.This.(Widget); ok {
		return w
	}
	return wb
}

// parentWidget returns the [WidgetBase] of the parent, or nil.
func (wb *WidgetBase) parentWidget() *WidgetBase {
	_, pwb := AsWidget(wb.Parent)
	return pwb
}

// forVisibleChildren calls fun on each visible widget child, in order,
// until it returns [tree.Break].
func (wb *WidgetBase) forVisibleChildren(fun func(cw Widget, cwb *WidgetBase) bool) {
	for _, k := range wb.Children {
		cw, cwb := AsWidget(k)
		if cw == nil || !cwb.Visible {
			continue
		}
		if !fun(cw, cwb) {
			break
		}
	}
}

// SetPos sets [WidgetBase.Pos]. It does not trigger a new layout.
func (wb *WidgetBase) SetPos(pos math32.Vector2i) *WidgetBase {
	wb.Pos = pos
	return wb
}

// SetSize sets [WidgetBase.Size]. It does not trigger a new layout.
func (wb *WidgetBase) SetSize(size math32.Vector2i) *WidgetBase {
	wb.Size = size
	return wb
}

// SetFixedSize sets [WidgetBase.FixedSize].
func (wb *WidgetBase) SetFixedSize(size math32.Vector2i) *WidgetBase {
	wb.FixedSize = size
	return wb
}

// SetVisible sets [WidgetBase.Visible].
func (wb *WidgetBase) SetVisible(visible bool) *WidgetBase {
	wb.Visible = visible
	return wb
}

// SetEnabled sets [WidgetBase.Enabled].
func (wb *WidgetBase) SetEnabled(enabled bool) *WidgetBase {
	wb.Enabled = enabled
	return wb
}

// SetTooltip sets [WidgetBase.Tooltip].
func (wb *WidgetBase) SetTooltip(tooltip string) *WidgetBase {
	wb.Tooltip = tooltip
	return wb
}

// SetFontSize sets [WidgetBase.FontSizeOverride].
func (wb *WidgetBase) SetFontSize(size int32) *WidgetBase {
	wb.FontSizeOverride = size
	return wb
}

// SetLayout sets [WidgetBase.Layout].
func (wb *WidgetBase) SetLayout(ly Layout) *WidgetBase {
	wb.Layout = ly
	return wb
}

// SetCursor sets [WidgetBase.Cursor].
func (wb *WidgetBase) SetCursor(cur cursors.Cursor) *WidgetBase {
	wb.Cursor = cur
	return wb
}

// SetTheme sets the theme of this widget and all of its descendants.
func (wb *WidgetBase) SetTheme(th *theme.Theme) *WidgetBase {
	wb.WalkDown(func(n tree.Node) bool {
		if _, cwb := AsWidget(n); cwb != nil {
			cwb.Theme = th
		}
		return tree.Continue
	})
	return wb
}

// FontSize returns [WidgetBase.FontSizeOverride] if it is set,
// else the standard font size of the theme if there is one,
// else [DefaultFontSize].
func (wb *WidgetBase) FontSize() int32 {
	switch {
	case wb.FontSizeOverride > 0:
		return wb.FontSizeOverride
	case wb.Theme != nil:
		return wb.Theme.StandardFontSize
	}
	return DefaultFontSize
}

// VisibleRecursive returns whether this widget and all of
// its ancestors are visible.
func (wb *WidgetBase) VisibleRecursive() bool {
	if !wb.Visible {
		return false
	}
	if pwb := wb.parentWidget(); pwb != nil {
		return pwb.VisibleRecursive()
	}
	return true
}

// AbsolutePosition returns the position of the widget in the
// coordinate frame of the root of its tree.
func (wb *WidgetBase) AbsolutePosition() math32.Vector2i {
	if pwb := wb.parentWidget(); pwb != nil {
		return pwb.AbsolutePosition().Add(wb.Pos)
	}
	return wb.Pos
}

// Contains returns whether the given point, in the frame of the
// parent, is inside the half-open rectangle [Pos, Pos+Size).
func (wb *WidgetBase) Contains(p math32.Vector2i) bool {
	d := p.Sub(wb.Pos)
	return d.X >= 0 && d.Y >= 0 && d.X < wb.Size.X && d.Y < wb.Size.Y
}

// FindWidget returns the deepest visible widget that contains the
// given point, in the frame of the parent, or nil if there is none.
// Each level only descends into the first visible child that
// contains the point.
func (wb *WidgetBase) FindWidget(p math32.Vector2i) Widget {
	lp := p.Sub(wb.Pos)
	var found Widget
	wb.forVisibleChildren(func(cw Widget, cwb *WidgetBase) bool {
		if cwb.Contains(lp) {
			found = cwb.FindWidget(lp)
			return tree.Break
		}
		return tree.Continue
	})
	if found != nil {
		return found
	}
	if wb.Contains(p) {
		return wb.this()
	}
	return nil
}

// targetSize returns the fixed size of the widget on each axis
// on which it is set, and the preferred size on the others.
func targetSize(ctx paint.Context, w Widget) math32.Vector2i {
	wb := w.AsWidget()
	ts := wb.FixedSize
	if ts.X > 0 && ts.Y > 0 {
		return ts
	}
	ps := w.PreferredSize(ctx)
	if ts.X <= 0 {
		ts.X = ps.X
	}
	if ts.Y <= 0 {
		ts.Y = ps.Y
	}
	return ts
}

// PreferredSize returns the preferred size of the layout if there
// is one, and the current size otherwise.
func (wb *WidgetBase) PreferredSize(ctx paint.Context) math32.Vector2i {
	if wb.Layout != nil {
		return wb.Layout.PreferredSize(ctx, wb.this())
	}
	return wb.Size
}

// PerformLayout applies the layout if there is one. Otherwise each
// visible child gets its fixed or preferred size, keeping its position,
// and is laid out in turn.
func (wb *WidgetBase) PerformLayout(ctx paint.Context) {
	if wb.Layout != nil {
		wb.Layout.PerformLayout(ctx, wb.this())
		return
	}
	wb.forVisibleChildren(func(cw Widget, cwb *WidgetBase) bool {
		cwb.Size = targetSize(ctx, cw)
		cw.PerformLayout(ctx)
		return tree.Continue
	})
}

// Draw draws the visible children, with the context translated
// to the frame of this widget.
func (wb *WidgetBase) Draw(ctx paint.Context) {
	if !wb.HasChildren() {
		return
	}
	ctx.Save()
	ctx.Translate(float32(wb.Pos.X), float32(wb.Pos.Y))
	wb.forVisibleChildren(func(cw Widget, cwb *WidgetBase) bool {
		cw.Draw(ctx)
		return tree.Continue
	})
	ctx.Restore()
}

// Screen returns the [Screen] that this widget belongs to, or nil.
func (wb *WidgetBase) Screen() *Screen {
	var sc *Screen
	wb.WalkUp(func(n tree.Node) bool {
		if s, ok := n.(*Screen); ok {
			sc = s
			return tree.Break
		}
		return tree.Continue
	})
	return sc
}

// RequestFocus asks the [Screen] of the widget to move the focus
// to it. It does nothing if the widget is not on a screen.
func (wb *WidgetBase) RequestFocus() {
	if sc := wb.Screen(); sc != nil {
		sc.UpdateFocus(wb.this())
	}
}

// Destroy detaches the widget from its parent and its children from it.
func (wb *WidgetBase) Destroy() {
	wb.Layout = nil
	wb.NodeBase.Destroy()
}
