// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"cogentcore.org/nanogui/events"
	"cogentcore.org/nanogui/events/key"
	"cogentcore.org/nanogui/math32"
	"cogentcore.org/nanogui/tree"
)

// MouseButtonEvent passes the event to the first visible child that
// contains the point, returning true if it consumes it. Otherwise a
// left press requests the focus for this widget. It never consumes
// the event itself.
func (wb *WidgetBase) MouseButtonEvent(p math32.Vector2i, button events.Buttons, down bool, mods key.Modifiers) bool {
	lp := p.Sub(wb.Pos)
	handled := false
	wb.forVisibleChildren(func(cw Widget, cwb *WidgetBase) bool {
		if !cwb.Contains(lp) {
			return tree.Continue
		}
		handled = cw.MouseButtonEvent(lp, button, down, mods)
		return !handled
	})
	if handled {
		return true
	}
	if button == events.Left && down && !wb.Focused {
		wb.RequestFocus()
	}
	return false
}

// MouseMotionEvent sends enter and leave events to the visible children
// that the mouse moved into or out of, and passes the event on to the
// children that contain the current or previous point until one of
// them consumes it.
func (wb *WidgetBase) MouseMotionEvent(p, rel math32.Vector2i, button events.Buttons, mods key.Modifiers) bool {
	lp := p.Sub(wb.Pos)
	prev := lp.Sub(rel)
	handled := false
	wb.forVisibleChildren(func(cw Widget, cwb *WidgetBase) bool {
		contained := cwb.Contains(lp)
		prevContained := cwb.Contains(prev)
		if contained != prevContained {
			cw.MouseEnterEvent(lp, contained)
		}
		if contained || prevContained {
			handled = cw.MouseMotionEvent(lp, rel, button, mods)
		}
		return !handled
	})
	return handled
}

// MouseDragEvent does nothing and returns false.
func (wb *WidgetBase) MouseDragEvent(p, rel math32.Vector2i, button events.Buttons, mods key.Modifiers) bool {
	return false
}

// MouseEnterEvent sets [WidgetBase.MouseFocus] and returns false.
func (wb *WidgetBase) MouseEnterEvent(p math32.Vector2i, enter bool) bool {
	wb.MouseFocus = enter
	return false
}

// ScrollEvent passes the event to the first visible child that
// contains the point.
func (wb *WidgetBase) ScrollEvent(p math32.Vector2i, rel math32.Vector2) bool {
	lp := p.Sub(wb.Pos)
	handled := false
	wb.forVisibleChildren(func(cw Widget, cwb *WidgetBase) bool {
		if !cwb.Contains(lp) {
			return tree.Continue
		}
		handled = cw.ScrollEvent(lp, rel)
		return tree.Break
	})
	return handled
}

// FocusEvent sets [WidgetBase.Focused] and returns false.
func (wb *WidgetBase) FocusEvent(focused bool) bool {
	wb.Focused = focused
	return false
}

// KeyboardEvent does nothing and returns false.
func (wb *WidgetBase) KeyboardEvent(code key.Codes, down bool, mods key.Modifiers) bool {
	return false
}

// KeyboardCharacterEvent does nothing and returns false.
func (wb *WidgetBase) KeyboardCharacterEvent(r rune) bool {
	return false
}
