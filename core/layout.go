// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/nanogui/math32"
	"cogentcore.org/nanogui/paint"
	"cogentcore.org/nanogui/tree"
)

// Layout is a strategy for placing the children of a widget.
type Layout interface {

	// PreferredSize returns the preferred size of the given widget
	// under this layout.
	PreferredSize(ctx paint.Context, w Widget) math32.Vector2i

	// PerformLayout sets the position and size of each visible
	// child of the given widget, and lays out the children in turn.
	PerformLayout(ctx paint.Context, w Widget)
}

// Alignment is the placement of children on the cross axis of a [BoxLayout].
type Alignment int32

const (
	// AlignMinimum places children at the start, after the margin.
	AlignMinimum Alignment = iota

	// AlignMiddle centers children.
	AlignMiddle

	// AlignMaximum places children at the end, before the margin.
	AlignMaximum

	// AlignFill stretches children over the whole cross axis,
	// unless they have a fixed size on it.
	AlignFill

	alignmentN
)

var alignmentNames = [...]string{"minimum", "middle", "maximum", "fill"}

func (a Alignment) String() string {
	if a < 0 || a >= alignmentN {
		return fmt.Sprintf("Alignment(%d)", int32(a))
	}
	return alignmentNames[a]
}

// SetString sets the alignment from its name.
func (a *Alignment) SetString(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range alignmentNames {
		if n == s {
			*a = Alignment(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type core.Alignment", s)
}

func (a Alignment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Alignment) UnmarshalText(text []byte) error {
	return a.SetString(string(text))
}

// Orientation is the primary axis of a [BoxLayout].
type Orientation int32

const (
	// Horizontal lays children out from left to right.
	Horizontal Orientation = iota

	// Vertical lays children out from top to bottom.
	Vertical

	orientationN
)

var orientationNames = [...]string{"horizontal", "vertical"}

func (o Orientation) String() string {
	if o < 0 || o >= orientationN {
		return fmt.Sprintf("Orientation(%d)", int32(o))
	}
	return orientationNames[o]
}

// SetString sets the orientation from its name.
func (o *Orientation) SetString(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range orientationNames {
		if n == s {
			*o = Orientation(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type core.Orientation", s)
}

func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Orientation) UnmarshalText(text []byte) error {
	return o.SetString(string(text))
}

// Dim returns the primary dimension of the orientation.
func (o Orientation) Dim() math32.Dims {
	if o == Vertical {
		return math32.Y
	}
	return math32.X
}

// BoxLayout places the visible children of a widget one after another
// along one axis, aligning them on the other.
type BoxLayout struct {

	// Orientation is the axis along which children are placed.
	Orientation Orientation

	// Alignment is the placement of children on the cross axis.
	Alignment Alignment

	// Margin is the space around all of the children, on every side.
	Margin int32

	// Spacing is the space between consecutive visible children.
	Spacing int32
}

// NewBoxLayout returns a new [BoxLayout] with the given orientation,
// centered alignment and no margin or spacing.
func NewBoxLayout(orientation Orientation) *BoxLayout {
	return &BoxLayout{Orientation: orientation, Alignment: AlignMiddle}
}

// SetAlignment sets [BoxLayout.Alignment].
func (bl *BoxLayout) SetAlignment(a Alignment) *BoxLayout {
	bl.Alignment = a
	return bl
}

// SetMargin sets [BoxLayout.Margin].
func (bl *BoxLayout) SetMargin(margin int32) *BoxLayout {
	bl.Margin = margin
	return bl
}

// SetSpacing sets [BoxLayout.Spacing].
func (bl *BoxLayout) SetSpacing(spacing int32) *BoxLayout {
	bl.Spacing = spacing
	return bl
}

// headerAllowance returns the vertical space reserved for the
// title bar when the widget is a themed [Window].
func (bl *BoxLayout) headerAllowance(w Widget) int32 {
	win, ok := w.(*Window)
	if !ok || win.Theme == nil {
		return 0
	}
	return math32.ClampZero(win.Theme.WindowHeaderHeight - bl.Margin/2)
}

func (bl *BoxLayout) PreferredSize(ctx paint.Context, w Widget) math32.Vector2i {
	wb := w.AsWidget()
	axis1 := bl.Orientation.Dim()
	axis2 := math32.OtherDim(axis1)
	size := math32.Vector2iScalar(2 * bl.Margin)
	size.Y += bl.headerAllowance(w)
	first := true
	wb.forVisibleChildren(func(cw Widget, cwb *WidgetBase) bool {
		if first {
			first = false
		} else {
			size.SetDim(axis1, size.Dim(axis1)+bl.Spacing)
		}
		ts := targetSize(ctx, cw)
		size.SetDim(axis1, size.Dim(axis1)+ts.Dim(axis1))
		size.SetDim(axis2, max(size.Dim(axis2), ts.Dim(axis2)+2*bl.Margin))
		return tree.Continue
	})
	return size
}

func (bl *BoxLayout) PerformLayout(ctx paint.Context, w Widget) {
	wb := w.AsWidget()
	axis1 := bl.Orientation.Dim()
	axis2 := math32.OtherDim(axis1)
	container := wb.Size
	if wb.FixedSize.X > 0 {
		container.X = wb.FixedSize.X
	}
	if wb.FixedSize.Y > 0 {
		container.Y = wb.FixedSize.Y
	}
	cross := container.Dim(axis2)
	position := bl.Margin + bl.headerAllowance(w)
	first := true
	wb.forVisibleChildren(func(cw Widget, cwb *WidgetBase) bool {
		if first {
			first = false
		} else {
			position += bl.Spacing
		}
		ts := targetSize(ctx, cw)
		var pos math32.Vector2i
		pos.SetDim(axis1, position)
		switch bl.Alignment {
		case AlignMinimum:
			pos.SetDim(axis2, bl.Margin)
		case AlignMiddle:
			pos.SetDim(axis2, math32.ClampZero(cross-ts.Dim(axis2))/2)
		case AlignMaximum:
			pos.SetDim(axis2, math32.ClampZero(cross-ts.Dim(axis2)-bl.Margin))
		case AlignFill:
			pos.SetDim(axis2, bl.Margin)
			if fs := cwb.FixedSize.Dim(axis2); fs > 0 {
				ts.SetDim(axis2, fs)
			} else {
				ts.SetDim(axis2, cross)
			}
		}
		cwb.Pos = pos
		cwb.Size = ts
		cw.PerformLayout(ctx)
		position += ts.Dim(axis1)
		return tree.Continue
	})
	slog.Debug("core.BoxLayout: laid out", "widget", wb.Name, "size", container, "extent", position)
}
