// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uifile

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/nanogui/colors"
	"cogentcore.org/nanogui/core"
	"cogentcore.org/nanogui/cursors"
	"cogentcore.org/nanogui/math32"
	"cogentcore.org/nanogui/paint"
	"cogentcore.org/nanogui/theme"
	"cogentcore.org/nanogui/tree"
)

// Node describes one widget and its children.
type Node struct {

	// Type is the kind of widget: "widget", "label" or "window".
	// It defaults to "widget".
	Type string

	// Name is the name of the widget in the tree. Without it,
	// a unique name is generated.
	Name string

	Pos [2]int32

	// Size is the initial size. The layout pass of the parent
	// replaces it with the preferred size, which is Size itself
	// for a widget without a layout. FixedSize is kept.
	Size      [2]int32
	FixedSize [2]int32

	// Hidden and Disabled invert the visible and enabled defaults.
	Hidden   bool
	Disabled bool

	Tooltip  string
	FontSize int32
	Cursor   cursors.Cursor

	// Layout is the box layout of the widget, if any.
	Layout *BoxLayout

	// Caption is the text of a label.
	Caption string

	// Font is the font name of a label.
	Font string

	// Color is the text color of a label.
	Color colors.Color

	// Title is the title of a window.
	Title string

	// Modal is whether a window is modal.
	Modal bool

	// Center is whether a top-level window is centered on the
	// screen after the layout pass.
	Center bool

	Children []Node
}

// BoxLayout describes a [core.BoxLayout].
type BoxLayout struct {
	Orientation core.Orientation
	Alignment   *core.Alignment
	Margin      int32
	Spacing     int32
}

// Layout returns the described layout. The alignment defaults to
// [core.AlignMiddle], as with [core.NewBoxLayout].
func (bl *BoxLayout) Layout() *core.BoxLayout {
	ly := core.NewBoxLayout(bl.Orientation).SetMargin(bl.Margin).SetSpacing(bl.Spacing)
	if bl.Alignment != nil {
		ly.SetAlignment(*bl.Alignment)
	}
	return ly
}

func vec(v [2]int32) math32.Vector2i {
	return math32.Vec2i(v[0], v[1])
}

// Build adds the described widget and its children to parent,
// returning the new widget.
func (n *Node) Build(parent tree.Node) (core.Widget, error) {
	var w core.Widget
	switch strings.ToLower(n.Type) {
	case "", "widget":
		w = core.NewWidget(nil)
	case "label":
		lb := core.NewLabel(nil, n.Caption)
		lb.SetFontName(n.Font).SetColor(n.Color)
		w = lb
	case "window":
		win := core.NewWindow(nil, n.Title)
		win.SetModal(n.Modal)
		w = win
	default:
		return nil, fmt.Errorf("uifile: unknown widget type %q", n.Type)
	}
	wb := w.AsWidget()
	wb.Name = n.Name
	if parent != nil {
		pb := parent.AsTree()
		if n.Name != "" && (n.Name == pb.Name || pb.ChildByName(n.Name) != nil) {
			return nil, fmt.Errorf("uifile: duplicate widget name %q in %q", n.Name, pb.Name)
		}
		pb.AddChild(w)
	}
	wb.SetPos(vec(n.Pos)).SetSize(vec(n.Size)).SetFixedSize(vec(n.FixedSize))
	wb.SetVisible(!n.Hidden).SetEnabled(!n.Disabled)
	wb.SetTooltip(n.Tooltip).SetFontSize(n.FontSize).SetCursor(n.Cursor)
	if n.Layout != nil {
		wb.SetLayout(n.Layout.Layout())
	}
	for i := range n.Children {
		if _, err := n.Children[i].Build(w); err != nil {
			w.AsTree().Delete()
			return nil, err
		}
	}
	return w, nil
}

// Build returns a new screen with the described widgets that draws
// to the given context, with the given fonts and theme. A nil theme
// means the theme named by the file is loaded. The screen is laid
// out and windows marked Center are centered.
func (f *File) Build(ctx paint.Context, fonts *paint.Fonts, th *theme.Theme) (*core.Screen, error) {
	if th == nil {
		var err error
		if th, err = f.LoadTheme(); err != nil {
			return nil, err
		}
	}
	size := f.Size
	if size[0] <= 0 || size[1] <= 0 {
		size = DefaultSize
	}
	sc := core.NewScreen(ctx, vec(size), f.Caption)
	if !f.Background.IsNil() {
		sc.Background = f.Background
	}
	if f.Ratio > 0 {
		sc.SetPixelRatio(f.Ratio)
	}
	sc.SetFonts(fonts)
	var centered []*core.Window
	for i := range f.Widgets {
		w, err := f.Widgets[i].Build(sc)
		if err != nil {
			sc.Destroy()
			return nil, err
		}
		if win, ok := w.(*core.Window); ok && f.Widgets[i].Center {
			centered = append(centered, win)
		}
	}
	sc.SetTheme(th)
	sc.UpdateLayout()
	for _, win := range centered {
		win.Center()
	}
	slog.Debug("uifile: built screen", "caption", f.Caption, "widgets", len(f.Widgets))
	return sc, nil
}
