// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"cogentcore.org/nanogui/colors"
	"cogentcore.org/nanogui/math32"
	"cogentcore.org/nanogui/paint"
	"cogentcore.org/nanogui/tree"
)

// DefaultLabelColor is the text color of a label that has
// neither a color of its own nor a theme.
var DefaultLabelColor = colors.RGBA(255, 255, 255, 125)

// Label is a widget that displays a line of text, or a
// word-wrapped paragraph when it has a fixed width.
type Label struct {
	WidgetBase

	// Caption is the text of the label.
	Caption string

	// FontName is the name of the font of the label in the font
	// registry of its [Screen]. If it is empty, the normal font of
	// the theme is used.
	FontName string

	// Color is the text color. If it is unset, the text color of
	// the theme is used, or [DefaultLabelColor] without a theme.
	Color colors.Color
}

// NewLabel returns a new [Label] with the given caption,
// added to the given parent if it is non-nil.
func NewLabel(parent tree.Node, caption string) *Label {
	lb := tree.New[Label](parent)
	lb.Caption = caption
	return lb
}

// SetCaption sets [Label.Caption].
func (lb *Label) SetCaption(caption string) *Label {
	lb.Caption = caption
	return lb
}

// SetFontName sets [Label.FontName].
func (lb *Label) SetFontName(name string) *Label {
	lb.FontName = name
	return lb
}

// SetColor sets [Label.Color].
func (lb *Label) SetColor(c colors.Color) *Label {
	lb.Color = c
	return lb
}

// TextColor returns the color the text is drawn with.
func (lb *Label) TextColor() colors.Color {
	switch {
	case !lb.Color.IsNil():
		return lb.Color
	case lb.Theme != nil:
		return lb.Theme.TextColor
	}
	return DefaultLabelColor
}

// Font returns the font handle the text is drawn with, or
// [paint.NoFont] for the default font of the drawing context.
func (lb *Label) Font() paint.Font {
	var fonts *paint.Fonts
	if sc := lb.Screen(); sc != nil {
		fonts = sc.Fonts
	}
	if lb.FontName != "" && fonts != nil {
		if f, ok := fonts.Font(lb.FontName); ok {
			return f
		}
	}
	if lb.Theme != nil && lb.Theme.FontNormal != paint.NoFont {
		return lb.Theme.FontNormal
	}
	if fonts != nil {
		if f, ok := fonts.Font("sans"); ok {
			return f
		}
	}
	return paint.NoFont
}

func (lb *Label) setFont(ctx paint.Context, align paint.Align) {
	ctx.FontFace(lb.Font())
	ctx.FontSize(float32(lb.FontSize()))
	ctx.TextAlign(align)
}

// PreferredSize measures the caption. With a fixed width it is the
// height of the word-wrapped text box; otherwise it is the width of
// the text and the font size.
func (lb *Label) PreferredSize(ctx paint.Context) math32.Vector2i {
	if lb.Caption == "" {
		return math32.Vector2i{}
	}
	if lb.FixedSize.X > 0 {
		ctx.Save()
		lb.setFont(ctx, paint.AlignLeft|paint.AlignTop)
		bb := ctx.TextBoxBounds(float32(lb.Pos.X), float32(lb.Pos.Y), float32(lb.FixedSize.X), lb.Caption)
		ctx.Restore()
		return math32.Vec2i(lb.FixedSize.X, int32(bb.Size().Y))
	}
	ctx.Save()
	lb.setFont(ctx, paint.AlignLeft|paint.AlignMiddle)
	adv, _ := ctx.TextBounds(0, 0, lb.Caption)
	ctx.Restore()
	return math32.Vec2i(int32(adv), lb.FontSize())
}

// Draw draws the caption, vertically centered, or as a text box
// from the top left when the label has a fixed width.
func (lb *Label) Draw(ctx paint.Context) {
	if lb.Caption != "" {
		ctx.Save()
		ctx.FillColor(lb.TextColor())
		pos := lb.Pos.ToVector2()
		if lb.FixedSize.X > 0 {
			lb.setFont(ctx, paint.AlignLeft|paint.AlignTop)
			ctx.TextBox(pos.X, pos.Y, float32(lb.FixedSize.X), lb.Caption)
		} else {
			lb.setFont(ctx, paint.AlignLeft|paint.AlignMiddle)
			ctx.Text(pos.X, pos.Y+float32(lb.Size.Y)/2, lb.Caption)
		}
		ctx.Restore()
	}
	lb.WidgetBase.Draw(ctx)
}
