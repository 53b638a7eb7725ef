// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme provides the [Theme] shared by widgets for their fonts,
// metrics and colors, along with loading, saving and watching theme files.
package theme

import (
	"log/slog"

	"cogentcore.org/nanogui/colors"
	"cogentcore.org/nanogui/paint"
	"github.com/jinzhu/copier"
)

// Theme holds the fonts, metrics and colors used to draw widgets.
// A single theme is typically shared by pointer among all of the
// widgets of a screen.
type Theme struct {

	// FontNormalName is the registered name of the normal font.
	FontNormalName string

	// FontBoldName is the registered name of the bold font.
	FontBoldName string

	// FontIconsName is the registered name of the icons font,
	// which is optional.
	FontIconsName string

	// FontNormal is the handle of the normal font, set by [Theme.LoadFonts].
	FontNormal paint.Font `toml:"-" yaml:"-"`

	// FontBold is the handle of the bold font, set by [Theme.LoadFonts].
	FontBold paint.Font `toml:"-" yaml:"-"`

	// FontIcons is the handle of the icons font, set by [Theme.LoadFonts].
	// It is [paint.NoFont] when no icons font is available.
	FontIcons paint.Font `toml:"-" yaml:"-"`

	StandardFontSize     int32
	ButtonFontSize       int32
	TextBoxFontSize      int32
	WindowCornerRadius   int32
	WindowHeaderHeight   int32
	WindowDropShadowSize int32
	ButtonCornerRadius   int32

	DropShadow        colors.Color
	Transparent       colors.Color
	BorderDark        colors.Color
	BorderLight       colors.Color
	BorderMedium      colors.Color
	TextColor         colors.Color
	DisabledTextColor colors.Color
	TextColorShadow   colors.Color
	IconColor         colors.Color

	ButtonGradientTopFocused   colors.Color
	ButtonGradientBotFocused   colors.Color
	ButtonGradientTopUnfocused colors.Color
	ButtonGradientBotUnfocused colors.Color
	ButtonGradientTopPushed    colors.Color
	ButtonGradientBotPushed    colors.Color

	WindowFillUnfocused  colors.Color
	WindowFillFocused    colors.Color
	WindowTitleUnfocused colors.Color
	WindowTitleFocused   colors.Color

	WindowHeaderGradientTop colors.Color
	WindowHeaderGradientBot colors.Color
	WindowHeaderSepTop      colors.Color
	WindowHeaderSepBot      colors.Color

	WindowPopup            colors.Color
	WindowPopupTransparent colors.Color
}

// Default returns a new theme with the standard dark values.
// Its font handles are unset until [Theme.LoadFonts] is called.
func Default() *Theme {
	t := &Theme{}
	t.Defaults()
	return t
}

// Defaults sets all of the fields to the standard dark values.
func (t *Theme) Defaults() {
	gray := colors.FromIntensity
	*t = Theme{
		FontNormalName: "sans",
		FontBoldName:   "sans-bold",
		FontIconsName:  "icons",
		FontNormal:     paint.NoFont,
		FontBold:       paint.NoFont,
		FontIcons:      paint.NoFont,

		StandardFontSize:     16,
		ButtonFontSize:       20,
		TextBoxFontSize:      20,
		WindowCornerRadius:   2,
		WindowHeaderHeight:   30,
		WindowDropShadowSize: 10,
		ButtonCornerRadius:   2,

		DropShadow:        gray(0, 128),
		Transparent:       gray(0, 0),
		BorderDark:        gray(29, 255),
		BorderLight:       gray(92, 255),
		BorderMedium:      gray(35, 255),
		TextColor:         gray(255, 160),
		DisabledTextColor: gray(255, 80),
		TextColorShadow:   gray(0, 160),
		IconColor:         gray(255, 160),

		ButtonGradientTopFocused:   gray(64, 255),
		ButtonGradientBotFocused:   gray(48, 255),
		ButtonGradientTopUnfocused: gray(74, 255),
		ButtonGradientBotUnfocused: gray(58, 255),
		ButtonGradientTopPushed:    gray(41, 255),
		ButtonGradientBotPushed:    gray(29, 255),

		WindowFillUnfocused:  gray(43, 230),
		WindowFillFocused:    gray(45, 230),
		WindowTitleUnfocused: gray(220, 160),
		WindowTitleFocused:   gray(255, 190),

		WindowHeaderGradientTop: gray(74, 255),
		WindowHeaderGradientBot: gray(58, 255),
		WindowHeaderSepTop:      gray(92, 255),
		WindowHeaderSepBot:      gray(29, 255),

		WindowPopup:            gray(50, 255),
		WindowPopupTransparent: gray(50, 0),
	}
}

// LoadFonts resolves the font handles from the font names in the
// given registry. Fonts that are not registered are left as
// [paint.NoFont], which backends draw with their first font.
func (t *Theme) LoadFonts(fonts *paint.Fonts) {
	get := func(name string) paint.Font {
		if name == "" {
			return paint.NoFont
		}
		f, ok := fonts.Font(name)
		if !ok {
			slog.Debug("theme: font not registered", "font", name)
		}
		return f
	}
	t.FontNormal = get(t.FontNormalName)
	t.FontBold = get(t.FontBoldName)
	t.FontIcons = get(t.FontIconsName)
}

// Clone returns a deep copy of the theme, including its font handles.
func (t *Theme) Clone() *Theme {
	c := &Theme{}
	if err := copier.CopyWithOption(c, t, copier.Option{DeepCopy: true}); err != nil {
		slog.Error("theme.Clone: " + err.Error())
	}
	return c
}
