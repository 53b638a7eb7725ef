// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the [Color] value type used by themes and
// widgets, with constructors, blending, contrast and hex text encoding.
package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a non alpha-premultiplied 8-bit RGBA color.
// It encodes as a hex string of the form "#rrggbb" or
// "#rrggbbaa" in text formats such as TOML and YAML.
type Color struct {
	color.NRGBA
}

// Standard colors.
var (
	Transparent = Color{}
	Black       = RGBA(0, 0, 0, 255)
	White       = RGBA(255, 255, 255, 255)
)

// RGBA returns a new [Color] with the given non-premultiplied components.
func RGBA(r, g, b, a uint8) Color {
	return Color{color.NRGBA{r, g, b, a}}
}

// FromIntensity returns a grey [Color] with all three color
// components set to the given intensity and the given alpha.
func FromIntensity(intensity, alpha uint8) Color {
	return RGBA(intensity, intensity, intensity, alpha)
}

// FromColor converts any [color.Color] to a [Color].
func FromColor(c color.Color) Color {
	if c == nil {
		return Transparent
	}
	return Color{color.NRGBAModel.Convert(c).(color.NRGBA)}
}

// FromHex parses the given hex string into a [Color]. The leading #
// is optional, and the string may have 3, 6 or 8 hex digits.
func FromHex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	alpha := uint8(255)
	if len(s) == 8 {
		a, err := strconv.ParseUint(s[6:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("colors.FromHex: invalid alpha in %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:6]
	}
	cf, err := colorful.Hex("#" + s)
	if err != nil {
		return Color{}, fmt.Errorf("colors.FromHex: %w", err)
	}
	r, g, b := cf.RGB255()
	return RGBA(r, g, b, alpha), nil
}

// Hex returns the color as a hex string, of the form "#rrggbb" when
// it is opaque and "#rrggbbaa" otherwise.
func (c Color) Hex() string {
	h := c.colorful().Hex()
	if c.A == 255 {
		return h
	}
	return fmt.Sprintf("%s%02x", h, c.A)
}

func (c Color) String() string {
	return c.Hex()
}

// MarshalText implements [encoding.TextMarshaler].
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Color) UnmarshalText(text []byte) error {
	nc, err := FromHex(string(text))
	if err != nil {
		return err
	}
	*c = nc
	return nil
}

// WithA returns the color with the alpha component set to the given value.
func (c Color) WithA(a uint8) Color {
	c.A = a
	return c
}

// IsNil returns whether the color is fully transparent black,
// the zero value.
func (c Color) IsNil() bool {
	return c == Color{}
}

// ToFloat64 returns the non-premultiplied components as values in [0, 1].
func (c Color) ToFloat64() (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255
}

// colorful returns the opaque [colorful.Color] of c.
func (c Color) colorful() colorful.Color {
	r, g, b, _ := c.ToFloat64()
	return colorful.Color{R: r, G: g, B: b}
}

// Blend returns the color a fraction t of the way from c to other,
// interpolating the color components in RGB space and the alpha linearly.
func Blend(c, other Color, t float64) Color {
	r, g, b := c.colorful().BlendRgb(other.colorful(), t).Clamped().RGB255()
	a := float64(c.A) + (float64(other.A)-float64(c.A))*t
	return RGBA(r, g, b, uint8(a+0.5))
}

// Contrasting returns black or white, whichever has the most
// contrast against the given color based on its perceptual lightness.
func Contrasting(c Color) Color {
	l, _, _ := c.colorful().Lab()
	if l > 0.5 {
		return Black
	}
	return White
}
