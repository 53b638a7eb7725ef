// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/nanogui/driver/offscreen"
	"cogentcore.org/nanogui/paint"
	"cogentcore.org/nanogui/theme"
	"cogentcore.org/nanogui/uifile"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// screenOptions are the flags shared by the commands that build
// a screen from a UI file.
type screenOptions struct {
	ui      string
	theme   string
	backend string
	size    string
	ratio   float32
	output  string
}

func (o *screenOptions) addFlags(fs *pflag.FlagSet, output string) {
	fs.StringVar(&o.ui, "ui", "", "UI file (.toml, .yaml or .yml)")
	fs.StringVar(&o.theme, "theme", "", "theme file, overriding the theme named by the UI file")
	fs.StringVar(&o.backend, "backend", string(offscreen.Raster), "rendering backend: raster or gg")
	fs.StringVar(&o.size, "size", "", "framebuffer size as WxH, overriding the UI file")
	fs.Float32Var(&o.ratio, "ratio", 0, "pixel ratio, overriding the UI file")
	fs.StringVarP(&o.output, "output", "o", output, "output image file")
}

// parseSize parses a size of the form WxH.
func parseSize(s string) ([2]int32, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return [2]int32{}, fmt.Errorf("invalid size %q (must be WxH)", s)
	}
	w, err := strconv.ParseInt(ws, 10, 32)
	if err != nil {
		return [2]int32{}, fmt.Errorf("invalid width in size %q: %w", s, err)
	}
	h, err := strconv.ParseInt(hs, 10, 32)
	if err != nil {
		return [2]int32{}, fmt.Errorf("invalid height in size %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return [2]int32{}, fmt.Errorf("invalid size %q (must be positive)", s)
	}
	return [2]int32{int32(w), int32(h)}, nil
}

// loadTheme returns the theme given by the flags, or nil to use
// the theme named by the UI file.
func (o *screenOptions) loadTheme() (*theme.Theme, error) {
	if o.theme == "" {
		return nil, nil
	}
	return theme.Open(o.theme)
}

// newHost builds the screen described by the flags with the given
// theme, or the theme of the UI file if it is nil.
func (o *screenOptions) newHost(th *theme.Theme) (*offscreen.Host, error) {
	if o.ui == "" {
		return nil, fmt.Errorf("the --ui flag is required")
	}
	f, err := uifile.Open(o.ui)
	if err != nil {
		return nil, err
	}
	if o.size != "" {
		if f.Size, err = parseSize(o.size); err != nil {
			return nil, err
		}
	}
	if o.ratio > 0 {
		f.Ratio = o.ratio
	}
	fonts := paint.DefaultFonts()
	ctx, err := offscreen.NewContext(offscreen.Backend(o.backend), fonts)
	if err != nil {
		return nil, err
	}
	sc, err := f.Build(ctx, fonts, th)
	if err != nil {
		return nil, err
	}
	return offscreen.New(sc), nil
}

// render builds the screen and saves one frame of it.
func (o *screenOptions) render(th *theme.Theme) error {
	h, err := o.newHost(th)
	if err != nil {
		return err
	}
	defer h.Close()
	return h.SavePNG(o.output)
}

func newRenderCmd() *cobra.Command {
	o := &screenOptions{}
	cmd := &cobra.Command{
		Use:   "render --ui FILE [-o out.png]",
		Short: "Render a UI file to an image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := o.loadTheme()
			if err != nil {
				return err
			}
			return o.render(th)
		},
	}
	o.addFlags(cmd.Flags(), "out.png")
	return cmd
}
