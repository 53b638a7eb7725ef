// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uifile loads declarative descriptions of a [core.Screen]
// and its widget tree from TOML or YAML files.
//
// A minimal YAML file:
//
//	caption: demo
//	size: [400, 300]
//	widgets:
//	  - type: window
//	    title: Hello
//	    pos: [15, 15]
//	    layout: {orientation: vertical, margin: 10, spacing: 6}
//	    children:
//	      - type: label
//	        caption: Hello, world
package uifile

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"cogentcore.org/nanogui/base/fsx"
	"cogentcore.org/nanogui/base/iox/tomlx"
	"cogentcore.org/nanogui/base/iox/yamlx"
	"cogentcore.org/nanogui/colors"
	"cogentcore.org/nanogui/theme"
)

// Format is a UI file format.
type Format = theme.Format

// File is the contents of a UI description file.
type File struct {

	// Caption is the caption of the screen.
	Caption string

	// Size is the framebuffer size of the screen.
	// It defaults to [DefaultSize].
	Size [2]int32

	// Ratio is the pixel ratio of the screen. It defaults to 1.
	Ratio float32

	// Background is the background color of the screen.
	Background colors.Color

	// Theme is the path of a theme file, relative to the UI file.
	// Without it, the default theme is used.
	Theme string

	// Widgets are the top-level children of the screen.
	Widgets []Node

	// fsys is the file system the file was opened from,
	// used to resolve Theme.
	fsys fs.FS

	// dir is the directory of the file within fsys.
	dir string
}

// DefaultSize is the screen size used when a file does not give one.
var DefaultSize = [2]int32{800, 600}

// Open opens the UI file with the given path, in the format given by
// its extension. A leading ~ is expanded to the home directory.
func Open(filename string) (*File, error) {
	fsys, fname, err := fsx.DirFS(filename)
	if err != nil {
		return nil, fmt.Errorf("uifile: %w", err)
	}
	return OpenFS(fsys, fname)
}

// OpenFS opens the UI file with the given path in the given file system.
func OpenFS(fsys fs.FS, filename string) (*File, error) {
	fm, err := formatFromFilename(filename)
	if err != nil {
		return nil, err
	}
	f := &File{fsys: fsys, dir: path.Dir(filename)}
	switch fm {
	case theme.TOML:
		err = tomlx.OpenFS(f, fsys, filename)
	default:
		err = yamlx.OpenFS(f, fsys, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("uifile: opening %q: %w", filename, err)
	}
	return f, nil
}

// Read reads a UI file in the given format from r.
// A theme named by the file is resolved relative to the
// current directory.
func Read(r io.Reader, fm Format) (*File, error) {
	f := &File{}
	var err error
	switch fm {
	case theme.TOML:
		err = tomlx.Read(f, r)
	case theme.YAML:
		err = yamlx.Read(f, r)
	default:
		return nil, fmt.Errorf("uifile: unknown format %q", fm)
	}
	if err != nil {
		return nil, fmt.Errorf("uifile: %w", err)
	}
	return f, nil
}

func formatFromFilename(filename string) (Format, error) {
	fm, err := theme.FormatFromFilename(filename)
	if err != nil {
		return "", fmt.Errorf("uifile: unsupported file type %q (must be .toml, .yaml or .yml)", filename)
	}
	return fm, nil
}

// LoadTheme returns the theme named by the file, or the default theme
// if it does not name one.
func (f *File) LoadTheme() (*theme.Theme, error) {
	if f.Theme == "" {
		return theme.Default(), nil
	}
	fm, err := theme.FormatFromFilename(f.Theme)
	if err != nil {
		return nil, err
	}
	if f.fsys == nil || filepath.IsAbs(f.Theme) || strings.HasPrefix(f.Theme, "~") {
		return theme.Open(f.Theme)
	}
	name := path.Join(f.dir, filepath.ToSlash(f.Theme))
	r, err := f.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("uifile: opening theme: %w", err)
	}
	defer r.Close()
	th := theme.Default()
	if err := th.Read(r, fm); err != nil {
		return nil, fmt.Errorf("uifile: reading theme %q: %w", name, err)
	}
	return th, nil
}
