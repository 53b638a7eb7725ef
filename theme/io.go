// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"cogentcore.org/nanogui/base/iox/tomlx"
	"cogentcore.org/nanogui/base/iox/yamlx"
)

// Format is a theme file format.
type Format string

const (
	// TOML is the TOML format, used for .toml files.
	TOML Format = "toml"

	// YAML is the YAML format, used for .yaml and .yml files.
	YAML Format = "yaml"
)

// FormatFromFilename returns the format for the extension of the
// given file name.
func FormatFromFilename(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("theme: unsupported file type %q (must be .toml, .yaml or .yml)", filename)
}

// Open returns the theme in the given file, in the format given by
// its extension. Values not present in the file keep their defaults.
func Open(filename string) (*Theme, error) {
	t := Default()
	if err := t.Open(filename); err != nil {
		return nil, err
	}
	return t, nil
}

// Open reads the given file into the theme, in the format given by
// its extension.
func (t *Theme) Open(filename string) error {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return err
	}
	switch f {
	case TOML:
		err = tomlx.Open(t, filename)
	default:
		err = yamlx.Open(t, filename)
	}
	if err != nil {
		return fmt.Errorf("theme: opening %q: %w", filename, err)
	}
	return nil
}

// Save writes the theme to the given file, in the format given by
// its extension.
func (t *Theme) Save(filename string) error {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return err
	}
	switch f {
	case TOML:
		err = tomlx.Save(t, filename)
	default:
		err = yamlx.Save(t, filename)
	}
	if err != nil {
		return fmt.Errorf("theme: saving %q: %w", filename, err)
	}
	return nil
}

// Read reads the theme in the given format from r.
func (t *Theme) Read(r io.Reader, f Format) error {
	switch f {
	case TOML:
		return tomlx.Read(t, r)
	case YAML:
		return yamlx.Read(t, r)
	}
	return fmt.Errorf("theme: unknown format %q", f)
}

// Write writes the theme in the given format to w.
func (t *Theme) Write(w io.Writer, f Format) error {
	switch f {
	case TOML:
		return tomlx.Write(t, w)
	case YAML:
		return yamlx.Write(t, w)
	}
	return fmt.Errorf("theme: unknown format %q", f)
}
