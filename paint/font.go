// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-text/typesetting/font"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Font is an opaque handle to a font registered in a [Fonts] registry.
type Font int32

// NoFont is the handle returned when no font is available.
const NoFont Font = -1

// fontEntry is one registered font.
type fontEntry struct {
	name   string
	family string
	data   []byte
}

// Fonts is a registry of font data, indexed both by name and by
// [Font] handle. It is safe for concurrent use, so that fonts can be
// loaded off the UI thread.
type Fonts struct {
	mu     sync.RWMutex
	fonts  []fontEntry
	byName map[string]Font
}

// NewFonts returns a new empty font registry.
func NewFonts() *Fonts {
	return &Fonts{byName: map[string]Font{}}
}

// DefaultFonts returns a registry with the standard fonts:
// "sans", "sans-bold" and "mono" from the Go font family, and
// "serif" from Latin Modern.
func DefaultFonts() *Fonts {
	fs := NewFonts()
	fs.mustAdd("sans", goregular.TTF)
	fs.mustAdd("sans-bold", gobold.TTF)
	fs.mustAdd("mono", gomono.TTF)
	fs.mustAdd("serif", lmroman10regular.TTF)
	return fs
}

func (fs *Fonts) mustAdd(name string, data []byte) {
	if _, err := fs.Add(name, data); err != nil {
		panic(err)
	}
}

// Add registers the given TrueType / OpenType font data under the
// given name, returning its handle. The data is parsed to make sure it
// is a usable font. Adding an existing name replaces its data and
// keeps its handle.
func (fs *Fonts) Add(name string, data []byte) (Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return NoFont, fmt.Errorf("paint.Fonts: parsing font %q: %w", name, err)
	}
	ent := fontEntry{name: name, family: face.Describe().Family, data: data}
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.byName == nil {
		fs.byName = map[string]Font{}
	}
	if f, ok := fs.byName[name]; ok {
		fs.fonts[f] = ent
		return f, nil
	}
	f := Font(len(fs.fonts))
	fs.fonts = append(fs.fonts, ent)
	fs.byName[name] = f
	return f, nil
}

// AddFile registers the font in the given file under the given name.
// A leading ~ in the path is expanded to the home directory.
func (fs *Fonts) AddFile(name, path string) (Font, error) {
	fp, err := homedir.Expand(path)
	if err != nil {
		return NoFont, err
	}
	data, err := os.ReadFile(fp)
	if err != nil {
		return NoFont, fmt.Errorf("paint.Fonts: loading font %q: %w", name, err)
	}
	return fs.Add(name, data)
}

// Font returns the handle of the font with the given name.
func (fs *Fonts) Font(name string) (Font, bool) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	f, ok := fs.byName[name]
	if !ok {
		return NoFont, false
	}
	return f, true
}

func (fs *Fonts) entry(f Font) (fontEntry, bool) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	if f < 0 || int(f) >= len(fs.fonts) {
		return fontEntry{}, false
	}
	return fs.fonts[f], true
}

// Name returns the registered name of the given font, or "" if
// the handle is not valid.
func (fs *Fonts) Name(f Font) string {
	ent, _ := fs.entry(f)
	return ent.name
}

// Family returns the family name recorded in the font data.
func (fs *Fonts) Family(f Font) string {
	ent, _ := fs.entry(f)
	return ent.family
}

// Data returns the raw font data, or nil if the handle is not valid.
func (fs *Fonts) Data(f Font) []byte {
	ent, _ := fs.entry(f)
	return ent.data
}

// Len returns the number of registered fonts.
func (fs *Fonts) Len() int {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return len(fs.fonts)
}

// Names returns the registered font names in handle order.
func (fs *Fonts) Names() []string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	names := make([]string, len(fs.fonts))
	for i, ent := range fs.fonts {
		names[i] = ent.name
	}
	return names
}
