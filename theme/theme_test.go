// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/nanogui/base/fsx"
	"cogentcore.org/nanogui/colors"
	"cogentcore.org/nanogui/paint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	th := Default()
	assert.Equal(t, int32(16), th.StandardFontSize)
	assert.Equal(t, int32(20), th.ButtonFontSize)
	assert.Equal(t, int32(20), th.TextBoxFontSize)
	assert.Equal(t, int32(2), th.WindowCornerRadius)
	assert.Equal(t, int32(30), th.WindowHeaderHeight)
	assert.Equal(t, int32(10), th.WindowDropShadowSize)
	assert.Equal(t, int32(2), th.ButtonCornerRadius)
	assert.Equal(t, colors.RGBA(0, 0, 0, 128), th.DropShadow)
	assert.Equal(t, colors.RGBA(255, 255, 255, 160), th.TextColor)
	assert.Equal(t, colors.RGBA(45, 45, 45, 230), th.WindowFillFocused)
	assert.Equal(t, colors.RGBA(50, 50, 50, 0), th.WindowPopupTransparent)
	assert.Equal(t, paint.NoFont, th.FontNormal)
}

func TestLoadFonts(t *testing.T) {
	th := Default()
	th.LoadFonts(paint.DefaultFonts())
	assert.Equal(t, paint.Font(0), th.FontNormal)
	assert.Equal(t, paint.Font(1), th.FontBold)
	assert.Equal(t, paint.NoFont, th.FontIcons)
}

func TestClone(t *testing.T) {
	th := Default()
	th.LoadFonts(paint.DefaultFonts())
	c := th.Clone()
	assert.Equal(t, th, c)
	c.TextColor = colors.Black
	c.StandardFontSize = 8
	assert.Equal(t, colors.RGBA(255, 255, 255, 160), th.TextColor)
	assert.Equal(t, int32(16), th.StandardFontSize)
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, fn := range []string{"theme.toml", "theme.yaml"} {
		th := Default()
		th.StandardFontSize = 18
		th.WindowFillFocused = colors.RGBA(10, 20, 30, 200)
		fp := filepath.Join(dir, fn)
		require.NoError(t, th.Save(fp))

		got, err := Open(fp)
		require.NoError(t, err, fn)
		assert.Equal(t, int32(18), got.StandardFontSize, fn)
		assert.Equal(t, colors.RGBA(10, 20, 30, 200), got.WindowFillFocused, fn)
		assert.Equal(t, th, got, fn)
	}

	_, err := Open(filepath.Join(dir, "theme.json"))
	assert.Error(t, err)
	_, err = Open(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestPartialFile(t *testing.T) {
	var b bytes.Buffer
	b.WriteString("StandardFontSize = 12\nTextColor = \"#ff0000\"\n")
	th := Default()
	require.NoError(t, th.Read(&b, TOML))
	assert.Equal(t, int32(12), th.StandardFontSize)
	assert.Equal(t, colors.RGBA(255, 0, 0, 255), th.TextColor)
	assert.Equal(t, int32(30), th.WindowHeaderHeight)

	b.Reset()
	require.NoError(t, th.Write(&b, TOML))
	assert.Contains(t, b.String(), "#ff0000")
	assert.Error(t, th.Write(&b, Format("json")))
}

func TestWatch(t *testing.T) {
	fsx.DebounceDelay = 10 * time.Millisecond
	fp := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, Default().Save(fp))
	w, err := Watch(fp)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(fp, []byte("ButtonFontSize = 24\n"), 0666))
	timeout := time.After(5 * time.Second)
	for {
		select {
		case th := <-w.Updates():
			if th.ButtonFontSize != 24 {
				continue // partially written file
			}
			assert.Equal(t, int32(16), th.StandardFontSize)
			return
		case <-timeout:
			t.Fatal("no theme update")
		}
	}
}
