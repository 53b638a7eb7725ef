// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtToFormat(t *testing.T) {
	f, err := ExtToFormat(".PNG")
	require.NoError(t, err)
	assert.Equal(t, PNG, f)
	f, err = ExtToFormat("jpg")
	require.NoError(t, err)
	assert.Equal(t, JPEG, f)
	_, err = ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat("svg")
	assert.Error(t, err)
}

func TestSaveOpen(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{200, 10, 20, 255})
	fn := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, Save(img, fn))

	got, f, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, PNG, f)
	assert.Equal(t, img.Bounds(), got.Bounds())
	assert.True(t, CompareColors(color.RGBA{200, 10, 20, 255}, color.RGBAModel.Convert(got.At(1, 1)).(color.RGBA), 0))
	assert.Same(t, img, AsRGBA(img))
}

func TestCompare(t *testing.T) {
	assert.True(t, CompareUint8(10, 15, 5))
	assert.False(t, CompareUint8(10, 16, 5))
	a := image.NewRGBA(image.Rect(0, 0, 1, 1))
	b := image.NewRGBA(image.Rect(0, 0, 1, 1))
	a.Set(0, 0, color.RGBA{10, 20, 30, 255})
	b.Set(0, 0, color.RGBA{15, 20, 10, 255})
	d := DiffImage(a, b).At(0, 0)
	assert.Equal(t, color.RGBA{5, 0, 20, 255}, color.RGBAModel.Convert(d))
}

type recordT struct {
	errs []string
}

func (r *recordT) Errorf(format string, args ...any) {
	r.errs = append(r.errs, fmt.Sprintf(format, args...))
}

func TestAssert(t *testing.T) {
	t.Chdir(t.TempDir())
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{100, 100, 100, 255})

	rt := &recordT{}
	Assert(rt, img, "golden")
	assert.Empty(t, rt.errs, "the first run saves the image")
	_, err := os.Stat(filepath.Join("testdata", "golden.png"))
	require.NoError(t, err)

	Assert(rt, img, "golden")
	assert.Empty(t, rt.errs)

	other := CloneAsRGBA(img)
	other.Set(1, 1, color.RGBA{255, 0, 0, 255})
	Assert(rt, other, "golden")
	require.Len(t, rt.errs, 1)
	assert.Contains(t, rt.errs[0], "not the same as expected")
	_, err = os.Stat(filepath.Join("testdata", "golden.diff.png"))
	assert.NoError(t, err)
}
