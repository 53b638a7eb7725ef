// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"io/fs"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordT struct {
	errs []any
}

func (r *recordT) Error(args ...any) {
	r.errs = append(r.errs, args...)
}

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("boom")
	assert.Equal(t, err, Log(err))

	assert.Equal(t, 3, Log1(strconv.Atoi("3")))
	assert.Equal(t, 0, Log1(strconv.Atoi("x")))
	assert.Equal(t, 0, Ignore1(strconv.Atoi("x")))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("boom")) })
	assert.Equal(t, 5, Must1(strconv.Atoi("5")))
	assert.Panics(t, func() { Must1(strconv.Atoi("y")) })
}

func TestWrapf(t *testing.T) {
	assert.NoError(t, Wrapf(nil, "reading %s", "x"))
	err := Wrapf(fs.ErrNotExist, "reading %s", "theme.toml")
	assert.EqualError(t, err, "reading theme.toml: file does not exist")
	assert.True(t, Is(err, fs.ErrNotExist))
}

func TestTest(t *testing.T) {
	r := &recordT{}
	Test(r, nil)
	assert.Empty(t, r.errs)
	v, err := strconv.Atoi("z")
	assert.Equal(t, 0, Test1(r, v, err))
	assert.Len(t, r.errs, 1)
}
