// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExistsFS(t *testing.T) {
	fsys := fstest.MapFS{
		"dir/a.toml": {Data: []byte("x = 1")},
	}
	ok, err := FileExistsFS(fsys, "dir/a.toml")
	assert.NoError(t, err)
	assert.True(t, ok)
	ok, err = FileExistsFS(fsys, "dir")
	assert.NoError(t, err)
	assert.False(t, ok)
	ok, err = FileExistsFS(fsys, "dir/b.toml")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestDirFS(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, "ui.yaml")
	require.NoError(t, os.WriteFile(fp, []byte("type: label"), 0666))
	fsys, fname, err := DirFS(fp)
	require.NoError(t, err)
	assert.Equal(t, "ui.yaml", fname)
	data, err := fsys.(interface {
		ReadFile(string) ([]byte, error)
	}).ReadFile(fname)
	require.NoError(t, err)
	assert.Equal(t, "type: label", string(data))

	ok, err := FileExists(fp)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestWatcher(t *testing.T) {
	DebounceDelay = 10 * time.Millisecond
	dir := t.TempDir()
	fp := filepath.Join(dir, "theme.toml")
	w, err := NewWatcher(fp)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("a"), 0666))
	require.NoError(t, os.WriteFile(fp, []byte("a"), 0666))
	select {
	case name := <-w.Changed():
		assert.Equal(t, fp, name)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
	require.NoError(t, w.Close())
	for range w.Changed() {
	}
}
