// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/nanogui/base/fsx"
	"cogentcore.org/nanogui/base/iox/imagex"
	"cogentcore.org/nanogui/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUI = `
caption: cli
size: [120, 80]
widgets:
  - type: window
    name: win
    title: Hi
    pos: [10, 10]
    layout: {orientation: vertical, margin: 8}
    children:
      - type: label
        caption: hello
`

// run executes the root command with the given arguments,
// returning its standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"-q"}, args...))
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0o644))
	return fn
}

func TestParseSize(t *testing.T) {
	sz, err := parseSize("640x480")
	require.NoError(t, err)
	assert.Equal(t, [2]int32{640, 480}, sz)
	sz, err = parseSize("10X20")
	require.NoError(t, err)
	assert.Equal(t, [2]int32{10, 20}, sz)

	for _, s := range []string{"", "640", "ax480", "640xb", "0x10", "-5x5"} {
		_, err := parseSize(s)
		assert.Error(t, err, s)
	}
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	ui := writeFile(t, dir, "ui.yaml", testUI)
	out := filepath.Join(dir, "out.png")
	_, err := run(t, "render", "--ui", ui, "-o", out, "--size", "60x40", "--ratio", "2")
	require.NoError(t, err)
	img, _, err := imagex.Open(out)
	require.NoError(t, err)
	// the image is the framebuffer, at twice the screen size
	assert.Equal(t, 60, img.Bounds().Dx())
	assert.Equal(t, 40, img.Bounds().Dy())

	gg := filepath.Join(dir, "gg.png")
	_, err = run(t, "render", "--ui", ui, "-o", gg, "--backend", "gg")
	require.NoError(t, err)
	img, _, err = imagex.Open(gg)
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	ui := writeFile(t, dir, "ui.yaml", testUI)
	_, err := run(t, "render")
	assert.ErrorContains(t, err, "--ui")
	_, err = run(t, "render", "--ui", ui, "--backend", "metal")
	assert.ErrorContains(t, err, "unknown backend")
	_, err = run(t, "render", "--ui", ui, "--size", "big")
	assert.ErrorContains(t, err, "invalid size")
	_, err = run(t, "render", "--ui", ui, "--theme", filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
	_, err = run(t, "render", "extra")
	assert.Error(t, err)
}

func TestReplay(t *testing.T) {
	dir := t.TempDir()
	ui := writeFile(t, dir, "ui.yaml", testUI)
	script := writeFile(t, dir, "script.toml", `
[[steps]]
type = "mouse-move"
pos = [20, 20]

[[steps]]
type = "mouse-down"
button = "left"
pos = [20, 20]
`)
	out := filepath.Join(dir, "last.png")
	stdout, err := run(t, "replay", "--ui", ui, "--events", script, "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "played 2 steps in 2 frames")
	ok, err := fsx.FileExists(out)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = run(t, "replay", "--ui", ui)
	assert.ErrorContains(t, err, "--events")
}

func TestThemeCmd(t *testing.T) {
	stdout, err := run(t, "theme", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "standardfontsize: 16")

	stdout, err = run(t, "theme")
	require.NoError(t, err)
	assert.Contains(t, stdout, "StandardFontSize = 16")

	fn := filepath.Join(t.TempDir(), "dark.yaml")
	_, err = run(t, "theme", "-o", fn)
	require.NoError(t, err)
	th, err := theme.Open(fn)
	require.NoError(t, err)
	assert.Equal(t, theme.Default().WindowFillFocused, th.WindowFillFocused)

	_, err = run(t, "theme", "--format", "json")
	assert.Error(t, err)
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	o := &screenOptions{
		ui:      writeFile(t, dir, "ui.yaml", testUI),
		theme:   writeFile(t, dir, "theme.toml", "StandardFontSize = 20\n"),
		backend: "raster",
		output:  filepath.Join(dir, "watch.png"),
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- o.watch(ctx) }()
	assert.Eventually(t, func() bool {
		ok, _ := fsx.FileExists(o.output)
		return ok
	}, 5*time.Second, 10*time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not return after cancel")
	}
}
