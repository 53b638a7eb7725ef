// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen provides a host for a [core.Screen] that renders
// into an image instead of a system window, for testing, capturing
// and replaying scripted input.
package offscreen

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"time"

	"cogentcore.org/nanogui/base/iox/imagex"
	"cogentcore.org/nanogui/core"
	"cogentcore.org/nanogui/events"
	"cogentcore.org/nanogui/paint"
	"cogentcore.org/nanogui/paint/ggpaint"
	"cogentcore.org/nanogui/paint/raster"
)

// Backend is a rendering backend for offscreen drawing contexts.
type Backend string

const (
	// Raster renders with golang.org/x/image in pure Go.
	Raster Backend = "raster"

	// GG renders with github.com/gogpu/gg.
	GG Backend = "gg"
)

// NewContext returns a new drawing context for the given backend,
// resolving fonts in the given registry.
func NewContext(b Backend, fonts *paint.Fonts) (paint.Context, error) {
	switch b {
	case Raster, "":
		return raster.New(fonts), nil
	case GG:
		return ggpaint.New(fonts), nil
	}
	return nil, fmt.Errorf("offscreen: unknown backend %q (must be %q or %q)", b, Raster, GG)
}

// Host owns the framebuffer of a [core.Screen] and feeds it events.
// Events may be sent from any goroutine; they are handled and the
// screen is drawn on the goroutine that calls [Host.Step].
type Host struct {

	// Screen is the hosted screen.
	Screen *core.Screen

	// Events is the queue of events waiting for the next step.
	Events events.Queue

	// Frames is the number of frames drawn.
	Frames int

	// clock is the time reported to the screen.
	clock time.Time
}

// New returns a new host for the given screen. The screen uses the
// clock of the host, which starts at the current time and only moves
// forward with [Host.Advance].
func New(sc *core.Screen) *Host {
	h := &Host{Screen: sc, clock: time.Now()}
	h.Events.Init()
	sc.Now = h.Now
	sc.LastInteraction = h.clock
	return h
}

// Now returns the current time of the host clock.
func (h *Host) Now() time.Time {
	return h.clock
}

// Advance moves the host clock forward by d.
func (h *Host) Advance(d time.Duration) {
	h.clock = h.clock.Add(d)
}

// Send adds the given event to the queue.
func (h *Host) Send(ev events.Event) {
	h.Events.Send(ev)
}

// Step handles all of the queued events and then draws a frame,
// returning the number of events handled.
func (h *Host) Step() int {
	n := 0
	for ev := h.Events.NextEvent(); ev != nil; ev = h.Events.NextEvent() {
		h.Screen.HandleEvent(ev)
		n++
	}
	h.Screen.DrawWidgets()
	h.Frames++
	return n
}

// Run calls [Host.Step] at the given interval until the screen quits
// or the context is done, in which case it returns the context error.
func (h *Host) Run(ctx context.Context, interval time.Duration) error {
	tick := time.NewTicker(interval)
	defer tick.Stop()
	for {
		h.Step()
		if h.Screen.IsQuit() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
			h.Advance(interval)
		}
	}
}

// Image returns the image of the last frame, or nil if the drawing
// context of the screen does not render to an image.
func (h *Host) Image() image.Image {
	switch ctx := h.Screen.Context.(type) {
	case *raster.Context:
		if ctx.Image == nil {
			return nil
		}
		return ctx.Image
	case interface{ Image() image.Image }:
		return ctx.Image()
	}
	return nil
}

// SavePNG saves the image of the last frame to the given PNG file,
// drawing a frame first if none has been drawn.
func (h *Host) SavePNG(filename string) error {
	if h.Frames == 0 {
		h.Step()
	}
	img := h.Image()
	if img == nil {
		return fmt.Errorf("offscreen: the drawing context does not render to an image")
	}
	if err := imagex.Save(img, filename); err != nil {
		return fmt.Errorf("offscreen: saving %q: %w", filename, err)
	}
	slog.Info("saved frame", "file", filename, "frame", h.Frames)
	return nil
}

// Close releases the drawing context of the screen if it holds
// any resources.
func (h *Host) Close() error {
	if c, ok := h.Screen.Context.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
