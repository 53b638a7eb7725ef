// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record,
// with the level name colored according to its severity using
// the color profile of the output terminal. Records below
// [UserLevel] are dropped.
type Handler struct {
	out    *termenv.Output
	mu     *sync.Mutex
	attrs  []slog.Attr
	groups []string
}

// NewHandler returns a new [Handler] writing to the given output.
// A nil output writes to stderr with its detected color profile.
func NewHandler(out *termenv.Output) *Handler {
	if out == nil {
		out = termenv.NewOutput(os.Stderr)
	}
	return &Handler{out: out, mu: &sync.Mutex{}}
}

// NewWriterHandler returns a new [Handler] writing plain, uncolored
// text to the given writer.
func NewWriterHandler(w io.Writer) *Handler {
	return NewHandler(termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii)))
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= UserLevel
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(h.levelString(r.Level))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	prefix := ""
	if len(h.groups) > 0 {
		prefix = strings.Join(h.groups, ".") + "."
	}
	write := func(a slog.Attr) bool {
		if a.Equal(slog.Attr{}) {
			return true
		}
		fmt.Fprintf(&sb, " %s%s=%v", prefix, a.Key, a.Value.Resolve())
		return true
	}
	for _, a := range h.attrs {
		write(a)
	}
	r.Attrs(write)
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.WriteString(sb.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.groups = append(append([]string{}, h.groups...), name)
	return &nh
}

// levelString returns the name of the given level, colored for the output.
func (h *Handler) levelString(l slog.Level) string {
	s := h.out.String(l.String())
	switch {
	case l >= slog.LevelError:
		s = s.Foreground(h.out.Color("#ff5555")).Bold()
	case l >= slog.LevelWarn:
		s = s.Foreground(h.out.Color("#ffb86c"))
	case l >= slog.LevelInfo:
		s = s.Foreground(h.out.Color("#8be9fd"))
	default:
		s = s.Faint()
	}
	return s.String()
}
