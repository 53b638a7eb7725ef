// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/nanogui/base/errors"
	"cogentcore.org/nanogui/base/fsx"
	"cogentcore.org/nanogui/theme"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	o := &screenOptions{}
	cmd := &cobra.Command{
		Use:   "watch --ui FILE [--theme FILE] [-o out.png]",
		Short: "Re-render a UI file whenever it or its theme changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return o.watch(ctx)
		},
	}
	o.addFlags(cmd.Flags(), "out.png")
	return cmd
}

// watch renders once and then again on every change of the UI file
// or the theme file, until the context is done. Render errors are
// logged and do not stop the watch.
func (o *screenOptions) watch(ctx context.Context) error {
	th, err := o.loadTheme()
	if err != nil {
		return err
	}
	errors.Log(o.render(th))

	uw, err := fsx.NewWatcher(o.ui)
	if err != nil {
		return err
	}
	defer uw.Close()
	var themes <-chan *theme.Theme
	if o.theme != "" {
		tw, err := theme.Watch(o.theme)
		if err != nil {
			return err
		}
		defer tw.Close()
		themes = tw.Updates()
	}
	slog.Info("watching", "ui", o.ui, "theme", o.theme)
	for {
		select {
		case <-ctx.Done():
			return nil
		case name, ok := <-uw.Changed():
			if !ok {
				return nil
			}
			slog.Info("changed", "file", name)
			errors.Log(o.render(th))
		case nt, ok := <-themes:
			if !ok {
				themes = nil
				continue
			}
			th = nt
			errors.Log(o.render(th))
		}
	}
}
