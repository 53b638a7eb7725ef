// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command nanogui renders declarative UI files offscreen, replays
// input scripts against them and writes theme files.
package main

import (
	"os"

	"cogentcore.org/nanogui/base/errors"
	"cogentcore.org/nanogui/base/logx"
	"github.com/spf13/cobra"
)

func main() {
	if errors.Log(newRootCmd().Execute()) != nil {
		os.Exit(1)
	}
}

// newRootCmd returns the root command with all of its subcommands.
func newRootCmd() *cobra.Command {
	var vv, v, q bool
	root := &cobra.Command{
		Use:   "nanogui",
		Short: "Render and drive nanogui widget trees offscreen",
		Long: `nanogui builds a screen of widgets from a TOML or YAML UI file and
renders it offscreen to an image.

Available commands:
  render  - render a UI file to an image
  replay  - play an input script against a UI file
  theme   - write the default theme
  watch   - re-render a UI file whenever it or its theme changes`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(vv, v, q)
			logx.SetDefaultLogger()
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVarP(&v, "verbose", "v", false, "show info messages")
	pf.BoolVar(&vv, "vv", false, "show debug messages")
	pf.BoolVarP(&q, "quiet", "q", false, "only show errors")

	root.AddCommand(newRenderCmd(), newReplayCmd(), newThemeCmd(), newWatchCmd())
	return root
}
