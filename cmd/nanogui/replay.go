// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/nanogui/driver/offscreen"
	"github.com/spf13/cobra"
)

func newReplayCmd() *cobra.Command {
	o := &screenOptions{}
	var script string
	cmd := &cobra.Command{
		Use:   "replay --ui FILE --events FILE [-o out.png]",
		Short: "Play an input script against a UI file",
		Long: `Replay builds the screen of a UI file and plays the steps of an input
script against it, one frame per step. Changes of the hovered and focused
widgets are logged with -v. Steps can save snapshots, and the last frame
is saved to the output file if one is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if script == "" {
				return fmt.Errorf("the --events flag is required")
			}
			s, err := offscreen.OpenScript(script)
			if err != nil {
				return err
			}
			th, err := o.loadTheme()
			if err != nil {
				return err
			}
			h, err := o.newHost(th)
			if err != nil {
				return err
			}
			defer h.Close()
			if err := h.Play(s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "played %d steps in %d frames\n", len(s.Steps), h.Frames)
			if o.output == "" {
				return nil
			}
			return h.SavePNG(o.output)
		},
	}
	o.addFlags(cmd.Flags(), "")
	cmd.Flags().StringVar(&script, "events", "", "input script file (.toml, .yaml or .yml)")
	return cmd
}
