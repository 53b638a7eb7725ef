// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/nanogui/theme"
	"github.com/spf13/cobra"
)

func newThemeCmd() *cobra.Command {
	var format, output string
	cmd := &cobra.Command{
		Use:   "theme [--format toml|yaml] [-o FILE]",
		Short: "Write the default theme",
		Long: `Theme writes the default theme, to standard output in the given format,
or to the given file in the format of its extension. The result is a
starting point for a custom theme file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := theme.Default()
			if output != "" {
				return t.Save(output)
			}
			return t.Write(cmd.OutOrStdout(), theme.Format(format))
		},
	}
	cmd.Flags().StringVar(&format, "format", string(theme.TOML), "format for standard output: toml or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output theme file")
	return cmd
}
