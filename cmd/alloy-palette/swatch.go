// Copyright (c) 2024, The Alloy UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"io"

	"github.com/BiBongNet/alloy-ui/colors"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// colorModes are the values of the --color flag.
var colorModes = map[string]termenv.Profile{
	"always": termenv.TrueColor,
	"never":  termenv.Ascii,
}

// newOutput returns a terminal output for w in the given color mode:
// auto detects the color support of w.
func newOutput(w io.Writer, mode string) (*termenv.Output, error) {
	if mode == "" || mode == "auto" {
		return termenv.NewOutput(w), nil
	}
	profile, ok := colorModes[mode]
	if !ok {
		return nil, fmt.Errorf("unknown color mode %q (expected auto, always or never)", mode)
	}
	return termenv.NewOutput(w, termenv.WithProfile(profile)), nil
}

// swatch returns a block of the given width in the given color,
// followed by its hex value.
func swatch(out *termenv.Output, c color.NRGBA, width int) string {
	block := make([]byte, width)
	for i := range block {
		block[i] = ' '
	}
	rgb := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	return out.String(string(block)).Background(out.Color(rgb)).String() + " " + colors.AsHex(c)
}

func newSwatchCmd() *cobra.Command {
	var (
		mode  string
		width int
	)

	cmd := &cobra.Command{
		Use:   "swatch <color>...",
		Short: "Preview colors in the terminal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := newOutput(cmd.OutOrStdout(), mode)
			if err != nil {
				return err
			}
			for _, arg := range args {
				c, err := colors.Parse(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), swatch(out, c, width))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "color", "auto", "When to use colors (auto, always or never)")
	cmd.Flags().IntVarP(&width, "width", "w", 4, "Width of each swatch, in cells")

	return cmd
}
