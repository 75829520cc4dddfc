// Copyright (c) 2024, The Alloy UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/BiBongNet/alloy-ui/colors"
	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	from, to := colors.Hex, colors.RGB

	cmd := &cobra.Command{
		Use:   "convert <value>...",
		Short: "Convert colors between hex, rgb and hsv",
		Example: `  alloy-palette convert 00ff0080
  alloy-palette convert --from rgb --to hsv "rgb(0, 0, 255)"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				out, err := colors.Convert(strings.TrimPrefix(arg, "#"), from, to)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}

	cmd.Flags().Var(&from, "from", "Kind of the input values (hex, rgb or hsv)")
	cmd.Flags().Var(&to, "to", "Kind of the output values (hex, rgb or hsv)")

	return cmd
}

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <hex>...",
		Short: "Pad 3 and 6 digit hex colors to 8 digits",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				hex := strings.ToLower(strings.TrimPrefix(arg, "#"))
				if !colors.ValidHexAlpha(hex) {
					return fmt.Errorf("normalize: %w: %q", colors.ErrInvalidHex, arg)
				}
				fmt.Fprintln(cmd.OutOrStdout(), colors.NormalizeHex(hex))
			}
			return nil
		},
	}
}

func newValidateCmd() *cobra.Command {
	var opaque bool

	cmd := &cobra.Command{
		Use:   "validate <hex>...",
		Short: "Check hex colors against the palette hex pattern",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			valid := colors.ValidHexAlpha
			if opaque {
				valid = colors.ValidHex
			}
			invalid := 0
			for _, arg := range args {
				status := "valid"
				if !valid(arg) {
					status = "invalid"
					invalid++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", arg, status)
			}
			if invalid > 0 {
				return fmt.Errorf("validate: %d of %d values are not valid hex colors", invalid, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opaque, "opaque", false, "Only accept 3 and 6 digit hex colors")

	return cmd
}
