// Copyright (c) 2024, The Alloy UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/BiBongNet/alloy-ui/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(flags *rootFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective palette config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var f config.Formats
			switch strings.ToLower(format) {
			case "toml":
				f = config.TOML
			case "yaml", "yml":
				f = config.YAML
			default:
				return fmt.Errorf("config: %w: %q", config.ErrUnknownFormat, format)
			}
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			b, err := config.Write(cfg, f)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toml", "Output format (toml or yaml)")

	return cmd
}
