// Copyright (c) 2024, The Alloy UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"

	"github.com/BiBongNet/alloy-ui/base/logx"
	"github.com/BiBongNet/alloy-ui/config"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	vv         bool
	verbose    bool
	quiet      bool
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "alloy-palette",
		Short:         "Convert, validate and preview colors with the alloy palettes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(flags.vv, flags.verbose, flags.quiet)
			logx.SetDefaultLoggerTo(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().BoolVar(&flags.vv, "vv", false, "Enable very verbose (debug) logging")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVarP(&flags.quiet, "quiet", "q", false, "Only log errors")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Palette config file (.toml, .yaml or .yml)")

	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newNormalizeCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newSwatchCmd())
	cmd.AddCommand(newPickCmd(flags))
	cmd.AddCommand(newConfigCmd(flags))

	return cmd
}

// loadConfig returns the config selected by the --config flag,
// or the default config.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	if flags.configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Open(flags.configPath)
	if err != nil {
		return nil, err
	}
	slog.Info("loaded config", "path", flags.configPath)
	return cfg, nil
}
