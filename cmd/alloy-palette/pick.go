// Copyright (c) 2024, The Alloy UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/BiBongNet/alloy-ui/colors"
	"github.com/BiBongNet/alloy-ui/palette"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type pickOptions struct {
	typ    string
	color  string
	thumb  []float64
	value  float64
	alpha  int
	inputs []string
	swatch bool
	mode   string
}

// The optional palette operations driven by pick.
type (
	thumbMover  interface{ MoveThumb(x, y float64) }
	valueSetter interface{ SetValueSlider(v float64) }
	alphaSetter interface{ SetAlpha(a int) }
)

func newPickCmd(flags *rootFlags) *cobra.Command {
	opts := &pickOptions{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Drive a palette and print the state of its controls as YAML",
		Long: `Pick builds a palette, applies the given interactions in order
(color, thumb, value slider, field inputs, alpha) and prints
the resulting state of the palette controls as YAML.`,
		Example: `  alloy-palette pick --color 00ff00 --alpha 128
  alloy-palette pick --input hex=f0a --input alpha=64
  alloy-palette pick --type hsv-palette --thumb 90,90 --value 50`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			w, err := palette.New(opts.typ, cfg)
			if err != nil {
				return err
			}
			if err := runPick(w, opts); err != nil {
				return err
			}

			st := w.State()
			if opts.swatch {
				out, err := newOutput(cmd.OutOrStdout(), opts.mode)
				if err != nil {
					return err
				}
				c, err := colors.FromHex(st.Hex)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), swatch(out, c, 4))
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(st); err != nil {
				return fmt.Errorf("pick: encode state: %w", err)
			}
			return enc.Close()
		},
	}

	cmd.Flags().StringVarP(&opts.typ, "type", "t", "hsva-palette", "Palette type ("+strings.Join(palette.TypeNames(), ", ")+")")
	cmd.Flags().StringVar(&opts.color, "color", "", "Initial color (hex, rgb(a), hsv(a) or a color name)")
	cmd.Flags().Float64SliceVar(&opts.thumb, "thumb", nil, "Move the hue/saturation thumb to x,y")
	cmd.Flags().Float64Var(&opts.value, "value", -1, "Move the value slider to this position (0-100)")
	cmd.Flags().IntVar(&opts.alpha, "alpha", -1, "Set the alpha (0-255) with the alpha slider")
	cmd.Flags().StringArrayVarP(&opts.inputs, "input", "i", nil, "Enter text in a field, as field=text (repeatable)")
	cmd.Flags().BoolVar(&opts.swatch, "swatch", false, "Print a swatch of the picked color first")
	cmd.Flags().StringVar(&opts.mode, "color-mode", "auto", "When to use colors in the swatch (auto, always or never)")

	return cmd
}

// runPick applies the interactions of opts to w, in order.
func runPick(w palette.Widget, opts *pickOptions) error {
	if opts.color != "" {
		if err := w.SetColor(opts.color); err != nil {
			return err
		}
	}
	if opts.thumb != nil {
		if len(opts.thumb) != 2 {
			return fmt.Errorf("pick: --thumb takes x,y, got %d values", len(opts.thumb))
		}
		tm, ok := w.(thumbMover)
		if !ok {
			return fmt.Errorf("pick: %s has no hue/saturation plane", w.Name())
		}
		tm.MoveThumb(opts.thumb[0], opts.thumb[1])
	}
	if opts.value >= 0 {
		vs, ok := w.(valueSetter)
		if !ok {
			return fmt.Errorf("pick: %s has no value slider", w.Name())
		}
		vs.SetValueSlider(opts.value)
	}
	for _, in := range opts.inputs {
		field, text, ok := strings.Cut(in, "=")
		if !ok {
			return fmt.Errorf("pick: --input %q is not of the form field=text", in)
		}
		slog.Debug("pick: input", "field", field, "text", text)
		if err := w.Input(palette.FieldTypes(strings.TrimSpace(field)), text); err != nil {
			return err
		}
	}
	if opts.alpha >= 0 {
		as, ok := w.(alphaSetter)
		if !ok {
			return fmt.Errorf("pick: %s has no alpha slider", w.Name())
		}
		if opts.alpha > colors.MaxAlpha {
			return fmt.Errorf("pick: alpha %d is out of range [0, %d]", opts.alpha, colors.MaxAlpha)
		}
		as.SetAlpha(opts.alpha)
	}
	return nil
}
