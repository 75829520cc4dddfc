// Copyright (c) 2024, The Alloy UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import "github.com/BiBongNet/alloy-ui/styles"

// State is a snapshot of the controls of a palette.
type State struct {
	Name    string            `yaml:"name"`
	Color   string            `yaml:"color"`
	Hex     string            `yaml:"hex"`
	Fields  map[string]string `yaml:"fields"`
	Thumb   [2]float64        `yaml:"thumb"`
	Preview string            `yaml:"preview"`

	ValueSlider           float64 `yaml:"value_slider"`
	ValueSliderBackground string  `yaml:"value_slider_background"`

	// AlphaSlider is nil for palettes without an alpha channel.
	AlphaSlider           *float64 `yaml:"alpha_slider,omitempty"`
	AlphaSliderBackground string   `yaml:"alpha_slider_background,omitempty"`
}

// State returns a snapshot of the palette controls.
func (p *HSVPalette) State() State {
	st := State{
		Name:                  p.Name(),
		Color:                 p.HSV().String(),
		Hex:                   p.Hex(),
		Fields:                map[string]string{},
		Preview:               p.ResultView.CSS(),
		ValueSlider:           p.ValueSlider.Value(),
		ValueSliderBackground: p.ValueSliderContainer.Style(styles.BackgroundColor),
	}
	st.Thumb[0], st.Thumb[1] = p.ThumbXY()
	for _, f := range p.fields {
		st.Fields[string(f.Type)] = f.Value
	}
	return st
}

// State returns a snapshot of the palette controls.
func (p *HSVAPalette) State() State {
	st := p.HSVPalette.State()
	st.Name = p.Name()
	a := p.AlphaSlider.Value()
	st.AlphaSlider = &a
	st.AlphaSliderBackground = p.AlphaSliderContainer.Style(styles.BackgroundColor)
	return st
}
