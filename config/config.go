// Copyright (c) 2024, The Alloy UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// structs for the color palettes.
package config

// Config is the main config struct that contains
// all of the configuration options for a palette.
type Config struct {

	// whether the numeric fields (hue, saturation, value,
	// red, green, blue and alpha) are shown and kept in sync
	Controls bool `default:"true" toml:"controls" yaml:"controls"`

	// the initial color, as an 8 digit hex value without a leading '#'
	Color string `default:"ff0000ff" toml:"color" yaml:"color" validate:"required,hexalpha"`

	// the width of the hue/saturation plane, in pixels
	Width float64 `default:"180" toml:"width" yaml:"width" validate:"gt=0"`

	// the height of the hue/saturation plane, in pixels
	Height float64 `default:"180" toml:"height" yaml:"height" validate:"gt=0"`

	// half the size of the hue/saturation thumb, in pixels; the thumb
	// position is offset by it so that its center marks the color
	ThumbGutter float64 `default:"7" toml:"thumb_gutter" yaml:"thumb_gutter" validate:"gte=0"`

	// the length of the value slider rail, in pixels
	ValueSliderLength float64 `default:"180" toml:"value_slider_length" yaml:"value_slider_length" validate:"gt=0"`

	// the length of the alpha slider rail, in pixels
	AlphaSliderLength float64 `default:"180" toml:"alpha_slider_length" yaml:"alpha_slider_length" validate:"gt=0"`

	// the prefix of the CSS class names
	ClassPrefix string `default:"alloy" toml:"class_prefix" yaml:"class_prefix" validate:"required"`

	// the labels of the fields
	Strings Strings `toml:"strings" yaml:"strings"`
}

// Strings are the labels of the palette fields.
type Strings struct {
	H   string `default:"H" toml:"h" yaml:"h" validate:"required"`
	S   string `default:"S" toml:"s" yaml:"s" validate:"required"`
	V   string `default:"V" toml:"v" yaml:"v" validate:"required"`
	R   string `default:"R" toml:"r" yaml:"r" validate:"required"`
	G   string `default:"G" toml:"g" yaml:"g" validate:"required"`
	B   string `default:"B" toml:"b" yaml:"b" validate:"required"`
	A   string `default:"A" toml:"a" yaml:"a" validate:"required"`
	Hex string `default:"Hex" toml:"hex" yaml:"hex" validate:"required"`
}
