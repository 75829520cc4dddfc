// Copyright (c) 2024, The Alloy UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"github.com/BiBongNet/alloy-ui/colors"
	"github.com/BiBongNet/alloy-ui/config"
)

// ColorModel is the part of the color handling of an [HSVPalette]
// that palettes built on top of it can replace.
type ColorModel interface {

	// Alpha returns the current alpha (0-255).
	Alpha() int

	// HexValue returns the hex field value for the given '#'-prefixed
	// 6 digit hex color and color components.
	HexValue(hexColor string, rgba [4]int) string

	// NormalizeHex returns the full form of the given valid hex input.
	NormalizeHex(hex string) string

	// ValidHex returns whether the given hex input is accepted.
	ValidHex(hex string) bool

	// HexField returns the configuration of the hex field.
	HexField(strs config.Strings) Field
}

// hsvModel is the [ColorModel] of a plain [HSVPalette]: it is
// always opaque and uses 6 digit hex values.
type hsvModel struct{}

func (hsvModel) Alpha() int { return colors.MaxAlpha }

func (hsvModel) HexValue(hexColor string, rgba [4]int) string { return hexColor[1:] }

func (hsvModel) NormalizeHex(hex string) string { return hex }

func (hsvModel) ValidHex(hex string) bool { return colors.ValidHex(hex) }

func (hsvModel) HexField(strs config.Strings) Field {
	return Field{Label: strs.Hex, Type: TypeHex, Suffix: "-hex", MaxLength: 6, Value: "ff0000"}
}
