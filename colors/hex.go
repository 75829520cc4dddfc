// Copyright (c) 2024, The Alloy UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"regexp"
	"strconv"
	"strings"

	"github.com/BiBongNet/alloy-ui/base/errors"
)

var (
	// ErrInvalidHex is returned for hex strings that do not match
	// the expected pattern.
	ErrInvalidHex = errors.New("invalid hex color")

	// ErrInvalidColor is returned for color strings that cannot be parsed.
	ErrInvalidColor = errors.New("invalid color")
)

var (
	// HexPattern matches 3 or 6 hex digits, without a leading '#'.
	HexPattern = regexp.MustCompile(`(?i)^([a-f0-9]{6}|[a-f0-9]{3})$`)

	// HexAlphaPattern matches 3, 6 or 8 hex digits, without a leading '#'.
	HexAlphaPattern = regexp.MustCompile(`(?i)^([a-f0-9]{6}|[a-f0-9]{8}|[a-f0-9]{3})$`)
)

const (
	// hexPadding3 completes a 3 digit hex value to 8 digits.
	hexPadding3 = "fffff"

	// hexPadding6 completes a 6 digit hex value with full alpha.
	hexPadding6 = "ff"
)

// ValidHex returns whether the given string is a 3 or 6 digit hex color.
func ValidHex(hex string) bool {
	return HexPattern.MatchString(hex)
}

// ValidHexAlpha returns whether the given string is a 3, 6
// or 8 digit hex color.
func ValidHexAlpha(hex string) bool {
	return HexAlphaPattern.MatchString(hex)
}

// NormalizeHex pads the given hex value to 8 digits: a 3 digit
// value gets "fffff" appended and a 6 digit value gets "ff" (full
// alpha). Values of any other length are returned unchanged.
// Note that the 3 digit form is padded, not expanded: "f0a"
// becomes "f0afffff".
func NormalizeHex(hex string) string {
	switch len(hex) {
	case 3:
		return hex + hexPadding3
	case 6:
		return hex + hexPadding6
	}
	return hex
}

// AlphaHex returns the given alpha (0-255) as two
// lowercase hex digits.
func AlphaHex(a int) string {
	s := strconv.FormatInt(int64(a), 16)
	if len(s) == 1 {
		s = "0" + s
	}
	return s
}

// AlphaFromHex returns the alpha encoded in the last two
// digits of the given 8 digit hex value.
func AlphaFromHex(hex string) (int, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 8 {
		return 0, fmt.Errorf("colors.AlphaFromHex: %w: %q does not have 8 digits", ErrInvalidHex, hex)
	}
	a, err := strconv.ParseUint(hex[6:8], 16, 8)
	if err != nil {
		return 0, fmt.Errorf("colors.AlphaFromHex: %w: %q: %w", ErrInvalidHex, hex, err)
	}
	return int(a), nil
}

// HexValue returns the 8 digit hex value for the given '#'-prefixed
// 6 digit hex color and the alpha of the given components, without
// the leading '#'.
func HexValue(hexColor string, rgba [4]int) string {
	result := hexColor + AlphaHex(rgba[3])
	return result[1:]
}

// ToHex returns the '#'-prefixed 6 digit hex string for the given
// color string. Any alpha in the input is dropped.
func ToHex(s string) (string, error) {
	c, err := Parse(s)
	if err != nil {
		return "", fmt.Errorf("colors.ToHex: %w", err)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), nil
}

// FromHex parses the given 3, 6 or 8 digit hex color string, with or
// without a leading '#'. The 3 digit form is expanded as in CSS.
func FromHex(hex string) (color.NRGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	if !ValidHexAlpha(hex) {
		return color.NRGBA{}, fmt.Errorf("colors.FromHex: %w: %q", ErrInvalidHex, hex)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += hexPadding6
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("colors.FromHex: %w: %q: %w", ErrInvalidHex, hex, err)
	}
	return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// AsHex returns the given color as an 8 digit lowercase
// hex string (RRGGBBAA) without a leading '#'.
func AsHex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
