// Copyright (c) 2024, The Alloy UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the color math used by the palettes:
// HSV and HSVA color values, conversion to and from RGB(A) and hex
// strings, hex validation and normalization.
package colors

import (
	"fmt"
	"image/color"
	"math"

	"github.com/BiBongNet/alloy-ui/base/errors"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// MaxHue is the maximum hue, in degrees.
	MaxHue = 360

	// MaxSaturation is the maximum saturation, in percent.
	MaxSaturation = 100

	// MaxValue is the maximum value (brightness), in percent.
	MaxValue = 100

	// MinAlpha is the fully transparent alpha.
	MinAlpha = 0

	// MaxAlpha is the fully opaque alpha.
	MaxAlpha = 255
)

// HSVA represents a color in the HSV color space with an alpha channel.
type HSVA struct {

	// H is the hue of the color in degrees (0-360).
	H float64

	// S is the saturation of the color in percent (0-100).
	S float64

	// V is the value (brightness) of the color in percent (0-100).
	V float64

	// A is the alpha of the color (0-255).
	A uint8
}

// NewHSVA returns a new [HSVA] color from the given values.
func NewHSVA(h, s, v float64, a uint8) HSVA {
	return HSVA{H: h, S: s, V: v, A: a}
}

// HSVAFromColor converts the given color to an [HSVA] color.
// The hue of an achromatic color is 0.
func HSVAFromColor(c color.Color) HSVA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	cf := colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}
	h, s, v := cf.Hsv()
	return HSVA{H: h, S: s * 100, V: v * 100, A: n.A}
}

// RGBA implements the [color.Color] interface.
func (h HSVA) RGBA() (r, g, b, a uint32) {
	return h.AsNRGBA().RGBA()
}

// AsNRGBA returns the color as a non alpha-premultiplied [color.NRGBA].
// The red, green and blue components are those of [RGBAFromHSVA];
// the alpha is always h.A, including at the (360, 100, 100) boundary.
func (h HSVA) AsNRGBA() color.NRGBA {
	arr := errors.Log1(ToArray(RGBAFromHSVA(h.H, h.S, h.V, int(h.A))))
	return color.NRGBA{uint8(arr[0]), uint8(arr[1]), uint8(arr[2]), h.A}
}

// Round rounds all of the HSV components to the nearest integer.
func (h *HSVA) Round() {
	h.H = math.Round(h.H)
	h.S = math.Round(h.S)
	h.V = math.Round(h.V)
}

// Opaque returns the color with full alpha.
func (h HSVA) Opaque() HSVA {
	h.A = MaxAlpha
	return h
}

// String returns the color formatted as hsva(h, s%, v%, a).
func (h HSVA) String() string {
	return fmt.Sprintf("hsva(%s, %s%%, %s%%, %d)", formatFloat(h.H), formatFloat(h.S), formatFloat(h.V), h.A)
}

// HSVToRGB converts the given hue (0-360), saturation (0-100) and
// value (0-100) to 8-bit RGB components. A hue of exactly 360 falls
// outside of every sector of the conversion and yields black; see
// [RGBAFromHSVA] for the handling of that boundary.
func HSVToRGB(h, s, v float64) (r, g, b uint8) {
	return colorful.Hsv(h, s/100, v/100).RGB255()
}

// DefaultRGBA is the color string returned by [RGBAFromHSVA]
// for the (360, 100, 100) boundary.
const DefaultRGBA = "rgb(255, 0, 0, 0)"

// RGBAFromHSVA returns the rgba(r, g, b, a) string for the given hue,
// saturation, value and alpha (0-255). The corner at hue 360 with full
// saturation and value returns [DefaultRGBA] without converting, and
// any other hue of 360 is converted as 359.
func RGBAFromHSVA(h, s, v float64, a int) string {
	if h == MaxHue && int(s) == MaxSaturation && int(v) == MaxValue {
		return DefaultRGBA
	}
	if h == MaxHue {
		h = MaxHue - 1
	}
	r, g, b := HSVToRGB(h, s, v)
	return FromArray([4]int{int(r), int(g), int(b), a})
}

func formatFloat(f float64) string {
	if f == math.Trunc(f) {
		return fmt.Sprintf("%d", int(f))
	}
	return fmt.Sprintf("%g", f)
}
