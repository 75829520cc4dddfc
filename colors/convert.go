// Copyright (c) 2024, The Alloy UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"strings"
)

// Kinds are the color representations that [Convert] handles.
type Kinds int32

const (
	// Hex is a hex color without a leading '#'.
	Hex Kinds = iota

	// RGB is an rgb(...) or rgba(...) string.
	RGB

	// HSV is an hsv(...) or hsva(...) string.
	HSV

	kindsN
)

var kindNames = [...]string{Hex: "hex", RGB: "rgb", HSV: "hsv"}

// String returns the lowercase name of the kind.
func (k Kinds) String() string {
	if k < 0 || k >= kindsN {
		return fmt.Sprintf("Kinds(%d)", int32(k))
	}
	return kindNames[k]
}

// SetString sets the kind from its case-insensitive name.
func (k *Kinds) SetString(s string) error {
	for i, name := range kindNames {
		if strings.EqualFold(s, name) {
			*k = Kinds(i)
			return nil
		}
	}
	return fmt.Errorf("colors.Kinds.SetString: unknown kind %q (expected hex, rgb or hsv)", s)
}

// Set is an alias for [Kinds.SetString] so that
// a *Kinds can be used as a command line flag value.
func (k *Kinds) Set(s string) error { return k.SetString(s) }

// Type returns the flag type name.
func (k *Kinds) Type() string { return "kind" }

// converters maps each target kind to the function producing it.
var converters = map[Kinds]func(string) (string, error){
	Hex: ToHex,
	RGB: ToRGBA,
	HSV: ToHSVA,
}

// Convert converts the given color value from one representation to
// another. Hex values are given and returned without a leading '#'.
// Conversions to [RGB] and [HSV] produce the alpha forms.
func Convert(value string, from, to Kinds) (string, error) {
	if from == Hex {
		value = "#" + value
	}
	fn, ok := converters[to]
	if !ok {
		return "", fmt.Errorf("colors.Convert: unsupported target kind %v", to)
	}
	out, err := fn(value)
	if err != nil {
		return "", fmt.Errorf("colors.Convert: %v to %v: %w", from, to, err)
	}
	if to == Hex {
		out = out[1:]
	}
	return out, nil
}

// ToRGBA returns the rgba(r, g, b, a) string for the given color string.
func ToRGBA(s string) (string, error) {
	c, err := Parse(s)
	if err != nil {
		return "", fmt.Errorf("colors.ToRGBA: %w", err)
	}
	return FromArray(ArrayFromColor(c)), nil
}

// ToHSVA returns the hsva(h, s%, v%, a) string for the given color
// string, with the HSV components rounded to integers.
func ToHSVA(s string) (string, error) {
	c, err := Parse(s)
	if err != nil {
		return "", fmt.Errorf("colors.ToHSVA: %w", err)
	}
	h := HSVAFromColor(c)
	h.Round()
	return h.String(), nil
}
