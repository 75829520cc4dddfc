// Copyright (c) 2024, The Alloy UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/BiBongNet/alloy-ui/base/errors"
	"golang.org/x/image/colornames"
)

// Parse returns the color for the given string, which can be a
// '#'-prefixed 3, 6 or 8 digit hex value, an rgb(...), rgba(...),
// hsv(...) or hsva(...) value, or a standard CSS color name.
func Parse(s string) (color.NRGBA, error) {
	ls := strings.ToLower(strings.TrimSpace(s))
	switch {
	case ls == "":
		return color.NRGBA{}, fmt.Errorf("colors.Parse: %w: empty string", ErrInvalidColor)
	case ls[0] == '#':
		return FromHex(ls)
	case strings.HasPrefix(ls, "rgb"):
		arr, err := ToArray(ls)
		if err != nil {
			return color.NRGBA{}, err
		}
		return NRGBAFromArray(arr), nil
	case strings.HasPrefix(ls, "hsv"):
		h, err := HSVAFromString(ls)
		if err != nil {
			return color.NRGBA{}, err
		}
		return h.AsNRGBA(), nil
	}
	return FromName(ls)
}

// HSVAFromString parses an hsv(h, s%, v%) or hsva(h, s%, v%, a)
// string. The percent signs are optional and a missing alpha is
// fully opaque.
func HSVAFromString(s string) (HSVA, error) {
	args, err := functionArgs(s, "hsva", "hsv")
	if err != nil {
		return HSVA{}, fmt.Errorf("colors.HSVAFromString: %w", err)
	}
	var vals [4]float64
	vals[3] = MaxAlpha
	for i, arg := range args {
		f, err := strconv.ParseFloat(strings.TrimSuffix(arg, "%"), 64)
		if err != nil {
			return HSVA{}, fmt.Errorf("colors.HSVAFromString: invalid component %q in %q: %w", arg, s, err)
		}
		vals[i] = f
	}
	return HSVA{H: vals[0], S: vals[1], V: vals[2], A: clamp8(int(vals[3]))}, nil
}

// ErrUnknownName is returned by [FromName] for unknown color names.
var ErrUnknownName = errors.New("unknown color name")

// FromName returns the color with the given standard CSS color name.
func FromName(name string) (color.NRGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.NRGBA{}, fmt.Errorf("colors.FromName: %w: %q", ErrUnknownName, name)
	}
	return color.NRGBA{c.R, c.G, c.B, c.A}, nil
}
