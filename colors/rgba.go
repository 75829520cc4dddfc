// Copyright (c) 2024, The Alloy UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// FromArray formats the given red, green, blue and alpha
// components (0-255) as an rgba(r, g, b, a) string.
func FromArray(rgba [4]int) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", rgba[0], rgba[1], rgba[2], rgba[3])
}

// ToArray parses an rgb(...) or rgba(...) string into its red, green,
// blue and alpha components. Both functional forms accept three or four
// components; a missing alpha is fully opaque.
func ToArray(s string) ([4]int, error) {
	args, err := functionArgs(s, "rgba", "rgb")
	if err != nil {
		return [4]int{}, fmt.Errorf("colors.ToArray: %w", err)
	}
	rgba := [4]int{0, 0, 0, MaxAlpha}
	for i, arg := range args {
		f, err := strconv.ParseFloat(strings.TrimSuffix(arg, "%"), 64)
		if err != nil {
			return [4]int{}, fmt.Errorf("colors.ToArray: invalid component %q in %q: %w", arg, s, err)
		}
		rgba[i] = int(math.Round(f))
	}
	return rgba, nil
}

// ArrayFromColor returns the non alpha-premultiplied
// components of the given color.
func ArrayFromColor(c color.Color) [4]int {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return [4]int{int(n.R), int(n.G), int(n.B), int(n.A)}
}

// NRGBAFromArray returns the color with the given components.
func NRGBAFromArray(rgba [4]int) color.NRGBA {
	return color.NRGBA{clamp8(rgba[0]), clamp8(rgba[1]), clamp8(rgba[2]), clamp8(rgba[3])}
}

// functionArgs splits a CSS-like functional notation such as
// rgba(1, 2, 3, 4) into its arguments. The name must be one of the
// given names and there must be three or four arguments.
func functionArgs(s string, names ...string) ([]string, error) {
	ls := strings.ToLower(strings.TrimSpace(s))
	open := strings.IndexByte(ls, '(')
	if open < 0 || !strings.HasSuffix(ls, ")") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	name := strings.TrimSpace(ls[:open])
	found := false
	for _, n := range names {
		if name == n {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: unexpected function %q in %q", ErrInvalidColor, name, s)
	}
	args := strings.Split(ls[open+1:len(ls)-1], ",")
	if len(args) != 3 && len(args) != 4 {
		return nil, fmt.Errorf("%w: expected 3 or 4 components in %q", ErrInvalidColor, s)
	}
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return args, nil
}

func clamp8(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}
