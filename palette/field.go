// Copyright (c) 2024, The Alloy UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/BiBongNet/alloy-ui/base/errors"
)

// FieldTypes are the kinds of text fields in a palette.
type FieldTypes string

const (
	TypeHue        FieldTypes = "hue"
	TypeSaturation FieldTypes = "saturation"
	TypeValue      FieldTypes = "value"
	TypeRed        FieldTypes = "red"
	TypeGreen      FieldTypes = "green"
	TypeBlue       FieldTypes = "blue"
	TypeHex        FieldTypes = "hex"
	TypeAlpha      FieldTypes = "alpha"
)

var (
	// ErrInvalidInput is returned when the text of a field is rejected.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownField is returned for field types the palette does not have.
	ErrUnknownField = errors.New("unknown field")
)

// Field is a labeled text input of a palette.
type Field struct {

	// Label is the text shown next to the field.
	Label string

	// Type is the kind of value the field holds.
	Type FieldTypes

	// Suffix is appended to the palette id to form the field id.
	Suffix string

	// Unit is shown after the value, such as "%".
	Unit string

	// MaxLength is the maximum number of characters of the value.
	MaxLength int

	// Max is the maximum numeric value; it is unused for hex fields.
	Max int

	// Value is the current text of the field.
	Value string

	// Invalid is whether the last input was rejected.
	Invalid bool
}

// SetValue sets the text of the field from the given value.
func (f *Field) SetValue(v any) {
	f.Value = fmt.Sprint(v)
	f.Invalid = false
}

// Int returns the integer value of the field, reading the leading
// digits of its text. It returns 0 when there are none.
func (f *Field) Int() int {
	return leadingInt(f.Value)
}

// validateNumber checks that the given text is an integer within
// [0, f.Max] that fits in the field.
func (f *Field) validateNumber(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" || len(text) > f.MaxLength {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidInput, f.Type, text)
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 || n > f.Max {
		return 0, fmt.Errorf("%w: %s %q is not an integer in [0, %d]", ErrInvalidInput, f.Type, text, f.Max)
	}
	return n, nil
}

func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (unicode.IsDigit(rune(s[end])) || (end == 0 && s[end] == '-')) {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
