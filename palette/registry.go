// Copyright (c) 2024, The Alloy UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"
	"sort"

	"github.com/BiBongNet/alloy-ui/base/errors"
	"github.com/BiBongNet/alloy-ui/config"
)

// Widget is the interface shared by the palettes.
type Widget interface {

	// Name returns the registered name of the palette type.
	Name() string

	// ContainerClassName returns the CSS classes of the palette container.
	ContainerClassName() string

	// SetColor sets the color of the palette from a color string.
	SetColor(s string) error

	// Input handles the user entering text in a field.
	Input(typ FieldTypes, text string) error

	// State returns a snapshot of the palette controls.
	State() State
}

// Type is a registered palette type.
type Type struct {

	// Name is the name of the type.
	Name string

	// NS is the namespace under which the type plugs into its host.
	NS string

	// Extends is the name of the type this one builds on, if any.
	Extends string

	// New returns a new palette of this type.
	New func(cfg *config.Config) Widget
}

// ErrDuplicateType is returned when registering a name twice.
var ErrDuplicateType = errors.New("duplicate palette type")

var types = map[string]Type{}

// Register adds the given palette type.
func Register(t Type) error {
	if _, ok := types[t.Name]; ok {
		return fmt.Errorf("palette.Register: %w: %q", ErrDuplicateType, t.Name)
	}
	if t.Extends != "" {
		if _, ok := types[t.Extends]; !ok {
			return fmt.Errorf("palette.Register: %q extends unknown type %q", t.Name, t.Extends)
		}
	}
	types[t.Name] = t
	return nil
}

// Lookup returns the palette type with the given name.
func Lookup(name string) (Type, bool) {
	t, ok := types[name]
	return t, ok
}

// TypeNames returns the names of all of the registered types, sorted.
func TypeNames() []string {
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New returns a new palette of the type with the given name.
func New(name string, cfg *config.Config) (Widget, error) {
	t, ok := types[name]
	if !ok {
		return nil, fmt.Errorf("palette.New: unknown palette type %q (registered: %v)", name, TypeNames())
	}
	return t.New(cfg), nil
}

func init() {
	errors.Must(Register(Type{Name: "hsv-palette", NS: "hsv-palette", New: func(cfg *config.Config) Widget {
		return NewHSVPalette(cfg)
	}}))
	errors.Must(Register(Type{Name: "hsva-palette", NS: "hsva-palette", Extends: "hsv-palette", New: func(cfg *config.Config) Widget {
		return NewHSVAPalette(cfg)
	}}))
}
