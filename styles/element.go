// Copyright (c) 2024, The Alloy UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles provides DOM-like elements that hold the style
// properties a renderer applies to the parts of a palette.
package styles

import (
	"sort"
	"strconv"
	"strings"
)

// Standard style properties set by the palettes.
const (
	BackgroundColor = "backgroundColor"
	Opacity         = "opacity"
)

// PrefixedClassName returns the CSS class name for the given parts,
// joined by '-' after the given prefix.
func PrefixedClassName(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), "-")
}

// Element is a DOM-like node with a CSS class and a set of
// style properties.
type Element struct {
	Name  string
	Class string

	props map[string]string
}

// NewElement returns a new element with the given name and class.
func NewElement(name, class string) *Element {
	return &Element{Name: name, Class: class}
}

// SetStyle sets the given style property.
func (el *Element) SetStyle(prop, value string) *Element {
	if el.props == nil {
		el.props = map[string]string{}
	}
	el.props[prop] = value
	return el
}

// SetStyleFloat sets the given style property to a number.
func (el *Element) SetStyleFloat(prop string, value float64) *Element {
	return el.SetStyle(prop, strconv.FormatFloat(value, 'f', -1, 64))
}

// Style returns the value of the given style property,
// or "" if it is not set.
func (el *Element) Style(prop string) string {
	return el.props[prop]
}

// StyleFloat returns the numeric value of the given style property.
// It returns def if the property is not set or is not a number.
func (el *Element) StyleFloat(prop string, def float64) float64 {
	v, ok := el.props[prop]
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// CSS returns the style properties in inline CSS form, sorted
// by property name, with property names in kebab case.
func (el *Element) CSS() string {
	names := make([]string, 0, len(el.props))
	for name := range el.props {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(kebab(name))
		b.WriteString(": ")
		b.WriteString(el.props[name])
		b.WriteString(";")
	}
	return b.String()
}

func kebab(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
