// Copyright (c) 2024, The Alloy UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events provides the change notifications exchanged
// between the controls of a palette.
package events

import "fmt"

// Types determines the type of event, and also the level
// at which one can select which events to listen to.
type Types int32

const (
	// UnknownType is the zero value.
	UnknownType Types = iota

	// Change is sent by a slider when its value changes.
	Change

	// SlideStart is sent by a slider when the user starts dragging its thumb.
	SlideStart

	// RailMouseDown is sent by a slider when the user presses on its rail.
	RailMouseDown

	// HSThumbChange is sent by a palette after the hue/saturation
	// thumb has moved.
	HSThumbChange

	// HSVAInputChange is sent by a palette after a hue, saturation,
	// value or alpha field has been edited.
	HSVAInputChange

	// RGBInputChange is sent by a palette after a red, green or
	// blue field has been edited.
	RGBInputChange

	// HexInputChange is sent by a palette after the hex field
	// has been edited.
	HexInputChange

	typesN
)

var typeNames = [...]string{
	UnknownType:     "UnknownType",
	Change:          "Change",
	SlideStart:      "SlideStart",
	RailMouseDown:   "RailMouseDown",
	HSThumbChange:   "HSThumbChange",
	HSVAInputChange: "HSVAInputChange",
	RGBInputChange:  "RGBInputChange",
	HexInputChange:  "HexInputChange",
}

func (tp Types) String() string {
	if tp < 0 || tp >= typesN {
		return fmt.Sprintf("Types(%d)", int32(tp))
	}
	return typeNames[tp]
}

// Sources indicate where a value assignment came from.
type Sources int32

const (
	// SourceUser is a change made directly by the user
	// (dragging a slider, typing in a field).
	SourceUser Sources = iota

	// SourceUI is a programmatic change made by the handler of
	// another control. Handlers must not propagate these further.
	SourceUI
)

func (s Sources) String() string {
	switch s {
	case SourceUser:
		return "SourceUser"
	case SourceUI:
		return "SourceUI"
	}
	return fmt.Sprintf("Sources(%d)", int32(s))
}
