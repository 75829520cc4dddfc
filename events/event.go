// Copyright (c) 2024, The Alloy UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// Event is a change notification.
type Event struct {

	// Typ is the type of the event.
	Typ Types

	// Src is where the change came from.
	Src Sources

	// Old is the previous numeric value, for slider events.
	Old float64

	// New is the new numeric value, for slider events.
	New float64

	// HexColor is the '#'-prefixed 6 digit hex color for palette events.
	HexColor string

	// Hex is the full hex value of the palette, without a leading '#',
	// for [HexInputChange] events.
	Hex string

	handled bool
}

// NewEvent returns a new event of the given type and source.
func NewEvent(typ Types, src Sources) *Event {
	return &Event{Typ: typ, Src: src}
}

func (ev *Event) Type() Types { return ev.Typ }

func (ev *Event) Source() Sources { return ev.Src }

// IsUI returns whether the event comes from a programmatic update.
func (ev *Event) IsUI() bool { return ev.Src == SourceUI }

// SetHandled marks the event as handled, which stops
// any further listeners from being called.
func (ev *Event) SetHandled() { ev.handled = true }

func (ev *Event) IsHandled() bool { return ev.handled }

func (ev *Event) String() string {
	return fmt.Sprintf("%v{src: %v, old: %v, new: %v, hex: %q}", ev.Typ, ev.Src, ev.Old, ev.New, ev.HexColor)
}
