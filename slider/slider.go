// Copyright (c) 2024, The Alloy UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slider provides a headless slider with a draggable thumb
// and a clickable rail.
package slider

import (
	"math"

	"github.com/BiBongNet/alloy-ui/events"
)

// Axes are the directions in which a slider slides.
type Axes int32

const (
	// X is a horizontal slider.
	X Axes = iota

	// Y is a vertical slider.
	Y
)

func (a Axes) String() string {
	if a == Y {
		return "y"
	}
	return "x"
}

// Slider is a slideable control with integer values between Min and
// Max, represented by the position of a thumb along a rail of Length.
type Slider struct {

	// Axis is the direction in which the slider slides.
	Axis Axes

	// Min is the minimum possible value.
	Min float64

	// Max is the maximum possible value.
	Max float64

	// Length is the length of the rail, in pixels.
	Length float64

	// value is the current value, represented by the position of the thumb.
	value float64

	listeners events.Listeners
}

// New returns a new slider along the given axis with the given range.
// The value starts at min.
func New(axis Axes, min, max float64) *Slider {
	return &Slider{Axis: axis, Min: min, Max: max, value: min}
}

// SetLength sets the length of the rail.
func (sl *Slider) SetLength(length float64) *Slider {
	sl.Length = length
	return sl
}

// Value returns the current value.
func (sl *Slider) Value() float64 { return sl.value }

// SetValue sets the value of the slider, rounded to an integer and
// clamped to [Slider.Min, Slider.Max], and sends a [events.Change]
// event tagged with the given source if the value changed.
// It returns whether the value changed.
func (sl *Slider) SetValue(v float64, src events.Sources) bool {
	v = math.Min(math.Max(math.Round(v), sl.Min), sl.Max)
	if v == sl.value {
		return false
	}
	ev := events.NewEvent(events.Change, src)
	ev.Old, ev.New = sl.value, v
	sl.value = v
	sl.listeners.Call(ev)
	return true
}

// ValueAt returns the value corresponding to the given thumb
// position along the rail.
func (sl *Slider) ValueAt(pos float64) float64 {
	if sl.Length <= 0 {
		return sl.Min
	}
	pos = math.Min(math.Max(pos, 0), sl.Length)
	return math.Round(sl.Min + pos/sl.Length*(sl.Max-sl.Min))
}

// Position returns the thumb position along the rail for the current value.
func (sl *Slider) Position() float64 {
	if sl.Max == sl.Min {
		return 0
	}
	return (sl.value - sl.Min) / (sl.Max - sl.Min) * sl.Length
}

// Start sends a [events.SlideStart] event, as when the user
// grabs the thumb.
func (sl *Slider) Start(src events.Sources) {
	sl.listeners.Call(events.NewEvent(events.SlideStart, src))
}

// PressRail sends a [events.RailMouseDown] event, as when
// the user presses on the rail.
func (sl *Slider) PressRail(src events.Sources) {
	sl.listeners.Call(events.NewEvent(events.RailMouseDown, src))
}

// DragTo performs a full user drag of the thumb to the given position
// along the rail: it starts the slide and sets the value under it.
func (sl *Slider) DragTo(pos float64) bool {
	sl.Start(events.SourceUser)
	return sl.SetValue(sl.ValueAt(pos), events.SourceUser)
}

// On adds the given listener for the given event type.
func (sl *Slider) On(typ events.Types, fun func(ev *events.Event)) *Slider {
	sl.listeners.Add(typ, fun)
	return sl
}

// OnChange adds the given listener for [events.Change] events.
func (sl *Slider) OnChange(fun func(ev *events.Event)) *Slider {
	return sl.On(events.Change, fun)
}
