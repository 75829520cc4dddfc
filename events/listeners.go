// Copyright (c) 2024, The Alloy UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Listeners holds the handlers of a control, by event type.
// The zero value is ready to use.
type Listeners map[Types][]func(ev *Event)

// Add adds a handler for the given event type.
func (ls *Listeners) Add(typ Types, fun func(ev *Event)) {
	if *ls == nil {
		*ls = make(Listeners)
	}
	(*ls)[typ] = append((*ls)[typ], fun)
}

// Len returns the number of handlers for the given event type.
func (ls Listeners) Len(typ Types) int {
	return len(ls[typ])
}

// Call sends the given event to the handlers for its type, most
// recently added first, until one of them marks it as handled.
func (ls Listeners) Call(ev *Event) {
	handlers := ls[ev.Type()]
	for i := len(handlers) - 1; i >= 0 && !ev.IsHandled(); i-- {
		handlers[i](ev)
	}
}
