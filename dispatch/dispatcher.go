// This file is part of Shortcuts.
//
// Shortcuts is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Shortcuts is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Shortcuts.  If not, see <https://www.gnu.org/licenses/>.

package dispatch

import (
	"github.com/jetsetilly/shortcuts/commands"
	"github.com/jetsetilly/shortcuts/logger"
	"github.com/jetsetilly/shortcuts/userinput"
)

// Verdict is the result of HandleEvent().
type Verdict int

// List of valid Verdict values.
const (
	// the event should be processed normally by the host
	Skip Verdict = iota

	// the event has been converted to a command and should not be processed
	// any further
	Consumed
)

func (v Verdict) String() string {
	if v == Consumed {
		return "consumed"
	}
	return "skip"
}

// State of the Dispatcher.
type State int

// List of valid State values.
const (
	Idle State = iota
	Suppressed
)

func (s State) String() string {
	if s == Suppressed {
		return "suppressed"
	}
	return "idle"
}

// Sink receives commands from the Dispatcher.
type Sink interface {
	Invoke(commands.ID)
}

// Lookup finds the command bound to an input. The bindings.Table type
// satisfies this interface.
type Lookup interface {
	CommandFor(userinput.Input) (commands.ID, bool)
}

// Dispatcher converts input events to commands. The zero value is not usable;
// use NewDispatcher().
type Dispatcher struct {
	lookup Lookup
	sink   Sink

	menus   int
	dialogs int

	onSuppress func(bool)

	// per-event logging is only performed if the permission allows it
	verbose logger.Permission
}

// NewDispatcher is the preferred method of initialisation for the Dispatcher
// type. The verbose argument controls logging of individual events and can be
// nil.
func NewDispatcher(lookup Lookup, sink Sink, verbose logger.Permission) *Dispatcher {
	if verbose == nil {
		verbose = quiet{}
	}
	return &Dispatcher{
		lookup:  lookup,
		sink:    sink,
		verbose: verbose,
	}
}

type quiet struct{}

func (quiet) AllowLogging() bool {
	return false
}

// OnSuppress sets the function that is called when the Dispatcher changes
// between the Idle and Suppressed states. The argument is true when the
// Dispatcher becomes Suppressed.
func (d *Dispatcher) OnSuppress(f func(bool)) {
	d.onSuppress = f
}

// State returns the current state of the Dispatcher.
func (d *Dispatcher) State() State {
	if d.menus > 0 || d.dialogs > 0 {
		return Suppressed
	}
	return Idle
}

// Menus returns the number of open menus.
func (d *Dispatcher) Menus() int {
	return d.menus
}

// Dialogs returns the number of open dialogs.
func (d *Dispatcher) Dialogs() int {
	return d.dialogs
}

// HandleEvent looks up the event and invokes the bound command if there is
// one. See package documentation for the rules.
func (d *Dispatcher) HandleEvent(ev userinput.Event) Verdict {
	if d.State() == Suppressed {
		return Skip
	}

	switch ev.Device {
	case userinput.Keyboard, userinput.JoystickButton:
		if !ev.Pressed {
			return Skip
		}
	default:
		return Skip
	}

	id, ok := d.lookup.CommandFor(ev.Input)
	if !ok {
		return Skip
	}

	logger.Logf(d.verbose, "dispatch", "%s -> %d", ev, id)
	d.sink.Invoke(id)

	return Consumed
}

// change counter and call the OnSuppress function if the state changes. the
// counter will never be decremented below zero
func (d *Dispatcher) change(counter *int, delta int, what string) {
	before := d.State()

	if *counter+delta < 0 {
		logger.Logf(logger.Allow, "dispatch", "%s closed but none are open", what)
		return
	}
	*counter += delta

	after := d.State()
	if before != after {
		logger.Logf(d.verbose, "dispatch", "%s", after)
		if d.onSuppress != nil {
			d.onSuppress(after == Suppressed)
		}
	}
}

// MenuOpened should be called whenever a menu is opened.
func (d *Dispatcher) MenuOpened() {
	d.change(&d.menus, 1, "menu")
}

// MenuClosed should be called whenever a menu is closed.
func (d *Dispatcher) MenuClosed() {
	d.change(&d.menus, -1, "menu")
}

// DialogOpened should be called whenever a modal dialog is opened.
func (d *Dispatcher) DialogOpened() {
	d.change(&d.dialogs, 1, "dialog")
}

// DialogClosed should be called whenever a modal dialog is closed.
func (d *Dispatcher) DialogClosed() {
	d.change(&d.dialogs, -1, "dialog")
}
