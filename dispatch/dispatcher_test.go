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

package dispatch_test

import (
	"testing"

	"github.com/jetsetilly/shortcuts/bindings"
	"github.com/jetsetilly/shortcuts/commands"
	"github.com/jetsetilly/shortcuts/dispatch"
	"github.com/jetsetilly/shortcuts/logger"
	"github.com/jetsetilly/shortcuts/test"
	"github.com/jetsetilly/shortcuts/userinput"
)

// sink records every invoked command
type sink struct {
	invoked []commands.ID
}

func (s *sink) Invoke(id commands.ID) {
	s.invoked = append(s.invoked, id)
}

const (
	save1 commands.ID = iota
	pause
)

var (
	f1   = userinput.KeyInput(userinput.KeyF1, userinput.ModNone)
	f2   = userinput.KeyInput(userinput.KeyF2, userinput.ModNone)
	btn0 = userinput.ButtonInput(0, 0)
	axis = userinput.AxisInput(0, 1, userinput.AxisMinus)
)

func setup() (*dispatch.Dispatcher, *sink) {
	tab := bindings.NewTable()
	tab.Bind(save1, f1)
	tab.Bind(pause, btn0)
	tab.Bind(pause, axis)
	s := &sink{}
	return dispatch.NewDispatcher(tab, s, nil), s
}

func press(in userinput.Input) userinput.Event {
	return userinput.Event{Input: in, Pressed: true}
}

func release(in userinput.Input) userinput.Event {
	return userinput.Event{Input: in}
}

func TestInterfaces(t *testing.T) {
	test.ExpectImplements[dispatch.Lookup](t, bindings.NewTable())
	test.ExpectImplements[dispatch.Sink](t, &sink{})
}

func TestDispatch(t *testing.T) {
	d, s := setup()
	test.ExpectEquality(t, d.State(), dispatch.Idle)

	test.ExpectEquality(t, d.HandleEvent(press(f1)), dispatch.Consumed)
	test.DemandEquality(t, len(s.invoked), 1)
	test.ExpectEquality(t, s.invoked[0], save1)

	// release is never dispatched
	test.ExpectEquality(t, d.HandleEvent(release(f1)), dispatch.Skip)

	// unbound input
	test.ExpectEquality(t, d.HandleEvent(press(f2)), dispatch.Skip)

	// auto-repeat is dispatched
	ev := press(f1)
	ev.Repeat = true
	test.ExpectEquality(t, d.HandleEvent(ev), dispatch.Consumed)

	// joystick button press
	test.ExpectEquality(t, d.HandleEvent(press(btn0)), dispatch.Consumed)
	test.ExpectEquality(t, d.HandleEvent(release(btn0)), dispatch.Skip)

	// axis movement is never dispatched even when bound
	test.ExpectEquality(t, d.HandleEvent(press(axis)), dispatch.Skip)

	test.DemandEquality(t, len(s.invoked), 3)
	test.ExpectEquality(t, s.invoked[1], save1)
	test.ExpectEquality(t, s.invoked[2], pause)
}

func TestSuppression(t *testing.T) {
	d, s := setup()

	var transitions []bool
	d.OnSuppress(func(suppressed bool) {
		transitions = append(transitions, suppressed)
	})

	d.MenuOpened()
	test.ExpectEquality(t, d.State(), dispatch.Suppressed)
	test.ExpectEquality(t, d.HandleEvent(press(f1)), dispatch.Skip)

	// dialog opened from a menu, then a nested dialog
	d.DialogOpened()
	d.DialogOpened()
	d.MenuClosed()
	test.ExpectEquality(t, d.State(), dispatch.Suppressed)
	d.DialogClosed()
	test.ExpectEquality(t, d.State(), dispatch.Suppressed)
	test.ExpectEquality(t, d.HandleEvent(press(btn0)), dispatch.Skip)

	d.DialogClosed()
	test.ExpectEquality(t, d.State(), dispatch.Idle)
	test.ExpectEquality(t, d.HandleEvent(press(f1)), dispatch.Consumed)

	test.ExpectEquality(t, len(s.invoked), 1)

	// one transition into suppression and one out
	test.DemandEquality(t, len(transitions), 2)
	test.ExpectSuccess(t, transitions[0])
	test.ExpectFailure(t, transitions[1])
}

func TestUnbalanced(t *testing.T) {
	logger.Clear()

	d, _ := setup()

	// closing a menu that was never opened must not leave the counter
	// negative. if it did the following open would not suppress
	d.MenuClosed()
	test.ExpectEquality(t, d.Menus(), 0)
	d.DialogClosed()
	test.ExpectEquality(t, d.Dialogs(), 0)
	test.ExpectEquality(t, len(logger.Entries()), 2)

	d.MenuOpened()
	test.ExpectEquality(t, d.State(), dispatch.Suppressed)
	d.MenuClosed()
	test.ExpectEquality(t, d.State(), dispatch.Idle)
}

type verbose bool

func (v verbose) AllowLogging() bool {
	return bool(v)
}

func TestVerbose(t *testing.T) {
	tab := bindings.NewTable()
	tab.Bind(save1, f1)

	logger.Clear()
	d := dispatch.NewDispatcher(tab, &sink{}, verbose(false))
	d.HandleEvent(press(f1))
	test.ExpectEquality(t, len(logger.Entries()), 0)

	d = dispatch.NewDispatcher(tab, &sink{}, verbose(true))
	d.HandleEvent(press(f1))
	test.DemandEquality(t, len(logger.Entries()), 1)
	test.ExpectEquality(t, logger.Entries()[0].Detail, "F1 down -> 0")
}
