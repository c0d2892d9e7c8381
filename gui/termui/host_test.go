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

package termui_test

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jetsetilly/shortcuts/dispatch"
	"github.com/jetsetilly/shortcuts/gui"
	"github.com/jetsetilly/shortcuts/gui/termui"
	"github.com/jetsetilly/shortcuts/test"
	"github.com/jetsetilly/shortcuts/userinput"
)

func TestNormalise(t *testing.T) {
	ev, ok := termui.Normalise(tcell.NewEventKey(tcell.KeyCtrlO, 0, tcell.ModCtrl))
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, ev.Input, userinput.KeyInput(userinput.KeyFromRune('o'), userinput.ModCtrl))
	test.ExpectSuccess(t, ev.Pressed)

	// control key without the modifier set by the terminal
	ev, ok = termui.Normalise(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModNone))
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, ev.Input.String(), "Ctrl+S")

	ev, ok = termui.Normalise(tcell.NewEventKey(tcell.KeyF3, 0, tcell.ModShift))
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, ev.Input, userinput.KeyInput(userinput.KeyF3, userinput.ModShift))

	ev, ok = termui.Normalise(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, ev.Input, userinput.KeyInput(userinput.KeyTab, 0))

	ev, ok = termui.Normalise(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModAlt))
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, ev.Input.String(), "Alt+Q")

	// upper case runes imply shift
	ev, ok = termui.Normalise(tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone))
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, ev.Input, userinput.KeyInput(userinput.KeyFromRune('q'), userinput.ModShift))

	ev, ok = termui.Normalise(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, ev.Input, userinput.KeyInput(userinput.KeySpace, 0))

	// shifted punctuation is folded to the unshifted key
	ev, ok = termui.Normalise(tcell.NewEventKey(tcell.KeyRune, '!', tcell.ModNone))
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, ev.Input, userinput.KeyInput(userinput.KeyFromRune('1'), userinput.ModShift))

	ev, ok = termui.Normalise(tcell.NewEventKey(tcell.KeyRune, '?', tcell.ModCtrl))
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, ev.Input, userinput.KeyInput(userinput.KeyFromRune('/'), userinput.ModCtrl|userinput.ModShift))

	// unshifted punctuation is unchanged
	ev, ok = termui.Normalise(tcell.NewEventKey(tcell.KeyRune, '/', tcell.ModNone))
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, ev.Input, userinput.KeyInput(userinput.KeyFromRune('/'), userinput.ModNone))

	_, ok = termui.Normalise(tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone))
	test.ExpectFailure(t, ok)
}

func newHost(t *testing.T) (*termui.Host, tcell.SimulationScreen) {
	t.Helper()
	scr := tcell.NewSimulationScreen("UTF-8")
	h, err := termui.NewHostWithScreen("test", scr)
	test.DemandSuccess(t, err)
	scr.SetSize(80, 25)
	t.Cleanup(func() { _ = h.Destroy() })
	return h, scr
}

func TestLines(t *testing.T) {
	h, _ := newHost(t)
	test.ExpectImplements[gui.Host](t, h)

	h.SetLabel("menu.file.open", "Open...\tCtrl+O")
	h.SetLabel("menu.emulation.pause", "Pause")
	h.SetEnabled("menu.emulation.pause", false)

	lines := h.Lines()
	test.DemandEquality(t, len(lines), 2)

	test.ExpectEquality(t, string(lines[0].Anchor), "menu.emulation.pause")
	test.ExpectEquality(t, lines[0].Display, "Pause")
	test.ExpectEquality(t, lines[0].Caption, "")
	test.ExpectFailure(t, lines[0].Enabled)

	test.ExpectEquality(t, string(lines[1].Anchor), "menu.file.open")
	test.ExpectEquality(t, lines[1].Display, "Open...")
	test.ExpectEquality(t, lines[1].Caption, "Ctrl+O")
	test.ExpectSuccess(t, lines[1].Enabled)
}

type handler struct {
	host   *termui.Host
	events []userinput.Event
	cancel func()
}

func (h *handler) HandleEvent(ev userinput.Event) dispatch.Verdict {
	h.events = append(h.events, ev)
	h.host.Service(h.cancel)
	return dispatch.Consumed
}

func TestRun(t *testing.T) {
	h, scr := newHost(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var serviced bool
	h.Service(func() { serviced = true })

	scr.InjectKey(tcell.KeyCtrlO, 0, tcell.ModCtrl)

	hnd := &handler{host: h, cancel: cancel}
	err := h.Run(ctx, hnd)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, serviced)

	test.DemandEquality(t, len(hnd.events), 1)
	test.ExpectEquality(t, hnd.events[0].Input.String(), "Ctrl+O")
}

type skipper struct{}

func (skipper) HandleEvent(ev userinput.Event) dispatch.Verdict {
	return dispatch.Skip
}

func TestRunCtrlC(t *testing.T) {
	h, scr := newHost(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	scr.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	test.ExpectSuccess(t, h.Run(ctx, skipper{}))
	test.ExpectSuccess(t, ctx.Err())
}
