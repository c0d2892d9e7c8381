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

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/shortcuts/commands"
	"github.com/jetsetilly/shortcuts/dispatch"
	"github.com/jetsetilly/shortcuts/gui"
	"github.com/jetsetilly/shortcuts/session"
	"github.com/jetsetilly/shortcuts/test"
	"github.com/jetsetilly/shortcuts/userinput"
)

type fakeHost struct {
	labels  map[commands.Anchor]string
	enabled map[commands.Anchor]bool
	status  string
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		labels:  make(map[commands.Anchor]string),
		enabled: make(map[commands.Anchor]bool),
	}
}

func (h *fakeHost) SetLabel(a commands.Anchor, l string) { h.labels[a] = l }
func (h *fakeHost) SetEnabled(a commands.Anchor, e bool) { h.enabled[a] = e }
func (h *fakeHost) StopPolling() {}
func (h *fakeHost) PollJoysticks([]int) {}
func (h *fakeHost) Service(f func()) { f() }
func (h *fakeHost) SetStatus(s string) { h.status = s }
func (h *fakeHost) Run(context.Context, gui.Handler) error { return nil }
func (h *fakeHost) Destroy() error { return nil }

func press(t *testing.T, sess *session.Session, s string) dispatch.Verdict {
	t.Helper()
	in, err := userinput.Parse(s)
	test.DemandSuccess(t, err)
	return sess.HandleEvent(userinput.Event{Input: in, Pressed: true})
}

func TestEmulator(t *testing.T) {
	dir := t.TempDir()
	host := newFakeHost()

	var quit bool
	em := newEmulator(host, dir, "pitfall", func() { quit = true })

	sess, err := session.NewSession(session.Host{UI: host, Sink: em, Poller: host}, nil)
	test.DemandSuccess(t, err)
	em.attach(sess)

	// nothing loaded so the close command is disabled
	test.ExpectFailure(t, host.enabled["menu.file.close"])

	test.ExpectEquality(t, press(t, sess, "Ctrl+O"), dispatch.Consumed)
	test.ExpectEquality(t, em.loaded, "pitfall")
	test.ExpectSuccess(t, sess.Capabilities()&commands.Emulating == commands.Emulating)
	test.ExpectSuccess(t, host.enabled["menu.file.close"])
	test.ExpectEquality(t, host.labels["menu.file.recent.1"], "pitfall")

	// no save-states yet
	test.ExpectFailure(t, host.enabled["menu.file.load.newest"])

	press(t, sess, "Ctrl+S")
	test.ExpectEquality(t, host.status, "saved state 1")
	_, err = os.Stat(filepath.Join(dir, "pitfall01.sgm"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, sess.Slot(0).Valid)
	test.ExpectSuccess(t, host.enabled["menu.file.load.newest"])
	test.ExpectSuccess(t, host.enabled["menu.file.load.1"])
	test.ExpectFailure(t, host.enabled["menu.file.load.2"])

	// save-to-oldest prefers empty slots
	press(t, sess, "Ctrl+S")
	test.ExpectEquality(t, host.status, "saved state 2")

	press(t, sess, "F1")
	test.ExpectEquality(t, host.status, "loaded state 1")

	press(t, sess, "Ctrl+P")
	test.ExpectEquality(t, host.status, "pitfall paused")
	test.ExpectSuccess(t, em.paused)

	press(t, sess, "Ctrl+W")
	test.ExpectEquality(t, em.loaded, "")
	test.ExpectFailure(t, host.enabled["menu.file.close"])

	test.ExpectFailure(t, quit)
	press(t, sess, "Ctrl+Q")
	test.ExpectSuccess(t, quit)
}

func TestHeadless(t *testing.T) {
	sess, err := session.NewSession(headlessHost(), nil)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, len(sess.Entries()), 0)
}
