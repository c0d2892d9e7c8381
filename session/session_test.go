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

package session_test

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/jetsetilly/shortcuts/bindings"
	"github.com/jetsetilly/shortcuts/commands"
	"github.com/jetsetilly/shortcuts/curated"
	"github.com/jetsetilly/shortcuts/dispatch"
	"github.com/jetsetilly/shortcuts/notifications"
	"github.com/jetsetilly/shortcuts/session"
	"github.com/jetsetilly/shortcuts/test"
	"github.com/jetsetilly/shortcuts/userinput"
)

type ui struct {
	labels  map[commands.Anchor]string
	enabled map[commands.Anchor]bool
	pushes  int

	// anchors given a label, in the order they were pushed
	labelled []commands.Anchor
}

func (u *ui) SetLabel(anchor commands.Anchor, label string) {
	u.labels[anchor] = label
	u.labelled = append(u.labelled, anchor)
	u.pushes++
}

func (u *ui) SetEnabled(anchor commands.Anchor, enabled bool) {
	u.enabled[anchor] = enabled
	u.pushes++
}

type sink struct {
	invoked []commands.ID
}

func (s *sink) Invoke(id commands.ID) {
	s.invoked = append(s.invoked, id)
}

type source map[int]time.Time

func (src source) Timestamp(i int) (time.Time, error) {
	if ts, ok := src[i]; ok {
		return ts, nil
	}
	return time.Time{}, fs.ErrNotExist
}

// store keeps bindings in memory. a nil entries field behaves like a missing
// file
type store struct {
	entries []bindings.Entry
	saves   int
}

func (st *store) LoadBindings() ([]bindings.Entry, error) {
	if st.entries == nil {
		return nil, fmt.Errorf("no bindings: %w", fs.ErrNotExist)
	}
	return st.entries, nil
}

func (st *store) SaveBindings(ents []bindings.Entry) error {
	st.entries = ents
	st.saves++
	return nil
}

// poller records the calls made to it
type poller struct {
	log []string
}

func (p *poller) StopPolling() {
	p.log = append(p.log, "stop")
}

func (p *poller) PollJoysticks(joy []int) {
	p.log = append(p.log, fmt.Sprintf("poll %v", joy))
}

type fixture struct {
	ui     *ui
	sink   *sink
	src    source
	store  *store
	poller *poller
	sess   *session.Session
}

func setup(t *testing.T, ents []bindings.Entry) *fixture {
	t.Helper()

	f := &fixture{
		ui: &ui{
			labels:  make(map[commands.Anchor]string),
			enabled: make(map[commands.Anchor]bool),
		},
		sink:   &sink{},
		src:    make(source),
		store:  &store{entries: ents},
		poller: &poller{},
	}

	var err error
	f.sess, err = session.NewSession(session.Host{
		UI:     f.ui,
		Sink:   f.sink,
		Slots:  f.src,
		Store:  f.store,
		Poller: f.poller,
	}, nil)
	test.DemandSuccess(t, err)

	return f
}

func (f *fixture) id(t *testing.T, key string) commands.ID {
	t.Helper()
	id, ok := f.sess.Registry().ByKey(key)
	test.DemandSuccess(t, ok)
	return id
}

var (
	f1   = userinput.KeyInput(userinput.KeyF1, userinput.ModNone)
	btn0 = userinput.ButtonInput(0, 0)
	btn1 = userinput.ButtonInput(1, 0)
)

func press(in userinput.Input) userinput.Event {
	return userinput.Event{Input: in, Pressed: true}
}

func TestMissingHost(t *testing.T) {
	_, err := session.NewSession(session.Host{}, nil)
	test.ExpectFailure(t, err)
}

func TestDefaultBindings(t *testing.T) {
	f := setup(t, nil)

	load1 := f.id(t, commands.LoadStateKey(0))
	test.ExpectEquality(t, f.sess.HandleEvent(press(f1)), dispatch.Consumed)
	test.DemandEquality(t, len(f.sink.invoked), 1)
	test.ExpectEquality(t, f.sink.invoked[0], load1)

	test.ExpectEquality(t, f.ui.labels["menu.file.load.1"], "1: --/--/-- --:--:--\tF1")
	test.ExpectEquality(t, f.ui.labels["menu.file.open"], "Open...\tCtrl+O")

	// nothing is enabled that requires emulation
	test.ExpectFailure(t, f.ui.enabled["menu.emulation.pause"])
	test.ExpectSuccess(t, f.ui.enabled["menu.file.open"])
}

func TestStoredBindings(t *testing.T) {
	f := setup(t, []bindings.Entry{
		{Command: commands.KeyPause, Input: "F1"},
		{Command: "unknown", Input: "F2"},
	})

	pause := f.id(t, commands.KeyPause)
	test.ExpectEquality(t, f.sess.HandleEvent(press(f1)), dispatch.Consumed)
	test.ExpectEquality(t, f.sink.invoked[0], pause)
	test.ExpectEquality(t, len(f.sess.Entries()), 1)
}

func TestGameLoaded(t *testing.T) {
	f := setup(t, nil)

	ts := time.Date(2021, time.May, 5, 9, 15, 0, 0, time.Local)
	f.src[2] = ts

	test.ExpectSuccess(t, f.sess.Notify(notifications.NotifyGameLoaded))
	test.ExpectSuccess(t, f.sess.Capabilities()&commands.Emulating == commands.Emulating)
	test.ExpectSuccess(t, f.sess.Capabilities()&commands.SaveStatePresent == commands.SaveStatePresent)

	test.ExpectSuccess(t, f.ui.enabled["menu.emulation.pause"])
	test.ExpectSuccess(t, f.ui.enabled["menu.file.load.3"])
	test.ExpectFailure(t, f.ui.enabled["menu.file.load.1"])
	test.ExpectEquality(t, f.ui.labels["menu.file.save.3"], "3: 2021/05/05 09:15:00\tShift+F3")

	i, ok := f.sess.NewestSlot()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, i, 2)
	i, _ = f.sess.OldestSlot()
	test.ExpectEquality(t, i, 0)

	test.ExpectSuccess(t, f.sess.Notify(notifications.NotifyGameUnloaded))
	test.ExpectFailure(t, f.ui.enabled["menu.emulation.pause"])
	test.ExpectFailure(t, f.ui.enabled["menu.file.load.3"])
}

func TestForcedRescan(t *testing.T) {
	f := setup(t, nil)

	// a forced rescan pushes every slot label even though nothing changed
	pushes := f.ui.pushes
	f.sess.Rescan(false)
	test.ExpectEquality(t, f.ui.pushes, pushes)
	f.sess.Rescan(true)
	test.ExpectEquality(t, f.ui.pushes, pushes+commands.DefaultSlots*4)
}

func TestStateSaved(t *testing.T) {
	f := setup(t, nil)
	test.ExpectSuccess(t, f.sess.Notify(notifications.NotifyGameLoaded))
	test.ExpectFailure(t, f.ui.enabled["menu.file.load.newest"])

	f.src[0] = time.Now()
	test.ExpectSuccess(t, f.sess.Notify(notifications.NotifyStateSaved))
	test.ExpectSuccess(t, f.ui.enabled["menu.file.load.newest"])
	test.ExpectSuccess(t, f.ui.enabled["menu.file.load.1"])
	test.ExpectSuccess(t, f.sess.Slot(0).Valid)

	// single slot update
	f.src[4] = time.Now()
	f.sess.UpdateSlot(4)
	test.ExpectSuccess(t, f.ui.enabled["menu.file.load.5"])
}

func TestRescanSingleSlot(t *testing.T) {
	f := setup(t, nil)
	// ten slots by default
	test.DemandEquality(t, len(f.sess.Registry().ForSlot(9)), 2)
	test.DemandEquality(t, len(f.sess.Registry().ForSlot(10)), 0)

	f.src[0] = time.Now().Add(-time.Hour)
	f.src[5] = time.Now().Add(-time.Minute)
	test.ExpectSuccess(t, f.sess.Notify(notifications.NotifyGameLoaded))

	// slot 3 gains a timestamp after a save made outside the session
	f.ui.labelled = f.ui.labelled[:0]
	pushes := f.ui.pushes
	f.src[2] = time.Now()
	f.sess.Rescan(false)

	labelled := slices.Clone(f.ui.labelled)
	slices.Sort(labelled)
	test.DemandEquality(t, len(labelled), 2)
	test.ExpectEquality(t, labelled[0], commands.Anchor("menu.file.load.3"))
	test.ExpectEquality(t, labelled[1], commands.Anchor("menu.file.save.3"))

	// the only other push is the load command for the slot being enabled
	test.ExpectEquality(t, f.ui.pushes, pushes+3)
	test.ExpectSuccess(t, f.ui.enabled["menu.file.load.3"])

	// nothing has changed so nothing is pushed
	pushes = f.ui.pushes
	f.sess.Rescan(false)
	test.ExpectEquality(t, f.ui.pushes, pushes)
}

func TestSuppression(t *testing.T) {
	f := setup(t, nil)

	var suppressed []bool
	f.sess.OnSuppress(func(s bool) {
		suppressed = append(suppressed, s)
	})

	test.ExpectSuccess(t, f.sess.Notify(notifications.NotifyMenuOpened))
	test.ExpectEquality(t, f.sess.HandleEvent(press(f1)), dispatch.Skip)
	test.ExpectSuccess(t, f.sess.Notify(notifications.NotifyDialogOpened))
	test.ExpectSuccess(t, f.sess.Notify(notifications.NotifyMenuClosed))
	test.ExpectEquality(t, f.sess.State(), dispatch.Suppressed)
	test.ExpectSuccess(t, f.sess.Notify(notifications.NotifyDialogClosed))
	test.ExpectEquality(t, f.sess.HandleEvent(press(f1)), dispatch.Consumed)

	test.ExpectEquality(t, len(suppressed), 2)

	err := f.sess.Notify(notifications.Notice("nonsense"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, session.UnknownNotice))
}

func TestJoysticks(t *testing.T) {
	f := setup(t, []bindings.Entry{
		{Command: commands.KeyPause, Input: "Joy1-Button0"},
	})
	pause := f.id(t, commands.KeyPause)
	reset := f.id(t, commands.KeyReset)

	// not emulating so nothing is polled
	test.ExpectEquality(t, len(f.poller.log), 0)

	test.ExpectSuccess(t, f.sess.Notify(notifications.NotifyGameLoaded))
	test.DemandEquality(t, len(f.poller.log), 2)
	test.ExpectEquality(t, f.poller.log[0], "stop")
	test.ExpectEquality(t, f.poller.log[1], "poll [0]")

	// binding a keyboard input doesn't change the joysticks
	f.sess.Bind(reset, f1)
	test.ExpectEquality(t, len(f.poller.log), 2)

	// a new joystick
	f.sess.Bind(reset, btn1)
	test.DemandEquality(t, len(f.poller.log), 4)
	test.ExpectEquality(t, f.poller.log[3], "poll [0 1]")

	// binding/capability state is not changed by polling
	test.ExpectEquality(t, f.sess.HandleEvent(press(btn0)), dispatch.Consumed)
	test.ExpectEquality(t, f.sink.invoked[0], pause)

	test.ExpectSuccess(t, f.sess.Notify(notifications.NotifyGameUnloaded))
	test.DemandEquality(t, len(f.poller.log), 5)
	test.ExpectEquality(t, f.poller.log[4], "stop")
}

func TestCaptionsFollowBindings(t *testing.T) {
	f := setup(t, nil)
	save1 := f.id(t, commands.SaveStateKey(0))
	save2 := f.id(t, commands.SaveStateKey(1))

	// Shift+F1 moves from save1 to save2
	shiftF1 := userinput.KeyInput(userinput.KeyF1, userinput.ModShift)
	f.sess.Bind(save2, shiftF1)
	test.ExpectEquality(t, f.sess.Label(save1), "1: --/--/-- --:--:--")
	test.ExpectEquality(t, f.ui.labels["menu.file.save.1"], "1: --/--/-- --:--:--")
	test.ExpectEquality(t, f.ui.labels["menu.file.save.2"], "2: --/--/-- --:--:--\tShift+F1")

	f.sess.Unbind(save2, shiftF1)
	test.ExpectEquality(t, f.ui.labels["menu.file.save.2"], "2: --/--/-- --:--:--\tShift+F2")

	f.sess.SetInputs(save1, []userinput.Input{btn0, f1})
	test.ExpectEquality(t, f.ui.labels["menu.file.save.1"], "1: --/--/-- --:--:--\tF1")
	test.ExpectEquality(t, f.ui.labels["menu.file.load.1"], "1: --/--/-- --:--:--")
}

func TestSaveAndReload(t *testing.T) {
	f := setup(t, nil)
	open := f.id(t, commands.KeyOpen)

	f.sess.Bind(open, btn0)
	test.DemandSuccess(t, f.sess.SaveBindings())
	test.ExpectEquality(t, f.store.saves, 1)

	f.sess.ResetBindings()
	_, ok := f.sess.CommandFor(btn0)
	test.ExpectFailure(t, ok)

	// reload from the store after an external change
	test.ExpectSuccess(t, f.sess.Notify(notifications.NotifyBindingsChanged))
	id, ok := f.sess.CommandFor(btn0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, id, open)
}

func TestRecentFiles(t *testing.T) {
	f := setup(t, nil)
	test.ExpectFailure(t, f.ui.enabled["menu.file.recent.1"])

	f.sess.SetRecentFiles([]string{"one.gba", "two.gb"})
	test.ExpectSuccess(t, f.ui.enabled["menu.file.recent.1"])
	test.ExpectEquality(t, f.ui.labels["menu.file.recent.1"], "one.gba")
	test.ExpectEquality(t, f.ui.labels["menu.file.recent.2"], "two.gb")
	test.ExpectEquality(t, f.ui.labels["menu.file.recent.3"], "Recent file 3")

	f.sess.SetRecentFiles(nil)
	test.ExpectFailure(t, f.ui.enabled["menu.file.recent.1"])
	test.ExpectEquality(t, f.ui.labels["menu.file.recent.1"], "Recent file 1")
}

func TestPreferences(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	p, err := session.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.SlotCount.Value(), commands.DefaultSlots)
	test.DemandSuccess(t, p.SlotCount.Set(4))
	test.DemandSuccess(t, p.Save())

	p, err = session.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.SlotCount.Value(), 4)

	u := &ui{
		labels:  make(map[commands.Anchor]string),
		enabled: make(map[commands.Anchor]bool),
	}
	sess, err := session.NewSession(session.Host{UI: u, Sink: &sink{}}, p)
	test.DemandSuccess(t, err)

	// four slots means four save commands
	_, ok := sess.Registry().ByKey(commands.SaveStateKey(3))
	test.ExpectSuccess(t, ok)
	_, ok = sess.Registry().ByKey(commands.SaveStateKey(4))
	test.ExpectFailure(t, ok)

	// changing the template is applied immediately
	test.DemandSuccess(t, p.SlotTemplate.Set("Slot {slot}"))
	test.ExpectEquality(t, u.labels["menu.file.save.2"], "Slot 2\tShift+F2")
	test.DemandSuccess(t, p.SlotEmpty.Set("(empty)"))
	test.DemandSuccess(t, p.SlotTemplate.Set("{slot} {timestamp|empty}"))
	test.ExpectEquality(t, u.labels["menu.file.save.2"], "2 (empty)\tShift+F2")
}
