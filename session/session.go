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

package session

import (
	"errors"
	"io/fs"
	"slices"

	"github.com/jetsetilly/shortcuts/assert"
	"github.com/jetsetilly/shortcuts/bindings"
	"github.com/jetsetilly/shortcuts/commands"
	"github.com/jetsetilly/shortcuts/dispatch"
	"github.com/jetsetilly/shortcuts/logger"
	"github.com/jetsetilly/shortcuts/menus"
	"github.com/jetsetilly/shortcuts/prefs"
	"github.com/jetsetilly/shortcuts/slots"
	"github.com/jetsetilly/shortcuts/userinput"
)

// JoystickPoller is implemented by the host to start and stop the polling of
// joystick devices.
type JoystickPoller interface {
	StopPolling()

	// joysticks are identified by the same numbers used in userinput.Input
	PollJoysticks(joysticks []int)
}

// Host contains the collaborators provided by the host application. UI and
// Sink are required. The other fields can be nil.
type Host struct {
	UI     menus.UI
	Sink   dispatch.Sink
	Slots  slots.Source
	Store  bindings.Store
	Poller JoystickPoller
}

// Session is the shortcuts session. The zero value is not usable; use
// NewSession().
type Session struct {
	thread assert.Thread

	prefs  *Preferences
	store  bindings.Store
	poller JoystickPoller

	reg   *commands.Registry
	table *bindings.Table
	caps  commands.Capabilities
	cache *slots.Cache
	disp  *dispatch.Dispatcher
	sync  *menus.Synchronizer

	// joysticks currently being polled
	polling []int
}

// NewSession is the preferred method of initialisation for the Session type.
// Bindings are loaded from the store, if there is one, and every menu item is
// synchronised.
//
// If the preferences argument is nil then default preferences are used. The
// default preferences are not backed by a file.
func NewSession(host Host, p *Preferences) (*Session, error) {
	if host.UI == nil || host.Sink == nil {
		return nil, errors.New("session: host must provide UI and Sink")
	}

	if p == nil {
		p = &Preferences{}
		p.SetDefaults()
	}

	s := &Session{
		thread: assert.NewThread(),
		prefs:  p,
		store:  host.Store,
		poller: host.Poller,
		reg:    commands.DefaultRegistry(p.SlotCount.Value()),
		table:  bindings.NewTable(),
	}

	s.cache = slots.NewCache(p.SlotCount.Value(), host.Slots)
	s.disp = dispatch.NewDispatcher(s.table, host.Sink, &p.Verbose)
	s.sync = menus.NewSynchronizer(s.reg, s.table, &s.caps, s.cache, host.UI)
	s.applyPresentation()

	s.attachHooks()

	if err := s.loadBindings(); err != nil {
		return nil, err
	}

	s.cache.Rescan(false)
	s.caps.Set(commands.SaveStatePresent, s.cache.AnyValid())
	s.sync.Sync()

	return s, nil
}

// set synchronizer fields from preferences
func (s *Session) applyPresentation() {
	s.sync.Template = menus.NewSlotTemplate(s.prefs.SlotTemplate.Value(), s.prefs.SlotEmpty.Value())
	if s.prefs.Humanize.Value() {
		s.sync.Timestamps = menus.Humanized{}
	} else {
		s.sync.Timestamps = menus.DefaultLayout
	}
}

// changes to preferences that affect the slot labels are applied immediately
func (s *Session) attachHooks() {
	presentation := func(prefs.Value) error {
		s.applyPresentation()
		s.refreshSlots()
		return nil
	}
	s.prefs.SlotTemplate.SetHookPost(presentation)
	s.prefs.SlotEmpty.SetHookPost(presentation)
	s.prefs.Humanize.SetHookPost(presentation)

	s.prefs.JoystickBackground.SetHookPost(func(prefs.Value) error {
		s.reconfigureJoysticks(true)
		return nil
	})
}

// push slot labels regardless of whether they have changed
func (s *Session) refreshSlots() {
	all := make([]int, s.cache.Len())
	for i := range all {
		all[i] = i
	}
	s.sync.ForgetSlots(all)
	s.sync.SyncSlots(all)
}

// Registry returns the command registry used by the session.
func (s *Session) Registry() *commands.Registry {
	return s.reg
}

// HandleEvent passes the event to the dispatcher.
func (s *Session) HandleEvent(ev userinput.Event) dispatch.Verdict {
	s.thread.Check("session.HandleEvent")
	return s.disp.HandleEvent(ev)
}

// State returns the state of the dispatcher.
func (s *Session) State() dispatch.State {
	return s.disp.State()
}

// OnSuppress sets the function to be called when input dispatch is suppressed
// or resumed. See dispatch.Dispatcher.OnSuppress().
func (s *Session) OnSuppress(f func(bool)) {
	s.disp.OnSuppress(f)
}

// InputsFor returns the inputs bound to the command.
func (s *Session) InputsFor(id commands.ID) []userinput.Input {
	return s.table.InputsFor(id)
}

// CommandFor returns the command bound to the input.
func (s *Session) CommandFor(in userinput.Input) (commands.ID, bool) {
	return s.table.CommandFor(in)
}

// Label returns the label of the command as shown in the menu.
func (s *Session) Label(id commands.ID) string {
	return s.sync.Label(id)
}

// Enabled returns whether the command is currently enabled.
func (s *Session) Enabled(id commands.ID) bool {
	return s.sync.Enabled(id)
}

// update everything affected by a change to the binding table
func (s *Session) bindingsChanged(changed []commands.ID) {
	if len(changed) == 0 {
		return
	}
	s.sync.SyncCommands(changed)
	s.reconfigureJoysticks(false)
}

// Bind input to the command. See bindings.Table.Bind().
func (s *Session) Bind(id commands.ID, in userinput.Input) {
	s.thread.Check("session.Bind")
	s.bindingsChanged(s.table.Bind(id, in))
}

// Unbind input from the command. See bindings.Table.Unbind().
func (s *Session) Unbind(id commands.ID, in userinput.Input) {
	s.thread.Check("session.Unbind")
	s.bindingsChanged(s.table.Unbind(id, in))
}

// SetInputs replaces the inputs for the command. See
// bindings.Table.SetInputs().
func (s *Session) SetInputs(id commands.ID, ins []userinput.Input) {
	s.thread.Check("session.SetInputs")
	s.bindingsChanged(s.table.SetInputs(id, ins))
}

// SetCapability changes a capability flag. Menu items are only updated if
// the flag has changed.
func (s *Session) SetCapability(flag commands.Capability, enabled bool) {
	s.thread.Check("session.SetCapability")
	if s.caps.Set(flag, enabled) {
		s.sync.SyncEnabled()
	}
}

// Capabilities returns the current capability mask.
func (s *Session) Capabilities() commands.Capability {
	return s.caps.Mask()
}

// SetSlotSource changes the source of slot information. Usually called
// before NotifyGameLoaded because the save-state files depend on the game.
func (s *Session) SetSlotSource(src slots.Source) {
	s.cache.SetSource(src)
}

// Rescan the save-state slots. If force is true every slot label is pushed
// to the UI even if it hasn't changed. The SaveStatePresent capability is
// set according to whether any slot has a save-state.
func (s *Session) Rescan(force bool) {
	s.thread.Check("session.Rescan")

	changed := s.cache.Rescan(force)
	present := s.caps.Set(commands.SaveStatePresent, s.cache.AnyValid())

	if force {
		s.sync.ForgetSlots(changed)
	}
	s.sync.SyncSlots(changed)

	if present {
		s.sync.SyncEnabled()
	}
}

// UpdateSlot rescans a single slot. Use this when the slot that has been
// written is known.
func (s *Session) UpdateSlot(slot int) {
	s.thread.Check("session.UpdateSlot")

	if !s.cache.Update(slot) {
		return
	}
	present := s.caps.Set(commands.SaveStatePresent, s.cache.AnyValid())
	s.sync.SyncSlots([]int{slot})
	if present {
		s.sync.SyncEnabled()
	}
}

// Slot returns the cached record for the slot.
func (s *Session) Slot(slot int) slots.Record {
	return s.cache.Record(slot)
}

// OldestSlot returns the slot that should be used by the save-to-oldest
// command.
func (s *Session) OldestSlot() (int, bool) {
	return s.cache.OldestValidSlot()
}

// NewestSlot returns the slot that should be used by the load-most-recent
// command.
func (s *Session) NewestSlot() (int, bool) {
	return s.cache.NewestValidSlot()
}

// SetRecentFiles sets the display names of the recent file commands. The
// RecentFiles capability is set if the list is not empty.
func (s *Session) SetRecentFiles(names []string) {
	s.thread.Check("session.SetRecentFiles")

	for i := 0; i < commands.NumRecentFiles; i++ {
		id, ok := s.reg.ByKey(commands.RecentKey(i))
		if !ok {
			continue
		}
		var display string
		if i < len(names) {
			display = names[i]
		}
		s.sync.SetDisplay(id, display)
	}

	s.SetCapability(commands.RecentFiles, len(names) > 0)
}

// start or stop joystick polling to match the bindings and the emulation
// state. if force is false the poller is only touched if the set of
// joysticks has changed
func (s *Session) reconfigureJoysticks(force bool) {
	if s.poller == nil {
		return
	}

	var want []int
	if s.caps.Has(commands.Emulating) || s.prefs.JoystickBackground.Value() {
		want = s.table.Joysticks()
	}

	if !force && slices.Equal(want, s.polling) {
		return
	}

	s.poller.StopPolling()
	if len(want) > 0 {
		s.poller.PollJoysticks(want)
	}
	s.polling = want

	logger.Logf(&s.prefs.Verbose, "session", "polling joysticks %v", want)
}

// load bindings from the store. a store with no bindings results in the
// default bindings
func (s *Session) loadBindings() error {
	var ents []bindings.Entry

	if s.store == nil {
		ents = bindings.DefaultEntries(s.cache.Len())
	} else {
		var err error
		ents, err = s.store.LoadBindings()
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			ents = bindings.DefaultEntries(s.cache.Len())
		}
	}

	if skipped := s.table.Load(ents, s.reg); skipped > 0 {
		logger.Logf(logger.Allow, "session", "%d bindings could not be loaded", skipped)
	}

	return nil
}

// LoadBindings replaces the binding table with the bindings in the store.
// All menu items are synchronised.
func (s *Session) LoadBindings() error {
	s.thread.Check("session.LoadBindings")

	if err := s.loadBindings(); err != nil {
		return err
	}
	s.sync.Sync()
	s.reconfigureJoysticks(false)

	return nil
}

// SaveBindings writes the binding table to the store. Does nothing if there
// is no store.
func (s *Session) SaveBindings() error {
	if s.store == nil {
		return nil
	}
	return s.store.SaveBindings(s.table.Entries(s.reg))
}

// ResetBindings replaces the binding table with the default bindings. The
// store is not changed.
func (s *Session) ResetBindings() {
	s.thread.Check("session.ResetBindings")

	s.table.Load(bindings.DefaultEntries(s.cache.Len()), s.reg)
	s.sync.Sync()
	s.reconfigureJoysticks(false)
}

// Entries returns the current bindings in the persisted form.
func (s *Session) Entries() []bindings.Entry {
	return s.table.Entries(s.reg)
}
