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

package menus

import (
	"github.com/jetsetilly/shortcuts/commands"
	"github.com/jetsetilly/shortcuts/slots"
	"github.com/jetsetilly/shortcuts/userinput"
)

// Bindings is the part of the binding table used by the Synchronizer.
type Bindings interface {
	First(commands.ID) (userinput.Input, bool)
}

// Slots is the part of the slot cache used by the Synchronizer.
type Slots interface {
	Len() int
	Record(int) slots.Record
}

// Synchronizer pushes labels and enabled states to the UI. The zero value is
// not usable; use NewSynchronizer().
type Synchronizer struct {
	reg   *commands.Registry
	binds Bindings
	caps  *commands.Capabilities
	slots Slots
	ui    UI

	Captioner  Captioner
	Timestamps TimestampFormatter
	Template   SlotTemplate

	// display text that replaces the command name. used for entries like the
	// recent files list
	display map[commands.ID]string

	// last values pushed to each anchor
	labels  map[commands.Anchor]string
	enabled map[commands.Anchor]bool

	pushes int
}

// NewSynchronizer is the preferred method of initialisation for the
// Synchronizer type. Nothing is pushed to the UI until one of the sync
// functions is called.
func NewSynchronizer(reg *commands.Registry, binds Bindings, caps *commands.Capabilities, slts Slots, ui UI) *Synchronizer {
	return &Synchronizer{
		reg:        reg,
		binds:      binds,
		caps:       caps,
		slots:      slts,
		ui:         ui,
		Captioner:  DefaultCaptioner{},
		Timestamps: DefaultLayout,
		Template:   NewSlotTemplate("", ""),
		display:    make(map[commands.ID]string),
		labels:     make(map[commands.Anchor]string),
		enabled:    make(map[commands.Anchor]bool),
	}
}

// Pushes returns the number of values pushed to the UI.
func (syn *Synchronizer) Pushes() int {
	return syn.pushes
}

// slot record for the command. the record is invalid if the slot number is
// outside the range of the cache
func (syn *Synchronizer) record(cmd commands.Command) slots.Record {
	if cmd.Slot < 0 || cmd.Slot >= syn.slots.Len() {
		return slots.Record{Index: cmd.Slot}
	}
	return syn.slots.Record(cmd.Slot)
}

// Label returns the label for the command as it would be pushed to the UI.
func (syn *Synchronizer) Label(id commands.ID) string {
	cmd := syn.reg.Get(id)

	display := cmd.Name
	if cmd.IsSlot() {
		var ts string
		if r := syn.record(cmd); r.Valid {
			ts = syn.Timestamps.FormatTimestamp(r.Timestamp)
		}
		display = syn.Template.Render(cmd.Slot, ts)
	} else if d, ok := syn.display[id]; ok {
		display = d
	}

	if in, ok := syn.binds.First(id); ok {
		if caption := syn.Captioner.Caption(in); caption != "" {
			return display + "\t" + caption
		}
	}

	return display
}

// Enabled returns whether the command should be enabled in the UI. Commands
// that load from a slot are disabled if the slot is empty.
func (syn *Synchronizer) Enabled(id commands.ID) bool {
	cmd := syn.reg.Get(id)
	if !syn.caps.Allows(cmd) {
		return false
	}
	if cmd.Role == commands.RoleLoadSlot {
		return syn.record(cmd).Valid
	}
	return true
}

func (syn *Synchronizer) pushLabel(id commands.ID) {
	anchor := syn.reg.Get(id).Anchor
	if anchor == commands.NoAnchor {
		return
	}
	label := syn.Label(id)
	if prev, ok := syn.labels[anchor]; ok && prev == label {
		return
	}
	syn.labels[anchor] = label
	syn.ui.SetLabel(anchor, label)
	syn.pushes++
}

func (syn *Synchronizer) pushEnabled(id commands.ID) {
	anchor := syn.reg.Get(id).Anchor
	if anchor == commands.NoAnchor {
		return
	}
	enabled := syn.Enabled(id)
	if prev, ok := syn.enabled[anchor]; ok && prev == enabled {
		return
	}
	syn.enabled[anchor] = enabled
	syn.ui.SetEnabled(anchor, enabled)
	syn.pushes++
}

// Sync pushes the label and enabled state of every anchored command.
func (syn *Synchronizer) Sync() {
	for _, id := range syn.reg.Anchored() {
		syn.pushLabel(id)
		syn.pushEnabled(id)
	}
}

// SyncCommands pushes the labels of the listed commands. Use this after a
// change to the binding table.
func (syn *Synchronizer) SyncCommands(ids []commands.ID) {
	for _, id := range ids {
		if syn.reg.Valid(id) {
			syn.pushLabel(id)
		}
	}
}

// SyncSlots pushes the label and enabled state of every command attached to
// the listed slots. Use this after a change to the slot cache.
func (syn *Synchronizer) SyncSlots(indexes []int) {
	for _, i := range indexes {
		for _, id := range syn.reg.ForSlot(i) {
			syn.pushLabel(id)
			syn.pushEnabled(id)
		}
	}
}

// SyncEnabled pushes the enabled state of every anchored command. Use this
// after a change to the capability state.
func (syn *Synchronizer) SyncEnabled() {
	for _, id := range syn.reg.Anchored() {
		syn.pushEnabled(id)
	}
}

// SetDisplay replaces the display text of a command and pushes the new
// label. An empty string restores the command name. Has no effect on slot
// commands, which use the slot template.
func (syn *Synchronizer) SetDisplay(id commands.ID, display string) {
	if !syn.reg.Valid(id) {
		return
	}
	if display == "" {
		delete(syn.display, id)
	} else {
		syn.display[id] = display
	}
	syn.pushLabel(id)
}

// Forget the values pushed to the anchor. The next sync will push to the
// anchor even if the values have not changed.
func (syn *Synchronizer) Forget(anchor commands.Anchor) {
	delete(syn.labels, anchor)
	delete(syn.enabled, anchor)
}

// ForgetSlots forgets the values pushed to the anchors of every command
// attached to the listed slots.
func (syn *Synchronizer) ForgetSlots(indexes []int) {
	for _, i := range indexes {
		for _, id := range syn.reg.ForSlot(i) {
			syn.Forget(syn.reg.Get(id).Anchor)
		}
	}
}

// ForgetAll forgets every pushed value.
func (syn *Synchronizer) ForgetAll() {
	clear(syn.labels)
	clear(syn.enabled)
}
