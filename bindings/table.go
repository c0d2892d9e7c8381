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

package bindings

import (
	"slices"

	"github.com/jetsetilly/shortcuts/commands"
	"github.com/jetsetilly/shortcuts/userinput"
)

// Table is the binding table. The zero value is not usable; use NewTable().
type Table struct {
	// inputs for each command, sorted by userinput.Compare()
	inputs map[commands.ID][]userinput.Input

	// reverse index
	owner map[userinput.Input]commands.ID
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable() *Table {
	return &Table{
		inputs: make(map[commands.ID][]userinput.Input),
		owner:  make(map[userinput.Input]commands.ID),
	}
}

// insert input into the sorted list for the command. the reverse index is
// not touched
func (tab *Table) insert(cmd commands.ID, in userinput.Input) {
	l := tab.inputs[cmd]
	i, found := slices.BinarySearchFunc(l, in, userinput.Compare)
	if found {
		return
	}
	tab.inputs[cmd] = slices.Insert(l, i, in)
}

// remove input from the sorted list for the command. the reverse index is not
// touched
func (tab *Table) remove(cmd commands.ID, in userinput.Input) {
	l := tab.inputs[cmd]
	i, found := slices.BinarySearchFunc(l, in, userinput.Compare)
	if !found {
		return
	}
	l = slices.Delete(l, i, i+1)
	if len(l) == 0 {
		delete(tab.inputs, cmd)
	} else {
		tab.inputs[cmd] = l
	}
}

// Bind input to the command. If the input is bound to a different command it
// is removed from that command first.
//
// Returns the list of commands that have changed. The list is empty if the
// input was already bound to the command.
func (tab *Table) Bind(cmd commands.ID, in userinput.Input) []commands.ID {
	prev, ok := tab.owner[in]
	if ok && prev == cmd {
		return nil
	}

	var changed []commands.ID
	if ok {
		tab.remove(prev, in)
		changed = append(changed, prev)
	}

	tab.insert(cmd, in)
	tab.owner[in] = cmd

	changed = append(changed, cmd)
	slices.Sort(changed)
	return changed
}

// Unbind input from the command. It is not an error for the input to not be
// bound to the command.
//
// Returns the list of commands that have changed.
func (tab *Table) Unbind(cmd commands.ID, in userinput.Input) []commands.ID {
	if prev, ok := tab.owner[in]; !ok || prev != cmd {
		return nil
	}
	tab.remove(cmd, in)
	delete(tab.owner, in)
	return []commands.ID{cmd}
}

// SetInputs replaces all inputs for the command with the new list. Inputs in
// the list that are bound to other commands are moved to this command.
// Duplicate inputs in the list are ignored.
//
// Returns the list of commands that have changed.
func (tab *Table) SetInputs(cmd commands.ID, ins []userinput.Input) []commands.ID {
	before := slices.Clone(tab.inputs[cmd])

	for _, in := range before {
		delete(tab.owner, in)
	}
	delete(tab.inputs, cmd)

	var changed []commands.ID
	for _, in := range ins {
		if prev, ok := tab.owner[in]; ok && prev != cmd {
			tab.remove(prev, in)
			changed = append(changed, prev)
		}
		tab.insert(cmd, in)
		tab.owner[in] = cmd
	}

	if !slices.Equal(before, tab.inputs[cmd]) {
		changed = append(changed, cmd)
	}

	slices.Sort(changed)
	return slices.Compact(changed)
}

// Clear removes all bindings.
func (tab *Table) Clear() {
	clear(tab.inputs)
	clear(tab.owner)
}

// CommandFor returns the command bound to the input, if any.
func (tab *Table) CommandFor(in userinput.Input) (commands.ID, bool) {
	cmd, ok := tab.owner[in]
	if !ok {
		return commands.NoCommand, false
	}
	return cmd, true
}

// InputsFor returns the inputs bound to the command. Inputs are ordered by
// userinput.Compare(), meaning that keyboard inputs are first. The returned
// slice is a copy and can be modified by the caller.
func (tab *Table) InputsFor(cmd commands.ID) []userinput.Input {
	return slices.Clone(tab.inputs[cmd])
}

// First returns the first input bound to the command, as ordered by
// InputsFor().
func (tab *Table) First(cmd commands.ID) (userinput.Input, bool) {
	l := tab.inputs[cmd]
	if len(l) == 0 {
		return userinput.Input{}, false
	}
	return l[0], true
}

// Commands returns the IDs of all commands with at least one input, in ID
// order.
func (tab *Table) Commands() []commands.ID {
	ids := make([]commands.ID, 0, len(tab.inputs))
	for id := range tab.inputs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Len returns the number of bound inputs.
func (tab *Table) Len() int {
	return len(tab.owner)
}

// Joysticks returns the list of joysticks that are referred to by any
// binding. The list is sorted and has no duplicates.
func (tab *Table) Joysticks() []int {
	var joy []int
	for in := range tab.owner {
		if in.Device.IsJoystick() {
			joy = append(joy, in.Joystick)
		}
	}
	slices.Sort(joy)
	return slices.Compact(joy)
}
