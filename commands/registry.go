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

package commands

import (
	"fmt"
)

// ID identifies a command. It is the command's index in the Registry.
type ID int

// NoCommand is returned by functions when no command can be found.
const NoCommand ID = -1

// Anchor is an opaque reference to a UI element. The empty string indicates
// that there is no UI element for the command.
type Anchor string

// NoAnchor indicates that a command has no UI element.
const NoAnchor Anchor = ""

// SlotRole describes the relationship between a command and a save-state slot.
type SlotRole int

// List of valid SlotRole values.
const (
	RoleNone SlotRole = iota
	RoleSaveSlot
	RoleLoadSlot
)

// Command describes a single logical command.
type Command struct {
	ID ID

	// stable name used when saving bindings
	Key string

	// name of the command as it should be shown to the user
	Name string

	// all bits must be present in Capabilities for the command to be enabled
	Requires Capability

	Anchor Anchor

	// save-state slot the command acts on. only valid if Role is not RoleNone
	Slot int
	Role SlotRole
}

func (c Command) String() string {
	return fmt.Sprintf("%s (%d)", c.Key, c.ID)
}

// IsSlot returns true if the command acts on a save-state slot.
func (c Command) IsSlot() bool {
	return c.Role != RoleNone
}

// Registry is a fixed list of commands. It is not changed once it has been
// created.
type Registry struct {
	commands []Command
	keys     map[string]ID
	anchored []ID
}

// NewRegistry creates a new registry from the list of commands. The ID field
// of each command is set to the command's position in the list. Command keys
// must be unique.
func NewRegistry(cmds []Command) (*Registry, error) {
	reg := &Registry{
		commands: make([]Command, len(cmds)),
		keys:     make(map[string]ID, len(cmds)),
	}

	for i, c := range cmds {
		if c.Key == "" {
			return nil, fmt.Errorf("registry: command %d has no key", i)
		}
		if _, ok := reg.keys[c.Key]; ok {
			return nil, fmt.Errorf("registry: duplicate command key (%s)", c.Key)
		}
		if c.Role == RoleNone {
			c.Slot = -1
		}

		c.ID = ID(i)
		reg.commands[i] = c
		reg.keys[c.Key] = c.ID

		if c.Anchor != NoAnchor {
			reg.anchored = append(reg.anchored, c.ID)
		}
	}

	return reg, nil
}

// Len returns the number of commands in the registry.
func (reg *Registry) Len() int {
	return len(reg.commands)
}

// Valid returns true if the ID refers to a command in the registry.
func (reg *Registry) Valid(id ID) bool {
	return id >= 0 && int(id) < len(reg.commands)
}

// Get returns the command for the ID. The ID must be valid.
func (reg *Registry) Get(id ID) Command {
	if !reg.Valid(id) {
		panic(fmt.Sprintf("registry: invalid command ID (%d)", id))
	}
	return reg.commands[id]
}

// ByKey returns the ID of the command with the key.
func (reg *Registry) ByKey(key string) (ID, bool) {
	id, ok := reg.keys[key]
	if !ok {
		return NoCommand, false
	}
	return id, true
}

// All returns a copy of all commands in the registry, in ID order.
func (reg *Registry) All() []Command {
	c := make([]Command, len(reg.commands))
	copy(c, reg.commands)
	return c
}

// Anchored returns the IDs of all commands with an anchor, in ID order.
func (reg *Registry) Anchored() []ID {
	c := make([]ID, len(reg.anchored))
	copy(c, reg.anchored)
	return c
}

// ForSlot returns the IDs of all commands acting on the save-state slot.
func (reg *Registry) ForSlot(slot int) []ID {
	var ids []ID
	for _, c := range reg.commands {
		if c.IsSlot() && c.Slot == slot {
			ids = append(ids, c.ID)
		}
	}
	return ids
}
