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

package commands_test

import (
	"testing"

	"github.com/jetsetilly/shortcuts/commands"
	"github.com/jetsetilly/shortcuts/test"
)

func TestRegistry(t *testing.T) {
	reg, err := commands.NewRegistry([]commands.Command{
		{Key: "a", Name: "A"},
		{Key: "b", Name: "B", Anchor: "menu.b"},
		{Key: "c", Name: "C", Anchor: "menu.c", Role: commands.RoleSaveSlot, Slot: 2},
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, reg.Len(), 3)

	id, ok := reg.ByKey("b")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, id, commands.ID(1))
	test.ExpectEquality(t, reg.Get(id).Name, "B")

	id, ok = reg.ByKey("z")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, id, commands.NoCommand)

	anchored := reg.Anchored()
	test.DemandEquality(t, len(anchored), 2)
	test.ExpectEquality(t, anchored[0], commands.ID(1))
	test.ExpectEquality(t, anchored[1], commands.ID(2))

	// slot is forced to -1 for commands that are not slot commands
	test.ExpectEquality(t, reg.Get(0).Slot, -1)
	test.ExpectEquality(t, reg.Get(2).Slot, 2)

	ids := reg.ForSlot(2)
	test.DemandEquality(t, len(ids), 1)
	test.ExpectEquality(t, ids[0], commands.ID(2))

	test.ExpectFailure(t, reg.Valid(3))
	test.ExpectFailure(t, reg.Valid(commands.NoCommand))
}

func TestRegistryErrors(t *testing.T) {
	_, err := commands.NewRegistry([]commands.Command{{Key: "a"}, {Key: "a"}})
	test.ExpectFailure(t, err)

	_, err = commands.NewRegistry([]commands.Command{{Name: "no key"}})
	test.ExpectFailure(t, err)
}

func TestDefaultRegistry(t *testing.T) {
	reg := commands.DefaultRegistry(commands.DefaultSlots)

	for i := 0; i < commands.DefaultSlots; i++ {
		id, ok := reg.ByKey(commands.SaveStateKey(i))
		test.DemandSuccess(t, ok)
		c := reg.Get(id)
		test.ExpectEquality(t, c.Slot, i)
		test.ExpectEquality(t, c.Role, commands.RoleSaveSlot)

		id, ok = reg.ByKey(commands.LoadStateKey(i))
		test.DemandSuccess(t, ok)
		c = reg.Get(id)
		test.ExpectEquality(t, c.Slot, i)
		test.ExpectEquality(t, c.Role, commands.RoleLoadSlot)
		test.ExpectSuccess(t, c.Requires&commands.SaveStatePresent == commands.SaveStatePresent)

		test.ExpectEquality(t, len(reg.ForSlot(i)), 2)
	}

	for i := 0; i < commands.NumRecentFiles; i++ {
		_, ok := reg.ByKey(commands.RecentKey(i))
		test.ExpectSuccess(t, ok)
	}

	test.ExpectEquality(t, len(reg.Anchored()), reg.Len())
}

func TestCapabilities(t *testing.T) {
	var cp commands.Capabilities

	test.ExpectSuccess(t, cp.Set(commands.Emulating, true))
	test.ExpectFailure(t, cp.Set(commands.Emulating, true))
	test.ExpectSuccess(t, cp.Has(commands.Emulating))
	test.ExpectFailure(t, cp.Has(commands.Emulating|commands.Rewind))
	test.ExpectSuccess(t, cp.Set(commands.Rewind, true))
	test.ExpectSuccess(t, cp.Has(commands.Emulating|commands.Rewind))
	test.ExpectSuccess(t, cp.Set(commands.Emulating, false))
	test.ExpectEquality(t, cp.Mask(), commands.Rewind)
	test.ExpectFailure(t, cp.Set(commands.Emulating, false))

	// always available
	test.ExpectSuccess(t, cp.Allows(commands.Command{Requires: commands.Always}))

	test.ExpectEquality(t, (commands.Emulating | commands.GameBoy).String(), "Emulating|GameBoy")
	test.ExpectEquality(t, commands.Always.String(), "Always")
}

func TestEnabledCommands(t *testing.T) {
	reg, err := commands.NewRegistry([]commands.Command{
		{Key: "always"},
		{Key: "emulating", Requires: commands.Emulating},
		{Key: "savestate", Requires: commands.SaveStatePresent},
		{Key: "both", Requires: commands.Emulating | commands.SaveStatePresent},
	})
	test.DemandSuccess(t, err)

	var cp commands.Capabilities
	ids := cp.EnabledCommands(reg)
	test.DemandEquality(t, len(ids), 1)
	test.ExpectEquality(t, ids[0], commands.ID(0))

	cp.Set(commands.SaveStatePresent, true)
	ids = cp.EnabledCommands(reg)
	test.DemandEquality(t, len(ids), 2)
	test.ExpectEquality(t, ids[1], commands.ID(2))

	cp.Set(commands.Emulating, true)
	test.ExpectEquality(t, len(cp.EnabledCommands(reg)), 4)

	// clearing the save state bit disables exactly the commands that require it
	cp.Set(commands.SaveStatePresent, false)
	ids = cp.EnabledCommands(reg)
	test.DemandEquality(t, len(ids), 2)
	test.ExpectEquality(t, ids[0], commands.ID(0))
	test.ExpectEquality(t, ids[1], commands.ID(1))
}
