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
	"fmt"

	"github.com/jetsetilly/shortcuts/commands"
)

// DefaultEntries returns the bindings used when no bindings have been saved.
// Function keys load from the first twelve slots and save with Shift.
func DefaultEntries(slots int) []Entry {
	ents := []Entry{
		{Command: commands.KeyOpen, Input: "Ctrl+O"},
		{Command: commands.KeyClose, Input: "Ctrl+W"},
		{Command: commands.KeyReset, Input: "Ctrl+R"},
		{Command: commands.KeyPause, Input: "Ctrl+P"},
		{Command: commands.KeyPause, Input: "Pause"},
		{Command: commands.KeySaveStateOldest, Input: "Ctrl+S"},
		{Command: commands.KeyLoadStateNewest, Input: "Ctrl+L"},
		{Command: commands.KeyExit, Input: "Ctrl+Q"},
	}

	for i := 0; i < slots && i < 12; i++ {
		ents = append(ents,
			Entry{Command: commands.SaveStateKey(i), Input: fmt.Sprintf("Shift+F%d", i+1)},
			Entry{Command: commands.LoadStateKey(i), Input: fmt.Sprintf("F%d", i+1)},
		)
	}

	return ents
}
