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

// Package bindings maps user input to commands.
//
// The Table type is a bidirectional mapping. In one direction every command
// has an ordered set of inputs. In the other direction every input maps to at
// most one command. The two directions are updated together and are never
// inconsistent.
//
// Binding an input that is already bound to a different command moves the
// input to the new command. The previous owner silently loses the input.
//
// Functions that change the table return the IDs of every command whose set
// of inputs has changed. This includes the previous owner of a moved input.
// Callers use the list to update menu captions for exactly those commands.
//
// Bindings are persisted as a list of Entry values. The Entry type uses the
// command key and the text form of the input, so it is independent of
// command IDs and of the format used by whatever Store implementation is in
// use.
package bindings
