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

// Package commands is the catalogue of logical commands that can be bound to
// user input and shown in menus.
//
// Commands are identified by a dense integer ID, which is the command's index
// in the Registry. The Key of a command is a stable string used when bindings
// are saved to disk. The ID should never be saved because it may change
// between versions.
//
// Some commands only make sense in some circumstances. For example, loading a
// save-state is only possible while a game is being emulated. The
// circumstances are described by a Capability bitmask. A command is available
// when all the bits in its requirement mask are present in the current
// Capabilities.
//
// Commands may be associated with a UI element through an Anchor. An anchor is
// an opaque name that is resolved by the GUI. This package never resolves an
// anchor itself.
package commands
