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

// Package prefs facilitates the storage of preferential values. Preferences
// are typed values (Bool, String and Int) that can be saved to and loaded
// from a file with the Disk type.
//
// Each preference type can have hook functions that are called just before
// and just after the value is updated. This allows a preference to be used
// as the single source of a setting that also needs to be applied elsewhere.
//
// The file format is one key/value pair per line, separated by KeySep:
//
//	shortcuts.slots.count :: 10
//	shortcuts.verbose :: false
//
// Values can also be supplied on the command line. The command line stack
// holds groups of key/value pairs that take priority over the file when
// Disk.Load() is called. The format of the command line string is:
//
//	key::value; key::value
package prefs
