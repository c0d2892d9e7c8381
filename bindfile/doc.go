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

// Package bindfile stores bindings in a YAML file and watches the file for
// changes made outside of the application.
//
// The file lists commands in order, each with a list of inputs:
//
//	version: 1
//	bindings:
//	  - command: open
//	    inputs: [Ctrl+O]
//	  - command: save-state-1
//	    inputs: [Shift+F1, Joy1-Button4]
//
// Order is significant. If an input is listed for more than one command the
// last command to list it wins.
//
// The File type implements the bindings.Store interface. Writes are atomic:
// the file is written to a temporary file in the same directory which is then
// renamed.
package bindfile
