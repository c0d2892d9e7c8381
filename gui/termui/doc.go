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

// Package termui is a terminal front end for the shortcuts session. Menu
// items are drawn as a list, one item per line, with the accelerator caption
// in the right hand column. Disabled items are drawn dimmed.
//
// Terminals do not report key releases or joysticks. Every key event is
// treated as a key press and requests to poll joysticks are logged and
// otherwise ignored.
//
// Shifted punctuation is reported as the unshifted key with the shift
// modifier, the same as the SDL front end. For example, '!' is Shift+1. This
// assumes a US keyboard layout.
package termui
