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

// Package sdlinput converts SDL events to userinput events and manages the
// joysticks that are opened with SDL.
//
// The Normaliser type is stateful. Joystick axis and hat events from SDL
// report positions rather than presses, so the Normaliser remembers the
// previous position of each axis and hat in order to report the press and
// release of each direction.
//
// The Host type is a minimal SDL front end. It opens a window, reads events
// and passes them to a session. It has no menus of its own; menu updates are
// logged and the most recent command is shown in the window title.
package sdlinput
