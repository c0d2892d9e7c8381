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

// Package notifications allow communication from the rest of the front end
// to the shortcuts session. For example, the emulation will send
// NotifyGameLoaded when a game starts, which in turn causes the session to
// enable emulation commands and to rescan the save-state slots.
//
// Notifications about menus and dialogs are sent by the host's widget
// toolkit and control the suppression of input dispatch.
package notifications
