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

// Package session ties together the binding table, the dispatcher, the
// capability state, the slot cache and the menu synchronizer.
//
// A Session is created by the host application with the collaborators it
// provides (see the Host type). After creation, all changes to bindings,
// capabilities and slots should be made through the Session so that the
// menus are kept up to date.
//
// Events in the wider application are sent to the Session as notices (see
// the notifications package). For example, the emulation sends
// NotifyGameLoaded when a game starts and NotifyStateSaved whenever a
// save-state has been written.
//
// The Session is not safe for concurrent use. All functions must be called
// from the same goroutine. When built with the assertions build tag, calls
// from other goroutines will panic.
package session
