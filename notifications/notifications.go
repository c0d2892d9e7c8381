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

package notifications

// Notice describes events that happen outside of the shortcuts session but
// which change how input is dispatched or how menus are presented.
type Notice string

// List of defined notifications.
const (
	// a game has been loaded and emulation has started
	NotifyGameLoaded Notice = "NotifyGameLoaded"

	// emulation has stopped and the game has been closed
	NotifyGameUnloaded Notice = "NotifyGameUnloaded"

	// the emulation has written a save-state to one of the slots
	NotifyStateSaved Notice = "NotifyStateSaved"

	// bindings have been changed outside of the session. for example, the
	// bindings file has been edited
	NotifyBindingsChanged Notice = "NotifyBindingsChanged"

	// sent by the host whenever a menu is opened or closed
	NotifyMenuOpened Notice = "NotifyMenuOpened"
	NotifyMenuClosed Notice = "NotifyMenuClosed"

	// sent by the host whenever a modal dialog is opened or closed
	NotifyDialogOpened Notice = "NotifyDialogOpened"
	NotifyDialogClosed Notice = "NotifyDialogClosed"
)

// Notify is used to send notices to the shortcuts session. Notices must be
// sent from the same goroutine that handles input events.
type Notify interface {
	Notify(notice Notice) error
}
