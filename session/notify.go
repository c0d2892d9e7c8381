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

package session

import (
	"github.com/jetsetilly/shortcuts/commands"
	"github.com/jetsetilly/shortcuts/curated"
	"github.com/jetsetilly/shortcuts/notifications"
)

// UnknownNotice is the curated error pattern returned by Notify() for notices
// that the session does not handle.
const UnknownNotice = "session: unknown notice (%v)"

// Notify implements the notifications.Notify interface.
func (s *Session) Notify(notice notifications.Notice) error {
	s.thread.Check("session.Notify")

	switch notice {
	case notifications.NotifyGameLoaded:
		if s.caps.Set(commands.Emulating, true) {
			s.sync.SyncEnabled()
		}
		s.Rescan(true)
		s.reconfigureJoysticks(true)

	case notifications.NotifyGameUnloaded:
		if s.caps.Set(commands.Emulating, false) {
			s.sync.SyncEnabled()
		}
		s.reconfigureJoysticks(true)

	case notifications.NotifyStateSaved:
		s.Rescan(false)

	case notifications.NotifyBindingsChanged:
		return s.LoadBindings()

	case notifications.NotifyMenuOpened:
		s.disp.MenuOpened()
	case notifications.NotifyMenuClosed:
		s.disp.MenuClosed()
	case notifications.NotifyDialogOpened:
		s.disp.DialogOpened()
	case notifications.NotifyDialogClosed:
		s.disp.DialogClosed()

	default:
		return curated.Errorf(UnknownNotice, notice)
	}

	return nil
}
