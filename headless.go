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

package main

import (
	"github.com/jetsetilly/shortcuts/commands"
	"github.com/jetsetilly/shortcuts/logger"
	"github.com/jetsetilly/shortcuts/session"
)

// headless satisfies the host requirements of a session for commands that
// do not run a front end.
type headless struct{}

func (headless) SetLabel(commands.Anchor, string) {}

func (headless) SetEnabled(commands.Anchor, bool) {}

func (headless) Invoke(id commands.ID) {
	logger.Logf(logger.Allow, "headless", "command %d invoked without a front end", id)
}

func headlessHost() session.Host {
	return session.Host{
		UI:   headless{},
		Sink: headless{},
	}
}
