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

// Package gui defines the interface shared by the front ends in the
// sub-packages. A front end reads input from the user, passes it to a
// Handler and presents the menu state pushed to it by the session.
//
// Front ends are not required to have real menus. The front ends in this
// module present menu items in whatever way suits them.
package gui

import (
	"context"

	"github.com/jetsetilly/shortcuts/dispatch"
	"github.com/jetsetilly/shortcuts/menus"
	"github.com/jetsetilly/shortcuts/session"
	"github.com/jetsetilly/shortcuts/userinput"
)

// Handler receives normalised input events from a Host. The session.Session
// type implements this interface.
type Handler interface {
	HandleEvent(userinput.Event) dispatch.Verdict
}

// Host is implemented by every front end.
type Host interface {
	menus.UI
	session.JoystickPoller

	// Service queues a function to be run by the goroutine that is running
	// the Run() function. Safe to call from any goroutine.
	Service(func())

	// SetStatus shows a short message to the user.
	SetStatus(string)

	// Run reads input until the context is cancelled or the user closes the
	// front end. Input events are passed to the Handler.
	Run(ctx context.Context, h Handler) error

	// Destroy releases all resources. The Host cannot be used afterwards.
	Destroy() error
}

// ServiceQueueLen is the size of the service channel used by hosts.
const ServiceQueueLen = 16
