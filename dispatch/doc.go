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

// Package dispatch decides whether a normalised input event should trigger a
// command.
//
// The Dispatcher is either Idle or Suppressed. It is Suppressed while any
// menu or any modal dialog is open. Menus and dialogs are counted separately
// and both counts are re-entrant, so a dialog opened from another dialog
// requires two closes before dispatch resumes.
//
// When Idle, a keyboard key press (including auto-repeat) or a joystick
// button press is looked up in the binding table. A hit invokes the command
// on the Sink and the event is Consumed. Everything else is Skipped and
// should be handled normally by the host.
//
// The Dispatcher does not check capabilities. A disabled command that is
// bound to an input is still invoked and it is up to the Sink to ignore it.
package dispatch
