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

// Package userinput describes input from real hardware in a form that is
// independent of the GUI implementation that produced it.
//
// It can be thought of as a translation layer between the GUI implementation
// and the bindings package. GUI specific packages (for example gui/sdlinput and
// gui/termui) normalise their native events into the Event type and the rest
// of the application never sees the native event.
//
// The Input type is the bindable part of an event: the device, the joystick
// number, the code and any modifier keys. It is comparable and so can be used
// as a map key. The Compare() function defines a total ordering, which places
// keyboard inputs before any joystick input. That ordering is what decides
// which input is shown as the accelerator for a menu item.
//
// The String() representation of an Input can be parsed with Parse().
package userinput
