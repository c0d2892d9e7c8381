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

package userinput

import "strings"

// Device identifies the kind of hardware that produced an input. The order
// of declaration is the order of priority when choosing between inputs for
// display. New device kinds should be appended.
type Device int

// List of valid Device values.
const (
	Keyboard Device = iota
	JoystickButton
	JoystickAxis
	JoystickHat
)

func (d Device) String() string {
	switch d {
	case Keyboard:
		return "Keyboard"
	case JoystickButton:
		return "JoystickButton"
	case JoystickAxis:
		return "JoystickAxis"
	case JoystickHat:
		return "JoystickHat"
	}
	return "unknown device"
}

// IsJoystick returns true if the device is any kind of joystick control.
func (d Device) IsJoystick() bool {
	return d == JoystickButton || d == JoystickAxis || d == JoystickHat
}

// Modifier is a bitmask of keyboard modifier keys. Left and right variants of
// a modifier key are not distinguished.
type Modifier uint8

// List of valid Modifier bits.
const (
	ModNone  Modifier = 0
	ModCtrl  Modifier = 0x01
	ModAlt   Modifier = 0x02
	ModShift Modifier = 0x04
	ModMeta  Modifier = 0x08
)

// the order in which modifiers are written
var modifierNames = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModShift, "Shift"},
	{ModMeta, "Meta"},
}

func (m Modifier) String() string {
	s := strings.Builder{}
	for _, n := range modifierNames {
		if m&n.mod == n.mod {
			s.WriteString(n.name)
			s.WriteString("+")
		}
	}
	return s.String()
}

// parseModifier returns the modifier bit for the name. Alternative names
// commonly found in configuration files are accepted.
func parseModifier(s string) (Modifier, bool) {
	switch strings.ToLower(s) {
	case "ctrl", "control":
		return ModCtrl, true
	case "alt", "option":
		return ModAlt, true
	case "shift":
		return ModShift, true
	case "meta", "cmd", "super":
		return ModMeta, true
	}
	return ModNone, false
}
