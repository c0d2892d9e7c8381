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

import (
	"cmp"
	"fmt"
)

// Direction of movement for joystick axis inputs.
const (
	AxisPlus = iota
	AxisMinus
)

// Direction of movement for joystick hat inputs.
const (
	HatUp = iota
	HatRight
	HatDown
	HatLeft
)

var hatNames = []string{"Up", "Right", "Down", "Left"}

// Input is the bindable identity of a hardware input. Whether the input is
// being pressed or released is not part of the identity (see the Event type).
//
// Input is comparable and can be used as a map key.
type Input struct {
	Device Device

	// joystick index, counting from zero. always zero for keyboard inputs
	Joystick int

	// the meaning of the code depends on the device. for the keyboard it is
	// the Key value. for joystick buttons it is the button number. for axes
	// and hats the code includes the direction (see AxisInput() and
	// HatInput())
	Code int

	// modifiers are only meaningful for keyboard inputs
	Mod Modifier
}

// KeyInput returns the Input for a keyboard key with modifiers.
func KeyInput(key Key, mod Modifier) Input {
	return Input{Device: Keyboard, Code: int(key), Mod: mod}
}

// ButtonInput returns the Input for a joystick button.
func ButtonInput(joystick int, button int) Input {
	return Input{Device: JoystickButton, Joystick: joystick, Code: button}
}

// AxisInput returns the Input for movement of a joystick axis in the
// specified direction. Direction should be AxisPlus or AxisMinus.
func AxisInput(joystick int, axis int, direction int) Input {
	return Input{Device: JoystickAxis, Joystick: joystick, Code: axis*2 + direction}
}

// HatInput returns the Input for a joystick hat direction. Direction should
// be one of HatUp, HatRight, HatDown or HatLeft.
func HatInput(joystick int, hat int, direction int) Input {
	return Input{Device: JoystickHat, Joystick: joystick, Code: hat*4 + direction}
}

// Key returns the keyboard key for the input. Returns KeyNone if the input is
// not a keyboard input.
func (in Input) Key() Key {
	if in.Device != Keyboard {
		return KeyNone
	}
	return Key(in.Code)
}

// Compare returns an integer comparing two inputs. The result will be 0 if
// a == b, -1 if a < b, and +1 if a > b.
//
// Device is the most significant part of the ordering, meaning that all
// keyboard inputs are ordered before joystick inputs.
func Compare(a, b Input) int {
	if c := cmp.Compare(a.Device, b.Device); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Joystick, b.Joystick); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Code, b.Code); c != 0 {
		return c
	}
	return cmp.Compare(a.Mod, b.Mod)
}

// String returns the canonical text for the input. The text can be parsed
// with the Parse() function.
func (in Input) String() string {
	switch in.Device {
	case Keyboard:
		return fmt.Sprintf("%s%s", in.Mod, Key(in.Code))
	case JoystickButton:
		return fmt.Sprintf("Joy%d-Button%d", in.Joystick+1, in.Code)
	case JoystickAxis:
		dir := "+"
		if in.Code%2 == AxisMinus {
			dir = "-"
		}
		return fmt.Sprintf("Joy%d-Axis%d%s", in.Joystick+1, in.Code/2, dir)
	case JoystickHat:
		return fmt.Sprintf("Joy%d-Hat%d%s", in.Joystick+1, in.Code/4, hatNames[in.Code%4])
	}
	return fmt.Sprintf("unknown input (%d)", in.Device)
}

// Event is a normalised input event.
type Event struct {
	Input

	// whether the input is being pressed or released. axis and hat events are
	// considered pressed while the control is away from the centre position
	Pressed bool

	// the event is an automatic repeat of a keyboard key that is being held
	// down
	Repeat bool
}

func (ev Event) String() string {
	if ev.Pressed {
		return fmt.Sprintf("%s down", ev.Input)
	}
	return fmt.Sprintf("%s up", ev.Input)
}
