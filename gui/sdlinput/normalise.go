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

package sdlinput

import (
	"github.com/jetsetilly/shortcuts/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// DefaultDeadzone is the amount an axis must move from the centre before it
// is considered pressed.
const DefaultDeadzone = 10000

type axisKey struct {
	joystick int
	axis     uint8
}

type hatKey struct {
	joystick int
	hat      uint8
}

// Normaliser converts SDL events to userinput events.
type Normaliser struct {
	// SDL instance IDs to joystick numbers
	instances map[sdl.JoystickID]int

	// current direction of each axis. zero is centred
	axes map[axisKey]int

	// current value of each hat
	hats map[hatKey]uint8

	Deadzone int16
}

// NewNormaliser is the preferred method of initialisation for the Normaliser
// type.
func NewNormaliser() *Normaliser {
	return &Normaliser{
		instances: make(map[sdl.JoystickID]int),
		axes:      make(map[axisKey]int),
		hats:      make(map[hatKey]uint8),
		Deadzone:  DefaultDeadzone,
	}
}

// AddJoystick associates an SDL joystick instance with a joystick number.
// Events from unknown instances are ignored.
func (n *Normaliser) AddJoystick(id sdl.JoystickID, joystick int) {
	n.instances[id] = joystick
}

// RemoveJoystick forgets the SDL joystick instance and any axis or hat
// positions that were remembered for it.
func (n *Normaliser) RemoveJoystick(id sdl.JoystickID) {
	joy, ok := n.instances[id]
	if !ok {
		return
	}
	delete(n.instances, id)

	for k := range n.axes {
		if k.joystick == joy {
			delete(n.axes, k)
		}
	}
	for k := range n.hats {
		if k.joystick == joy {
			delete(n.hats, k)
		}
	}
}

// Normalise an SDL event. Returns the empty slice if the event is not an
// input event or if it does not change the state of any input.
func (n *Normaliser) Normalise(ev sdl.Event) []userinput.Event {
	switch ev := ev.(type) {
	case *sdl.KeyboardEvent:
		key, ok := keycode(ev.Keysym.Sym)
		if !ok {
			return nil
		}
		return []userinput.Event{{
			Input:   userinput.KeyInput(key, modifiers(ev.Keysym.Mod)),
			Pressed: ev.Type == sdl.KEYDOWN,
			Repeat:  ev.Repeat != 0,
		}}

	case *sdl.JoyButtonEvent:
		joy, ok := n.instances[ev.Which]
		if !ok {
			return nil
		}
		return []userinput.Event{{
			Input:   userinput.ButtonInput(joy, int(ev.Button)),
			Pressed: ev.State == sdl.PRESSED,
		}}

	case *sdl.JoyAxisEvent:
		joy, ok := n.instances[ev.Which]
		if !ok {
			return nil
		}
		return n.axis(joy, ev.Axis, ev.Value)

	case *sdl.JoyHatEvent:
		joy, ok := n.instances[ev.Which]
		if !ok {
			return nil
		}
		return n.hat(joy, ev.Hat, ev.Value)
	}

	return nil
}

func (n *Normaliser) axis(joy int, axis uint8, value int16) []userinput.Event {
	var dir int
	switch {
	case value > n.Deadzone:
		dir = 1
	case value < -n.Deadzone:
		dir = -1
	}

	k := axisKey{joystick: joy, axis: axis}
	prev := n.axes[k]
	if prev == dir {
		return nil
	}
	n.axes[k] = dir

	var evs []userinput.Event
	if prev != 0 {
		evs = append(evs, userinput.Event{Input: axisInput(joy, axis, prev)})
	}
	if dir != 0 {
		evs = append(evs, userinput.Event{Input: axisInput(joy, axis, dir), Pressed: true})
	}
	return evs
}

func axisInput(joy int, axis uint8, dir int) userinput.Input {
	if dir < 0 {
		return userinput.AxisInput(joy, int(axis), userinput.AxisMinus)
	}
	return userinput.AxisInput(joy, int(axis), userinput.AxisPlus)
}

// hat bits in the same order as the userinput hat directions
var hatBits = []uint8{sdl.HAT_UP, sdl.HAT_RIGHT, sdl.HAT_DOWN, sdl.HAT_LEFT}

func (n *Normaliser) hat(joy int, hat uint8, value uint8) []userinput.Event {
	k := hatKey{joystick: joy, hat: hat}
	prev := n.hats[k]
	n.hats[k] = value

	// releases before presses
	var evs []userinput.Event
	for dir, bit := range hatBits {
		if prev&bit != 0 && value&bit == 0 {
			evs = append(evs, userinput.Event{Input: userinput.HatInput(joy, int(hat), dir)})
		}
	}
	for dir, bit := range hatBits {
		if prev&bit == 0 && value&bit != 0 {
			evs = append(evs, userinput.Event{Input: userinput.HatInput(joy, int(hat), dir), Pressed: true})
		}
	}
	return evs
}

func modifiers(mod uint16) userinput.Modifier {
	var m userinput.Modifier
	if mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
		m |= userinput.ModCtrl
	}
	if mod&sdl.KMOD_LALT == sdl.KMOD_LALT || mod&sdl.KMOD_RALT == sdl.KMOD_RALT {
		m |= userinput.ModAlt
	}
	if mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
		m |= userinput.ModShift
	}
	if mod&sdl.KMOD_LGUI == sdl.KMOD_LGUI || mod&sdl.KMOD_RGUI == sdl.KMOD_RGUI {
		m |= userinput.ModMeta
	}
	return m
}

var specialKeys = map[sdl.Keycode]userinput.Key{
	sdl.Keycode(sdl.K_ESCAPE):      userinput.KeyEscape,
	sdl.Keycode(sdl.K_RETURN):      userinput.KeyEnter,
	sdl.Keycode(sdl.K_KP_ENTER):    userinput.KeyEnter,
	sdl.Keycode(sdl.K_TAB):         userinput.KeyTab,
	sdl.Keycode(sdl.K_BACKSPACE):   userinput.KeyBackspace,
	sdl.Keycode(sdl.K_DELETE):      userinput.KeyDelete,
	sdl.Keycode(sdl.K_INSERT):      userinput.KeyInsert,
	sdl.Keycode(sdl.K_HOME):        userinput.KeyHome,
	sdl.Keycode(sdl.K_END):         userinput.KeyEnd,
	sdl.Keycode(sdl.K_PAGEUP):      userinput.KeyPageUp,
	sdl.Keycode(sdl.K_PAGEDOWN):    userinput.KeyPageDown,
	sdl.Keycode(sdl.K_UP):          userinput.KeyUp,
	sdl.Keycode(sdl.K_DOWN):        userinput.KeyDown,
	sdl.Keycode(sdl.K_LEFT):        userinput.KeyLeft,
	sdl.Keycode(sdl.K_RIGHT):       userinput.KeyRight,
	sdl.Keycode(sdl.K_PAUSE):       userinput.KeyPause,
	sdl.Keycode(sdl.K_PRINTSCREEN): userinput.KeyPrint,
	sdl.Keycode(sdl.K_SPACE):       userinput.KeySpace,
	sdl.Keycode(sdl.K_F1):          userinput.KeyF1,
	sdl.Keycode(sdl.K_F2):          userinput.KeyF2,
	sdl.Keycode(sdl.K_F3):          userinput.KeyF3,
	sdl.Keycode(sdl.K_F4):          userinput.KeyF4,
	sdl.Keycode(sdl.K_F5):          userinput.KeyF5,
	sdl.Keycode(sdl.K_F6):          userinput.KeyF6,
	sdl.Keycode(sdl.K_F7):          userinput.KeyF7,
	sdl.Keycode(sdl.K_F8):          userinput.KeyF8,
	sdl.Keycode(sdl.K_F9):          userinput.KeyF9,
	sdl.Keycode(sdl.K_F10):         userinput.KeyF10,
	sdl.Keycode(sdl.K_F11):         userinput.KeyF11,
	sdl.Keycode(sdl.K_F12):         userinput.KeyF12,
	sdl.Keycode(sdl.K_F13):         userinput.KeyF13,
	sdl.Keycode(sdl.K_F14):         userinput.KeyF14,
	sdl.Keycode(sdl.K_F15):         userinput.KeyF15,
	sdl.Keycode(sdl.K_F16):         userinput.KeyF16,
	sdl.Keycode(sdl.K_F17):         userinput.KeyF17,
	sdl.Keycode(sdl.K_F18):         userinput.KeyF18,
	sdl.Keycode(sdl.K_F19):         userinput.KeyF19,
	sdl.Keycode(sdl.K_F20):         userinput.KeyF20,
	sdl.Keycode(sdl.K_F21):         userinput.KeyF21,
	sdl.Keycode(sdl.K_F22):         userinput.KeyF22,
	sdl.Keycode(sdl.K_F23):         userinput.KeyF23,
	sdl.Keycode(sdl.K_F24):         userinput.KeyF24,
}

// keycode converts an SDL keycode to a userinput.Key. SDL keycodes for
// printable characters are the (lower case) character itself. Modifier keys
// on their own are not keys that can be bound.
func keycode(sym sdl.Keycode) (userinput.Key, bool) {
	if k, ok := specialKeys[sym]; ok {
		return k, true
	}
	if sym > 32 && sym < 127 {
		return userinput.KeyFromRune(rune(sym)), true
	}
	return userinput.KeyNone, false
}
