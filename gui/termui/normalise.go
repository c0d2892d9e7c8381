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

package termui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/jetsetilly/shortcuts/userinput"
)

var specialKeys = map[tcell.Key]userinput.Key{
	tcell.KeyEscape:     userinput.KeyEscape,
	tcell.KeyEnter:      userinput.KeyEnter,
	tcell.KeyTab:        userinput.KeyTab,
	tcell.KeyBackspace:  userinput.KeyBackspace,
	tcell.KeyBackspace2: userinput.KeyBackspace,
	tcell.KeyDelete:     userinput.KeyDelete,
	tcell.KeyInsert:     userinput.KeyInsert,
	tcell.KeyHome:       userinput.KeyHome,
	tcell.KeyEnd:        userinput.KeyEnd,
	tcell.KeyPgUp:       userinput.KeyPageUp,
	tcell.KeyPgDn:       userinput.KeyPageDown,
	tcell.KeyUp:         userinput.KeyUp,
	tcell.KeyDown:       userinput.KeyDown,
	tcell.KeyLeft:       userinput.KeyLeft,
	tcell.KeyRight:      userinput.KeyRight,
	tcell.KeyPause:      userinput.KeyPause,
	tcell.KeyPrint:      userinput.KeyPrint,
}

// terminals report the character produced by a shifted key. SDL reports the
// unshifted key and the shift modifier. the table folds the terminal form to
// the SDL form so that a binding works in both front ends. a US keyboard
// layout is assumed
var shifted = map[rune]rune{
	'!': '1', '@': '2', '#': '3', '$': '4', '%': '5',
	'^': '6', '&': '7', '*': '8', '(': '9', ')': '0',
	'_': '-', '+': '=', '{': '[', '}': ']', '|': '\\',
	':': ';', '"': '\'', '<': ',', '>': '.', '?': '/',
	'~': '`',
}

func modifiers(mod tcell.ModMask) userinput.Modifier {
	var m userinput.Modifier
	if mod&tcell.ModCtrl == tcell.ModCtrl {
		m |= userinput.ModCtrl
	}
	if mod&tcell.ModAlt == tcell.ModAlt {
		m |= userinput.ModAlt
	}
	if mod&tcell.ModShift == tcell.ModShift {
		m |= userinput.ModShift
	}
	if mod&tcell.ModMeta == tcell.ModMeta {
		m |= userinput.ModMeta
	}
	return m
}

// Normalise converts a tcell key event to a userinput event. Returns false if
// the key cannot be represented.
//
// The control keys that share a code with a named key (Tab is Ctrl+I for
// example) are always reported as the named key.
func Normalise(ev *tcell.EventKey) (userinput.Event, bool) {
	mod := modifiers(ev.Modifiers())

	var key userinput.Key

	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r == ' ':
			key = userinput.KeySpace
		case r > 32 && r < 127:
			if u, ok := shifted[r]; ok {
				r = u
				mod |= userinput.ModShift
			} else if unicode.IsUpper(r) {
				mod |= userinput.ModShift
			}
			key = userinput.KeyFromRune(r)
		default:
			return userinput.Event{}, false
		}

	case k >= tcell.KeyF1 && k <= tcell.KeyF24:
		key = userinput.KeyF1 + userinput.Key(k-tcell.KeyF1)

	default:
		if s, ok := specialKeys[k]; ok {
			key = s
			break
		}

		// tcell may or may not set the control modifier for these keys
		// depending on the terminal
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			key = userinput.KeyFromRune(rune('A' + k - tcell.KeyCtrlA))
			mod |= userinput.ModCtrl
			break
		}

		return userinput.Event{}, false
	}

	return userinput.Event{
		Input:   userinput.KeyInput(key, mod),
		Pressed: true,
	}, true
}
