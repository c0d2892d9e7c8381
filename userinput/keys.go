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
	"fmt"
	"strings"
	"unicode"
)

// Key is a keyboard key. Printable keys are represented by the upper case
// version of their rune. Special keys are given values beyond the range of
// valid runes.
type Key int32

// KeyNone is not a valid key.
const KeyNone Key = 0

// KeySpace is the space bar. It is printable but is given a name for display.
const KeySpace Key = ' '

// special keys start beyond the last valid unicode code point
const keySpecial Key = unicode.MaxRune + 1

// List of special keys.
const (
	KeyEscape Key = keySpecial + iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPause
	KeyPrint
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
)

var keyNames = map[Key]string{
	KeySpace:     "Space",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyPause:     "Pause",
	KeyPrint:     "Print",
}

// lower case names to key. includes some alternative names
var keyLookup map[string]Key

func init() {
	for k := KeyF1; k <= KeyF24; k++ {
		keyNames[k] = fmt.Sprintf("F%d", k-KeyF1+1)
	}

	keyLookup = make(map[string]Key, len(keyNames)+8)
	for k, n := range keyNames {
		keyLookup[strings.ToLower(n)] = k
	}
	keyLookup["esc"] = KeyEscape
	keyLookup["return"] = KeyEnter
	keyLookup["del"] = KeyDelete
	keyLookup["ins"] = KeyInsert
	keyLookup["pgup"] = KeyPageUp
	keyLookup["pgdn"] = KeyPageDown
	keyLookup["back"] = KeyBackspace
}

// KeyFromRune returns the Key for a printable rune. Letters are folded to
// upper case so that 'a' and 'A' are the same key. The shift modifier is
// used to distinguish them if required.
func KeyFromRune(r rune) Key {
	return Key(unicode.ToUpper(r))
}

// IsSpecial returns true if the key is not a printable key.
func (k Key) IsSpecial() bool {
	return k >= keySpecial
}

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	if k <= KeyNone || k.IsSpecial() {
		return fmt.Sprintf("Key%d", k)
	}
	return string(rune(k))
}

// parseKey returns the Key named by s. Names are not case sensitive.
func parseKey(s string) (Key, bool) {
	if k, ok := keyLookup[strings.ToLower(s)]; ok {
		return k, true
	}
	r := []rune(s)
	if len(r) == 1 && unicode.IsPrint(r[0]) {
		return KeyFromRune(r[0]), true
	}
	return KeyNone, false
}
