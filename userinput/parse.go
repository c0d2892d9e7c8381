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
	"strconv"
	"strings"

	"github.com/jetsetilly/shortcuts/curated"
)

// ParseError is the curated error pattern returned by Parse().
const ParseError = "userinput: cannot parse (%s): %s"

// Parse the text representation of an input, as returned by Input.String().
// Keyboard inputs are not case sensitive and alternative names for keys and
// modifiers are accepted.
func Parse(s string) (Input, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Input{}, curated.Errorf(ParseError, s, "empty string")
	}

	if len(s) > 3 && strings.EqualFold(s[:3], "joy") {
		return parseJoystick(s)
	}

	return parseKeyboard(s)
}

func parseKeyboard(s string) (Input, error) {
	parts := strings.Split(s, "+")

	// the plus key itself. for example "Ctrl++"
	if len(parts) > 1 && parts[len(parts)-1] == "" && parts[len(parts)-2] == "" {
		parts = append(parts[:len(parts)-2], "+")
	}

	var mod Modifier
	for _, p := range parts[:len(parts)-1] {
		m, ok := parseModifier(strings.TrimSpace(p))
		if !ok {
			return Input{}, curated.Errorf(ParseError, s, "unknown modifier")
		}
		mod |= m
	}

	key, ok := parseKey(strings.TrimSpace(parts[len(parts)-1]))
	if !ok {
		return Input{}, curated.Errorf(ParseError, s, "unknown key")
	}

	return KeyInput(key, mod), nil
}

func parseJoystick(s string) (Input, error) {
	sp := strings.SplitN(s[3:], "-", 2)
	if len(sp) != 2 {
		return Input{}, curated.Errorf(ParseError, s, "missing joystick control")
	}

	joy, err := strconv.Atoi(sp[0])
	if err != nil || joy < 1 {
		return Input{}, curated.Errorf(ParseError, s, "invalid joystick number")
	}
	joy--

	control := sp[1]
	lower := strings.ToLower(control)

	switch {
	case strings.HasPrefix(lower, "button"):
		n, err := strconv.Atoi(control[len("button"):])
		if err != nil || n < 0 {
			return Input{}, curated.Errorf(ParseError, s, "invalid button number")
		}
		return ButtonInput(joy, n), nil

	case strings.HasPrefix(lower, "axis"):
		v := control[len("axis"):]
		if len(v) < 2 {
			return Input{}, curated.Errorf(ParseError, s, "invalid axis")
		}
		var dir int
		switch v[len(v)-1] {
		case '+':
			dir = AxisPlus
		case '-':
			dir = AxisMinus
		default:
			return Input{}, curated.Errorf(ParseError, s, "invalid axis direction")
		}
		n, err := strconv.Atoi(v[:len(v)-1])
		if err != nil || n < 0 {
			return Input{}, curated.Errorf(ParseError, s, "invalid axis number")
		}
		return AxisInput(joy, n, dir), nil

	case strings.HasPrefix(lower, "hat"):
		v := lower[len("hat"):]
		for dir, name := range hatNames {
			if strings.HasSuffix(v, strings.ToLower(name)) {
				n, err := strconv.Atoi(v[:len(v)-len(name)])
				if err != nil || n < 0 {
					return Input{}, curated.Errorf(ParseError, s, "invalid hat number")
				}
				return HatInput(joy, n, dir), nil
			}
		}
		return Input{}, curated.Errorf(ParseError, s, "invalid hat direction")
	}

	return Input{}, curated.Errorf(ParseError, s, "unknown joystick control")
}
