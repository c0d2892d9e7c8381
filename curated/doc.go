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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is kept with the error
// and is used to differentiate curated errors. Packages should declare their
// patterns as constants so that callers can test for them:
//
//	const UnknownCommand = "bindings: unknown command (%s)"
//
//	err := curated.Errorf(UnknownCommand, key)
//	if curated.Is(err, UnknownCommand) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. A chain is formed by passing a curated error as one of the
// placeholder values of another curated error.
//
// The Error() function normalises the chain. Adjacent duplicate parts of the
// message are removed, which means that the question of whether to wrap an
// error a second time with the same prefix does not need much thought.
//
// Curated errors also implement Unwrap() so that the standard errors.Is() and
// errors.As() functions can see any error values passed as placeholders.
package curated
