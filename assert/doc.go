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

// Package assert contains helpers for checking that the single-threaded
// parts of the application are only ever used from one goroutine.
//
// The checks performed by the Thread type are only active when the program is
// built with the "assertions" build tag. Without the tag the checks compile
// to nothing.
package assert
