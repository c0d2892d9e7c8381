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

//go:build assertions

package assert

import "fmt"

// Enabled is true when the program has been built with the assertions build
// tag.
const Enabled = true

// Check panics if the calling goroutine is not the owning goroutine.
func (th Thread) Check(tag string) {
	if !th.Owned() {
		panic(fmt.Sprintf("%s: called from goroutine %d but owned by goroutine %d", tag, GetGoRoutineID(), th.id))
	}
}
