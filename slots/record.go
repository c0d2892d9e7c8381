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

package slots

import (
	"fmt"
	"time"
)

// Record is the cached state of a single slot.
type Record struct {
	Index int

	// timestamp is meaningless if Valid is false
	Timestamp time.Time

	// whether there is a save-state in the slot
	Valid bool
}

func (r Record) String() string {
	if !r.Valid {
		return fmt.Sprintf("slot %d: empty", r.Index+1)
	}
	return fmt.Sprintf("slot %d: %s", r.Index+1, r.Timestamp.Format(time.DateTime))
}

// Source is the truth about the contents of save-state slots.
//
// An error that wraps fs.ErrNotExist means that the slot is empty. Any other
// error is logged and the slot is treated as empty.
type Source interface {
	Timestamp(index int) (time.Time, error)
}
