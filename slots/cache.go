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
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/jetsetilly/shortcuts/curated"
	"github.com/jetsetilly/shortcuts/logger"
)

// SourceError is the curated error pattern used when a Source fails for a
// reason other than the slot being empty.
const SourceError = "slots: slot %d: %v"

// Cache of slot records. The zero value is not usable; use NewCache().
type Cache struct {
	src     Source
	records []Record
}

// NewCache is the preferred method of initialisation for the Cache type. All
// slots start as empty. Call Rescan() to fill the cache from the Source. The
// Source can be nil, in which case all slots will remain empty until a Source
// is set with SetSource().
func NewCache(n int, src Source) *Cache {
	if n < 0 {
		n = 0
	}
	c := &Cache{
		src:     src,
		records: make([]Record, n),
	}
	for i := range c.records {
		c.records[i].Index = i
	}
	return c
}

// SetSource changes the Source used by the cache. Records are not changed
// until the next call to Rescan() or Update().
func (c *Cache) SetSource(src Source) {
	c.src = src
}

// Len returns the number of slots.
func (c *Cache) Len() int {
	return len(c.records)
}

// Record returns the cached record for the slot. Panics if the index is out
// of range.
func (c *Cache) Record(i int) Record {
	if i < 0 || i >= len(c.records) {
		panic(fmt.Sprintf("slots: index out of range (%d of %d slots)", i, len(c.records)))
	}
	return c.records[i]
}

// query the source for a single slot
func (c *Cache) query(i int) (time.Time, bool) {
	// no source means every slot is empty
	if c.src == nil {
		return time.Time{}, false
	}

	ts, err := c.src.Timestamp(i)
	if err == nil {
		return ts, true
	}
	if !errors.Is(err, fs.ErrNotExist) {
		logger.Log(logger.Allow, "slots", curated.Errorf(SourceError, i+1, err).Error())
	}
	return time.Time{}, false
}

// update a single record. returns true if the record has changed or if force
// is true
func (c *Cache) update(i int, force bool) bool {
	ts, valid := c.query(i)
	r := &c.records[i]

	changed := force || valid != r.Valid || (valid && !ts.Equal(r.Timestamp))

	r.Valid = valid
	if valid {
		r.Timestamp = ts
	} else {
		r.Timestamp = time.Time{}
	}

	return changed
}

// Rescan queries the Source for every slot. A slot is changed if its validity
// has changed or if it is valid and the timestamp differs from the cached
// timestamp. If force is true then every slot is reported as changed.
//
// Returns the indexes of the changed slots in ascending order.
func (c *Cache) Rescan(force bool) []int {
	var changed []int
	for i := range c.records {
		if c.update(i, force) {
			changed = append(changed, i)
		}
	}
	return changed
}

// Update queries the Source for a single slot. Returns true if the slot has
// changed. Panics if the index is out of range.
func (c *Cache) Update(i int) bool {
	if i < 0 || i >= len(c.records) {
		panic(fmt.Sprintf("slots: index out of range (%d of %d slots)", i, len(c.records)))
	}
	return c.update(i, false)
}

// Invalidate marks every slot as empty without consulting the Source. Returns
// the indexes of the slots that were previously valid.
func (c *Cache) Invalidate() []int {
	var changed []int
	for i := range c.records {
		if c.records[i].Valid {
			changed = append(changed, i)
		}
		c.records[i].Valid = false
		c.records[i].Timestamp = time.Time{}
	}
	return changed
}

// AnyValid returns true if at least one slot has a save-state.
func (c *Cache) AnyValid() bool {
	for _, r := range c.records {
		if r.Valid {
			return true
		}
	}
	return false
}

// OldestValidSlot returns the slot that should be written to next. An empty
// slot is always preferred over a used slot so the lowest empty slot is
// returned if there is one. Otherwise the slot with the earliest timestamp
// is returned.
//
// Returns false only if there are no slots at all.
func (c *Cache) OldestValidSlot() (int, bool) {
	if len(c.records) == 0 {
		return -1, false
	}

	oldest := -1
	for i, r := range c.records {
		if !r.Valid {
			return i, true
		}
		if oldest == -1 || r.Timestamp.Before(c.records[oldest].Timestamp) {
			oldest = i
		}
	}

	return oldest, true
}

// NewestValidSlot returns the slot with the latest timestamp. Returns false if
// every slot is empty.
func (c *Cache) NewestValidSlot() (int, bool) {
	newest := -1
	for i, r := range c.records {
		if !r.Valid {
			continue
		}
		if newest == -1 || r.Timestamp.After(c.records[newest].Timestamp) {
			newest = i
		}
	}
	return newest, newest != -1
}
