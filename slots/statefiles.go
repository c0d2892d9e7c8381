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
	"os"
	"path/filepath"
	"time"
)

// DefaultPattern is the default filename pattern for StateFiles. The first
// verb is the game name and the second is the one-based slot number.
const DefaultPattern = "%s%02d.sgm"

// StateFiles is a Source backed by save-state files in a directory. The
// timestamp of a slot is the modification time of the file.
type StateFiles struct {
	Dir     string
	Game    string
	Pattern string
}

// NewStateFiles is the preferred method of initialisation for the StateFiles
// type.
func NewStateFiles(dir string, game string) *StateFiles {
	return &StateFiles{
		Dir:     dir,
		Game:    game,
		Pattern: DefaultPattern,
	}
}

// Path returns the filename for the slot.
func (sf *StateFiles) Path(index int) string {
	pattern := sf.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}
	return filepath.Join(sf.Dir, fmt.Sprintf(pattern, sf.Game, index+1))
}

// Timestamp implements the Source interface. A missing file results in an
// error that wraps fs.ErrNotExist.
func (sf *StateFiles) Timestamp(index int) (time.Time, error) {
	fi, err := os.Stat(sf.Path(index))
	if err != nil {
		return time.Time{}, err
	}
	if fi.IsDir() {
		return time.Time{}, fmt.Errorf("%s is a directory", fi.Name())
	}
	return fi.ModTime(), nil
}
