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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jetsetilly/shortcuts/curated"
	"github.com/jetsetilly/shortcuts/logger"
)

// WarningBoilerPlate is written as the first line of every file created by
// the prefs package, and by other packages that use the key/value format.
const WarningBoilerPlate = "*** do not edit this file while the application is running ***"

// KeySep separates the key from the value on each line of a file.
const KeySep = " :: "

// DiskError is the curated error pattern for problems accessing the prefs
// file.
const DiskError = "prefs: disk: %v"

// Disk is used to save and load preferences to a file. Only values that
// have been added with Add() are affected. Other entries in the file are
// preserved.
type Disk struct {
	path    string
	entries map[string]Pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file does not need to exist.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(DiskError, "no filename")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]Pref),
	}, nil
}

// Path returns the filename of the prefs file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add a preference value to the disk under the key. Keys must be unique and
// must not contain the key separator.
func (dsk *Disk) Add(key string, p Pref) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.Contains(key, strings.TrimSpace(KeySep)) {
		return curated.Errorf(DiskError, fmt.Sprintf("invalid key (%s)", key))
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DiskError, fmt.Sprintf("key already added (%s)", key))
	}
	dsk.entries[key] = p
	return nil
}

// read the file into a map of key/value strings. a missing file results in an
// empty map
func (dsk *Disk) read() (map[string]string, error) {
	vals := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return vals, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 || line == WarningBoilerPlate {
			continue
		}
		spt := strings.SplitN(line, KeySep, 2)
		if len(spt) != 2 {
			logger.Logf(logger.Allow, "prefs", "ignoring malformed line in %s: %s", filepath.Base(dsk.path), line)
			continue
		}
		vals[strings.TrimSpace(spt[0])] = spt[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return vals, nil
}

// Save all preference values to disk.
func (dsk *Disk) Save() error {
	vals, err := dsk.read()
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	for k, p := range dsk.entries {
		vals[k] = p.String()
	}

	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s\n", WarningBoilerPlate))
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, KeySep, vals[k]))
	}

	if dir := filepath.Dir(dsk.path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return curated.Errorf(DiskError, fmt.Errorf("saving %s: %w", dsk.path, err))
	}

	return nil
}

// Load preference values from disk. Values in the current command line group
// (see PushCommandLineStack()) take priority over values in the file.
//
// If saveOnFail is true and the file cannot be read then the current values
// are saved to create a new file.
func (dsk *Disk) Load(saveOnFail bool) error {
	vals, err := dsk.read()
	if err != nil {
		if saveOnFail {
			return dsk.Save()
		}
		return curated.Errorf(DiskError, err)
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, fmt.Errorf("%s: %w", k, err))
			}
			continue
		}
		if v, ok := vals[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, fmt.Errorf("%s: %w", k, err))
			}
		}
	}

	return nil
}

// Reset all preference values added to the disk to their defaults. The file
// is not changed.
func (dsk *Disk) Reset() error {
	for k, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf(DiskError, fmt.Errorf("%s: %w", k, err))
		}
	}
	return nil
}
