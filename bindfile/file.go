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

package bindfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jetsetilly/shortcuts/bindings"
	"github.com/jetsetilly/shortcuts/curated"
	"github.com/jetsetilly/shortcuts/logger"
	"go.yaml.in/yaml/v3"
)

// StoreError is the curated error pattern for all errors returned by File.
const StoreError = "bindfile: %v"

// version of the file format written by SaveBindings()
const version = 1

// maximum size of a bindings file. anything larger is not a bindings file
const maxFileSize = 1 << 20

type document struct {
	Version  int       `yaml:"version"`
	Bindings []binding `yaml:"bindings"`
}

type binding struct {
	Command string   `yaml:"command"`
	Inputs  []string `yaml:"inputs,flow"`
}

// File is a bindings store backed by a YAML file.
type File struct {
	path string
}

// NewFile is the preferred method of initialisation for the File type. The
// file does not need to exist.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the filename of the store.
func (f *File) Path() string {
	return f.path
}

// LoadBindings implements the bindings.Store interface. If the file does not
// exist the returned error wraps fs.ErrNotExist.
func (f *File) LoadBindings() ([]bindings.Entry, error) {
	fi, err := os.Stat(f.path)
	if err != nil {
		return nil, curated.Errorf(StoreError, err)
	}
	if fi.Size() > maxFileSize {
		return nil, curated.Errorf(StoreError, fmt.Errorf("%s: file too large (%d bytes)", f.path, fi.Size()))
	}

	raw, err := os.ReadFile(f.path)
	if err != nil {
		return nil, curated.Errorf(StoreError, err)
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, curated.Errorf(StoreError, fmt.Errorf("%s: %w", f.path, err))
	}

	if doc.Version > version {
		logger.Logf(logger.Allow, "bindfile", "%s has version %d. expected version %d or lower", f.path, doc.Version, version)
	}

	var ents []bindings.Entry
	for _, b := range doc.Bindings {
		for _, in := range b.Inputs {
			ents = append(ents, bindings.Entry{Command: b.Command, Input: in})
		}
	}

	return ents, nil
}

// SaveBindings implements the bindings.Store interface. Consecutive entries
// for the same command are grouped together.
func (f *File) SaveBindings(ents []bindings.Entry) error {
	doc := document{Version: version}
	for _, e := range ents {
		n := len(doc.Bindings)
		if n > 0 && doc.Bindings[n-1].Command == e.Command {
			doc.Bindings[n-1].Inputs = append(doc.Bindings[n-1].Inputs, e.Input)
			continue
		}
		doc.Bindings = append(doc.Bindings, binding{Command: e.Command, Inputs: []string{e.Input}})
	}

	raw, err := yaml.Marshal(doc)
	if err != nil {
		return curated.Errorf(StoreError, fmt.Errorf("marshal: %w", err))
	}

	if err := atomicWrite(f.path, raw); err != nil {
		return curated.Errorf(StoreError, err)
	}

	return nil
}

// atomicWrite writes data to a temporary file and then renames it to path.
// the file is never left partially written
func atomicWrite(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".bindings.tmp.*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if tmp != nil {
			if closeErr := tmp.Close(); closeErr != nil && !errors.Is(closeErr, os.ErrClosed) {
				logger.Logf(logger.Allow, "bindfile", "failed to close %s: %v", tmpPath, closeErr)
			}
		}
		if err != nil {
			if removeErr := os.Remove(tmpPath); removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) {
				logger.Logf(logger.Allow, "bindfile", "failed to remove %s: %v", tmpPath, removeErr)
			}
		}
	}()

	if err = tmp.Chmod(0o600); err != nil {
		return fmt.Errorf("chmod temp: %w", err)
	}
	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	err = tmp.Close()
	tmp = nil
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}

	return nil
}
