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

package bindings

import (
	"github.com/jetsetilly/shortcuts/commands"
	"github.com/jetsetilly/shortcuts/curated"
	"github.com/jetsetilly/shortcuts/logger"
	"github.com/jetsetilly/shortcuts/userinput"
)

// Curated error patterns for problems with persisted bindings. Entries that
// cause these errors are skipped by Load().
const (
	UnknownCommand = "bindings: unknown command (%s)"
	MalformedInput = "bindings: malformed input for %s: %v"
)

// Entry is a single binding in a form suitable for persisting.
type Entry struct {
	// the command key. see commands.Command
	Command string

	// text representation of the input. see userinput.Parse()
	Input string
}

// Store is implemented by types that can persist bindings.
type Store interface {
	LoadBindings() ([]Entry, error)
	SaveBindings([]Entry) error
}

// Entries returns every binding in the table. Entries are ordered by command
// ID and then by input.
func (tab *Table) Entries(reg *commands.Registry) []Entry {
	var ents []Entry
	for _, id := range tab.Commands() {
		if !reg.Valid(id) {
			continue
		}
		key := reg.Get(id).Key
		for _, in := range tab.inputs[id] {
			ents = append(ents, Entry{Command: key, Input: in.String()})
		}
	}
	return ents
}

// Check an entry against the registry. The returned error is curated.
func Check(ent Entry, reg *commands.Registry) (commands.ID, userinput.Input, error) {
	id, ok := reg.ByKey(ent.Command)
	if !ok {
		return commands.NoCommand, userinput.Input{}, curated.Errorf(UnknownCommand, ent.Command)
	}
	in, err := userinput.Parse(ent.Input)
	if err != nil {
		return commands.NoCommand, userinput.Input{}, curated.Errorf(MalformedInput, ent.Command, err)
	}
	return id, in, nil
}

// Load replaces the contents of the table with the entries. Entries with an
// unknown command key or with an input that cannot be parsed are logged and
// skipped. Entries are applied in order so a later entry for an input takes
// the input from an earlier one.
//
// Returns the number of entries that were skipped.
func (tab *Table) Load(ents []Entry, reg *commands.Registry) int {
	tab.Clear()

	var skipped int
	for _, ent := range ents {
		id, in, err := Check(ent, reg)
		if err != nil {
			logger.Log(logger.Allow, "bindings", err.Error())
			skipped++
			continue
		}
		tab.Bind(id, in)
	}

	return skipped
}
