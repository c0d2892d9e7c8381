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

package session

import (
	"github.com/jetsetilly/shortcuts/commands"
	"github.com/jetsetilly/shortcuts/menus"
	"github.com/jetsetilly/shortcuts/prefs"
	"github.com/jetsetilly/shortcuts/resources"
)

// Preferences for the Session.
type Preferences struct {
	dsk *prefs.Disk

	// log every dispatched event
	Verbose prefs.Bool

	// number of save-state slots. only read when the Session is created
	SlotCount prefs.Int

	// template and placeholder for slot menu items. see menus.SlotTemplate
	SlotTemplate prefs.String
	SlotEmpty    prefs.String

	// show slot timestamps relative to the current time
	Humanize prefs.Bool

	// filename of the bindings file, relative to the resources directory
	BindingsFile prefs.String

	// poll joysticks even when emulation is not running
	JoystickBackground prefs.Bool
}

// Preference keys.
const (
	keyVerbose            = "shortcuts.verbose"
	keySlotCount          = "shortcuts.slots.count"
	keySlotTemplate       = "shortcuts.slots.template"
	keySlotEmpty          = "shortcuts.slots.empty"
	keyHumanize           = "shortcuts.slots.humanize"
	keyBindingsFile       = "shortcuts.bindings.file"
	keyJoystickBackground = "shortcuts.joystick.background"
)

// DefaultBindingsFile is the default value of the BindingsFile preference.
const DefaultBindingsFile = "bindings.yaml"

// preferences filename in the resources directory
const prefsFile = "preferences"

// NewPreferences is the preferred method of initialisation for the
// Preferences type. An empty path means the default preferences file in the
// resources directory. Values are loaded from the file if it exists.
func NewPreferences(path string) (*Preferences, error) {
	if path == "" {
		var err error
		path, err = resources.JoinPath(prefsFile)
		if err != nil {
			return nil, err
		}
	}

	p := &Preferences{}
	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	for _, e := range []struct {
		key string
		p   prefs.Pref
	}{
		{keyVerbose, &p.Verbose},
		{keySlotCount, &p.SlotCount},
		{keySlotTemplate, &p.SlotTemplate},
		{keySlotEmpty, &p.SlotEmpty},
		{keyHumanize, &p.Humanize},
		{keyBindingsFile, &p.BindingsFile},
		{keyJoystickBackground, &p.JoystickBackground},
	} {
		if err := p.dsk.Add(e.key, e.p); err != nil {
			return nil, err
		}
	}

	if err := p.dsk.Load(false); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults sets the default value of every preference. Current values are
// not changed unless they have never been set.
func (p *Preferences) SetDefaults() {
	p.Verbose.SetDefault(false)
	p.SlotCount.SetDefault(commands.DefaultSlots)
	p.SlotCount.SetRange(1, 99)
	p.SlotTemplate.SetDefault(menus.DefaultTemplate)
	p.SlotEmpty.SetDefault(menus.DefaultEmpty)
	p.Humanize.SetDefault(false)
	p.BindingsFile.SetDefault(DefaultBindingsFile)
	p.JoystickBackground.SetDefault(false)
}

// Load preferences from disk. Preferences that are not backed by a file are
// unchanged.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}

// Reset all preferences to their default values.
func (p *Preferences) Reset() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Reset()
}
