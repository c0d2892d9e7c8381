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

package commands

import (
	"strings"
)

// Capability is a bitmask of facts about the running application that decide
// whether a command is available.
type Capability uint32

// List of capabilities. Some capabilities come in pairs (eg. SoundRecording
// and NoSoundRecording) so that a command can require either state.
const (
	Emulating Capability = 1 << iota
	GameBoy
	GameBoyAdvance
	SaveStatePresent
	Rewind
	SoundRecording
	NoSoundRecording
	VideoRecording
	NoVideoRecording
	GameRecording
	NoGameRecording
	GamePlayback
	NoGamePlayback
	LinkAvailable
	RecentFiles
)

// Always is the requirement mask for commands that are always available.
const Always Capability = 0

var capabilityNames = []struct {
	cap  Capability
	name string
}{
	{Emulating, "Emulating"},
	{GameBoy, "GameBoy"},
	{GameBoyAdvance, "GameBoyAdvance"},
	{SaveStatePresent, "SaveStatePresent"},
	{Rewind, "Rewind"},
	{SoundRecording, "SoundRecording"},
	{NoSoundRecording, "NoSoundRecording"},
	{VideoRecording, "VideoRecording"},
	{NoVideoRecording, "NoVideoRecording"},
	{GameRecording, "GameRecording"},
	{NoGameRecording, "NoGameRecording"},
	{GamePlayback, "GamePlayback"},
	{NoGamePlayback, "NoGamePlayback"},
	{LinkAvailable, "LinkAvailable"},
	{RecentFiles, "RecentFiles"},
}

func (c Capability) String() string {
	if c == Always {
		return "Always"
	}
	s := make([]string, 0, len(capabilityNames))
	for _, n := range capabilityNames {
		if c&n.cap == n.cap {
			s = append(s, n.name)
		}
	}
	return strings.Join(s, "|")
}

// Capabilities is the current state of every capability. The zero value has
// no capabilities set.
//
// Capabilities are changed by subsystems outside of this package. Nothing in
// the dispatch or menus packages changes them.
type Capabilities struct {
	mask Capability
}

// Set or clear the capability flag. More than one bit can be specified. Returns
// true if the mask has changed.
func (cp *Capabilities) Set(flag Capability, enabled bool) bool {
	prev := cp.mask
	if enabled {
		cp.mask |= flag
	} else {
		cp.mask &^= flag
	}
	return prev != cp.mask
}

// Has returns true if all the bits in flag are set.
func (cp *Capabilities) Has(flag Capability) bool {
	return cp.mask&flag == flag
}

// Mask returns the current capability mask.
func (cp *Capabilities) Mask() Capability {
	return cp.mask
}

// Allows returns true if the command's requirements are all present.
func (cp *Capabilities) Allows(cmd Command) bool {
	return cp.Has(cmd.Requires)
}

// EnabledCommands returns the IDs of all commands in the registry that are
// allowed by the current capabilities, in ID order.
func (cp *Capabilities) EnabledCommands(reg *Registry) []ID {
	ids := make([]ID, 0, reg.Len())
	for _, c := range reg.commands {
		if cp.Allows(c) {
			ids = append(ids, c.ID)
		}
	}
	return ids
}
