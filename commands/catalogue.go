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
	"fmt"
)

// DefaultSlots is the number of save-state slots in the default catalogue.
const DefaultSlots = 10

// NumRecentFiles is the number of recent-file entries in the default catalogue.
const NumRecentFiles = 10

// Keys of commands in the default catalogue that are referred to by other
// packages.
const (
	KeyOpen            = "open"
	KeyClose           = "close"
	KeyReset           = "reset"
	KeyPause           = "pause"
	KeyExit            = "exit"
	KeySaveStateOldest = "save-state-oldest"
	KeyLoadStateNewest = "load-state-newest"
)

// SaveStateKey returns the key for the command that saves to the slot. Slots
// are counted from zero.
func SaveStateKey(slot int) string {
	return fmt.Sprintf("save-state-%d", slot+1)
}

// LoadStateKey returns the key for the command that loads from the slot. Slots
// are counted from zero.
func LoadStateKey(slot int) string {
	return fmt.Sprintf("load-state-%d", slot+1)
}

// RecentKey returns the key for the recent-file entry. Entries are counted
// from zero.
func RecentKey(n int) string {
	return fmt.Sprintf("recent-%d", n+1)
}

// DefaultCatalogue returns the list of commands for an emulator front end
// with the specified number of save-state slots.
func DefaultCatalogue(slots int) []Command {
	cmds := []Command{
		{Key: KeyOpen, Name: "Open...", Anchor: "menu.file.open"},
		{Key: KeyClose, Name: "Close", Requires: Emulating, Anchor: "menu.file.close"},
		{Key: KeyReset, Name: "Reset", Requires: Emulating, Anchor: "menu.emulation.reset"},
		{Key: KeyPause, Name: "Pause", Requires: Emulating, Anchor: "menu.emulation.pause"},
		{Key: "rewind", Name: "Rewind", Requires: Emulating | Rewind, Anchor: "menu.emulation.rewind"},
		{Key: "fullscreen", Name: "Full screen", Anchor: "menu.view.fullscreen"},
		{Key: "screenshot", Name: "Screen capture", Requires: Emulating, Anchor: "menu.file.screenshot"},
		{Key: "sound-record-start", Name: "Start sound recording", Requires: Emulating | NoSoundRecording, Anchor: "menu.file.record.sound.start"},
		{Key: "sound-record-stop", Name: "Stop sound recording", Requires: SoundRecording, Anchor: "menu.file.record.sound.stop"},
		{Key: "video-record-start", Name: "Start video recording", Requires: Emulating | NoVideoRecording, Anchor: "menu.file.record.video.start"},
		{Key: "video-record-stop", Name: "Stop video recording", Requires: VideoRecording, Anchor: "menu.file.record.video.stop"},
		{Key: "game-record-start", Name: "Start game recording", Requires: Emulating | NoGameRecording, Anchor: "menu.file.record.game.start"},
		{Key: "game-record-stop", Name: "Stop game recording", Requires: GameRecording, Anchor: "menu.file.record.game.stop"},
		{Key: "game-playback-start", Name: "Start game playback", Requires: Emulating | NoGamePlayback, Anchor: "menu.file.playback.start"},
		{Key: "game-playback-stop", Name: "Stop game playback", Requires: GamePlayback, Anchor: "menu.file.playback.stop"},
		{Key: "link-start", Name: "Start network link", Requires: LinkAvailable, Anchor: "menu.options.link.start"},
		{Key: "link-stop", Name: "Stop network link", Requires: LinkAvailable, Anchor: "menu.options.link.stop"},
		{Key: "debugger", Name: "Attach debugger", Requires: Emulating, Anchor: "menu.tools.debugger"},
		{Key: KeySaveStateOldest, Name: "Save to oldest slot", Requires: Emulating, Anchor: "menu.file.save.oldest"},
		{Key: KeyLoadStateNewest, Name: "Load most recent slot", Requires: Emulating | SaveStatePresent, Anchor: "menu.file.load.newest"},
	}

	for i := 0; i < NumRecentFiles; i++ {
		cmds = append(cmds, Command{
			Key:      RecentKey(i),
			Name:     fmt.Sprintf("Recent file %d", i+1),
			Requires: RecentFiles,
			Anchor:   Anchor(fmt.Sprintf("menu.file.recent.%d", i+1)),
		})
	}

	for i := 0; i < slots; i++ {
		cmds = append(cmds, Command{
			Key:      SaveStateKey(i),
			Name:     fmt.Sprintf("Save state %d", i+1),
			Requires: Emulating,
			Anchor:   Anchor(fmt.Sprintf("menu.file.save.%d", i+1)),
			Slot:     i,
			Role:     RoleSaveSlot,
		})
		cmds = append(cmds, Command{
			Key:      LoadStateKey(i),
			Name:     fmt.Sprintf("Load state %d", i+1),
			Requires: Emulating | SaveStatePresent,
			Anchor:   Anchor(fmt.Sprintf("menu.file.load.%d", i+1)),
			Slot:     i,
			Role:     RoleLoadSlot,
		})
	}

	cmds = append(cmds, Command{Key: KeyExit, Name: "Exit", Anchor: "menu.file.exit"})

	return cmds
}

// DefaultRegistry creates a registry from DefaultCatalogue(). The default
// catalogue has unique keys so an error is not possible.
func DefaultRegistry(slots int) *Registry {
	reg, err := NewRegistry(DefaultCatalogue(slots))
	if err != nil {
		panic(err)
	}
	return reg
}
