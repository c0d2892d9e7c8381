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

package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/jetsetilly/shortcuts/commands"
	"github.com/jetsetilly/shortcuts/gui"
	"github.com/jetsetilly/shortcuts/logger"
	"github.com/jetsetilly/shortcuts/notifications"
	"github.com/jetsetilly/shortcuts/session"
	"github.com/jetsetilly/shortcuts/slots"
)

// emulator stands in for a real emulation. commands invoked by the session
// change the state of the emulator and the emulator informs the session of
// any changes that affect the menus.
type emulator struct {
	host gui.Host
	sess *session.Session

	// cancel the host's Run() loop
	quit context.CancelFunc

	// directory for save-state files
	dir string

	// game that is opened by the open command
	game string

	// current game. empty if no game is loaded
	loaded string
	paused bool

	files  *slots.StateFiles
	recent []string
}

func newEmulator(host gui.Host, dir string, game string, quit context.CancelFunc) *emulator {
	return &emulator{
		host: host,
		dir:  dir,
		game: game,
		quit: quit,
	}
}

// the session is created after the emulator because the emulator is the
// session's command sink
func (em *emulator) attach(sess *session.Session) {
	em.sess = sess
}

func (em *emulator) notify(notice notifications.Notice) {
	if err := em.sess.Notify(notice); err != nil {
		logger.Log(logger.Allow, "emulator", err.Error())
	}
}

// Invoke implements the dispatch.Sink interface.
func (em *emulator) Invoke(id commands.ID) {
	cmd := em.sess.Registry().Get(id)

	// the dispatcher does not check whether a command is enabled
	if !em.sess.Enabled(id) {
		logger.Logf(logger.Allow, "emulator", "%s is disabled", cmd.Name)
		return
	}

	switch cmd.Role {
	case commands.RoleSaveSlot:
		em.save(cmd.Slot)
		return
	case commands.RoleLoadSlot:
		em.load(cmd.Slot)
		return
	}

	switch cmd.Key {
	case commands.KeyOpen:
		em.open(em.game)

	case commands.KeyClose:
		em.close()

	case commands.KeyReset:
		em.paused = false
		em.host.SetStatus(fmt.Sprintf("%s reset", em.loaded))

	case commands.KeyPause:
		em.paused = !em.paused
		if em.paused {
			em.host.SetStatus(fmt.Sprintf("%s paused", em.loaded))
		} else {
			em.host.SetStatus(fmt.Sprintf("%s running", em.loaded))
		}

	case commands.KeyExit:
		em.quit()

	case commands.KeySaveStateOldest:
		if slot, ok := em.sess.OldestSlot(); ok {
			em.save(slot)
		}

	case commands.KeyLoadStateNewest:
		if slot, ok := em.sess.NewestSlot(); ok {
			em.load(slot)
		}

	default:
		for i, name := range em.recent {
			if cmd.Key == commands.RecentKey(i) {
				em.open(name)
				return
			}
		}
		em.host.SetStatus(cmd.Name)
	}
}

func (em *emulator) open(game string) {
	if em.loaded != "" {
		em.close()
	}

	em.loaded = game
	em.paused = false

	em.files = slots.NewStateFiles(em.dir, game)
	em.sess.SetSlotSource(em.files)

	// most recent first without duplicates
	em.recent = slices.DeleteFunc(em.recent, func(s string) bool { return s == game })
	em.recent = slices.Insert(em.recent, 0, game)
	if len(em.recent) > commands.NumRecentFiles {
		em.recent = em.recent[:commands.NumRecentFiles]
	}
	em.sess.SetRecentFiles(em.recent)

	em.notify(notifications.NotifyGameLoaded)
	em.host.SetStatus(fmt.Sprintf("%s running", game))
}

func (em *emulator) close() {
	if em.loaded == "" {
		return
	}
	em.host.SetStatus(fmt.Sprintf("%s closed", em.loaded))
	em.loaded = ""
	em.notify(notifications.NotifyGameUnloaded)
}

func (em *emulator) save(slot int) {
	if em.files == nil {
		return
	}

	data := fmt.Sprintf("%s\n%s\n", em.loaded, time.Now().Format(time.RFC3339Nano))
	if err := os.WriteFile(em.files.Path(slot), []byte(data), 0o600); err != nil {
		logger.Logf(logger.Allow, "emulator", "save state %d: %v", slot+1, err)
		return
	}

	em.sess.UpdateSlot(slot)
	em.host.SetStatus(fmt.Sprintf("saved state %d", slot+1))
}

func (em *emulator) load(slot int) {
	if em.files == nil {
		return
	}

	data, err := os.ReadFile(em.files.Path(slot))
	if err != nil {
		logger.Logf(logger.Allow, "emulator", "load state %d: %v", slot+1, err)
		return
	}

	game, _, _ := strings.Cut(string(data), "\n")
	if game != em.loaded {
		logger.Logf(logger.Allow, "emulator", "state %d is for %s", slot+1, game)
		return
	}

	em.paused = false
	em.host.SetStatus(fmt.Sprintf("loaded state %d", slot+1))
}
