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
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/jetsetilly/shortcuts/curated"
	"github.com/jetsetilly/shortcuts/logger"
)

// Watcher reports changes to a bindings file.
//
// The directory containing the file is watched rather than the file itself.
// Many editors save a file by replacing it, which would otherwise end the
// watch.
type Watcher struct {
	watcher *fsnotify.Watcher
	name    string

	changed chan struct{}
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewWatcher starts watching the file. The directory containing the file must
// exist but the file does not need to.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, curated.Errorf(StoreError, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, curated.Errorf(StoreError, err)
	}

	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, curated.Errorf(StoreError, err)
	}

	w := &Watcher{
		watcher: fw,
		name:    abs,
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}

	w.wg.Add(1)
	go w.loop()

	return w, nil
}

// Changed returns a channel that receives a value after the file has been
// written, created, renamed or removed. Several changes in quick succession
// might result in only one value.
func (w *Watcher) Changed() <-chan struct{} {
	return w.changed
}

// Close stops the watcher. The Changed() channel is not closed.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	const interesting = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.name {
				continue
			}
			if ev.Op&interesting == 0 {
				continue
			}

			// coalesce changes that haven't been received yet
			select {
			case w.changed <- struct{}{}:
			default:
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Log(logger.Allow, "bindfile", err.Error())
		}
	}
}
