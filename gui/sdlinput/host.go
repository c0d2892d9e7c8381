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

package sdlinput

import (
	"context"
	"fmt"
	"slices"

	"github.com/jetsetilly/shortcuts/commands"
	"github.com/jetsetilly/shortcuts/dispatch"
	"github.com/jetsetilly/shortcuts/gui"
	"github.com/jetsetilly/shortcuts/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// how long to wait for an event before checking the service channel and the
// context, in milliseconds
const waitTimeout = 50

// Host is a minimal SDL front end. It must be created and run on the main
// thread.
type Host struct {
	window *sdl.Window
	title  string

	norm *Normaliser

	// opened joysticks by joystick number
	joysticks map[int]*sdl.Joystick

	// menu state as pushed by the session
	labels  map[commands.Anchor]string
	enabled map[commands.Anchor]bool

	service chan func()
}

// NewHost initialises SDL and opens a window with the title.
func NewHost(title string) (*Host, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK); err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	w, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, 640, 200, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	logger.Logf(logger.Allow, "sdl", "%d joysticks attached", sdl.NumJoysticks())

	return &Host{
		window:    w,
		title:     title,
		norm:      NewNormaliser(),
		joysticks: make(map[int]*sdl.Joystick),
		labels:    make(map[commands.Anchor]string),
		enabled:   make(map[commands.Anchor]bool),
		service:   make(chan func(), gui.ServiceQueueLen),
	}, nil
}

// Destroy implements the gui.Host interface.
func (h *Host) Destroy() error {
	h.StopPolling()
	err := h.window.Destroy()
	sdl.Quit()
	return err
}

// SetLabel implements the menus.UI interface.
func (h *Host) SetLabel(anchor commands.Anchor, label string) {
	h.labels[anchor] = label
}

// SetEnabled implements the menus.UI interface.
func (h *Host) SetEnabled(anchor commands.Anchor, enabled bool) {
	h.enabled[anchor] = enabled
}

// SetStatus implements the gui.Host interface. The status is shown in the
// window title.
func (h *Host) SetStatus(status string) {
	if status == "" {
		h.window.SetTitle(h.title)
		return
	}
	h.window.SetTitle(fmt.Sprintf("%s - %s", h.title, status))
}

// Service implements the gui.Host interface.
func (h *Host) Service(f func()) {
	h.service <- f
}

// StopPolling implements the session.JoystickPoller interface. All opened
// joysticks are closed.
func (h *Host) StopPolling() {
	for joy, js := range h.joysticks {
		h.norm.RemoveJoystick(js.InstanceID())
		js.Close()
		delete(h.joysticks, joy)
	}
}

// PollJoysticks implements the session.JoystickPoller interface. Joysticks
// that are not attached are ignored.
func (h *Host) PollJoysticks(joysticks []int) {
	for _, joy := range joysticks {
		if joy >= sdl.NumJoysticks() {
			logger.Logf(logger.Allow, "sdl", "joystick %d is not attached", joy+1)
			continue
		}
		if _, ok := h.joysticks[joy]; ok {
			continue
		}
		js := sdl.JoystickOpen(joy)
		if js == nil || !js.Attached() {
			logger.Logf(logger.Allow, "sdl", "cannot open joystick %d: %v", joy+1, sdl.GetError())
			continue
		}
		h.joysticks[joy] = js
		h.norm.AddJoystick(js.InstanceID(), joy)
		logger.Logf(logger.Allow, "sdl", "joystick %d: %s", joy+1, js.Name())
	}
}

// Polling returns the joystick numbers that are currently open.
func (h *Host) Polling() []int {
	joy := make([]int, 0, len(h.joysticks))
	for j := range h.joysticks {
		joy = append(joy, j)
	}
	slices.Sort(joy)
	return joy
}

// Run implements the gui.Host interface.
func (h *Host) Run(ctx context.Context, handler gui.Handler) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case f := <-h.service:
			f()
			continue
		default:
		}

		for ev := sdl.WaitEventTimeout(waitTimeout); ev != nil; ev = sdl.PollEvent() {
			if _, ok := ev.(*sdl.QuitEvent); ok {
				return nil
			}

			for _, e := range h.norm.Normalise(ev) {
				if handler.HandleEvent(e) == dispatch.Consumed {
					logger.Logf(logger.Allow, "sdl", "%s consumed", e)
				}
			}
		}
	}
}
