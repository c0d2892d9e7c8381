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

package termui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/jetsetilly/shortcuts/commands"
	"github.com/jetsetilly/shortcuts/dispatch"
	"github.com/jetsetilly/shortcuts/gui"
	"github.com/jetsetilly/shortcuts/logger"
)

const eventQueueLen = 32

// width of the anchor column
const anchorWidth = 28

type item struct {
	label   string
	enabled bool
}

// Host is the terminal front end.
type Host struct {
	screen tcell.Screen
	title  string
	status string

	items map[commands.Anchor]*item

	service chan func()
}

// NewHost opens the terminal.
func NewHost(title string) (*Host, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("termui: %w", err)
	}
	return NewHostWithScreen(title, scr)
}

// NewHostWithScreen uses the screen provided. The screen will be initialised
// by this function.
func NewHostWithScreen(title string, scr tcell.Screen) (*Host, error) {
	if err := scr.Init(); err != nil {
		return nil, fmt.Errorf("termui: %w", err)
	}
	return &Host{
		screen:  scr,
		title:   title,
		items:   make(map[commands.Anchor]*item),
		service: make(chan func(), gui.ServiceQueueLen),
	}, nil
}

// Destroy implements the gui.Host interface.
func (h *Host) Destroy() error {
	h.screen.Fini()
	return nil
}

func (h *Host) item(anchor commands.Anchor) *item {
	it, ok := h.items[anchor]
	if !ok {
		it = &item{enabled: true}
		h.items[anchor] = it
	}
	return it
}

// SetLabel implements the menus.UI interface.
func (h *Host) SetLabel(anchor commands.Anchor, label string) {
	h.item(anchor).label = label
}

// SetEnabled implements the menus.UI interface.
func (h *Host) SetEnabled(anchor commands.Anchor, enabled bool) {
	h.item(anchor).enabled = enabled
}

// SetStatus implements the gui.Host interface.
func (h *Host) SetStatus(status string) {
	h.status = status
}

// Service implements the gui.Host interface.
func (h *Host) Service(f func()) {
	h.service <- f
}

// StopPolling implements the session.JoystickPoller interface.
func (h *Host) StopPolling() {
}

// PollJoysticks implements the session.JoystickPoller interface.
func (h *Host) PollJoysticks(joysticks []int) {
	if len(joysticks) > 0 {
		logger.Logf(logger.Allow, "termui", "joysticks are not supported in the terminal (%v)", joysticks)
	}
}

// Line is a single line of the menu list.
type Line struct {
	Anchor  commands.Anchor
	Display string
	Caption string
	Enabled bool
}

func (l Line) String() string {
	return fmt.Sprintf("%-*s %s  %s", anchorWidth, l.Anchor, l.Display, l.Caption)
}

// Lines returns the menu list in the order it is drawn.
func (h *Host) Lines() []Line {
	anchors := make([]commands.Anchor, 0, len(h.items))
	for a := range h.items {
		anchors = append(anchors, a)
	}
	slices.Sort(anchors)

	lines := make([]Line, 0, len(anchors))
	for _, a := range anchors {
		it := h.items[a]
		display, caption, _ := strings.Cut(it.label, "\t")
		lines = append(lines, Line{
			Anchor:  a,
			Display: display,
			Caption: caption,
			Enabled: it.enabled,
		})
	}
	return lines
}

func (h *Host) text(x, y int, s string, style tcell.Style) {
	w, _ := h.screen.Size()
	for _, r := range s {
		if x >= w {
			return
		}
		h.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (h *Host) draw() {
	h.screen.Clear()

	_, ht := h.screen.Size()

	h.text(0, 0, h.title, tcell.StyleDefault.Bold(true))

	enabled := tcell.StyleDefault
	disabled := tcell.StyleDefault.Dim(true)

	for i, l := range h.Lines() {
		y := i + 2
		if y >= ht-1 {
			break
		}
		style := enabled
		if !l.Enabled {
			style = disabled
		}
		h.text(0, y, l.String(), style)
	}

	h.text(0, ht-1, h.status, tcell.StyleDefault.Reverse(true))
	h.screen.Show()
}

// Run implements the gui.Host interface. Ctrl+C ends the loop if the handler
// did not consume it.
func (h *Host) Run(ctx context.Context, handler gui.Handler) error {
	evs := make(chan tcell.Event, eventQueueLen)
	quit := make(chan struct{})
	defer close(quit)

	// PollEvent() returns nil once the screen has been finalised
	go func() {
		defer close(evs)
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case evs <- ev:
			case <-quit:
				return
			}
		}
	}()

	h.draw()

	for {
		select {
		case <-ctx.Done():
			return nil

		case f := <-h.service:
			f()
			h.draw()

		case ev, ok := <-evs:
			if !ok {
				return nil
			}

			switch ev := ev.(type) {
			case *tcell.EventResize:
				h.screen.Sync()
				h.draw()

			case *tcell.EventKey:
				e, ok := Normalise(ev)
				if ok && handler.HandleEvent(e) == dispatch.Consumed {
					h.draw()
					continue
				}
				if ev.Key() == tcell.KeyCtrlC {
					return nil
				}
			}
		}
	}
}
