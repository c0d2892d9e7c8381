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

package menus

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jetsetilly/shortcuts/commands"
	"github.com/jetsetilly/shortcuts/userinput"
)

// UI is implemented by the host's menu system.
type UI interface {
	SetLabel(anchor commands.Anchor, label string)
	SetEnabled(anchor commands.Anchor, enabled bool)
}

// Captioner converts an input to the text shown as the accelerator in a menu
// label.
type Captioner interface {
	Caption(userinput.Input) string
}

// DefaultCaptioner uses the canonical text of the input.
type DefaultCaptioner struct{}

// Caption implements the Captioner interface.
func (DefaultCaptioner) Caption(in userinput.Input) string {
	return in.String()
}

// TimestampFormatter converts a slot timestamp to text.
type TimestampFormatter interface {
	FormatTimestamp(time.Time) string
}

// Layout formats timestamps with time.Format().
type Layout string

// DefaultLayout is used if no TimestampFormatter is specified.
const DefaultLayout Layout = "2006/01/02 15:04:05"

// FormatTimestamp implements the TimestampFormatter interface.
func (l Layout) FormatTimestamp(ts time.Time) string {
	return ts.Local().Format(string(l))
}

// Humanized formats timestamps relative to the current time. For example,
// "3 minutes ago".
type Humanized struct {
	// the time that timestamps are relative to. if nil time.Now() is used
	Now func() time.Time
}

// FormatTimestamp implements the TimestampFormatter interface.
func (h Humanized) FormatTimestamp(ts time.Time) string {
	if h.Now == nil {
		return humanize.Time(ts)
	}
	return humanize.RelTime(ts, h.Now(), "ago", "from now")
}
