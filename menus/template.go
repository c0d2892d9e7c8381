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
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/valyala/fasttemplate"
)

// DefaultTemplate is the default template for slot labels.
const DefaultTemplate = "{slot}: {timestamp|empty}"

// DefaultEmpty is the default placeholder for empty slots.
const DefaultEmpty = "--/--/-- --:--:--"

// SlotTemplate renders the display text for slot commands.
type SlotTemplate struct {
	Template string
	Empty    string
}

// NewSlotTemplate is the preferred method of initialisation for the
// SlotTemplate type. Empty strings are replaced by the default values.
func NewSlotTemplate(template string, empty string) SlotTemplate {
	if template == "" {
		template = DefaultTemplate
	}
	if empty == "" {
		empty = DefaultEmpty
	}
	return SlotTemplate{
		Template: template,
		Empty:    empty,
	}
}

// Render the template for a slot. The slot argument counts from zero. The
// timestamp argument is the formatted timestamp or the empty string if the
// slot has no save-state.
func (st SlotTemplate) Render(slot int, timestamp string) string {
	values := map[string]string{
		"slot":      strconv.Itoa(slot + 1),
		"timestamp": timestamp,
		"empty":     st.Empty,
	}

	return fasttemplate.ExecuteFuncString(st.Template, "{", "}", func(w io.Writer, tag string) (int, error) {
		for _, t := range strings.Split(tag, "|") {
			v, ok := values[strings.TrimSpace(t)]
			if !ok {
				// unknown tags are left in the output unchanged
				return fmt.Fprintf(w, "{%s}", tag)
			}
			if v != "" {
				return io.WriteString(w, v)
			}
		}
		return 0, nil
	})
}
