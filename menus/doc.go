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

// Package menus keeps menu items in step with the binding table, the
// capability state and the save-state slots.
//
// Menu items are identified by anchors (see commands.Anchor). The
// Synchronizer derives a label and an enabled state for every anchored
// command and pushes them to the UI. A value is only pushed when it differs
// from the value that was last pushed to that anchor, so calling the sync
// functions more often than necessary is harmless.
//
// Labels have the form "display\tcaption", the accelerator convention of most
// widget toolkits. The caption is the text of the first input bound to the
// command. If nothing is bound the label is just the display text.
//
// The display text of slot commands is rendered from a template. The
// template is processed by fasttemplate and the following tags are
// recognised:
//
//	{slot}          one-based slot number
//	{timestamp}     formatted timestamp of the slot or nothing if it is empty
//	{empty}         the placeholder text for empty slots
//
// Tags can be combined with | in which case the first non-empty value is
// used. The default template is "{slot}: {timestamp|empty}".
package menus
