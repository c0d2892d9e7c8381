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

// Package logger is the central log for the application. Log entries are
// tagged with the name of the component making the entry. Consecutive entries
// with the same tag and detail are collapsed into a single entry with a repeat
// count.
//
// The central log has a maximum size. When the maximum is exceeded the oldest
// entries are forgotten.
//
// Logging can be gated with the Permission interface. Components that log on
// every input event should pass a Permission that is tied to a verbosity
// preference. The Allow value should be used when logging should always take
// place.
package logger
