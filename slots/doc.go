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

// Package slots keeps track of the save-state slots and when each slot was
// last written.
//
// The Cache type holds a Record for every slot. Records are filled from a
// Source, which is the truth about whether a slot has a save-state and what
// its timestamp is. The cache exists so that the oldest and newest slot can
// be found without consulting the Source, which might be slow (the StateFiles
// type asks the filesystem).
//
// Rescan() and Update() return the indexes of records that have changed.
// Callers should only update slot menu items for those indexes.
//
// Slot indexes count from zero. The user presentation of slots counts from
// one.
package slots
