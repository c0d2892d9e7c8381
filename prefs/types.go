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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/shortcuts/curated"
)

// SetError is the curated error pattern returned when a value cannot be set.
const SetError = "prefs: set: %v"

// Value represents the actual Go preference value.
type Value interface{}

// Pref is implemented by every type in the prefs system. Values of type Pref
// can be added to a Disk.
type Pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hooks are called either side of a value being stored. common to all pref
// types.
type hooks struct {
	pre  func(value Value) error
	post func(value Value) error
}

// SetHookPre sets the callback function to be called just before the prefs
// value is updated. Note that even if the value hasn't changed, the callback
// will be executed. If the callback returns an error the value is not
// updated.
func (h *hooks) SetHookPre(f func(value Value) error) {
	h.pre = f
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated. Note that even if the value hasn't changed, the callback
// will be executed.
func (h *hooks) SetHookPost(f func(value Value) error) {
	h.post = f
}

// store value with the hooks called around it
func (h *hooks) store(into *atomic.Value, nv Value) error {
	if h.pre != nil {
		if err := h.pre(nv); err != nil {
			return err
		}
	}

	into.Store(nv)

	if h.post != nil {
		if err := h.post(nv); err != nil {
			return err
		}
	}

	return nil
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	hooks
	value atomic.Value // bool
	def   bool
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.Get().(bool))
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		nv = strings.EqualFold(strings.TrimSpace(v), "true")
	default:
		return curated.Errorf(SetError, fmt.Sprintf("cannot convert %T to prefs.Bool", v))
	}
	return p.store(&p.value, nv)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return p.def
	}
	return ov.(bool)
}

// Value is a convenience function that returns the value as a bool.
func (p *Bool) Value() bool {
	return p.Get().(bool)
}

// SetDefault sets the value returned by Get() before Set() has been called
// and the value that Reset() restores.
func (p *Bool) SetDefault(def bool) {
	p.def = def
}

// Reset sets the value to the default.
func (p *Bool) Reset() error {
	return p.Set(p.def)
}

// AllowLogging implements the logger.Permission interface. A Bool can be used
// to control whether log entries are created.
func (p *Bool) AllowLogging() bool {
	return p.Value()
}

// String implements a string type in the prefs system.
type String struct {
	hooks
	maxLen int
	value  atomic.Value // string
	def    string
}

func (p *String) String() string {
	return p.Get().(string)
}

// SetMaxLen sets the maximum length for a string when it is set. To set no
// limit use a value less than or equal to zero. Note that the existing string
// will be cropped if necessary and the cropped information will be lost.
func (p *String) SetMaxLen(max int) {
	p.maxLen = max

	ov := p.value.Load()
	if ov == nil {
		return
	}

	if p.maxLen > 0 && len(ov.(string)) > p.maxLen {
		p.value.Store(ov.(string)[:p.maxLen])
	}
}

// Set new value to String type. Values of any type will be converted to a
// string with the %v verb.
func (p *String) Set(v Value) error {
	nv := fmt.Sprintf("%v", v)
	if p.maxLen > 0 && len(nv) > p.maxLen {
		nv = nv[:p.maxLen]
	}
	return p.store(&p.value, nv)
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return p.def
	}
	return ov.(string)
}

// Value is a convenience function that returns the value as a string.
func (p *String) Value() string {
	return p.Get().(string)
}

// SetDefault sets the value returned by Get() before Set() has been called
// and the value that Reset() restores.
func (p *String) SetDefault(def string) {
	p.def = def
}

// Reset sets the value to the default.
func (p *String) Reset() error {
	return p.Set(p.def)
}

// Int implements an integer type in the prefs system.
type Int struct {
	hooks
	value atomic.Value // int
	def   int

	// if max is greater than min then values are checked against the range
	min int
	max int
}

func (p *Int) String() string {
	return strconv.Itoa(p.Get().(int))
}

// Set new value to Int type. New value can be an int or string. Values
// outside of the range set by SetRange() are an error.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int64:
		nv = int(v)
	case int32:
		nv = int(v)
	case int:
		nv = v
	case string:
		var err error
		nv, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return curated.Errorf(SetError, err)
		}
	default:
		return curated.Errorf(SetError, fmt.Sprintf("cannot convert %T to prefs.Int", v))
	}

	if p.max > p.min && (nv < p.min || nv > p.max) {
		return curated.Errorf(SetError, fmt.Sprintf("%d is outside the range %d to %d", nv, p.min, p.max))
	}

	return p.store(&p.value, nv)
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return p.def
	}
	return ov.(int)
}

// Value is a convenience function that returns the value as an int.
func (p *Int) Value() int {
	return p.Get().(int)
}

// SetDefault sets the value returned by Get() before Set() has been called
// and the value that Reset() restores.
func (p *Int) SetDefault(def int) {
	p.def = def
}

// SetRange limits the values that can be set. The range is inclusive.
func (p *Int) SetRange(min int, max int) {
	p.min = min
	p.max = max
}

// Reset sets the value to the default.
func (p *Int) Reset() error {
	return p.Set(p.def)
}
