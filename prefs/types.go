// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// hooks are callback functions that can be attached to a preference value.
// the pre hook runs before the value is updated, the post hook after. note
// that the hooks run even if the new value is the same as the old.
type hooks struct {
	pre  func(value Value) error
	post func(value Value) error
}

func (h *hooks) runPre(v Value) error {
	if h.pre == nil {
		return nil
	}
	return h.pre(v)
}

func (h *hooks) runPost(v Value) error {
	if h.post == nil {
		return nil
	}
	return h.post(v)
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	pref
	hooks
	value atomic.Value // bool
}

func (p *Bool) String() string {
	return fmt.Sprintf("%v", p.Get())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) sets the
// value to false.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		nv = strings.EqualFold(v, "true")
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
	}

	if err := p.runPre(nv); err != nil {
		return err
	}
	p.value.Store(nv)
	return p.runPost(nv)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return false
	}
	return ov.(bool)
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// SetHookPre sets the callback function to be called just before the value
// is updated.
func (p *Bool) SetHookPre(f func(value Value) error) {
	p.pre = f
}

// SetHookPost sets the callback function to be called just after the value
// is updated.
func (p *Bool) SetHookPost(f func(value Value) error) {
	p.post = f
}

// String implements a string type in the prefs system.
type String struct {
	pref
	hooks
	value  atomic.Value // string
	maxLen int
}

func (p *String) String() string {
	return p.Get().(string)
}

// SetMaxLen sets the maximum length of the string. Any existing string is
// cropped. A value of zero or less removes the limit (without restoring
// previously cropped information).
func (p *String) SetMaxLen(maxLen int) {
	p.maxLen = maxLen

	// crop existing value if necessary
	s := p.String()
	if p.maxLen > 0 && len(s) > p.maxLen {
		_ = p.Set(s[:p.maxLen])
	}
}

// Set new value to String type. The value is turned into a string with the
// %v verb.
func (p *String) Set(v Value) error {
	nv := fmt.Sprintf("%v", v)
	if p.maxLen > 0 && len(nv) > p.maxLen {
		nv = nv[:p.maxLen]
	}

	if err := p.runPre(nv); err != nil {
		return err
	}
	p.value.Store(nv)
	return p.runPost(nv)
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return ""
	}
	return ov.(string)
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// SetHookPre sets the callback function to be called just before the value
// is updated.
func (p *String) SetHookPre(f func(value Value) error) {
	p.pre = f
}

// SetHookPost sets the callback function to be called just after the value
// is updated.
func (p *String) SetHookPost(f func(value Value) error) {
	p.post = f
}

// Int implements an integer type in the prefs system.
type Int struct {
	pref
	hooks
	value atomic.Value // int
}

func (p *Int) String() string {
	return fmt.Sprintf("%d", p.Get())
}

// Set new value to Int type. New value can be an int or a string.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int:
		nv = v
	case string:
		var err error
		nv, err = strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %s to prefs.Int", v)
		}
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
	}

	if err := p.runPre(nv); err != nil {
		return err
	}
	p.value.Store(nv)
	return p.runPost(nv)
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return 0
	}
	return ov.(int)
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// SetHookPre sets the callback function to be called just before the value
// is updated.
func (p *Int) SetHookPre(f func(value Value) error) {
	p.pre = f
}

// SetHookPost sets the callback function to be called just after the value
// is updated.
func (p *Int) SetHookPost(f func(value Value) error) {
	p.post = f
}

// Float implements a float type in the prefs system.
type Float struct {
	pref
	hooks
	value atomic.Value // float64
}

func (p *Float) String() string {
	return fmt.Sprintf("%g", p.Get())
}

// Set new value to Float type. New value can be a float32, float64 or a
// string.
func (p *Float) Set(v Value) error {
	var nv float64
	switch v := v.(type) {
	case float64:
		nv = v
	case float32:
		nv = float64(v)
	case string:
		var err error
		nv, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %s to prefs.Float", v)
		}
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Float", v)
	}

	if err := p.runPre(nv); err != nil {
		return err
	}
	p.value.Store(nv)
	return p.runPost(nv)
}

// Get returns the raw pref value.
func (p *Float) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return 0.0
	}
	return ov.(float64)
}

// Reset sets the float value to zero.
func (p *Float) Reset() error {
	return p.Set(0.0)
}

// SetHookPre sets the callback function to be called just before the value
// is updated.
func (p *Float) SetHookPre(f func(value Value) error) {
	p.pre = f
}

// SetHookPost sets the callback function to be called just after the value
// is updated.
func (p *Float) SetHookPost(f func(value Value) error) {
	p.post = f
}

// Generic implements a general purpose prefs type, useful for values that
// cannot be represented by a single live value. The set function parses the
// string representation from disk; the get function produces the string
// representation for saving.
type Generic struct {
	pref
	set func(string) error
	get func() string
}

// NewGeneric is the preferred method of initialisation for the Generic type.
func NewGeneric(set func(string) error, get func() string) *Generic {
	return &Generic{
		set: set,
		get: get,
	}
}

func (p *Generic) String() string {
	return p.get()
}

// Set triggers the set function with the string representation of v.
func (p *Generic) Set(v Value) error {
	return p.set(fmt.Sprintf("%v", v))
}

// Get returns the string representation produced by the get function.
func (p *Generic) Get() Value {
	return p.get()
}

// Reset is a no-op for the Generic type.
func (p *Generic) Reset() error {
	return nil
}
