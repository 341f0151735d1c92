// seehuhn.de/go/figtune - figure geometry and text styling for plots
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package optional implements value types which can be left unset.
//
// The zero value of every type in this package is "not set", so that
// struct fields of these types need no explicit initialisation.
package optional

// Bool represents an optional boolean value.
//
// This is used for settings with three states: not set, true, or false.
// An example is the TeX override of a text styler, where "not set" means
// that the styler's own setting applies.
type Bool struct {
	isSet bool
	val   bool
}

// NewBool creates a new Bool with the given value.
func NewBool(v bool) Bool {
	var b Bool
	b.Set(v)
	return b
}

// Get returns the value and whether it is set.
func (b Bool) Get() (bool, bool) {
	return b.val, b.isSet
}

// Or returns the value if it is set, and def otherwise.
func (b Bool) Or(def bool) bool {
	if !b.isSet {
		return def
	}
	return b.val
}

// Set sets the value.
func (b *Bool) Set(v bool) {
	b.isSet = true
	b.val = v
}

// Clear clears the value.
func (b *Bool) Clear() {
	b.isSet = false
	b.val = false
}

// Equal compares two Bools for equality.
func (b Bool) Equal(other Bool) bool {
	return b.isSet == other.isSet && b.val == other.val
}
