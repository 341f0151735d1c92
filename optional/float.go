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

package optional

// Float represents an optional floating point number.
type Float struct {
	isSet bool
	val   float64
}

// NewFloat creates a new Float with the given value.
func NewFloat(v float64) Float {
	var k Float
	k.Set(v)
	return k
}

// Get returns the value and whether it is set.
func (k Float) Get() (float64, bool) {
	return k.val, k.isSet
}

// Or returns the value if it is set, and def otherwise.
func (k Float) Or(def float64) float64 {
	if !k.isSet {
		return def
	}
	return k.val
}

// Set sets the value.
func (k *Float) Set(v float64) {
	k.isSet = true
	k.val = v
}

// Clear clears the value.
func (k *Float) Clear() {
	k.isSet = false
	k.val = 0
}

// Equal compares two Floats for equality.
func (k Float) Equal(other Float) bool {
	return k.isSet == other.isSet && k.val == other.val
}
