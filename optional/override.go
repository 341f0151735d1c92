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

type overrideState uint8

const (
	stateDefault overrideState = iota
	stateValue
	stateUnchanged
)

// Override selects how a property of a target object is updated.
//
// The zero value means "use the default", [Value] supplies an explicit
// value, and [Unchanged] asks for the property to be left alone.
type Override[T any] struct {
	state overrideState
	val   T
}

// Value returns an Override which sets the property to v.
func Value[T any](v T) Override[T] {
	return Override[T]{state: stateValue, val: v}
}

// Unchanged returns an Override which leaves the property untouched.
func Unchanged[T any]() Override[T] {
	return Override[T]{state: stateUnchanged}
}

// IsDefault reports whether the default value should be used.
func (o Override[T]) IsDefault() bool {
	return o.state == stateDefault
}

// IsUnchanged reports whether the property should be left alone.
func (o Override[T]) IsUnchanged() bool {
	return o.state == stateUnchanged
}

// Get returns the explicit value and whether one was given.
func (o Override[T]) Get() (T, bool) {
	return o.val, o.state == stateValue
}

// Resolve returns the value to write, substituting def when no explicit
// value was given.  The second return value is false if the property
// must not be written at all.
func (o Override[T]) Resolve(def T) (T, bool) {
	switch o.state {
	case stateValue:
		return o.val, true
	case stateUnchanged:
		var zero T
		return zero, false
	default:
		return def, true
	}
}
