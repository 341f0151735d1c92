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

// Package float rounds layout values for display.
package float

import (
	"math"
	"strconv"
)

// Round rounds x to the given number of decimal digits.
// Negative digits leave x unchanged, as do infinities and NaN.
func Round(x float64, digits int) float64 {
	if digits < 0 || math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	y, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', digits, 64), 64)
	if err != nil {
		return x
	}
	if y == 0 {
		// avoid "-0" in the output
		return 0
	}
	return y
}

// RoundAll rounds every element of xs in place.
func RoundAll(digits int, xs ...*float64) {
	for _, p := range xs {
		*p = Round(*p, digits)
	}
}
