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

package float

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	cases := []struct {
		x      float64
		digits int
		want   float64
	}{
		{0.1 + 0.2, 6, 0.3},
		{1.0 / 3, 3, 0.333},
		{-0.00001, 3, 0},
		{2.5, 0, 2},
		{12.345, -1, 12.345},
	}
	for _, c := range cases {
		got := Round(c.x, c.digits)
		if got != c.want {
			t.Errorf("Round(%g, %d) = %g, want %g", c.x, c.digits, got, c.want)
		}
		if math.Signbit(got) != math.Signbit(c.want) {
			t.Errorf("Round(%g, %d): wrong sign", c.x, c.digits)
		}
	}

	if !math.IsInf(Round(math.Inf(1), 2), 1) {
		t.Error("infinity not preserved")
	}
	if !math.IsNaN(Round(math.NaN(), 2)) {
		t.Error("NaN not preserved")
	}
}

func TestRoundAll(t *testing.T) {
	a, b := 0.123456, 9.87654
	RoundAll(2, &a, &b)
	if a != 0.12 || b != 9.88 {
		t.Errorf("got %g %g, want 0.12 9.88", a, b)
	}
}
