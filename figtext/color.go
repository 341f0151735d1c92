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

package figtext

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var errColorSyntax = errors.New("invalid colour")

// ParseColor converts a colour specification into a color.Color.
//
// Accepted are the SVG 1.1 colour keywords ("black", "steelblue", ...),
// hexadecimal values "#rgb", "#rrggbb" and "#rrggbbaa", and "none" for a
// fully transparent colour.  The empty string gives a nil colour, which
// stands for the engine default.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	key := strings.ToLower(s)
	if key == "none" || key == "transparent" {
		return color.Transparent, nil
	}

	if hex, ok := strings.CutPrefix(key, "#"); ok {
		c, err := parseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("figtext: colour %q: %w", s, err)
		}
		return c, nil
	}

	if c, ok := colornames.Map[key]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("figtext: unknown colour %q", s)
}

func parseHex(hex string) (color.Color, error) {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, errColorSyntax
	}
	x, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, errColorSyntax
	}
	return color.NRGBA{
		R: uint8(x >> 24),
		G: uint8(x >> 16),
		B: uint8(x >> 8),
		A: uint8(x),
	}, nil
}
