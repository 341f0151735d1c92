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

// Package figsize computes the geometry of figures made of a grid of plots.
//
// A plotting engine usually describes the position of the subplots as
// fractions of the total figure size, whereas authors typically think in
// absolute margins: half an inch for the tick labels on the left, a fixed
// gap between panels, a colour bar of a given width.  A [FigSize] converts
// between the two.  It stores the target size of the figure, the margins
// around the plot region, the number of rows and columns of subplots, the
// spacing between them and, optionally, room reserved for a colour bar on
// one side of the plot region.
//
// All lengths are in inches.  Nothing is cached; every query recomputes the
// result from the current settings.
package figsize

import (
	"errors"
	"fmt"
)

// ErrBothRatio is returned when both the horizontal and the vertical size
// are given as ratios.  Each ratio refers to the other dimension, so at
// least one of them must be absolute.
var ErrBothRatio = errors.New("figsize: horizontal and vertical size cannot both be ratios")

// Mode specifies how the value of a [Size] is interpreted.
type Mode int

// These are the supported size modes.
const (
	// Total is the size of the whole figure, including margins and the
	// colour bar.
	Total Mode = iota + 1

	// NoColorBar is the size of the figure without the colour bar.
	NoColorBar

	// AxesRegion is the size of the plot region, without margins and
	// colour bar.
	AxesRegion

	// SingleAxis is the size of one subplot.
	SingleAxis

	// Ratio is a multiple of the size of one subplot in the other
	// dimension.
	Ratio
)

func (m Mode) String() string {
	switch m {
	case Total:
		return "total"
	case NoColorBar:
		return "no-cbar"
	case AxesRegion:
		return "axes"
	case SingleAxis:
		return "ax"
	case Ratio:
		return "ratio"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts the name of a size mode, as returned by
// [Mode.String], into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "total", "":
		return Total, nil
	case "no-cbar":
		return NoColorBar, nil
	case "axes":
		return AxesRegion, nil
	case "ax":
		return SingleAxis, nil
	case "ratio":
		return Ratio, nil
	}
	return 0, fmt.Errorf("figsize: unknown size mode %q", s)
}

// Size is one dimension of the figure, together with its interpretation.
type Size struct {
	Mode  Mode
	Value float64
}

// TotalSize returns a Size which covers the whole figure.
func TotalSize(v float64) Size { return Size{Mode: Total, Value: v} }

// NoColorBarSize returns a Size which covers the figure without the colour bar.
func NoColorBarSize(v float64) Size { return Size{Mode: NoColorBar, Value: v} }

// AxesSize returns a Size which covers the plot region only.
func AxesSize(v float64) Size { return Size{Mode: AxesRegion, Value: v} }

// AxSize returns a Size which covers a single subplot.
func AxSize(v float64) Size { return Size{Mode: SingleAxis, Value: v} }

// RatioSize returns a Size which is r times the size of a single subplot
// in the other dimension.
func RatioSize(r float64) Size { return Size{Mode: Ratio, Value: r} }

func (s Size) String() string {
	return fmt.Sprintf("%g (%s)", s.Value, s.Mode)
}

// Side gives the location of the colour bar relative to the plot region.
type Side int

// These are the possible colour bar locations.
// NoSide means that no room is reserved for a colour bar.
const (
	NoSide Side = iota
	Left
	Bottom
	Right
	Top
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Bottom:
		return "bottom"
	case Right:
		return "right"
	case Top:
		return "top"
	default:
		return "none"
	}
}

// ParseSide converts "left", "bottom", "right" or "top" into a Side.
// Any other string gives NoSide.
func ParseSide(s string) Side {
	switch s {
	case "left":
		return Left
	case "bottom":
		return Bottom
	case "right":
		return Right
	case "top":
		return Top
	default:
		return NoSide
	}
}

func (s Side) isVertical() bool {
	return s == Left || s == Right
}

func (s Side) isHorizontal() bool {
	return s == Bottom || s == Top
}

// Orientation is the direction in which a colour bar extends.
type Orientation int

// These are the possible colour bar orientations.
const (
	NoOrientation Orientation = iota
	Vertical
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return ""
	}
}

// Margins holds the space between the edges of the figure and the plot
// region, in inches.
type Margins struct {
	Left, Bottom, Right, Top float64
}
