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

// Package figtext applies a uniform text style to the elements of a plot.
//
// A [FigText] stores a default font size, colour and font description,
// together with a flag which selects whether text is typeset by TeX.  The
// Apply* methods push these defaults, possibly with overrides, onto the
// text elements of axes, legends and colour bars.  The plotting engine is
// accessed only through the small interfaces [Text], [Axes], [Legend] and
// [ColorBar]; see the gonumplot package for an implementation.
//
// The [FigText.Escape] method prepares strings for the TeX or mathtext
// processor of the plotting engine.
package figtext

import (
	"image/color"
)

// FigText holds the default text style of a figure.
//
// A FigText must not be modified concurrently.
type FigText struct {
	size  float64
	color color.Color
	font  *Font
	tex   bool
}

// Config describes the initial state of a FigText.
type Config struct {
	// Size is the default font size in points.  Zero leaves the font size
	// of text elements to the plotting engine.
	Size float64

	// Color is the default text and line colour.  If this is nil, the
	// engine default is used.
	Color color.Color

	// Font, if set, is used for all text elements and takes precedence
	// over Size.
	Font *Font

	// TeX selects whether text is typeset by TeX.
	TeX bool

	// FontPath, if set and Font is nil, is the name of a font file which
	// is loaded by New to construct the font description.
	FontPath string

	// FontSize is the size used for the font loaded from FontPath.
	// If this is zero, Size is used instead.
	FontSize float64
}

// New allocates a new FigText.
// An error is returned if a font file is given but cannot be loaded.
func New(cfg *Config) (*FigText, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	ft := &FigText{
		size:  cfg.Size,
		color: cfg.Color,
		font:  cfg.Font,
		tex:   cfg.TeX,
	}

	if ft.font == nil && cfg.FontPath != "" {
		size := cfg.FontSize
		if size <= 0 {
			size = cfg.Size
		}
		F, err := LoadFont(cfg.FontPath, size)
		if err != nil {
			return nil, err
		}
		ft.font = F
	}

	return ft, nil
}

// Size returns the default font size.
func (ft *FigText) Size() float64 { return ft.size }

// SetSize sets the default font size.
func (ft *FigText) SetSize(size float64) { ft.size = size }

// Color returns the default colour.
func (ft *FigText) Color() color.Color { return ft.color }

// SetColor sets the default colour.
func (ft *FigText) SetColor(c color.Color) { ft.color = c }

// Font returns the default font description, or nil if none is set.
func (ft *FigText) Font() *Font { return ft.font }

// SetFont sets the default font description.
func (ft *FigText) SetFont(F *Font) { ft.font = F }

// TeX reports whether text is typeset by TeX.
func (ft *FigText) TeX() bool { return ft.tex }

// SetTeX sets whether text is typeset by TeX.
func (ft *FigText) SetTeX(tex bool) { ft.tex = tex }
