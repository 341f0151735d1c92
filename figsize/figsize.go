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

package figsize

import (
	"seehuhn.de/go/figtune/optional"
)

// FigSize holds the geometry settings of a figure.
//
// The zero value is not useful; use [New] to create a FigSize.
// A FigSize must not be modified concurrently.
type FigSize struct {
	sizeH, sizeV Size
	nRows, nCols int
	margins      Margins

	spacingH, spacingV optional.Float

	cbarSide  Side
	cbarWidth float64
	cbarPad   float64
}

// Options can be used to set the initial state of a FigSize.
// Zero values for NRows and NCols are replaced by 1, and sizes with a
// zero mode are interpreted as [Total].
type Options struct {
	SizeH, SizeV Size
	NRows, NCols int
	Margins      Margins
}

// New allocates a new FigSize.  If opt is nil, a 1×1 grid with zero sizes
// and margins is used.
func New(opt *Options) *FigSize {
	if opt == nil {
		opt = &Options{}
	}
	fs := &FigSize{
		sizeH:   opt.SizeH,
		sizeV:   opt.SizeV,
		nRows:   opt.NRows,
		nCols:   opt.NCols,
		margins: opt.Margins,
	}
	if fs.sizeH.Mode == 0 {
		fs.sizeH.Mode = Total
	}
	if fs.sizeV.Mode == 0 {
		fs.sizeV.Mode = Total
	}
	if fs.nRows == 0 {
		fs.nRows = 1
	}
	if fs.nCols == 0 {
		fs.nCols = 1
	}
	return fs
}

// SizeH returns the horizontal size setting.
func (fs *FigSize) SizeH() Size { return fs.sizeH }

// SetSizeH sets the horizontal size of the figure.
func (fs *FigSize) SetSizeH(s Size) { fs.sizeH = s }

// SizeV returns the vertical size setting.
func (fs *FigSize) SizeV() Size { return fs.sizeV }

// SetSizeV sets the vertical size of the figure.
func (fs *FigSize) SetSizeV(s Size) { fs.sizeV = s }

// NRows returns the number of rows of subplots.
func (fs *FigSize) NRows() int { return fs.nRows }

// SetNRows sets the number of rows of subplots.
// This is used to compute the vertical spacing between the rows.
func (fs *FigSize) SetNRows(n int) { fs.nRows = n }

// NCols returns the number of columns of subplots.
func (fs *FigSize) NCols() int { return fs.nCols }

// SetNCols sets the number of columns of subplots.
// This is used to compute the horizontal spacing between the columns.
func (fs *FigSize) SetNCols(n int) { fs.nCols = n }

// Margins returns all four margins.
func (fs *FigSize) Margins() Margins { return fs.margins }

// SetMargins sets all four margins at once.
func (fs *FigSize) SetMargins(m Margins) { fs.margins = m }

// MarginLeft returns the left margin.
func (fs *FigSize) MarginLeft() float64 { return fs.margins.Left }

// SetMarginLeft sets the left margin.
func (fs *FigSize) SetMarginLeft(v float64) { fs.margins.Left = v }

// MarginBottom returns the bottom margin.
func (fs *FigSize) MarginBottom() float64 { return fs.margins.Bottom }

// SetMarginBottom sets the bottom margin.
func (fs *FigSize) SetMarginBottom(v float64) { fs.margins.Bottom = v }

// MarginRight returns the right margin.
func (fs *FigSize) MarginRight() float64 { return fs.margins.Right }

// SetMarginRight sets the right margin.
func (fs *FigSize) SetMarginRight(v float64) { fs.margins.Right = v }

// MarginTop returns the top margin.
func (fs *FigSize) MarginTop() float64 { return fs.margins.Top }

// SetMarginTop sets the top margin.
func (fs *FigSize) SetMarginTop(v float64) { fs.margins.Top = v }

// SetSpacingH sets the horizontal space between columns of subplots.
// If the value is unset, the sum of the left and right margins is used.
func (fs *FigSize) SetSpacingH(s optional.Float) { fs.spacingH = s }

// SetSpacingV sets the vertical space between rows of subplots.
// If the value is unset, the sum of the bottom and top margins is used.
func (fs *FigSize) SetSpacingV(s optional.Float) { fs.spacingV = s }

// Spacing returns the horizontal and vertical space between subplots,
// with defaults applied.
func (fs *FigSize) Spacing() (h, v float64) {
	h = fs.spacingH.Or(fs.margins.Left + fs.margins.Right)
	v = fs.spacingV.Or(fs.margins.Bottom + fs.margins.Top)
	return h, v
}

// ColorBarSide returns the location of the colour bar.
func (fs *FigSize) ColorBarSide() Side { return fs.cbarSide }

// SetColorBarSide sets the location of the colour bar.
// Use [NoSide] to remove the colour bar.
func (fs *FigSize) SetColorBarSide(s Side) { fs.cbarSide = s }

// SetColorBarWidth sets the width of the colour bar, in inches.
func (fs *FigSize) SetColorBarWidth(w float64) { fs.cbarWidth = w }

// SetColorBarPad sets the gap between the colour bar and the plot region.
func (fs *FigSize) SetColorBarPad(p float64) { fs.cbarPad = p }

// HasColorBar reports whether room is reserved for a colour bar.
func (fs *FigSize) HasColorBar() bool {
	return fs.cbarSide.isVertical() || fs.cbarSide.isHorizontal()
}

// ColorBarOrientation returns the orientation of the colour bar,
// or NoOrientation if there is none.
func (fs *FigSize) ColorBarOrientation() Orientation {
	switch {
	case fs.cbarSide.isVertical():
		return Vertical
	case fs.cbarSide.isHorizontal():
		return Horizontal
	default:
		return NoOrientation
	}
}

// cbarExtent returns the room taken by the colour bar in horizontal and
// in vertical direction.
func (fs *FigSize) cbarExtent() (h, v float64) {
	d := fs.cbarWidth + fs.cbarPad
	switch {
	case fs.cbarSide.isVertical():
		return d, 0
	case fs.cbarSide.isHorizontal():
		return 0, d
	default:
		return 0, 0
	}
}
