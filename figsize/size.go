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
	"seehuhn.de/go/geom/rect"
)

// FigureArgs holds the arguments needed to create a figure.
type FigureArgs struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SubplotParams gives the location of the subplot grid inside the figure.
//
// Left, Bottom, Right and Top are the edges of the plot region as
// fractions of the figure size, measured from the left and bottom edges.
// WSpace and HSpace are the gaps between subplots as fractions of the
// average subplot width and height.
type SubplotParams struct {
	Left   float64 `json:"left"`
	Bottom float64 `json:"bottom"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	WSpace float64 `json:"wspace"`
	HSpace float64 `json:"hspace"`
}

// FigureSize returns the total width and height of the figure, including
// margins and colour bar.
func (fs *FigSize) FigureSize() (float64, float64, error) {
	if fs.sizeH.Mode == Ratio && fs.sizeV.Mode == Ratio {
		return 0, 0, ErrBothRatio
	}

	spacingH, spacingV := fs.Spacing()
	cbarH, cbarV := fs.cbarExtent()
	m := fs.margins

	w := fs.sizeH.Value
	h := fs.sizeV.Value

	if fs.sizeH.Mode == Ratio {
		w *= singleAxis(fs.sizeV, fs.nRows, spacingV, m.Bottom+m.Top, cbarV)
	}
	if fs.sizeV.Mode == Ratio {
		h *= singleAxis(fs.sizeH, fs.nCols, spacingH, m.Left+m.Right, cbarH)
	}

	w = expand(w, fs.sizeH.Mode, fs.nCols, spacingH, m.Left+m.Right, cbarH)
	h = expand(h, fs.sizeV.Mode, fs.nRows, spacingV, m.Bottom+m.Top, cbarV)

	return w, h, nil
}

// singleAxis converts s into the size of a single subplot.
func singleAxis(s Size, n int, spacing, margins, cbar float64) float64 {
	gaps := spacing * float64(n-1)
	switch s.Mode {
	case SingleAxis:
		return s.Value
	case AxesRegion:
		return (s.Value - gaps) / float64(n)
	case NoColorBar:
		return (s.Value - margins - gaps) / float64(n)
	default:
		return (s.Value - cbar - margins - gaps) / float64(n)
	}
}

// expand converts the size x, given in mode m, into the total figure size.
func expand(x float64, m Mode, n int, spacing, margins, cbar float64) float64 {
	if m == SingleAxis || m == Ratio {
		x = x*float64(n) + spacing*float64(n-1)
	}
	if m == AxesRegion || m == SingleAxis || m == Ratio {
		x += margins
	}
	if m == NoColorBar || m == AxesRegion || m == SingleAxis || m == Ratio {
		x += cbar
	}
	return x
}

// FigureArgs returns the size arguments for creating a figure.
func (fs *FigSize) FigureArgs() (FigureArgs, error) {
	w, h, err := fs.FigureSize()
	if err != nil {
		return FigureArgs{}, err
	}
	return FigureArgs{Width: w, Height: h}, nil
}

// SubplotsArgs returns the location of the subplots inside the figure.
func (fs *FigSize) SubplotsArgs() (SubplotParams, error) {
	w, h, err := fs.FigureSize()
	if err != nil {
		return SubplotParams{}, err
	}

	m := fs.margins
	d := fs.cbarWidth + fs.cbarPad
	switch fs.cbarSide {
	case Left:
		m.Left += d
	case Right:
		m.Right += d
	case Bottom:
		m.Bottom += d
	case Top:
		m.Top += d
	}

	spacingH, spacingV := fs.Spacing()

	return SubplotParams{
		Left:   m.Left / w,
		Bottom: m.Bottom / h,
		Right:  1 - m.Right/w,
		Top:    1 - m.Top/h,
		WSpace: gapRatio(fs.nCols, w-m.Left-m.Right, spacingH),
		HSpace: gapRatio(fs.nRows, h-m.Bottom-m.Top, spacingV),
	}, nil
}

// gapRatio converts the absolute spacing between n subplots, which share a
// region of the given size, into a fraction of the average subplot size.
func gapRatio(n int, region, spacing float64) float64 {
	if n <= 1 || spacing <= 0 {
		return 0
	}
	k := float64(n)
	return k / (region/spacing - (k - 1))
}

// ColorBarRect returns the area for the colour bar, as fractions of the
// figure size.  If no colour bar is configured, nil is returned.
func (fs *FigSize) ColorBarRect() (*rect.Rect, error) {
	if !fs.HasColorBar() {
		return nil, nil
	}

	w, h, err := fs.FigureSize()
	if err != nil {
		return nil, err
	}

	m := fs.margins
	var x, y, dx, dy float64
	switch fs.cbarSide {
	case Left:
		x = m.Left / w
		y = m.Bottom / h
		dx = fs.cbarWidth / w
		dy = 1 - (m.Bottom+m.Top)/h
	case Right:
		x = 1 - (fs.cbarWidth+fs.cbarPad)/w
		y = m.Bottom / h
		dx = fs.cbarWidth / w
		dy = 1 - (m.Bottom+m.Top)/h
	case Bottom:
		x = m.Left / w
		y = m.Bottom / h
		dx = 1 - (m.Left+m.Right)/w
		dy = fs.cbarWidth / h
	case Top:
		x = m.Left / w
		y = 1 - (fs.cbarWidth+m.Top)/h
		dx = 1 - (m.Left+m.Right)/w
		dy = fs.cbarWidth / h
	}

	return &rect.Rect{LLx: x, LLy: y, URx: x + dx, URy: y + dy}, nil
}
