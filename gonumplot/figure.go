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

// Package gonumplot connects figure geometry and text styles to
// gonum.org/v1/plot.
//
// A [Figure] holds a grid of plots whose layout is given by a
// figsize.FigSize.  The adapters [Axes], [Text], [Legend] and [ColorBar]
// implement the figtext interfaces on top of the gonum plot objects, so
// that a figtext.FigText can style them:
//
//	fig := gonumplot.NewFigure(fs)
//	... add plotters to fig.Plot(0, 0) ...
//	ft.ApplyAxes(fig.Axes(0, 0), nil, 0)
//	err := fig.Render(out, "png")
package gonumplot

import (
	"errors"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgimg" // png, jpeg and tiff output
	_ "gonum.org/v1/plot/vg/vgpdf" // pdf output
	_ "gonum.org/v1/plot/vg/vgsvg" // svg output

	"seehuhn.de/go/figtune/figsize"
)

var errNoColorBar = errors.New("gonumplot: no room reserved for a colour bar")

// Figure is a grid of plots, laid out according to a figsize.FigSize.
type Figure struct {
	size  *figsize.FigSize
	plots [][]*plot.Plot
	cbar  *ColorBar
	faces *faceCache

	// Err records the first error which occurred while styling the
	// figure.  Once set, Render returns this error.
	Err error
}

// NewFigure allocates a figure with one plot for every cell of the grid
// described by fs.  Later changes to the number of rows and columns in fs
// are not reflected in the figure.
func NewFigure(fs *figsize.FigSize) *Figure {
	f := &Figure{
		size:  fs,
		faces: newFaceCache(),
	}
	f.plots = make([][]*plot.Plot, fs.NRows())
	for i := range f.plots {
		row := make([]*plot.Plot, fs.NCols())
		for j := range row {
			row[j] = f.newPlot()
		}
		f.plots[i] = row
	}
	return f
}

func (f *Figure) newPlot() *plot.Plot {
	p := plot.New()
	p.TextHandler = &text.Plain{Fonts: f.faces.cache}
	for _, s := range []*text.Style{
		&p.Title.TextStyle,
		&p.X.Label.TextStyle, &p.Y.Label.TextStyle,
		&p.X.Tick.Label, &p.Y.Tick.Label,
		&p.Legend.TextStyle,
	} {
		s.Handler = p.TextHandler
	}
	return p
}

// Plot returns the plot in the given cell.  Row 0 is at the top.
func (f *Figure) Plot(row, col int) *plot.Plot {
	return f.plots[row][col]
}

// Axes returns a figtext adapter for the plot in the given cell.
func (f *Figure) Axes(row, col int) *Axes {
	return &Axes{fig: f, p: f.plots[row][col]}
}

// Legend returns a figtext adapter for the legend of the given cell.
func (f *Figure) Legend(row, col int) *Legend {
	return &Legend{fig: f, p: f.plots[row][col]}
}

// AddColorBar creates the colour bar of the figure.  If cm is nil, the
// smooth blue-red map of Moreland is used on the range [0, 1].
// An error is returned if fs has no room reserved for a colour bar.
func (f *Figure) AddColorBar(cm palette.ColorMap) (*ColorBar, error) {
	if !f.size.HasColorBar() {
		return nil, errNoColorBar
	}
	if cm == nil {
		cm = moreland.SmoothBlueRed()
		cm.SetMin(0)
		cm.SetMax(1)
	}

	p := f.newPlot()
	bar := &plotter.ColorBar{
		ColorMap: cm,
		Vertical: f.size.ColorBarOrientation() == figsize.Vertical,
	}
	p.Add(bar)
	if bar.Vertical {
		p.HideX()
	} else {
		p.HideY()
	}

	f.cbar = &ColorBar{fig: f, p: p, Bar: bar}
	return f.cbar, nil
}

// ColorBar returns the colour bar of the figure, or nil if AddColorBar has
// not been called.
func (f *Figure) ColorBar() *ColorBar {
	return f.cbar
}

// Render draws the figure and writes it to w.  The format is one of the
// file formats supported by gonum plot, for example "png", "pdf" or "svg".
func (f *Figure) Render(w io.Writer, format string) error {
	if f.Err != nil {
		return f.Err
	}

	width, height, err := f.size.FigureSize()
	if err != nil {
		return err
	}
	args, err := f.size.SubplotsArgs()
	if err != nil {
		return err
	}

	c, err := draw.NewFormattedCanvas(inches(width), inches(height), format)
	if err != nil {
		return err
	}
	dc := draw.New(c)

	region := fraction(dc, args.Left, args.Bottom, args.Right, args.Top)
	spacingH, spacingV := f.size.Spacing()
	tiles := draw.Tiles{
		Rows: len(f.plots),
		PadX: inches(spacingH),
		PadY: inches(spacingV),
	}
	if len(f.plots) > 0 {
		tiles.Cols = len(f.plots[0])
	}

	// The tiles give the data areas.  Axis labels and tick labels go into
	// the surrounding margins.
	m := f.size.Margins()
	for i, row := range f.plots {
		for j, p := range row {
			cell := tiles.At(region, j, i)
			cell.Min.X -= inches(m.Left)
			cell.Min.Y -= inches(m.Bottom)
			cell.Max.X += inches(m.Right)
			cell.Max.Y += inches(m.Top)
			p.Draw(cell)
		}
	}

	if f.cbar != nil {
		r, err := f.size.ColorBarRect()
		if err != nil {
			return err
		}
		if r != nil {
			f.cbar.p.Draw(fraction(dc, r.LLx, r.LLy, r.URx, r.URy))
		}
	}

	_, err = c.WriteTo(w)
	return err
}

func inches(x float64) vg.Length {
	return vg.Length(x) * vg.Inch
}

// fraction returns the part of c between the given fractions of its width
// and height.
func fraction(c draw.Canvas, left, bottom, right, top float64) draw.Canvas {
	w := c.Max.X - c.Min.X
	h := c.Max.Y - c.Min.Y
	return draw.Canvas{
		Canvas: c.Canvas,
		Rectangle: vg.Rectangle{
			Min: vg.Point{X: c.Min.X + vg.Length(left)*w, Y: c.Min.Y + vg.Length(bottom)*h},
			Max: vg.Point{X: c.Min.X + vg.Length(right)*w, Y: c.Min.Y + vg.Length(top)*h},
		},
	}
}

// faceCache holds the fonts available to the text handlers of a figure.
type faceCache struct {
	cache *font.Cache
	known map[string]font.Font
}

func newFaceCache() *faceCache {
	return &faceCache{
		cache: font.NewCache(liberation.Collection()),
		known: make(map[string]font.Font),
	}
}

func orBlack(c color.Color) color.Color {
	if c == nil {
		return color.Black
	}
	return c
}
