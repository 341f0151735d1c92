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
	"image/color"

	"seehuhn.de/go/figtune/optional"
)

// Text is a single text element of a plot.
type Text interface {
	SetUseTeX(tex bool)

	// SetColor sets the text colour.  A nil colour selects the engine
	// default.
	SetColor(c color.Color)

	SetFontSize(size float64)
	SetFont(F *Font)
}

// Spine is one of the lines bounding the data area of an Axes.
type Spine interface {
	SetColor(c color.Color)
}

// Axes is a single plot.
type Axes interface {
	SetFaceColor(c color.Color)
	SetTickColor(c color.Color)
	Spines() []Spine
	MajorTickLabels() []Text
	MinorTickLabels() []Text
}

// Legend is the legend of a plot.
type Legend interface {
	Texts() []Text
}

// ColorBar is a colour bar, drawn into its own Axes.
type ColorBar interface {
	Axes() Axes
	SetOutlineColor(c color.Color)
}

// TextArgs holds the style settings for a new text element.
type TextArgs struct {
	UseTeX bool

	// Color is nil if neither an override nor a default colour is set.
	Color color.Color

	// FontSize is used when no font description is configured.
	// Zero means that the engine default applies.
	FontSize float64

	// Font is a private copy of the configured font description,
	// or nil.
	Font *Font
}

// TextArgs returns the style settings for a new text element.
// A nil colour or a zero size select the defaults stored in ft,
// an unset tex selects the TeX setting of ft.
func (ft *FigText) TextArgs(c color.Color, size float64, tex optional.Bool) TextArgs {
	res := TextArgs{
		UseTeX: tex.Or(ft.tex),
		Color:  ft.resolveColor(c),
	}

	if ft.font == nil {
		res.FontSize = size
		if size == 0 {
			res.FontSize = ft.size
		}
	} else {
		res.Font = ft.font.Clone()
		if size != 0 {
			res.Font.Size = size
		}
	}

	return res
}

// ApplyAxes styles the background, ticks, spines and tick labels of ax.
// A nil colour or a zero size select the defaults stored in ft.
//
// The background is made transparent.  Minor tick labels only get their
// colour updated.
func (ft *FigText) ApplyAxes(ax Axes, c color.Color, size float64) {
	ax.SetFaceColor(color.Transparent)

	col := ft.resolveColor(c)
	ax.SetTickColor(col)
	for _, spine := range ax.Spines() {
		spine.SetColor(col)
	}

	colOverride := colorOverride(c)
	sz := sizeOverride(size)
	for _, t := range ax.MajorTickLabels() {
		ft.ApplyText(t, colOverride, sz)
	}
	for _, t := range ax.MinorTickLabels() {
		ft.ApplyText(t, colOverride, optional.Unchanged[float64]())
	}
}

// ApplyColorBar styles the axes and the outline of a colour bar.
func (ft *FigText) ApplyColorBar(cb ColorBar, c color.Color, size float64) {
	ft.ApplyAxes(cb.Axes(), c, size)
	cb.SetOutlineColor(ft.resolveColor(c))
}

// ApplyLegend styles all text elements of a legend.
func (ft *FigText) ApplyLegend(lg Legend, c color.Color, size float64) {
	colOverride := colorOverride(c)
	sz := sizeOverride(size)
	for _, t := range lg.Texts() {
		ft.ApplyText(t, colOverride, sz)
	}
}

// ApplyText styles a single text element.
//
// The TeX flag of t is always set.  The colour and the font size are
// taken from the overrides, fall back to the defaults stored in ft, or
// are left alone if the override is [optional.Unchanged].  If a font
// description is configured, it is used instead of the plain font size.
func (ft *FigText) ApplyText(t Text, c optional.Override[color.Color], size optional.Override[float64]) {
	t.SetUseTeX(ft.tex)

	if col, ok := c.Resolve(ft.color); ok {
		t.SetColor(col)
	}

	if size.IsUnchanged() {
		return
	}
	if ft.font == nil {
		s, _ := size.Resolve(ft.size)
		t.SetFontSize(s)
	} else if s, ok := size.Get(); ok {
		t.SetFont(ft.font.WithSize(s))
	} else {
		t.SetFont(ft.font)
	}
}

func (ft *FigText) resolveColor(c color.Color) color.Color {
	if c != nil {
		return c
	}
	return ft.color
}

func colorOverride(c color.Color) optional.Override[color.Color] {
	if c == nil {
		return optional.Override[color.Color]{}
	}
	return optional.Value(c)
}

func sizeOverride(size float64) optional.Override[float64] {
	if size == 0 {
		return optional.Override[float64]{}
	}
	return optional.Value(size)
}
