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

package gonumplot

import (
	"fmt"
	"image/color"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"seehuhn.de/go/figtune/figtext"
)

var (
	_ figtext.Axes     = (*Axes)(nil)
	_ figtext.Text     = (*Text)(nil)
	_ figtext.Spine    = (*spine)(nil)
	_ figtext.Legend   = (*Legend)(nil)
	_ figtext.ColorBar = (*ColorBar)(nil)
)

// Axes adapts a plot to the figtext.Axes interface.
type Axes struct {
	fig *Figure
	p   *plot.Plot
}

// SetFaceColor sets the background colour of the plot.
func (a *Axes) SetFaceColor(c color.Color) {
	a.p.BackgroundColor = c
}

// SetTickColor sets the colour of the tick marks on both axes.
func (a *Axes) SetTickColor(c color.Color) {
	a.p.X.Tick.LineStyle.Color = orBlack(c)
	a.p.Y.Tick.LineStyle.Color = orBlack(c)
}

// Spines returns the lines of the horizontal and vertical axis.
func (a *Axes) Spines() []figtext.Spine {
	return []figtext.Spine{
		(*spine)(&a.p.X.LineStyle),
		(*spine)(&a.p.Y.LineStyle),
	}
}

// MajorTickLabels returns the tick label styles of both axes.
func (a *Axes) MajorTickLabels() []figtext.Text {
	return []figtext.Text{
		a.fig.text(&a.p.X.Tick.Label),
		a.fig.text(&a.p.Y.Tick.Label),
	}
}

// MinorTickLabels returns nil, since gonum plot does not label minor
// ticks.
func (a *Axes) MinorTickLabels() []figtext.Text {
	return nil
}

// Labels returns the title and the two axis labels of the plot.
// These are not touched by figtext.FigText.ApplyAxes.
func (a *Axes) Labels() []figtext.Text {
	return []figtext.Text{
		a.fig.text(&a.p.Title.TextStyle),
		a.fig.text(&a.p.X.Label.TextStyle),
		a.fig.text(&a.p.Y.Label.TextStyle),
	}
}

type spine draw.LineStyle

func (s *spine) SetColor(c color.Color) {
	s.Color = orBlack(c)
}

// Legend adapts the legend of a plot to the figtext.Legend interface.
type Legend struct {
	fig *Figure
	p   *plot.Plot
}

// Texts returns the text style shared by all legend entries.
func (l *Legend) Texts() []figtext.Text {
	return []figtext.Text{l.fig.text(&l.p.Legend.TextStyle)}
}

// ColorBar is the colour bar of a figure.
type ColorBar struct {
	fig *Figure
	p   *plot.Plot

	Bar *plotter.ColorBar
}

// Plot returns the plot which holds the colour bar.
func (cb *ColorBar) Plot() *plot.Plot {
	return cb.p
}

// Axes returns the axes the colour bar is drawn into.
func (cb *ColorBar) Axes() figtext.Axes {
	return &Axes{fig: cb.fig, p: cb.p}
}

// SetOutlineColor sets the colour of the lines around the colour bar.
func (cb *ColorBar) SetOutlineColor(c color.Color) {
	cb.p.X.LineStyle.Color = orBlack(c)
	cb.p.Y.LineStyle.Color = orBlack(c)
}

// Text adapts a text style of a plot to the figtext.Text interface.
type Text struct {
	fig   *Figure
	style *text.Style
}

func (f *Figure) text(style *text.Style) *Text {
	return &Text{fig: f, style: style}
}

// SetUseTeX selects the LaTeX or the plain text handler.
func (t *Text) SetUseTeX(tex bool) {
	if tex {
		t.style.Handler = &text.Latex{Fonts: t.fig.faces.cache}
	} else {
		t.style.Handler = &text.Plain{Fonts: t.fig.faces.cache}
	}
}

// SetColor sets the text colour.  A nil colour selects black.
func (t *Text) SetColor(c color.Color) {
	t.style.Color = orBlack(c)
}

// SetFontSize sets the font size in points.  Non-positive sizes leave the
// size unchanged.
func (t *Text) SetFontSize(size float64) {
	if size > 0 {
		t.style.Font.Size = vg.Points(size)
	}
}

// SetFont selects the given font.  TrueType and OpenType fonts are added to
// the font cache of the figure; for other formats only the size is used.
// Errors are recorded in the Err field of the figure.
func (t *Text) SetFont(F *figtext.Font) {
	if F == nil {
		return
	}
	fnt, ok, err := t.fig.faces.register(F)
	if err != nil {
		if t.fig.Err == nil {
			t.fig.Err = err
		}
	} else if ok {
		t.style.Font.Typeface = fnt.Typeface
		t.style.Font.Variant = fnt.Variant
		t.style.Font.Style = fnt.Style
		t.style.Font.Weight = fnt.Weight
	}
	t.SetFontSize(F.Size)
}

// register adds F to the font cache, unless this has been done before.
// The second return value is false if F cannot be used by gonum plot.
func (fc *faceCache) register(F *figtext.Font) (font.Font, bool, error) {
	if F.Format != figtext.FormatSFNT || F.Family == "" {
		return font.Font{}, false, nil
	}

	key := F.Path
	if key == "" {
		key = fmt.Sprintf("%s/%d/%t", F.Family, F.Weight, F.Italic)
	}
	if fnt, ok := fc.known[key]; ok {
		return fnt, true, nil
	}

	otf, err := opentype.Parse(F.Data)
	if err != nil {
		return font.Font{}, false, fmt.Errorf("gonumplot: font %q: %w", F.Family, err)
	}

	fnt := font.Font{
		Typeface: font.Typeface(F.Family),
		Weight:   cssWeight(F.Weight),
	}
	if F.Italic {
		fnt.Style = xfont.StyleItalic
	}
	fc.cache.Add(font.Collection{{Font: fnt, Face: otf}})
	fc.known[key] = fnt

	return fnt, true, nil
}

// cssWeight converts a numeric font weight into the steps used by
// golang.org/x/image/font.
func cssWeight(w int) xfont.Weight {
	if w == 0 {
		return xfont.WeightNormal
	}
	step := (w - 400) / 100
	step = max(step, int(xfont.WeightThin))
	step = min(step, int(xfont.WeightBlack))
	return xfont.Weight(step)
}
