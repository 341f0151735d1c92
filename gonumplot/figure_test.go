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
	"bytes"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"seehuhn.de/go/figtune/figsize"
	"seehuhn.de/go/figtune/figtext"
	"seehuhn.de/go/figtune/optional"
)

func testGeometry(rows, cols int) *figsize.FigSize {
	return figsize.New(&figsize.Options{
		SizeH: figsize.AxSize(2),
		SizeV: figsize.RatioSize(0.75),
		NRows: rows,
		NCols: cols,
		Margins: figsize.Margins{
			Left: 0.6, Bottom: 0.5, Right: 0.2, Top: 0.3,
		},
	})
}

func TestNewFigure(t *testing.T) {
	fig := NewFigure(testGeometry(2, 3))
	if len(fig.plots) != 2 || len(fig.plots[0]) != 3 {
		t.Fatalf("got %d×%d plots, want 2×3", len(fig.plots), len(fig.plots[0]))
	}
	if fig.Plot(1, 2) == fig.Plot(0, 0) {
		t.Error("cells share a plot")
	}
	if fig.ColorBar() != nil {
		t.Error("unexpected colour bar")
	}
}

func TestApplyAxes(t *testing.T) {
	fig := NewFigure(testGeometry(1, 1))
	ft, err := figtext.New(&figtext.Config{
		Size:  12,
		Color: color.Gray{Y: 0x30},
		TeX:   true,
	})
	if err != nil {
		t.Fatal(err)
	}

	ft.ApplyAxes(fig.Axes(0, 0), nil, 0)

	p := fig.Plot(0, 0)
	if p.BackgroundColor != color.Transparent {
		t.Errorf("background: got %v, want transparent", p.BackgroundColor)
	}
	want := color.Gray{Y: 0x30}
	for name, c := range map[string]color.Color{
		"x tick":       p.X.Tick.LineStyle.Color,
		"y tick":       p.Y.Tick.LineStyle.Color,
		"x axis":       p.X.LineStyle.Color,
		"y axis":       p.Y.LineStyle.Color,
		"x tick label": p.X.Tick.Label.Color,
		"y tick label": p.Y.Tick.Label.Color,
	} {
		if c != want {
			t.Errorf("%s colour: got %v, want %v", name, c, want)
		}
	}
	if p.X.Tick.Label.Font.Size != vg.Points(12) {
		t.Errorf("tick label size: got %v, want 12pt", p.X.Tick.Label.Font.Size)
	}
	if _, ok := p.Y.Tick.Label.Handler.(*text.Latex); !ok {
		t.Errorf("tick label handler: got %T, want *text.Latex", p.Y.Tick.Label.Handler)
	}
	if _, ok := p.Title.TextStyle.Handler.(*text.Plain); !ok {
		t.Errorf("title handler changed to %T", p.Title.TextStyle.Handler)
	}
}

func TestApplyLabelsAndLegend(t *testing.T) {
	fig := NewFigure(testGeometry(1, 1))
	ft, err := figtext.New(&figtext.Config{Size: 9})
	if err != nil {
		t.Fatal(err)
	}

	red := color.RGBA{R: 255, A: 255}
	for _, txt := range fig.Axes(0, 0).Labels() {
		ft.ApplyText(txt, optional.Value[color.Color](red), optional.Unchanged[float64]())
	}
	ft.ApplyLegend(fig.Legend(0, 0), nil, 7)

	p := fig.Plot(0, 0)
	if p.Title.TextStyle.Color != red || p.X.Label.TextStyle.Color != red {
		t.Error("label colours not applied")
	}
	if p.Legend.TextStyle.Font.Size != vg.Points(7) {
		t.Errorf("legend size: got %v, want 7pt", p.Legend.TextStyle.Font.Size)
	}
	// no default colour: engine default
	if p.Legend.TextStyle.Color != color.Black {
		t.Errorf("legend colour: got %v, want black", p.Legend.TextStyle.Color)
	}
}

func TestSetFont(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Go-Regular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	ft, err := figtext.New(&figtext.Config{FontPath: path, FontSize: 11})
	if err != nil {
		t.Fatal(err)
	}

	fig := NewFigure(testGeometry(1, 2))
	ft.ApplyAxes(fig.Axes(0, 0), nil, 0)
	ft.ApplyAxes(fig.Axes(0, 1), nil, 0)
	if fig.Err != nil {
		t.Fatal(fig.Err)
	}

	style := fig.Plot(0, 1).X.Tick.Label
	if style.Font.Typeface != font.Typeface(ft.Font().Family) {
		t.Errorf("typeface: got %q, want %q", style.Font.Typeface, ft.Font().Family)
	}
	if style.Font.Size != vg.Points(11) {
		t.Errorf("size: got %v, want 11pt", style.Font.Size)
	}
	if len(fig.faces.known) != 1 {
		t.Errorf("font registered %d times", len(fig.faces.known))
	}

	var buf bytes.Buffer
	if err := fig.Render(&buf, "png"); err != nil {
		t.Fatal(err)
	}
}

func TestBrokenFont(t *testing.T) {
	fig := NewFigure(testGeometry(1, 1))
	bad := &figtext.Font{
		Family: "Broken",
		Size:   10,
		Format: figtext.FormatSFNT,
		Data:   []byte("not a font"),
	}
	fig.Axes(0, 0).MajorTickLabels()[0].SetFont(bad)
	if fig.Err == nil {
		t.Fatal("expected an error")
	}
	if err := fig.Render(&bytes.Buffer{}, "png"); err != fig.Err {
		t.Errorf("Render: got %v, want %v", err, fig.Err)
	}
}

func TestColorBar(t *testing.T) {
	fs := testGeometry(1, 1)
	fig := NewFigure(fs)
	if _, err := fig.AddColorBar(nil); err == nil {
		t.Error("expected an error without room for a colour bar")
	}

	fs.SetColorBarSide(figsize.Right)
	fs.SetColorBarWidth(0.2)
	fs.SetColorBarPad(0.1)
	cb, err := fig.AddColorBar(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !cb.Bar.Vertical {
		t.Error("colour bar on the right should be vertical")
	}
	if fig.ColorBar() != cb {
		t.Error("colour bar not stored")
	}

	ft, err := figtext.New(&figtext.Config{Size: 8, Color: color.Gray{Y: 0x50}})
	if err != nil {
		t.Fatal(err)
	}
	ft.ApplyColorBar(cb, nil, 0)
	if cb.Plot().Y.LineStyle.Color != (color.Gray{Y: 0x50}) {
		t.Errorf("outline colour: got %v", cb.Plot().Y.LineStyle.Color)
	}
	if cb.Plot().BackgroundColor != color.Transparent {
		t.Errorf("colour bar background: got %v", cb.Plot().BackgroundColor)
	}
}

func TestRender(t *testing.T) {
	fs := testGeometry(2, 2)
	fs.SetColorBarSide(figsize.Top)
	fs.SetColorBarWidth(0.8)
	fs.SetColorBarPad(0.2)

	fig := NewFigure(fs)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			p := fig.Plot(i, j)
			fn := plotter.NewFunction(math.Sin)
			p.Add(fn)
			p.X.Min, p.X.Max = 0, 2*math.Pi
			p.Y.Min, p.Y.Max = -1, 1
		}
	}
	if _, err := fig.AddColorBar(nil); err != nil {
		t.Fatal(err)
	}

	for _, format := range []string{"png", "svg"} {
		var buf bytes.Buffer
		if err := fig.Render(&buf, format); err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if buf.Len() == 0 {
			t.Errorf("%s: no output", format)
		}
	}

	var buf bytes.Buffer
	if err := fig.Render(&buf, "png"); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a PNG file")
	}

	if err := fig.Render(&bytes.Buffer{}, "bmp-unknown"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestRenderBothRatio(t *testing.T) {
	fs := figsize.New(&figsize.Options{
		SizeH: figsize.RatioSize(1),
		SizeV: figsize.RatioSize(1),
	})
	err := NewFigure(fs).Render(&bytes.Buffer{}, "png")
	if err != figsize.ErrBothRatio {
		t.Errorf("got %v, want %v", err, figsize.ErrBothRatio)
	}
}

func TestCSSWeight(t *testing.T) {
	cases := map[int]int{0: 0, 100: -3, 400: 0, 700: 3, 900: 5, 1000: 5, 50: -3}
	for in, want := range cases {
		if got := int(cssWeight(in)); got != want {
			t.Errorf("cssWeight(%d) = %d, want %d", in, got, want)
		}
	}
}
