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
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/figtune/optional"
)

type fakeText struct {
	TeX      bool
	Color    color.Color
	ColorSet bool
	Size     float64
	SizeSet  bool
	Font     *Font
}

func (t *fakeText) SetUseTeX(tex bool) { t.TeX = tex }

func (t *fakeText) SetColor(c color.Color) {
	t.Color = c
	t.ColorSet = true
}

func (t *fakeText) SetFontSize(size float64) {
	t.Size = size
	t.SizeSet = true
}

func (t *fakeText) SetFont(F *Font) { t.Font = F }

type fakeSpine struct {
	Color color.Color
}

func (s *fakeSpine) SetColor(c color.Color) { s.Color = c }

type fakeAxes struct {
	Face   color.Color
	Tick   color.Color
	spines []*fakeSpine
	major  []*fakeText
	minor  []*fakeText
}

func newFakeAxes() *fakeAxes {
	return &fakeAxes{
		spines: []*fakeSpine{{}, {}, {}, {}},
		major:  []*fakeText{{}, {}},
		minor:  []*fakeText{{Size: 4}},
	}
}

func (ax *fakeAxes) SetFaceColor(c color.Color) { ax.Face = c }
func (ax *fakeAxes) SetTickColor(c color.Color) { ax.Tick = c }

func (ax *fakeAxes) Spines() []Spine {
	res := make([]Spine, len(ax.spines))
	for i, s := range ax.spines {
		res[i] = s
	}
	return res
}

func (ax *fakeAxes) MajorTickLabels() []Text { return texts(ax.major) }
func (ax *fakeAxes) MinorTickLabels() []Text { return texts(ax.minor) }

func texts(tt []*fakeText) []Text {
	res := make([]Text, len(tt))
	for i, t := range tt {
		res[i] = t
	}
	return res
}

type fakeLegend struct {
	items []*fakeText
}

func (lg *fakeLegend) Texts() []Text { return texts(lg.items) }

type fakeColorBar struct {
	ax      *fakeAxes
	Outline color.Color
}

func (cb *fakeColorBar) Axes() Axes                    { return cb.ax }
func (cb *fakeColorBar) SetOutlineColor(c color.Color) { cb.Outline = c }

var (
	gray = color.Gray{Y: 0x40}
	red  = color.RGBA{R: 255, A: 255}
)

func TestApplyTextSizeUnchanged(t *testing.T) {
	ft, err := New(&Config{Size: 10, Color: gray})
	if err != nil {
		t.Fatal(err)
	}

	txt := &fakeText{Size: 3}
	ft.ApplyText(txt, optional.Override[color.Color]{}, optional.Unchanged[float64]())

	want := &fakeText{Color: gray, ColorSet: true, Size: 3}
	if d := cmp.Diff(want, txt); d != "" {
		t.Errorf("text (-want +got):\n%s", d)
	}
}

func TestApplyText(t *testing.T) {
	font := &Font{Family: "Go", Size: 10}

	type testCase struct {
		name  string
		cfg   Config
		color optional.Override[color.Color]
		size  optional.Override[float64]
		want  *fakeText
	}
	cases := []testCase{
		{
			name: "defaults",
			cfg:  Config{Size: 10, Color: gray, TeX: true},
			want: &fakeText{TeX: true, Color: gray, ColorSet: true, Size: 10, SizeSet: true},
		},
		{
			name:  "overrides",
			cfg:   Config{Size: 10, Color: gray},
			color: optional.Value[color.Color](red),
			size:  optional.Value(14.0),
			want:  &fakeText{Color: red, ColorSet: true, Size: 14, SizeSet: true},
		},
		{
			name:  "colour unchanged",
			cfg:   Config{Size: 10, Color: gray},
			color: optional.Unchanged[color.Color](),
			want:  &fakeText{Size: 10, SizeSet: true},
		},
		{
			name: "font description",
			cfg:  Config{Size: 10, Font: font},
			want: &fakeText{ColorSet: true, Font: font},
		},
		{
			name: "resized font description",
			cfg:  Config{Size: 10, Font: font},
			size: optional.Value(6.0),
			want: &fakeText{ColorSet: true, Font: &Font{Family: "Go", Size: 6}},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ft, err := New(&c.cfg)
			if err != nil {
				t.Fatal(err)
			}
			txt := &fakeText{}
			ft.ApplyText(txt, c.color, c.size)
			if d := cmp.Diff(c.want, txt); d != "" {
				t.Errorf("text (-want +got):\n%s", d)
			}
		})
	}

	if font.Size != 10 {
		t.Errorf("stored font description was modified: size %g", font.Size)
	}
}

func TestApplyAxes(t *testing.T) {
	ft, err := New(&Config{Size: 10, Color: gray})
	if err != nil {
		t.Fatal(err)
	}

	ax := newFakeAxes()
	ft.ApplyAxes(ax, nil, 12)

	if ax.Face != color.Transparent {
		t.Errorf("face colour: got %v, want transparent", ax.Face)
	}
	if ax.Tick != gray {
		t.Errorf("tick colour: got %v, want %v", ax.Tick, gray)
	}
	for i, s := range ax.spines {
		if s.Color != gray {
			t.Errorf("spine %d: got %v, want %v", i, s.Color, gray)
		}
	}
	for i, txt := range ax.major {
		want := &fakeText{Color: gray, ColorSet: true, Size: 12, SizeSet: true}
		if d := cmp.Diff(want, txt); d != "" {
			t.Errorf("major label %d (-want +got):\n%s", i, d)
		}
	}
	for i, txt := range ax.minor {
		want := &fakeText{Color: gray, ColorSet: true, Size: 4}
		if d := cmp.Diff(want, txt); d != "" {
			t.Errorf("minor label %d (-want +got):\n%s", i, d)
		}
	}
}

func TestApplyColorBar(t *testing.T) {
	ft, err := New(&Config{Size: 10, Color: gray})
	if err != nil {
		t.Fatal(err)
	}

	cb := &fakeColorBar{ax: newFakeAxes()}
	ft.ApplyColorBar(cb, red, 0)

	if cb.Outline != red {
		t.Errorf("outline: got %v, want %v", cb.Outline, red)
	}
	if cb.ax.Tick != red {
		t.Errorf("ticks: got %v, want %v", cb.ax.Tick, red)
	}
	want := &fakeText{Color: red, ColorSet: true, Size: 10, SizeSet: true}
	if d := cmp.Diff(want, cb.ax.major[0]); d != "" {
		t.Errorf("tick label (-want +got):\n%s", d)
	}
}

func TestApplyLegend(t *testing.T) {
	ft, err := New(&Config{Size: 8, TeX: true})
	if err != nil {
		t.Fatal(err)
	}

	lg := &fakeLegend{items: []*fakeText{{}, {}, {}}}
	ft.ApplyLegend(lg, nil, 0)

	for i, txt := range lg.items {
		want := &fakeText{TeX: true, ColorSet: true, Size: 8, SizeSet: true}
		if d := cmp.Diff(want, txt); d != "" {
			t.Errorf("item %d (-want +got):\n%s", i, d)
		}
	}
}

func TestTextArgs(t *testing.T) {
	ft, err := New(&Config{Size: 10, Color: gray})
	if err != nil {
		t.Fatal(err)
	}

	got := ft.TextArgs(nil, 0, optional.Bool{})
	want := TextArgs{Color: gray, FontSize: 10}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("defaults (-want +got):\n%s", d)
	}

	got = ft.TextArgs(red, 7, optional.NewBool(true))
	want = TextArgs{UseTeX: true, Color: red, FontSize: 7}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("overrides (-want +got):\n%s", d)
	}

	font := &Font{Family: "Go", Size: 10}
	ft.SetFont(font)
	ft.SetColor(nil)
	got = ft.TextArgs(nil, 7, optional.Bool{})
	want = TextArgs{Font: &Font{Family: "Go", Size: 7}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("font description (-want +got):\n%s", d)
	}
	if got.Font == font {
		t.Error("font description was not copied")
	}
	if font.Size != 10 {
		t.Errorf("stored font description was modified: size %g", font.Size)
	}
}
