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

package main

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot/plotter"

	"seehuhn.de/go/figtune/figsize"
	"seehuhn.de/go/figtune/figtext"
	"seehuhn.de/go/figtune/gonumplot"
	"seehuhn.de/go/figtune/optional"
)

func (a *app) renderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render OUTPUT",
		Short: "render a demo figure; the format is taken from the file name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := args[0]
			format := strings.ToLower(strings.TrimPrefix(filepath.Ext(out), "."))
			if format == "" {
				return fmt.Errorf("%s: cannot determine output format", out)
			}

			fs, err := a.cfg.Figure.Build()
			if err != nil {
				return err
			}
			ft, err := a.cfg.Text.Build()
			if err != nil {
				return err
			}
			fig, err := demoFigure(fs, ft)
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			err = fig.Render(f, format)
			err = errors.Join(err, f.Close())
			if err != nil {
				os.Remove(out)
				return err
			}

			w, h, _ := fs.FigureSize()
			a.logger.Info("figure written",
				zap.String("file", out),
				zap.Float64("width", w),
				zap.Float64("height", h))
			return nil
		},
	}
}

// demoFigure fills every cell of a new figure with a damped sine wave and
// applies the text style ft to all axes, labels and legends.
func demoFigure(fs *figsize.FigSize, ft *figtext.FigText) (*gonumplot.Figure, error) {
	fig := gonumplot.NewFigure(fs)
	var (
		tex      optional.Bool
		defColor optional.Override[color.Color]
		defSize  optional.Override[float64]
	)

	for i := range fs.NRows() {
		for j := range fs.NCols() {
			k := float64(i*fs.NCols() + j + 1)
			fn := plotter.NewFunction(func(x float64) float64 {
				return math.Exp(-x/(4*k)) * math.Sin(k*x)
			})
			fn.Samples = 200

			p := fig.Plot(i, j)
			p.Add(fn)
			p.Legend.Add(fmt.Sprintf("k = %g", k), fn)
			p.X.Min, p.X.Max = 0, 2*math.Pi
			p.Y.Min, p.Y.Max = -1, 1
			p.Title.Text = ft.Escape(fmt.Sprintf("panel %d", int(k)), false, tex)
			p.X.Label.Text = ft.Escape("x", false, tex)
			p.Y.Label.Text = ft.Escape("amplitude", false, tex)

			ax := fig.Axes(i, j)
			ft.ApplyAxes(ax, nil, 0)
			for _, t := range ax.Labels() {
				ft.ApplyText(t, defColor, defSize)
			}
			ft.ApplyLegend(fig.Legend(i, j), nil, 0.8*ft.Size())
		}
	}

	if fs.HasColorBar() {
		cb, err := fig.AddColorBar(nil)
		if err != nil {
			return nil, err
		}
		ft.ApplyColorBar(cb, nil, 0)
	}

	return fig, fig.Err
}
