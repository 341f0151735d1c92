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
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"seehuhn.de/go/figtune/figsize"
	"seehuhn.de/go/figtune/internal/float"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// geometry is the output of the geometry command.
// The colour bar rectangle is given as [x, y, width, height] in figure
// fractions.
type geometry struct {
	Figure      figsize.FigureArgs    `json:"figure"`
	Subplots    figsize.SubplotParams `json:"subplots"`
	ColorBar    []float64             `json:"colorbar,omitempty"`
	Orientation string                `json:"orientation,omitempty"`
}

func (a *app) geometryCmd() *cobra.Command {
	var digits int

	cmd := &cobra.Command{
		Use:   "geometry",
		Short: "print figure size and subplot parameters as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs, err := a.cfg.Figure.Build()
			if err != nil {
				return err
			}
			g, err := computeGeometry(fs)
			if err != nil {
				return err
			}
			g.round(digits)
			a.logger.Debug("geometry computed",
				zap.Float64("width", g.Figure.Width),
				zap.Float64("height", g.Figure.Height))

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(g)
		},
	}
	cmd.Flags().IntVar(&digits, "digits", 6, "number of decimal digits in the output (-1 for full precision)")
	return cmd
}

func computeGeometry(fs *figsize.FigSize) (*geometry, error) {
	fig, err := fs.FigureArgs()
	if err != nil {
		return nil, err
	}
	sub, err := fs.SubplotsArgs()
	if err != nil {
		return nil, err
	}
	r, err := fs.ColorBarRect()
	if err != nil {
		return nil, err
	}

	g := &geometry{
		Figure:      fig,
		Subplots:    sub,
		Orientation: fs.ColorBarOrientation().String(),
	}
	if r != nil {
		g.ColorBar = []float64{r.LLx, r.LLy, r.Dx(), r.Dy()}
	}
	return g, nil
}

func (g *geometry) round(digits int) {
	float.RoundAll(digits, &g.Figure.Width, &g.Figure.Height,
		&g.Subplots.Left, &g.Subplots.Bottom, &g.Subplots.Right, &g.Subplots.Top,
		&g.Subplots.WSpace, &g.Subplots.HSpace)
	for i := range g.ColorBar {
		g.ColorBar[i] = float.Round(g.ColorBar[i], digits)
	}
}
