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

	"github.com/spf13/cobra"

	"seehuhn.de/go/figtune/optional"
)

func (a *app) escapeCmd() *cobra.Command {
	var math, forceTeX, plain bool

	cmd := &cobra.Command{
		Use:   "escape TEXT",
		Short: "escape a label for the plotting engine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var tex optional.Bool
			switch {
			case forceTeX && plain:
				return errors.New("--tex and --plain are mutually exclusive")
			case forceTeX:
				tex.Set(true)
			case plain:
				tex.Set(false)
			}

			ft, err := a.cfg.Text.Build()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), ft.Escape(args[0], math, tex))
			return err
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&math, "math", true, "treat the text as possibly containing maths")
	flags.BoolVar(&forceTeX, "tex", false, "escape for TeX rendering")
	flags.BoolVar(&plain, "plain", false, "escape for the built-in maths renderer")
	return cmd
}
