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

// Figtune computes figure geometry, escapes plot labels and renders demo
// figures.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	a := &app{}
	if err := a.rootCmd().Execute(); err != nil {
		a.fail(err)
		os.Exit(1)
	}
	a.sync()
}

func (a *app) fail(err error) {
	if a.logger != nil {
		a.logger.Error("command failed", zap.Error(err))
		a.sync()
		return
	}
	fmt.Fprintln(os.Stderr, "figtune:", err)
}
