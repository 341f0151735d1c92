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
	"strings"

	"seehuhn.de/go/figtune/optional"
)

var texEscaper = strings.NewReplacer(
	"_", `\_`,
	"^", `\^`,
	"<", "$<$",
	">", "$>$",
)

// Escape adds the escape sequences needed to run text through the TeX or
// mathtext processor.
//
// The math flag indicates that the text may contain mathematical notation.
// If tex is unset, the TeX setting of ft is used.
//
// With TeX enabled, math text is set upright in math mode with spaces
// turned into ties, and other text has "_", "^", "<" and ">" escaped.
// Without TeX, every "$...$" pair in math text is wrapped as
// "$\mathdefault{...}$"; if there is no such pair, text which contains
// "^", "_" or "\" is wrapped as a whole.  All other text is returned
// unchanged.
func (ft *FigText) Escape(text string, math bool, tex optional.Bool) string {
	if tex.Or(ft.tex) {
		if math {
			return `$\mathrm{` + strings.ReplaceAll(text, " ", "~") + `}$`
		}
		return texEscaper.Replace(text)
	}

	if !math {
		return text
	}
	if strings.Count(text, "$") >= 2 {
		return escapeDelimited(text)
	}
	if strings.ContainsAny(text, `^_\`) {
		return mathDefault(text)
	}
	return text
}

func mathDefault(s string) string {
	return `$\mathdefault{` + strings.ReplaceAll(s, " ", `\ `) + `}$`
}

// escapeDelimited wraps the contents of every "$...$" pair.
// An unpaired final "$" and everything after it are copied verbatim.
func escapeDelimited(text string) string {
	var b strings.Builder
	for {
		start := strings.IndexByte(text, '$')
		if start < 0 {
			break
		}
		end := strings.IndexByte(text[start+1:], '$')
		if end < 0 {
			break
		}
		end += start + 1

		b.WriteString(text[:start])
		b.WriteString(mathDefault(text[start+1 : end]))
		text = text[end+1:]
	}
	b.WriteString(text)
	return b.String()
}
