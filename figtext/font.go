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
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/postscript/type1"
	"seehuhn.de/go/sfnt"
)

// FontFormat identifies the file format of a font.
type FontFormat int

// These are the supported font file formats.
const (
	FormatSFNT  FontFormat = iota + 1 // TrueType or OpenType
	FormatType1                       // PostScript Type 1, PFA or PFB
)

func (f FontFormat) String() string {
	switch f {
	case FormatSFNT:
		return "sfnt"
	case FormatType1:
		return "type1"
	default:
		return fmt.Sprintf("FontFormat(%d)", int(f))
	}
}

// Font describes the font used for text elements.
//
// The Data slice holds the font file and is shared between clones;
// it must not be modified.
type Font struct {
	Family string
	Weight int // CSS weight, 100 to 900
	Italic bool

	// Size is the font size in points.
	Size float64

	Path   string
	Format FontFormat
	Data   []byte
}

// LoadFont reads a font file and returns a description of the font at the
// given size.  Files ending in ".pfa" or ".pfb" are read as Type 1 fonts,
// everything else as TrueType or OpenType.
func LoadFont(path string, size float64) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("figtext: %w", err)
	}

	F := &Font{
		Size: size,
		Path: path,
		Data: data,
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pfa", ".pfb":
		psFont, err := type1.Read(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("figtext: %s: %w", path, err)
		}
		F.Format = FormatType1
		F.Family = psFont.FontInfo.FamilyName
		F.Weight = weightFromName(psFont.FontInfo.Weight)
		F.Italic = psFont.FontInfo.ItalicAngle != 0
	default:
		info, err := sfnt.Read(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("figtext: %s: %w", path, err)
		}
		F.Format = FormatSFNT
		F.Family = info.FamilyName
		F.Weight = int(info.Weight)
		F.Italic = info.IsItalic
	}
	if F.Weight == 0 {
		F.Weight = 400
	}

	return F, nil
}

// Clone returns a copy of F.
func (F *Font) Clone() *Font {
	res := *F
	return &res
}

// WithSize returns a copy of F with the font size changed.
func (F *Font) WithSize(size float64) *Font {
	res := F.Clone()
	res.Size = size
	return res
}

// weightFromName converts the Weight entry of a Type 1 FontInfo dictionary
// into a numeric weight.
func weightFromName(name string) int {
	key := strings.ToLower(strings.NewReplacer(" ", "", "-", "").Replace(name))
	switch key {
	case "thin", "hairline":
		return 100
	case "extralight", "ultralight":
		return 200
	case "light":
		return 300
	case "medium":
		return 500
	case "semibold", "demibold", "demi":
		return 600
	case "bold":
		return 700
	case "extrabold", "ultrabold", "heavy":
		return 800
	case "black":
		return 900
	default:
		return 400
	}
}
