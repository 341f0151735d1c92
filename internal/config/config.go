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

// Package config reads the settings of the figtune command from a
// configuration file, environment variables and command line flags.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"seehuhn.de/go/figtune/figsize"
	"seehuhn.de/go/figtune/figtext"
	"seehuhn.de/go/figtune/optional"
)

// Environment variables which configure the font used for all text.
// FIGTUNE_FONT_SIZE falls back to text.size when it is unset or empty.
const (
	EnvFontPath = "FIGTUNE_FONT_PATH"
	EnvFontSize = "FIGTUNE_FONT_SIZE"
)

// Config holds the complete configuration.
type Config struct {
	Figure FigureConfig `mapstructure:"figure" yaml:"figure"`
	Text   TextConfig   `mapstructure:"text" yaml:"text"`
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
}

// FigureConfig describes the geometry of a figure.
type FigureConfig struct {
	Width      float64        `mapstructure:"width" yaml:"width"`
	WidthMode  string         `mapstructure:"width_mode" yaml:"width_mode"`
	Height     float64        `mapstructure:"height" yaml:"height"`
	HeightMode string         `mapstructure:"height_mode" yaml:"height_mode"`
	Rows       int            `mapstructure:"rows" yaml:"rows"`
	Cols       int            `mapstructure:"cols" yaml:"cols"`
	Margins    MarginsConfig  `mapstructure:"margins" yaml:"margins"`
	SpacingH   *float64       `mapstructure:"spacing_h" yaml:"spacing_h"`
	SpacingV   *float64       `mapstructure:"spacing_v" yaml:"spacing_v"`
	ColorBar   ColorBarConfig `mapstructure:"colorbar" yaml:"colorbar"`
}

// MarginsConfig holds the figure margins in inches.
type MarginsConfig struct {
	Left   float64 `mapstructure:"left" yaml:"left"`
	Bottom float64 `mapstructure:"bottom" yaml:"bottom"`
	Right  float64 `mapstructure:"right" yaml:"right"`
	Top    float64 `mapstructure:"top" yaml:"top"`
}

// ColorBarConfig describes the room reserved for a colour bar.
type ColorBarConfig struct {
	Side  string  `mapstructure:"side" yaml:"side"`
	Width float64 `mapstructure:"width" yaml:"width"`
	Pad   float64 `mapstructure:"pad" yaml:"pad"`
}

// TextConfig describes the default text style.
type TextConfig struct {
	Size     float64 `mapstructure:"size" yaml:"size"`
	Color    string  `mapstructure:"color" yaml:"color"`
	TeX      bool    `mapstructure:"tex" yaml:"tex"`
	FontPath string  `mapstructure:"font_path" yaml:"font_path"`
	FontSize float64 `mapstructure:"font_size" yaml:"font_size"`
}

// LoggerConfig configures the logger of the command line tool.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// SetDefaults registers the default values of all settings with v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("figure.width", 6.4)
	v.SetDefault("figure.width_mode", "total")
	v.SetDefault("figure.height", 4.8)
	v.SetDefault("figure.height_mode", "total")
	v.SetDefault("figure.rows", 1)
	v.SetDefault("figure.cols", 1)
	v.SetDefault("figure.margins.left", 0.8)
	v.SetDefault("figure.margins.bottom", 0.6)
	v.SetDefault("figure.margins.right", 0.2)
	v.SetDefault("figure.margins.top", 0.3)
	v.SetDefault("figure.colorbar.side", "none")
	v.SetDefault("figure.colorbar.width", 0.15)
	v.SetDefault("figure.colorbar.pad", 0.1)

	v.SetDefault("text.size", 10.0)
	v.SetDefault("text.color", "black")
	v.SetDefault("text.tex", false)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "auto")
	v.SetDefault("logger.service_name", "figtune")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.compress", false)
}

// Load decodes the configuration held by v, after registering defaults
// and the font environment variables.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	if err := v.BindEnv("text.font_path", EnvFontPath); err != nil {
		return nil, err
	}
	if err := v.BindEnv("text.font_size", EnvFontSize); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// NewDefaultConfig returns a configuration populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// Build constructs the figure geometry described by fc.
func (fc *FigureConfig) Build() (*figsize.FigSize, error) {
	modeH, err := figsize.ParseMode(fc.WidthMode)
	if err != nil {
		return nil, fmt.Errorf("config: figure.width_mode: %w", err)
	}
	modeV, err := figsize.ParseMode(fc.HeightMode)
	if err != nil {
		return nil, fmt.Errorf("config: figure.height_mode: %w", err)
	}

	fs := figsize.New(&figsize.Options{
		SizeH: figsize.Size{Mode: modeH, Value: fc.Width},
		SizeV: figsize.Size{Mode: modeV, Value: fc.Height},
		NRows: fc.Rows,
		NCols: fc.Cols,
		Margins: figsize.Margins{
			Left:   fc.Margins.Left,
			Bottom: fc.Margins.Bottom,
			Right:  fc.Margins.Right,
			Top:    fc.Margins.Top,
		},
	})
	if fc.SpacingH != nil {
		fs.SetSpacingH(optional.NewFloat(*fc.SpacingH))
	}
	if fc.SpacingV != nil {
		fs.SetSpacingV(optional.NewFloat(*fc.SpacingV))
	}
	fs.SetColorBarSide(figsize.ParseSide(fc.ColorBar.Side))
	fs.SetColorBarWidth(fc.ColorBar.Width)
	fs.SetColorBarPad(fc.ColorBar.Pad)

	return fs, nil
}

// Build constructs the text styler described by tc.
// The font file, if any, is loaded at this point.
func (tc *TextConfig) Build() (*figtext.FigText, error) {
	col, err := figtext.ParseColor(tc.Color)
	if err != nil {
		return nil, fmt.Errorf("config: text.color: %w", err)
	}
	return figtext.New(&figtext.Config{
		Size:     tc.Size,
		Color:    col,
		TeX:      tc.TeX,
		FontPath: tc.FontPath,
		FontSize: tc.FontSize,
	})
}
