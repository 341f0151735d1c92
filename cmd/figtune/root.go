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
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"seehuhn.de/go/figtune/internal/config"
	"seehuhn.de/go/figtune/internal/logging"
)

// app holds the state shared by all subcommands.
type app struct {
	cfgFile string
	v       *viper.Viper
	cfg     *config.Config
	logger  *zap.Logger
}

func (a *app) rootCmd() *cobra.Command {
	a.v = viper.New()

	root := &cobra.Command{
		Use:           "figtune",
		Short:         "figure geometry and text styling for plots",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./figtune.yaml)")
	flags.Int("rows", 1, "number of subplot rows")
	flags.Int("cols", 1, "number of subplot columns")
	flags.String("cbar", "none", "colour bar side (left, bottom, right, top or none)")
	flags.String("log-level", "info", "log level")
	for key, name := range map[string]string{
		"figure.rows":          "rows",
		"figure.cols":          "cols",
		"figure.colorbar.side": "cbar",
		"logger.level":         "log-level",
	} {
		// BindPFlag only fails for a nil flag
		_ = a.v.BindPFlag(key, flags.Lookup(name))
	}

	root.AddCommand(a.geometryCmd(), a.escapeCmd(), a.renderCmd())
	return root
}

// setup reads the configuration file and environment and creates the
// logger.
func (a *app) setup() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigName("figtune")
		a.v.SetConfigType("yaml")
	}
	a.v.SetEnvPrefix("FIGTUNE")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Logger, nil)
	if err != nil {
		return err
	}
	a.logger = logger
	if used := a.v.ConfigFileUsed(); used != "" {
		logger.Debug("configuration loaded", zap.String("file", used))
	}
	return nil
}

func (a *app) sync() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}
