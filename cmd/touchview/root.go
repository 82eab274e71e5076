package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/phanxgames/touchview"
	"github.com/phanxgames/touchview/internal/logging"
	"github.com/phanxgames/touchview/internal/settings"
)

// app holds state shared by subcommands, filled in by the root command's
// PersistentPreRunE.
type app struct {
	cfgFile  string
	logLevel string

	v   *viper.Viper
	log *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: settings.NewViper()}

	root := &cobra.Command{
		Use:   "touchview",
		Short: "Touch gesture engine for pan and pinch-zoom views",
		Long: `touchview turns raw touch and wheel input into zoom, pan, double-tap and
long-press callbacks.

Engine settings are read from touchview.yaml (or --config) and TOUCHVIEW_*
environment variables: min_zoom, max_zoom, double_tap_delay, long_press_delay.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logging.New(cmd.ErrOrStderr(), a.logLevel)
			if err != nil {
				return err
			}
			a.log = log
			return settings.Read(a.v, a.cfgFile)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./touchview.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")

	root.AddCommand(newReplayCmd(a))
	root.AddCommand(newDemoCmd(a))
	return root
}

// engineConfig decodes the loaded settings and attaches the logger.
func (a *app) engineConfig() (touchview.Config, error) {
	cfg, err := settings.Decode(a.v)
	if err != nil {
		return touchview.Config{}, err
	}
	cfg.Logger = a.log
	return cfg, nil
}
