// SPDX-License-Identifier: Unlicense OR MIT

// Command inputdump runs the input binding against a windowing backend
// and prints the mouse and keyboard snapshots of every tick.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"polltick.org/app"
	"polltick.org/internal/config"
	"polltick.org/internal/log"
)

var (
	version  = "0.1.0"
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:           "inputdump",
	Short:         "Dump polled input state",
	Long:          `inputdump polls mouse, touch and keyboard state once per tick and prints every snapshot.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "inputdump v%s\n", version)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := setup()
		if err != nil {
			return err
		}
		out, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./polltick.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the configuration and builds the logger. The --log-level
// flag takes precedence over the configured level; an invalid level
// falls back to info.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, log.Must(cfg.LogLevel), nil
}

// options translates cfg into binding options.
func options(cfg *config.Config, logger *zap.Logger) ([]app.Option, error) {
	extra, err := cfg.ExtraKeys()
	if err != nil {
		return nil, err
	}
	opts := []app.Option{
		app.Logger(logger),
		app.ReaderName(cfg.ReaderName),
		app.InhibitFrames(cfg.InhibitFrames),
		app.PinchDeadZone(cfg.PinchDeadZone),
		app.KeyNames(extra...),
	}
	if cfg.KeyNames == config.KeyNamesFull {
		opts = append(opts, app.FullKeyNames())
	}
	return opts, nil
}
