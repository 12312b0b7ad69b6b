// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"polltick.org/app"
	"polltick.org/io/input"
	"polltick.org/platform/headless"
)

var replayCmd = &cobra.Command{
	Use:   "replay FILE",
	Short: "Replay a YAML input script through the headless backend",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()
		opts, err := options(cfg, logger)
		if err != nil {
			return err
		}
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		return replay(cmd.OutOrStdout(), f, cfg.ReaderName, logger, opts...)
	},
}

func replay(out io.Writer, r io.Reader, name string, logger *zap.Logger, opts ...app.Option) error {
	s, err := headless.LoadScript(r)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	b := headless.New()
	reg := input.NewRegistry(logger)
	bind := app.New(b, opts...)
	bind.Init(reg)
	defer bind.Shutdown()

	_, apply := s.Play(b)
	d := newDumper(out, reg, name)
	for i := range s.Ticks {
		apply(i)
		if err := d.step(); err != nil {
			return err
		}
	}
	return nil
}
