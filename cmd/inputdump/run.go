// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"polltick.org/app"
	"polltick.org/io/input"
	"polltick.org/platform"
	"polltick.org/platform/glfw"
	"polltick.org/platform/sdl"
)

var (
	runBackend  string
	runTicks    int
	runInterval time.Duration
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open a window and dump its input every tick",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()
		if runBackend != "" {
			cfg.Backend = runBackend
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		opts, err := options(cfg, logger)
		if err != nil {
			return err
		}
		wb, err := openBackend(cfg.Backend, logger)
		if err != nil {
			return err
		}
		defer wb.Close()

		reg := input.NewRegistry(logger)
		bind := app.New(wb, opts...)
		bind.Init(reg)
		defer bind.Shutdown()

		if _, err := wb.CreateWindow("inputdump", 640, 480); err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return loop(ctx, wb, newDumper(cmd.OutOrStdout(), reg, cfg.ReaderName), logger)
	},
}

func init() {
	runCmd.Flags().StringVar(&runBackend, "backend", "", "windowing backend: sdl or glfw (default from config)")
	runCmd.Flags().IntVar(&runTicks, "ticks", 0, "stop after this many ticks (0 runs until the window closes)")
	runCmd.Flags().DurationVar(&runInterval, "interval", time.Second/60, "tick interval")
}

// windowBackend is a backend that can open its own windows.
type windowBackend interface {
	platform.Backend
	CreateWindow(title string, width, height int) (platform.Window, error)
	Closed() bool
	Close()
}

func openBackend(name string, logger *zap.Logger) (windowBackend, error) {
	var (
		wb  windowBackend
		err error
	)
	switch name {
	case "sdl":
		wb, err = sdl.New(logger)
	case "glfw":
		wb, err = glfw.New(logger)
	default:
		return nil, fmt.Errorf("unknown backend %q", name)
	}
	if err != nil {
		return nil, err
	}
	return wb, nil
}

func loop(ctx context.Context, wb windowBackend, d *dumper, logger *zap.Logger) error {
	t := time.NewTicker(runInterval)
	defer t.Stop()
	for runTicks == 0 || d.tick < runTicks {
		select {
		case <-ctx.Done():
			logger.Info("interrupted", zap.Int("ticks", d.tick))
			return nil
		case <-t.C:
		}
		if err := d.step(); err != nil {
			return err
		}
		if wb.Closed() {
			logger.Info("window closed", zap.Int("ticks", d.tick))
			return nil
		}
	}
	return nil
}
