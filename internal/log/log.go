// SPDX-License-Identifier: Unlicense OR MIT

// Package log builds the zap loggers used by polltick commands.
package log

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger at the given level: debug, info, warn or error.
// The debug level uses the human-readable development encoder.
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log: %w", err)
	}
	var cfg zap.Config
	if lvl == zapcore.DebugLevel {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Sampling = nil
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	// Logs go to stderr, leaving stdout to the snapshot dump.
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

// Must is like New but falls back to a production logger on an invalid
// level.
func Must(level string) *zap.Logger {
	l, err := New(level)
	if err == nil {
		return l
	}
	l, err = zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	l.Warn("invalid log level, using info", zap.String("level", level))
	return l
}
