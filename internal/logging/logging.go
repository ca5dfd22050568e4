// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging builds the zap logger used across tracenav.
//
// The interactive views own the terminal, so logs default to standard
// error at warn level and can be redirected to a file with --log-file.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jeranaias/tracenav/internal/config"
)

// New builds a logger from cfg. An empty level or format falls back to
// warn/console, an empty file to standard error.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var zcfg zap.Config
	switch strings.ToLower(cfg.Format) {
	case "", "console":
		zcfg = zap.NewDevelopmentConfig()
		zcfg.Development = false
		zcfg.DisableStacktrace = true
	case "json":
		zcfg = zap.NewProductionConfig()
		zcfg.Sampling = nil
	default:
		return nil, fmt.Errorf("unknown log format '%s'", cfg.Format)
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	out := cfg.File
	if out == "" {
		out = "stderr"
	}
	zcfg.OutputPaths = []string{out}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.Named("tracenav"), nil
}

// ParseLevel maps a config level name to a zap level.
func ParseLevel(name string) (zapcore.Level, error) {
	if name == "" {
		return zapcore.WarnLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return zapcore.WarnLevel, fmt.Errorf("unknown log level '%s'", name)
	}
	return level, nil
}
