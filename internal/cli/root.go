// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/tracenav/internal/config"
	"github.com/jeranaias/tracenav/internal/logging"
)

// Version is the tracenav version, set at build time.
var Version = "dev"

// =============================================================================
// FLAGS
// =============================================================================

// flags holds the raw command-line values. They are layered over the
// loaded config in resolveConfig.
type flags struct {
	file       string
	rootID     string
	configPath string
	view       string
	redraw     string
	logLevel   string
	logFile    string
	verbose    bool
}

// app carries per-invocation state shared by the commands.
type app struct {
	flags flags

	// openKeys opens the key source used when trace data is on stdin.
	openKeys func() (io.ReadCloser, error)
	// interactive reports whether stdout is a terminal; consulted by view mode "auto".
	interactive func() bool
}

// =============================================================================
// COMMANDS
// =============================================================================

// NewRootCommand builds the tracenav command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{
		openKeys:    openControllingTTY,
		interactive: IsStdoutTTY,
	})
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "tracenav",
		Short: "Browse object traces grouped by state",
		Long: `tracenav decodes a line-oriented object trace and lets you step through
it one group at a time. A group starts at every root record whose state
differs from the previous record; child records join the group they follow.

With neither --file nor --id, standard input is copied to standard output
unchanged.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRoot(cmd)
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &ValidationError{Field: "flags", Reason: err.Error()}
	})

	pf := root.PersistentFlags()
	pf.StringVarP(&a.flags.file, "file", "f", "", "Trace file to read (default: standard input)")
	pf.StringVarP(&a.flags.rootID, "id", "i", "", "Only keep records of this root object id")
	pf.StringVar(&a.flags.configPath, "config", "", "Config file (.toml, .json, .yaml)")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&a.flags.logFile, "log-file", "", "Write logs to this file instead of stderr")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "Enable debug logging")

	f := root.Flags()
	f.StringVar(&a.flags.view, "view", "", "View mode: auto, tui, plain")
	f.StringVar(&a.flags.redraw, "redraw", "", "Plain view redraw policy: append, clear")

	root.AddCommand(newCheckCommand(a))
	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return NewValidationErrorWithExample("arguments", strings.Join(args, " "),
			"tracenav takes no positional arguments", cmd.CommandPath()+" -f trace.log")
	}
	return nil
}

// =============================================================================
// CONFIG RESOLUTION
// =============================================================================

// resolveConfig loads the config file and layers flags on top.
// Precedence: flags > environment > file > defaults.
func (a *app) resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	// Validation waits until flags are layered, so a flag can repair a
	// bad file or environment value.
	cfg, err := config.Resolve(a.flags.configPath)
	if err != nil {
		return nil, &ConfigError{Path: a.flags.configPath, Err: err}
	}

	changed := cmd.Flags().Changed
	if changed("file") {
		cfg.Source.File = a.flags.file
	}
	if changed("id") {
		id, err := config.ParseRootID(a.flags.rootID)
		if err != nil {
			return nil, NewValidationErrorWithExample("--id", a.flags.rootID,
				"must be a 32-bit integer", "tracenav -f trace.log -i 42")
		}
		cfg.Source.RootID = &id
	}
	if changed("view") {
		cfg.View.Mode = a.flags.view
	}
	if changed("redraw") {
		cfg.View.Redraw = a.flags.redraw
	}
	if changed("log-level") {
		cfg.Log.Level = a.flags.logLevel
	}
	if changed("log-file") {
		cfg.Log.File = a.flags.logFile
	}
	if a.flags.verbose {
		cfg.Log.Level = "debug"
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		var verrs config.ValidateErrors
		if errors.As(err, &verrs) {
			for _, v := range verrs {
				if flag, ok := flagFields[v.Field]; ok && changed(flag) {
					return nil, &ValidationError{Field: "--" + flag, Reason: v.Message}
				}
			}
		}
		return nil, &ConfigError{Path: a.flags.configPath, Err: err}
	}
	return cfg, nil
}

// flagFields maps config fields to the flags that set them, so a bad
// flag value is reported as a usage error rather than a config error.
var flagFields = map[string]string{
	"view.mode":   "view",
	"view.redraw": "redraw",
	"log.level":   "log-level",
}

// newLogger builds the logger for cfg and a func that flushes it.
func newLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, &ConfigError{Err: fmt.Errorf("log: %w", err)}
	}
	return logger, func() { _ = logger.Sync() }, nil
}
