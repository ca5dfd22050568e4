// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/tracenav/internal/config"
	"github.com/jeranaias/tracenav/internal/group"
	"github.com/jeranaias/tracenav/internal/navigator"
	"github.com/jeranaias/tracenav/internal/trace"
	"github.com/jeranaias/tracenav/internal/ui/browser"
	"github.com/jeranaias/tracenav/internal/ui/styles"
)

// stdinName labels standard input in errors.
const stdinName = "-"

// =============================================================================
// ROOT COMMAND
// =============================================================================

func (a *app) runRoot(cmd *cobra.Command) error {
	cfg, err := a.resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, sync, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer sync()

	if !cfg.Source.Structured() {
		logger.Debug("PASSTHROUGH")
		return runPassthrough(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	groups, _, err := decodeSource(cmd.InOrStdin(), cfg, logger)
	if err != nil {
		return err
	}
	return a.runSession(cmd, cfg, groups, logger)
}

// decodeSource reads and decodes the whole trace, then groups it. The
// source is closed before any terminal is acquired.
func decodeSource(stdin io.Reader, cfg *config.Config, logger *zap.Logger) ([]group.Group, *trace.Result, error) {
	src, name, err := openSource(cfg.Source.File, stdin)
	if err != nil {
		return nil, nil, err
	}
	defer src.Close()

	dec := trace.NewDecoder(trace.Options{RootID: cfg.Source.RootID}, logger)
	res, err := dec.Decode(src)
	if err != nil {
		return nil, nil, &SourceError{Path: name, Err: err}
	}
	return group.Build(res.Records), res, nil
}

// openSource opens the trace file, or wraps stdin when path is empty.
func openSource(path string, stdin io.Reader) (io.ReadCloser, string, error) {
	if path == "" {
		return io.NopCloser(stdin), stdinName, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, path, &SourceError{Path: path, Err: err}
	}
	return f, path, nil
}

// =============================================================================
// SESSIONS
// =============================================================================

// runSession picks the browser or the plain renderer and runs it until
// the user quits or the key source is exhausted.
func (a *app) runSession(cmd *cobra.Command, cfg *config.Config, groups []group.Group, logger *zap.Logger) error {
	out := cmd.OutOrStdout()

	if len(groups) == 0 {
		// Nothing to navigate; no terminal is acquired.
		return navigator.Run(nil, navigator.Commands(), out, navigator.Options{
			Frame:  navigator.FrameOptions{LineEnding: navigator.LF},
			Logger: logger,
		})
	}

	useBrowser := cfg.View.Mode == "tui" || (cfg.View.Mode == "auto" && a.interactive())
	logger.Debug("SESSION_START",
		zap.Int("groups", len(groups)),
		zap.Bool("browser", useBrowser))

	if useBrowser {
		return runBrowser(out, cfg, groups, logger)
	}
	return a.runPlain(cmd, cfg, groups, logger)
}

func runBrowser(out io.Writer, cfg *config.Config, groups []group.Group, logger *zap.Logger) error {
	// The browser owns the screen; only file sinks may keep logging.
	if cfg.Log.File == "" || cfg.Log.File == "stderr" {
		logger = zap.NewNop()
	}
	return browser.Run(groups, browser.RunOptions{
		Options: browser.Options{
			Keys:      browser.NewKeyMap(cfg.Keys),
			Theme:     styles.NewTheme(cfg.View.Theme),
			Highlight: cfg.View.Highlight,
			Logger:    logger,
		},
		Output:    out,
		AltScreen: true,
	})
}

// runPlain renders frames as plain text. Keys come from stdin when the
// trace was read from a file, otherwise from the controlling terminal.
func (a *app) runPlain(cmd *cobra.Command, cfg *config.Config, groups []group.Group, logger *zap.Logger) error {
	var keys io.Reader = cmd.InOrStdin()
	if cfg.Source.File == "" {
		tty, err := a.openKeys()
		if err != nil {
			return NewCommandError("session", "open keys", "no terminal for key input while the trace is on stdin", err)
		}
		defer tty.Close()
		keys = tty
	}

	opts := navigator.Options{
		Frame: navigator.FrameOptions{
			LineEnding: lineEnding(cfg.View.LineEnding),
			MaxWidth:   cfg.View.MaxWidth,
		},
		Redraw: navigator.Redraw(cfg.View.Redraw),
		Logger: logger,
	}
	src := navigator.NewKeySource(keys, Bindings(cfg.Keys))

	return withRawMode(keys, func() error {
		return navigator.Run(groups, src, cmd.OutOrStdout(), opts)
	})
}

func lineEnding(name string) string {
	if name == "lf" {
		return navigator.LF
	}
	return navigator.CRLF
}

// Bindings converts configured key names to navigator bindings.
func Bindings(keys config.KeysConfig) navigator.Bindings {
	b := navigator.Bindings{}
	add := func(names []string, cmd navigator.Command) {
		for _, n := range names {
			b[n] = cmd
		}
	}
	add(keys.Prev, navigator.CmdPrev)
	add(keys.Next, navigator.CmdNext)
	add(keys.First, navigator.CmdFirst)
	add(keys.Last, navigator.CmdLast)
	add(keys.Quit, navigator.CmdQuit)
	return b
}

// =============================================================================
// PASSTHROUGH
// =============================================================================

// runPassthrough copies stdin to stdout line by line, normalising line
// endings to "\n" and terminating the last line.
func runPassthrough(in io.Reader, out io.Writer) error {
	r := bufio.NewReader(in)
	w := bufio.NewWriter(out)
	defer w.Flush()

	for {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if !utf8.ValidString(line) {
				return &SourceError{Path: stdinName, Err: errors.New("stream did not contain valid UTF-8")}
			}
			if _, werr := w.WriteString(line + "\n"); werr != nil {
				return werr
			}
		}
		if errors.Is(err, io.EOF) {
			return w.Flush()
		}
		if err != nil {
			return &SourceError{Path: stdinName, Err: err}
		}
	}
}
