// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package navigator

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/jeranaias/tracenav/internal/group"
)

// Redraw selects how successive frames share the screen.
type Redraw string

const (
	// RedrawAppend writes each frame below the previous one.
	RedrawAppend Redraw = "append"
	// RedrawClear clears the screen and homes the cursor before each frame.
	RedrawClear Redraw = "clear"
)

const clearScreen = "\x1b[H\x1b[2J"

// Options configures Run.
type Options struct {
	Frame  FrameOptions
	Redraw Redraw
	Logger *zap.Logger
}

// Run drives a Navigator from src until Quit or until src is exhausted,
// writing one frame for the initial state and one per accepted command.
// With no groups it writes NoDataMessage and returns without reading src.
func Run(groups []group.Group, src CommandSource, w io.Writer, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	nav := New(groups)
	if nav.Terminated() {
		_, err := io.WriteString(w, NoDataMessage+opts.Frame.eol())
		return err
	}

	if err := render(w, nav, opts); err != nil {
		return err
	}

	for {
		cmd, err := src.Next()
		if errors.Is(err, io.EOF) {
			logger.Debug("COMMANDS_EXHAUSTED", zap.Int("cursor", nav.Cursor()))
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read command: %w", err)
		}

		if !nav.Apply(cmd) {
			logger.Debug("SESSION_QUIT", zap.Int("cursor", nav.Cursor()))
			return nil
		}
		logger.Debug("COMMAND",
			zap.Stringer("command", cmd),
			zap.Int("cursor", nav.Cursor()))

		if err := render(w, nav, opts); err != nil {
			return err
		}
	}
}

func render(w io.Writer, nav *Navigator, opts Options) error {
	frame := Frame(nav.Current(), opts.Frame)
	if opts.Redraw == RedrawClear {
		frame = clearScreen + frame
	}
	if _, err := io.WriteString(w, frame); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	if f, ok := w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}
