// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - Terminal detection and raw-mode scoping.
//
// The trace is always decoded before the terminal is touched, and every
// raw-mode acquisition is paired with a deferred restore, so an early
// failure never leaves the terminal in raw mode.

package cli

import (
	"io"
	"os"

	"golang.org/x/term"
)

// =============================================================================
// TTY DETECTION
// =============================================================================

// IsTTY returns true if stdin is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsStdoutTTY returns true if stdout is a terminal.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) (*os.File, bool) {
	f, ok := v.(*os.File)
	if !ok || f == nil {
		return nil, false
	}
	return f, term.IsTerminal(int(f.Fd()))
}

// openControllingTTY opens the controlling terminal for key input, used
// when the trace itself arrives on stdin.
func openControllingTTY() (io.ReadCloser, error) {
	return os.Open("/dev/tty")
}

// =============================================================================
// RAW MODE
// =============================================================================

// withRawMode runs fn with keys in raw mode when keys is a terminal.
// Other readers are used as-is. The previous terminal state is restored
// on every return path.
func withRawMode(keys io.Reader, fn func() error) error {
	f, ok := isTerminal(keys)
	if !ok {
		return fn()
	}

	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return NewCommandError("session", "acquire terminal", "could not enter raw mode", err)
	}
	defer func() { _ = term.Restore(fd, state) }()

	return fn()
}
