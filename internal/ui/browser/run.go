// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package browser

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/tracenav/internal/group"
)

// RunOptions adds program wiring to the model options.
type RunOptions struct {
	Options

	// Input overrides the key source. Nil reads the controlling terminal,
	// so trace data may still arrive on standard input.
	Input io.Reader
	// Output overrides standard output.
	Output io.Writer
	// AltScreen runs the browser in the alternate screen buffer.
	AltScreen bool
}

// Run starts the browser and blocks until the user quits.
func Run(groups []group.Group, opts RunOptions) error {
	progOpts := []tea.ProgramOption{}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	} else {
		progOpts = append(progOpts, tea.WithInputTTY())
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}

	p := tea.NewProgram(NewModel(groups, opts.Options), progOpts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser: %w", err)
	}
	return nil
}
