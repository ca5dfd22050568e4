// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jeranaias/tracenav/internal/group"
	"github.com/jeranaias/tracenav/internal/trace"
	"github.com/jeranaias/tracenav/internal/util"
)

// failureTextWidth caps the echoed text of a failed line.
const failureTextWidth = 72

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Decode a trace and report failed lines",
		Long: `check decodes the trace, groups it and prints a summary followed by
every line that failed to decode. It exits with status 1 when any line
failed. No terminal is used.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd)
		},
	}
}

// runCheck decodes without navigating. Failed lines make it exit non-zero.
func (a *app) runCheck(cmd *cobra.Command) error {
	cfg, err := a.resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, sync, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer sync()

	groups, res, err := decodeSource(cmd.InOrStdin(), cfg, logger)
	if err != nil {
		return err
	}

	writeSummary(cmd.OutOrStdout(), res, groups)
	if n := len(res.Failures); n > 0 {
		return NewCommandError("check", "decode", fmt.Sprintf("%d of %d lines failed", n, res.Lines), nil)
	}
	return nil
}

func writeSummary(w io.Writer, res *trace.Result, groups []group.Group) {
	fmt.Fprintf(w, "lines: %d\n", res.Lines)
	fmt.Fprintf(w, "kept: %d\n", len(res.Records))
	fmt.Fprintf(w, "filtered: %d\n", res.Filtered)
	fmt.Fprintf(w, "failed: %d\n", len(res.Failures))
	fmt.Fprintf(w, "groups: %d\n", len(groups))
	for _, f := range res.Failures {
		fmt.Fprintln(w, f.Error())
		fmt.Fprintf(w, "    %s\n", util.TruncateRunes(f.Text, failureTextWidth))
	}
}
