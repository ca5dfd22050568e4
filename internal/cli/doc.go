// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the tracenav command line.
//
// The root command decodes a trace, groups it and starts a session: the
// full-screen browser when stdout is a terminal, plain frames otherwise.
// Without --file or --id it copies standard input to standard output.
//
// # Commands
//
//	tracenav [-f FILE] [-i ID] [--view auto|tui|plain] [--redraw append|clear]
//	tracenav check [-f FILE] [-i ID]
//
// Persistent flags: --config, --log-level, --log-file, -v/--verbose.
//
// # Exit Codes
//
//	0  success
//	1  general error; check found failed lines
//	2  usage error (unknown flag, malformed --id)
//	3  configuration error
//	4  trace source could not be opened or read
//
// Use GetExitCode to map an error returned by Execute.
package cli
