// tracenav - step through object traces one state group at a time.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"os"

	"github.com/jeranaias/tracenav/internal/cli"
)

// Version information (set at build time)
var Version = "0.1.0"

func init() {
	cli.Version = Version
}

func main() {
	if err := cli.Execute(); err != nil {
		cli.DisplayError(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
