// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and validation for tracenav.
//
// Supports TOML, JSON and YAML configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - SourceConfig: Trace input and root-id filter
//   - ViewConfig: Browser and plain-frame presentation
//   - KeysConfig: Navigation key bindings
//   - LogConfig: Diagnostic logging
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Command-line flags (applied by the cli package)
//   - Environment variables (TRACENAV_*)
//   - ~/.tracenav/config.toml
//   - ~/.tracenav/config.json
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	opts := trace.Options{RootID: cfg.Source.RootID}
package config
