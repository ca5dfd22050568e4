// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for tracenav.
//
// Supports TOML, JSON and YAML configuration files, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.tracenav/config.toml
//   - ~/.tracenav/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete tracenav configuration.
type Config struct {
	// Source selects the trace input and the root object to follow
	Source SourceConfig `toml:"source" json:"source" yaml:"source"`

	// View configures how groups are presented
	View ViewConfig `toml:"view" json:"view" yaml:"view"`

	// Keys overrides the navigation key bindings
	Keys KeysConfig `toml:"keys" json:"keys" yaml:"keys"`

	// Log configures diagnostic logging
	Log LogConfig `toml:"log" json:"log" yaml:"log"`
}

// SourceConfig selects the trace input.
type SourceConfig struct {
	// File is the trace file path. Empty reads standard input.
	File string `toml:"file" json:"file" yaml:"file"`
	// RootID keeps only records of this root object when set
	RootID *int32 `toml:"root_id" json:"root_id,omitempty" yaml:"root_id,omitempty"`
}

// Structured reports whether a structured source or filter was selected.
// Without one, input is passed through untouched.
func (s SourceConfig) Structured() bool {
	return s.File != "" || s.RootID != nil
}

// ViewConfig contains presentation settings.
type ViewConfig struct {
	// Mode is "auto" (browser on a terminal, plain otherwise), "tui" or "plain"
	Mode string `toml:"mode" json:"mode" yaml:"mode"`
	// Redraw is the plain-mode frame policy: "append" or "clear"
	Redraw string `toml:"redraw" json:"redraw" yaml:"redraw"`
	// LineEnding terminates plain-mode lines: "crlf" or "lf"
	LineEnding string `toml:"line_ending" json:"line_ending" yaml:"line_ending"`
	// Highlight colours JSON items in the browser
	Highlight bool `toml:"highlight" json:"highlight" yaml:"highlight"`
	// Theme is "dark", "light" or "auto"
	Theme string `toml:"theme" json:"theme" yaml:"theme"`
	// MaxWidth truncates plain-mode lines (0 = no truncation)
	MaxWidth int `toml:"max_width" json:"max_width" yaml:"max_width"`
}

// KeysConfig lists the keys bound to each navigation command.
// Names follow bubbletea key strings ("k", "up", "ctrl+c").
type KeysConfig struct {
	Prev  []string `toml:"prev" json:"prev" yaml:"prev"`
	Next  []string `toml:"next" json:"next" yaml:"next"`
	First []string `toml:"first" json:"first" yaml:"first"`
	Last  []string `toml:"last" json:"last" yaml:"last"`
	Quit  []string `toml:"quit" json:"quit" yaml:"quit"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is "debug", "info", "warn" or "error"
	Level string `toml:"level" json:"level" yaml:"level"`
	// Format is "console" or "json"
	Format string `toml:"format" json:"format" yaml:"format"`
	// File is a log file path; "stderr" or empty logs to standard error
	File string `toml:"file" json:"file" yaml:"file"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		View: ViewConfig{
			Mode:       "auto",
			Redraw:     "append",
			LineEnding: "crlf",
			Highlight:  true,
			Theme:      "auto",
			MaxWidth:   0,
		},
		Keys: KeysConfig{
			Prev:  []string{"k", "up"},
			Next:  []string{"j", "down"},
			First: []string{"g", "home"},
			Last:  []string{"G", "end"},
			Quit:  []string{"q", "ctrl+c"},
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
			File:   "stderr",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the tracenav configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".tracenav"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the default config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	cfg, err := Resolve("")
	if err != nil {
		return nil, err
	}
	if err := cfg.validated(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file path with full validation.
// The format is chosen by extension; anything unknown is read as TOML.
func LoadFromPath(path string) (*Config, error) {
	cfg, err := Resolve(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.validated(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Resolve layers the config file, environment overrides and defaults
// without validating the result. An empty path searches the default
// locations. Callers that layer further overrides (command-line flags)
// validate once they are done.
func Resolve(path string) (*Config, error) {
	if path == "" {
		path = defaultPath()
	}

	cfg := Default()
	if path != "" {
		var err error
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			err = LoadJSON(cfg, path)
		case ".yaml", ".yml":
			err = LoadYAML(cfg, path)
		default:
			err = LoadTOML(cfg, path)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnvOverrides(); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}
	cfg.SetDefaults()
	return cfg, nil
}

// defaultPath returns the first existing default config file, or "".
func defaultPath() string {
	for _, pathFn := range []func() (string, error){ConfigPathTOML, ConfigPathJSON} {
		path, err := pathFn()
		if err != nil {
			continue
		}
		if _, statErr := os.Stat(path); statErr == nil {
			return path
		}
	}
	return ""
}

func (c *Config) validated() error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadTOML loads configuration from a TOML file.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON loads configuration from a JSON file.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// LoadYAML loads configuration from a YAML file.
func LoadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read YAML file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode YAML file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

func oneOf(field, value string, allowed ...string) *ValidationError {
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("invalid value '%s', must be one of: %s", value, strings.Join(allowed, ", ")),
	}
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	checks := []*ValidationError{
		oneOf("view.mode", c.View.Mode, "auto", "tui", "plain"),
		oneOf("view.redraw", c.View.Redraw, "append", "clear"),
		oneOf("view.line_ending", c.View.LineEnding, "crlf", "lf"),
		oneOf("view.theme", c.View.Theme, "auto", "dark", "light"),
		oneOf("log.level", c.Log.Level, "debug", "info", "warn", "error"),
		oneOf("log.format", c.Log.Format, "console", "json"),
	}
	for _, check := range checks {
		if check != nil {
			errs = append(errs, *check)
		}
	}

	if c.View.MaxWidth < 0 {
		errs = append(errs, ValidationError{
			Field:   "view.max_width",
			Message: "cannot be negative",
		})
	}

	bindings := map[string][]string{
		"keys.prev":  c.Keys.Prev,
		"keys.next":  c.Keys.Next,
		"keys.first": c.Keys.First,
		"keys.last":  c.Keys.Last,
		"keys.quit":  c.Keys.Quit,
	}
	seen := make(map[string]string)
	for _, field := range []string{"keys.prev", "keys.next", "keys.first", "keys.last", "keys.quit"} {
		for _, k := range bindings[field] {
			if other, dup := seen[k]; dup && other != field {
				errs = append(errs, ValidationError{
					Field:   field,
					Message: fmt.Sprintf("key '%s' is already bound by %s", k, other),
				})
				continue
			}
			seen[k] = field
		}
	}
	if len(c.Keys.Quit) == 0 {
		errs = append(errs, ValidationError{
			Field:   "keys.quit",
			Message: "at least one quit key is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults sets default values for any missing or zero-value configuration fields.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.View.Mode == "" {
		c.View.Mode = defaults.View.Mode
	}
	if c.View.Redraw == "" {
		c.View.Redraw = defaults.View.Redraw
	}
	if c.View.LineEnding == "" {
		c.View.LineEnding = defaults.View.LineEnding
	}
	if c.View.Theme == "" {
		c.View.Theme = defaults.View.Theme
	}

	if c.Keys.Prev == nil {
		c.Keys.Prev = defaults.Keys.Prev
	}
	if c.Keys.Next == nil {
		c.Keys.Next = defaults.Keys.Next
	}
	if c.Keys.First == nil {
		c.Keys.First = defaults.Keys.First
	}
	if c.Keys.Last == nil {
		c.Keys.Last = defaults.Keys.Last
	}
	if c.Keys.Quit == nil {
		c.Keys.Quit = defaults.Keys.Quit
	}

	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = defaults.Log.Format
	}
	if c.Log.File == "" {
		c.Log.File = defaults.Log.File
	}

	c.View.Mode = strings.ToLower(c.View.Mode)
	c.View.Redraw = strings.ToLower(c.View.Redraw)
	c.View.LineEnding = strings.ToLower(c.View.LineEnding)
	c.View.Theme = strings.ToLower(c.View.Theme)
	c.Log.Level = strings.ToLower(c.Log.Level)
	c.Log.Format = strings.ToLower(c.Log.Format)
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - TRACENAV_FILE: overrides source.file
//   - TRACENAV_ROOT_ID: overrides source.root_id
//   - TRACENAV_VIEW: overrides view.mode
//   - TRACENAV_REDRAW: overrides view.redraw
//   - TRACENAV_LOG_LEVEL: overrides log.level
//   - TRACENAV_LOG_FILE: overrides log.file
func (c *Config) ApplyEnvOverrides() error {
	if file := os.Getenv("TRACENAV_FILE"); file != "" {
		c.Source.File = file
	}

	if raw := os.Getenv("TRACENAV_ROOT_ID"); raw != "" {
		id, err := ParseRootID(raw)
		if err != nil {
			return ValidationError{Field: "TRACENAV_ROOT_ID", Message: err.Error()}
		}
		c.Source.RootID = &id
	}

	if mode := os.Getenv("TRACENAV_VIEW"); mode != "" {
		c.View.Mode = mode
	}

	if redraw := os.Getenv("TRACENAV_REDRAW"); redraw != "" {
		c.View.Redraw = redraw
	}

	if level := os.Getenv("TRACENAV_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}

	if file := os.Getenv("TRACENAV_LOG_FILE"); file != "" {
		c.Log.File = file
	}

	return nil
}

// ParseRootID parses a root-id filter value.
func ParseRootID(raw string) (int32, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid root id '%s': must be a 32-bit integer", raw)
	}
	return int32(v), nil
}
