// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the styles for the group browser.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	ColorProfile termenv.Profile

	// ChromaStyle names the syntax style for highlighted items
	ChromaStyle string

	// Header bar showing the group header line
	Header lipgloss.Style

	// Record line parts
	ID       lipgloss.Style
	Class    lipgloss.Style
	Function lipgloss.Style
	Item     lipgloss.Style

	// Status bar
	Status    lipgloss.Style
	StatusKey lipgloss.Style

	Muted lipgloss.Style
}

// NewTheme creates a theme. mode is "dark", "light" or "auto"; auto asks
// the terminal for its background.
func NewTheme(mode string) *Theme {
	profile := DetectProfile()

	var isDark bool
	switch mode {
	case "dark":
		isDark = true
	case "light":
		isDark = false
	default:
		isDark = termenv.HasDarkBackground()
	}
	lipgloss.SetColorProfile(profile)
	lipgloss.SetHasDarkBackground(isDark)

	t := &Theme{
		IsDark:       isDark,
		ColorProfile: profile,
		ChromaStyle:  "monokai",
	}
	if !isDark {
		t.ChromaStyle = "github"
	}
	t.initStyles()
	return t
}

// DetectProfile returns the stdout color profile, honouring NO_COLOR.
func DetectProfile() termenv.Profile {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return termenv.Ascii
	}
	return termenv.NewOutput(os.Stdout).EnvColorProfile()
}

// Colorless reports whether styling is disabled.
func (t *Theme) Colorless() bool {
	return t.ColorProfile == termenv.Ascii
}

func (t *Theme) initStyles() {
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Cyan).
		Padding(0, 1)

	t.ID = lipgloss.NewStyle().Foreground(TextSecondary)
	t.Class = lipgloss.NewStyle().Bold(true).Foreground(Purple)
	t.Function = lipgloss.NewStyle().Foreground(Emerald)
	t.Item = lipgloss.NewStyle().Foreground(TextPrimary)

	t.Status = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(SurfaceDim).
		Padding(0, 1)
	t.StatusKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim)

	t.Muted = lipgloss.NewStyle().Foreground(TextMuted)
}
