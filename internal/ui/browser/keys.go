// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package browser

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/tracenav/internal/config"
	"github.com/jeranaias/tracenav/internal/navigator"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines the keyboard bindings of the browser.
type KeyMap struct {
	Prev     key.Binding
	Next     key.Binding
	First    key.Binding
	Last     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default bindings: k/j move, g/G jump, q quits.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.Default().Keys)
}

// NewKeyMap builds bindings from configured key names.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Prev:  binding(cfg.Prev, "previous group"),
		Next:  binding(cfg.Next, "next group"),
		First: binding(cfg.First, "first group"),
		Last:  binding(cfg.Last, "last group"),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup/ctrl+u", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn/ctrl+d", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: binding(cfg.Quit, "quit"),
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// Command maps a key press to a navigator command.
func (k KeyMap) Command(msg tea.KeyMsg) navigator.Command {
	switch {
	case key.Matches(msg, k.Quit):
		return navigator.CmdQuit
	case key.Matches(msg, k.Prev):
		return navigator.CmdPrev
	case key.Matches(msg, k.Next):
		return navigator.CmdNext
	case key.Matches(msg, k.First):
		return navigator.CmdFirst
	case key.Matches(msg, k.Last):
		return navigator.CmdLast
	}
	return navigator.CmdOther
}

// =============================================================================
// KEY BINDING HELPERS
// =============================================================================

// ShortHelp returns the bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the help overlay, grouped by purpose.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Groups
		{k.Prev, k.Next, k.First, k.Last},
		// Scrolling
		{k.PageUp, k.PageDown},
		// Session
		{k.Help, k.Quit},
	}
}
