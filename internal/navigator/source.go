// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package navigator

import (
	"bufio"
	"io"
	"strings"
)

// CommandSource yields one command per call, blocking until input is
// available. It returns io.EOF once exhausted.
type CommandSource interface {
	Next() (Command, error)
}

// Bindings maps key names to commands. Names follow bubbletea's key
// strings: printable keys are themselves ("k", "G"), control keys are
// "ctrl+<letter>", arrows are "up", "down", "home", "end", and modified
// keys carry a prefix such as "ctrl+up".
type Bindings map[string]Command

// DefaultBindings returns the vi-style keys: k/j move, g/G jump, q quits.
func DefaultBindings() Bindings {
	return Bindings{
		"k":      CmdPrev,
		"up":     CmdPrev,
		"j":      CmdNext,
		"down":   CmdNext,
		"g":      CmdFirst,
		"home":   CmdFirst,
		"G":      CmdLast,
		"end":    CmdLast,
		"q":      CmdQuit,
		"ctrl+c": CmdQuit,
	}
}

// KeySource reads keystrokes from a raw terminal or any byte stream.
// Escape sequences are only decoded when fully buffered, so a lone ESC
// never blocks waiting for more input.
type KeySource struct {
	r        *bufio.Reader
	bindings Bindings
}

// NewKeySource wraps r. Nil bindings select DefaultBindings.
func NewKeySource(r io.Reader, bindings Bindings) *KeySource {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &KeySource{r: bufio.NewReader(r), bindings: bindings}
}

// Next blocks for one key and maps it to a command.
func (s *KeySource) Next() (Command, error) {
	name, err := s.readKey()
	if err != nil {
		return CmdOther, err
	}
	if cmd, ok := s.bindings[name]; ok {
		return cmd, nil
	}
	return CmdOther, nil
}

// readKey returns the name of the next key.
func (s *KeySource) readKey() (string, error) {
	r, _, err := s.r.ReadRune()
	if err != nil {
		return "", err
	}
	switch {
	case r == '\x1b':
		return s.escape(), nil
	case r == '\r' || r == '\n':
		return "enter", nil
	case r == '\t':
		return "tab", nil
	case r >= 0x01 && r <= 0x1a:
		return "ctrl+" + string(rune('a'+r-1)), nil
	default:
		return string(r), nil
	}
}

// escape decodes a CSI (ESC [) or SS3 (ESC O) sequence. The whole
// sequence is consumed, parameters included, so ESC [ 1 ; 5 A is one key
// ("ctrl+up") rather than a key followed by stray "1;5A" runes.
// Unrecognised sequences are consumed and named "".
func (s *KeySource) escape() string {
	n := s.r.Buffered()
	if n < 2 {
		return "esc"
	}
	buf, _ := s.r.Peek(n)
	switch buf[0] {
	case 'O':
		_, _ = s.r.Discard(2)
		return csiKeys[buf[1]]
	case '[':
	default:
		return "esc"
	}

	// Parameter bytes 0x30-0x3F, intermediates 0x20-0x2F, final 0x40-0x7E.
	end := 1
	for end < n && buf[end] >= 0x20 && buf[end] <= 0x3f {
		end++
	}
	if end == n || buf[end] < 0x40 || buf[end] > 0x7e {
		// Incomplete or malformed; drop what was buffered of it.
		_, _ = s.r.Discard(end)
		return ""
	}
	params, final := string(buf[1:end]), buf[end]
	_, _ = s.r.Discard(end + 1)

	var name string
	if final == '~' {
		num, _, _ := strings.Cut(params, ";")
		name = tildeKeys[num]
	} else {
		name = csiKeys[final]
	}
	if name == "" {
		return ""
	}
	if _, mod, ok := strings.Cut(params, ";"); ok {
		prefix, known := modifiers[mod]
		if !known {
			return ""
		}
		name = prefix + name
	}
	return name
}

// csiKeys names the final byte of ESC [ <final> and ESC O <final>.
var csiKeys = map[byte]string{
	'A': "up",
	'B': "down",
	'C': "right",
	'D': "left",
	'H': "home",
	'F': "end",
	'Z': "shift+tab",
}

// tildeKeys names ESC [ <n> ~ sequences.
var tildeKeys = map[string]string{
	"1": "home",
	"7": "home",
	"4": "end",
	"8": "end",
	"5": "pgup",
	"6": "pgdown",
	"2": "insert",
	"3": "delete",
}

// modifiers maps the xterm modifier parameter to its key-name prefix.
var modifiers = map[string]string{
	"2": "shift+",
	"3": "alt+",
	"4": "alt+shift+",
	"5": "ctrl+",
	"6": "ctrl+shift+",
	"7": "ctrl+alt+",
	"8": "ctrl+alt+shift+",
}

// sliceSource replays a fixed command list.
type sliceSource struct {
	cmds []Command
}

// Commands returns a source that yields cmds in order, then io.EOF.
func Commands(cmds ...Command) CommandSource {
	return &sliceSource{cmds: cmds}
}

func (s *sliceSource) Next() (Command, error) {
	if len(s.cmds) == 0 {
		return CmdOther, io.EOF
	}
	cmd := s.cmds[0]
	s.cmds = s.cmds[1:]
	return cmd, nil
}
