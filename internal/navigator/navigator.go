// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package navigator

import "github.com/jeranaias/tracenav/internal/group"

// Command is a discrete navigation request.
type Command int

const (
	// CmdOther is any input without a binding. It leaves the cursor alone.
	CmdOther Command = iota
	CmdPrev
	CmdNext
	CmdFirst
	CmdLast
	CmdQuit
)

func (c Command) String() string {
	switch c {
	case CmdPrev:
		return "prev"
	case CmdNext:
		return "next"
	case CmdFirst:
		return "first"
	case CmdLast:
		return "last"
	case CmdQuit:
		return "quit"
	default:
		return "other"
	}
}

// Navigator holds the cursor over an immutable group list.
type Navigator struct {
	groups     []group.Group
	cursor     int
	terminated bool
}

// New creates a navigator positioned on the first group. With no groups
// the navigator is already terminated.
func New(groups []group.Group) *Navigator {
	return &Navigator{
		groups:     groups,
		terminated: len(groups) == 0,
	}
}

// Apply performs one transition. It returns true when the navigator is
// Active afterwards, meaning the current group should be rendered.
func (n *Navigator) Apply(cmd Command) bool {
	if n.terminated {
		return false
	}

	last := len(n.groups) - 1
	switch cmd {
	case CmdQuit:
		n.terminated = true
		return false
	case CmdPrev:
		n.cursor = max(0, n.cursor-1)
	case CmdNext:
		n.cursor = min(last, n.cursor+1)
	case CmdFirst:
		n.cursor = 0
	case CmdLast:
		n.cursor = last
	}
	return true
}

// Cursor returns the index of the current group.
func (n *Navigator) Cursor() int {
	return n.cursor
}

// Len returns the number of groups.
func (n *Navigator) Len() int {
	return len(n.groups)
}

// Terminated reports whether the session is over.
func (n *Navigator) Terminated() bool {
	return n.terminated
}

// Current returns the group under the cursor. It must not be called on a
// navigator without groups.
func (n *Navigator) Current() group.Group {
	return n.groups[n.cursor]
}
