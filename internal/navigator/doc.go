// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package navigator moves a cursor over trace groups in response to
// discrete commands and renders the group under the cursor.
//
// The Navigator itself is a small state machine with no I/O. Run drives it
// from a CommandSource and writes one plain-text frame per accepted
// command; the full-screen browser in ui/browser drives the same state
// machine from bubbletea key events.
//
// # States
//
//   - Active(cursor): cursor in [0, len-1], a frame is rendered on entry
//   - Terminated: no further commands are read
//
// An empty group list starts out Terminated.
package navigator
