// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package browser provides the full-screen group browser built on Bubble Tea.

The browser shows one group at a time: the group header in a bar at the
top, the group's records in a scrollable viewport, and a status bar with
the group position and the most used keys. Navigation is delegated to a
navigator.Navigator, so the browser and the plain renderer move through
groups identically.

# Keys

	k / up      previous group
	j / down    next group
	g / home    first group
	G / end     last group
	pgup/pgdn   scroll the current group
	?           toggle the key reference
	q / ctrl+c  quit

The group keys come from config.KeysConfig. The key reference is rendered
as markdown with glamour.

# Highlighting

With Options.Highlight set, items that are JSON objects or arrays are
coloured with chroma. Highlighting is skipped when the theme has no
colour, for example under NO_COLOR.

# Usage

	err := browser.Run(groups, browser.RunOptions{
		Options:   browser.Options{Keys: browser.NewKeyMap(cfg.Keys), Highlight: true},
		AltScreen: true,
	})
*/
package browser
