// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the tracenav browser.

# Color System (colors.go)

All colors are Lip Gloss AdaptiveColor values with a light and a dark
variant:

	Purple   - class names
	Cyan     - header bar, key hints
	Emerald  - function names
	Rose     - error tag on stderr

# Theme (theme.go)

NewTheme resolves the background ("dark", "light" or "auto") and the color
profile, then builds the record, header and status bar styles:

	theme := styles.NewTheme("auto")
	line := theme.Class.Render(rec.ClassName)

The color profile comes from termenv. Setting NO_COLOR forces the Ascii
profile so the browser renders without escape sequences.
*/
package styles
