// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package browser

import (
	"encoding/json"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
)

// =============================================================================
// SYNTAX HIGHLIGHTING (Chroma-based)
// =============================================================================

// isJSONItem reports whether an item is a JSON object or array. Bare
// scalars such as numbers are left alone.
func isJSONItem(item string) bool {
	s := strings.TrimSpace(item)
	if s == "" || (s[0] != '{' && s[0] != '[') {
		return false
	}
	return json.Valid([]byte(s))
}

// highlightJSON colours a JSON item for a 256-colour terminal. Anything
// that is not JSON, or fails to tokenise, is returned unchanged.
func highlightJSON(item, styleName string) string {
	if !isJSONItem(item) {
		return item
	}

	lexer := lexers.Get("json")
	if lexer == nil {
		return item
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get(styleName)
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, item)
	if err != nil {
		return item
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return item
	}

	// The lexer may append a newline; items are single-line.
	return strings.ReplaceAll(buf.String(), "\n", "")
}
