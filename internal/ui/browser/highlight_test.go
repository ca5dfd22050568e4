// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package browser

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestIsJSONItem(t *testing.T) {
	assert.True(t, isJSONItem(`{"a":1}`))
	assert.True(t, isJSONItem(`[1, 2]`))
	assert.False(t, isJSONItem(`42`))
	assert.False(t, isJSONItem(`"str"`))
	assert.False(t, isJSONItem(`{broken`))
	assert.False(t, isJSONItem(``))
}

func TestHighlightJSON(t *testing.T) {
	item := `{"hp":3,"name":"bob"}`

	out := highlightJSON(item, "monokai")
	assert.Contains(t, out, "\x1b[")
	assert.NotContains(t, out, "\n")
	assert.Equal(t, item, ansiRe.ReplaceAllString(out, ""))
}

func TestHighlightJSON_Passthrough(t *testing.T) {
	for _, item := range []string{"bob", "42", "{oops"} {
		assert.Equal(t, item, highlightJSON(item, "monokai"))
	}
}

func TestHighlightJSON_UnknownStyle(t *testing.T) {
	item := `[1,2]`
	out := highlightJSON(item, "no-such-style")
	assert.Equal(t, item, ansiRe.ReplaceAllString(out, ""))
}
