// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package trace

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// =============================================================================
// PRIMITIVES
// =============================================================================
//
// Every primitive takes the remaining input and returns what it consumed
// plus the new remainder. On failure the remainder is returned unchanged.

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// parseNumber consumes the leading run of decimal digits and parses it as T.
// It fails if the run is empty or the value does not fit in T.
func parseNumber[T integer](in string) (T, string, error) {
	var zero T

	n := 0
	for n < len(in) && in[n] >= '0' && in[n] <= '9' {
		n++
	}
	if n == 0 {
		return zero, in, ErrBadNumber
	}

	v, err := strconv.ParseUint(in[:n], 10, 64)
	if err != nil {
		return zero, in, ErrBadNumber
	}
	out := T(v)
	if out < 0 || uint64(out) != v {
		return zero, in, ErrBadNumber
	}
	return out, in[n:], nil
}

// expectSeparator consumes exactly one c at the start of in.
func expectSeparator(in string, c rune) (string, error) {
	r, size := utf8.DecodeRuneInString(in)
	if size == 0 || r != c {
		return in, ErrBadSeparator
	}
	return in[size:], nil
}

// expectFieldSeparator consumes the single space between line fields.
// A run of whitespace is rejected, since no field may start with one.
func expectFieldSeparator(in string) (string, error) {
	rest, err := expectSeparator(in, ' ')
	if err != nil {
		return in, err
	}
	if r, size := utf8.DecodeRuneInString(rest); size > 0 && unicode.IsSpace(r) {
		return in, ErrBadSeparator
	}
	return rest, nil
}

// takeUntilSpace consumes everything up to the first whitespace character.
func takeUntilSpace(in string) (string, string) {
	i := strings.IndexFunc(in, unicode.IsSpace)
	if i < 0 {
		return in, ""
	}
	return in[:i], in[i:]
}

// takeUntil consumes everything up to the first c.
func takeUntil(in string, c rune) (string, string) {
	i := strings.IndexRune(in, c)
	if i < 0 {
		return in, ""
	}
	return in[:i], in[i:]
}

// takeN consumes exactly n characters.
func takeN(in string, n int) (string, string, error) {
	// A character is at least one byte.
	if n > len(in) {
		return "", in, ErrNotEnoughCharacters
	}
	i := 0
	for k := 0; k < n; k++ {
		if i >= len(in) {
			return "", in, ErrNotEnoughCharacters
		}
		_, size := utf8.DecodeRuneInString(in[i:])
		i += size
	}
	return in[:i], in[i:], nil
}
