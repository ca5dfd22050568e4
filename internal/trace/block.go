// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package trace

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// DecodeBlock decodes a state or args block:
//
//	<count>:<len_1>:<item_1>...<len_count>:<item_count>
//
// It returns exactly count items (never nil) and the unconsumed input.
func DecodeBlock(in string) ([]string, string, error) {
	count, rest, err := parseNumber[int](in)
	if err != nil {
		return nil, in, err
	}
	rest, err = expectSeparator(rest, ':')
	if err != nil {
		return nil, in, err
	}

	// Each item needs at least "0:", so a larger count cannot succeed anyway.
	items := make([]string, 0, min(count, len(rest)/2))
	for i := 0; i < count; i++ {
		var n int
		n, rest, err = parseNumber[int](rest)
		if err != nil {
			return nil, in, err
		}
		rest, err = expectSeparator(rest, ':')
		if err != nil {
			return nil, in, err
		}
		var item string
		item, rest, err = takeN(rest, n)
		if err != nil {
			return nil, in, err
		}
		items = append(items, item)
	}

	return items, rest, nil
}

// EncodeBlock is the inverse of DecodeBlock. Item lengths are counted in
// characters.
func EncodeBlock(items []string) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(len(items)))
	b.WriteByte(':')
	for _, item := range items {
		b.WriteString(strconv.Itoa(utf8.RuneCountInString(item)))
		b.WriteByte(':')
		b.WriteString(item)
	}
	return b.String()
}

func strconvItoa32(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}
