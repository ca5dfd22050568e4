// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package trace

import "strings"

// DecodeClassSpec decodes a class token. A token without a colon is a bare
// class name; otherwise it must have the shape Parent:ParentID:ClassName.
func DecodeClassSpec(token string) (ClassSpec, error) {
	if !strings.ContainsRune(token, ':') {
		return ClassSpec{ClassName: token}, nil
	}

	parent, rest := takeUntil(token, ':')
	rest, err := expectSeparator(rest, ':')
	if err != nil {
		return ClassSpec{}, err
	}
	id, rest, err := parseNumber[int32](rest)
	if err != nil {
		return ClassSpec{}, err
	}
	rest, err = expectSeparator(rest, ':')
	if err != nil {
		return ClassSpec{}, err
	}
	// Exactly two colons.
	if strings.ContainsRune(rest, ':') {
		return ClassSpec{}, ErrBadSeparator
	}

	return ClassSpec{
		ClassName: rest,
		Parent:    &Parent{ID: id, Class: parent},
	}, nil
}

// encodeClassSpec is the inverse of DecodeClassSpec.
func encodeClassSpec(className string, parent *Parent) string {
	if parent == nil {
		return className
	}
	var b strings.Builder
	b.WriteString(parent.Class)
	b.WriteByte(':')
	b.WriteString(strconvItoa32(parent.ID))
	b.WriteByte(':')
	b.WriteString(className)
	return b.String()
}
