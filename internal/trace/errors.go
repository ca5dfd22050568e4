// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package trace

import (
	"errors"
	"fmt"
)

// Decode failure kinds. Match them with errors.Is.
var (
	// ErrBadNumber: numeric token missing, unparseable or out of range.
	ErrBadNumber = errors.New("bad number")
	// ErrBadSeparator: a required single delimiter was not found.
	ErrBadSeparator = errors.New("bad separator")
	// ErrNotEnoughCharacters: a declared item length exceeds the remaining input.
	ErrNotEnoughCharacters = errors.New("not enough characters")
	// ErrTrailingData: input left over after a complete line.
	ErrTrailingData = errors.New("trailing data")
)

// FieldError reports which field of a line failed to decode and where.
type FieldError struct {
	Field  string // timestamp, id, class, function, state, args, trailer
	Offset int    // character offset into the line
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s at offset %d: %v", e.Field, e.Offset, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// LineError is a FieldError tagged with its input line.
type LineError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Kind returns a short stable name for the failure kind wrapped by err.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrBadNumber):
		return "bad_number"
	case errors.Is(err, ErrBadSeparator):
		return "bad_separator"
	case errors.Is(err, ErrNotEnoughCharacters):
		return "not_enough_characters"
	case errors.Is(err, ErrTrailingData):
		return "trailing_data"
	default:
		return "unknown"
	}
}
