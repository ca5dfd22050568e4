// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package trace

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Options configures a Decoder.
type Options struct {
	// RootID keeps only lines belonging to this root object when non-nil.
	RootID *int32
}

// accepts applies the root-id filter. A child line belongs to the root it
// names as parent; a parentless line belongs to itself.
func (o Options) accepts(id int32, spec ClassSpec) bool {
	if o.RootID == nil {
		return true
	}
	if spec.Parent != nil {
		return spec.Parent.ID == *o.RootID
	}
	return id == *o.RootID
}

// DecodeLine decodes one trace line.
//
// kept is false with a nil error when the line was rejected by the root-id
// filter. Any decode failure is returned as a *FieldError.
func (d *Decoder) DecodeLine(line string) (rec Record, kept bool, err error) {
	rest := line
	fail := func(field string, err error) (Record, bool, error) {
		consumed := line[:len(line)-len(rest)]
		return Record{}, false, &FieldError{
			Field:  field,
			Offset: utf8.RuneCountInString(consumed),
			Err:    err,
		}
	}

	if _, rest, err = parseNumber[uint64](rest); err != nil {
		return fail("timestamp", err)
	}
	if rest, err = expectFieldSeparator(rest); err != nil {
		return fail("id", err)
	}

	id, rest, err := parseNumber[int32](rest)
	if err != nil {
		return fail("id", err)
	}
	if rest, err = expectFieldSeparator(rest); err != nil {
		return fail("class", err)
	}

	token, after := takeUntilSpace(rest)
	spec, err := DecodeClassSpec(token)
	if err != nil {
		return fail("class", err)
	}
	rest = after
	if rest, err = expectFieldSeparator(rest); err != nil {
		return fail("function", err)
	}

	if !d.opts.accepts(id, spec) {
		return Record{}, false, nil
	}

	function, rest := takeUntilSpace(rest)
	if rest, err = expectFieldSeparator(rest); err != nil {
		return fail("state", err)
	}

	state, rest, err := DecodeBlock(rest)
	if err != nil {
		return fail("state", err)
	}
	if rest, err = expectFieldSeparator(rest); err != nil {
		return fail("args", err)
	}

	args, rest, err := DecodeBlock(rest)
	if err != nil {
		return fail("args", err)
	}
	if rest != "" {
		return fail("trailer", ErrTrailingData)
	}

	return Record{
		ID:           id,
		Parent:       spec.Parent,
		ClassName:    spec.ClassName,
		FunctionName: function,
		State:        state,
		Args:         args,
	}, true, nil
}

// FormatLine encodes r as a trace line stamped with ts.
func FormatLine(ts uint64, r Record) string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(ts, 10))
	b.WriteByte(' ')
	b.WriteString(strconvItoa32(r.ID))
	b.WriteByte(' ')
	b.WriteString(encodeClassSpec(r.ClassName, r.Parent))
	b.WriteByte(' ')
	b.WriteString(r.FunctionName)
	b.WriteByte(' ')
	b.WriteString(EncodeBlock(r.State))
	b.WriteByte(' ')
	b.WriteString(EncodeBlock(r.Args))
	return b.String()
}
