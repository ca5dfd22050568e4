// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package navigator

import (
	"strconv"
	"strings"

	"github.com/jeranaias/tracenav/internal/group"
	"github.com/jeranaias/tracenav/internal/trace"
	"github.com/jeranaias/tracenav/internal/util"
)

// ChildIndent prefixes records that carry a parent.
const ChildIndent = "     "

// NoDataMessage is shown instead of a frame when nothing survived decoding.
const NoDataMessage = "no data"

// Line endings for plain frames. A raw-mode terminal needs CRLF.
const (
	CRLF = "\r\n"
	LF   = "\n"
)

// FrameOptions controls plain frame layout.
type FrameOptions struct {
	// LineEnding terminates each line. Defaults to CRLF.
	LineEnding string
	// MaxWidth truncates lines to this display width. Zero disables truncation.
	MaxWidth int
}

func (o FrameOptions) eol() string {
	if o.LineEnding == "" {
		return CRLF
	}
	return o.LineEnding
}

// RecordLine formats one record of a group:
//
//	id class function args          (no parent)
//	     id class state function args  (has parent)
//
// State items are space-joined, args are joined with ", ".
func RecordLine(r *trace.Record) string {
	var b strings.Builder
	if r.HasParent() {
		b.WriteString(ChildIndent)
	}
	b.WriteString(strconv.FormatInt(int64(r.ID), 10))
	b.WriteByte(' ')
	b.WriteString(r.ClassName)
	if r.HasParent() {
		b.WriteByte(' ')
		b.WriteString(strings.Join(r.State, " "))
	}
	b.WriteByte(' ')
	b.WriteString(r.FunctionName)
	b.WriteByte(' ')
	b.WriteString(strings.Join(r.Args, ", "))
	return b.String()
}

// HeaderLine formats the group header: the first record's state, space-joined.
func HeaderLine(g group.Group) string {
	return strings.Join(g.Header(), " ")
}

// Frame renders a group as plain text, one terminated line per row.
func Frame(g group.Group, opts FrameOptions) string {
	eol := opts.eol()
	var b strings.Builder

	writeLine := func(s string) {
		if opts.MaxWidth > 0 {
			s = util.TruncateWidth(s, opts.MaxWidth)
		}
		b.WriteString(s)
		b.WriteString(eol)
	}

	writeLine(HeaderLine(g))
	for _, r := range g.Records() {
		writeLine(RecordLine(r))
	}
	return b.String()
}
