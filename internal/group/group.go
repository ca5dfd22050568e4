// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package group partitions decoded trace records into navigable blocks.
//
// A block starts at a root-level record and absorbs every following record
// that either carries a parent or repeats its predecessor's state. The next
// parentless record whose state differs from the record right before it
// opens a new block.
package group

import (
	"slices"

	"github.com/jeranaias/tracenav/internal/trace"
)

// Group is a non-empty run of consecutive records. It references records
// owned by the slice passed to Build.
type Group struct {
	records []*trace.Record
}

// Records returns the records of the group in input order.
func (g Group) Records() []*trace.Record {
	return g.records
}

// Len returns the number of records in the group.
func (g Group) Len() int {
	return len(g.records)
}

// First returns the record that opened the group.
func (g Group) First() *trace.Record {
	if len(g.records) == 0 {
		return nil
	}
	return g.records[0]
}

// Header returns the state shown above the group: the state of its first record.
func (g Group) Header() []string {
	if first := g.First(); first != nil {
		return first.State
	}
	return nil
}

// Build groups records in order. Each record is compared with the record
// immediately before it in the input, not with the first member of the
// open group. The result is disjoint and its concatenation is records.
func Build(records []trace.Record) []Group {
	if len(records) == 0 {
		return nil
	}

	var groups []Group
	current := Group{records: []*trace.Record{&records[0]}}

	for i := 1; i < len(records); i++ {
		prev, rec := &records[i-1], &records[i]
		if rec.HasParent() || slices.Equal(prev.State, rec.State) {
			current.records = append(current.records, rec)
			continue
		}
		groups = append(groups, current)
		current = Group{records: []*trace.Record{rec}}
	}

	return append(groups, current)
}
