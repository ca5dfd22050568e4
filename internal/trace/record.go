// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package trace

// Parent identifies the object that owns a record.
type Parent struct {
	ID    int32
	Class string
}

// Record is a single decoded trace line. The timestamp is not kept.
type Record struct {
	ID           int32
	Parent       *Parent // nil for root-level objects
	ClassName    string
	FunctionName string
	State        []string
	Args         []string
}

// HasParent reports whether the record was emitted by a child object.
func (r *Record) HasParent() bool {
	return r.Parent != nil
}

// ClassSpec is the decoded class token of a line.
type ClassSpec struct {
	ClassName string
	Parent    *Parent
}
