// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package trace decodes the length-prefixed trace format written by
// instrumented applications.
//
// Each trace line has the shape:
//
//	<timestamp> <id> <class-spec> <function> <state-block> <args-block>
//
// The class-spec is either a bare class name ("Game") or a reference to
// the owning object ("Game:42:Player"). State and args blocks share one
// encoding:
//
//	<count>:<len_1>:<item_1><len_2>:<item_2>...
//
// Items are opaque and may contain any character, including spaces and
// colons, because their extent is given by the length prefix.
//
// # Key Types
//
//   - Record: one decoded line
//   - Decoder: decodes a stream of lines, applying an optional root-id filter
//   - FieldError / LineError: per-line decode failures
//
// # Usage
//
//	dec := trace.NewDecoder(trace.Options{RootID: &id}, logger)
//	res, err := dec.Decode(file)
//	if err != nil {
//	    return err // the source itself could not be read
//	}
//	for _, f := range res.Failures {
//	    fmt.Println(f) // malformed lines are reported, not fatal
//	}
package trace
