// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package trace

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rootID(id int32) *int32 { return &id }

func TestDecodeLine(t *testing.T) {
	dec := NewDecoder(Options{}, nil)

	tests := []struct {
		name string
		line string
		want Record
	}{
		{
			name: "root record",
			line: `1599000000000 7 Game start 2:5:ready1:0 1:7:{"a":1}`,
			want: Record{
				ID:           7,
				ClassName:    "Game",
				FunctionName: "start",
				State:        []string{"ready", "0"},
				Args:         []string{`{"a":1}`},
			},
		},
		{
			name: "child record",
			line: "1599000000001 12 Game:7:Player move 1:3:a b 2:1:x1:y",
			want: Record{
				ID:           12,
				Parent:       &Parent{ID: 7, Class: "Game"},
				ClassName:    "Player",
				FunctionName: "move",
				State:        []string{"a b"},
				Args:         []string{"x", "y"},
			},
		},
		{
			name: "empty blocks",
			line: "1 2 Foo bar 0: 0:",
			want: Record{
				ID:           2,
				ClassName:    "Foo",
				FunctionName: "bar",
				State:        []string{},
				Args:         []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, kept, err := dec.DecodeLine(tt.line)
			require.NoError(t, err)
			require.True(t, kept)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DecodeLine mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeLine_Errors(t *testing.T) {
	dec := NewDecoder(Options{}, nil)

	tests := []struct {
		name      string
		line      string
		wantErr   error
		wantField string
	}{
		{"empty line", "", ErrBadNumber, "timestamp"},
		{"bad timestamp", "abc 1 Foo f 0: 0:", ErrBadNumber, "timestamp"},
		{"double space before id", "1  2 Foo f 0: 0:", ErrBadSeparator, "id"},
		{"double space before class", "1 2  Foo 0: 0:", ErrBadSeparator, "class"},
		{"double space before function", "1 2 Foo  0: 0:", ErrBadSeparator, "function"},
		{"tab after space", "1 2 Foo \tf 0: 0:", ErrBadSeparator, "function"},
		{"double space before state", "1 2 Foo f  0: 0:", ErrBadSeparator, "state"},
		{"double space before args", "1 2 Foo f 0:  0:", ErrBadSeparator, "args"},
		{"bad id", "1 x Foo f 0: 0:", ErrBadNumber, "id"},
		{"one colon class", "1 2 Bar:Foo f 0: 0:", ErrBadNumber, "class"},
		{"missing function", "1 2 Foo", ErrBadSeparator, "function"},
		{"missing state", "1 2 Foo f", ErrBadSeparator, "state"},
		{"short state item", "1 2 Foo f 1:9:abc 0:", ErrNotEnoughCharacters, "state"},
		{"missing args", "1 2 Foo f 0:", ErrBadSeparator, "args"},
		{"short args item", "1 2 Foo f 0: 1:5:ab", ErrNotEnoughCharacters, "args"},
		{"trailing data", "1 2 Foo f 0: 0: extra", ErrTrailingData, "trailer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, kept, err := dec.DecodeLine(tt.line)
			require.False(t, kept)
			require.ErrorIs(t, err, tt.wantErr)

			var fe *FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.wantField, fe.Field)
		})
	}
}

func TestDecodeLine_ErrorOffset(t *testing.T) {
	dec := NewDecoder(Options{}, nil)

	_, _, err := dec.DecodeLine("1 2 Foo f 0: 0: extra")
	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, 15, fe.Offset)
}

func TestDecodeLine_RootFilter(t *testing.T) {
	dec := NewDecoder(Options{RootID: rootID(7)}, nil)

	tests := []struct {
		name string
		line string
		kept bool
	}{
		{"parentless matching id", "1 7 Game f 0: 0:", true},
		{"parentless other id", "1 8 Game f 0: 0:", false},
		{"child of root", "1 99 Game:7:Player f 0: 0:", true},
		{"child of other root", "1 7 Game:9:Player f 0: 0:", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, kept, err := dec.DecodeLine(tt.line)
			require.NoError(t, err, "filtered lines are not errors")
			assert.Equal(t, tt.kept, kept)
		})
	}
}

func TestDecodeLine_FilterRunsBeforeBody(t *testing.T) {
	dec := NewDecoder(Options{RootID: rootID(7)}, nil)

	// The body is malformed, but the line never belonged to root 7.
	_, kept, err := dec.DecodeLine("1 8 Game f garbage")
	require.NoError(t, err)
	assert.False(t, kept)

	// A malformed class token is still an error even under a filter.
	_, _, err = dec.DecodeLine("1 8 Game:x:Player f 0: 0:")
	require.ErrorIs(t, err, ErrBadNumber)
}

func TestDecodeLine_Deterministic(t *testing.T) {
	dec := NewDecoder(Options{}, nil)
	line := "5 3 Game:1:Card flip 2:4:up 11:x 1:1:9"

	first, _, err := dec.DecodeLine(line)
	require.NoError(t, err)
	second, _, err := dec.DecodeLine(line)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("decoding is not deterministic:\n%s", diff)
	}
}

func TestFormatLine_RoundTrip(t *testing.T) {
	dec := NewDecoder(Options{}, nil)
	records := []Record{
		{ID: 1, ClassName: "Game", FunctionName: "start", State: []string{"a"}, Args: []string{}},
		{
			ID:           2,
			Parent:       &Parent{ID: 1, Class: "Game"},
			ClassName:    "Player",
			FunctionName: "say",
			State:        []string{"x y", "1:2"},
			Args:         []string{"hello world"},
		},
	}

	for i, rec := range records {
		line := FormatLine(uint64(1000+i), rec)
		got, kept, err := dec.DecodeLine(line)
		require.NoError(t, err, line)
		require.True(t, kept)
		if diff := cmp.Diff(rec, got); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestRecord_HasParent(t *testing.T) {
	assert.False(t, (&Record{}).HasParent())
	assert.True(t, (&Record{Parent: &Parent{ID: 1}}).HasParent())
}
