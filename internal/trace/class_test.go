// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package trace

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDecodeClassSpec(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    ClassSpec
		wantErr error
	}{
		{
			name:  "simple",
			token: "Foo",
			want:  ClassSpec{ClassName: "Foo"},
		},
		{
			name:  "hierarchical",
			token: "Bar:42:Foo",
			want:  ClassSpec{ClassName: "Foo", Parent: &Parent{ID: 42, Class: "Bar"}},
		},
		{
			name:    "one colon",
			token:   "Bar:Foo",
			wantErr: ErrBadNumber,
		},
		{
			name:    "doubled colon",
			token:   "Bar::42:Foo",
			wantErr: ErrBadNumber,
		},
		{
			name:    "missing second colon",
			token:   "Bar:42Foo",
			wantErr: ErrBadSeparator,
		},
		{
			name:    "three colons",
			token:   "Bar:42:Foo:Baz",
			wantErr: ErrBadSeparator,
		},
		{
			name:    "parent id overflow",
			token:   "Bar:99999999999:Foo",
			wantErr: ErrBadNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeClassSpec(tt.token)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DecodeClassSpec(%q) mismatch (-want +got):\n%s", tt.token, diff)
			}
		})
	}
}

func TestEncodeClassSpec_RoundTrip(t *testing.T) {
	for _, spec := range []ClassSpec{
		{ClassName: "Game"},
		{ClassName: "Player", Parent: &Parent{ID: 7, Class: "Game"}},
	} {
		got, err := DecodeClassSpec(encodeClassSpec(spec.ClassName, spec.Parent))
		require.NoError(t, err)
		if diff := cmp.Diff(spec, got); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}
