// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package navigator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSource fails the test if it is read.
type countingSource struct {
	reads int
}

func (s *countingSource) Next() (Command, error) {
	s.reads++
	return CmdQuit, nil
}

func TestRun_NoData(t *testing.T) {
	var out strings.Builder
	src := &countingSource{}

	require.NoError(t, Run(nil, src, &out, Options{}))
	assert.Equal(t, NoDataMessage+"\r\n", out.String())
	assert.Zero(t, src.reads, "no command may be read without data")
}

func TestRun_InitialFrameThenQuit(t *testing.T) {
	var out strings.Builder
	groups := fixture()

	require.NoError(t, Run(groups, Commands(CmdQuit), &out, Options{}))
	assert.Equal(t, Frame(groups[0], FrameOptions{}), out.String())
}

func TestRun_OneFramePerCommand(t *testing.T) {
	var out strings.Builder
	groups := fixture()
	opts := Options{Frame: FrameOptions{LineEnding: LF}}

	src := Commands(CmdNext, CmdNext, CmdNext, CmdOther, CmdPrev, CmdQuit, CmdNext)
	require.NoError(t, Run(groups, src, &out, opts))

	f := func(i int) string { return Frame(groups[i], opts.Frame) }
	want := f(0) + f(1) + f(2) + f(2) + f(2) + f(1)
	assert.Equal(t, want, out.String())
}

func TestRun_SourceExhausted(t *testing.T) {
	var out strings.Builder
	groups := fixture()

	require.NoError(t, Run(groups, Commands(CmdNext), &out, Options{}))
	assert.Equal(t, Frame(groups[0], FrameOptions{})+Frame(groups[1], FrameOptions{}), out.String())
}

func TestRun_ClearRedraw(t *testing.T) {
	var out strings.Builder
	groups := fixture()

	require.NoError(t, Run(groups, Commands(CmdNext, CmdQuit), &out, Options{Redraw: RedrawClear}))
	assert.Equal(t, 2, strings.Count(out.String(), clearScreen))
	assert.True(t, strings.HasPrefix(out.String(), clearScreen))
}

type errSource struct{}

func (errSource) Next() (Command, error) { return CmdOther, errors.New("tty gone") }

func TestRun_SourceError(t *testing.T) {
	var out strings.Builder
	err := Run(fixture(), errSource{}, &out, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tty gone")
}

func TestRun_WithKeySource(t *testing.T) {
	var out strings.Builder
	groups := fixture()
	opts := Options{Frame: FrameOptions{LineEnding: LF}}

	require.NoError(t, Run(groups, NewKeySource(strings.NewReader("jjxkq"), nil), &out, opts))

	f := func(i int) string { return Frame(groups[i], opts.Frame) }
	assert.Equal(t, f(0)+f(1)+f(2)+f(2)+f(1), out.String())
}
