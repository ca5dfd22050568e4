// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/tracenav/internal/config"
	"github.com/jeranaias/tracenav/internal/navigator"
)

const cleanTrace = `100 1 Game start 1:1:A 0:
101 5 Game:1:Player join 1:1:A 1:3:bob
102 2 Game start 1:1:B 0:
103 1 Game tick 1:1:C 0:
`

// Plain frames of cleanTrace's three groups.
const (
	frameA = "A\r\n1 Game start \r\n     5 Player A join bob\r\n"
	frameB = "B\r\n2 Game start \r\n"
	frameC = "C\r\n1 Game tick \r\n"
)

type result struct {
	out  string
	err  error
	code int
}

// isolate keeps the host config and environment out of the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, name := range []string{
		"TRACENAV_FILE", "TRACENAV_ROOT_ID", "TRACENAV_VIEW",
		"TRACENAV_REDRAW", "TRACENAV_LOG_LEVEL", "TRACENAV_LOG_FILE",
	} {
		t.Setenv(name, "")
	}
}

// execute runs tracenav with stdin and scripted terminal keys.
func execute(t *testing.T, stdin, ttyKeys string, args ...string) result {
	t.Helper()
	isolate(t)
	return run(t, stdin, ttyKeys, args...)
}

// run is execute without isolating the environment first.
func run(t *testing.T, stdin, ttyKeys string, args ...string) result {
	t.Helper()
	a := &app{
		openKeys: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(ttyKeys)), nil
		},
		interactive: func() bool { return false },
	}
	cmd := newRootCommand(a)

	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return result{out: out.String(), err: err, code: GetExitCode(err)}
}

func writeTrace(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.log")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// =============================================================================
// SESSIONS
// =============================================================================

func TestRoot_PlainSessionFromFile(t *testing.T) {
	path := writeTrace(t, cleanTrace)

	// Keys come from stdin when the trace is a file.
	res := execute(t, "jjkq", "", "-f", path)
	require.NoError(t, res.err)
	assert.Equal(t, frameA+frameB+frameC+frameB, res.out)
}

func TestRoot_PlainSessionKeysExhausted(t *testing.T) {
	path := writeTrace(t, cleanTrace)

	res := execute(t, "G", "", "-f", path, "--view", "plain")
	require.NoError(t, res.err)
	assert.Equal(t, frameA+frameC, res.out)
}

func TestRoot_StdinTraceWithRootID(t *testing.T) {
	// Group B belongs to root 2 and is filtered out.
	res := execute(t, cleanTrace, "jq", "-i", "1")
	require.NoError(t, res.err)
	assert.Equal(t, frameA+frameC, res.out)
}

func TestRoot_ClearRedrawAndLF(t *testing.T) {
	isolate(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("view:\n  line_ending: lf\n"), 0o600))
	path := writeTrace(t, cleanTrace)

	res := execute(t, "q", "", "-f", path, "--config", cfgPath, "--redraw", "clear")
	require.NoError(t, res.err)
	assert.Equal(t, "\x1b[H\x1b[2JA\n1 Game start \n     5 Player A join bob\n", res.out)
}

func TestRoot_FlagsOverrideInvalidLayers(t *testing.T) {
	path := writeTrace(t, cleanTrace)
	badFile := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(badFile, []byte("[view]\nmode = \"fancy\"\nredraw = \"flash\"\n"), 0o600))

	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{
			name: "environment",
			env:  map[string]string{"TRACENAV_VIEW": "bogus", "TRACENAV_LOG_LEVEL": "loud"},
			args: []string{"-f", path, "--view", "plain", "--log-level", "error"},
		},
		{
			name: "config file",
			args: []string{"-f", path, "--config", badFile, "--view", "plain", "--redraw", "append"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			res := run(t, "q", "", tt.args...)
			require.NoError(t, res.err)
			assert.Equal(t, frameA, res.out)
		})
	}
}

func TestRoot_BadEnvironmentWithoutFlag(t *testing.T) {
	isolate(t)
	t.Setenv("TRACENAV_VIEW", "bogus")

	res := run(t, "q", "", "-f", writeTrace(t, cleanTrace))
	require.Error(t, res.err)
	assert.Equal(t, ExitConfigError, res.code)
}

func TestRoot_NoData(t *testing.T) {
	path := writeTrace(t, "garbage\n100 1 Game start 1:1:A 0: extra\n")

	res := execute(t, "", "", "-f", path)
	require.NoError(t, res.err)
	assert.Equal(t, navigator.NoDataMessage+"\n", res.out)
}

func TestRoot_Passthrough(t *testing.T) {
	res := execute(t, "first\r\nsecond: 1:2\nlast", "")
	require.NoError(t, res.err)
	assert.Equal(t, "first\nsecond: 1:2\nlast\n", res.out)
}

// =============================================================================
// ERRORS AND EXIT CODES
// =============================================================================

func TestRoot_UsageErrors(t *testing.T) {
	path := writeTrace(t, cleanTrace)

	tests := []struct {
		name string
		args []string
	}{
		{"bad id", []string{"-f", path, "-i", "abc"}},
		{"id out of range", []string{"-i", "2147483648"}},
		{"unknown flag", []string{"--nope"}},
		{"positional arg", []string{path}},
		{"bad view", []string{"-f", path, "--view", "fancy"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, "", "", tt.args...)
			require.Error(t, res.err)
			assert.Equal(t, ExitUsageError, res.code, res.err.Error())
			assert.Empty(t, res.out)
		})
	}
}

func TestRoot_MissingFile(t *testing.T) {
	res := execute(t, "", "", "-f", filepath.Join(t.TempDir(), "missing.log"))
	require.Error(t, res.err)
	assert.Equal(t, ExitSourceError, res.code)

	var srcErr *SourceError
	require.True(t, errors.As(res.err, &srcErr))
	assert.True(t, errors.Is(res.err, os.ErrNotExist))
}

func TestRoot_BadConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[view]\nmode = \"fancy\"\n"), 0o600))

	res := execute(t, "", "", "--config", cfgPath)
	require.Error(t, res.err)
	assert.Equal(t, ExitConfigError, res.code)
}

func TestRoot_StdinTraceWithoutTerminal(t *testing.T) {
	isolate(t)
	a := &app{
		openKeys:    func() (io.ReadCloser, error) { return nil, os.ErrNotExist },
		interactive: func() bool { return false },
	}
	cmd := newRootCommand(a)
	cmd.SetIn(strings.NewReader(cleanTrace))
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{"-i", "1"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitGeneralError, GetExitCode(err))
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitSuccess},
		{errors.New("boom"), ExitGeneralError},
		{&ValidationError{Field: "--id"}, ExitUsageError},
		{&ConfigError{Err: errors.New("bad")}, ExitConfigError},
		{config.ValidateErrors{{Field: "view.mode"}}, ExitConfigError},
		{&SourceError{Path: "-", Err: io.ErrUnexpectedEOF}, ExitSourceError},
		{NewCommandError("check", "decode", "1 of 2 lines failed", nil), ExitGeneralError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GetExitCode(tt.err), "%v", tt.err)
	}
}

func TestDisplayError(t *testing.T) {
	var buf bytes.Buffer
	DisplayError(&buf, &SourceError{Path: "x.log", Err: os.ErrNotExist})
	assert.Contains(t, buf.String(), "[ERROR]")
	assert.Contains(t, buf.String(), "source x.log")

	buf.Reset()
	DisplayError(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestBindings(t *testing.T) {
	b := Bindings(config.Default().Keys)
	assert.Equal(t, navigator.CmdPrev, b["k"])
	assert.Equal(t, navigator.CmdNext, b["down"])
	assert.Equal(t, navigator.CmdLast, b["G"])
	assert.Equal(t, navigator.CmdQuit, b["ctrl+c"])
	assert.Len(t, b, 10)
}
