package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdva/softrt/conformance"
)

func run(args ...string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeSuite(t *testing.T, data string) string {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestList(t *testing.T) {
	a := assert.New(t)
	out, _, err := run("list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	a.Len(lines, 16)
	a.Equal([]string{"NAME", "OP", "TYPE"}, strings.Fields(lines[0]))
	a.Equal([]string{"___fsdiv", "div", "float32"}, strings.Fields(lines[1]))
	a.Contains(out, "_rrslonglong")

	_, _, err = run("list", "extra")
	a.Error(err)
}

func TestVectors(t *testing.T) {
	a := assert.New(t)
	out, _, err := run("vectors")
	require.NoError(t, err)
	a.Contains(out, "ok  s32 -7/3==-2\n")
	a.NotContains(out, "FAIL")

	good := writeSuite(t, "name: good\ncases:\n  - {name: u32 5000/125==40, routine: _divulong, a: 5000, b: 125, want: 40}\n")
	out, _, err = run("vectors", good)
	require.NoError(t, err)
	a.Equal("ok  u32 5000/125==40\nSummary: 1/1\n", out)
}

func TestVectorsFailing(t *testing.T) {
	a := assert.New(t)
	bad := writeSuite(t, `
name: bad
cases:
  - {name: right, routine: _modslong, a: -7, b: 3, want: -1}
  - {name: wrong, routine: _modslong, a: -7, b: 3, want: 1}
`)
	out, _, err := run("vectors", bad)
	a.True(errors.Is(err, errFailed), "%v", err)
	a.EqualError(err, "1 of 1 suites: conformance check failed")
	a.Equal("ok  right\nFAIL wrong\nSummary: 1/2\n", out)

	_, _, err = run("vectors", filepath.Join(t.TempDir(), "missing.yaml"))
	a.True(errors.Is(err, os.ErrNotExist), "%v", err)
}

func TestLogLevel(t *testing.T) {
	a := assert.New(t)
	_, _, err := run("--log-level", "loud", "list")
	if a.Error(err) {
		a.True(strings.HasPrefix(err.Error(), `bad log level "loud"`), "%v", err)
	}

	bad := writeSuite(t, "cases:\n  - {name: wrong, routine: _divulong, a: 4, b: 2, want: 3}\n")
	_, stderr, err := run("--log-level", "debug", "vectors", bad)
	a.True(errors.Is(err, errFailed))
	a.Contains(stderr, "level=DEBUG msg=mismatch")
	a.Contains(stderr, "got=0x2")

	_, stderr, err = run("--log-level", "error", "vectors", bad)
	a.True(errors.Is(err, errFailed))
	a.Empty(stderr)
}

func TestSweep(t *testing.T) {
	a := assert.New(t)
	out, _, err := run("sweep", "--n", "200", "--seed", "3", "--routine", "_mullong,_rrslonglong", "--no-progress")
	require.NoError(t, err)
	a.Equal("checked 400, skipped 0, mismatches 0\n", out)

	_, stderr, err := run("sweep", "--n", "50", "--seed", "3", "--routine", "_mullong")
	require.NoError(t, err)
	a.NotEmpty(stderr)

	_, _, err = run("sweep", "--n", "1", "--routine", "_divfoo", "--no-progress")
	a.True(errors.Is(err, conformance.ErrUnknownRoutine), "%v", err)
}
