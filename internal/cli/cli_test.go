package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlnum/internal/cli"
)

// run executes the root command with args and returns stdout, stderr and the exit code.
func run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	root := cli.NewRootCommand()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	code := cli.Execute(root)

	return strings.TrimSpace(stdout.String()), strings.TrimSpace(stderr.String()), code
}

// TestAdd covers text and JSON output.
func TestAdd(t *testing.T) {
	out, _, code := run(t, "add", "99999", "1")
	assert.Equal(t, 0, code)
	assert.Equal(t, "100000", out)

	out, _, code = run(t, "add", "1", "2", "0003")
	assert.Equal(t, 0, code)
	assert.Equal(t, "6", out)

	out, _, code = run(t, "add", "7502759287502846283", "2871907985729758402", "--json")
	require.Equal(t, 0, code)
	assert.JSONEq(t, `{"result":"10374667273232604685"}`, out)
}

// TestAdd_Errors covers argument validation and error formatting.
func TestAdd_Errors(t *testing.T) {
	_, errOut, code := run(t, "add", "12", "1a")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "argument 2")

	_, errOut, code = run(t, "add", "12", "x", "--json")
	assert.Equal(t, 1, code)
	var payload map[string]map[string]string
	require.NoError(t, json.Unmarshal([]byte(errOut), &payload))
	assert.Contains(t, payload["error"]["message"], "invalid digit string")

	_, _, code = run(t, "add", "12")
	assert.Equal(t, 1, code, "add needs two operands")
}

// TestShift covers both directions and negative counts.
func TestShift(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"shift", "5", "3"}, "5000"},
		{[]string{"shift", "147888", "3", "--right"}, "147"},
		{[]string{"shift", "--", "5000", "-2"}, "50"},
		{[]string{"shift", "1", "2", "--right"}, "0"},
		{[]string{"shift", "--", "5", "-9223372036854775808"}, "0"},
		{[]string{"shift", "--right", "--", "5", "-9223372036854775808"}, "5"},
		{[]string{"shift", "5", "9223372036854775807", "--right"}, "0"},
	}
	for _, tc := range cases {
		out, errOut, code := run(t, tc.args...)
		require.Equal(t, 0, code, "args %v: %s", tc.args, errOut)
		assert.Equal(t, tc.want, out, "args %v", tc.args)
	}

	_, _, code := run(t, "shift", "5", "three")
	assert.Equal(t, 1, code)
}

// TestCmp prints the ordering.
func TestCmp(t *testing.T) {
	out, _, _ := run(t, "cmp", "234567", "234067")
	assert.Equal(t, "1", out)
	out, _, _ = run(t, "cmp", "234067", "234567")
	assert.Equal(t, "-1", out)
	out, _, _ = run(t, "cmp", "0042", "42", "--json")
	assert.JSONEq(t, `{"compare":0}`, out)
}

// TestDigit covers add and set modes plus range errors.
func TestDigit(t *testing.T) {
	out, _, code := run(t, "digit", "1999", "1")
	require.Equal(t, 0, code)
	assert.Equal(t, "2000", out)

	out, _, code = run(t, "digit", "1999", "1", "--set", "1")
	require.Equal(t, 0, code)
	assert.Equal(t, "1919", out)

	_, errOut, code := run(t, "digit", "1999", "12")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "invalid argument")

	_, _, code = run(t, "digit", "1999", "1", "--set", "9")
	assert.Equal(t, 1, code)
}

// TestRun evaluates a script file and checks debug logs reach stderr.
func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	doc := "vars:\n  a: \"99999\"\n  b: \"1\"\nsteps:\n  - op: add\n    args: [a, b]\n    into: c\n  - op: cmp\n    args: [c, a]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, errOut, code := run(t, "run", path, "--log-level", "debug")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "0 add c=100000\n1 cmp 1", out)
	assert.Contains(t, errOut, "step done")

	out, _, code = run(t, "run", path, "--json")
	require.Equal(t, 0, code)
	assert.JSONEq(t, `[
		{"step":0,"op":"add","register":"c","value":"100000"},
		{"step":1,"op":"cmp","compare":1}
	]`, out)

	_, _, code = run(t, "run", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, 1, code)
}

// TestLogLevel rejects unknown levels.
func TestLogLevel(t *testing.T) {
	_, errOut, code := run(t, "add", "1", "2", "--log-level", "loud")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "invalid --log-level")
}
