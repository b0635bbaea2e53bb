package script_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlnum/bignumber"
	"github.com/katalvlaran/lvlnum/internal/script"
)

// TestLoadFile_RunCarry evaluates the testdata walkthrough end to end.
func TestLoadFile_RunCarry(t *testing.T) {
	s, err := script.LoadFile("testdata/carry.yaml")
	require.NoError(t, err)
	require.Len(t, s.Steps, 9)
	assert.Equal(t, "1", s.Vars["b"].String(), "unquoted scalars decode through UnmarshalText")

	res, err := script.Run(s)
	require.NoError(t, err)
	require.Len(t, res, 9)

	want := []struct {
		reg, val string
	}{
		{"c", "100000"},
		{"total", "10374667273232604685"},
		{"b", "1000"},
		{"b", "10"},
		{"a", "100000"},
		{"", ""},
		{"snapshot", "10374667273232604685"},
		{"snapshot", "10374667273232604680"},
		{"total", "10374667273232604685"},
	}
	for i, w := range want {
		assert.Equal(t, i, res[i].Step)
		assert.Equal(t, w.reg, res[i].Register, "step %d", i)
		assert.Equal(t, w.val, res[i].Value, "step %d", i)
	}
	require.NotNil(t, res[5].Compare)
	assert.Equal(t, 0, *res[5].Compare)

	// Vars are copied into the register file; the script is reusable.
	assert.Equal(t, "99999", s.Vars["a"].String())
	again, err := script.Run(s)
	require.NoError(t, err)
	assert.Equal(t, res, again)
}

// TestLoad_Rejects covers decoding and validation failures.
func TestLoad_Rejects(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"empty document", "", script.ErrEmptyScript},
		{"no steps", "vars: {a: \"1\"}\n", script.ErrEmptyScript},
		{"unknown op", "steps:\n  - op: mul\n    args: [a, b]\n", script.ErrUnknownOp},
		{"add arity", "steps:\n  - op: add\n    args: [a]\n    into: c\n", script.ErrArity},
		{"cmp arity", "steps:\n  - op: cmp\n    args: [a, b, c]\n", script.ErrArity},
		{"missing into", "steps:\n  - op: copy\n    args: [a]\n", script.ErrMissingInto},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := script.Load(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestLoad_DecodeErrors covers YAML-level failures.
func TestLoad_DecodeErrors(t *testing.T) {
	_, err := script.Load(strings.NewReader("steps:\n  - op: print\n    args: [a]\n    bogus: 1\n"))
	assert.Error(t, err, "unknown fields must be rejected")

	_, err = script.Load(strings.NewReader("vars:\n  a: \"12x\"\nsteps:\n  - op: print\n    args: [a]\n"))
	assert.Error(t, err, "malformed digit strings must be rejected")

	_, err = script.LoadFile("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}

// TestRun_Errors covers evaluation-time failures and partial results.
func TestRun_Errors(t *testing.T) {
	s := &script.Script{
		Vars: map[string]*bignumber.BigNumber{"a": bignumber.MustParse("5")},
		Steps: []script.Step{
			{Op: script.OpPrint, Args: []string{"a"}},
			{Op: script.OpAdd, Args: []string{"a", "ghost"}, Into: "c"},
		},
	}
	res, err := script.Run(s)
	assert.ErrorIs(t, err, script.ErrUnknownRegister)
	assert.Len(t, res, 1, "results before the failing step are kept")

	s.Steps = []script.Step{{Op: script.OpAddDigit, Args: []string{"a"}, Digit: 12}}
	_, err = script.Run(s)
	assert.ErrorIs(t, err, bignumber.ErrInvalidArgument)

	s.Steps = []script.Step{{Op: script.OpSetDigit, Args: []string{"a"}, Pos: 3, Digit: 1}}
	_, err = script.Run(s)
	assert.ErrorIs(t, err, bignumber.ErrOutOfRange)
}

// TestRun_ExtremeShiftCounts runs shifts with counts at the ends of the
// int range.
func TestRun_ExtremeShiftCounts(t *testing.T) {
	s, err := script.Load(strings.NewReader(`vars:
  a: "5"
  b: "5"
steps:
  - op: shiftLeft
    args: [a]
    n: -9223372036854775808
  - op: shiftRight
    args: [b]
    n: 9223372036854775807
`))
	require.NoError(t, err)

	res, err := script.Run(s)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "0", res[0].Value)
	assert.Equal(t, "0", res[1].Value)
}

// TestRun_NullVarAndLogger seeds zero for null vars and logs each step.
func TestRun_NullVarAndLogger(t *testing.T) {
	s, err := script.Load(strings.NewReader("vars:\n  z:\nsteps:\n  - op: addDigit\n    args: [z]\n    digit: 4\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	res, err := script.Run(s, script.WithLogger(logger))
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "4", res[0].Value)
	assert.Contains(t, buf.String(), "step done")
}
