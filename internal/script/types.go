// Package script loads and evaluates YAML batch scripts over named
// bignumber registers.
//
// A script seeds registers from `vars` and then runs `steps` in order:
//
//	vars:
//	  a: "99999"
//	  b: "1"
//	steps:
//	  - op: add
//	    args: [a, b]
//	    into: c
//	  - op: shiftLeft
//	    args: [c]
//	    n: 3
//	  - op: print
//	    args: [c]
//
// Evaluation is deterministic: the same document always yields the same
// results in the same order.
package script

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlnum/bignumber"
)

// Sentinel errors for script loading and evaluation.
var (
	// ErrEmptyScript indicates a document with no steps.
	ErrEmptyScript = errors.New("script: no steps")

	// ErrUnknownOp indicates a step op outside the supported set.
	ErrUnknownOp = errors.New("script: unknown op")

	// ErrArity indicates a step with the wrong number of register arguments.
	ErrArity = errors.New("script: wrong number of arguments")

	// ErrMissingInto indicates a step that produces a new value without a target register.
	ErrMissingInto = errors.New("script: missing into register")

	// ErrUnknownRegister indicates a reference to a register never assigned.
	ErrUnknownRegister = errors.New("script: unknown register")
)

// stepErrorf tags err with the step index and op.
func stepErrorf(i int, op Op, err error) error {
	return fmt.Errorf("step %d (%s): %w", i, op, err)
}

// Op names a script operation.
type Op string

// Supported ops.
const (
	OpAdd        Op = "add"        // into = args[0] + args[1] + ...
	OpShiftLeft  Op = "shiftLeft"  // args[0] *= 10^n
	OpShiftRight Op = "shiftRight" // args[0] /= 10^n
	OpAddDigit   Op = "addDigit"   // args[0] += digit
	OpSetDigit   Op = "setDigit"   // args[0][pos] = digit
	OpCopy       Op = "copy"       // into = copy(args[0])
	OpCmp        Op = "cmp"        // compare args[0] with args[1]
	OpPrint      Op = "print"      // report args[0]
)

// arity bounds the register arguments of an op; max < 0 means unbounded.
type arity struct {
	min, max int
	into     bool
}

var arities = map[Op]arity{
	OpAdd:        {min: 2, max: -1, into: true},
	OpShiftLeft:  {min: 1, max: 1},
	OpShiftRight: {min: 1, max: 1},
	OpAddDigit:   {min: 1, max: 1},
	OpSetDigit:   {min: 1, max: 1},
	OpCopy:       {min: 1, max: 1, into: true},
	OpCmp:        {min: 2, max: 2},
	OpPrint:      {min: 1, max: 1},
}

// Step is one operation of a script.
type Step struct {
	Op    Op       `yaml:"op"`
	Args  []string `yaml:"args"`
	Into  string   `yaml:"into,omitempty"`
	N     int      `yaml:"n,omitempty"`
	Digit int      `yaml:"digit,omitempty"`
	Pos   int      `yaml:"pos,omitempty"`
}

// Script is a decoded batch document. Vars decode straight into BigNumber
// values through encoding.TextUnmarshaler; a null var seeds zero.
type Script struct {
	Vars  map[string]*bignumber.BigNumber `yaml:"vars"`
	Steps []Step                          `yaml:"steps"`
}

// Result records the observable outcome of one step.
//
// Register names the register the step wrote or reported, Value is its
// decimal text afterwards. Compare is set only for cmp steps.
type Result struct {
	Step     int    `json:"step"`
	Op       Op     `json:"op"`
	Register string `json:"register,omitempty"`
	Value    string `json:"value,omitempty"`
	Compare  *int   `json:"compare,omitempty"`
}

// Validate checks op names, register arity and into targets without
// evaluating anything.
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return ErrEmptyScript
	}
	for i, st := range s.Steps {
		a, ok := arities[st.Op]
		if !ok {
			return stepErrorf(i, st.Op, ErrUnknownOp)
		}
		if len(st.Args) < a.min || (a.max >= 0 && len(st.Args) > a.max) {
			return stepErrorf(i, st.Op, fmt.Errorf("%w: got %d", ErrArity, len(st.Args)))
		}
		if a.into && st.Into == "" {
			return stepErrorf(i, st.Op, ErrMissingInto)
		}
	}

	return nil
}
