package script

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/lvlnum/bignumber"
)

// Option configures Run.
type Option func(*runner)

// WithLogger sets the logger used for per-step debug records.
func WithLogger(l *slog.Logger) Option {
	return func(r *runner) {
		if l != nil {
			r.log = l
		}
	}
}

// runner holds the register file for one evaluation.
type runner struct {
	regs map[string]*bignumber.BigNumber
	log  *slog.Logger
}

// Run validates s and evaluates its steps in order. Vars are copied into a
// fresh register file, so s itself is never mutated and can be run again.
// Evaluation stops at the first failing step.
func Run(s *Script, opts ...Option) ([]Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	r := &runner{
		regs: make(map[string]*bignumber.BigNumber, len(s.Vars)),
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	for name, v := range s.Vars {
		if v == nil {
			r.regs[name] = bignumber.New()

			continue
		}
		r.regs[name] = v.Copy()
	}

	results := make([]Result, 0, len(s.Steps))
	for i, st := range s.Steps {
		res, err := r.exec(st)
		if err != nil {
			r.log.Debug("step failed", "step", i, "op", st.Op, "error", err)

			return results, stepErrorf(i, st.Op, err)
		}
		res.Step, res.Op = i, st.Op
		r.log.Debug("step done", "step", i, "op", st.Op, "register", res.Register, "value", res.Value)
		results = append(results, res)
	}

	return results, nil
}

// reg looks up a register by name.
func (r *runner) reg(name string) (*bignumber.BigNumber, error) {
	b, ok := r.regs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegister, name)
	}

	return b, nil
}

// exec evaluates one validated step.
func (r *runner) exec(st Step) (Result, error) {
	target, err := r.reg(st.Args[0])
	if err != nil {
		return Result{}, err
	}

	switch st.Op {
	case OpAdd:
		operands := []*bignumber.BigNumber{target}
		for _, name := range st.Args[1:] {
			b, err := r.reg(name)
			if err != nil {
				return Result{}, err
			}
			operands = append(operands, b)
		}
		r.regs[st.Into] = bignumber.Sum(operands...)

		return r.report(st.Into), nil

	case OpShiftLeft:
		target.ShiftLeft(st.N)

	case OpShiftRight:
		target.ShiftRight(st.N)

	case OpAddDigit:
		if err := target.AddDigit(st.Digit); err != nil {
			return Result{}, err
		}

	case OpSetDigit:
		if err := target.SetDigitAt(st.Pos, st.Digit); err != nil {
			return Result{}, err
		}

	case OpCopy:
		r.regs[st.Into] = target.Copy()

		return r.report(st.Into), nil

	case OpCmp:
		other, err := r.reg(st.Args[1])
		if err != nil {
			return Result{}, err
		}
		c := target.Compare(other)

		return Result{Compare: &c}, nil

	case OpPrint:
		// reporting only
	}

	return r.report(st.Args[0]), nil
}

// report snapshots a register into a Result.
func (r *runner) report(name string) Result {
	return Result{Register: name, Value: r.regs[name].String()}
}
