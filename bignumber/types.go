// SPDX-License-Identifier: MIT

package bignumber

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlnum/digitlist"
)

// Sentinel errors for bignumber operations.
var (
	// ErrFormat indicates a digit string holding a byte outside '0'..'9'.
	// A leading minus sign is rejected the same way.
	ErrFormat = errors.New("bignumber: invalid digit string")

	// ErrInvalidArgument indicates a digit outside 0..9, a position outside
	// [0, Length()), a nil comparison operand or an unusable digit list.
	ErrInvalidArgument = errors.New("bignumber: invalid argument")

	// ErrOutOfRange is the digitlist sentinel, re-exported so callers can
	// match position errors without importing digitlist.
	ErrOutOfRange = digitlist.ErrOutOfRange
)

// ---------- error context tags ----------

const (
	ctxDigitAt    = "DigitAt"
	ctxSetDigitAt = "SetDigitAt"
	ctxAddDigit   = "AddDigit"
	ctxEqual      = "Equal"
	ctxDigitList  = "SetDigitList"
)

const (
	base     = 10
	maxDigit = base - 1
)

// argErrorf tags an invalid-argument failure with the method and value.
func argErrorf(method string, v int) error {
	return fmt.Errorf("BigNumber.%s(%d): %w", method, v, ErrInvalidArgument)
}

// posErrorf tags an invalid position; the result matches both
// ErrInvalidArgument and ErrOutOfRange.
func posErrorf(method string, pos int) error {
	return fmt.Errorf("BigNumber.%s(%d): %w: %w", method, pos, ErrInvalidArgument, ErrOutOfRange)
}

// BigNumber is an arbitrary-precision non-negative integer.
// The zero value represents 0 and is ready to use.
type BigNumber struct {
	digits *digitlist.List // least-significant first; nil means canonical zero
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*BigNumber)(nil)

// zeroDigits backs read-only access to a zero-value BigNumber. It is never
// handed out or mutated.
var zeroDigits = digitlist.FromValues(0)

// view returns the backing list for reading without touching b, so
// concurrent readers of a zero value do not race.
func (b *BigNumber) view() *digitlist.List {
	if b.digits == nil {
		return zeroDigits
	}

	return b.digits
}

// list returns the backing list for writing, materialising canonical zero
// on first use.
func (b *BigNumber) list() *digitlist.List {
	if b.digits == nil {
		b.digits = digitlist.FromValues(0)
	}

	return b.digits
}

// New returns the value 0.
func New() *BigNumber {
	return &BigNumber{digits: digitlist.FromValues(0)}
}

// Parse builds a BigNumber from a most-significant-first digit string.
//
// The empty string parses to 0. Each byte must be '0'..'9'; leading zeros
// are skipped and the remaining digits are pushed to the front of the list
// in input order, which stores the ones digit at the head.
//
// Errors:
//   - ErrFormat on any other byte, including '-' and '+'.
//
// Complexity: O(len(s)).
func Parse(s string) (*BigNumber, error) {
	start := -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("bignumber.Parse: byte %q at offset %d: %w", c, i, ErrFormat)
		}
		if start < 0 && c != '0' {
			start = i
		}
	}
	if start < 0 {
		return New(), nil
	}

	l := digitlist.New()
	for i := start; i < len(s); i++ {
		l.InsertFront(int(s[i] - '0'))
	}

	return &BigNumber{digits: l}, nil
}

// MustParse is like Parse but panics on malformed input.
// Intended for literals in tests and examples.
func MustParse(s string) *BigNumber {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return b
}

// FromUint64 converts a machine integer.
func FromUint64(v uint64) *BigNumber {
	if v == 0 {
		return New()
	}
	l := digitlist.New()
	for ; v > 0; v /= base {
		l.InsertRear(int(v % base))
	}

	return &BigNumber{digits: l}
}

// FromDigitList builds a BigNumber from a least-significant-first list.
// The list is copied; leading zeros are stripped.
//
// Errors:
//   - ErrInvalidArgument if l is nil, empty, or holds a value outside 0..9.
func FromDigitList(l *digitlist.List) (*BigNumber, error) {
	b := &BigNumber{}
	if err := b.SetDigitList(l); err != nil {
		return nil, err
	}

	return b, nil
}

// trim removes most-significant zeros while more than one digit remains.
// It finds the highest non-zero digit in one pass and keeps the prefix up
// to it.
//
// Complexity: O(1) when the top digit is non-zero, O(Length()) otherwise.
func (b *BigNumber) trim() {
	l := b.list()
	last := l.Size() - 1
	if top, _ := l.Get(last); top != 0 || last == 0 {
		return
	}

	keep := 0
	for i, d := range l.Values() {
		if d != 0 {
			keep = i
		}
	}
	// 0 <= keep < last, so the range is valid.
	b.digits, _ = l.SubList(0, keep)
}
