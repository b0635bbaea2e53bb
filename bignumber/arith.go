// SPDX-License-Identifier: MIT
// File: arith.go
// Role: decimal shifts, single-digit addition and grade-school addition.
// Mutation policy:
//   - ShiftLeft, ShiftRight, AddDigit mutate the receiver.
//   - Add returns a fresh value and leaves both operands untouched.

package bignumber

import (
	"math"

	"github.com/katalvlaran/lvlnum/digitlist"
)

// Length returns the number of stored digits (at least 1).
func (b *BigNumber) Length() int {
	return b.view().Size()
}

// IsZero reports whether b is the canonical zero.
func (b *BigNumber) IsZero() bool {
	l := b.view()
	if l.Size() != 1 {
		return false
	}
	d, _ := l.Get(0)

	return d == 0
}

// ShiftLeft multiplies b by 10ⁿ in place by prepending n zero digits.
// n == 0 and a zero value are no-ops; a negative n shifts right by -n.
// math.MinInt has no positive counterpart and collapses b to 0, the same
// as any right shift of at least Length() digits.
//
// Complexity: O(n).
func (b *BigNumber) ShiftLeft(n int) {
	if n == 0 || b.IsZero() {
		return
	}
	if n == math.MinInt {
		b.ShiftRight(math.MaxInt)

		return
	}
	if n < 0 {
		b.ShiftRight(-n)

		return
	}

	l := b.list()
	for i := 0; i < n; i++ {
		l.InsertFront(0)
	}
}

// ShiftRight integer-divides b by 10ⁿ in place, discarding the remainder.
// n == 0 and a zero value are no-ops; a negative n shifts left by -n.
// math.MinInt asks for more digits than a list can hold and is a no-op.
//
// When n reaches Length(), n is clamped to Length() and a zero digit is
// appended at the tail first, so removing n head digits leaves canonical
// zero instead of an empty list.
//
// Complexity: O(min(n, Length())).
func (b *BigNumber) ShiftRight(n int) {
	if n == 0 || n == math.MinInt || b.IsZero() {
		return
	}
	if n < 0 {
		b.ShiftLeft(-n)

		return
	}

	l := b.list()
	if n >= l.Size() {
		n = l.Size()
		l.InsertRear(0)
	}
	for i := 0; i < n; i++ {
		// Head removal on a non-empty list cannot fail.
		_ = l.Remove(0)
	}
}

// AddDigit adds a single digit to b in place.
//
// Starting at the ones position, each step stores digit+carry when it is
// at most 9 and stops; otherwise it stores the sum minus 10 and carries 1
// to the next position. A carry past the most significant digit becomes a
// new tail digit.
//
// Errors:
//   - ErrInvalidArgument if d is outside 0..9.
func (b *BigNumber) AddDigit(d int) error {
	if d < 0 || d > maxDigit {
		return argErrorf(ctxAddDigit, d)
	}

	l := b.list()
	carry := d
	for i := 0; ; i++ {
		if i == l.Size() {
			l.InsertRear(carry)

			return nil
		}
		cur, _ := l.Get(i)
		sum := cur + carry
		if sum <= maxDigit {
			_ = l.Set(i, sum)

			return nil
		}
		_ = l.Set(i, sum-base)
		carry = 1
	}
}

// Add returns b + other as a new value. Neither operand is modified.
// A nil other is treated as zero.
//
// Both operands are walked in parallel from the ones digit; once the
// shorter one runs out, the longer one continues alone with the pending
// carry. A carry left after the last position becomes the new most
// significant digit. The result is built by rear insertion.
//
// Complexity: O(max(Length(), other.Length())).
func (b *BigNumber) Add(other *BigNumber) *BigNumber {
	if other == nil {
		return b.Copy()
	}

	x, y := b.view().Values(), other.view().Values()
	out := digitlist.New()
	carry := 0
	emit := func(sum int) {
		out.InsertRear(sum % base)
		carry = sum / base
	}

	i := 0
	for ; i < len(x) && i < len(y); i++ {
		emit(x[i] + y[i] + carry)
	}
	for ; i < len(x); i++ {
		emit(x[i] + carry)
	}
	for ; i < len(y); i++ {
		emit(y[i] + carry)
	}
	if carry > 0 {
		out.InsertRear(carry)
	}

	return &BigNumber{digits: out}
}

// Sum folds Add over nums, returning 0 for no arguments.
func Sum(nums ...*BigNumber) *BigNumber {
	acc := New()
	for _, n := range nums {
		acc = acc.Add(n)
	}

	return acc
}

// Copy returns an independent BigNumber holding the same digits, taken as a
// full-range sub-list copy.
func (b *BigNumber) Copy() *BigNumber {
	l := b.view()
	// The list is never empty, so the full range is always valid.
	dup, _ := l.SubList(0, l.Size()-1)

	return &BigNumber{digits: dup}
}
