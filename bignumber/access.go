// SPDX-License-Identifier: MIT

package bignumber

import "github.com/katalvlaran/lvlnum/digitlist"

// DigitAt returns the digit at pos (0 = ones digit).
//
// Errors:
//   - ErrInvalidArgument (also matching ErrOutOfRange) if pos is outside [0, Length()).
func (b *BigNumber) DigitAt(pos int) (int, error) {
	l := b.view()
	if pos < 0 || pos >= l.Size() {
		return 0, posErrorf(ctxDigitAt, pos)
	}

	return l.Get(pos)
}

// SetDigitAt overwrites the digit at pos. Writing 0 into the most
// significant position strips the resulting leading zeros.
//
// Errors:
//   - ErrInvalidArgument (also matching ErrOutOfRange) if pos is outside [0, Length()).
//   - ErrInvalidArgument if d is outside 0..9.
func (b *BigNumber) SetDigitAt(pos, d int) error {
	l := b.list()
	if pos < 0 || pos >= l.Size() {
		return posErrorf(ctxSetDigitAt, pos)
	}
	if d < 0 || d > maxDigit {
		return argErrorf(ctxSetDigitAt, d)
	}
	if err := l.Set(pos, d); err != nil {
		return err
	}
	b.trim()

	return nil
}

// DigitList returns an independent copy of the least-significant-first
// digit list. Mutating it does not affect b.
func (b *BigNumber) DigitList() *digitlist.List {
	return b.view().Clone()
}

// SetDigitList replaces b's digits with a copy of l and strips leading zeros.
// On error b is left unchanged.
//
// Errors:
//   - ErrInvalidArgument if l is nil, empty, or holds a value outside 0..9.
func (b *BigNumber) SetDigitList(l *digitlist.List) error {
	if l == nil || l.Size() == 0 {
		return argErrorf(ctxDigitList, 0)
	}
	for _, d := range l.Values() {
		if d < 0 || d > maxDigit {
			return argErrorf(ctxDigitList, d)
		}
	}
	b.digits = l.Clone()
	b.trim()

	return nil
}
