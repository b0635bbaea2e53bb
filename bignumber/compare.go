// SPDX-License-Identifier: MIT

package bignumber

import "fmt"

// Compare returns -1, 0 or +1 as b is less than, equal to or greater than
// other. A nil other is treated as zero.
//
// A shorter number is smaller; equal lengths are decided by the first
// differing digit from the most significant end. This relies on the
// no-leading-zero invariant.
func (b *BigNumber) Compare(other *BigNumber) int {
	if other == nil {
		other = New()
	}
	x, y := b.view().Values(), other.view().Values()
	switch {
	case len(x) > len(y):
		return 1
	case len(x) < len(y):
		return -1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] > y[i]:
			return 1
		case x[i] < y[i]:
			return -1
		}
	}

	return 0
}

// Equal reports whether b and other render to the same canonical string.
//
// Errors:
//   - ErrInvalidArgument if other is nil. A nil operand is a caller defect,
//     not an unequal value.
func (b *BigNumber) Equal(other *BigNumber) (bool, error) {
	if other == nil {
		return false, fmt.Errorf("BigNumber.%s(nil): %w", ctxEqual, ErrInvalidArgument)
	}

	return b.String() == other.String(), nil
}

// String renders b most-significant digit first, or "<nil>" for a nil b.
func (b *BigNumber) String() string {
	if b == nil {
		return "<nil>"
	}

	return b.view().DigitString()
}

// MarshalText implements encoding.TextMarshaler.
func (b *BigNumber) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with Parse semantics.
// On error b is left unchanged.
func (b *BigNumber) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	b.digits = parsed.digits

	return nil
}
