// SPDX-License-Identifier: MIT

// Package bignumber implements an arbitrary-precision non-negative integer
// stored one decimal digit per node of a digitlist.List.
//
// 🚀 Representation
//
//	Digits are kept least-significant first: index 0 (the list head) is the
//	ones digit, the tail is the most significant digit.
//
//	  913  ⇒  head ─▶ [3] ─▶ [1] ─▶ [9] ◀─ tail
//
//	Invariants re-established by every mutating method:
//	  • the list is never empty (canonical zero is a single 0 digit)
//	  • no most-significant zero unless the value is exactly 0
//	  • every stored element is in 0..9
//
// ✨ Operations
//   - Parse / MustParse / FromUint64 / FromDigitList — construction
//   - ShiftLeft(n), ShiftRight(n) — multiply / integer-divide by 10ⁿ in place
//   - AddDigit(d)                — add a single digit with carry, in place
//   - DigitAt / SetDigitAt       — positional access
//   - Add(other), Copy()         — return new values; operands untouched
//   - Compare, Equal, String     — ordering, equality, text
//
// ⚙️ Usage:
//
//	a := bignumber.MustParse("7502759287502846283")
//	b := bignumber.MustParse("2871907985729758402")
//	fmt.Println(a.Add(b)) // 10374667273232604685
//
// Errors:
//   - ErrFormat          — Parse input holds a byte outside '0'..'9'.
//   - ErrInvalidArgument — digit outside 0..9, invalid position, nil Equal
//     argument, or an unusable digit list.
//   - ErrOutOfRange      — also matched by invalid positions (errors.Is).
//
// Complexity: every operation is O(number of digits) or better, except
// AddDigit and SetDigitAt which walk the list per touched position.
//
// A BigNumber is not safe for concurrent mutation; read-only methods never
// write the receiver and may run concurrently. The zero value is a usable
// canonical zero.
package bignumber
