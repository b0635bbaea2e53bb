// SPDX-License-Identifier: MIT

// Package digitlist provides a minimal singly linked list of int values,
// the storage layer beneath bignumber.BigNumber.
//
// 🚀 What is a digit list?
//
//	An ordered chain of nodes with direct head and tail references:
//
//	  head ─▶ [3] ─▶ [1] ─▶ [9] ◀─ tail      (size = 3)
//
//	Values are plain ints; the list does not care whether they are
//	decimal digits. Range checks belong to the caller.
//
// ✨ Key features:
//   - O(1) InsertFront / InsertRear through the head and tail references
//   - O(1) Get / Set on the last position (tail fast path), O(i) elsewhere
//   - Remove(i) with predecessor relinking and tail repair
//   - SubList(start, end) returns an independent, inclusive copy
//   - DigitString renders head-to-tail values in reverse, producing the
//     most-significant-first text of a least-significant-first number
//
// ⚙️ Usage:
//
//	l := digitlist.New()
//	l.InsertRear(3)
//	l.InsertRear(1)
//	l.InsertRear(9)
//	fmt.Println(l)               // 3 -> 1 -> 9
//	fmt.Println(l.DigitString()) // 913
//
// Errors:
//   - ErrOutOfRange      — index outside [0, Size()) or an invalid sub-range.
//   - ErrInvalidArgument — Equal called with a nil list.
//
// A List is not safe for concurrent use; each owner serialises its own access.
package digitlist
