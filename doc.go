// Package lvlnum is a small playground for exact decimal arithmetic on
// non-negative integers of any length, built from the ground up on a
// hand-rolled singly linked list.
//
// 🚀 What is inside?
//
//	• digitlist/  — singly linked list with O(1) front/rear insertion and
//	                O(1) tail access, sub-range copies and reversed rendering
//	• bignumber/  — arbitrary-precision non-negative integer: parse, shift by
//	                powers of ten, add a digit, add two numbers, compare
//	• cmd/lvlnum  — command-line calculator and YAML batch-script runner
//
// ✨ Why lvlnum?
//
//   - Beginner-friendly – the whole algorithm is grade-school addition
//   - Explicit errors – sentinel errors matched with errors.Is, no panics
//   - Pure Go – no cgo; the library itself imports only the standard library
//
// Quick example:
//
//	a := bignumber.MustParse("99999")
//	fmt.Println(a.Add(bignumber.MustParse("1"))) // 100000
//
// Storage is least-significant first:
//
//	100000  ⇒  [0] → [0] → [0] → [0] → [0] → [1]
//
//	go get github.com/katalvlaran/lvlnum
package lvlnum
