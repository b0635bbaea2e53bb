// SPDX-License-Identifier: MIT

package digitlist

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for digitlist operations.
var (
	// ErrOutOfRange indicates an index or sub-range outside the list bounds,
	// including any positional access on an empty list.
	ErrOutOfRange = errors.New("digitlist: index out of range")

	// ErrInvalidArgument indicates a nil list passed where a list is required.
	ErrInvalidArgument = errors.New("digitlist: invalid argument")
)

// ---------- error context tags ----------

const (
	ctxGet     = "Get"
	ctxSet     = "Set"
	ctxRemove  = "Remove"
	ctxSubList = "SubList"
	ctxEqual   = "Equal"
)

// listErrorf attaches the method tag and offending index to a sentinel.
func listErrorf(method string, index int, err error) error {
	return fmt.Errorf("List.%s(%d): %w", method, index, err)
}

// Node holds a single value and the link to its successor.
// A Node belongs to exactly one List; nodes are never shared.
type Node struct {
	value int
	next  *Node
}

// NewNode returns a detached node holding v.
func NewNode(v int) *Node {
	return &Node{value: v}
}

// Value returns the stored value.
func (n *Node) Value() int { return n.value }

// String renders the stored value in base 10.
func (n *Node) String() string { return strconv.Itoa(n.value) }

// List is a singly linked list with head and tail references and an O(1) size.
//
// Invariants:
//   - head == nil ⇔ tail == nil ⇔ size == 0
//   - size == 1 ⇒ head == tail
//   - tail is reached from head in exactly size-1 hops and tail.next == nil
//
// The zero value is an empty list ready to use.
type List struct {
	head *Node
	tail *Node
	size int
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*List)(nil)

// New returns an empty list.
func New() *List {
	return &List{}
}

// NewWithHead returns a one-element list owning n.
// Any successor already linked from n is dropped so the invariants hold.
// A nil n yields an empty list.
func NewWithHead(n *Node) *List {
	if n == nil {
		return New()
	}
	n.next = nil

	return &List{head: n, tail: n, size: 1}
}

// FromValues builds a list holding vs in order (vs[0] becomes the head).
func FromValues(vs ...int) *List {
	l := New()
	for _, v := range vs {
		l.InsertRear(v)
	}

	return l
}
