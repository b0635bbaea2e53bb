// SPDX-License-Identifier: MIT
// File: list.go
// Role: positional access, insertion, removal and copying for List.
// Complexity quicksheet:
//   - Size, InsertFront, InsertRear: O(1)
//   - Get/Set: O(1) on the last index, O(i) otherwise
//   - Remove(0): O(1); Remove(i): O(i)
//   - SubList(a,b): O(b)

package digitlist

import "strings"

// Size returns the number of nodes. O(1).
func (l *List) Size() int {
	return l.size
}

// nodeAt walks to position index. The caller guarantees 0 <= index < size.
// The last position is served straight from the tail reference.
func (l *List) nodeAt(index int) *Node {
	if index == l.size-1 {
		return l.tail
	}
	cur := l.head
	for i := 0; i < index; i++ {
		cur = cur.next
	}

	return cur
}

// inRange reports whether index addresses an existing node.
func (l *List) inRange(index int) bool {
	return index >= 0 && index < l.size
}

// Get returns the value at index.
//
// Errors:
//   - ErrOutOfRange if index < 0 or index >= Size().
func (l *List) Get(index int) (int, error) {
	if !l.inRange(index) {
		return 0, listErrorf(ctxGet, index, ErrOutOfRange)
	}

	return l.nodeAt(index).value, nil
}

// Set overwrites the value at index.
//
// Errors:
//   - ErrOutOfRange if index < 0 or index >= Size().
func (l *List) Set(index, value int) error {
	if !l.inRange(index) {
		return listErrorf(ctxSet, index, ErrOutOfRange)
	}
	l.nodeAt(index).value = value

	return nil
}

// InsertRear appends value after the tail. O(1).
func (l *List) InsertRear(value int) {
	n := &Node{value: value}
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.size++
}

// InsertFront prepends value before the head. O(1).
func (l *List) InsertFront(value int) {
	n := &Node{value: value, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.size++
}

// Remove detaches and discards the node at index.
//
// Removing the head relinks head to its successor (clearing both ends when it
// was the only node). Any other position walks to the predecessor, links
// around the target and repairs tail when the target was the tail.
//
// Errors:
//   - ErrOutOfRange if index < 0 or index >= Size(); always on an empty list.
func (l *List) Remove(index int) error {
	if !l.inRange(index) {
		return listErrorf(ctxRemove, index, ErrOutOfRange)
	}

	if index == 0 {
		old := l.head
		l.head = old.next
		old.next = nil
		if l.head == nil {
			l.tail = nil
		}
		l.size--

		return nil
	}

	prev := l.head
	for i := 1; i < index; i++ {
		prev = prev.next
	}
	target := prev.next
	prev.next = target.next
	target.next = nil
	if target == l.tail {
		l.tail = prev
	}
	l.size--

	return nil
}

// SubList returns a new, independent list holding copies of the values at
// positions startIndex..endIndex inclusive, in the same order.
//
// Errors:
//   - ErrOutOfRange if endIndex >= Size(), startIndex < 0 or endIndex < startIndex.
func (l *List) SubList(startIndex, endIndex int) (*List, error) {
	if endIndex >= l.size || startIndex < 0 || endIndex < startIndex {
		return nil, listErrorf(ctxSubList, endIndex, ErrOutOfRange)
	}

	out := New()
	cur := l.head
	for i := 0; i < startIndex; i++ {
		cur = cur.next
	}
	for i := startIndex; i <= endIndex; i++ {
		out.InsertRear(cur.value)
		cur = cur.next
	}

	return out, nil
}

// Clone returns a deep copy of the whole list. An empty list clones to an
// empty list.
func (l *List) Clone() *List {
	if l.size == 0 {
		return New()
	}
	// SubList over the full range cannot fail.
	out, _ := l.SubList(0, l.size-1)

	return out
}

// Values returns a head-to-tail snapshot of the stored values.
func (l *List) Values() []int {
	out := make([]int, 0, l.size)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.value)
	}

	return out
}

// Equal reports whether l and other hold the same values in the same order.
//
// Errors:
//   - ErrInvalidArgument if other is nil. A nil argument is treated as a
//     caller defect rather than an unequal list.
func (l *List) Equal(other *List) (bool, error) {
	if other == nil {
		return false, listErrorf(ctxEqual, -1, ErrInvalidArgument)
	}
	if l.size != other.size {
		return false, nil
	}
	for a, b := l.head, other.head; a != nil; a, b = a.next, b.next {
		if a.value != b.value {
			return false, nil
		}
	}

	return true, nil
}

// DigitString visits nodes head to tail and prepends each value, so a
// least-significant-first list prints most-significant first.
// An empty list renders as "".
func (l *List) DigitString() string {
	parts := make([]string, l.size)
	i := l.size - 1
	for cur := l.head; cur != nil; cur = cur.next {
		parts[i] = cur.String()
		i--
	}

	return strings.Join(parts, "")
}

// String renders the list head to tail as "a -> b -> c".
func (l *List) String() string {
	var sb strings.Builder
	for cur := l.head; cur != nil; cur = cur.next {
		sb.WriteString(cur.String())
		if cur.next != nil {
			sb.WriteString(" -> ")
		}
	}

	return sb.String()
}
