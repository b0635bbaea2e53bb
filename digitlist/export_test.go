// SPDX-License-Identifier: MIT

package digitlist

import "fmt"

// CheckInvariants is a white-box bridge for digitlist_test: it walks the
// chain and verifies the head/tail/size invariants documented on List.
func CheckInvariants(l *List) error {
	if l.head == nil || l.tail == nil || l.size == 0 {
		if l.head != nil || l.tail != nil || l.size != 0 {
			return fmt.Errorf("empty-state mismatch: head=%v tail=%v size=%d", l.head, l.tail, l.size)
		}

		return nil
	}
	if l.size == 1 && l.head != l.tail {
		return fmt.Errorf("single node but head != tail")
	}
	cur := l.head
	for i := 0; i < l.size-1; i++ {
		if cur.next == nil {
			return fmt.Errorf("chain ends after %d nodes, size=%d", i+1, l.size)
		}
		cur = cur.next
	}
	if cur != l.tail {
		return fmt.Errorf("node at size-1 is not tail")
	}
	if l.tail.next != nil {
		return fmt.Errorf("tail has a successor")
	}

	return nil
}
