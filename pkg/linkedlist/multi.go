// Copyright 2024 Qian Yao
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package linkedlist

import "github.com/pkg/errors"

// Append links the list *other after the tail of head and returns the head
// of the joined list. Ownership of the appended nodes moves to the result:
// *other is set to nil. If the two lists share a node nothing is changed and
// ErrSharedNodes is returned.
func Append(head *Node, other **Node) (*Node, error) {
	if other == nil || *other == nil {
		return head, nil
	}
	if head == nil {
		head, *other = *other, nil
		return head, nil
	}
	// acyclic lists that share any node share their tail
	tail := Tail(head)
	if Tail(*other) == tail {
		return head, errors.Wrapf(ErrSharedNodes, "append list starting with %d", (*other).Value)
	}
	tail.next, *other = *other, nil
	return head, nil
}

// AddList adds the values of other to the nodes of head at the same
// positions, stopping at the end of the shorter list. other is only read.
// AddList returns nil if either list is empty, head otherwise.
func AddList(head, other *Node) *Node {
	if head == nil || other == nil {
		return nil
	}
	for a, b := head, other; a != nil && b != nil; a, b = a.next, b.next {
		a.Value += b.Value
	}
	return head
}

// Duplicate returns a deep copy of the list. A nil head yields nil and no
// error. If a node cannot be allocated the partial copy is destroyed and the
// allocation error is returned.
func Duplicate(head *Node) (*Node, error) {
	if head == nil {
		return nil, nil
	}
	next := head
	return build(func() (int32, bool) {
		if next == nil {
			return 0, false
		}
		v := next.Value
		next = next.next
		return v, true
	})
}

// FromValues builds a list holding values in order.
func FromValues(values ...int32) (*Node, error) {
	i := 0
	return build(func() (int32, bool) {
		if i == len(values) {
			return 0, false
		}
		i++
		return values[i-1], true
	})
}

func build(next func() (int32, bool)) (*Node, error) {
	var head, tail *Node
	for v, ok := next(); ok; v, ok = next() {
		n, err := newNode(v)
		if err != nil {
			DeleteList(&head)
			return nil, err
		}
		if head == nil {
			head = n
		} else {
			tail.next = n
		}
		tail = n
	}
	return head, nil
}

// DeleteList destroys every node of *head and sets *head to nil.
func DeleteList(head **Node) {
	if head == nil {
		return
	}
	for n := *head; n != nil; {
		next := n.next
		release(n)
		n = next
	}
	*head = nil
}
