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

// InsertHead links a new node holding value before head and returns it.
// On allocation failure head is returned unchanged together with the error.
func InsertHead(head *Node, value int32) (*Node, error) {
	n, err := newNode(value)
	if err != nil {
		return head, err
	}
	n.next = head
	return n, nil
}

// InsertTail appends a new node holding value. If head is nil the new node
// becomes the head.
func InsertTail(head *Node, value int32) (*Node, error) {
	n, err := newNode(value)
	if err != nil {
		return head, err
	}
	if head == nil {
		return n, nil
	}
	Tail(head).next = n
	return head, nil
}

// DeleteHead destroys the first node and returns its successor.
func DeleteHead(head *Node) *Node {
	if head == nil {
		return nil
	}
	next := head.next
	release(head)
	return next
}

// DeleteTail destroys the last node. A list with a single node is returned
// as is: only DeleteHead, DeleteFirstMatch or DeleteList empty a list.
func DeleteTail(head *Node) *Node {
	if head == nil || head.next == nil {
		return head
	}
	prev, cur := head, head.next
	for cur.next != nil {
		prev, cur = cur, cur.next
	}
	prev.next = nil
	release(cur)
	return head
}

// InsertAfterValue inserts a node holding value right after the first node
// holding after. Without a match the node is appended, and an empty list gets
// it as its head.
func InsertAfterValue(head *Node, value, after int32) (*Node, error) {
	n, err := newNode(value)
	if err != nil {
		return head, err
	}
	if head == nil {
		return n, nil
	}
	cur := head
	for cur.next != nil && cur.Value != after {
		cur = cur.next
	}
	n.next = cur.next
	cur.next = n
	return head, nil
}

// DeleteFirstMatch destroys the first node holding value and returns the
// possibly new head. Without a match the list is left untouched.
func DeleteFirstMatch(head *Node, value int32) *Node {
	if head == nil {
		return nil
	}
	if head.Value == value {
		return DeleteHead(head)
	}
	for prev, cur := head, head.next; cur != nil; prev, cur = cur, cur.next {
		if cur.Value == value {
			prev.next = cur.next
			release(cur)
			break
		}
	}
	return head
}

// DeleteAllMatches destroys every node holding value. The result is nil when
// all nodes matched.
func DeleteAllMatches(head *Node, value int32) *Node {
	for head != nil && head.Value == value {
		head = DeleteHead(head)
	}
	if head == nil {
		return nil
	}
	prev := head
	for cur := prev.next; cur != nil; cur = prev.next {
		if cur.Value == value {
			prev.next = cur.next
			release(cur)
			continue
		}
		prev = cur
	}
	return head
}
