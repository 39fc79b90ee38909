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

import (
	"fmt"
	"io"

	"intlist/internal/logger"
)

// Print writes one line per node with its 0-based position and value.
func Print(w io.Writer, head *Node) error {
	i := 0
	for n := head; n != nil; n = n.next {
		if _, err := fmt.Fprintf(w, "Node %d : %d\n", i, n.Value); err != nil {
			return err
		}
		i++
	}
	return nil
}

// Length returns the number of nodes reachable from head.
func Length(head *Node) int {
	var l int
	for n := head; n != nil; n = n.next {
		l++
	}
	return l
}

// Search returns the first node holding value, or nil.
func Search(head *Node, value int32) *Node {
	for n := head; n != nil; n = n.next {
		if n.Value == value {
			logger.Info("value %d found", value)
			return n
		}
	}
	logger.Info("value %d not found", value)
	return nil
}

// Count returns how many nodes hold value.
func Count(head *Node, value int32) int {
	var c int
	for n := head; n != nil; n = n.next {
		if n.Value == value {
			c++
		}
	}
	return c
}

// Tail returns the last node, or nil for the empty list.
func Tail(head *Node) *Node {
	if head == nil {
		return nil
	}
	n := head
	for n.next != nil {
		n = n.next
	}
	return n
}

// Values returns all values in list order.
func Values(head *Node) []int32 {
	rs := make([]int32, 0, Length(head))
	for n := head; n != nil; n = n.next {
		rs = append(rs, n.Value)
	}
	return rs
}

// Range calls f for each value in list order.
func Range(head *Node, f func(int32)) {
	for n := head; n != nil; n = n.next {
		f(n.Value)
	}
}

// IsAcyclic reports whether following the links from head terminates.
func IsAcyclic(head *Node) bool {
	slow, fast := head, head
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
		if slow == fast {
			return false
		}
	}
	return true
}
