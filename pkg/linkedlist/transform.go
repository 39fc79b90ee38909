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

// ReplaceMatches sets every node holding find to replace.
func ReplaceMatches(head *Node, find, replace int32) {
	for n := head; n != nil; n = n.next {
		if n.Value == find {
			n.Value = replace
		}
	}
}

// Reverse reverses the links in place and returns the former tail.
func Reverse(head *Node) *Node {
	var prev *Node
	cur := head
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev, cur = cur, next
	}
	return prev
}

// BubbleSort sorts the values in ascending order. Only values move between
// nodes; the links are not touched.
func BubbleSort(head *Node) {
	if head == nil || head.next == nil {
		return
	}
	// nodes from last on are already in their final position
	var last *Node
	for {
		swapped := false
		cur := head
		for cur.next != last {
			if cur.Value > cur.next.Value {
				cur.Value, cur.next.Value = cur.next.Value, cur.Value
				swapped = true
			}
			cur = cur.next
		}
		if !swapped {
			return
		}
		last = cur
	}
}

// RemoveDuplicates keeps the first occurrence of every value and destroys
// the later ones. The list does not need to be sorted.
func RemoveDuplicates(head *Node) {
	for cur := head; cur != nil; cur = cur.next {
		runner := cur
		for runner.next != nil {
			if runner.next.Value != cur.Value {
				runner = runner.next
				continue
			}
			dup := runner.next
			runner.next = dup.next
			release(dup)
		}
	}
}
