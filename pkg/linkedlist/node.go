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

// Package linkedlist implements a singly-linked list of int32 values.
//
// There is no container type: a list is identified by its head node and the
// empty list is nil. Every operation that may change the head returns the new
// head, and the caller must replace its reference with it.
package linkedlist

import "github.com/pkg/errors"

var (
	// ErrAllocation is returned when a node cannot be created.
	ErrAllocation = errors.New("node allocation failed")
	// ErrSharedNodes is returned by Append when both lists reach the same node.
	ErrSharedNodes = errors.New("lists share nodes")
)

// Node is a single list element. Its successor can only be changed by the
// functions of this package.
type Node struct {
	Value int32
	next  *Node
}

// Next returns the successor of n, or nil if n is the tail.
func (n *Node) Next() *Node {
	return n.next
}

// Allocator creates and destroys nodes. Alloc must return a node that is not
// part of any list. Free is called exactly once for every node the package
// destroys, after its link has been cleared.
type Allocator interface {
	Alloc(value int32) (*Node, error)
	Free(n *Node)
}

type heapAllocator struct{}

func (heapAllocator) Alloc(value int32) (*Node, error) {
	return &Node{Value: value}, nil
}

func (heapAllocator) Free(*Node) {}

var allocator Allocator = heapAllocator{}

// SetAllocator installs a as the node allocator and returns the previous one.
// A nil a restores the default heap allocator.
func SetAllocator(a Allocator) Allocator {
	prev := allocator
	if a == nil {
		a = heapAllocator{}
	}
	allocator = a
	return prev
}

func newNode(value int32) (*Node, error) {
	n, err := allocator.Alloc(value)
	if err == nil && n == nil {
		err = ErrAllocation
	}
	if err != nil {
		if !errors.Is(err, ErrAllocation) {
			err = errors.Wrap(ErrAllocation, err.Error())
		}
		return nil, errors.WithMessagef(err, "allocate node with value %d", value)
	}
	n.Value = value
	n.next = nil
	return n, nil
}

// release destroys a node that is no longer reachable from any list.
func release(n *Node) {
	n.next = nil
	allocator.Free(n)
}
