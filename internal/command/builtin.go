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

package command

import (
	"intlist/internal/utils"
	"intlist/pkg/linkedlist"

	"github.com/pkg/errors"
)

var errNoSnapshot = errors.New("no snapshot, take one with dup")

func (r *Registry) registerBuiltins() {
	r.Register(r.help, "help", "help [command]", "Show commands, or the syntax of one command.", WithAliases("?", "\\?"))
	r.Register(quit, "quit", "quit", "Leave the shell.", WithAliases("exit", "\\q"))

	r.Register(printList, "print", "print", "Print every node with its position.", WithAliases("\\p"))
	r.Register(length, "len", "len", "Print the number of nodes.", WithAliases("length"))
	r.Register(search, "search", "search VALUE", "Find the first node holding VALUE.")
	r.Register(count, "count", "count VALUE", "Count the nodes holding VALUE.")
	r.Register(check, "check", "check", "Verify the list has no cycle.")

	r.Register(load, "load", "load VALUE...", "Replace the list with VALUEs.", Mutating())
	r.Register(insertHead, "insert-head", "insert-head VALUE", "Insert VALUE before the head.", Mutating(), WithAliases("push-front"))
	r.Register(insertTail, "insert-tail", "insert-tail VALUE", "Insert VALUE after the tail.", Mutating(), WithAliases("push-back"))
	r.Register(insertAfter, "insert-after", "insert-after VALUE AFTER", "Insert VALUE after the first AFTER, or at the end.", Mutating())
	r.Register(deleteHead, "delete-head", "delete-head", "Delete the head node.", Mutating(), WithAliases("pop-front"))
	r.Register(deleteTail, "delete-tail", "delete-tail", "Delete the tail node; a single node is kept.", Mutating(), WithAliases("pop-back"))
	r.Register(deleteFirst, "delete-first", "delete-first VALUE", "Delete the first node holding VALUE.", Mutating())
	r.Register(deleteAll, "delete-all", "delete-all VALUE", "Delete every node holding VALUE.", Mutating())
	r.Register(replace, "replace", "replace FIND REPLACE", "Set every FIND to REPLACE.", Mutating())
	r.Register(reverse, "reverse", "reverse", "Reverse the list.", Mutating())
	r.Register(bubbleSort, "sort", "sort", "Sort the values in ascending order.", Mutating())
	r.Register(dedup, "dedup", "dedup", "Keep only the first occurrence of every value.", Mutating(), WithAliases("uniq"))
	r.Register(appendList, "append", "append VALUE...", "Append a list holding VALUEs.", Mutating())
	r.Register(addList, "add", "add VALUE...", "Add VALUEs to the nodes at the same positions.", Mutating())
	r.Register(clearList, "clear", "clear", "Delete the whole list.", Mutating())
	r.Register(dup, "dup", "dup", "Store a copy of the list as the snapshot.")
	r.Register(restore, "restore", "restore", "Replace the list with the snapshot.", Mutating())
}

func wantArgs(p *Params, n int) ([]int32, error) {
	if len(p.Args) != n {
		return nil, errors.Errorf("expected %d argument(s), got %d", n, len(p.Args))
	}
	return utils.ParseValues(p.Args...)
}

func wantSomeArgs(p *Params) ([]int32, error) {
	vals, err := utils.ParseValues(p.Args...)
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, errors.New("expected at least one value")
	}
	return vals, nil
}

func (r *Registry) help(p *Params) error {
	if len(p.Args) > 0 {
		cmd, ok := r.Lookup(p.Args[0])
		if !ok {
			return errors.Wrap(ErrCommandNotFound, p.Args[0])
		}
		p.Session.printf("%s\n  %s\n", cmd.Syntax, cmd.Description)
		return nil
	}
	for _, cmd := range r.Commands() {
		p.Session.printf("%-26s %s\n", cmd.Syntax, cmd.Description)
	}
	p.Session.printf("Append + to a command name to print the list after it ran.\n")
	return nil
}

func quit(*Params) error {
	return ErrQuit
}

func printList(p *Params) error {
	return p.Session.Print()
}

func length(p *Params) error {
	p.Session.printf("%d\n", p.Session.Len())
	return nil
}

func search(p *Params) error {
	vals, err := wantArgs(p, 1)
	if err != nil {
		return err
	}
	s := p.Session
	found := linkedlist.Search(s.head, vals[0])
	if found == nil {
		s.printf("value %d not found\n", vals[0])
		return nil
	}
	pos := 0
	for n := s.head; n != found; n = n.Next() {
		pos++
	}
	s.printf("value %d found at position %d\n", vals[0], pos)
	return nil
}

func count(p *Params) error {
	vals, err := wantArgs(p, 1)
	if err != nil {
		return err
	}
	p.Session.printf("%d\n", linkedlist.Count(p.Session.head, vals[0]))
	return nil
}

func check(p *Params) error {
	if !linkedlist.IsAcyclic(p.Session.head) {
		return errors.New("list has a cycle")
	}
	p.Session.printf("ok: %d nodes\n", p.Session.Len())
	return nil
}

func load(p *Params) error {
	vals, err := utils.ParseValues(p.Args...)
	if err != nil {
		return err
	}
	return p.Session.Load(vals)
}

func insertHead(p *Params) error {
	vals, err := wantArgs(p, 1)
	if err != nil {
		return err
	}
	p.Session.head, err = linkedlist.InsertHead(p.Session.head, vals[0])
	return err
}

func insertTail(p *Params) error {
	vals, err := wantArgs(p, 1)
	if err != nil {
		return err
	}
	p.Session.head, err = linkedlist.InsertTail(p.Session.head, vals[0])
	return err
}

func insertAfter(p *Params) error {
	vals, err := wantArgs(p, 2)
	if err != nil {
		return err
	}
	p.Session.head, err = linkedlist.InsertAfterValue(p.Session.head, vals[0], vals[1])
	return err
}

func deleteHead(p *Params) error {
	p.Session.head = linkedlist.DeleteHead(p.Session.head)
	return nil
}

func deleteTail(p *Params) error {
	p.Session.head = linkedlist.DeleteTail(p.Session.head)
	return nil
}

func deleteFirst(p *Params) error {
	vals, err := wantArgs(p, 1)
	if err != nil {
		return err
	}
	p.Session.head = linkedlist.DeleteFirstMatch(p.Session.head, vals[0])
	return nil
}

func deleteAll(p *Params) error {
	vals, err := wantArgs(p, 1)
	if err != nil {
		return err
	}
	p.Session.head = linkedlist.DeleteAllMatches(p.Session.head, vals[0])
	return nil
}

func replace(p *Params) error {
	vals, err := wantArgs(p, 2)
	if err != nil {
		return err
	}
	linkedlist.ReplaceMatches(p.Session.head, vals[0], vals[1])
	return nil
}

func reverse(p *Params) error {
	p.Session.head = linkedlist.Reverse(p.Session.head)
	return nil
}

func bubbleSort(p *Params) error {
	linkedlist.BubbleSort(p.Session.head)
	return nil
}

func dedup(p *Params) error {
	linkedlist.RemoveDuplicates(p.Session.head)
	return nil
}

func appendList(p *Params) error {
	vals, err := wantSomeArgs(p)
	if err != nil {
		return err
	}
	other, err := linkedlist.FromValues(vals...)
	if err != nil {
		return err
	}
	head, err := linkedlist.Append(p.Session.head, &other)
	if err != nil {
		linkedlist.DeleteList(&other)
		return err
	}
	p.Session.head = head
	return nil
}

func addList(p *Params) error {
	vals, err := wantSomeArgs(p)
	if err != nil {
		return err
	}
	other, err := linkedlist.FromValues(vals...)
	if err != nil {
		return err
	}
	defer linkedlist.DeleteList(&other)
	if linkedlist.AddList(p.Session.head, other) == nil {
		p.Session.printf("list is empty, nothing added\n")
	}
	return nil
}

func clearList(p *Params) error {
	linkedlist.DeleteList(&p.Session.head)
	return nil
}

func dup(p *Params) error {
	cp, err := linkedlist.Duplicate(p.Session.head)
	if err != nil {
		return err
	}
	linkedlist.DeleteList(&p.Session.snapshot)
	p.Session.snapshot, p.Session.saved = cp, true
	p.Session.printf("snapshot of %d nodes stored\n", linkedlist.Length(cp))
	return nil
}

func restore(p *Params) error {
	s := p.Session
	if !s.saved {
		return errNoSnapshot
	}
	linkedlist.DeleteList(&s.head)
	s.head, s.snapshot, s.saved = s.snapshot, nil, false
	return nil
}
