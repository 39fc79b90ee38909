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
	"fmt"
	"io"

	"intlist/internal/render"
	"intlist/pkg/linkedlist"
)

// Session owns the list the commands work on, and an optional snapshot
// taken with "dup". Close must be called to release both.
type Session struct {
	head     *linkedlist.Node
	snapshot *linkedlist.Node
	saved    bool
	out      io.Writer
	printer  render.Printer
}

func NewSession(out io.Writer, printer render.Printer) *Session {
	return &Session{out: out, printer: printer}
}

func (s *Session) Head() *linkedlist.Node {
	return s.head
}

func (s *Session) Values() []int32 {
	return linkedlist.Values(s.head)
}

func (s *Session) Len() int {
	return linkedlist.Length(s.head)
}

func (s *Session) HasSnapshot() bool {
	return s.saved
}

// Load replaces the current list with a new one holding values.
func (s *Session) Load(values []int32) error {
	head, err := linkedlist.FromValues(values...)
	if err != nil {
		return err
	}
	linkedlist.DeleteList(&s.head)
	s.head = head
	return nil
}

func (s *Session) Print() error {
	return s.printer.Print(s.out, s.head)
}

func (s *Session) Close() {
	linkedlist.DeleteList(&s.head)
	linkedlist.DeleteList(&s.snapshot)
	s.saved = false
}

func (s *Session) printf(format string, v ...any) {
	fmt.Fprintf(s.out, format, v...)
}
