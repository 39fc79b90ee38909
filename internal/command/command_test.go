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
	"bytes"
	"strings"
	"testing"

	"intlist/internal/render"
	"intlist/pkg/linkedlist"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type liveAllocator struct {
	live map[*linkedlist.Node]bool
}

func (a *liveAllocator) Alloc(value int32) (*linkedlist.Node, error) {
	n := &linkedlist.Node{Value: value}
	a.live[n] = true
	return n, nil
}

func (a *liveAllocator) Free(n *linkedlist.Node) {
	delete(a.live, n)
}

func newSession(t *testing.T) (*Registry, *Session, *bytes.Buffer) {
	t.Helper()
	a := &liveAllocator{live: map[*linkedlist.Node]bool{}}
	prev := linkedlist.SetAllocator(a)
	var buf bytes.Buffer
	s := NewSession(&buf, render.PlainPrinter{})
	t.Cleanup(func() {
		s.Close()
		assert.Empty(t, a.live, "nodes leaked")
		linkedlist.SetAllocator(prev)
	})
	return NewRegistry(), s, &buf
}

func run(t *testing.T, r *Registry, s *Session, lines ...string) {
	t.Helper()
	for _, line := range lines {
		require.NoError(t, r.Execute(s, line), line)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want ParsedCmd
	}{
		{"", ParsedCmd{}},
		{"sort", ParsedCmd{Command: "sort", Args: []string{}}},
		{"  insert-after 9  2 ", ParsedCmd{Command: "insert-after", Args: []string{"9", "2"}}},
		{"sort+", ParsedCmd{Command: "sort", Args: []string{}, Verbose: true}},
		{"add+ 1 2", ParsedCmd{Command: "add", Args: []string{"1", "2"}, Verbose: true}},
		{"+", ParsedCmd{Command: "+", Args: []string{}}},
	}
	for _, tt := range tests {
		assert.Equal(t, &tt.want, Parse(tt.line), tt.line)
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	r, s, _ := newSession(t)
	err := r.Execute(s, "shuffle")
	assert.True(t, errors.Is(err, ErrCommandNotFound))
	assert.NoError(t, r.Execute(s, "   "))
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []int32
	}{
		{"Sort", []string{"load 3 1 2", "sort"}, []int32{1, 2, 3}},
		{"Dedup", []string{"load 1,2,2,3,2", "dedup"}, []int32{1, 2, 3}},
		{"Reverse", []string{"load 1 2 3", "reverse"}, []int32{3, 2, 1}},
		{"Insert After", []string{"load 1 2 3", "insert-after 9 2"}, []int32{1, 2, 9, 3}},
		{"Add", []string{"load 1 2 3", "add 10 20"}, []int32{11, 22, 3}},
		{"Delete Tail Keeps Single", []string{"load 5", "delete-tail"}, []int32{5}},
		{"Delete Head", []string{"load 5", "delete-head"}, []int32{}},
		{"Append", []string{"load 1", "append 2,3"}, []int32{1, 2, 3}},
		{"Append To Empty", []string{"append 4"}, []int32{4}},
		{"Inserts", []string{"insert-tail 2", "insert-head 1", "push-back 3"}, []int32{1, 2, 3}},
		{"Delete Matches", []string{"load 2 1 2 3 2", "delete-first 2", "delete-all 3"}, []int32{1, 2, 2}},
		{"Replace", []string{"load 1 2 1", "replace 1 7"}, []int32{7, 2, 7}},
		{"Clear", []string{"load 1 2", "clear"}, []int32{}},
		{"Case Insensitive", []string{"load 2 1", "SORT"}, []int32{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, s, _ := newSession(t)
			run(t, r, s, tt.lines...)
			assert.Equal(t, tt.want, s.Values())
		})
	}
}

func TestVerbosePrintsAfterMutation(t *testing.T) {
	r, s, buf := newSession(t)
	run(t, r, s, "load 3 1 2", "sort+")
	assert.Equal(t, "Node 0 : 1\nNode 1 : 2\nNode 2 : 3\n", buf.String())

	buf.Reset()
	run(t, r, s, "count+ 1")
	assert.Equal(t, "1\n", buf.String())
}

func TestQueries(t *testing.T) {
	r, s, buf := newSession(t)
	run(t, r, s, "load 4 2 4")

	run(t, r, s, "len")
	assert.Equal(t, "3\n", buf.String())

	buf.Reset()
	run(t, r, s, "count 4")
	assert.Equal(t, "2\n", buf.String())

	buf.Reset()
	run(t, r, s, "search 2", "search 9")
	assert.Equal(t, "value 2 found at position 1\nvalue 9 not found\n", buf.String())

	buf.Reset()
	run(t, r, s, "check")
	assert.Equal(t, "ok: 3 nodes\n", buf.String())
}

func TestSnapshot(t *testing.T) {
	r, s, buf := newSession(t)

	err := r.Execute(s, "restore")
	assert.True(t, errors.Is(err, errNoSnapshot))

	run(t, r, s, "load 1 2 3", "dup")
	assert.True(t, s.HasSnapshot())
	assert.Contains(t, buf.String(), "snapshot of 3 nodes stored")

	run(t, r, s, "replace 2 9", "reverse", "dup", "clear")
	assert.Empty(t, s.Values())

	run(t, r, s, "restore")
	assert.Equal(t, []int32{3, 9, 1}, s.Values())
	assert.False(t, s.HasSnapshot())

	run(t, r, s, "clear", "dup")
	assert.True(t, s.HasSnapshot())
	run(t, r, s, "load 1", "restore")
	assert.Empty(t, s.Values())
}

func TestArgumentErrors(t *testing.T) {
	r, s, _ := newSession(t)
	for _, line := range []string{
		"search",
		"search 1 2",
		"insert-head x",
		"insert-after 1",
		"replace 1",
		"append",
		"add",
		"count 9999999999",
	} {
		assert.Error(t, r.Execute(s, line), line)
	}
}

func TestAddToEmptyList(t *testing.T) {
	r, s, buf := newSession(t)
	run(t, r, s, "add 1 2")
	assert.Equal(t, "list is empty, nothing added\n", buf.String())
	assert.Empty(t, s.Values())
}

func TestQuit(t *testing.T) {
	r, s, _ := newSession(t)
	for _, line := range []string{"quit", "exit", "\\q"} {
		assert.True(t, errors.Is(r.Execute(s, line), ErrQuit), line)
	}
}

func TestHelp(t *testing.T) {
	r, s, buf := newSession(t)
	run(t, r, s, "help")
	out := buf.String()
	for _, name := range r.Names() {
		assert.Contains(t, out, name)
	}
	assert.NotContains(t, out, "push-front")

	buf.Reset()
	run(t, r, s, "? insert-after")
	assert.True(t, strings.HasPrefix(buf.String(), "insert-after VALUE AFTER\n"))

	assert.True(t, errors.Is(r.Execute(s, "help shuffle"), ErrCommandNotFound))
}

func TestRegistry(t *testing.T) {
	r := &Registry{cmds: map[string]*Command{}}
	var calls int
	r.Register(func(*Params) error { calls++; return nil }, "Ping", "Ping", "Ping.",
		WithCaseSensitive(true), WithAliases("p"))
	r.Register(func(*Params) error { return nil }, "secret", "secret", "Hidden.", WithHidden(true))

	_, ok := r.Lookup("ping")
	assert.False(t, ok)
	cmd, ok := r.Lookup("p")
	require.True(t, ok)
	assert.Equal(t, "Ping", cmd.Name)

	assert.Equal(t, []string{"Ping"}, r.Names())

	s := NewSession(&bytes.Buffer{}, render.PlainPrinter{})
	require.NoError(t, r.Execute(s, "Ping"))
	require.NoError(t, r.Execute(s, "p"))
	assert.Equal(t, 2, calls)
}
