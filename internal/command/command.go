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

// Package command runs text commands against a list session.
package command

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrCommandNotFound = errors.New("command not found")
	ErrQuit            = errors.New("quit")
)

// ParsedCmd is a command line split into its parts. A trailing "+" on the
// command name asks for the list to be printed after the command ran.
type ParsedCmd struct {
	Command string
	Args    []string
	Verbose bool
}

func Parse(line string) *ParsedCmd {
	var c = &ParsedCmd{}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return c
	}
	c.Command = fields[0]
	c.Args = fields[1:]
	if len(c.Command) > 1 && strings.HasSuffix(c.Command, "+") {
		c.Command = strings.TrimSuffix(c.Command, "+")
		c.Verbose = true
	}
	return c
}

type Params struct {
	Session *Session
	Args    []string
	Verbose bool
}

type Handler func(*Params) error

type Command struct {
	Name          string
	Handler       Handler
	Syntax        string
	Description   string
	Hidden        bool
	CaseSensitive bool
	// Mutates is set for commands that change the list; only those print
	// the list in verbose mode.
	Mutates bool
}

type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns a registry holding the built-in commands.
func NewRegistry() *Registry {
	r := &Registry{cmds: make(map[string]*Command)}
	r.registerBuiltins()
	return r
}

// Execute parses line and runs the matching command against s.
func (r *Registry) Execute(s *Session, line string) error {
	pc := Parse(line)
	if pc.Command == "" {
		return nil
	}
	cmd, ok := r.Lookup(pc.Command)
	if !ok {
		return errors.Wrap(ErrCommandNotFound, pc.Command)
	}
	if err := cmd.Handler(&Params{Session: s, Args: pc.Args, Verbose: pc.Verbose}); err != nil {
		return errors.WithMessage(err, cmd.Name)
	}
	if pc.Verbose && cmd.Mutates {
		return s.Print()
	}
	return nil
}

// Lookup finds a command by name or alias.
func (r *Registry) Lookup(name string) (*Command, bool) {
	cmd, ok := r.cmds[name]
	if !ok {
		cmd, ok = r.cmds[strings.ToLower(name)]
		if !ok || cmd.CaseSensitive {
			return nil, false
		}
	}
	return cmd, true
}

// Commands returns the visible commands sorted by name.
func (r *Registry) Commands() []*Command {
	var rs []*Command
	for _, cmd := range r.cmds {
		if !cmd.Hidden {
			rs = append(rs, cmd)
		}
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i].Name < rs[j].Name })
	return rs
}

// Names returns the names of the visible commands, sorted.
func (r *Registry) Names() []string {
	cmds := r.Commands()
	names := make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		names = append(names, cmd.Name)
	}
	return names
}

type Option struct {
	Hidden        bool
	CaseSensitive bool
	Mutates       bool
	Aliases       []string
}

func NewOption() *Option {
	return &Option{
		Hidden:        false,
		CaseSensitive: false,
		Aliases:       []string{},
	}
}

type OptionFunc func(*Option)

func WithHidden(hidden bool) OptionFunc {
	return func(opt *Option) {
		opt.Hidden = hidden
	}
}

func WithCaseSensitive(caseSensitive bool) OptionFunc {
	return func(opt *Option) {
		opt.CaseSensitive = caseSensitive
	}
}

func WithAliases(aliases ...string) OptionFunc {
	return func(opt *Option) {
		opt.Aliases = aliases
	}
}

func Mutating() OptionFunc {
	return func(opt *Option) {
		opt.Mutates = true
	}
}

func (r *Registry) Register(
	handler Handler,
	command string,
	syntax string,
	description string,
	optFuncs ...OptionFunc,
) {
	opt := NewOption()
	for _, f := range optFuncs {
		f(opt)
	}
	if !opt.CaseSensitive {
		command = strings.ToLower(command)
	}
	cmd := &Command{
		Name:          command,
		Handler:       handler,
		Syntax:        syntax,
		Description:   description,
		Hidden:        opt.Hidden,
		CaseSensitive: opt.CaseSensitive,
		Mutates:       opt.Mutates,
	}
	r.cmds[command] = cmd
	for _, alias := range opt.Aliases {
		if !opt.CaseSensitive {
			alias = strings.ToLower(alias)
		}
		aliased := *cmd
		aliased.Hidden = true
		r.cmds[alias] = &aliased
	}
}
