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

package shell

import (
	"sort"
	"strconv"
	"strings"

	"intlist/internal/command"
	"intlist/pkg/linkedlist"

	"github.com/vimiix/go-prompt"
)

type completer struct {
	registry *command.Registry
	session  *command.Session
}

func (c *completer) Complete() prompt.Completer {
	return func(d prompt.Document) []prompt.Suggest {
		return c.suggest(d.TextBeforeCursor(), d.GetWordBeforeCursor())
	}
}

func (c *completer) suggest(preText, lastWord string) []prompt.Suggest {
	if strings.TrimSpace(preText) == "" {
		return nil
	}
	words := strings.Fields(preText)
	if len(words) == 1 && !strings.HasSuffix(preText, " ") {
		return c.commandSuggestions(lastWord)
	}
	cmd, ok := c.registry.Lookup(command.Parse(preText).Command)
	if !ok || !takesValues(cmd) {
		return nil
	}
	return prompt.FilterHasPrefix(c.valueSuggestions(), lastWord, false)
}

func (c *completer) commandSuggestions(arg string) []prompt.Suggest {
	cmds := c.registry.Commands()
	rs := make([]prompt.Suggest, 0, len(cmds))
	for _, cmd := range cmds {
		rs = append(rs, prompt.Suggest{Text: cmd.Name, Description: cmd.Description})
	}
	return prompt.FilterHasPrefix(rs, arg, true)
}

// valueSuggestions offers the distinct values of the current list.
func (c *completer) valueSuggestions() []prompt.Suggest {
	seen := map[int32]bool{}
	var vals []int32
	linkedlist.Range(c.session.Head(), func(v int32) {
		if !seen[v] {
			seen[v] = true
			vals = append(vals, v)
		}
	})
	sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })
	rs := make([]prompt.Suggest, 0, len(vals))
	for _, v := range vals {
		rs = append(rs, prompt.Suggest{Text: strconv.Itoa(int(v))})
	}
	return rs
}

func takesValues(cmd *command.Command) bool {
	return strings.Contains(cmd.Syntax, "VALUE") || strings.Contains(cmd.Syntax, "FIND")
}
