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

// Package shell is the interactive front end of intlist.
package shell

import (
	"fmt"
	"os"
	"strconv"

	"intlist/config"
	"intlist/internal/command"
	"intlist/internal/logger"
	"intlist/internal/utils"
	"intlist/pkg/version"

	"github.com/pkg/errors"
	"github.com/vimiix/go-prompt"
)

var dummyExecutor = func(string) {}

type Shell struct {
	cfg      *config.Config
	registry *command.Registry
	session  *command.Session
	history  *History
	prompt   *prompt.Prompt
}

// New prepares a shell running commands of registry against session.
func New(cfg *config.Config, registry *command.Registry, session *command.Session) (*Shell, error) {
	history, err := NewHistory(cfg.MaxHistory, historyFile())
	if err != nil {
		return nil, errors.Wrap(err, "load history")
	}
	sh := &Shell{
		cfg:      cfg,
		registry: registry,
		session:  session,
		history:  history,
	}
	cc := &completer{registry: registry, session: session}
	sh.prompt = prompt.New(dummyExecutor,
		cc.Complete(),
		prompt.OptionTitle("intlist"),
		prompt.OptionHistory(history.Records()),
		prompt.OptionInputTextColor(prompt.Yellow),
		prompt.OptionLivePrefix(sh.LivePrefix()),
	)
	return sh, nil
}

func (sh *Shell) LivePrefix() func() (string, bool) {
	return func() (string, bool) {
		return expandPrompt(sh.cfg.Prompt, sh.session), true
	}
}

// Run reads commands until quit or end of input.
func (sh *Shell) Run() error {
	defer func() {
		if err := sh.history.Persist(); err != nil {
			logger.Warn("persist history: %v", err)
		}
	}()

	if !sh.cfg.LessChatty {
		fmt.Printf("intlist %s (%s)\n", version.Version, version.Commit)
		fmt.Println(`Type "help" for more information.`)
		fmt.Println()
	}

	for {
		in, err := sh.prompt.Input()
		if err != nil {
			if errors.Is(err, prompt.ErrQuit) {
				return nil
			}
			return err
		}
		if utils.EmptyStr(in) {
			continue
		}
		sh.history.Add(in)
		if err := sh.registry.Execute(sh.session, in); err != nil {
			if errors.Is(err, command.ErrQuit) {
				return nil
			}
			logger.Error("%v", err)
		}
	}
}

// expandPrompt replaces the prompt macros: $n node count, $s snapshot
// marker, $i process id and $$.
func expandPrompt(format string, s *command.Session) string {
	rs := []rune(format)
	var buf []byte
	end := len(rs)
	for i := 0; i < len(rs); i++ {
		if rs[i] != '$' {
			buf = append(buf, string(rs[i])...)
			continue
		}

		switch utils.Grab(rs, i+1, end) {
		case '$':
			buf = append(buf, '$')
		case 'n':
			buf = append(buf, strconv.Itoa(s.Len())...)
		case 's':
			if s.HasSnapshot() {
				buf = append(buf, '*')
			}
		case 'i':
			buf = append(buf, strconv.Itoa(os.Getpid())...)
		default:
		}
		i++
	}
	return string(buf)
}
