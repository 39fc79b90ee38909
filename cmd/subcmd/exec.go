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

package subcmd

import (
	"intlist/internal/command"
	"intlist/internal/logger"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func newExecCmd() *cli.Command {
	cmd := newDefaultCmd()
	cmd.Name = "exec"
	cmd.Usage = "Run commands against a list and exit"
	cmd.UsageText = `intlist exec --list 3,1,2 "sort" "print"`
	cmd.ArgsUsage = "COMMAND..."
	cmd.Flags = append(cmd.Flags,
		listFlag(),
		&cli.BoolFlag{
			Name:    "keep-going",
			Aliases: []string{"k"},
			Usage:   "Report failed commands and continue with the next one",
		},
	)
	cmd.Action = func(c *cli.Context) error {
		if c.Bool("help") {
			return cli.ShowSubcommandHelp(c)
		}
		lines := c.Args().Slice()
		if len(lines) == 0 {
			lines = []string{"print"}
		}

		sess, err := newSession(c)
		if err != nil {
			return err
		}
		defer sess.Close()

		var failed int
		for _, line := range lines {
			logger.Debug("exec: %s", line)
			err := registry.Execute(sess, line)
			if err == nil {
				continue
			}
			if errors.Is(err, command.ErrQuit) {
				return nil
			}
			if !c.Bool("keep-going") {
				return err
			}
			PrintError(err)
			failed++
		}
		if failed > 0 {
			return errors.Errorf("%d of %d commands failed", failed, len(lines))
		}
		return nil
	}
	return cmd
}
