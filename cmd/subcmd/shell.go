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
	"intlist/pkg/shell"

	"github.com/urfave/cli/v2"
)

func newShellCmd() *cli.Command {
	cmd := newDefaultCmd()
	cmd.Name = "shell"
	cmd.Usage = "Start an interactive session on a list"
	cmd.UsageText = "intlist shell --list 1,2,3"
	cmd.Flags = append(cmd.Flags, listFlag())
	cmd.Action = func(c *cli.Context) error {
		if c.Bool("help") {
			return cli.ShowSubcommandHelp(c)
		}
		sess, err := newSession(c)
		if err != nil {
			return err
		}
		defer sess.Close()

		sh, err := shell.New(currentConfig(), registry, sess)
		if err != nil {
			return err
		}
		return sh.Run()
	}
	return cmd
}
