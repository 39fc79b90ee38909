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
	"fmt"
	"strings"

	"intlist/internal/utils"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

func newOpsCmd() *cli.Command {
	cmd := newDefaultCmd()
	cmd.Name = "ops"
	cmd.Usage = "List the commands accepted by exec and shell"
	cmd.Flags = append(cmd.Flags, &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"V"},
		Usage:   "Show syntax and description of every command",
	})
	cmd.Action = func(c *cli.Context) error {
		if c.Bool("help") {
			return cli.ShowSubcommandHelp(c)
		}
		if c.Bool("verbose") {
			for _, cmd := range registry.Commands() {
				PrintCommand(cmd.Syntax, cmd.Description)
			}
			return nil
		}
		names := registry.Names()
		var width int
		for _, name := range names {
			width = max(width, len(name))
		}
		for _, row := range utils.Chunks(names) {
			cells := make([]string, len(row))
			for i, name := range row {
				cells[i] = color.GreenString("%-*s", width, name)
			}
			fmt.Fprintln(stdout, strings.TrimRight(strings.Join(cells, " "), " "))
		}
		return nil
	}
	return cmd
}
