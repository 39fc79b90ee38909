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
	"io"
	"os"
	"strings"

	"intlist/config"
	"intlist/internal/command"
	"intlist/internal/orderedmap"
	"intlist/internal/render"
	"intlist/internal/utils"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var (
	subcmds  = orderedmap.NewOrderedMap[string, *cli.Command]()
	registry = command.NewRegistry()

	// stdout receives list output and listings, replaced in tests.
	stdout io.Writer = os.Stdout
)

func init() {
	subcmds.Set("exec", newExecCmd())
	subcmds.Set("shell", newShellCmd())
	subcmds.Set("ops", newOpsCmd())
	subcmds.Set("version", newVersionCmd())
}

func GetSubCmds() *orderedmap.OrderedMap[string, *cli.Command] {
	return subcmds
}

// newDefaultCmd creates a new cli.Command with default settings.
//
// It returns a pointer to a new cli.Command with the following settings:
//   - HideHelp: true
//   - UseShortOptionHandling: true
//
// Returns:
//   - *cli.Command
func newDefaultCmd() *cli.Command {
	cmd := &cli.Command{
		HideHelp:               true,
		UseShortOptionHandling: true,
	}
	cmd.Flags = append(cmd.Flags, &cli.BoolFlag{
		Name:               "help",
		Aliases:            []string{"?"},
		Usage:              "Show help information",
		DisableDefaultText: true,
	})
	return cmd
}

func listFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "list",
		Aliases: []string{"l"},
		EnvVars: []string{"INTLIST_VALUES"},
		Usage:   "Initial list values, comma or space separated",
	}
}

func currentConfig() *config.Config {
	if cfg := config.Get(); cfg != nil {
		return cfg
	}
	return config.Default()
}

// newSession builds a session loaded with the values of the --list flag.
// The caller owns the session and must close it.
func newSession(c *cli.Context) (*command.Session, error) {
	cfg := currentConfig()
	printer, err := render.New(cfg.OutputFormat, cfg.PrintParams())
	if err != nil {
		return nil, err
	}
	values, err := utils.ParseValues(strings.Fields(c.String("list"))...)
	if err != nil {
		return nil, err
	}
	sess := command.NewSession(stdout, printer)
	if err := sess.Load(values); err != nil {
		return nil, err
	}
	return sess, nil
}

// PrintError prints an error message to the standard error stream in red color.
//
// It takes an error object as a parameter and prints it along with the "error:" prefix.
func PrintError(err any) {
	utils.PrintError(err)
}

func PrintCommand(cmd, desc string) {
	fmt.Fprintf(stdout, "%-30s: %s\n", color.GreenString(cmd), desc)
}
