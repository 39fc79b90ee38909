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

package main

import (
	"fmt"
	"os"
	"time"

	"intlist/cmd/subcmd"
	"intlist/config"
	"intlist/internal/logger"
	"intlist/internal/utils"
	"intlist/pkg/version"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var (
	authors = []*cli.Author{
		{Name: "Vimiix", Email: "i@vimiix.com"},
	}
	copyright = func() string {
		yearRange := "2024"
		nowYear := time.Now().Year()
		if nowYear > 2024 {
			yearRange = fmt.Sprintf("2024-%d", nowYear)
		}
		return fmt.Sprintf("Copyright (C) %s Vimiix", yearRange)
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "intlist"
	app.Usage = "Singly-linked integer list toolkit"
	app.Version = version.Version
	app.HideVersion = true // self control version flag to ensure help massage style is consistent
	app.Authors = authors
	app.Copyright = copyright()
	app.EnableBashCompletion = true
	app.UseShortOptionHandling = true
	app.HideHelp = true
	app.Suggest = true
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:               "help",
			Aliases:            []string{"?"},
			Usage:              "Show help information",
			DisableDefaultText: true,
		},
		&cli.BoolFlag{
			Name:               "version",
			Aliases:            []string{"v"},
			Usage:              "Print the version",
			DisableDefaultText: true,
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			EnvVars: []string{"INTLIST_CONFIG"},
			Usage:   "Config file, defaults to the file in " + config.DefaultLocation(),
		},
		&cli.StringFlag{
			Name:    "log-level",
			EnvVars: []string{"INTLIST_LOG_LEVEL"},
			Usage:   "Log level: debug, info, warn, error or fatal",
			Action: func(ctx *cli.Context, v string) error {
				if _, ok := logger.ParseLevel(v); !ok {
					return fmt.Errorf("flag log-level value %q is not a level", v)
				}
				return nil
			},
		},
		&cli.BoolFlag{
			Name:  "silence",
			Usage: "Suppress log output",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "List output format: table or plain",
		},
	}
	app.Commands = subcmd.GetSubCmds().Values()

	app.Before = func(c *cli.Context) error {
		var err error
		if path := c.String("config"); path != "" {
			err = config.InitWithFile(path)
		} else {
			err = config.Init()
		}
		if err != nil {
			return err
		}

		cfg := config.Get()
		if c.IsSet("log-level") {
			cfg.LogLevel = c.String("log-level")
		}
		if c.IsSet("silence") {
			cfg.Silence = c.Bool("silence")
		}
		if c.IsSet("format") {
			cfg.OutputFormat = c.String("format")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		if cfg.NoColor {
			color.NoColor = true
		}
		if cfg.Silence {
			logger.MuteLogger()
		} else {
			logger.SetLogLevelByString(cfg.LogLevel)
		}
		logger.Debug("config loaded, output format %s", cfg.OutputFormat)
		return nil
	}

	app.Action = func(c *cli.Context) error {
		if c.Bool("version") {
			fmt.Println(version.GetVersionDetail())
			return nil
		}
		return cli.ShowAppHelp(c)
	}
	if err := app.Run(os.Args); err != nil {
		utils.PrintError(err)
		os.Exit(1)
	}
}
