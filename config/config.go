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

package config

import (
	"embed"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"intlist/internal/utils"

	syslocale "github.com/jeandeaual/go-locale"
	"github.com/pkg/errors"
	"github.com/vimiix/pkg/file"
	"github.com/xo/terminfo"
	"gopkg.in/ini.v1"
)

//go:embed defaultconfig.ini
var defaultConfigFile embed.FS

var defaultConfig *Config

const (
	defaultPrompt = "intlist[$n]$s> "

	FormatTable = "table"
	FormatPlain = "plain"
)

func Get() *Config {
	return defaultConfig
}

type Config struct {
	Prompt       string `ini:"prompt,omitempty"`
	LessChatty   bool   `ini:"less_chatty,omitempty"`
	MaxHistory   int    `ini:"max_history,omitempty"`
	LogLevel     string `ini:"log_level,omitempty"`
	Silence      bool   `ini:"silence,omitempty"`
	OutputFormat string `ini:"output_format,omitempty"`

	// auto detected fields
	NoColor bool   `ini:"-"`
	Locale  string `ini:"-"`

	Table `ini:"table"`
}

type Table struct {
	Border    int    `ini:"border,omitempty"`
	LineStyle string `ini:"linestyle,omitempty"`
	Footer    bool   `ini:"footer,omitempty"`
	Title     string `ini:"title,omitempty"`
}

// PrintParams returns the table encoder parameters.
func (c *Config) PrintParams() map[string]string {
	footer := "off"
	if c.Footer {
		footer = "on"
	}
	return map[string]string{
		"border":    strconv.Itoa(c.Border),
		"format":    "aligned",
		"linestyle": c.LineStyle,
		"footer":    footer,
		"title":     c.Title,
		"locale":    c.Locale,
		"null":      "",
		"time":      "RFC3339Nano",
	}
}

// Init loads the config file from the default location, writing the
// embedded default there first if it does not exist yet.
func Init() error {
	cfgFile := filepath.Join(DefaultLocation(), "config")
	if err := writeDefaultConfig(cfgFile, false); err != nil {
		return errors.Wrapf(err, "write default config: %s", cfgFile)
	}
	return InitWithFile(cfgFile)
}

// InitWithFile loads the config file at path.
func InitWithFile(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	defaultConfig = cfg
	return nil
}

// Load returns the defaults overridden by the keys present in path.
func Load(path string) (*Config, error) {
	cfg := newDefault()
	if err := ini.MapTo(cfg, file.ExpandHomePath(path)); err != nil {
		return nil, errors.Wrapf(err, "load config: %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.WithMessagef(err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks the values that have a closed set of choices.
func (c *Config) Validate() error {
	switch c.OutputFormat {
	case FormatTable, FormatPlain:
	default:
		return errors.Errorf("unknown output_format %q", c.OutputFormat)
	}
	if c.Border < 0 || c.Border > 2 {
		return errors.Errorf("table border %d out of range[0-2]", c.Border)
	}
	return nil
}

func newDefault() *Config {
	noColor := false
	if s, ok := utils.Getenv("NO_COLOR"); ok {
		noColor = s != "0" && s != "false" && s != "off"
	}
	if colorLevel, _ := terminfo.ColorLevelFromEnv(); colorLevel < terminfo.ColorLevelBasic {
		noColor = true
	}

	locale := "en-US"
	if s, err := syslocale.GetLocale(); err == nil && s != "" {
		locale = s
	}

	return &Config{
		Prompt:       defaultPrompt,
		MaxHistory:   1000,
		LogLevel:     "info",
		OutputFormat: FormatTable,
		NoColor:      noColor,
		Locale:       locale,
		Table: Table{
			Border:    1,
			LineStyle: "ascii",
			Footer:    true,
		},
	}
}

// Default returns the built-in configuration without reading any file.
func Default() *Config {
	return newDefault()
}

// DefaultLocation returns the default location of the config file, which is
// determined by the XDG configuration directory specification. On Windows,
// the configuration directory is in the user's AppData directory. If the
// XDG_CONFIG_HOME environment variable is not set, the default location is
// ~/.config/intlist/ on Unix systems and %USERPROFILE%\AppData\Local\intlist\
// on Windows.
func DefaultLocation() string {
	if os.Getenv("XDG_CONFIG_HOME") != "" {
		return file.ExpandHomePath(os.Getenv("XDG_CONFIG_HOME")) + "/intlist/"
	}
	if runtime.GOOS == "windows" {
		return os.Getenv("USERPROFILE") + "\\AppData\\Local\\intlist\\"
	}
	return file.ExpandHomePath("~/.config/intlist/")
}

func writeDefaultConfig(dest string, overwrite bool) error {
	dest = file.ExpandHomePath(dest)
	if !overwrite && file.Exists(dest) {
		return nil
	}

	if err := file.EnsureDirExists(dest); err != nil {
		return err
	}

	src, err := defaultConfigFile.Open("defaultconfig.ini")
	if err != nil {
		return err
	}
	defer src.Close()
	dst, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer dst.Close()
	_, err = io.Copy(dst, src)
	return err
}
