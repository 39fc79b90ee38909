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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestInitWritesDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	require.NoError(t, Init())
	assert.FileExists(t, filepath.Join(dir, "intlist", "config"))

	cfg := Get()
	require.NotNil(t, cfg)
	assert.Equal(t, defaultPrompt, cfg.Prompt)
	assert.Equal(t, 1000, cfg.MaxHistory)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, FormatTable, cfg.OutputFormat)
	assert.False(t, cfg.Silence)
	assert.Equal(t, 1, cfg.Border)
	assert.Equal(t, "ascii", cfg.LineStyle)
	assert.True(t, cfg.Footer)
}

func TestLoadOverridesDefaults(t *testing.T) {
	p := writeFile(t, `
log_level = debug
silence = true
output_format = plain

[table]
border = 2
title = nodes
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Silence)
	assert.Equal(t, FormatPlain, cfg.OutputFormat)
	assert.Equal(t, 2, cfg.Border)
	assert.Equal(t, "nodes", cfg.Title)
	assert.Equal(t, defaultPrompt, cfg.Prompt)
	assert.Equal(t, "ascii", cfg.LineStyle)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	_, err := Load(writeFile(t, "output_format = json\n"))
	assert.ErrorContains(t, err, `unknown output_format "json"`)

	_, err = Load(writeFile(t, "[table]\nborder = 5\n"))
	assert.ErrorContains(t, err, "out of range")

	_, err = Load(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestNoColorFromEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.True(t, Default().NoColor)
}

func TestPrintParams(t *testing.T) {
	cfg := Default()
	cfg.Footer = false
	cfg.Title = "list"
	cfg.Locale = "en-US"

	params := cfg.PrintParams()
	assert.Equal(t, "1", params["border"])
	assert.Equal(t, "aligned", params["format"])
	assert.Equal(t, "off", params["footer"])
	assert.Equal(t, "list", params["title"])
	assert.Equal(t, "en-US", params["locale"])
}
