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

package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLogLevel(DebugLevel)
		UnmuteLogger()
	})
	return &buf
}

func TestParseLevel(t *testing.T) {
	for s, want := range map[string]LogLevel{
		"debug": DebugLevel,
		"INFO":  InfoLevel,
		" Warn": WarnLevel,
		"error": ErrorLevel,
		"fatal": FatalLevel,
	} {
		lvl, ok := ParseLevel(s)
		assert.True(t, ok, s)
		assert.Equal(t, want, lvl, s)
	}

	lvl, ok := ParseLevel("verbose")
	assert.False(t, ok)
	assert.Equal(t, InfoLevel, lvl)
}

func TestLevelFilter(t *testing.T) {
	buf := capture(t)
	SetLogLevelByString("warn")

	Info("hidden %d", 1)
	assert.Empty(t, buf.String())

	Warn("shown %d", 2)
	assert.Contains(t, buf.String(), "[WARN]")
	assert.Contains(t, buf.String(), "shown 2")
}

func TestMuteLogger(t *testing.T) {
	buf := capture(t)
	MuteLogger()
	Error("nothing")
	assert.Empty(t, buf.String())

	UnmuteLogger()
	Debug("value %d found", 3)
	assert.Contains(t, buf.String(), "[DEBUG] value 3 found")
}
