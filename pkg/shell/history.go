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
	"bufio"
	"container/ring"
	"os"
	"path/filepath"
	"sync"

	"intlist/config"

	"github.com/vimiix/pkg/file"
)

const MaxHistory = 1000

// History keeps the last commands typed in the shell.
type History struct {
	mu      *sync.Mutex
	path    string
	records *ring.Ring
}

// NewHistory returns a history of at most n records, loaded from path if
// the file exists.
func NewHistory(n int, path string) (*History, error) {
	if n <= 0 {
		n = MaxHistory
	}
	h := &History{
		mu:      &sync.Mutex{},
		path:    path,
		records: ring.New(n),
	}
	if err := h.loadRecords(); err != nil {
		return nil, err
	}
	return h, nil
}

// Records returns the records, oldest first.
func (h *History) Records() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	records := make([]string, 0, h.records.Len())
	h.records.Do(func(a any) {
		if a == nil {
			return
		}
		records = append(records, a.(string))
	})
	return records
}

func (h *History) loadRecords() error {
	if _, err := os.Stat(h.path); err != nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	f, err := os.Open(h.path)
	if err != nil {
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		h.records.Value = scanner.Text()
		h.records = h.records.Next()
	}
	return scanner.Err()
}

func (h *History) Add(s string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records.Value = s
	h.records = h.records.Next()
}

// Persist writes the records to the history file.
func (h *History) Persist() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := file.EnsureDirExists(h.path); err != nil {
		return err
	}
	f, err := os.Create(h.path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	h.records.Do(func(a any) {
		if a == nil {
			return
		}
		_, _ = w.WriteString(a.(string) + "\n")
	})
	return w.Flush()
}

func historyFile() string {
	return filepath.Join(config.DefaultLocation(), "history")
}
