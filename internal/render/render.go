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

// Package render prints lists for humans.
package render

import (
	"io"

	"intlist/config"
	"intlist/pkg/linkedlist"

	"github.com/pkg/errors"
	"github.com/xo/tblfmt"
)

// Printer writes a diagnostic view of a list. It never mutates the list.
type Printer interface {
	Print(w io.Writer, head *linkedlist.Node) error
}

// New returns the printer for format, one of config.FormatTable or
// config.FormatPlain. params are passed to the table encoder.
func New(format string, params map[string]string) (Printer, error) {
	switch format {
	case config.FormatPlain:
		return PlainPrinter{}, nil
	case config.FormatTable:
		return &TablePrinter{params: params}, nil
	default:
		return nil, errors.Errorf("unknown output format %q", format)
	}
}

// PlainPrinter prints "Node <position> : <value>" lines.
type PlainPrinter struct{}

func (PlainPrinter) Print(w io.Writer, head *linkedlist.Node) error {
	return linkedlist.Print(w, head)
}

// TablePrinter prints a position/value table.
type TablePrinter struct {
	params map[string]string
}

func (p *TablePrinter) Print(w io.Writer, head *linkedlist.Node) error {
	return tblfmt.EncodeAll(w, NewResultSet(head), p.params)
}
