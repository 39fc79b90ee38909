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

package render

import (
	"intlist/pkg/linkedlist"

	"github.com/pkg/errors"
)

var columns = []string{"position", "value"}

// ResultSet walks a list as rows of (position, value).
type ResultSet struct {
	next *linkedlist.Node
	cur  *linkedlist.Node
	pos  int
}

func NewResultSet(head *linkedlist.Node) *ResultSet {
	return &ResultSet{next: head, pos: -1}
}

func (rs *ResultSet) Next() bool {
	if rs.next == nil {
		rs.cur = nil
		return false
	}
	rs.cur, rs.next = rs.next, rs.next.Next()
	rs.pos++
	return true
}

func (rs *ResultSet) Scan(dest ...any) error {
	if rs.cur == nil {
		return errors.New("scan called without a current row")
	}
	if len(dest) != len(columns) {
		return errors.Errorf("expected %d destinations, got %d", len(columns), len(dest))
	}
	for i, v := range []int64{int64(rs.pos), int64(rs.cur.Value)} {
		switch d := dest[i].(type) {
		case *any:
			*d = v
		case *int64:
			*d = v
		case *int:
			*d = int(v)
		default:
			return errors.Errorf("unsupported scan destination %T for column %s", dest[i], columns[i])
		}
	}
	return nil
}

func (rs *ResultSet) Columns() ([]string, error) {
	return columns, nil
}

func (rs *ResultSet) Close() error {
	rs.next, rs.cur = nil, nil
	return nil
}

func (rs *ResultSet) Err() error {
	return nil
}

func (rs *ResultSet) NextResultSet() bool {
	return false
}
