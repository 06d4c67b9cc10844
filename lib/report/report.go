// Copyright 2022 Silvio Böhler
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package report renders account balances.
package report

import (
	"strconv"

	"github.com/sboehler/txengine/lib/common/table"
	"github.com/sboehler/txengine/lib/ledger"
)

var header = []string{"client", "available", "held", "total", "locked"}

// Render creates a table with one row per balance, in the given order.
func Render(bs []ledger.Balance) *table.Table {
	t := table.New(len(header))
	row := t.AddRow()
	for i, h := range header {
		if i == 0 || i == len(header)-1 {
			row.AddText(h, table.Left)
		} else {
			row.AddText(h, table.Right)
		}
	}
	t.AddSeparatorRow()
	for _, b := range bs {
		t.AddRow().
			AddText(strconv.FormatUint(uint64(b.Client), 10), table.Left).
			AddNumber(b.Available).
			AddNumber(b.Held).
			AddNumber(b.Total).
			AddText(strconv.FormatBool(b.Locked), table.Left)
	}
	return t
}
