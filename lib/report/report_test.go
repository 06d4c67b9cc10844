// Copyright 2020 Silvio Böhler
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

package report

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/sboehler/txengine/lib/common/table"
	"github.com/sboehler/txengine/lib/ledger"
)

var dec = decimal.RequireFromString

func TestRender(t *testing.T) {
	bs := []ledger.Balance{
		{Client: 1, Available: dec("-0.4"), Held: dec("0"), Total: dec("-0.4"), Locked: true},
		{Client: 12, Available: dec("1.5"), Held: dec("2.25"), Total: dec("3.75")},
	}
	var csv, text bytes.Buffer
	if err := (&table.CSVRenderer{Round: -1}).Render(Render(bs), &csv); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (&table.TextRenderer{Round: -1}).Render(Render(bs), &text); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantCSV := "" +
		"client,available,held,total,locked\n" +
		"1,-0.4,0,-0.4,true\n" +
		"12,1.5,2.25,3.75,false\n"
	if diff := cmp.Diff(wantCSV, csv.String()); diff != "" {
		t.Fatalf("unexpected diff (-want/+got):\n%s", diff)
	}
	wantText := "" +
		"| client | available | held | total | locked |\n" +
		"+--------+-----------+------+-------+--------+\n" +
		"| 1      |      -0.4 |    0 |  -0.4 | true   |\n" +
		"| 12     |       1.5 | 2.25 |  3.75 | false  |\n"
	if diff := cmp.Diff(wantText, text.String()); diff != "" {
		t.Fatalf("unexpected diff (-want/+got):\n%s", diff)
	}
}
