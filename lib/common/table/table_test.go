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

package table

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func testTable() *Table {
	t := New(3)
	t.AddRow().AddText("name", Left).AddText("n", Right).AddText("c", Center)
	t.AddSeparatorRow()
	t.AddRow().AddText("alpha", Left).AddNumber(decimal.RequireFromString("-1.25")).AddText("x", Center)
	t.AddRow().AddText("b", Right).AddNumber(decimal.RequireFromString("10")).AddText("yyy", Center)
	return t
}

func TestTextRenderer(t *testing.T) {
	tests := []struct {
		desc  string
		round int32
		want  string
	}{
		{
			desc:  "exact",
			round: -1,
			want: "" +
				"| name  |     n |  c  |\n" +
				"+-------+-------+-----+\n" +
				"| alpha | -1.25 |  x  |\n" +
				"|     b |    10 | yyy |\n",
		},
		{
			desc:  "rounded",
			round: 1,
			want: "" +
				"| name  |    n |  c  |\n" +
				"+-------+------+-----+\n" +
				"| alpha | -1.3 |  x  |\n" +
				"|     b | 10.0 | yyy |\n",
		},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			var (
				b bytes.Buffer
				r = TextRenderer{Round: test.round}
			)

			if err := r.Render(testTable(), &b); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if diff := cmp.Diff(test.want, b.String()); diff != "" {
				t.Fatalf("unexpected diff (-want/+got):\n%s", diff)
			}
		})
	}
}

func TestCSVRenderer(t *testing.T) {
	var (
		b bytes.Buffer
		r = CSVRenderer{Round: 3}
	)

	if err := r.Render(testTable(), &b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "name,n,c\nalpha,-1.250,x\nb,10.000,yyy\n"
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Fatalf("unexpected diff (-want/+got):\n%s", diff)
	}
}

func TestTextRendererColor(t *testing.T) {
	var (
		b bytes.Buffer
		r = TextRenderer{Color: true, Round: -1}
	)

	if err := r.Render(testTable(), &b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bytes.Contains(b.Bytes(), []byte("\x1b[31m-1.25\x1b[0m")) {
		t.Fatalf("negative number is not red:\n%q", b.String())
	}
	if !bytes.Contains(b.Bytes(), []byte("\x1b[32m10\x1b[0m")) {
		t.Fatalf("positive number is not green:\n%q", b.String())
	}
}
