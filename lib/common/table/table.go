// Copyright 2021 Silvio Böhler
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
	"github.com/shopspring/decimal"
)

// Table is a matrix of table cells.
type Table struct {
	width int
	rows  []*Row
}

// New creates a new table with the given number of columns.
func New(width int) *Table {
	return &Table{width: width}
}

// Width returns the width of this table.
func (t *Table) Width() int {
	return t.width
}

// AddRow adds a row.
func (t *Table) AddRow() *Row {
	row := &Row{make([]cell, 0, t.width)}
	t.rows = append(t.rows, row)
	return row
}

// AddSeparatorRow adds a separator row.
func (t *Table) AddSeparatorRow() {
	r := t.AddRow()
	for i := 0; i < t.Width(); i++ {
		r.addCell(separatorCell{})
	}
}

// Row is a table row.
type Row struct {
	cells []cell
}

func (r *Row) addCell(c cell) {
	r.cells = append(r.cells, c)
}

// AddText adds a text cell.
func (r *Row) AddText(content string, align Alignment) *Row {
	r.addCell(textCell{
		Content: content,
		Align:   align,
	})
	return r
}

// AddNumber adds a number cell.
func (r *Row) AddNumber(n decimal.Decimal) *Row {
	r.addCell(numberCell{n})
	return r
}

func (r *Row) isSep() bool {
	return len(r.cells) > 0 && r.cells[0].isSep()
}

type cell interface {
	isSep() bool
}

// Alignment is the alignment of a table cell.
type Alignment int

const (
	// Left aligns to the left.
	Left Alignment = iota
	// Right align to the right.
	Right
	// Center centers.
	Center
)

// textCell is a cell containing text.
type textCell struct {
	Content string
	Align   Alignment
}

func (t textCell) isSep() bool {
	return false
}

// numberCell is a cell containing a number.
type numberCell struct {
	n decimal.Decimal
}

func (t numberCell) isSep() bool {
	return false
}

// separatorCell is a cell containing a separator.
type separatorCell struct{}

func (separatorCell) isSep() bool {
	return true
}

// formatNumber formats n with the given number of decimal places. A
// negative value keeps the exact representation.
func formatNumber(n decimal.Decimal, places int32) string {
	if places < 0 {
		return n.String()
	}
	return n.StringFixed(places)
}
