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
	"encoding/csv"
	"fmt"
	"io"
)

// CSVRenderer renders a table as CSV. Separator rows are omitted.
type CSVRenderer struct {
	// Round is the number of decimal places of numbers, or -1 for no rounding.
	Round int32
}

// Render renders the table.
func (r *CSVRenderer) Render(t *Table, w io.Writer) error {
	writer := csv.NewWriter(w)
	rec := make([]string, 0, t.Width())
	for _, row := range t.rows {
		if row.isSep() {
			continue
		}
		rec = rec[:0]
		for _, c := range row.cells {
			s, err := r.renderCell(c)
			if err != nil {
				return err
			}
			rec = append(rec, s)
		}
		if err := writer.Write(rec); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func (r *CSVRenderer) renderCell(c cell) (string, error) {
	switch t := c.(type) {

	case textCell:
		return t.Content, nil

	case numberCell:
		return formatNumber(t.n, r.Round), nil
	}
	return "", fmt.Errorf("%v is not a valid cell type", c)
}
