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
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// TextRenderer renders a table to text.
type TextRenderer struct {
	Color bool
	// Round is the number of decimal places of numbers, or -1 for no rounding.
	Round int32

	green, red *color.Color
}

// Render renders this table to a string.
func (r *TextRenderer) Render(t *Table, w io.Writer) error {
	r.green, r.red = color.New(color.FgGreen), color.New(color.FgRed)
	if r.Color {
		r.green.EnableColor()
		r.red.EnableColor()
	} else {
		r.green.DisableColor()
		r.red.DisableColor()
	}

	widths := make([]int, t.Width())
	for _, row := range t.rows {
		for i, c := range row.cells {
			if l := r.minLengthCell(c); widths[i] < l {
				widths[i] = l
			}
		}
	}
	for _, row := range t.rows {
		if err := r.renderRow(row, widths, w); err != nil {
			return err
		}
	}
	return nil
}

func (r *TextRenderer) renderRow(row *Row, widths []int, w io.Writer) error {
	if row.isSep() {
		parts := make([]string, len(widths))
		for i, l := range widths {
			parts[i] = strings.Repeat("-", l)
		}
		return writeString(w, "+-"+strings.Join(parts, "-+-")+"-+\n")
	}
	if err := writeString(w, "| "); err != nil {
		return err
	}
	for i, c := range row.cells {
		if err := r.renderCell(c, widths[i], w); err != nil {
			return err
		}
		if i < len(row.cells)-1 {
			if err := writeString(w, " | "); err != nil {
				return err
			}
		}
	}
	return writeString(w, " |\n")
}

func (r *TextRenderer) renderCell(c cell, l int, w io.Writer) error {
	switch t := c.(type) {

	case textCell:
		var before int
		switch t.Align {
		case Right:
			before = l - utf8.RuneCountInString(t.Content)
		case Center:
			before = (l - utf8.RuneCountInString(t.Content)) / 2
		}
		if err := writeSpace(w, before); err != nil {
			return err
		}
		if err := writeString(w, t.Content); err != nil {
			return err
		}
		return writeSpace(w, l-before-utf8.RuneCountInString(t.Content))

	case numberCell:
		s := formatNumber(t.n, r.Round)
		if err := writeSpace(w, l-utf8.RuneCountInString(s)); err != nil {
			return err
		}
		switch {
		case t.n.IsNegative():
			s = r.red.Sprint(s)
		case t.n.IsPositive():
			s = r.green.Sprint(s)
		}
		return writeString(w, s)
	}
	return fmt.Errorf("%v is not a valid cell type", c)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func writeSpace(w io.Writer, l int) error {
	if l <= 0 {
		return nil
	}
	return writeString(w, strings.Repeat(" ", l))
}

func (r *TextRenderer) minLengthCell(c cell) int {
	switch t := c.(type) {
	case textCell:
		return utf8.RuneCountInString(t.Content)
	case numberCell:
		return utf8.RuneCountInString(formatNumber(t.n, r.Round))
	}
	return 0
}
