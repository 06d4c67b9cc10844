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

// Package feed reads transaction logs in CSV format.
package feed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sboehler/txengine/lib/common/cpr"
	"github.com/sboehler/txengine/lib/transaction"
)

// Error is a malformed record of the transaction log.
type Error struct {
	Line   int
	Record string
	Err    error
}

func (e *Error) Error() string {
	if e.Record == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %v (record: %s)", e.Line, e.Err, e.Record)
}

func (e *Error) Unwrap() error {
	return e.Err
}

type column int

const (
	colType column = iota
	colClient
	colTx
	colAmount
	numColumns
)

var columnNames = [numColumns]string{
	colType:   "type",
	colClient: "client",
	colTx:     "tx",
	colAmount: "amount",
}

// Reader decodes transactions from CSV. The first record must be a header
// naming the columns type, client, tx and optionally amount, in any order.
// Whitespace around fields is ignored, and records may omit trailing
// empty fields.
type Reader struct {
	reader  *csv.Reader
	columns [numColumns]int
	header  bool
}

// NewReader creates a reader.
func NewReader(r io.Reader) *Reader {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true
	return &Reader{reader: reader}
}

// Next returns the next transaction. It returns io.EOF at the end of the
// input.
func (r *Reader) Next() (*transaction.Transaction, error) {
	if !r.header {
		if err := r.readHeader(); err != nil {
			return nil, err
		}
		r.header = true
	}
	rec, err := r.read()
	if err != nil {
		return nil, err
	}
	t, err := r.parse(rec)
	if err != nil {
		line, _ := r.reader.FieldPos(0)
		return nil, &Error{Line: line, Record: strings.Join(rec, ","), Err: err}
	}
	return t, nil
}

// Source implements cpr.Source.
func (r *Reader) Source(ctx context.Context, outCh chan<- *transaction.Transaction) error {
	for {
		t, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := cpr.Push(ctx, outCh, t); err != nil {
			return err
		}
	}
}

func (r *Reader) read() ([]string, error) {
	rec, err := r.reader.Read()
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return nil, &Error{Line: perr.Line, Err: perr.Err}
	}
	return rec, err
}

func (r *Reader) readHeader() error {
	rec, err := r.read()
	if err != nil {
		return err
	}
	for i := range r.columns {
		r.columns[i] = -1
	}
	for i, name := range rec {
		name = strings.ToLower(strings.TrimSpace(name))
		for c, n := range columnNames {
			if name == n {
				r.columns[c] = i
			}
		}
	}
	for _, c := range []column{colType, colClient, colTx} {
		if r.columns[c] < 0 {
			return &Error{
				Line:   1,
				Record: strings.Join(rec, ","),
				Err:    fmt.Errorf("invalid header: missing column %q", columnNames[c]),
			}
		}
	}
	return nil
}

func (r *Reader) field(rec []string, c column) (string, bool) {
	i := r.columns[c]
	if i < 0 || i >= len(rec) {
		return "", false
	}
	return strings.TrimSpace(rec[i]), true
}

func (r *Reader) requiredField(rec []string, c column) (string, error) {
	s, ok := r.field(rec, c)
	if !ok || s == "" {
		return "", fmt.Errorf("missing field %q", columnNames[c])
	}
	return s, nil
}

func (r *Reader) parse(rec []string) (*transaction.Transaction, error) {
	var (
		res transaction.Transaction
		s   string
		err error
	)
	if s, err = r.requiredField(rec, colType); err != nil {
		return nil, err
	}
	if res.Type, err = transaction.ParseType(s); err != nil {
		return nil, err
	}
	if s, err = r.requiredField(rec, colClient); err != nil {
		return nil, err
	}
	client, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid client %q: %w", s, err)
	}
	res.Client = transaction.ClientID(client)
	if s, err = r.requiredField(rec, colTx); err != nil {
		return nil, err
	}
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid tx %q: %w", s, err)
	}
	res.ID = transaction.ID(id)
	if s, ok := r.field(rec, colAmount); ok && s != "" {
		if strings.ContainsAny(s, "eE") {
			return nil, fmt.Errorf("invalid amount %q: exponent notation", s)
		}
		amount, err := decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", s, err)
		}
		res.Amount = &amount
	}
	return &res, nil
}
