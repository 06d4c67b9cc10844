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

package flags

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/sboehler/txengine/lib/feed"
	"github.com/sboehler/txengine/lib/ledger"
)

// Format is an output format.
type Format int

const (
	// CSV renders comma-separated values.
	CSV Format = iota
	// Text renders a table for humans.
	Text
)

// FormatFlag manages a flag to select the output format.
type FormatFlag Format

var _ pflag.Value = (*FormatFlag)(nil)

func (ff FormatFlag) String() string {
	switch Format(ff) {
	case CSV:
		return "csv"
	case Text:
		return "text"
	}
	return fmt.Sprintf("Format(%d)", int(ff))
}

// Set implements pflag.Value.
func (ff *FormatFlag) Set(v string) error {
	switch v {
	case "csv":
		*ff = FormatFlag(CSV)
	case "text":
		*ff = FormatFlag(Text)
	default:
		return fmt.Errorf("invalid format %q, want csv or text", v)
	}
	return nil
}

// Type implements pflag.Value.
func (ff FormatFlag) Type() string {
	return "csv|text"
}

// Value returns the flag value.
func (ff FormatFlag) Value() Format {
	return Format(ff)
}

// EncodingFlag manages a flag to select the input encoding.
type EncodingFlag feed.Encoding

var _ pflag.Value = (*EncodingFlag)(nil)

func (ef EncodingFlag) String() string {
	return feed.Encoding(ef).String()
}

// Set implements pflag.Value.
func (ef *EncodingFlag) Set(v string) error {
	e, err := feed.ParseEncoding(v)
	if err != nil {
		return err
	}
	*ef = EncodingFlag(e)
	return nil
}

// Type implements pflag.Value.
func (ef EncodingFlag) Type() string {
	return "utf8|latin1"
}

// Value returns the flag value.
func (ef EncodingFlag) Value() feed.Encoding {
	return feed.Encoding(ef)
}

// DuplicatesFlag manages a flag to select the handling of reused
// transaction ids.
type DuplicatesFlag ledger.DuplicatePolicy

var _ pflag.Value = (*DuplicatesFlag)(nil)

func (df DuplicatesFlag) String() string {
	return ledger.DuplicatePolicy(df).String()
}

// Set implements pflag.Value.
func (df *DuplicatesFlag) Set(v string) error {
	p, err := ledger.ParseDuplicatePolicy(v)
	if err != nil {
		return err
	}
	*df = DuplicatesFlag(p)
	return nil
}

// Type implements pflag.Value.
func (df DuplicatesFlag) Type() string {
	return "overwrite|warn|reject"
}

// Value returns the flag value.
func (df DuplicatesFlag) Value() ledger.DuplicatePolicy {
	return ledger.DuplicatePolicy(df)
}
