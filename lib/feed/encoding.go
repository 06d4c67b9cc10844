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

package feed

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding/charmap"
)

// Encoding is the character encoding of a transaction log.
type Encoding int

const (
	// UTF8 is the default encoding.
	UTF8 Encoding = iota
	// Latin1 is ISO 8859-1.
	Latin1
)

var encodingNames = [...]string{
	UTF8:   "utf8",
	Latin1: "latin1",
}

func (e Encoding) String() string {
	if e < 0 || int(e) >= len(encodingNames) {
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
	return encodingNames[e]
}

// ParseEncoding parses the name of an encoding.
func ParseEncoding(s string) (Encoding, error) {
	for i, n := range encodingNames {
		if n == s {
			return Encoding(i), nil
		}
	}
	return 0, fmt.Errorf("invalid encoding %q, want one of %v", s, encodingNames)
}

// Decode returns a reader which converts r to UTF-8.
func (e Encoding) Decode(r io.Reader) io.Reader {
	if e == Latin1 {
		return charmap.ISO8859_1.NewDecoder().Reader(r)
	}
	return r
}
