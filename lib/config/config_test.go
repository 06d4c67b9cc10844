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

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		desc  string
		input string
		want  map[string]string
	}{
		{
			desc: "all keys",
			input: strings.Join([]string{
				"format: text",
				"encoding: latin1",
				"duplicates: reject",
				"sort: true",
				"digits: 4",
				"shards: 8",
				"verbose: false",
			}, "\n"),
			want: map[string]string{
				"format":     "text",
				"encoding":   "latin1",
				"duplicates": "reject",
				"sort":       "true",
				"digits":     "4",
				"shards":     "8",
				"verbose":    "false",
			},
		},
		{
			desc:  "some keys",
			input: "digits: 0\n",
			want:  map[string]string{"digits": "0"},
		},
		{
			desc: "empty",
			want: map[string]string{},
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.desc, func(t *testing.T) {
			c, err := Load(strings.NewReader(test.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if diff := cmp.Diff(test.want, c.Flags()); diff != "" {
				t.Fatalf("unexpected diff (-want/+got):\n%s", diff)
			}
		})
	}
}

func TestLoadUnknownKey(t *testing.T) {
	if _, err := Load(strings.NewReader("fromat: text\n")); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "txengine.yaml")
	if err := os.WriteFile(path, []byte("sort: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Sort == nil || !*c.Sort {
		t.Fatalf("got sort %v, want true", c.Sort)
	}
}
