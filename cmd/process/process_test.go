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

package process

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/sboehler/txengine/cmd/cmdtest"
	"github.com/sboehler/txengine/lib/feed"
	"github.com/sboehler/txengine/lib/ledger"
)

func input(name string) string {
	return filepath.Join("testdata", fmt.Sprintf("%s.input", name))
}

func TestGolden(t *testing.T) {
	tests := []struct {
		golden string
		args   []string
	}{
		{"example1", []string{"--sort", input("example1")}},
		{"disputes", []string{"--sort", input("disputes")}},
		{"disputes", []string{"--sort", "--shards", "3", input("disputes")}},
		{"disputes_text", []string{"--sort", "--format", "text", input("disputes")}},
		{"disputes_text", []string{"--config", filepath.Join("testdata", "text.yaml"), input("disputes")}},
		{"disputes_digits", []string{"-s", "--digits", "4", input("disputes")}},
		{"disputes_color", []string{"--sort", "--format", "text", "--color", input("disputes")}},
		{"latin1", []string{"--encoding", "latin1", input("latin1")}},
		{"duplicates", []string{input("duplicates")}},
		{"duplicates", []string{"--duplicates", "warn", input("duplicates")}},
	}
	for i, test := range tests {
		test := test
		t.Run(fmt.Sprintf("%d-%s", i, test.golden), func(t *testing.T) {
			t.Parallel()

			got := cmdtest.Run(t, CreateCmd(), test.args)

			goldie.New(t).Assert(t, test.golden, got)
		})
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		desc string
		args []string
		want error
	}{
		{"negative amount", []string{input("negative")}, ledger.ErrAmountNotPositive},
		{"missing amount", []string{input("missing")}, ledger.ErrAmountMissing},
		{"rejected duplicate", []string{"--duplicates", "reject", input("duplicates")}, ledger.ErrDuplicateTransaction},
		{"missing file", []string{input("nonexistent")}, os.ErrNotExist},
	}
	for _, test := range tests {
		test := test
		t.Run(test.desc, func(t *testing.T) {
			t.Parallel()

			stdout, _, err := cmdtest.Execute(CreateCmd(), test.args)

			if !errors.Is(err, test.want) {
				t.Fatalf("got error %v, want %v", err, test.want)
			}
			if len(stdout) > 0 {
				t.Fatalf("got output %q, want none", stdout)
			}
		})
	}
}

func TestMalformedInput(t *testing.T) {
	_, _, err := cmdtest.Execute(CreateCmd(), []string{input("malformed")})

	var ferr *feed.Error
	if !errors.As(err, &ferr) {
		t.Fatalf("got error %v, want *feed.Error", err)
	}
	if ferr.Line != 3 {
		t.Fatalf("got line %d, want 3", ferr.Line)
	}
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("format: xml\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, _, err := cmdtest.Execute(CreateCmd(), []string{"--config", path, input("example1")})

	if err == nil {
		t.Fatalf("expected error for invalid config value")
	}
}

func TestOutputFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "accounts.csv")

	stdout := cmdtest.Run(t, CreateCmd(), []string{"--sort", "--output", out, input("example1")})

	if len(stdout) > 0 {
		t.Fatalf("got output %q, want none", stdout)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	goldie.New(t).Assert(t, "example1", got)
}

func TestVerbose(t *testing.T) {
	_, stderr, err := cmdtest.Execute(CreateCmd(), []string{"--verbose", input("disputes")})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(stderr, []byte("account locked")) {
		t.Fatalf("stderr does not mention locked accounts:\n%s", stderr)
	}
}

func TestProgress(t *testing.T) {
	stdout, _, err := cmdtest.Execute(CreateCmd(), []string{"--progress", "--sort", input("example1")})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	goldie.New(t).Assert(t, "example1", stdout)
}
