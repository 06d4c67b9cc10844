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

// Package cmdtest runs commands in tests.
package cmdtest

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
)

// Run executes the command with the given arguments and returns what it
// wrote to stdout. The test fails if the command returns an error.
func Run(t *testing.T, cmd *cobra.Command, args []string) []byte {
	t.Helper()
	stdout, stderr, err := Execute(cmd, args)
	if err != nil {
		t.Fatalf("%s %v: %v\nstderr:\n%s", cmd.Name(), args, err, stderr)
	}
	return stdout
}

// Execute executes the command with the given arguments and returns what
// it wrote to stdout and stderr.
func Execute(cmd *cobra.Command, args []string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.Bytes(), stderr.Bytes(), err
}
