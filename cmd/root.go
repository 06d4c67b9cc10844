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

// Package cmd is the main command file for Cobra
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sboehler/txengine/cmd/completion"
	"github.com/sboehler/txengine/cmd/process"
)

// CreateCmd creates the root command. Given a file argument, it behaves
// like the process command and accepts the same flags.
func CreateCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "txengine [flags] [transactions.csv]",
		Short: "txengine is a transaction engine for client accounts",
		Long: `txengine replays a log of deposits, withdrawals, disputes, resolves and
chargebacks and reports the resulting state of every client account.`,

		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || args[0] == "-h" || args[0] == "--help" {
				return cmd.Help()
			}
			p := process.CreateCmd()
			p.SetArgs(args)
			p.SetOut(cmd.OutOrStdout())
			p.SetErr(cmd.ErrOrStderr())
			return p.ExecuteContext(cmd.Context())
		},

		SilenceUsage:  true,
		SilenceErrors: true,
	}
	c.AddCommand(process.CreateCmd())
	c.AddCommand(completion.CreateCmd(c))
	return c
}

// Execute runs the root command and exits with a non-zero status on error.
// This is called by main.main().
func Execute() {
	rootCmd := CreateCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error occurred: %v\n", err)
		os.Exit(1)
	}
}
