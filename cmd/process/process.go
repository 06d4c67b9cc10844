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

// Package process implements the command which processes a transaction log.
package process

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/sboehler/txengine/cmd/flags"
	"github.com/sboehler/txengine/lib/common/cpr"
	"github.com/sboehler/txengine/lib/common/table"
	"github.com/sboehler/txengine/lib/config"
	"github.com/sboehler/txengine/lib/feed"
	"github.com/sboehler/txengine/lib/ledger"
	"github.com/sboehler/txengine/lib/report"
	"github.com/sboehler/txengine/lib/transaction"
)

// CreateCmd creates the command.
func CreateCmd() *cobra.Command {
	var r runner

	c := &cobra.Command{
		Use:   "process <transactions.csv>",
		Short: "process a transaction log",
		Long: `Process a CSV transaction log with the columns type, client, tx and amount,
and print the available, held and total funds and the lock state of every
client account.`,

		Args: cobra.ExactArgs(1),
		RunE: r.run,

		SilenceUsage:  true,
		SilenceErrors: true,
	}
	r.setupFlags(c)
	return c
}

type runner struct {
	config string

	// input
	encoding   flags.EncodingFlag
	duplicates flags.DuplicatesFlag
	shards     int
	progress   bool
	verbose    bool

	// output
	format flags.FormatFlag
	output string
	sort   bool
	color  bool
	digits int32
}

func (r *runner) setupFlags(c *cobra.Command) {
	c.Flags().StringVarP(&r.config, "config", "c", "", "YAML file with flag defaults")
	c.Flags().VarP(&r.encoding, "encoding", "e", "character encoding of the input")
	c.Flags().Var(&r.duplicates, "duplicates", "handling of reused transaction ids")
	c.Flags().IntVar(&r.shards, "shards", 1, "number of concurrently processed client partitions")
	c.Flags().BoolVar(&r.progress, "progress", false, "show a progress bar on stderr")
	c.Flags().BoolVarP(&r.verbose, "verbose", "v", false, "log ignored transactions")
	c.Flags().VarP(&r.format, "format", "f", "output format")
	c.Flags().StringVarP(&r.output, "output", "o", "", "write to this file instead of stdout")
	c.Flags().BoolVarP(&r.sort, "sort", "s", false, "sort accounts by client")
	c.Flags().BoolVar(&r.color, "color", false, "print text output in color")
	c.Flags().Int32Var(&r.digits, "digits", -1, "round to number of digits, -1 to print exact amounts")
}

func (r *runner) run(cmd *cobra.Command, args []string) error {
	if err := r.loadConfig(cmd); err != nil {
		return err
	}
	log := newLogger(cmd.ErrOrStderr(), r.verbose)
	defer log.Sync()

	return r.execute(cmd, args[0], log)
}

// loadConfig sets all flags which have not been given on the command line
// to the values of the config file.
func (r *runner) loadConfig(cmd *cobra.Command) error {
	if r.config == "" {
		return nil
	}
	cfg, err := config.LoadFromFile(r.config)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", r.config, err)
	}
	for name, value := range cfg.Flags() {
		if cmd.Flags().Changed(name) {
			continue
		}
		if err := cmd.Flags().Set(name, value); err != nil {
			return fmt.Errorf("config %s: invalid value for %s: %w", r.config, name, err)
		}
	}
	return nil
}

// book accumulates transactions into account balances.
type book interface {
	cpr.Sink[*transaction.Transaction]
	Balances() []ledger.Balance
	SortedBalances() []ledger.Balance
}

func (r *runner) execute(cmd *cobra.Command, path string, log *zap.Logger) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, f.Close()) }()

	var in io.Reader = f
	if r.progress {
		bar, err := newProgressBar(f, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer bar.Finish()
		in = bar.NewProxyReader(f)
	}
	b := r.newBook(log)
	eng := cpr.Engine[*transaction.Transaction]{
		Source: feed.NewReader(r.encoding.Value().Decode(in)),
		Sink:   b,
	}
	if err := eng.Process(cmd.Context()); err != nil {
		return err
	}
	bs := b.Balances()
	if r.sort {
		bs = b.SortedBalances()
	}
	log.Debug("processed transaction log", zap.String("path", path), zap.Int("accounts", len(bs)))
	return r.write(cmd.OutOrStdout(), report.Render(bs))
}

func (r *runner) newBook(log *zap.Logger) book {
	opts := []ledger.Option{
		ledger.WithLogger(log),
		ledger.WithDuplicatePolicy(r.duplicates.Value()),
	}
	if r.shards > 1 {
		return ledger.NewSharded(r.shards, opts...)
	}
	return ledger.New(opts...)
}

type renderer interface {
	Render(*table.Table, io.Writer) error
}

func (r *runner) renderer() renderer {
	if r.format.Value() == flags.Text {
		return &table.TextRenderer{Color: r.color, Round: r.digits}
	}
	return &table.CSVRenderer{Round: r.digits}
}

func (r *runner) write(stdout io.Writer, t *table.Table) (err error) {
	if r.output != "" {
		var buf bytes.Buffer
		if err := r.renderer().Render(t, &buf); err != nil {
			return err
		}
		return atomic.WriteFile(r.output, &buf)
	}
	w := bufio.NewWriter(stdout)
	defer func() { err = multierr.Append(err, w.Flush()) }()
	return r.renderer().Render(t, w)
}

func newProgressBar(f *os.File, w io.Writer) (*pb.ProgressBar, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	bar := pb.New64(fi.Size()).SetTemplate(pb.Full).SetWriter(w)
	bar.Set(pb.Bytes, true)
	return bar.Start(), nil
}
