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

package ledger

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/sboehler/txengine/lib/common/cpr"
	"github.com/sboehler/txengine/lib/transaction"
)

// Sharded partitions clients over several ledgers which process
// transactions concurrently. All transactions of a client are routed to the
// same shard, in order, so the result equals that of a single ledger.
type Sharded struct {
	shards []*Ledger
}

// NewSharded creates a sharded ledger with n shards. Every shard is
// configured with the given options.
func NewSharded(n int, opts ...Option) *Sharded {
	if n < 1 {
		n = 1
	}
	s := &Sharded{shards: make([]*Ledger, n)}
	for i := range s.shards {
		s.shards[i] = New(opts...)
	}
	return s
}

func (s *Sharded) shard(c transaction.ClientID) int {
	return int(c) % len(s.shards)
}

// Sink dispatches the received transactions to the shards.
func (s *Sharded) Sink(ctx context.Context, inCh <-chan *transaction.Transaction) error {
	g, ctx := errgroup.WithContext(ctx)
	chs := make([]chan *transaction.Transaction, len(s.shards))
	for i, l := range s.shards {
		l, ch := l, make(chan *transaction.Transaction, cpr.BufSize)
		chs[i] = ch
		g.Go(func() error {
			return l.Sink(ctx, ch)
		})
	}
	g.Go(func() error {
		defer func() {
			for _, ch := range chs {
				close(ch)
			}
		}()
		return cpr.Consume(ctx, inCh, func(t *transaction.Transaction) error {
			return cpr.Push(ctx, chs[s.shard(t.Client)], t)
		})
	})
	return g.Wait()
}

// Account returns the account of the given client.
func (s *Sharded) Account(c transaction.ClientID) (*Account, bool) {
	return s.shards[s.shard(c)].Account(c)
}

// Balances returns the balances of all accounts, in no particular order.
func (s *Sharded) Balances() []Balance {
	var res []Balance
	for _, l := range s.shards {
		res = append(res, l.Balances()...)
	}
	return res
}

// SortedBalances returns the balances of all accounts ordered by client.
func (s *Sharded) SortedBalances() []Balance {
	return sortBalances(s.Balances())
}
