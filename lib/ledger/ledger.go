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

// Package ledger implements the account state machine.
package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sboehler/txengine/lib/common/compare"
	"github.com/sboehler/txengine/lib/common/cpr"
	"github.com/sboehler/txengine/lib/common/dict"
	"github.com/sboehler/txengine/lib/transaction"
)

// DuplicatePolicy determines how a deposit or withdrawal is handled whose
// id has already been recorded for the same client.
type DuplicatePolicy int

const (
	// Overwrite replaces the earlier record.
	Overwrite DuplicatePolicy = iota
	// Warn replaces the earlier record and logs a warning.
	Warn
	// Reject fails with ErrDuplicateTransaction.
	Reject
)

var duplicatePolicyNames = [...]string{
	Overwrite: "overwrite",
	Warn:      "warn",
	Reject:    "reject",
}

func (p DuplicatePolicy) String() string {
	if p < 0 || int(p) >= len(duplicatePolicyNames) {
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}
	return duplicatePolicyNames[p]
}

// ParseDuplicatePolicy parses the name of a policy.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	for i, n := range duplicatePolicyNames {
		if n == s {
			return DuplicatePolicy(i), nil
		}
	}
	return 0, fmt.Errorf("invalid duplicate policy %q, want one of %v", s, duplicatePolicyNames)
}

// Ledger holds the accounts of all clients.
type Ledger struct {
	accounts   map[transaction.ClientID]*Account
	duplicates DuplicatePolicy
	log        *zap.Logger
}

// Option configures a ledger.
type Option func(*Ledger)

// WithLogger sets the logger which receives diagnostics about ignored
// transactions.
func WithLogger(log *zap.Logger) Option {
	return func(l *Ledger) {
		l.log = log
	}
}

// WithDuplicatePolicy sets the policy for reused transaction ids.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(l *Ledger) {
		l.duplicates = p
	}
}

// New creates an empty ledger.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		accounts: make(map[transaction.ClientID]*Account),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Account returns the account of the given client.
func (l *Ledger) Account(c transaction.ClientID) (*Account, bool) {
	a, ok := l.accounts[c]
	return a, ok
}

// Apply applies a transaction to the account of its client. Transactions
// which cannot be applied for business reasons, such as insufficient funds
// or a dispute of an unknown transaction, are ignored. An error is returned
// only for invalid transactions, in which case the account is unchanged.
func (l *Ledger) Apply(t *transaction.Transaction) error {
	a := dict.GetDefault(l.accounts, t.Client, NewAccount)
	if a.Locked {
		l.ignore(t, accountLocked)
		return nil
	}
	var res outcome
	switch t.Type {

	case transaction.Deposit, transaction.Withdrawal:
		amount, err := validAmount(t)
		if err != nil {
			return err
		}
		if err := l.checkDuplicate(a, t, amount); err != nil {
			return err
		}
		if t.Type == transaction.Deposit {
			res = a.deposit(t.ID, amount)
		} else {
			res = a.withdraw(t.ID, amount)
		}

	case transaction.Dispute:
		res = a.dispute(t.ID)

	case transaction.Resolve:
		res = a.resolve(t.ID)

	case transaction.Chargeback:
		res = a.chargeback(t.ID)
		if res == applied {
			l.log.Debug("account locked", zap.Uint16("client", uint16(t.Client)), zap.Uint32("tx", uint32(t.ID)))
		}

	default:
		return &Error{*t, fmt.Errorf("unknown transaction type %v", t.Type)}
	}
	if res != applied {
		l.ignore(t, res)
	}
	return nil
}

func validAmount(t *transaction.Transaction) (decimal.Decimal, error) {
	if t.Amount == nil {
		return decimal.Zero, &Error{*t, ErrAmountMissing}
	}
	if !t.Amount.IsPositive() {
		return decimal.Zero, &Error{*t, ErrAmountNotPositive}
	}
	return *t.Amount, nil
}

// checkDuplicate applies the duplicate policy if the transaction would
// replace an existing record.
func (l *Ledger) checkDuplicate(a *Account, t *transaction.Transaction, amount decimal.Decimal) error {
	prev, ok := a.Records[t.ID]
	if !ok || l.duplicates == Overwrite {
		return nil
	}
	if t.Type == transaction.Withdrawal && !a.canWithdraw(amount) {
		return nil
	}
	if l.duplicates == Reject {
		return &Error{*t, ErrDuplicateTransaction}
	}
	l.log.Warn("replacing recorded transaction",
		zap.Uint16("client", uint16(t.Client)),
		zap.Uint32("tx", uint32(t.ID)),
		zap.Stringer("previous", prev.Kind),
		zap.Stringer("state", prev.State),
	)
	return nil
}

func (l *Ledger) ignore(t *transaction.Transaction, reason outcome) {
	if ce := l.log.Check(zap.DebugLevel, "ignoring transaction"); ce != nil {
		ce.Write(zap.Stringer("transaction", t), zap.String("reason", string(reason)))
	}
}

// Sink applies all transactions received on the channel, in order.
func (l *Ledger) Sink(ctx context.Context, inCh <-chan *transaction.Transaction) error {
	return cpr.Consume(ctx, inCh, l.Apply)
}

// Balance is the balance of a single account.
type Balance struct {
	Client                 transaction.ClientID
	Available, Held, Total decimal.Decimal
	Locked                 bool
}

// Balances returns the balances of all accounts, in no particular order.
func (l *Ledger) Balances() []Balance {
	res := make([]Balance, 0, len(l.accounts))
	for c, a := range l.accounts {
		res = append(res, Balance{
			Client:    c,
			Available: a.Available,
			Held:      a.Held,
			Total:     a.Total(),
			Locked:    a.Locked,
		})
	}
	return res
}

// SortedBalances returns the balances of all accounts ordered by client.
func (l *Ledger) SortedBalances() []Balance {
	return sortBalances(l.Balances())
}

func sortBalances(bs []Balance) []Balance {
	compare.Sort(bs, compare.By(func(b Balance) transaction.ClientID { return b.Client }))
	return bs
}
