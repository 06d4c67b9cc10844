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
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sboehler/txengine/lib/transaction"
)

// Kind is the kind of a recorded transaction. Only deposits and
// withdrawals are ever recorded.
type Kind int

const (
	// Deposit is a recorded deposit.
	Deposit Kind = iota
	// Withdrawal is a recorded withdrawal.
	Withdrawal
)

func (k Kind) String() string {
	switch k {
	case Deposit:
		return "deposit"
	case Withdrawal:
		return "withdrawal"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// DisputeState is the dispute state of a recorded transaction.
type DisputeState int

const (
	// Undisputed is the initial state, and the state after a resolve.
	Undisputed DisputeState = iota
	// Disputed means a dispute is open.
	Disputed
	// ChargedBack is final.
	ChargedBack
)

func (s DisputeState) String() string {
	switch s {
	case Undisputed:
		return "undisputed"
	case Disputed:
		return "disputed"
	case ChargedBack:
		return "charged back"
	}
	return fmt.Sprintf("DisputeState(%d)", int(s))
}

// Record is a deposit or withdrawal which has been applied to an account
// and can therefore be disputed.
type Record struct {
	Kind   Kind
	Amount decimal.Decimal
	State  DisputeState
}

// Account is the account of a single client.
type Account struct {
	Available, Held decimal.Decimal
	Locked          bool

	Records map[transaction.ID]*Record
}

// NewAccount creates a new, empty account.
func NewAccount() *Account {
	return &Account{
		Records: make(map[transaction.ID]*Record),
	}
}

// Total returns the sum of the available and held funds.
func (a *Account) Total() decimal.Decimal {
	return a.Available.Add(a.Held)
}

// outcome describes why an operation did not change an account.
type outcome string

const (
	applied            outcome = ""
	accountLocked      outcome = "account locked"
	insufficientFunds  outcome = "insufficient funds"
	unknownTransaction outcome = "unknown transaction"
	wrongState         outcome = "transaction in wrong dispute state"
)

func (a *Account) deposit(id transaction.ID, amount decimal.Decimal) outcome {
	a.Available = a.Available.Add(amount)
	a.Records[id] = &Record{Kind: Deposit, Amount: amount}
	return applied
}

func (a *Account) canWithdraw(amount decimal.Decimal) bool {
	return a.Available.GreaterThanOrEqual(amount)
}

func (a *Account) withdraw(id transaction.ID, amount decimal.Decimal) outcome {
	if !a.canWithdraw(amount) {
		return insufficientFunds
	}
	a.Available = a.Available.Sub(amount)
	a.Records[id] = &Record{Kind: Withdrawal, Amount: amount}
	return applied
}

// dispute opens a dispute. Funds of a disputed withdrawal have already
// left the account, so only deposits move funds into held.
func (a *Account) dispute(id transaction.ID) outcome {
	r, res := a.lookup(id, Undisputed)
	if res != applied {
		return res
	}
	r.State = Disputed
	if r.Kind == Deposit {
		a.Available = a.Available.Sub(r.Amount)
		a.Held = a.Held.Add(r.Amount)
	}
	return applied
}

func (a *Account) resolve(id transaction.ID) outcome {
	r, res := a.lookup(id, Disputed)
	if res != applied {
		return res
	}
	r.State = Undisputed
	if r.Kind == Deposit {
		a.Held = a.Held.Sub(r.Amount)
		a.Available = a.Available.Add(r.Amount)
	}
	return applied
}

// chargeback reverses a disputed transaction and locks the account.
func (a *Account) chargeback(id transaction.ID) outcome {
	r, res := a.lookup(id, Disputed)
	if res != applied {
		return res
	}
	r.State = ChargedBack
	a.Locked = true
	switch r.Kind {
	case Deposit:
		a.Held = a.Held.Sub(r.Amount)
	case Withdrawal:
		a.Available = a.Available.Add(r.Amount)
	}
	return applied
}

func (a *Account) lookup(id transaction.ID, want DisputeState) (*Record, outcome) {
	r, ok := a.Records[id]
	if !ok {
		return nil, unknownTransaction
	}
	if r.State != want {
		return nil, wrongState
	}
	return r, applied
}
