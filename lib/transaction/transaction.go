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

// Package transaction contains the records read from a transaction log.
package transaction

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Type is the type of a transaction.
type Type int

const (
	// Deposit credits the client's account.
	Deposit Type = iota
	// Withdrawal debits the client's account.
	Withdrawal
	// Dispute contests an earlier deposit or withdrawal.
	Dispute
	// Resolve closes a dispute in favor of the client.
	Resolve
	// Chargeback closes a dispute against the client.
	Chargeback
)

var typeNames = [...]string{
	Deposit:    "deposit",
	Withdrawal: "withdrawal",
	Dispute:    "dispute",
	Resolve:    "resolve",
	Chargeback: "chargeback",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// ParseType parses a lowercase type name.
func ParseType(s string) (Type, error) {
	for i, n := range typeNames {
		if n == s {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("invalid transaction type %q", s)
}

// HasAmount reports whether transactions of this type carry an amount.
func (t Type) HasAmount() bool {
	return t == Deposit || t == Withdrawal
}

// ClientID identifies a client. Each client has exactly one account.
type ClientID uint16

// ID identifies a transaction.
type ID uint32

// Transaction is a single record of the transaction log.
type Transaction struct {
	Type   Type
	Client ClientID
	ID     ID

	// Amount is nil for disputes, resolves and chargebacks.
	Amount *decimal.Decimal
}

// New creates a transaction with an amount.
func New(t Type, client ClientID, id ID, amount decimal.Decimal) *Transaction {
	return &Transaction{
		Type:   t,
		Client: client,
		ID:     id,
		Amount: &amount,
	}
}

// Reference creates a transaction without amount which refers to an
// earlier transaction.
func Reference(t Type, client ClientID, id ID) *Transaction {
	return &Transaction{
		Type:   t,
		Client: client,
		ID:     id,
	}
}

func (t Transaction) String() string {
	if t.Amount == nil {
		return fmt.Sprintf("%s client=%d tx=%d", t.Type, t.Client, t.ID)
	}
	return fmt.Sprintf("%s client=%d tx=%d amount=%s", t.Type, t.Client, t.ID, t.Amount)
}
