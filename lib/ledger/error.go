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
	"errors"
	"fmt"

	"github.com/sboehler/txengine/lib/transaction"
)

var (
	// ErrAmountMissing is returned for a deposit or withdrawal without amount.
	ErrAmountMissing = errors.New("missing amount")

	// ErrAmountNotPositive is returned for a deposit or withdrawal whose
	// amount is zero or negative.
	ErrAmountNotPositive = errors.New("amount must be positive")

	// ErrDuplicateTransaction is returned when a transaction id is reused
	// by the same client and the ledger rejects duplicates.
	ErrDuplicateTransaction = errors.New("duplicate transaction id")
)

// Error is an error which aborts processing of the transaction log.
type Error struct {
	Transaction transaction.Transaction
	Err         error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %v", e.Transaction, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
