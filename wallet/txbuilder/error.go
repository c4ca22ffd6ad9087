// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txbuilder

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
)

var (
	// ErrInvalidAmount describes a non-positive send amount.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrNoSpendableOutputs describes an empty set of unspent outputs.
	ErrNoSpendableOutputs = errors.New("no spendable outputs")

	// ErrInsufficientFunds is matched by every InsufficientFundsError.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidState describes a Builder method called out of order.
	ErrInvalidState = errors.New("builder method called in wrong state")

	// ErrShortTransaction describes a serialized transaction too short to
	// hold a version, empty input and output lists and a lock time.
	ErrShortTransaction = errors.New("serialized transaction too short")
)

// InsufficientFundsError reports the value available from the unspent
// outputs when it cannot cover the amount plus the fee.
type InsufficientFundsError struct {
	Available btcutil.Amount
	Required  btcutil.Amount
}

// Error implements the error interface.
func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: available %v, required %v",
		e.Available, e.Required)
}

// Is allows errors.Is(err, ErrInsufficientFunds).
func (e InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}
