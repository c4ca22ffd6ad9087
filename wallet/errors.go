// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import "errors"

var (
	// ErrSigningFailed is returned when the signer rejects a transaction
	// or returns no signed transaction.
	ErrSigningFailed = errors.New("signing failed")

	// ErrBroadcastFailed is returned when the node refuses a signed
	// transaction.
	ErrBroadcastFailed = errors.New("broadcast failed")

	// ErrLoaded describes the error condition of attempting to load or
	// create a wallet when the loader has already done so.
	ErrLoaded = errors.New("wallet already loaded")

	// ErrNotLoaded describes the error condition of attempting to close a
	// loaded wallet when a wallet has not been loaded.
	ErrNotLoaded = errors.New("wallet is not loaded")

	// ErrExists describes the error condition of attempting to create a
	// new wallet when one exists already.
	ErrExists = errors.New("wallet already exists")

	// ErrCorruptRecord is returned when a stored wallet record cannot be
	// decoded or its fields do not derive from its private key.
	ErrCorruptRecord = errors.New("corrupt wallet record")

	// ErrWrongNetwork is returned when a stored wallet belongs to a
	// different network than the loader.
	ErrWrongNetwork = errors.New("wallet belongs to another network")
)
