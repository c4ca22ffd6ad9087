// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger holds the chain data the wallet consumes from the node,
// unspent outputs and per-address balance deltas, and turns deltas into a
// transaction history.
package ledger

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// UnspentOutput is a spendable output of the wallet address as reported by
// the node.  It is never modified by the wallet.
type UnspentOutput struct {
	OutPoint wire.OutPoint
	Amount   btcutil.Amount
	PkScript []byte
}

// SumUnspent returns the total value of outputs.
func SumUnspent(outputs []UnspentOutput) btcutil.Amount {
	var total btcutil.Amount
	for _, output := range outputs {
		total += output.Amount
	}
	return total
}

// BalanceDelta is a single change to the balance of an address caused by a
// transaction: positive when the transaction pays the address, negative when
// it spends one of its outputs.  Height is unset for mempool entries.
type BalanceDelta struct {
	TxID   chainhash.Hash
	Amount btcutil.Amount
	Height fn.Option[int32]
}
