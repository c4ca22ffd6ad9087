// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain provides the wallet's view of a Zeroclassic full node: the
// address index queries used to find spendable outputs and history, block
// timestamps, and the signing and broadcast calls of a send.
package chain

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/zeroclassic/zercwallet/ledger"
	"github.com/zeroclassic/zercwallet/wallet/txbuilder"
)

// Interface is the set of node queries the wallet depends on.  All calls
// are blocking and honor ctx cancellation.
type Interface interface {
	// GetAddressUtxos returns the unspent outputs paying addr.
	GetAddressUtxos(ctx context.Context,
		addr string) ([]ledger.UnspentOutput, error)

	// GetAddressDeltas returns every balance change of addr.
	GetAddressDeltas(ctx context.Context,
		addr string) ([]ledger.BalanceDelta, error)

	// GetAddressBalance returns the confirmed balance of addr.
	GetAddressBalance(ctx context.Context, addr string) (btcutil.Amount,
		error)

	// GetChainHeight returns the height of the best block.
	GetChainHeight(ctx context.Context) (int32, error)

	// GetBlockTimestamp returns the header time of the block at height.
	GetBlockTimestamp(ctx context.Context, height int32) (time.Time,
		error)

	// SignRawTransaction asks the node to sign every input of the
	// unsigned transaction with the given WIF key and returns the
	// signed hex.
	SignRawTransaction(ctx context.Context, unsignedHex string,
		inputs []txbuilder.InputMeta, wif string) (string, error)

	// SendRawTransaction broadcasts a signed transaction.
	SendRawTransaction(ctx context.Context,
		signedHex string) (*chainhash.Hash, error)
}
