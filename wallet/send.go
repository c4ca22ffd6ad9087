// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/zeroclassic/zercwallet/chain"
	"github.com/zeroclassic/zercwallet/wallet/txbuilder"
	"github.com/zeroclassic/zercwallet/zaddr"
)

// Send pays amount to dest and returns the id of the broadcast
// transaction.
//
// The destination and amount are validated before the node is contacted.
// The wallet's unspent outputs are then all spent, the node signs the
// transaction with the wallet key and finally broadcasts it.  Nothing is
// retried.  Callers must not run two sends of the same wallet
// concurrently, since both would spend the same outputs.
func Send(ctx context.Context, c chain.Interface, w *Wallet, dest string,
	amount btcutil.Amount, cfg *TxConfig) (*chainhash.Hash, error) {

	if _, err := zaddr.AddressScript(dest, w.params); err != nil {
		return nil, fmt.Errorf("destination %s: %w", dest, err)
	}
	if amount <= 0 {
		return nil, txbuilder.ErrInvalidAmount
	}

	utxos, err := c.GetAddressUtxos(ctx, w.address)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch unspent outputs: %w", err)
	}
	if len(utxos) == 0 {
		return nil, txbuilder.ErrNoSpendableOutputs
	}

	height, err := c.GetChainHeight(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch chain height: %w", err)
	}

	unsigned, err := BuildUnsignedTransaction(
		w, dest, amount, utxos, height, cfg,
	)
	if err != nil {
		return nil, err
	}

	signed, err := c.SignRawTransaction(
		ctx, unsigned.Hex, unsigned.Inputs, w.wif,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigningFailed, err)
	}
	if signed == "" {
		return nil, ErrSigningFailed
	}

	txid, err := c.SendRawTransaction(ctx, signed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBroadcastFailed, err)
	}

	log.Infof("Sent %v to %s in transaction %v (fee %v)", amount, dest,
		txid, unsigned.Tx.Fee)

	return txid, nil
}

// Balance returns the confirmed balance of the wallet address.
func Balance(ctx context.Context, c chain.Interface,
	w *Wallet) (btcutil.Amount, error) {

	return c.GetAddressBalance(ctx, w.address)
}
