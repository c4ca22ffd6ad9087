// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcwallet/wallet/txrules"
	"github.com/zeroclassic/zercwallet/ledger"
	"github.com/zeroclassic/zercwallet/netparams"
	"github.com/zeroclassic/zercwallet/wallet/txbuilder"
	"github.com/zeroclassic/zercwallet/zaddr"
)

// errNegativeHeight is returned for a chain height below the genesis block.
var errNegativeHeight = errors.New("negative chain height")

// TxConfig is the transaction policy of the wallet.
type TxConfig struct {
	// Fee is the flat fee paid by every transaction.
	Fee btcutil.Amount

	// DustThreshold is the largest change value given up to the fee.
	DustThreshold btcutil.Amount

	// RelayFeePerKb is used to reject dust destination outputs.
	RelayFeePerKb btcutil.Amount

	// ExpiryDelta is added to the chain height to get the expiry height
	// of a transaction.
	ExpiryDelta uint32
}

// DefaultTxConfig returns the default policy for params.
func DefaultTxConfig(params *netparams.Params) *TxConfig {
	return &TxConfig{
		Fee:           txbuilder.DefaultFee,
		DustThreshold: txbuilder.DefaultDustThreshold,
		RelayFeePerKb: txrules.DefaultRelayFeePerKb,
		ExpiryDelta:   params.ExpiryDelta,
	}
}

// UnsignedTx is a transaction ready to be handed to the signer.
type UnsignedTx struct {
	// Hex is the hex encoding of the unsigned, header patched
	// transaction.
	Hex string

	// Inputs describes the spent outputs in input order.
	Inputs []txbuilder.InputMeta

	// Tx is the authored transaction.
	Tx *txbuilder.AuthoredTx
}

// BuildUnsignedTransaction builds a transaction spending every output in
// utxos to pay amount to dest, returning change to the wallet address.  The
// transaction expires cfg.ExpiryDelta blocks after chainHeight.  A nil cfg
// selects DefaultTxConfig.
func BuildUnsignedTransaction(w *Wallet, dest string, amount btcutil.Amount,
	utxos []ledger.UnspentOutput, chainHeight int32,
	cfg *TxConfig) (*UnsignedTx, error) {

	if cfg == nil {
		cfg = DefaultTxConfig(w.params)
	}
	if chainHeight < 0 {
		return nil, errNegativeHeight
	}

	destScript, err := zaddr.AddressScript(dest, w.params)
	if err != nil {
		return nil, fmt.Errorf("destination %s: %w", dest, err)
	}
	changeScript, err := zaddr.AddressScript(w.address, w.params)
	if err != nil {
		return nil, fmt.Errorf("change address: %w", err)
	}

	authored, err := txbuilder.NewUnsignedTransaction(
		utxos, destScript, amount, changeScript, &txbuilder.Config{
			Fee:            cfg.Fee,
			DustThreshold:  cfg.DustThreshold,
			RelayFeePerKb:  cfg.RelayFeePerKb,
			VersionGroupID: w.params.VersionGroupID,
			ExpiryHeight:   uint32(chainHeight) + cfg.ExpiryDelta,
		},
	)
	if err != nil {
		return nil, err
	}

	return &UnsignedTx{
		Hex:    authored.Hex(),
		Inputs: authored.Inputs,
		Tx:     authored,
	}, nil
}

// MaxSendAmount returns the largest amount that can be sent from balance
// after paying fee.
func MaxSendAmount(balance, fee btcutil.Amount) (btcutil.Amount, error) {
	if balance <= fee {
		return 0, txbuilder.InsufficientFundsError{
			Available: balance,
			Required:  fee + 1,
		}
	}

	return balance - fee, nil
}
