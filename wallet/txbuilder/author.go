// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txbuilder builds unsigned Zeroclassic transactions for a single
// address wallet.
//
// Transactions are assembled with the btcd legacy encoder and then patched
// into the versioned (overwintered) layout the chain requires.  Nothing in
// this package signs; the unsigned hex and the metadata of the spent outputs
// are handed to an external signer.
package txbuilder

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/btcwallet/wallet/txauthor"
	"github.com/btcsuite/btcwallet/wallet/txrules"
	"github.com/btcsuite/btcwallet/wallet/txsizes"
	"github.com/davecgh/go-spew/spew"
	"github.com/zeroclassic/zercwallet/ledger"
	"github.com/zeroclassic/zercwallet/netparams"
)

const (
	// DefaultFee is the flat fee paid by every transaction regardless of
	// its size.
	DefaultFee btcutil.Amount = 10000

	// DefaultDustThreshold is the largest change value that is dropped
	// to the fee instead of creating a change output.
	DefaultDustThreshold btcutil.Amount = 500
)

// Config holds the policy used when authoring a transaction.
type Config struct {
	// Fee is the flat fee of the transaction.
	Fee btcutil.Amount

	// DustThreshold is compared against the change value.  Change is
	// only returned when it is strictly greater.
	DustThreshold btcutil.Amount

	// RelayFeePerKb is the relay fee the destination output is checked
	// against with txrules.CheckOutput.
	RelayFeePerKb btcutil.Amount

	// VersionGroupID and ExpiryHeight fill the versioned header.
	VersionGroupID uint32
	ExpiryHeight   uint32
}

// DefaultConfig returns the policy of the main network with a transaction
// expiring at expiryHeight.
func DefaultConfig(expiryHeight uint32) *Config {
	return &Config{
		Fee:            DefaultFee,
		DustThreshold:  DefaultDustThreshold,
		RelayFeePerKb:  txrules.DefaultRelayFeePerKb,
		VersionGroupID: netparams.SaplingVersionGroupID,
		ExpiryHeight:   expiryHeight,
	}
}

// InputMeta describes an output spent by a transaction, as required by the
// signer.
type InputMeta struct {
	TxID     chainhash.Hash
	Vout     uint32
	PkScript []byte
	Amount   btcutil.Amount
}

// AuthoredTx holds a newly built unsigned transaction.
type AuthoredTx struct {
	// Tx is the legacy form of the transaction.
	Tx *wire.MsgTx

	// Serialized is the final, header patched encoding.
	Serialized []byte

	// Inputs describes every spent output in input order.
	Inputs []InputMeta

	TotalInput   btcutil.Amount
	Fee          btcutil.Amount
	ExpiryHeight uint32

	// ChangeIndex is the index of the change output, negative if no
	// change was created.
	ChangeIndex int
}

// Hex returns the hex encoding of the patched transaction.
func (tx *AuthoredTx) Hex() string {
	return hex.EncodeToString(tx.Serialized)
}

// NewUnsignedTransaction spends every output in utxos to pay amount to
// destScript.  Whatever remains after amount and the flat fee is returned to
// changeScript, unless it does not exceed the dust threshold, in which case
// it is left to the miner.
//
// Every validation happens before the transaction is assembled: amount must
// be positive, utxos non-empty, the destination output standard and the
// total input value at least amount plus the fee.
func NewUnsignedTransaction(utxos []ledger.UnspentOutput, destScript []byte,
	amount btcutil.Amount, changeScript []byte,
	cfg *Config) (*AuthoredTx, error) {

	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if len(utxos) == 0 {
		return nil, ErrNoSpendableOutputs
	}

	dest := wire.NewTxOut(int64(amount), destScript)
	if err := txrules.CheckOutput(dest, cfg.RelayFeePerKb); err != nil {
		return nil, err
	}

	totalInput := ledger.SumUnspent(utxos)
	required := amount + cfg.Fee
	if totalInput < required {
		return nil, InsufficientFundsError{
			Available: totalInput,
			Required:  required,
		}
	}

	b := NewBuilder()
	inputs := make([]InputMeta, 0, len(utxos))
	for _, utxo := range utxos {
		if err := b.AddInput(utxo.OutPoint); err != nil {
			return nil, err
		}
		inputs = append(inputs, InputMeta{
			TxID:     utxo.OutPoint.Hash,
			Vout:     utxo.OutPoint.Index,
			PkScript: utxo.PkScript,
			Amount:   utxo.Amount,
		})
	}

	if err := b.AddOutput(destScript, amount); err != nil {
		return nil, err
	}

	changeIndex := -1
	change := totalInput - required
	if change > cfg.DustThreshold {
		if err := b.AddOutput(changeScript, change); err != nil {
			return nil, err
		}
		changeIndex = 1
	} else if change > 0 {
		log.Debugf("Dropping change of %v at or below dust threshold %v",
			change, cfg.DustThreshold)
	}

	warnLowFee(len(utxos), b.Tx().TxOut, cfg)

	legacy, err := b.Serialize()
	if err != nil {
		return nil, err
	}
	serialized, err := b.PatchHeader(cfg.VersionGroupID, cfg.ExpiryHeight)
	if err != nil {
		return nil, err
	}

	fee := totalInput - txauthor.SumOutputValues(b.Tx().TxOut)
	log.Debugf("Built transaction with %d inputs and %d outputs (fee %v, "+
		"expiry %d)", len(inputs), len(b.Tx().TxOut), fee,
		cfg.ExpiryHeight)
	log.Tracef("Legacy transaction: %v", newLogClosure(func() string {
		return spew.Sdump(legacy)
	}))

	return &AuthoredTx{
		Tx:           b.Tx(),
		Serialized:   serialized,
		Inputs:       inputs,
		TotalInput:   totalInput,
		Fee:          fee,
		ExpiryHeight: cfg.ExpiryHeight,
		ChangeIndex:  changeIndex,
	}, nil
}

// EstimateSerializeSize returns the worst case size of the patched
// transaction once every input carries a compressed P2PKH signature script.
func EstimateSerializeSize(inputCount int, outputs []*wire.TxOut) int {
	return versionSize + 4 +
		wire.VarIntSerializeSize(uint64(inputCount)) +
		inputCount*txsizes.RedeemP2PKHInputSize +
		wire.VarIntSerializeSize(uint64(len(outputs))) +
		txsizes.SumOutputSerializeSizes(outputs) +
		lockTimeSize + trailerSize
}

// warnLowFee logs when the flat fee would not satisfy a size based relay
// fee.  The transaction is still built.
func warnLowFee(inputCount int, outputs []*wire.TxOut, cfg *Config) {
	size := EstimateSerializeSize(inputCount, outputs)
	relayFee := txrules.FeeForSerializeSize(cfg.RelayFeePerKb, size)
	if cfg.Fee < relayFee {
		log.Warnf("Flat fee %v is below the relay fee %v for an "+
			"estimated %d byte transaction", cfg.Fee, relayFee, size)
	}
}

// logClosure is used to provide a closure over expensive logging operations
// so they are not performed when the logging level doesn't warrant it.
type logClosure func() string

// String invokes the underlying function and returns the result.
func (c logClosure) String() string {
	return c()
}

// newLogClosure returns a new closure over a function that returns a string
// which itself provides a Stringer interface so that it can be used with the
// logging system.
func newLogClosure(c func() string) logClosure {
	return logClosure(c)
}
