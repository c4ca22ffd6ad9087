// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/zeroclassic/zercwallet/ledger"
	"github.com/zeroclassic/zercwallet/wallet/txbuilder"
)

// addressesCmd is the single object parameter of the address index
// methods.
type addressesCmd struct {
	Addresses []string `json:"addresses"`
}

// addressUtxoResult models an element of the getaddressutxos result.
type addressUtxoResult struct {
	Address     string `json:"address"`
	TxID        string `json:"txid"`
	OutputIndex uint32 `json:"outputIndex"`
	Script      string `json:"script"`
	Satoshis    int64  `json:"satoshis"`
	Height      int32  `json:"height"`
}

func (r *addressUtxoResult) toUnspentOutput() (ledger.UnspentOutput, error) {
	hash, err := chainhash.NewHashFromStr(r.TxID)
	if err != nil {
		return ledger.UnspentOutput{}, fmt.Errorf("utxo txid: %w", err)
	}
	script, err := hex.DecodeString(r.Script)
	if err != nil {
		return ledger.UnspentOutput{}, fmt.Errorf("utxo script: %w", err)
	}

	return ledger.UnspentOutput{
		OutPoint: *wire.NewOutPoint(hash, r.OutputIndex),
		Amount:   btcutil.Amount(r.Satoshis),
		PkScript: script,
	}, nil
}

// addressDeltaResult models an element of the getaddressdeltas result.
// Height is absent for mempool entries.
type addressDeltaResult struct {
	Satoshis int64  `json:"satoshis"`
	TxID     string `json:"txid"`
	Index    uint32 `json:"index"`
	Height   *int32 `json:"height"`
	Address  string `json:"address"`
}

func (r *addressDeltaResult) toBalanceDelta() (ledger.BalanceDelta, error) {
	hash, err := chainhash.NewHashFromStr(r.TxID)
	if err != nil {
		return ledger.BalanceDelta{}, fmt.Errorf("delta txid: %w", err)
	}

	height := fn.None[int32]()
	if r.Height != nil {
		height = fn.Some(*r.Height)
	}

	return ledger.BalanceDelta{
		TxID:   *hash,
		Amount: btcutil.Amount(r.Satoshis),
		Height: height,
	}, nil
}

// addressBalanceResult models the getaddressbalance result.
type addressBalanceResult struct {
	Balance  int64 `json:"balance"`
	Received int64 `json:"received"`
}

// blockTimeResult holds the only field of a verbose getblock result the
// wallet reads.
type blockTimeResult struct {
	Time int64 `json:"time"`
}

// signInput describes a spent output to signrawtransaction.  Amount is in
// whole coins.
type signInput struct {
	TxID         string  `json:"txid"`
	Vout         uint32  `json:"vout"`
	ScriptPubKey string  `json:"scriptPubKey"`
	Amount       float64 `json:"amount"`
}

func newSignInputs(inputs []txbuilder.InputMeta) []signInput {
	signInputs := make([]signInput, 0, len(inputs))
	for _, in := range inputs {
		signInputs = append(signInputs, signInput{
			TxID:         in.TxID.String(),
			Vout:         in.Vout,
			ScriptPubKey: hex.EncodeToString(in.PkScript),
			Amount:       in.Amount.ToBTC(),
		})
	}
	return signInputs
}
