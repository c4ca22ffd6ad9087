// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"
	"github.com/zeroclassic/zercwallet/ledger"
	"github.com/zeroclassic/zercwallet/netparams"
	"github.com/zeroclassic/zercwallet/wallet/txbuilder"
	"github.com/zeroclassic/zercwallet/zaddr"
)

const (
	// p2shDestAddr is a main network script hash address of 0x33 * 20.
	p2shDestAddr = "t3PELj6mSGGCMT6NkGQkBTTvD8HLBsnvXZ4"

	// keyOneHash160 is the hash160 of the compressed public key of 1.
	keyOneHash160 = "751e76e8199196d454941c45d1b3a323f1433bd6"
)

// testWallet returns the main network wallet of the private key 1.
func testWallet(t *testing.T) *Wallet {
	t.Helper()

	w, err := GenerateWallet(&netparams.MainNetParams, keyOneSource())
	require.NoError(t, err)

	return w
}

// destAddr returns a main network pay-to-pubkey-hash address of fill * 20.
func destAddr(t *testing.T, fill byte) string {
	t.Helper()

	addr, err := zaddr.EncodeAddress(
		netparams.MainNetAddressParams.PubKeyHashAddrID,
		bytes.Repeat([]byte{fill}, 20),
	)
	require.NoError(t, err)

	return addr
}

func p2pkh(hash160 []byte) []byte {
	script := append([]byte{0x76, 0xa9, 0x14}, hash160...)
	return append(script, 0x88, 0xac)
}

// testUtxos returns unspent outputs of the test wallet with the given
// amounts.
func testUtxos(t *testing.T, amounts ...btcutil.Amount) []ledger.UnspentOutput {
	t.Helper()

	hash160, err := hex.DecodeString(keyOneHash160)
	require.NoError(t, err)

	utxos := make([]ledger.UnspentOutput, 0, len(amounts))
	for i, amt := range amounts {
		var hash chainhash.Hash
		hash[31] = byte(i + 1)
		utxos = append(utxos, ledger.UnspentOutput{
			OutPoint: *wire.NewOutPoint(&hash, uint32(i)),
			Amount:   amt,
			PkScript: p2pkh(hash160),
		})
	}
	return utxos
}

// TestBuildUnsignedTransaction checks destination, change and expiry of a
// built transaction.
func TestBuildUnsignedTransaction(t *testing.T) {
	t.Parallel()

	// Arrange.
	w := testWallet(t)
	utxos := testUtxos(t, 100000000, 15000)
	keyHash, err := hex.DecodeString(keyOneHash160)
	require.NoError(t, err)

	// Act.
	unsigned, err := BuildUnsignedTransaction(
		w, destAddr(t, 0x22), 100000000, utxos, 2000000, nil,
	)
	require.NoError(t, err)

	// Assert.
	tx := unsigned.Tx.Tx
	require.Len(t, tx.TxIn, 2)
	require.Len(t, tx.TxOut, 2)
	require.Equal(t, p2pkh(bytes.Repeat([]byte{0x22}, 20)), tx.TxOut[0].PkScript)
	require.Equal(t, int64(100000000), tx.TxOut[0].Value)
	require.Equal(t, p2pkh(keyHash), tx.TxOut[1].PkScript)
	require.Equal(t, int64(5000), tx.TxOut[1].Value)

	require.Equal(t, uint32(2000020), unsigned.Tx.ExpiryHeight)
	require.Equal(t, unsigned.Tx.Hex(), unsigned.Hex)
	require.Equal(t, "0400008085202f89", unsigned.Hex[:16])
	require.Len(t, unsigned.Inputs, 2)
	require.Equal(t, utxos[1].PkScript, unsigned.Inputs[1].PkScript)
}

// TestBuildUnsignedTransactionScriptHash checks that a script hash
// destination produces a pay-to-script-hash output.
func TestBuildUnsignedTransactionScriptHash(t *testing.T) {
	t.Parallel()

	unsigned, err := BuildUnsignedTransaction(
		testWallet(t), p2shDestAddr, 50000, testUtxos(t, 60000), 10,
		nil,
	)
	require.NoError(t, err)

	want := append([]byte{0xa9, 0x14}, bytes.Repeat([]byte{0x33}, 20)...)
	want = append(want, 0x87)
	require.Equal(t, want, unsigned.Tx.Tx.TxOut[0].PkScript)

	// 60000 - 50000 - 10000 leaves no change.
	require.Len(t, unsigned.Tx.Tx.TxOut, 1)
}

// TestBuildUnsignedTransactionDust drops change at the configured
// threshold.
func TestBuildUnsignedTransactionDust(t *testing.T) {
	t.Parallel()

	w := testWallet(t)
	cfg := DefaultTxConfig(w.Params())
	cfg.DustThreshold = 5000

	unsigned, err := BuildUnsignedTransaction(
		w, destAddr(t, 0x22), 100000000,
		testUtxos(t, 100000000, 15000), 100, cfg,
	)
	require.NoError(t, err)
	require.Len(t, unsigned.Tx.Tx.TxOut, 1)
	require.Equal(t, btcutil.Amount(15000), unsigned.Tx.Fee)
}

// TestBuildUnsignedTransactionErrors covers the validation failures.
func TestBuildUnsignedTransactionErrors(t *testing.T) {
	t.Parallel()

	w := testWallet(t)

	testCases := []struct {
		name    string
		dest    string
		amount  btcutil.Amount
		utxos   []ledger.UnspentOutput
		height  int32
		wantErr error
	}{{
		name:    "insufficient funds",
		dest:    destAddr(t, 0x22),
		amount:  100000000,
		utxos:   testUtxos(t, 100005000),
		wantErr: txbuilder.ErrInsufficientFunds,
	}, {
		name:    "no outputs",
		dest:    destAddr(t, 0x22),
		amount:  1000,
		wantErr: txbuilder.ErrNoSpendableOutputs,
	}, {
		name:    "zero amount",
		dest:    destAddr(t, 0x22),
		utxos:   testUtxos(t, 100000),
		wantErr: txbuilder.ErrInvalidAmount,
	}, {
		name:    "testnet destination",
		dest:    keyOneTestAddr,
		amount:  1000,
		utxos:   testUtxos(t, 100000),
		wantErr: zaddr.ErrUnrecognizedPrefix,
	}, {
		name:    "bad checksum",
		dest:    keyOneMainAddr[:len(keyOneMainAddr)-1] + "t",
		amount:  1000,
		utxos:   testUtxos(t, 100000),
		wantErr: zaddr.ErrChecksumMismatch,
	}, {
		name:    "negative height",
		dest:    destAddr(t, 0x22),
		amount:  1000,
		utxos:   testUtxos(t, 100000),
		height:  -1,
		wantErr: errNegativeHeight,
	}}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			unsigned, err := BuildUnsignedTransaction(
				w, tc.dest, tc.amount, tc.utxos, tc.height, nil,
			)
			require.ErrorIs(t, err, tc.wantErr)
			require.Nil(t, unsigned)
		})
	}
}

func TestMaxSendAmount(t *testing.T) {
	t.Parallel()

	amt, err := MaxSendAmount(100000, txbuilder.DefaultFee)
	require.NoError(t, err)
	require.Equal(t, btcutil.Amount(90000), amt)

	_, err = MaxSendAmount(txbuilder.DefaultFee, txbuilder.DefaultFee)
	require.ErrorIs(t, err, txbuilder.ErrInsufficientFunds)

	_, err = MaxSendAmount(0, txbuilder.DefaultFee)
	require.ErrorIs(t, err, txbuilder.ErrInsufficientFunds)
}
