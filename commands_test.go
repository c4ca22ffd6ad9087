// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"crypto/rand"
	"strings"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/stretchr/testify/require"
	"github.com/zeroclassic/zercwallet/chain"
	"github.com/zeroclassic/zercwallet/internal/cfgutil"
	"github.com/zeroclassic/zercwallet/ledger"
	"github.com/zeroclassic/zercwallet/netparams"
	"github.com/zeroclassic/zercwallet/wallet"
	"github.com/zeroclassic/zercwallet/wallet/txbuilder"
	"github.com/zeroclassic/zercwallet/zaddr"
)

// testConfig returns a testnet config whose wallet lives in a temporary
// directory.
func testConfig(t *testing.T) *config {
	t.Helper()

	cfg := defaultConfig()
	cfg.AppDataDir.Value = t.TempDir()
	cfg.DBTimeout = time.Second
	cfg.params = &netparams.TestNetParams
	return &cfg
}

// balanceChain answers balance queries with a fixed value.
type balanceChain struct {
	chain.Interface

	balance btcutil.Amount
}

func (c *balanceChain) GetAddressBalance(context.Context,
	string) (btcutil.Amount, error) {

	return c.balance, nil
}

// testWallet generates a testnet wallet.
func testWallet(t *testing.T) *wallet.Wallet {
	t.Helper()

	w, err := wallet.GenerateWallet(&netparams.TestNetParams, rand.Reader)
	require.NoError(t, err)
	return w
}

// TestWalletCommands creates a wallet and reads it back through the offline
// commands.
func TestWalletCommands(t *testing.T) {
	t.Parallel()

	// Arrange.
	cfg := testConfig(t)
	ctx := context.Background()
	var out bytes.Buffer

	// Act.
	create := &createCommand{}
	require.NoError(t, create.run(ctx, cfg, &out))

	out.Reset()
	require.NoError(t, (&addressCommand{}).run(ctx, cfg, &out))
	addr := strings.TrimSpace(out.String())

	out.Reset()
	require.NoError(t, (&dumpWIFCommand{}).run(ctx, cfg, &out))
	wif := strings.TrimSpace(out.String())

	// Assert.
	require.True(t, strings.HasPrefix(addr, "tm"))
	priv, err := zaddr.DecodeWIF(wif, cfg.params)
	require.NoError(t, err)
	w, err := wallet.NewWalletFromKey(priv, cfg.params)
	require.NoError(t, err)
	require.Equal(t, addr, w.Address())

	// A second create without --force keeps the first wallet.
	err = create.run(ctx, cfg, &out)
	require.ErrorIs(t, err, wallet.ErrExists)

	create.Force = true
	out.Reset()
	require.NoError(t, create.run(ctx, cfg, &out))
	require.NotContains(t, out.String(), addr)
}

func TestAddressCommandNoWallet(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	err := (&addressCommand{}).run(context.Background(), cfg, new(bytes.Buffer))
	require.Error(t, err)
}

func TestDecodeCommand(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		addr   string
		params *netparams.Params
		want   []string
	}{
		{
			name:   "mainnet pubkey hash",
			addr:   "t1UYsZVJkLPeMjxEtACvSxfWuNmddpWfxzs",
			params: &netparams.MainNetParams,
			want: []string{
				"prefix:  0x1cb8 (pay-to-pubkey-hash)",
				"hash160: 751e76e8199196d454941c45d1b3a323f1433bd6",
			},
		},
		{
			name:   "mainnet script hash",
			addr:   "t3PELj6mSGGCMT6NkGQkBTTvD8HLBsnvXZ4",
			params: &netparams.MainNetParams,
			want: []string{
				"prefix:  0x1cbd (pay-to-script-hash)",
				"hash160: " + strings.Repeat("33", 20),
			},
		},
		{
			name:   "testnet address on mainnet",
			addr:   "tmLPctKo9j49rtCSKpwEBpLBeykiTGomGQs",
			params: &netparams.MainNetParams,
			want: []string{
				"prefix:  0x1d25 (not a mainnet address)",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig()
			cfg.params = tc.params
			cmd := &decodeCommand{}
			cmd.Args.Address = tc.addr

			var out bytes.Buffer
			require.NoError(t, cmd.run(context.Background(), &cfg, &out))
			for _, line := range tc.want {
				require.Contains(t, out.String(), line)
			}
		})
	}
}

func TestDecodeCommandInvalid(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.params = &netparams.MainNetParams
	cmd := &decodeCommand{}
	cmd.Args.Address = "t1UYsZVJkLPeMjxEtACvSxfWuNmddpWfxzt"

	err := cmd.run(context.Background(), &cfg, new(bytes.Buffer))
	require.ErrorIs(t, err, zaddr.ErrChecksumMismatch)
}

func TestSendCommandAmount(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	client := &balanceChain{balance: 100000}
	w := testWallet(t)

	testCases := []struct {
		name    string
		cmd     sendCommand
		want    btcutil.Amount
		wantErr error
	}{
		{
			name: "explicit amount",
			cmd: sendCommand{
				Amount: cfgutil.NewAmountFlag(50000),
			},
			want: 50000,
		},
		{
			name: "max",
			cmd:  sendCommand{Max: true},
			want: 100000 - txbuilder.DefaultFee,
		},
		{
			name: "both",
			cmd: sendCommand{
				Amount: cfgutil.NewAmountFlag(50000),
				Max:    true,
			},
			wantErr: errMultipleAmounts,
		},
		{
			name:    "neither",
			cmd:     sendCommand{},
			wantErr: errMissingAmount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			amount, err := tc.cmd.amount(
				context.Background(), &cfg, client, w,
			)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, amount)
		})
	}
}

func TestSendCommandMaxInsufficient(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	client := &balanceChain{balance: txbuilder.DefaultFee}
	cmd := sendCommand{Max: true}

	_, err := cmd.amount(context.Background(), &cfg, client, testWallet(t))
	require.ErrorIs(t, err, txbuilder.ErrInsufficientFunds)
}

func TestWriteHistory(t *testing.T) {
	t.Parallel()

	// Arrange.
	confirmed := chainhash.Hash{0x01}
	pending := chainhash.Hash{0x02}
	entries := []ledger.HistoryEntry{
		{
			TxID:      pending,
			Direction: ledger.Send,
			Amount:    25000,
			Height:    fn.None[int32](),
		},
		{
			TxID:      confirmed,
			Direction: ledger.Receive,
			Amount:    btcutil.SatoshiPerBitcoin,
			Height:    fn.Some[int32](1000),
			Timestamp: time.Unix(1700000000, 0),
		},
	}

	// Act.
	var out bytes.Buffer
	writeHistory(&out, entries)

	// Assert.
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)

	require.Contains(t, lines[0], "unknown")
	require.Contains(t, lines[0], "send")
	require.Contains(t, lines[0], "mempool")
	require.Contains(t, lines[0], pending.String())

	require.Contains(t, lines[1], "2023-11-14T22:13:20Z")
	require.Contains(t, lines[1], "receive")
	require.Contains(t, lines[1], "1 ZERC")
	require.Contains(t, lines[1], "1000")
	require.Contains(t, lines[1], confirmed.String())
}

// TestCreateCommandDeclined keeps the existing wallet when replacement is
// refused.
func TestCreateCommandDeclined(t *testing.T) {
	t.Parallel()

	// Arrange.
	cfg := testConfig(t)
	ctx := context.Background()
	var out bytes.Buffer
	require.NoError(t, (&createCommand{}).run(ctx, cfg, &out))

	out.Reset()
	require.NoError(t, (&addressCommand{}).run(ctx, cfg, &out))
	addr := out.String()

	var asked string
	create := &createCommand{
		Force: true,
		confirm: func(path string) (bool, error) {
			asked = path
			return false, nil
		},
	}

	// Act.
	err := create.run(ctx, cfg, new(bytes.Buffer))

	// Assert.
	require.ErrorIs(t, err, errNotReplaced)
	require.Equal(t, cfg.netDir(), asked)

	out.Reset()
	require.NoError(t, (&addressCommand{}).run(ctx, cfg, &out))
	require.Equal(t, addr, out.String())
}
