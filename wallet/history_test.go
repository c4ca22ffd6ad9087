// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"context"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zeroclassic/zercwallet/ledger"
)

// TestHistory checks classification, timestamp resolution and ordering
// through a mocked node, with one block time failing to resolve.
func TestHistory(t *testing.T) {
	t.Parallel()

	// Arrange.
	ctx := context.Background()
	w := testWallet(t)

	var (
		txA = chainhash.Hash{0x0a}
		txB = chainhash.Hash{0x0b}
		txC = chainhash.Hash{0x0c}
		txD = chainhash.Hash{0x0d}
	)
	deltas := []ledger.BalanceDelta{
		{TxID: txA, Amount: 500, Height: fn.Some(int32(10))},
		{TxID: txB, Amount: -700, Height: fn.Some(int32(20))},
		{TxID: txB, Amount: 200, Height: fn.Some(int32(20))},
		{TxID: txC, Amount: 300, Height: fn.Some(int32(30))},
		{TxID: txD, Amount: 900, Height: fn.None[int32]()},
	}

	m := &mockChain{}
	m.On("GetAddressDeltas", ctx, w.Address()).Return(deltas, nil)
	m.On("GetBlockTimestamp", mock.Anything, int32(10)).
		Return(time.Unix(1000, 0), nil)
	m.On("GetBlockTimestamp", mock.Anything, int32(20)).
		Return(time.Unix(2000, 0), nil)
	m.On("GetBlockTimestamp", mock.Anything, int32(30)).
		Return(time.Time{}, errNode)

	// Act.
	entries, err := History(ctx, m, w)

	// Assert.
	require.NoError(t, err)
	require.Len(t, entries, 4)

	require.Equal(t, txB, entries[0].TxID)
	require.Equal(t, ledger.Send, entries[0].Direction)
	require.Equal(t, btcutil.Amount(500), entries[0].Amount)
	require.Equal(t, time.Unix(2000, 0), entries[0].Timestamp)

	require.Equal(t, txA, entries[1].TxID)
	require.Equal(t, ledger.Receive, entries[1].Direction)
	require.Equal(t, time.Unix(1000, 0), entries[1].Timestamp)

	// Unresolved and pending entries keep their order at the end.
	require.Equal(t, txC, entries[2].TxID)
	require.True(t, entries[2].Timestamp.IsZero())
	require.Equal(t, txD, entries[3].TxID)
	require.True(t, entries[3].Timestamp.IsZero())

	m.AssertExpectations(t)
	m.AssertNumberOfCalls(t, "GetBlockTimestamp", 3)
}

func TestHistoryEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	w := testWallet(t)

	m := &mockChain{}
	m.On("GetAddressDeltas", ctx, w.Address()).
		Return([]ledger.BalanceDelta{}, nil)

	entries, err := History(ctx, m, w)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestHistoryDeltaFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	w := testWallet(t)

	m := &mockChain{}
	m.On("GetAddressDeltas", ctx, w.Address()).Return(nil, errNode)

	_, err := History(ctx, m, w)
	require.ErrorIs(t, err, errNode)
}

// TestHistoryCanceled ensures cancellation during timestamp lookups fails the
// history instead of returning entries with unresolved times.
func TestHistoryCanceled(t *testing.T) {
	t.Parallel()

	// Arrange.
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	w := testWallet(t)

	deltas := []ledger.BalanceDelta{
		{TxID: chainhash.Hash{0x01}, Amount: 500, Height: fn.Some(int32(10))},
		{TxID: chainhash.Hash{0x02}, Amount: 700, Height: fn.Some(int32(20))},
	}

	m := &mockChain{}
	m.On("GetAddressDeltas", mock.Anything, w.Address()).Return(deltas, nil)
	m.On("GetBlockTimestamp", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return(time.Time{}, context.Canceled).
		Maybe()

	// Act.
	entries, err := History(ctx, m, w)

	// Assert.
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, entries)
}
