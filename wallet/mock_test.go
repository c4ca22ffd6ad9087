// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/mock"
	"github.com/zeroclassic/zercwallet/chain"
	"github.com/zeroclassic/zercwallet/ledger"
	"github.com/zeroclassic/zercwallet/wallet/txbuilder"
)

// mockChain is a testify mock of chain.Interface.
type mockChain struct {
	mock.Mock
}

var _ chain.Interface = (*mockChain)(nil)

func (m *mockChain) GetAddressUtxos(ctx context.Context,
	addr string) ([]ledger.UnspentOutput, error) {

	args := m.Called(ctx, addr)
	utxos, _ := args.Get(0).([]ledger.UnspentOutput)
	return utxos, args.Error(1)
}

func (m *mockChain) GetAddressDeltas(ctx context.Context,
	addr string) ([]ledger.BalanceDelta, error) {

	args := m.Called(ctx, addr)
	deltas, _ := args.Get(0).([]ledger.BalanceDelta)
	return deltas, args.Error(1)
}

func (m *mockChain) GetAddressBalance(ctx context.Context,
	addr string) (btcutil.Amount, error) {

	args := m.Called(ctx, addr)
	return args.Get(0).(btcutil.Amount), args.Error(1)
}

func (m *mockChain) GetChainHeight(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}

func (m *mockChain) GetBlockTimestamp(ctx context.Context,
	height int32) (time.Time, error) {

	args := m.Called(ctx, height)
	return args.Get(0).(time.Time), args.Error(1)
}

func (m *mockChain) SignRawTransaction(ctx context.Context,
	unsignedHex string, inputs []txbuilder.InputMeta,
	wif string) (string, error) {

	args := m.Called(ctx, unsignedHex, inputs, wif)
	return args.String(0), args.Error(1)
}

func (m *mockChain) SendRawTransaction(ctx context.Context,
	signedHex string) (*chainhash.Hash, error) {

	args := m.Called(ctx, signedHex)
	hash, _ := args.Get(0).(*chainhash.Hash)
	return hash, args.Error(1)
}
