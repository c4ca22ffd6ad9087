// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/davecgh/go-spew/spew"
	"github.com/zeroclassic/zercwallet/ledger"
	"github.com/zeroclassic/zercwallet/wallet/txbuilder"
)

var (
	// ErrIncompleteSignature is returned when the node signed some but
	// not all inputs of a transaction.
	ErrIncompleteSignature = errors.New("transaction signature incomplete")

	// ErrEmptyResult is returned when the node answers a call with no
	// usable result.
	ErrEmptyResult = errors.New("empty result")
)

// redactedMethods are the methods whose parameters carry key material and
// are never logged.
var redactedMethods = map[string]struct{}{
	"signrawtransaction": {},
}

// RPCConfig describes the connection to the node's JSON-RPC server.
type RPCConfig struct {
	// Host is the host:port of the node.
	Host string

	User string
	Pass string

	// Certificates is the PEM encoded certificate chain used to verify
	// the node when TLS is enabled.
	Certificates []byte

	DisableTLS bool
}

// RPCClient implements Interface by issuing JSON-RPC requests over HTTP POST
// to a node with the address index enabled.  Request ids are assigned by
// the underlying rpcclient.Client, so every RPCClient numbers its requests
// independently.
type RPCClient struct {
	client *rpcclient.Client
}

// Enforce RPCClient satisfies the Interface interface.
var _ Interface = (*RPCClient)(nil)

// NewRPCClient creates a client for the node described by cfg.  No
// connection is made until the first call.
func NewRPCClient(cfg *RPCConfig) (*RPCClient, error) {
	connCfg := &rpcclient.ConnConfig{
		Host:         cfg.Host,
		User:         cfg.User,
		Pass:         cfg.Pass,
		Certificates: cfg.Certificates,
		DisableTLS:   cfg.DisableTLS,
		HTTPPostMode: true,
	}
	client, err := rpcclient.New(connCfg, nil)
	if err != nil {
		return nil, err
	}

	return &RPCClient{client: client}, nil
}

// Stop shuts the client down.  Pending calls return an error.
func (c *RPCClient) Stop() {
	c.client.Shutdown()
	c.client.WaitForShutdown()
}

// call performs a single request and decodes its result into result, which
// may be nil.
func (c *RPCClient) call(ctx context.Context, method string,
	result interface{}, params ...interface{}) error {

	rawParams := make([]json.RawMessage, 0, len(params))
	for _, param := range params {
		raw, err := json.Marshal(param)
		if err != nil {
			return fmt.Errorf("%s: marshal params: %w", method, err)
		}
		rawParams = append(rawParams, raw)
	}

	if _, ok := redactedMethods[method]; ok {
		log.Tracef("Sending %s", method)
	} else {
		log.Tracef("Sending %s: %v", method, NewLogClosure(func() string {
			return spew.Sdump(params)
		}))
	}

	type reply struct {
		raw json.RawMessage
		err error
	}
	future := c.client.RawRequestAsync(method, rawParams)
	replies := make(chan reply, 1)
	go func() {
		raw, err := future.Receive()
		replies <- reply{raw: raw, err: err}
	}()

	var r reply
	select {
	case <-ctx.Done():
		return ctx.Err()
	case r = <-replies:
	}
	if r.err != nil {
		return fmt.Errorf("%s: %w", method, r.err)
	}

	if result == nil {
		return nil
	}
	if len(r.raw) == 0 || string(r.raw) == "null" {
		return fmt.Errorf("%s: %w", method, ErrEmptyResult)
	}
	if err := json.Unmarshal(r.raw, result); err != nil {
		return fmt.Errorf("%s: decode result: %w", method, err)
	}

	return nil
}

// GetAddressUtxos returns the unspent outputs of addr using
// getaddressutxos.
func (c *RPCClient) GetAddressUtxos(ctx context.Context,
	addr string) ([]ledger.UnspentOutput, error) {

	var results []addressUtxoResult
	err := c.call(
		ctx, "getaddressutxos", &results,
		addressesCmd{Addresses: []string{addr}},
	)
	if err != nil && !errors.Is(err, ErrEmptyResult) {
		return nil, err
	}

	utxos := make([]ledger.UnspentOutput, 0, len(results))
	for i := range results {
		utxo, err := results[i].toUnspentOutput()
		if err != nil {
			return nil, err
		}
		utxos = append(utxos, utxo)
	}

	log.Debugf("Found %d unspent outputs for %s", len(utxos), addr)

	return utxos, nil
}

// GetAddressDeltas returns the balance deltas of addr using
// getaddressdeltas.
func (c *RPCClient) GetAddressDeltas(ctx context.Context,
	addr string) ([]ledger.BalanceDelta, error) {

	var results []addressDeltaResult
	err := c.call(
		ctx, "getaddressdeltas", &results,
		addressesCmd{Addresses: []string{addr}},
	)
	if err != nil && !errors.Is(err, ErrEmptyResult) {
		return nil, err
	}

	deltas := make([]ledger.BalanceDelta, 0, len(results))
	for i := range results {
		delta, err := results[i].toBalanceDelta()
		if err != nil {
			return nil, err
		}
		deltas = append(deltas, delta)
	}

	return deltas, nil
}

// GetAddressBalance returns the balance of addr using getaddressbalance.
func (c *RPCClient) GetAddressBalance(ctx context.Context,
	addr string) (btcutil.Amount, error) {

	var result addressBalanceResult
	err := c.call(
		ctx, "getaddressbalance", &result,
		addressesCmd{Addresses: []string{addr}},
	)
	if err != nil {
		return 0, err
	}

	return btcutil.Amount(result.Balance), nil
}

// GetChainHeight returns the number of blocks reported by
// getblockchaininfo.
func (c *RPCClient) GetChainHeight(ctx context.Context) (int32, error) {
	var result btcjson.GetBlockChainInfoResult
	if err := c.call(ctx, "getblockchaininfo", &result); err != nil {
		return 0, err
	}

	log.Debugf("Chain %q at height %d", result.Chain, result.Blocks)

	return result.Blocks, nil
}

// GetBlockTimestamp resolves height to its block hash and returns the time
// of that block.  A block without a time yields the zero time.
func (c *RPCClient) GetBlockTimestamp(ctx context.Context,
	height int32) (time.Time, error) {

	var hashStr string
	if err := c.call(ctx, "getblockhash", &hashStr, height); err != nil {
		return time.Time{}, err
	}
	hash, err := chainhash.NewHashFromStr(hashStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("getblockhash: %w", err)
	}

	var block blockTimeResult
	if err := c.call(ctx, "getblock", &block, hash.String()); err != nil {
		return time.Time{}, err
	}
	if block.Time == 0 {
		return time.Time{}, nil
	}

	return time.Unix(block.Time, 0), nil
}

// SignRawTransaction signs unsignedHex with the node's signrawtransaction
// using the given inputs and key.  The key is only sent to the node and is
// never logged.
func (c *RPCClient) SignRawTransaction(ctx context.Context,
	unsignedHex string, inputs []txbuilder.InputMeta,
	wif string) (string, error) {

	var result btcjson.SignRawTransactionResult
	err := c.call(
		ctx, "signrawtransaction", &result,
		unsignedHex, newSignInputs(inputs), []string{wif},
	)
	if err != nil {
		return "", err
	}

	if !result.Complete {
		for _, e := range result.Errors {
			log.Debugf("Input %s:%d not signed: %s", e.TxID,
				e.Vout, e.Error)
		}
		return "", ErrIncompleteSignature
	}
	if result.Hex == "" {
		return "", fmt.Errorf("signrawtransaction: %w", ErrEmptyResult)
	}

	return result.Hex, nil
}

// SendRawTransaction broadcasts signedHex with sendrawtransaction.
func (c *RPCClient) SendRawTransaction(ctx context.Context,
	signedHex string) (*chainhash.Hash, error) {

	var txidStr string
	if err := c.call(ctx, "sendrawtransaction", &txidStr, signedHex); err != nil {
		return nil, err
	}

	return chainhash.NewHashFromStr(txidStr)
}
