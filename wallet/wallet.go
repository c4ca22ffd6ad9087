// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wallet implements a single address Zeroclassic wallet.
//
// A Wallet is a private key together with its WIF export and its
// pay-to-pubkey-hash address.  The three are always derived together.  The
// wallet finds its funds and history through a chain.Interface and builds
// unsigned transactions locally; signing and broadcast are delegated to the
// node.
package wallet

import (
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/zeroclassic/zercwallet/keys"
	"github.com/zeroclassic/zercwallet/netparams"
	"github.com/zeroclassic/zercwallet/zaddr"
)

// Wallet is the sole persisted unit of the application.  It is immutable
// once created; a new key means a new Wallet.
type Wallet struct {
	privKey *btcec.PrivateKey
	wif     string
	address string
	params  *netparams.Params
}

// GenerateWallet draws a new private key from rand and derives its WIF and
// address for params.
func GenerateWallet(params *netparams.Params, rand io.Reader) (*Wallet,
	error) {

	priv, err := keys.GeneratePrivateKey(rand)
	if err != nil {
		return nil, fmt.Errorf("generate private key: %w", err)
	}

	w, err := NewWalletFromKey(priv, params)
	if err != nil {
		priv.Zero()
		return nil, err
	}

	log.Infof("Generated %s wallet %s", params.Name, w.address)

	return w, nil
}

// NewWalletFromKey derives the WIF and address of priv.
func NewWalletFromKey(priv *btcec.PrivateKey,
	params *netparams.Params) (*Wallet, error) {

	pubKey, err := keys.DerivePublicKey(priv)
	if err != nil {
		return nil, err
	}
	addr, err := zaddr.PubKeyHashAddress(pubKey, params.Address)
	if err != nil {
		return nil, err
	}
	wif, err := zaddr.EncodeWIF(priv, params)
	if err != nil {
		return nil, err
	}

	return &Wallet{
		privKey: priv,
		wif:     wif,
		address: addr,
		params:  params,
	}, nil
}

// Address returns the payment address of the wallet.
func (w *Wallet) Address() string {
	return w.address
}

// WIF returns the compressed WIF export of the private key.
func (w *Wallet) WIF() string {
	return w.wif
}

// PrivKey returns the private key of the wallet.
func (w *Wallet) PrivKey() *btcec.PrivateKey {
	return w.privKey
}

// Params returns the network the wallet was derived for.
func (w *Wallet) Params() *netparams.Params {
	return w.params
}

// Zero clears the private key.  The wallet must not be used afterwards.
func (w *Wallet) Zero() {
	w.privKey.Zero()
	w.wif = ""
}
