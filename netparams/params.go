// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netparams

import "github.com/btcsuite/btcd/chaincfg"

// Params is used to group parameters for various networks such as the main
// network and test networks.
//
// Every network carries two distinct address configurations.  Address holds
// the real two-byte prefixes used for every user facing address.  Signing is
// a chaincfg.Params whose one-byte address IDs are the truncated low bytes
// of those prefixes; it exists only so generic bitcoin tooling that
// understands single-byte prefixes can build and sign scripts.  An address
// encoded with Signing is superficially valid Base58Check but is NOT a valid
// address on the chain, so it must never be persisted or shown to a user.
type Params struct {
	Address *AddressParams
	Signing *chaincfg.Params

	// Name is the human readable network identifier.
	Name string

	// RPCClientPort is the default JSON-RPC port of the full node.
	RPCClientPort string

	// VersionGroupID is the consensus version group id paired with
	// SaplingTxVersion.
	VersionGroupID uint32

	// ExpiryDelta is the default number of blocks past the current tip
	// after which an unmined transaction expires.
	ExpiryDelta uint32
}

// MainNetParams contains parameters specific to running zercwallet against
// the Zeroclassic main network.
var MainNetParams = Params{
	Address:        &MainNetAddressParams,
	Signing:        &MainNetSigningParams,
	Name:           "mainnet",
	RPCClientPort:  "8232",
	VersionGroupID: SaplingVersionGroupID,
	ExpiryDelta:    DefaultExpiryDelta,
}

// TestNetParams contains parameters specific to running zercwallet against
// the Zeroclassic test network.
var TestNetParams = Params{
	Address:        &TestNetAddressParams,
	Signing:        &TestNetSigningParams,
	Name:           "testnet",
	RPCClientPort:  "18232",
	VersionGroupID: SaplingVersionGroupID,
	ExpiryDelta:    DefaultExpiryDelta,
}
