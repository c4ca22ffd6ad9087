// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netparams

import (
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
)

const (
	// SaplingTxVersion is the transaction format version produced by the
	// wallet.
	SaplingTxVersion = 4

	// SaplingVersionGroupID is the version group id that must accompany
	// SaplingTxVersion.  It is serialized little endian as 85 20 2f 89.
	SaplingVersionGroupID = 0x892f2085

	// DefaultExpiryDelta is the number of blocks after the current tip at
	// which a freshly built transaction expires.
	DefaultExpiryDelta = 20

	// MainNet is the network magic of the Zeroclassic main network.
	MainNet wire.BitcoinNet = 0x6427e924

	// TestNet is the network magic of the Zeroclassic test network.
	TestNet wire.BitcoinNet = 0xbff91afa
)

// AddressParams holds the two-byte Base58Check prefixes a network uses for
// its transparent addresses and the one-byte WIF prefix.
type AddressParams struct {
	PubKeyHashAddrID [2]byte
	ScriptHashAddrID [2]byte
	PrivateKeyID     byte
}

// PubKeyHashPrefix returns the pay-to-pubkey-hash prefix as a big endian
// integer.
func (p *AddressParams) PubKeyHashPrefix() uint16 {
	return uint16(p.PubKeyHashAddrID[0])<<8 | uint16(p.PubKeyHashAddrID[1])
}

// ScriptHashPrefix returns the pay-to-script-hash prefix as a big endian
// integer.
func (p *AddressParams) ScriptHashPrefix() uint16 {
	return uint16(p.ScriptHashAddrID[0])<<8 | uint16(p.ScriptHashAddrID[1])
}

// MainNetAddressParams are the real address prefixes of the main network.
// Pay-to-pubkey-hash addresses start with "t1".
var MainNetAddressParams = AddressParams{
	PubKeyHashAddrID: [2]byte{0x1c, 0xb8},
	ScriptHashAddrID: [2]byte{0x1c, 0xbd},
	PrivateKeyID:     0x80,
}

// TestNetAddressParams are the real address prefixes of the test network.
var TestNetAddressParams = AddressParams{
	PubKeyHashAddrID: [2]byte{0x1d, 0x25},
	ScriptHashAddrID: [2]byte{0x1c, 0xba},
	PrivateKeyID:     0xef,
}

// MainNetSigningParams is the one-byte prefix view of the main network used
// to build and sign scripts with the btcd tooling.
var MainNetSigningParams = chaincfg.Params{
	Name:        "zerc-mainnet-signing",
	Net:         MainNet,
	DefaultPort: "8233",

	PubKeyHashAddrID: 0xb8,
	ScriptHashAddrID: 0xbd,
	PrivateKeyID:     0x80,

	HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4},
	HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e},

	Bech32HRPSegwit: "zc",
}

// TestNetSigningParams is the one-byte prefix view of the test network.
var TestNetSigningParams = chaincfg.Params{
	Name:        "zerc-testnet-signing",
	Net:         TestNet,
	DefaultPort: "18233",

	PubKeyHashAddrID: 0x25,
	ScriptHashAddrID: 0xba,
	PrivateKeyID:     0xef,

	HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94},
	HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf},

	Bech32HRPSegwit: "ztestsapling",
}
