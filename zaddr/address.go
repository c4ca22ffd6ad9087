// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zaddr

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/txscript"
	"github.com/zeroclassic/zercwallet/netparams"
)

const (
	// PrefixSize is the length of an address network prefix.
	PrefixSize = 2

	// HashSize is the length of the hash160 address payload.
	HashSize = 20
)

// EncodeAddress returns the Base58Check encoding of prefix||hash160.
//
// base58.CheckEncode only knows about single byte versions, so the first
// prefix byte is passed as the version and the second is carried at the
// head of the payload.  The resulting byte stream is identical to a two
// byte prefix.
func EncodeAddress(prefix [PrefixSize]byte, hash160 []byte) (string, error) {
	if len(hash160) != HashSize {
		return "", ErrInvalidLength
	}

	payload := make([]byte, 0, 1+HashSize)
	payload = append(payload, prefix[1])
	payload = append(payload, hash160...)

	return base58.CheckEncode(payload, prefix[0]), nil
}

// DecodeAddress decodes addr into its big endian prefix and hash160
// payload.  The checksum is validated before anything else is inspected.
func DecodeAddress(addr string) (uint16, [HashSize]byte, error) {
	var hash [HashSize]byte

	payload, version, err := base58.CheckDecode(addr)
	switch err {
	case nil:
	case base58.ErrChecksum:
		return 0, hash, ErrChecksumMismatch
	default:
		return 0, hash, ErrInvalidAddressFormat
	}

	if len(payload) != 1+HashSize {
		return 0, hash, ErrInvalidAddressFormat
	}

	prefix := uint16(version)<<8 | uint16(payload[0])
	copy(hash[:], payload[1:])

	return prefix, hash, nil
}

// PubKeyHashAddress returns the pay-to-pubkey-hash address of a serialized
// public key on the network described by params.
func PubKeyHashAddress(pubKey []byte,
	params *netparams.AddressParams) (string, error) {

	return EncodeAddress(params.PubKeyHashAddrID, btcutil.Hash160(pubKey))
}

// ResolveOutputScript maps a decoded prefix and hash to the output script
// paying it.  Only pay-to-pubkey-hash and pay-to-script-hash are supported.
//
// The script is built through btcutil with the network's one-byte signing
// configuration.  The script bytes do not depend on the prefix, so this is
// the only place the truncated prefixes are allowed to touch an address.
func ResolveOutputScript(prefix uint16, hash160 []byte,
	params *netparams.Params) ([]byte, error) {

	var (
		addr btcutil.Address
		err  error
	)
	switch prefix {
	case params.Address.PubKeyHashPrefix():
		addr, err = btcutil.NewAddressPubKeyHash(hash160, params.Signing)

	case params.Address.ScriptHashPrefix():
		addr, err = btcutil.NewAddressScriptHashFromHash(
			hash160, params.Signing,
		)

	default:
		return nil, UnrecognizedPrefixError{Prefix: prefix}
	}
	if err != nil {
		return nil, ErrInvalidLength
	}

	return txscript.PayToAddrScript(addr)
}

// AddressScript decodes addr and returns the output script paying it on the
// network described by params.
func AddressScript(addr string, params *netparams.Params) ([]byte, error) {
	prefix, hash, err := DecodeAddress(addr)
	if err != nil {
		return nil, err
	}

	return ResolveOutputScript(prefix, hash[:], params)
}
