// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zaddr

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/zeroclassic/zercwallet/internal/zero"
	"github.com/zeroclassic/zercwallet/keys"
	"github.com/zeroclassic/zercwallet/netparams"
)

// compressMagic is the trailing payload byte marking a compressed key.
const compressMagic = 0x01

// wifPayloadSize is the decoded WIF length without its checksum: version,
// scalar and compression flag.
const wifPayloadSize = 1 + keys.PrivateKeySize + 1

// EncodeWIF returns the compressed WIF export of priv for the network.
func EncodeWIF(priv *btcec.PrivateKey, params *netparams.Params) (string,
	error) {

	wif, err := btcutil.NewWIF(priv, params.Signing, true)
	if err != nil {
		return "", err
	}

	return wif.String(), nil
}

// DecodeWIF parses a compressed WIF export back into its private key.  The
// version byte must match the network's private key id.
func DecodeWIF(wif string, params *netparams.Params) (*btcec.PrivateKey,
	error) {

	payload, version, err := base58.CheckDecode(wif)
	switch err {
	case nil:
	case base58.ErrChecksum:
		return nil, ErrChecksumMismatch
	default:
		return nil, ErrInvalidAddressFormat
	}
	defer zero.Bytes(payload)

	if 1+len(payload) != wifPayloadSize {
		return nil, ErrInvalidLength
	}
	if version != params.Address.PrivateKeyID {
		return nil, UnrecognizedPrefixError{Prefix: uint16(version)}
	}
	if payload[keys.PrivateKeySize] != compressMagic {
		return nil, ErrMalformedWIF
	}

	return keys.PrivateKeyFromBytes(payload[:keys.PrivateKeySize])
}
