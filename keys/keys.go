// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keys generates the secp256k1 key pair backing a single-address
// wallet.
package keys

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/zeroclassic/zercwallet/internal/zero"
)

// PrivateKeySize is the length of a serialized private scalar.
const PrivateKeySize = 32

// ErrInvalidPrivateKey describes a private scalar that is zero or not less
// than the secp256k1 group order.
var ErrInvalidPrivateKey = errors.New("private key out of range")

// GeneratePrivateKey draws 32 bytes from r and interprets them as a big
// endian scalar.  Draws that are zero or not less than the group order are
// discarded and drawn again, so the returned key always satisfies
// 0 < key < N.  The only failure is a read error from r.
func GeneratePrivateKey(r io.Reader) (*btcec.PrivateKey, error) {
	var buf [PrivateKeySize]byte
	defer zero.Bytea32(&buf)

	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, fmt.Errorf("unable to read random bytes: %w",
				err)
		}

		var scalar secp256k1.ModNScalar
		overflow := scalar.SetBytes(&buf)
		if overflow != 0 || scalar.IsZero() {
			scalar.Zero()
			continue
		}

		return secp256k1.NewPrivateKey(&scalar), nil
	}
}

// NewPrivateKey generates a private key from the operating system's secure
// random source.
func NewPrivateKey() (*btcec.PrivateKey, error) {
	return GeneratePrivateKey(rand.Reader)
}

// PrivateKeyFromBytes parses a 32-byte big endian scalar, rejecting values
// outside of [1, N-1] instead of reducing them.
func PrivateKeyFromBytes(b []byte) (*btcec.PrivateKey, error) {
	if len(b) != PrivateKeySize {
		return nil, ErrInvalidPrivateKey
	}

	var scalar secp256k1.ModNScalar
	if scalar.SetByteSlice(b) || scalar.IsZero() {
		scalar.Zero()
		return nil, ErrInvalidPrivateKey
	}

	return secp256k1.NewPrivateKey(&scalar), nil
}

// DerivePublicKey returns the 33-byte compressed public key of priv.
func DerivePublicKey(priv *btcec.PrivateKey) ([]byte, error) {
	if priv == nil || priv.Key.IsZero() {
		return nil, ErrInvalidPrivateKey
	}

	return priv.PubKey().SerializeCompressed(), nil
}
