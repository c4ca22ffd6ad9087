// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zaddr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAddressFormat describes a string that is not valid Base58
	// or decodes to a payload of the wrong length.
	ErrInvalidAddressFormat = errors.New("invalid address format")

	// ErrChecksumMismatch describes a Base58Check string whose trailing
	// four bytes do not match the double SHA256 of its payload.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrUnrecognizedPrefix is matched by every UnrecognizedPrefixError.
	ErrUnrecognizedPrefix = errors.New("unrecognized prefix")

	// ErrInvalidLength describes a payload that is not the exact size
	// required by its encoding.
	ErrInvalidLength = errors.New("invalid payload length")

	// ErrMalformedWIF describes a WIF payload of the right length whose
	// compression flag is not 0x01.
	ErrMalformedWIF = errors.New("malformed compressed WIF")
)

// UnrecognizedPrefixError reports a decoded prefix that matches none of the
// prefixes configured for the active network.
type UnrecognizedPrefixError struct {
	Prefix uint16
}

// Error implements the error interface.
func (e UnrecognizedPrefixError) Error() string {
	return fmt.Sprintf("unrecognized prefix 0x%x", e.Prefix)
}

// Is allows errors.Is(err, ErrUnrecognizedPrefix).
func (e UnrecognizedPrefixError) Is(target error) bool {
	return target == ErrUnrecognizedPrefix
}
