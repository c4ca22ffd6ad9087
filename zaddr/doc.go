// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package zaddr implements the Base58Check encodings used by the wallet:
transparent payment addresses with two-byte network prefixes and compressed
WIF private key exports.

An address is the Base58 encoding of

	prefix (2 bytes) || hash160(pubkey) (20 bytes) || checksum (4 bytes)

where the checksum is the first four bytes of SHA256(SHA256(prefix||hash)).
A WIF key is the Base58 encoding of

	0x80 || scalar (32 bytes) || 0x01 || checksum (4 bytes)

Decoding always verifies the checksum before the prefix is interpreted.
*/
package zaddr
