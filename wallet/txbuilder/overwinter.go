// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txbuilder

import (
	"encoding/binary"

	"github.com/zeroclassic/zercwallet/netparams"
)

const (
	// overwinteredFlag is the high bit of the version field marking the
	// versioned transaction format.
	overwinteredFlag = 1 << 31

	// OverwinterHeader is the 4-byte header written in place of the
	// legacy version field.  Serialized it is 04 00 00 80.
	OverwinterHeader = uint32(netparams.SaplingTxVersion) | overwinteredFlag

	versionSize  = 4
	lockTimeSize = 4

	// minLegacySize is a version, empty input and output counts and a
	// lock time.
	minLegacySize = versionSize + 1 + 1 + lockTimeSize

	// trailerSize covers the expiry height, the value balance and the
	// three shielded list counts appended after the lock time.
	trailerSize = 4 + 8 + 3
)

// PatchHeader rewrites a legacy serialized transaction into the versioned
// layout expected by the chain:
//
//	[4B header][4B versionGroupID][inputs and outputs][4B lockTime]
//	[4B expiryHeight][8B valueBalance = 0][0x00][0x00][0x00]
//
// The legacy version is replaced by OverwinterHeader, the body between the
// version and the lock time is copied unchanged, and the lock time is kept.
// The three trailing zero bytes are the empty shielded spend, shielded
// output and join split counts.  All integers are little endian.
//
// serialized is not modified; a new buffer is returned.  Any deviation from
// this layout produces a transaction nodes reject, so it is exercised by a
// golden test.
func PatchHeader(serialized []byte, versionGroupID,
	expiryHeight uint32) ([]byte, error) {

	if len(serialized) < minLegacySize {
		return nil, ErrShortTransaction
	}

	var (
		bodyEnd  = len(serialized) - lockTimeSize
		body     = serialized[versionSize:bodyEnd]
		lockTime = serialized[bodyEnd:]
	)

	out := make([]byte, 0, len(serialized)+versionSize+trailerSize)
	out = binary.LittleEndian.AppendUint32(out, OverwinterHeader)
	out = binary.LittleEndian.AppendUint32(out, versionGroupID)
	out = append(out, body...)
	out = append(out, lockTime...)
	out = binary.LittleEndian.AppendUint32(out, expiryHeight)
	out = binary.LittleEndian.AppendUint64(out, 0)
	out = append(out, 0x00, 0x00, 0x00)

	return out, nil
}
