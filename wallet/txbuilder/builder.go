// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txbuilder

import (
	"bytes"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
	"github.com/zeroclassic/zercwallet/netparams"
)

// builderState is the position of a Builder in its one way life cycle.
type builderState uint8

const (
	stateEmpty builderState = iota
	stateInputsAdded
	stateOutputsAdded
	stateSerialized
	stateHeaderPatched
)

// String returns the state name.
func (s builderState) String() string {
	switch s {
	case stateEmpty:
		return "empty"
	case stateInputsAdded:
		return "inputs added"
	case stateOutputsAdded:
		return "outputs added"
	case stateSerialized:
		return "serialized"
	case stateHeaderPatched:
		return "header patched"
	default:
		return "unknown"
	}
}

// Builder assembles a single unsigned transaction.  Inputs are added first,
// then outputs, then the transaction is serialized in the legacy layout and
// finally patched into the versioned layout.  States never move backwards
// and a Builder is discarded once its header is patched.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	tx         *wire.MsgTx
	state      builderState
	serialized []byte
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		tx: wire.NewMsgTx(netparams.SaplingTxVersion),
	}
}

// AddInput appends an input spending op.  No signature script is attached.
func (b *Builder) AddInput(op wire.OutPoint) error {
	if b.state != stateEmpty && b.state != stateInputsAdded {
		return b.stateErr("AddInput")
	}

	b.tx.AddTxIn(wire.NewTxIn(&op, nil, nil))
	b.state = stateInputsAdded

	return nil
}

// AddOutput appends an output paying value base units to pkScript.
func (b *Builder) AddOutput(pkScript []byte, value btcutil.Amount) error {
	if b.state != stateInputsAdded && b.state != stateOutputsAdded {
		return b.stateErr("AddOutput")
	}

	b.tx.AddTxOut(wire.NewTxOut(int64(value), pkScript))
	b.state = stateOutputsAdded

	return nil
}

// Serialize encodes the transaction in the legacy, witness free layout:
// version, inputs, outputs and lock time.
func (b *Builder) Serialize() ([]byte, error) {
	if b.state != stateOutputsAdded {
		return nil, b.stateErr("Serialize")
	}

	var buf bytes.Buffer
	buf.Grow(b.tx.SerializeSizeStripped())
	if err := b.tx.SerializeNoWitness(&buf); err != nil {
		return nil, err
	}
	b.serialized = buf.Bytes()
	b.state = stateSerialized

	return append([]byte(nil), b.serialized...), nil
}

// PatchHeader converts the serialized transaction into its final versioned
// form.  See PatchHeader for the layout.
func (b *Builder) PatchHeader(versionGroupID, expiryHeight uint32) ([]byte,
	error) {

	if b.state != stateSerialized {
		return nil, b.stateErr("PatchHeader")
	}

	patched, err := PatchHeader(b.serialized, versionGroupID, expiryHeight)
	if err != nil {
		return nil, err
	}
	b.state = stateHeaderPatched

	return patched, nil
}

// Tx returns the legacy transaction assembled so far.
func (b *Builder) Tx() *wire.MsgTx {
	return b.tx
}

func (b *Builder) stateErr(method string) error {
	log.Debugf("%s rejected, builder is %v", method, b.state)
	return ErrInvalidState
}
