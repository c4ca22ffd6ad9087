// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sort"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// Direction classifies a transaction relative to the wallet address.
type Direction uint8

const (
	// Receive marks a transaction that only paid the address.
	Receive Direction = iota

	// Send marks a transaction that spent from the address.
	Send
)

// String returns the direction as used in listings.
func (d Direction) String() string {
	switch d {
	case Receive:
		return "receive"
	case Send:
		return "send"
	default:
		return "unknown"
	}
}

// HistoryEntry is one transaction of the address history.  Amount is always
// positive; Direction carries the sign.  Timestamp is the zero time when the
// block time of the transaction is unknown, for example while it is still in
// the mempool.
type HistoryEntry struct {
	TxID      chainhash.Hash
	Direction Direction
	Amount    btcutil.Amount
	Height    fn.Option[int32]
	Timestamp time.Time
}

// txGroup accumulates the deltas of a single transaction.
type txGroup struct {
	txid   chainhash.Hash
	in     btcutil.Amount
	out    btcutil.Amount
	height fn.Option[int32]
}

// addHeight keeps the lowest known height of the group.
func (g *txGroup) addHeight(height fn.Option[int32]) {
	height.WhenSome(func(h int32) {
		if g.height.IsNone() || h < g.height.UnwrapOr(h) {
			g.height = fn.Some(h)
		}
	})
}

// groupDeltas groups deltas by transaction id, preserving the order in
// which each transaction first appears.
func groupDeltas(deltas []BalanceDelta) []*txGroup {
	var (
		groups []*txGroup
		byTx   = make(map[chainhash.Hash]*txGroup)
	)
	for _, d := range deltas {
		g, ok := byTx[d.TxID]
		if !ok {
			g = &txGroup{txid: d.TxID}
			byTx[d.TxID] = g
			groups = append(groups, g)
		}

		if d.Amount >= 0 {
			g.out += d.Amount
		} else {
			g.in -= d.Amount
		}
		g.addHeight(d.Height)
	}

	return groups
}

// Heights returns the distinct block heights that ReconstructHistory will
// look up for deltas, in first seen order.
func Heights(deltas []BalanceDelta) []int32 {
	var (
		heights []int32
		seen    = make(map[int32]struct{})
	)
	for _, g := range groupDeltas(deltas) {
		g.height.WhenSome(func(h int32) {
			if _, ok := seen[h]; ok {
				return
			}
			seen[h] = struct{}{}
			heights = append(heights, h)
		})
	}

	return heights
}

// classify returns the direction and net amount of a group and whether it
// is reportable at all.
//
// A transaction that spends from the address is a send even when it also
// pays the address, since change returns to the same address; its amount
// is what left the address including the fee.
func (g *txGroup) classify() (Direction, btcutil.Amount, bool) {
	switch {
	case g.in > 0 && g.out > 0:
		amount := g.in - g.out
		return Send, amount, amount > 0

	case g.in > 0:
		return Send, g.in, true

	case g.out > 0:
		return Receive, g.out, true

	default:
		return Receive, 0, false
	}
}

// ReconstructHistory turns the balance deltas of one address into its
// transaction history.  Deltas are grouped by transaction; each group takes
// the lowest known height of its deltas, which is resolved through
// timestamps.  Heights missing from timestamps resolve to the zero time.
//
// Entries are ordered newest first.  Entries without a timestamp sort as
// the oldest and keep the order in which their transactions first appear
// in deltas.
func ReconstructHistory(deltas []BalanceDelta,
	timestamps map[int32]time.Time) []HistoryEntry {

	groups := groupDeltas(deltas)
	entries := make([]HistoryEntry, 0, len(groups))
	for _, g := range groups {
		direction, amount, ok := g.classify()
		if !ok {
			continue
		}

		var ts time.Time
		g.height.WhenSome(func(h int32) {
			ts = timestamps[h]
		})

		entries = append(entries, HistoryEntry{
			TxID:      g.txid,
			Direction: direction,
			Amount:    amount,
			Height:    g.height,
			Timestamp: ts,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	return entries
}
