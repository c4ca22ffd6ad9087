// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/zeroclassic/zercwallet/chain"
	"github.com/zeroclassic/zercwallet/ledger"
	"golang.org/x/sync/errgroup"
)

// maxTimestampLookups bounds the number of concurrent block timestamp
// requests made by History.
const maxTimestampLookups = 8

// History returns the transactions of the wallet address, newest first.
//
// Block timestamps are resolved concurrently.  A height that cannot be
// resolved leaves its entries with a zero timestamp rather than failing the
// whole history.
func History(ctx context.Context, c chain.Interface,
	w *Wallet) ([]ledger.HistoryEntry, error) {

	deltas, err := c.GetAddressDeltas(ctx, w.address)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch address deltas: %w", err)
	}
	if len(deltas) == 0 {
		return nil, nil
	}

	timestamps, err := resolveTimestamps(ctx, c, ledger.Heights(deltas))
	if err != nil {
		return nil, err
	}

	return ledger.ReconstructHistory(deltas, timestamps), nil
}

// resolveTimestamps looks up the block time of every height.  Heights that
// fail to resolve are absent from the returned map.  Only cancellation of ctx
// is returned as an error.
func resolveTimestamps(ctx context.Context, c chain.Interface,
	heights []int32) (map[int32]time.Time, error) {

	var (
		mu         sync.Mutex
		timestamps = make(map[int32]time.Time, len(heights))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxTimestampLookups)
	for _, height := range heights {
		height := height
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			ts, err := c.GetBlockTimestamp(gctx, height)
			if err != nil {
				// A canceled lookup stops the remaining ones.
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				log.Warnf("Unable to resolve time of block %d: %v",
					height, err)
				return nil
			}

			mu.Lock()
			timestamps[height] = ts
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return timestamps, nil
}
