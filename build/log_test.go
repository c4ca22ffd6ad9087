// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package build

import (
	"testing"

	"github.com/btcsuite/btclog"
	"github.com/stretchr/testify/require"
)

// TestNewSubLogger checks that the provided constructor is used for the
// default production build.
func TestNewSubLogger(t *testing.T) {
	t.Parallel()

	var requested string
	gen := func(tag string) btclog.Logger {
		requested = tag
		return btclog.Disabled
	}

	logger := NewSubLogger("TEST", gen)
	require.NotNil(t, logger)
	if Deployment == Production || LoggingType == LogTypeDefault {
		require.Equal(t, "TEST", requested)
	}

	// Without a constructor the default build falls back to a disabled
	// logger.
	if Deployment == Production {
		require.Equal(t, btclog.Disabled, NewSubLogger("TEST", nil))
	}
}

func TestStringers(t *testing.T) {
	t.Parallel()

	require.Equal(t, "production", Production.String())
	require.Equal(t, "development", Development.String())
	require.Equal(t, "none", LogTypeNone.String())
	require.Equal(t, "stdout", LogTypeStdOut.String())
	require.Equal(t, "default", LogTypeDefault.String())
}
