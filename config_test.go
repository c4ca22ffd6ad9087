// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	flags "github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
	"github.com/zeroclassic/zercwallet/netparams"
	"github.com/zeroclassic/zercwallet/wallet/txbuilder"
)

func TestParseAndSetDebugLevels(t *testing.T) {
	testCases := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{name: "global", level: "debug"},
		{name: "pairs", level: "WLLT=trace,CHNS=warn"},
		{name: "invalid global", level: "loud", wantErr: true},
		{name: "missing level", level: "WLLT=debug,CHNS", wantErr: true},
		{name: "unknown subsystem", level: "BTCD=info", wantErr: true},
		{name: "invalid pair level", level: "TXBL=loud", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := parseAndSetDebugLevels(tc.level)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}

	// Leave the loggers at the default level for other tests.
	setLogLevels(defaultLogLevel)
}

func TestSupportedSubsystems(t *testing.T) {
	t.Parallel()

	require.Equal(
		t, []string{"CHNS", "TXBL", "WLLT", "ZERC"},
		supportedSubsystems(),
	)
}

func TestSelectNetwork(t *testing.T) {
	t.Parallel()

	require.Same(t, &netparams.MainNetParams, selectNetwork(false))
	require.Same(t, &netparams.TestNetParams, selectNetwork(true))
}

// TestConfigParserDefaults checks that the transaction policy defaults are
// kept when no flag overrides them.
func TestConfigParserDefaults(t *testing.T) {
	t.Parallel()

	// Arrange.
	cfg := defaultConfig()
	cmds := new(commands)
	parser, err := newConfigParser(&cfg, cmds, flags.None)
	require.NoError(t, err)

	// Act.
	_, err = parser.ParseArgs([]string{"address"})
	require.NoError(t, err)
	cfg.params = selectNetwork(cfg.TestNet)

	// Assert.
	cmd, err := cmds.active(parser)
	require.NoError(t, err)
	require.Same(t, &cmds.Address, cmd)

	txCfg := cfg.txConfig()
	require.Equal(t, txbuilder.DefaultFee, txCfg.Fee)
	require.Equal(t, txbuilder.DefaultDustThreshold, txCfg.DustThreshold)
	require.EqualValues(t, netparams.DefaultExpiryDelta, txCfg.ExpiryDelta)
	require.False(t, cfg.RPCConnect.ExplicitlySet())
	require.Equal(t, "mainnet", cfg.params.Name)
}

// TestConfigParserOverrides checks global options and subcommand options
// parsed from one command line.
func TestConfigParserOverrides(t *testing.T) {
	t.Parallel()

	// Arrange.
	cfg := defaultConfig()
	cmds := new(commands)
	parser, err := newConfigParser(&cfg, cmds, flags.None)
	require.NoError(t, err)

	// Act.
	_, err = parser.ParseArgs([]string{
		"--testnet", "--fee", "0.0002", "--dustlimit", "0.00001",
		"--expirydelta", "40", "--rpcconnect", "node.local",
		"send", "--to", "tmLPctKo9j49rtCSKpwEBpLBeykiTGomGQs",
		"--amount", "1.5",
	})
	require.NoError(t, err)

	// Assert.
	cmd, err := cmds.active(parser)
	require.NoError(t, err)
	require.Same(t, &cmds.Send, cmd)

	require.True(t, cfg.TestNet)
	require.Equal(t, btcutil.Amount(20000), cfg.Fee.Amount)
	require.Equal(t, btcutil.Amount(1000), cfg.DustLimit.Amount)
	require.EqualValues(t, 40, cfg.ExpiryDelta)
	require.True(t, cfg.RPCConnect.ExplicitlySet())
	require.Equal(t, "node.local", cfg.RPCConnect.Value)

	require.Equal(t, "tmLPctKo9j49rtCSKpwEBpLBeykiTGomGQs", cmds.Send.To)
	require.NotNil(t, cmds.Send.Amount)
	require.Equal(t, btcutil.Amount(150000000), cmds.Send.Amount.Amount)
	require.False(t, cmds.Send.Max)
}

func TestConfigParserRequiresCommand(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	parser, err := newConfigParser(&cfg, new(commands), flags.None)
	require.NoError(t, err)

	_, err = parser.ParseArgs([]string{"--testnet"})
	require.Error(t, err)
}

func TestConfigParserDecodeArgument(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cmds := new(commands)
	parser, err := newConfigParser(&cfg, cmds, flags.None)
	require.NoError(t, err)

	_, err = parser.ParseArgs([]string{"decode"})
	require.Error(t, err, "address argument is required")

	_, err = parser.ParseArgs([]string{
		"decode", "t1UYsZVJkLPeMjxEtACvSxfWuNmddpWfxzs",
	})
	require.NoError(t, err)
	require.Equal(
		t, "t1UYsZVJkLPeMjxEtACvSxfWuNmddpWfxzs", cmds.Decode.Args.Address,
	)
}
