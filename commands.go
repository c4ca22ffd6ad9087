// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	flags "github.com/jessevdk/go-flags"
	"github.com/zeroclassic/zercwallet/chain"
	"github.com/zeroclassic/zercwallet/internal/cfgutil"
	"github.com/zeroclassic/zercwallet/internal/prompt"
	"github.com/zeroclassic/zercwallet/ledger"
	"github.com/zeroclassic/zercwallet/netparams"
	"github.com/zeroclassic/zercwallet/wallet"
	"github.com/zeroclassic/zercwallet/zaddr"
)

var (
	errNoCommand       = errors.New("no command specified")
	errMultipleAmounts = errors.New("--amount and --max can not be used " +
		"together -- choose one")
	errMissingAmount = errors.New("one of --amount or --max is required")
	errNotReplaced   = errors.New("existing wallet kept")
)

// runner is implemented by every subcommand.
type runner interface {
	run(ctx context.Context, cfg *config, out io.Writer) error
}

// commands holds the option structs of every subcommand.
type commands struct {
	Create  createCommand
	Address addressCommand
	DumpWIF dumpWIFCommand
	Balance balanceCommand
	Send    sendCommand
	History historyCommand
	Decode  decodeCommand

	byName map[string]runner
}

// register adds every subcommand to parser.
func (c *commands) register(parser *flags.Parser) error {
	cmds := []struct {
		name, short, long string
		data              runner
	}{
		{"create", "Create a new wallet",
			"Generate a new private key and store it in the wallet " +
				"database.  An existing wallet is only replaced " +
				"with --force.", &c.Create},
		{"address", "Show the wallet address",
			"Print the transparent address of the wallet.", &c.Address},
		{"dumpwif", "Show the wallet private key",
			"Print the private key of the wallet in Wallet Import " +
				"Format.", &c.DumpWIF},
		{"balance", "Show the wallet balance",
			"Query the node for the confirmed balance of the wallet " +
				"address.", &c.Balance},
		{"send", "Send coins",
			"Spend every unspent output of the wallet to pay an " +
				"address, returning change to the wallet.", &c.Send},
		{"history", "Show the transaction history",
			"List the transactions touching the wallet address, " +
				"newest first.", &c.History},
		{"decode", "Decode an address",
			"Print the prefix and public key hash of a transparent " +
				"address.", &c.Decode},
	}

	c.Create.confirm = confirmReplace

	c.byName = make(map[string]runner, len(cmds))
	for _, cmd := range cmds {
		_, err := parser.AddCommand(cmd.name, cmd.short, cmd.long, cmd.data)
		if err != nil {
			return err
		}
		c.byName[cmd.name] = cmd.data
	}

	return nil
}

// active returns the subcommand selected by the last parse.
func (c *commands) active(parser *flags.Parser) (runner, error) {
	if parser.Active == nil {
		return nil, errNoCommand
	}
	cmd, ok := c.byName[parser.Active.Name]
	if !ok {
		return nil, fmt.Errorf("unknown command %q", parser.Active.Name)
	}
	return cmd, nil
}

// openWallet opens the wallet database of the selected network.  The
// returned loader must be unloaded by the caller.
func openWallet(cfg *config) (*wallet.Loader, *wallet.Wallet, error) {
	loader := wallet.NewLoader(
		cfg.params, cfg.netDir(), cfg.NoFreelist, cfg.DBTimeout,
	)
	w, err := loader.OpenExistingWallet()
	if err != nil {
		return nil, nil, fmt.Errorf("unable to open wallet in %s: %w",
			cfg.netDir(), err)
	}
	return loader, w, nil
}

// unloadWallet closes the wallet database, logging any failure.
func unloadWallet(loader *wallet.Loader) {
	if err := loader.UnloadWallet(); err != nil {
		log.Errorf("Unable to close wallet: %v", err)
	}
}

// newChainClient creates the node RPC client described by cfg, prompting
// for the RPC password when none is configured and stdin is a terminal.
func newChainClient(cfg *config) (*chain.RPCClient, error) {
	if cfg.RPCPass == "" && prompt.IsTerminal() {
		pass, err := prompt.Secret("Node RPC password")
		if err != nil {
			return nil, fmt.Errorf("failed to read RPC password: %w",
				err)
		}
		cfg.RPCPass = pass
	}

	var certs []byte
	if !cfg.DisableClientTLS && cfg.CAFile != "" {
		var err error
		certs, err = os.ReadFile(cfg.CAFile)
		if err != nil {
			return nil, fmt.Errorf("cannot open CA file: %w", err)
		}
	}
	if cfg.DisableClientTLS {
		log.Info("Client TLS is disabled")
	}

	return chain.NewRPCClient(&chain.RPCConfig{
		Host:         cfg.RPCConnect.Value,
		User:         cfg.RPCUser,
		Pass:         cfg.RPCPass,
		Certificates: certs,
		DisableTLS:   cfg.DisableClientTLS,
	})
}

// withChain opens the wallet and a node client and calls f with both.
func withChain(ctx context.Context, cfg *config,
	f func(context.Context, chain.Interface, *wallet.Wallet) error) error {

	loader, w, err := openWallet(cfg)
	if err != nil {
		return err
	}
	defer unloadWallet(loader)

	client, err := newChainClient(cfg)
	if err != nil {
		return err
	}
	defer client.Stop()

	ctx, cancel := context.WithTimeout(ctx, cfg.RPCTimeout)
	defer cancel()

	return f(ctx, client, w)
}

type createCommand struct {
	Force bool `long:"force" description:"Replace an existing wallet"`

	// confirm is asked before an existing wallet is replaced.
	confirm func(path string) (bool, error)
}

// confirmReplace asks at the terminal before a wallet is replaced.  Without
// a terminal the replacement proceeds.
func confirmReplace(path string) (bool, error) {
	if !prompt.IsTerminal() {
		return true, nil
	}
	return prompt.ReplaceWallet(bufio.NewReader(os.Stdin), path)
}

func (c *createCommand) run(_ context.Context, cfg *config,
	out io.Writer) error {

	loader := wallet.NewLoader(
		cfg.params, cfg.netDir(), cfg.NoFreelist, cfg.DBTimeout,
	)

	if c.Force && c.confirm != nil {
		exists, err := loader.WalletExists()
		if err != nil {
			return err
		}
		if exists {
			ok, err := c.confirm(cfg.netDir())
			if err != nil {
				return err
			}
			if !ok {
				return errNotReplaced
			}
		}
	}

	w, err := loader.CreateNewWallet(rand.Reader, c.Force)
	if errors.Is(err, wallet.ErrExists) {
		return fmt.Errorf("%w: use --force to replace it", err)
	}
	if err != nil {
		return err
	}
	defer unloadWallet(loader)

	fmt.Fprintf(out, "Created %s wallet %s\n", cfg.params.Name, w.Address())
	fmt.Fprintln(out, "Back up the private key shown by the dumpwif "+
		"command.  Losing it loses the funds.")

	return nil
}

type addressCommand struct{}

func (c *addressCommand) run(_ context.Context, cfg *config,
	out io.Writer) error {

	loader, w, err := openWallet(cfg)
	if err != nil {
		return err
	}
	defer unloadWallet(loader)

	fmt.Fprintln(out, w.Address())
	return nil
}

type dumpWIFCommand struct{}

func (c *dumpWIFCommand) run(_ context.Context, cfg *config,
	out io.Writer) error {

	loader, w, err := openWallet(cfg)
	if err != nil {
		return err
	}
	defer unloadWallet(loader)

	fmt.Fprintln(out, w.WIF())
	return nil
}

type balanceCommand struct{}

func (c *balanceCommand) run(ctx context.Context, cfg *config,
	out io.Writer) error {

	return withChain(ctx, cfg, func(ctx context.Context,
		client chain.Interface, w *wallet.Wallet) error {

		balance, err := wallet.Balance(ctx, client, w)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, cfgutil.FormatAmount(balance))
		return nil
	})
}

type sendCommand struct {
	To     string              `long:"to" required:"true" description:"Destination address"`
	Amount *cfgutil.AmountFlag `long:"amount" description:"Amount to send"`
	Max    bool                `long:"max" description:"Send the whole balance less the fee"`
}

// amount returns the amount to send given the wallet balance.
func (c *sendCommand) amount(ctx context.Context, cfg *config,
	client chain.Interface, w *wallet.Wallet) (btcutil.Amount, error) {

	switch {
	case c.Max && c.Amount != nil:
		return 0, errMultipleAmounts

	case c.Max:
		balance, err := wallet.Balance(ctx, client, w)
		if err != nil {
			return 0, err
		}
		return wallet.MaxSendAmount(balance, cfg.Fee.Amount)

	case c.Amount == nil:
		return 0, errMissingAmount
	}

	return c.Amount.Amount, nil
}

func (c *sendCommand) run(ctx context.Context, cfg *config,
	out io.Writer) error {

	return withChain(ctx, cfg, func(ctx context.Context,
		client chain.Interface, w *wallet.Wallet) error {

		amount, err := c.amount(ctx, cfg, client, w)
		if err != nil {
			return err
		}

		txid, err := wallet.Send(
			ctx, client, w, c.To, amount, cfg.txConfig(),
		)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, txid)
		return nil
	})
}

type historyCommand struct{}

func (c *historyCommand) run(ctx context.Context, cfg *config,
	out io.Writer) error {

	return withChain(ctx, cfg, func(ctx context.Context,
		client chain.Interface, w *wallet.Wallet) error {

		entries, err := wallet.History(ctx, client, w)
		if err != nil {
			return err
		}
		writeHistory(out, entries)
		return nil
	})
}

// writeHistory prints one line per history entry.
func writeHistory(out io.Writer, entries []ledger.HistoryEntry) {
	for _, e := range entries {
		ts := "unknown"
		if !e.Timestamp.IsZero() {
			ts = e.Timestamp.UTC().Format(time.RFC3339)
		}
		height := e.Height.UnwrapOr(-1)
		heightStr := "mempool"
		if height >= 0 {
			heightStr = fmt.Sprintf("%d", height)
		}
		fmt.Fprintf(out, "%-20s %-7s %20s %8s %v\n", ts, e.Direction,
			cfgutil.FormatAmount(e.Amount), heightStr, e.TxID)
	}
}

type decodeCommand struct {
	Args struct {
		Address string `positional-arg-name:"address"`
	} `positional-args:"yes" required:"yes"`
}

func (c *decodeCommand) run(_ context.Context, cfg *config,
	out io.Writer) error {

	prefix, hash, err := zaddr.DecodeAddress(c.Args.Address)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "prefix:  0x%04x (%s)\n", prefix,
		addressKind(prefix, cfg.params))
	fmt.Fprintf(out, "hash160: %s\n", hex.EncodeToString(hash[:]))
	return nil
}

// addressKind names the script type prefix stands for on params.
func addressKind(prefix uint16, params *netparams.Params) string {
	switch prefix {
	case params.Address.PubKeyHashPrefix():
		return "pay-to-pubkey-hash"
	case params.Address.ScriptHashPrefix():
		return "pay-to-script-hash"
	}
	return "not a " + params.Name + " address"
}
