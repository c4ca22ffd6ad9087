// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	flags "github.com/jessevdk/go-flags"
	"github.com/zeroclassic/zercwallet/chain"
	"github.com/zeroclassic/zercwallet/internal/cfgutil"
	"github.com/zeroclassic/zercwallet/internal/prompt"
	"github.com/zeroclassic/zercwallet/ledger"
	"github.com/zeroclassic/zercwallet/netparams"
	"github.com/zeroclassic/zercwallet/wallet"
	"github.com/zeroclassic/zercwallet/wallet/txbuilder"
	"github.com/zeroclassic/zercwallet/zaddr"
)

var newlineBytes = []byte{'\n'}

var errSameAddress = errors.New("source and destination addresses should " +
	"not be equal")

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Stderr.Write(newlineBytes)
	os.Exit(1)
}

func errContext(err error, context string) error {
	return fmt.Errorf("%s: %w", context, err)
}

// Flags.
var opts = struct {
	TestNet            bool                `long:"testnet" description:"Use the test Zeroclassic network"`
	RPCConnect         string              `short:"c" long:"rpcconnect" description:"Hostname[:port] of the node RPC server"`
	RPCUsername        string              `short:"u" long:"rpcuser" description:"Node RPC username"`
	RPCCertificateFile string              `long:"cafile" description:"Node RPC TLS certificate"`
	DisableClientTLS   bool                `long:"noclienttls" description:"Disable TLS for the node RPC client"`
	Destination        string              `long:"to" required:"true" description:"Address receiving the swept coins"`
	Fee                *cfgutil.AmountFlag `long:"fee" description:"Flat transaction fee"`
	ExpiryDelta        uint32              `long:"expirydelta" description:"Blocks after the chain tip at which the sweep expires"`
	Timeout            time.Duration       `long:"timeout" description:"Time to wait for the sweep to complete"`
}{
	RPCConnect:  "localhost",
	Fee:         cfgutil.NewAmountFlag(txbuilder.DefaultFee),
	ExpiryDelta: netparams.DefaultExpiryDelta,
	Timeout:     time.Minute,
}

var activeNet = &netparams.MainNetParams

// parseFlags parses and validates opts, exiting on any error.
func parseFlags() {
	_, err := flags.Parse(&opts)
	if err != nil {
		os.Exit(1)
	}

	if opts.TestNet {
		activeNet = &netparams.TestNetParams
	}

	rpcConnect, err := cfgutil.NormalizeAddress(opts.RPCConnect, activeNet.RPCClientPort)
	if err != nil {
		fatalf("Invalid RPC network address `%v`: %v", opts.RPCConnect, err)
	}
	opts.RPCConnect = rpcConnect

	if opts.RPCUsername == "" {
		fatalf("RPC username is required")
	}

	if !opts.DisableClientTLS && opts.RPCCertificateFile != "" {
		opts.RPCCertificateFile = cfgutil.CleanAndExpandPath(opts.RPCCertificateFile)
		certFileExists, err := cfgutil.FileExists(opts.RPCCertificateFile)
		if err != nil {
			fatalf("%v", err)
		}
		if !certFileExists {
			fatalf("RPC certificate file `%s` not found", opts.RPCCertificateFile)
		}
	}

	if opts.Fee.Amount > 1e6 {
		fatalf("Fee `%v` is exceptionally high", cfgutil.FormatAmount(opts.Fee.Amount))
	}
	if opts.Fee.Amount <= 0 {
		fatalf("Fee must be positive")
	}

	if _, err := zaddr.AddressScript(opts.Destination, activeNet); err != nil {
		fatalf("Invalid destination address `%s`: %v", opts.Destination, err)
	}
}

func main() {
	parseFlags()

	err := sweep()
	if err != nil {
		fatalf("%v", err)
	}
}

func sweep() error {
	rpcPassword, err := prompt.Secret("Node RPC password")
	if err != nil {
		return errContext(err, "failed to read RPC password")
	}

	wif, err := prompt.Secret("Private key to sweep (WIF)")
	if err != nil {
		return errContext(err, "failed to read private key")
	}
	privKey, err := zaddr.DecodeWIF(wif, activeNet)
	if err != nil {
		return errContext(err, "invalid private key")
	}
	source, err := wallet.NewWalletFromKey(privKey, activeNet)
	if err != nil {
		return err
	}
	defer source.Zero()

	// Open RPC client.
	var rpcCertificate []byte
	if !opts.DisableClientTLS && opts.RPCCertificateFile != "" {
		rpcCertificate, err = os.ReadFile(opts.RPCCertificateFile)
		if err != nil {
			return errContext(err, "failed to read RPC certificate")
		}
	}
	rpcClient, err := chain.NewRPCClient(&chain.RPCConfig{
		Host:         opts.RPCConnect,
		User:         opts.RPCUsername,
		Pass:         rpcPassword,
		Certificates: rpcCertificate,
		DisableTLS:   opts.DisableClientTLS,
	})
	if err != nil {
		return errContext(err, "failed to create RPC client")
	}
	defer rpcClient.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()

	txCfg := wallet.DefaultTxConfig(activeNet)
	txCfg.Fee = opts.Fee.Amount
	txCfg.ExpiryDelta = opts.ExpiryDelta

	amount, txid, err := sweepTo(
		ctx, rpcClient, source, opts.Destination, txCfg,
	)
	if err != nil {
		return err
	}

	fmt.Printf("Swept %s from %s to %s in transaction %v\n",
		cfgutil.FormatAmount(amount), source.Address(), opts.Destination,
		txid)

	return nil
}

// sweepTo spends every unspent output of source to dest and returns the
// amount received by dest, which is the total less the flat fee.
func sweepTo(ctx context.Context, c chain.Interface, source *wallet.Wallet,
	dest string, txCfg *wallet.TxConfig) (btcutil.Amount, *chainhash.Hash,
	error) {

	if source.Address() == dest {
		return 0, nil, errSameAddress
	}

	utxos, err := c.GetAddressUtxos(ctx, source.Address())
	if err != nil {
		return 0, nil, errContext(err, "failed to fetch unspent outputs")
	}
	total := ledger.SumUnspent(utxos)
	amount, err := wallet.MaxSendAmount(total, txCfg.Fee)
	if err != nil {
		return 0, nil, errContext(err, fmt.Sprintf("nothing to sweep "+
			"from %s", source.Address()))
	}

	txid, err := wallet.Send(ctx, c, source, dest, amount, txCfg)
	if err != nil {
		return 0, nil, errContext(err, "failed to sweep")
	}

	return amount, txid, nil
}
