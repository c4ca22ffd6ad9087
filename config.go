// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcwallet/wallet/txrules"
	flags "github.com/jessevdk/go-flags"
	"github.com/zeroclassic/zercwallet/internal/cfgutil"
	"github.com/zeroclassic/zercwallet/netparams"
	"github.com/zeroclassic/zercwallet/wallet"
	"github.com/zeroclassic/zercwallet/wallet/txbuilder"
)

const (
	defaultConfigFilename = "zercwallet.conf"
	defaultLogLevel       = "info"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "zercwallet.log"
	defaultRPCHost        = "localhost"
)

var (
	zercwalletHomeDir = btcutil.AppDataDir("zercwallet", false)
	defaultConfigFile = filepath.Join(zercwalletHomeDir, defaultConfigFilename)
	defaultAppDataDir = zercwalletHomeDir
	defaultLogDir     = filepath.Join(zercwalletHomeDir, defaultLogDirname)
)

type config struct {
	// General application behavior
	ConfigFile  *cfgutil.ExplicitString `short:"C" long:"configfile" description:"Path to configuration file"`
	ShowVersion bool                    `short:"V" long:"version" description:"Display version information and exit"`
	AppDataDir  *cfgutil.ExplicitString `short:"A" long:"appdata" description:"Application data directory for wallet config, databases and logs"`
	TestNet     bool                    `long:"testnet" description:"Use the test Zeroclassic network"`
	NoFreelist  bool                    `long:"nofreelistsync" description:"Do not sync the wallet database freelist to disk"`
	DBTimeout   time.Duration           `long:"dbtimeout" description:"The timeout value to use when opening the wallet database"`
	LogDir      string                  `long:"logdir" description:"Directory to log output."`
	DebugLevel  string                  `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`

	// Node RPC options
	RPCConnect       *cfgutil.ExplicitString `short:"c" long:"rpcconnect" description:"Hostname/IP and port of the node RPC server (default localhost:8232, testnet: localhost:18232)"`
	RPCUser          string                  `short:"u" long:"rpcuser" description:"Username for node RPC authentication"`
	RPCPass          string                  `short:"P" long:"rpcpass" default-mask:"-" description:"Password for node RPC authentication"`
	CAFile           string                  `long:"cafile" description:"File containing root certificates to authenticate a TLS connection with the node"`
	DisableClientTLS bool                    `long:"noclienttls" description:"Disable TLS for the node RPC client"`
	RPCTimeout       time.Duration           `long:"rpctimeout" description:"Time to wait for the node to complete a command"`

	// Transaction policy
	Fee         *cfgutil.AmountFlag `long:"fee" description:"Flat fee paid by every transaction"`
	DustLimit   *cfgutil.AmountFlag `long:"dustlimit" description:"Change at or below this value is added to the fee"`
	RelayFee    *cfgutil.AmountFlag `long:"relayfee" description:"Relay fee per kB used to reject dust destination outputs"`
	ExpiryDelta uint32              `long:"expirydelta" description:"Blocks after the chain tip at which an unmined transaction expires"`

	params *netparams.Params
}

// netDir returns the per network directory holding the wallet database.
func (c *config) netDir() string {
	return filepath.Join(c.AppDataDir.Value, c.params.Name)
}

// txConfig returns the transaction policy selected by the flags.
func (c *config) txConfig() *wallet.TxConfig {
	return &wallet.TxConfig{
		Fee:           c.Fee.Amount,
		DustThreshold: c.DustLimit.Amount,
		RelayFeePerKb: c.RelayFee.Amount,
		ExpiryDelta:   c.ExpiryDelta,
	}
}

// defaultConfig returns a config with every option at its default.
func defaultConfig() config {
	return config{
		ConfigFile:  cfgutil.NewExplicitString(defaultConfigFile),
		AppDataDir:  cfgutil.NewExplicitString(defaultAppDataDir),
		DBTimeout:   wallet.DefaultDBTimeout,
		LogDir:      defaultLogDir,
		DebugLevel:  defaultLogLevel,
		RPCConnect:  cfgutil.NewExplicitString(defaultRPCHost),
		RPCTimeout:  time.Minute,
		Fee:         cfgutil.NewAmountFlag(txbuilder.DefaultFee),
		DustLimit:   cfgutil.NewAmountFlag(txbuilder.DefaultDustThreshold),
		RelayFee:    cfgutil.NewAmountFlag(txrules.DefaultRelayFeePerKb),
		ExpiryDelta: netparams.DefaultExpiryDelta,
	}
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	switch logLevel {
	case "trace":
		fallthrough
	case "debug":
		fallthrough
	case "info":
		fallthrough
	case "warn":
		fallthrough
	case "error":
		fallthrough
	case "critical":
		return true
	}
	return false
}

// supportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func supportedSubsystems() []string {
	// Convert the subsystemLoggers map keys to a slice.
	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsysID := range subsystemLoggers {
		subsystems = append(subsystems, subsysID)
	}

	// Sort the subsytems for stable display.
	sort.Strings(subsystems)
	return subsystems
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string) error {
	// When the specified string doesn't have any delimters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		// Validate debug log level.
		if !validLogLevel(debugLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, debugLevel)
		}

		// Change the logging level for all subsystems.
		setLogLevels(debugLevel)

		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			str := "the specified debug level contains an invalid " +
				"subsystem/level pair [%v]"
			return fmt.Errorf(str, logLevelPair)
		}

		// Extract the specified subsystem and log level.
		fields := strings.Split(logLevelPair, "=")
		subsysID, logLevel := fields[0], fields[1]

		// Validate subsystem.
		if _, exists := subsystemLoggers[subsysID]; !exists {
			str := "the specified subsystem [%v] is invalid -- " +
				"supported subsytems %v"
			return fmt.Errorf(str, subsysID, supportedSubsystems())
		}

		// Validate log level.
		if !validLogLevel(logLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, logLevel)
		}

		setLogLevel(subsysID, logLevel)
	}

	return nil
}

// newConfigParser returns a parser for cfg with every subcommand registered
// against cmds.
func newConfigParser(cfg *config, cmds *commands,
	options flags.Options) (*flags.Parser, error) {

	parser := flags.NewParser(cfg, options)
	if err := cmds.register(parser); err != nil {
		return nil, err
	}
	return parser, nil
}

// selectNetwork returns the parameters of the network chosen by the flags.
func selectNetwork(testNet bool) *netparams.Params {
	if testNet {
		return &netparams.TestNetParams
	}
	return &netparams.MainNetParams
}

// loadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// The above results in zercwallet functioning properly without any config
// settings while still allowing the user to override settings with config files
// and command line options.  Command line options always take precedence.
// The subcommand selected on the command line is returned with the config.
func loadConfig(args []string) (*config, runner, error) {
	cfg := defaultConfig()

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified.
	preCfg := defaultConfig()
	preParser, err := newConfigParser(&preCfg, new(commands), flags.Default)
	if err != nil {
		return nil, nil, err
	}
	_, err = preParser.ParseArgs(args)
	if err != nil && !preCfg.ShowVersion {
		var e *flags.Error
		if !errors.As(err, &e) || e.Type != flags.ErrHelp {
			preParser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	// Show the version and exit if the version flag was specified.
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	if preCfg.ShowVersion {
		fmt.Println(appName, "version", version())
		os.Exit(0)
	}

	// If the config file path has not been modified by the user, look for
	// it in the application data directory instead.
	configFilePath := preCfg.ConfigFile.Value
	if !preCfg.ConfigFile.ExplicitlySet() && preCfg.AppDataDir.ExplicitlySet() {
		configFilePath = filepath.Join(
			preCfg.AppDataDir.Value, defaultConfigFilename,
		)
	}
	configFilePath = cfgutil.CleanAndExpandPath(configFilePath)

	// Load additional config from file.
	var configFileError error
	cmds := new(commands)
	parser, err := newConfigParser(&cfg, cmds, flags.Default)
	if err != nil {
		return nil, nil, err
	}
	err = flags.NewIniParser(parser).ParseFile(configFilePath)
	if err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			fmt.Fprintln(os.Stderr, err)
			parser.WriteHelp(os.Stderr)
			return nil, nil, err
		}
		configFileError = err
	}

	// Parse command line options again to ensure they take precedence.
	_, err = parser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if !errors.As(err, &e) || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	// Choose the active network params based on the selected network.
	cfg.params = selectNetwork(cfg.TestNet)

	// If an alternate data directory was specified, and the log directory
	// was left unchanged, keep the logs under the new data directory.
	cfg.AppDataDir.Value = cfgutil.CleanAndExpandPath(cfg.AppDataDir.Value)
	if cfg.AppDataDir.ExplicitlySet() && cfg.LogDir == defaultLogDir {
		cfg.LogDir = filepath.Join(cfg.AppDataDir.Value, defaultLogDirname)
	}

	// Append the network type to the log directory so it is "namespaced"
	// per network.
	cfg.LogDir = cfgutil.CleanAndExpandPath(cfg.LogDir)
	cfg.LogDir = filepath.Join(cfg.LogDir, cfg.params.Name)

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", supportedSubsystems())
		os.Exit(0)
	}

	// Initialize logging at the default logging level.
	initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename))
	setLogLevels(defaultLogLevel)

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		err := fmt.Errorf("loadConfig: %w", err)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	// Warn about missing config file after the final command line parse
	// succeeds.  This prevents the warning on help messages and invalid
	// options.
	if configFileError != nil {
		log.Warnf("%v", configFileError)
	}

	// Add default port to the node address if needed.
	cfg.RPCConnect.Value, err = cfgutil.NormalizeAddress(
		cfg.RPCConnect.Value, cfg.params.RPCClientPort,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid rpcconnect network address: %v\n",
			err)
		return nil, nil, err
	}

	if cfg.CAFile != "" {
		cfg.CAFile = cfgutil.CleanAndExpandPath(cfg.CAFile)
	}

	if cfg.Fee.Amount <= 0 {
		err := fmt.Errorf("loadConfig: fee must be positive, got %v",
			cfgutil.FormatAmount(cfg.Fee.Amount))
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	cmd, err := cmds.active(parser)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	return &cfg, cmd, nil
}
