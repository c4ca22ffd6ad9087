// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package build

import (
	"os"

	"github.com/btcsuite/btclog"
)

// LogType selects where subsystem loggers write, chosen by build tags.
type LogType byte

const (
	// LogTypeNone disables logging.
	LogTypeNone LogType = iota

	// LogTypeStdOut writes every subsystem straight to stdout.
	LogTypeStdOut

	// LogTypeDefault writes through the application backend, which tees
	// stdout and the rotating log file.
	LogTypeDefault
)

// String returns the build tag style name of the logging type.
func (t LogType) String() string {
	switch t {
	case LogTypeNone:
		return "none"
	case LogTypeStdOut:
		return "stdout"
	case LogTypeDefault:
		return "default"
	default:
		return "unknown"
	}
}

// NewSubLogger returns the logger for a wallet subsystem such as WLLT or
// CHNS.  genSubLogger is the application backend's constructor and may be
// nil, in which case production builds return a disabled logger until the
// application replaces it with UseLogger.
func NewSubLogger(subsystem string,
	genSubLogger func(string) btclog.Logger) btclog.Logger {

	if Deployment == Production {
		if genSubLogger != nil {
			return genSubLogger(subsystem)
		}
		return btclog.Disabled
	}

	switch LoggingType {
	case LogTypeDefault:
		if genSubLogger != nil {
			return genSubLogger(subsystem)
		}

	// Package tests built with the stdlog tag have no backend.
	case LogTypeStdOut:
		return stdoutLogger(subsystem)
	}

	return btclog.Disabled
}

// stdoutLogger returns a logger with its own stdout backend at the level
// compiled in through the loglevel build tags.
func stdoutLogger(subsystem string) btclog.Logger {
	logger := btclog.NewBackend(os.Stdout).Logger(subsystem)

	level, _ := btclog.LevelFromString(LogLevel)
	logger.SetLevel(level)

	return logger
}
