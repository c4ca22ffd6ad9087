// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
)

func main() {
	// Work around defer not working after os.Exit.
	if err := walletMain(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// walletMain is a work-around main function that is required since deferred
// functions (such as log flushing) are not called with calls to os.Exit.
// Instead, main runs this function and checks for a non-nil error, at which
// point any defers have already run, and if the error is non-nil, the program
// can be exited with an error exit status.
func walletMain(args []string) error {
	// Load configuration and parse command line.  This function also
	// initializes logging and configures it accordingly.
	cfg, cmd, err := loadConfig(args)
	if err != nil {
		return err
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	log.Debugf("Version %s (%s)", version(), buildInfo())

	// Cancel any outstanding node request if an interrupt signal is
	// received.
	ctx, cancel := interruptContext()
	defer cancel()

	if err := cmd.run(ctx, cfg, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	return nil
}
