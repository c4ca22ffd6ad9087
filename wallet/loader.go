// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/btcsuite/btcwallet/walletdb"
	_ "github.com/btcsuite/btcwallet/walletdb/bdb" // bolt driver
	"github.com/zeroclassic/zercwallet/netparams"
)

const (
	// WalletDBName specified the database filename for the wallet.
	WalletDBName = "wallet.db"

	// DefaultDBTimeout is the default timeout value when opening the
	// wallet database.
	DefaultDBTimeout = 60 * time.Second
)

// Loader implements the creating of new and opening of existing wallets.
// It owns the wallet database while a wallet is loaded.
//
// Loader is safe for concurrent access.
type Loader struct {
	params         *netparams.Params
	dbDirPath      string
	noFreelistSync bool
	timeout        time.Duration
	wallet         *Wallet
	db             walletdb.DB
	mu             sync.Mutex
}

// NewLoader constructs a Loader for the wallet database in dbDirPath.
func NewLoader(params *netparams.Params, dbDirPath string,
	noFreelistSync bool, timeout time.Duration) *Loader {

	return &Loader{
		params:         params,
		dbDirPath:      dbDirPath,
		noFreelistSync: noFreelistSync,
		timeout:        timeout,
	}
}

func (l *Loader) dbPath() string {
	return filepath.Join(l.dbDirPath, WalletDBName)
}

// CreateNewWallet generates a new wallet from rand and stores it.  An
// existing wallet is only replaced when force is set; the old record is
// overwritten in the same database transaction that writes the new one.
func (l *Loader) CreateNewWallet(rand io.Reader, force bool) (*Wallet,
	error) {

	defer l.mu.Unlock()
	l.mu.Lock()

	if l.wallet != nil {
		return nil, ErrLoaded
	}

	exists, err := l.walletExists()
	if err != nil {
		return nil, err
	}
	if exists && !force {
		return nil, ErrExists
	}

	w, err := GenerateWallet(l.params, rand)
	if err != nil {
		return nil, err
	}

	var db walletdb.DB
	if exists {
		log.Warnf("Replacing existing wallet at %s", l.dbPath())
		db, err = walletdb.Open(
			"bdb", l.dbPath(), l.noFreelistSync, l.timeout, false,
		)
	} else {
		err = os.MkdirAll(l.dbDirPath, 0700)
		if err != nil {
			w.Zero()
			return nil, err
		}
		db, err = walletdb.Create(
			"bdb", l.dbPath(), l.noFreelistSync, l.timeout, false,
		)
	}
	if err != nil {
		w.Zero()
		return nil, err
	}

	err = walletdb.Update(db, func(tx walletdb.ReadWriteTx) error {
		return putWallet(tx, w)
	})
	if err != nil {
		w.Zero()
		_ = db.Close()
		return nil, err
	}

	l.db = db
	l.wallet = w

	return w, nil
}

// OpenExistingWallet opens the wallet from the loader's wallet database
// path.
func (l *Loader) OpenExistingWallet() (*Wallet, error) {
	defer l.mu.Unlock()
	l.mu.Lock()

	if l.wallet != nil {
		return nil, ErrLoaded
	}

	db, err := walletdb.Open(
		"bdb", l.dbPath(), l.noFreelistSync, l.timeout, false,
	)
	if err != nil {
		log.Errorf("Failed to open database: %v", err)
		return nil, err
	}

	var w *Wallet
	err = walletdb.View(db, func(tx walletdb.ReadTx) error {
		var err error
		w, err = fetchWallet(tx, l.params)
		return err
	})
	if err != nil {
		if e := db.Close(); e != nil {
			log.Warnf("Error closing database: %v", e)
		}
		return nil, err
	}

	log.Debugf("Opened wallet %s", w.address)

	l.db = db
	l.wallet = w

	return w, nil
}

// WalletExists returns whether a file exists at the loader's database path.
// This may return an error for unexpected I/O failures.
func (l *Loader) WalletExists() (bool, error) {
	defer l.mu.Unlock()
	l.mu.Lock()

	return l.walletExists()
}

func (l *Loader) walletExists() (bool, error) {
	return fileExists(l.dbPath())
}

// LoadedWallet returns the loaded wallet, if any, and a bool for whether the
// wallet has been loaded or not.  If true, the wallet pointer should be safe
// to dereference.
func (l *Loader) LoadedWallet() (*Wallet, bool) {
	l.mu.Lock()
	w := l.wallet
	l.mu.Unlock()
	return w, w != nil
}

// UnloadWallet clears the loaded wallet key and closes the database.  If
// the loader has not loaded a wallet, ErrNotLoaded is returned.
func (l *Loader) UnloadWallet() error {
	defer l.mu.Unlock()
	l.mu.Lock()

	if l.wallet == nil {
		return ErrNotLoaded
	}

	l.wallet.Zero()
	err := l.db.Close()

	l.wallet = nil
	l.db = nil

	return err
}

func fileExists(filePath string) (bool, error) {
	_, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
