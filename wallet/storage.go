// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcwallet/walletdb"
	"github.com/lightningnetwork/lnd/tlv"
	"github.com/zeroclassic/zercwallet/internal/zero"
	"github.com/zeroclassic/zercwallet/keys"
	"github.com/zeroclassic/zercwallet/netparams"
)

const (
	// recordVersion is the current version of the stored wallet record.
	recordVersion uint8 = 1

	typeRecordVersion tlv.Type = 1
	typeNetwork       tlv.Type = 2
	typePrivateKey    tlv.Type = 3
	typeWIF           tlv.Type = 4
	typeAddress       tlv.Type = 5
)

var (
	// walletBucketKey is the top level bucket holding the record.
	walletBucketKey = []byte("zercwallet")

	// walletRecordKey is the key of the record inside walletBucketKey.
	walletRecordKey = []byte("wallet")
)

// serializeWallet encodes w as a TLV stream.
func serializeWallet(w *Wallet) ([]byte, error) {
	var (
		version = recordVersion
		network = []byte(w.params.Name)
		wif     = []byte(w.wif)
		addr    = []byte(w.address)
		privKey [keys.PrivateKeySize]byte
	)
	w.privKey.Key.PutBytes(&privKey)
	defer zero.Bytea32(&privKey)

	tlvStream, err := tlv.NewStream(
		tlv.MakePrimitiveRecord(typeRecordVersion, &version),
		tlv.MakePrimitiveRecord(typeNetwork, &network),
		tlv.MakePrimitiveRecord(typePrivateKey, &privKey),
		tlv.MakePrimitiveRecord(typeWIF, &wif),
		tlv.MakePrimitiveRecord(typeAddress, &addr),
	)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tlvStream.Encode(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// deserializeWallet decodes a record written by serializeWallet.  The WIF
// and address are derived again from the private key and must match the
// stored values, so a record is either entirely valid or rejected.
func deserializeWallet(b []byte, params *netparams.Params) (*Wallet, error) {
	var (
		version uint8
		network []byte
		wif     []byte
		addr    []byte
		privKey [keys.PrivateKeySize]byte
	)
	defer zero.Bytea32(&privKey)

	tlvStream, err := tlv.NewStream(
		tlv.MakePrimitiveRecord(typeRecordVersion, &version),
		tlv.MakePrimitiveRecord(typeNetwork, &network),
		tlv.MakePrimitiveRecord(typePrivateKey, &privKey),
		tlv.MakePrimitiveRecord(typeWIF, &wif),
		tlv.MakePrimitiveRecord(typeAddress, &addr),
	)
	if err != nil {
		return nil, err
	}

	parsedTypes, err := tlvStream.DecodeWithParsedTypes(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptRecord, err)
	}
	for _, typ := range []tlv.Type{
		typeRecordVersion, typeNetwork, typePrivateKey, typeWIF,
		typeAddress,
	} {
		if _, ok := parsedTypes[typ]; !ok {
			return nil, fmt.Errorf("%w: missing field %d",
				ErrCorruptRecord, typ)
		}
	}

	if version != recordVersion {
		return nil, fmt.Errorf("%w: unknown version %d",
			ErrCorruptRecord, version)
	}
	if string(network) != params.Name {
		return nil, fmt.Errorf("%w: stored for %s, loading %s",
			ErrWrongNetwork, network, params.Name)
	}

	priv, err := keys.PrivateKeyFromBytes(privKey[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptRecord, err)
	}
	w, err := NewWalletFromKey(priv, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptRecord, err)
	}
	if w.wif != string(wif) || w.address != string(addr) {
		w.Zero()
		return nil, fmt.Errorf("%w: key does not match stored "+
			"address", ErrCorruptRecord)
	}

	return w, nil
}

// putWallet stores w, replacing any previous record in the same
// transaction.
func putWallet(tx walletdb.ReadWriteTx, w *Wallet) error {
	bucket, err := tx.CreateTopLevelBucket(walletBucketKey)
	if err != nil {
		return err
	}

	record, err := serializeWallet(w)
	if err != nil {
		return err
	}
	return bucket.Put(walletRecordKey, record)
}

// fetchWallet reads and validates the stored wallet.
func fetchWallet(tx walletdb.ReadTx, params *netparams.Params) (*Wallet,
	error) {

	bucket := tx.ReadBucket(walletBucketKey)
	if bucket == nil {
		return nil, fmt.Errorf("%w: missing bucket", ErrCorruptRecord)
	}
	record := bucket.Get(walletRecordKey)
	if record == nil {
		return nil, fmt.Errorf("%w: missing record", ErrCorruptRecord)
	}

	return deserializeWallet(record, params)
}
