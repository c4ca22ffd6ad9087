// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cfgutil

import (
	"errors"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
)

// CoinSymbol is the unit suffix accepted and printed by AmountFlag.
const CoinSymbol = "ZERC"

// errNegativeAmount is returned when parsing a negative amount flag.
var errNegativeAmount = errors.New("amount must not be negative")

// AmountFlag embeds a btcutil.Amount and implements the flags.Marshaler and
// Unmarshaler interfaces so it can be used as a config struct field.  Values
// are whole coins with an optional " ZERC" suffix.
type AmountFlag struct {
	btcutil.Amount
}

// NewAmountFlag creates an AmountFlag with a default btcutil.Amount.
func NewAmountFlag(defaultValue btcutil.Amount) *AmountFlag {
	return &AmountFlag{defaultValue}
}

// MarshalFlag satisfies the flags.Marshaler interface.
func (a *AmountFlag) MarshalFlag() (string, error) {
	return FormatAmount(a.Amount), nil
}

// UnmarshalFlag satisfies the flags.Unmarshaler interface.
func (a *AmountFlag) UnmarshalFlag(value string) error {
	amount, err := ParseAmount(value)
	if err != nil {
		return err
	}
	a.Amount = amount
	return nil
}

// ParseAmount parses a non-negative amount of whole coins, rounding to the
// nearest base unit.
func ParseAmount(value string) (btcutil.Amount, error) {
	value = strings.TrimSpace(strings.TrimSuffix(value, " "+CoinSymbol))
	valueF64, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	amount, err := btcutil.NewAmount(valueF64)
	if err != nil {
		return 0, err
	}
	if amount < 0 {
		return 0, errNegativeAmount
	}
	return amount, nil
}

// FormatAmount prints amount in whole coins with the coin symbol and no
// trailing zeros.
func FormatAmount(amount btcutil.Amount) string {
	return strconv.FormatFloat(amount.ToBTC(), 'f', -1, 64) + " " +
		CoinSymbol
}
