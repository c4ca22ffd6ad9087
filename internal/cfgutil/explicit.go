// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2025 The zercwallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cfgutil

// ExplicitString is a string flag that records whether the user set it.  A
// flag left at its default can then be replaced by a value that depends on
// other flags, such as the node port of the selected network.
type ExplicitString struct {
	Value         string
	explicitlySet bool
}

// NewExplicitString creates a string flag with the provided default value.
func NewExplicitString(defaultValue string) *ExplicitString {
	return &ExplicitString{Value: defaultValue}
}

// ExplicitlySet returns whether the flag was set through UnmarshalFlag.
func (e *ExplicitString) ExplicitlySet() bool { return e.explicitlySet }

// Or returns the flag value when it was set explicitly and fallback
// otherwise.
func (e *ExplicitString) Or(fallback string) string {
	if e.explicitlySet {
		return e.Value
	}
	return fallback
}

// MarshalFlag implements the flags.Marshaler interface.
func (e *ExplicitString) MarshalFlag() (string, error) { return e.Value, nil }

// UnmarshalFlag implements the flags.Unmarshaler interface.
func (e *ExplicitString) UnmarshalFlag(value string) error {
	e.Value = value
	e.explicitlySet = true
	return nil
}
