// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The merkle-kv Authors

package config

import (
	"fmt"
	"io"
)

// NotSet is the redacted form rendered for an absent credential.
const NotSet = "[NOT SET]"

// Secret is a string whose value never leaves the process through a display
// or serialization path. String, Format, and MarshalText all emit only the
// presence-and-length form "[SET] (length: N)"; the raw value is available
// exclusively through [Secret.Reveal], whose only sanctioned caller is the
// broker client that supplies the credential during authentication.
type Secret string

// Reveal returns the raw secret value.
func (s Secret) Reveal() string {
	return string(s)
}

// String returns the redacted form, e.g. "[SET] (length: 9)".
func (s Secret) String() string {
	return fmt.Sprintf("[SET] (length: %d)", len(s))
}

// Format implements fmt.Formatter for every verb, so that %s, %v, %q, %#v
// and friends all print the redacted form instead of the raw value.
func (s Secret) Format(f fmt.State, _ rune) {
	io.WriteString(f, s.String())
}

// MarshalText implements encoding.TextMarshaler with the redacted form.
// A Secret therefore survives neither JSON nor TOML marshaling in plaintext.
func (s Secret) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting the raw
// credential from the configuration document.
func (s *Secret) UnmarshalText(text []byte) error {
	*s = Secret(text)
	return nil
}
