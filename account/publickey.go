// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"
	"strings"

	"github.com/bitmark-inc/symbol-sdk-go/fault"
)

// PublicKeyLength - bytes in an ed25519 public key
const PublicKeyLength = 32

// PublicKey - ed25519 public key
type PublicKey [PublicKeyLength]byte

// PublicKeyFromHex - decode 64 hex digits
func PublicKeyFromHex(s string) (PublicKey, error) {
	var key PublicKey
	err := decodeFixedHex(key[:], s)
	if nil != err {
		return PublicKey{}, fault.ErrInvalidPublicKey
	}
	return key, nil
}

// PublicKeyFromBytes - copy and validate a byte slice
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	var key PublicKey
	if PublicKeyLength != len(b) {
		return key, fault.ErrInvalidPublicKey
	}
	copy(key[:], b)
	return key, nil
}

// IsZero - an unsigned transaction carries an all zero signer
func (key PublicKey) IsZero() bool {
	return key == PublicKey{}
}

// upper case hex for display and REST
func (key PublicKey) String() string {
	return strings.ToUpper(hex.EncodeToString(key[:]))
}

// GoString - for %#v
func (key PublicKey) GoString() string {
	return "<public-key:" + key.String() + ">"
}

// MarshalText - hex text for JSON
func (key PublicKey) MarshalText() ([]byte, error) {
	return []byte(key.String()), nil
}

// UnmarshalText - hex text from JSON
func (key *PublicKey) UnmarshalText(s []byte) error {
	k, err := PublicKeyFromHex(string(s))
	if nil != err {
		return err
	}
	*key = k
	return nil
}

// decode hex into exactly len(buffer) bytes
func decodeFixedHex(buffer []byte, s string) error {
	if hex.EncodedLen(len(buffer)) != len(s) {
		return fault.ErrHexDecode
	}
	n, err := hex.Decode(buffer, []byte(s))
	if nil != err || n != len(buffer) {
		return fault.ErrHexDecode
	}
	return nil
}
