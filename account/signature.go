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

// SignatureLength - bytes in an ed25519 signature
const SignatureLength = 64

// Signature - the type for a signature
type Signature [SignatureLength]byte

// SignatureFromHex - decode 128 hex digits
func SignatureFromHex(s string) (Signature, error) {
	var signature Signature
	err := decodeFixedHex(signature[:], s)
	if nil != err {
		return Signature{}, fault.ErrInvalidSignature
	}
	return signature, nil
}

// SignatureFromBytes - copy and validate a byte slice
func SignatureFromBytes(b []byte) (Signature, error) {
	var signature Signature
	if SignatureLength != len(b) {
		return signature, fault.ErrInvalidSignature
	}
	copy(signature[:], b)
	return signature, nil
}

// IsZero - true for the placeholder of an unsigned transaction
func (signature Signature) IsZero() bool {
	return signature == Signature{}
}

// convert a binary signature to hex string for use by the fmt package (for %s)
func (signature Signature) String() string {
	return strings.ToUpper(hex.EncodeToString(signature[:]))
}

// GoString - convert a binary signature to hex string for use by the fmt package (for %#v)
func (signature Signature) GoString() string {
	return "<signature:" + signature.String() + ">"
}

// MarshalText - convert signature to text
func (signature Signature) MarshalText() ([]byte, error) {
	return []byte(signature.String()), nil
}

// UnmarshalText - convert text into a signature
func (signature *Signature) UnmarshalText(s []byte) error {
	sig, err := SignatureFromHex(string(s))
	if nil != err {
		return err
	}
	*signature = sig
	return nil
}
