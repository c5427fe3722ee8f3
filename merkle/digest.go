// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/symbol-sdk-go/fault"
)

// DigestLength - number of bytes in the digest
const DigestLength = 32

// Digest - type for a SHA3-256 digest
//
// unlike block hashes on some chains the byte order is never
// reversed for display, hex text is the bytes in order
type Digest [DigestLength]byte

// NewDigest - create a digest from a byte slice
func NewDigest(record []byte) Digest {
	return sha3.Sum256(record)
}

// DigestFromHex - 64 hex digits
func DigestFromHex(s string) (Digest, error) {
	var d Digest
	if hex.EncodedLen(DigestLength) != len(s) {
		return d, fault.ErrInvalidHash
	}
	if _, err := hex.Decode(d[:], []byte(s)); nil != err {
		return d, fault.ErrInvalidHash
	}
	return d, nil
}

// DigestFromBytes - convert and validate a byte slice to a digest
func DigestFromBytes(buffer []byte) (Digest, error) {
	var d Digest
	if DigestLength != len(buffer) {
		return d, fault.ErrInvalidHash
	}
	copy(d[:], buffer)
	return d, nil
}

// IsZero - true for the empty tree
func (digest Digest) IsZero() bool {
	return digest == Digest{}
}

// convert a binary digest to hex string for use by the fmt package (for %s)
func (digest Digest) String() string {
	return strings.ToUpper(hex.EncodeToString(digest[:]))
}

// GoString - for %#v
func (digest Digest) GoString() string {
	return "<SHA3-256:" + digest.String() + ">"
}

// MarshalText - convert digest to hex text
func (digest Digest) MarshalText() ([]byte, error) {
	return []byte(digest.String()), nil
}

// UnmarshalText - convert hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	d, err := DigestFromHex(string(s))
	if nil != err {
		return err
	}
	*digest = d
	return nil
}
