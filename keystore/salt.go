// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keystore

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/bitmark-inc/symbol-sdk-go/fault"
)

const (
	saltSize = 16
)

// Salt - random input to the password hash of one identity
type Salt [saltSize]byte

// MakeSalt - a new random salt
func MakeSalt() (*Salt, error) {
	salt := new(Salt)
	if _, err := io.ReadFull(rand.Reader, salt[:]); nil != err {
		return nil, err
	}
	return salt, nil
}

// Bytes - the salt as a byte slice
func (salt Salt) Bytes() []byte {
	return salt[:]
}

// String - hex form for the keystore file
func (salt Salt) String() string {
	return hex.EncodeToString(salt.Bytes())
}

// MarshalText - hex text
func (salt Salt) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(saltSize))
	hex.Encode(buffer, salt.Bytes())
	return buffer, nil
}

// UnmarshalText - hex text of exactly saltSize bytes
func (salt *Salt) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return fault.ErrHexDecode
	}
	if saltSize != byteCount {
		return fault.ErrInvalidKeyLength
	}
	copy(salt[:], buffer)
	return nil
}
