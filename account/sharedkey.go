// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/sha256"
	"crypto/sha512"
	"io"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/hkdf"

	"github.com/bitmark-inc/symbol-sdk-go/fault"
)

// SharedKeyLength - bytes in a derived message key
const SharedKeyLength = 32

// info string of the key derivation
var sharedKeyInfo = []byte("catapult")

// SharedKey - message key agreed between this key and another account
//
// the clamped private scalar multiplies the other public key and the
// encoded point is expanded with HKDF-SHA256; both sides derive the
// same key
func (kp *KeyPair) SharedKey(other PublicKey) ([SharedKeyLength]byte, error) {
	var key [SharedKeyLength]byte

	point, err := new(edwards25519.Point).SetBytes(other[:])
	if nil != err {
		return key, fault.ErrInvalidPublicKey
	}

	h := sha512.Sum512(kp.PrivateKey())
	scalar, err := new(edwards25519.Scalar).SetBytesWithClamping(h[:32])
	if nil != err {
		return key, fault.ErrCryptoFailed
	}
	secret := new(edwards25519.Point).ScalarMult(scalar, point).Bytes()

	r := hkdf.New(sha256.New, secret, nil, sharedKeyInfo)
	if _, err := io.ReadFull(r, key[:]); nil != err {
		return key, fault.ErrCryptoFailed
	}
	return key, nil
}
