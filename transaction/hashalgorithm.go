// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/merkle"
)

// SecretHashAlgorithm - hash of the proof of a secret lock, this is
// the numbering on the wire
type SecretHashAlgorithm uint8

// secret hash algorithms
const (
	SecretSha3_256 = SecretHashAlgorithm(0)
	SecretHash160  = SecretHashAlgorithm(1)
	SecretHash256  = SecretHashAlgorithm(2)
)

// LockHashAlgorithm - the older numbering which also includes
// Keccak-256; only seen in legacy REST documents
//
// the two numberings differ and must not be mixed
type LockHashAlgorithm uint8

// lock hash algorithms
const (
	LockSha3_256   = LockHashAlgorithm(0)
	LockKeccak_256 = LockHashAlgorithm(1)
	LockHash160    = LockHashAlgorithm(2)
	LockHash256    = LockHashAlgorithm(3)
)

const hash160Length = ripemd160.Size

// SecretHashAlgorithmFromRaw - validate a wire value
func SecretHashAlgorithmFromRaw(b uint8) (SecretHashAlgorithm, error) {
	if b > uint8(SecretHash256) {
		return 0, fault.ErrInvalidHashAlgorithm
	}
	return SecretHashAlgorithm(b), nil
}

// LockHashAlgorithmFromRaw - validate a legacy value
func LockHashAlgorithmFromRaw(b uint8) (LockHashAlgorithm, error) {
	if b > uint8(LockHash256) {
		return 0, fault.ErrInvalidHashAlgorithm
	}
	return LockHashAlgorithm(b), nil
}

// Hash - digest of the proof, HASH_160 is left aligned and zero filled
func (a SecretHashAlgorithm) Hash(data []byte) merkle.Digest {
	var d merkle.Digest
	switch a {
	case SecretSha3_256:
		d = sha3.Sum256(data)
	case SecretHash160:
		copy(d[:], hash160(data))
	case SecretHash256:
		d = hash256(data)
	}
	return d
}

// secretLength - significant bytes of a secret
func (a SecretHashAlgorithm) secretLength() int {
	if SecretHash160 == a {
		return hash160Length
	}
	return merkle.DigestLength
}

// ParseSecret - validate a hex secret against the algorithm
//
// HASH_160 accepts 40 hex digits or 64 with a zero tail
func (a SecretHashAlgorithm) ParseSecret(s string) (merkle.Digest, error) {
	var d merkle.Digest
	if a > SecretHash256 {
		return d, fault.ErrInvalidHashAlgorithm
	}
	n := a.secretLength()
	if SecretHash160 == a && hex.EncodedLen(merkle.DigestLength) == len(s) {
		if strings.Trim(s[hex.EncodedLen(n):], "0") != "" {
			return d, fault.ErrInvalidSecret
		}
		s = s[:hex.EncodedLen(n)]
	}
	if hex.EncodedLen(n) != len(s) {
		return d, fault.ErrInvalidSecret
	}
	if _, err := hex.Decode(d[:n], []byte(s)); nil != err {
		return merkle.Digest{}, fault.ErrInvalidSecret
	}
	return d, nil
}

func (a SecretHashAlgorithm) String() string {
	switch a {
	case SecretSha3_256:
		return "SHA3_256"
	case SecretHash160:
		return "HASH_160"
	case SecretHash256:
		return "HASH_256"
	default:
		return "UNKNOWN"
	}
}

// Hash - digest of data, HASH_160 is left aligned and zero filled
func (a LockHashAlgorithm) Hash(data []byte) merkle.Digest {
	var d merkle.Digest
	switch a {
	case LockSha3_256:
		d = sha3.Sum256(data)
	case LockKeccak_256:
		h := sha3.NewLegacyKeccak256()
		h.Write(data)
		copy(d[:], h.Sum(nil))
	case LockHash160:
		copy(d[:], hash160(data))
	case LockHash256:
		d = hash256(data)
	}
	return d
}

// ValidateSecret - check the hex length of a secret
func (a LockHashAlgorithm) ValidateSecret(s string) error {
	n := hex.EncodedLen(merkle.DigestLength)
	switch a {
	case LockSha3_256, LockKeccak_256, LockHash256:
	case LockHash160:
		n = hex.EncodedLen(hash160Length)
	default:
		return fault.ErrInvalidHashAlgorithm
	}
	if n != len(s) {
		return fault.ErrInvalidSecret
	}
	if _, err := hex.DecodeString(s); nil != err {
		return fault.ErrInvalidSecret
	}
	return nil
}

// SecretHashAlgorithm - the wire algorithm for a legacy value
//
// Keccak-256 has no wire equivalent
func (a LockHashAlgorithm) SecretHashAlgorithm() (SecretHashAlgorithm, error) {
	switch a {
	case LockSha3_256:
		return SecretSha3_256, nil
	case LockHash160:
		return SecretHash160, nil
	case LockHash256:
		return SecretHash256, nil
	default:
		return 0, fault.ErrInvalidHashAlgorithm
	}
}

// RIPEMD160(SHA256(data))
func hash160(data []byte) []byte {
	s := sha256.Sum256(data)
	r := ripemd160.New()
	r.Write(s[:])
	return r.Sum(nil)
}

// SHA256(SHA256(data))
func hash256(data []byte) merkle.Digest {
	s := sha256.Sum256(data)
	return sha256.Sum256(s[:])
}
