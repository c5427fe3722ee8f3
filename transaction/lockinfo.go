// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/merkle"
	"github.com/bitmark-inc/symbol-sdk-go/mosaic"
)

// LockStatus - whether the funds of a lock have been released
type LockStatus uint8

// lock states
const (
	LockUnused = LockStatus(0)
	LockUsed   = LockStatus(1)
)

// LockStatusFromRaw - validate a status byte
func LockStatusFromRaw(b uint8) (LockStatus, error) {
	if b > uint8(LockUsed) {
		return 0, fault.ErrInvalidLockStatus
	}
	return LockStatus(b), nil
}

func (s LockStatus) String() string {
	switch s {
	case LockUnused:
		return "UNUSED"
	case LockUsed:
		return "USED"
	default:
		return "UNKNOWN"
	}
}

// HashLockInfo - the state a node keeps for a hash lock
//
// RecordID is the node's database id and is empty when the node did
// not send one
type HashLockInfo struct {
	RecordID  string
	Version   uint16
	Owner     account.Address
	MosaicID  mosaic.ID
	Amount    uint64
	EndHeight uint64
	Status    LockStatus
	Hash      merkle.Digest
}

// SecretLockInfo - the state a node keeps for a secret lock
type SecretLockInfo struct {
	RecordID      string
	Version       uint16
	Owner         account.Address
	MosaicID      mosaic.ID
	Amount        uint64
	EndHeight     uint64
	Status        LockStatus
	Algorithm     SecretHashAlgorithm
	Secret        merkle.Digest
	Recipient     account.Address
	CompositeHash merkle.Digest
}

// CompositeHash - key of a secret lock: SHA3-256 of the secret then
// the recipient address
func CompositeHash(secret merkle.Digest, recipient account.Address) merkle.Digest {
	buffer := make([]byte, 0, merkle.DigestLength+account.AddressLength)
	buffer = append(buffer, secret[:]...)
	buffer = append(buffer, recipient[:]...)
	return merkle.Digest(sha3.Sum256(buffer))
}
