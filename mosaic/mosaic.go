// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mosaic

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/namespace"
	"github.com/bitmark-inc/symbol-sdk-go/util"
)

// MaxDivisibility - decimal places of the smallest unit
const MaxDivisibility = 6

// ID - resolved mosaic identifier, high bit always clear
type ID uint64

// UnresolvedID - either a mosaic id or a namespace alias for one
type UnresolvedID uint64

// Nonce - random value mixed into a new mosaic id
type Nonce uint32

// Mosaic - an amount of some mosaic
type Mosaic struct {
	ID     UnresolvedID `json:"id"`
	Amount uint64       `json:"amount"`
}

// IDFromNonce - SHA3-256(nonce ‖ owner address), first 8 bytes,
// high bit cleared
func IDFromNonce(nonce Nonce, owner account.Address) ID {
	buffer := make([]byte, 4, 4+account.AddressLength)
	binary.LittleEndian.PutUint32(buffer, uint32(nonce))
	buffer = append(buffer, owner[:]...)
	h := sha3.Sum256(buffer)
	return ID(binary.LittleEndian.Uint64(h[:8]) &^ (uint64(1) << 63))
}

// IDFromRaw - reject values that would be a namespace
func IDFromRaw(v uint64) (ID, error) {
	if namespace.IsNamespace(v) {
		return 0, fault.ErrInvalidMosaicID
	}
	return ID(v), nil
}

// IsAlias - true when the id refers to a namespace
func (id UnresolvedID) IsAlias() bool {
	return namespace.IsNamespace(uint64(id))
}

// Uint64 - raw value
func (id UnresolvedID) Uint64() uint64 {
	return uint64(id)
}

// String - hex as used by REST
func (id UnresolvedID) String() string {
	return util.Uint64ToHex(uint64(id))
}

// Unresolved - widen a resolved id
func (id ID) Unresolved() UnresolvedID {
	return UnresolvedID(id)
}

// Uint64 - raw value
func (id ID) Uint64() uint64 {
	return uint64(id)
}

// String - hex as used by REST
func (id ID) String() string {
	return util.Uint64ToHex(uint64(id))
}
