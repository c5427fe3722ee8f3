// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/merkle"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
)

// StoreSigned - keep the payload of a signed transaction under its hash
func StoreSigned(signed *transaction.Signed) error {
	if nil == signed || 0 == len(signed.Payload) {
		return fault.ErrInvalidTransaction
	}
	if err := writable(); nil != err {
		return err
	}
	Pool.Signed.Put(signed.Hash[:], signed.Payload)
	poolData.log.Debugf("signed: %s  type: %s  size: %d", signed.Hash, signed.Type, len(signed.Payload))
	return nil
}

// GetSigned - payload of a stored signed transaction
func GetSigned(hash merkle.Digest) ([]byte, bool) {
	if nil == Pool.Signed {
		return nil, false
	}
	payload := Pool.Signed.Get(hash[:])
	return payload, nil != payload
}

// DeleteSigned - forget a signed transaction
func DeleteSigned(hash merkle.Digest) error {
	if err := writable(); nil != err {
		return err
	}
	Pool.Signed.Delete(hash[:])
	return nil
}

func writable() error {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return fault.ErrNotInitialised
	}
	if poolData.readOnly {
		return fault.ErrReadOnly
	}
	return nil
}
