// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"github.com/bitmark-inc/symbol-sdk-go/fault"
)

// PackVersion - combine network and schema version into the single
// field used by older REST schemas
//
// the network occupies the high byte so the two hex digit groups of
// the value read as network then version, e.g. 0x6801
func PackVersion(network NetworkType, version uint8) uint16 {
	return uint16(network)<<8 | uint16(version)
}

// UnpackVersion - inverse of PackVersion
func UnpackVersion(packed uint16) (NetworkType, uint8, error) {
	network, err := NetworkTypeFromByte(byte(packed >> 8))
	if nil != err {
		return 0, 0, err
	}
	version := uint8(packed & 0xff)
	if 0 == version {
		return 0, 0, fault.ErrInvalidVersion
	}
	return network, version, nil
}
