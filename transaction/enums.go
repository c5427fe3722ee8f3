// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/symbol-sdk-go/fault"
)

// LinkAction - link or unlink a key
type LinkAction uint8

// link actions
const (
	Unlink = LinkAction(0)
	Link   = LinkAction(1)
)

// LinkActionFromRaw - validate a wire value
func LinkActionFromRaw(b uint8) (LinkAction, error) {
	if b > uint8(Link) {
		return 0, fault.ErrInvalidLinkAction
	}
	return LinkAction(b), nil
}

// RestrictionFlags - account restriction target and direction
type RestrictionFlags uint16

// flag bits
const (
	RestrictAddress       = RestrictionFlags(0x0001)
	RestrictMosaicID      = RestrictionFlags(0x0002)
	RestrictOperationType = RestrictionFlags(0x0004)
	RestrictOutgoing      = RestrictionFlags(0x4000)
	RestrictBlock         = RestrictionFlags(0x8000)
)

// the allowed combinations
const (
	AllowIncomingAddress       = RestrictAddress
	AllowOutgoingAddress       = RestrictAddress | RestrictOutgoing
	BlockIncomingAddress       = RestrictAddress | RestrictBlock
	BlockOutgoingAddress       = RestrictAddress | RestrictOutgoing | RestrictBlock
	AllowIncomingMosaic        = RestrictMosaicID
	BlockMosaic                = RestrictMosaicID | RestrictBlock
	AllowOutgoingOperationType = RestrictOperationType | RestrictOutgoing
	BlockOutgoingOperationType = RestrictOperationType | RestrictOutgoing | RestrictBlock
)

// RestrictionFlagsFor - validate flags for a restriction kind
func RestrictionFlagsFor(t Type, v uint16) (RestrictionFlags, error) {
	f := RestrictionFlags(v)
	ok := false
	switch t {
	case AccountAddressRestrictionType:
		ok = f == AllowIncomingAddress || f == AllowOutgoingAddress || f == BlockIncomingAddress || f == BlockOutgoingAddress
	case AccountMosaicRestrictionType:
		ok = f == AllowIncomingMosaic || f == BlockMosaic
	case AccountOperationRestrictionType:
		ok = f == AllowOutgoingOperationType || f == BlockOutgoingOperationType
	}
	if !ok {
		return 0, fault.ErrInvalidRestrictionFlags
	}
	return f, nil
}
