// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mosaic

import (
	"github.com/bitmark-inc/symbol-sdk-go/fault"
)

// Flags - mosaic definition properties
type Flags uint8

// flag bits
const (
	SupplyMutable = Flags(0x01)
	Transferable  = Flags(0x02)
	Restrictable  = Flags(0x04)
	Revokable     = Flags(0x08)

	allFlags = SupplyMutable | Transferable | Restrictable | Revokable
)

// FlagsFromRaw - validate a wire value
func FlagsFromRaw(b uint8) (Flags, error) {
	if 0 != Flags(b)&^allFlags {
		return 0, fault.ErrInvalidMosaicFlags
	}
	return Flags(b), nil
}

// Has - test a flag
func (f Flags) Has(flag Flags) bool {
	return flag == f&flag
}

// SupplyAction - direction of a supply change
type SupplyAction uint8

// supply actions
const (
	Decrease = SupplyAction(0)
	Increase = SupplyAction(1)
)

// SupplyActionFromRaw - validate a wire value
func SupplyActionFromRaw(b uint8) (SupplyAction, error) {
	if b > uint8(Increase) {
		return 0, fault.ErrInvalidSupplyAction
	}
	return SupplyAction(b), nil
}

// RestrictionType - comparison used by a global restriction
type RestrictionType uint8

// restriction comparisons
const (
	None = RestrictionType(iota)
	EQ
	NE
	LT
	LE
	GT
	GE
)

// RestrictionTypeFromRaw - validate a wire value
func RestrictionTypeFromRaw(b uint8) (RestrictionType, error) {
	if b > uint8(GE) {
		return 0, fault.ErrInvalidRestrictionType
	}
	return RestrictionType(b), nil
}
