// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"fmt"
	"sort"

	"github.com/bitmark-inc/symbol-sdk-go/fault"
)

// Type - wire code of a transaction kind
//
// these values are part of the network protocol and must never be
// renumbered
type Type uint16

// all transaction kinds
const (
	AccountKeyLinkType              = Type(0x414c)
	NodeKeyLinkType                 = Type(0x424c)
	AggregateCompleteType           = Type(0x4141)
	AggregateBondedType             = Type(0x4241)
	VotingKeyLinkType               = Type(0x4143)
	VrfKeyLinkType                  = Type(0x4243)
	HashLockType                    = Type(0x4148)
	SecretLockType                  = Type(0x4152)
	SecretProofType                 = Type(0x4252)
	AccountMetadataType             = Type(0x4144)
	MosaicMetadataType              = Type(0x4244)
	NamespaceMetadataType           = Type(0x4344)
	MosaicDefinitionType            = Type(0x414d)
	MosaicSupplyChangeType          = Type(0x424d)
	MosaicSupplyRevocationType      = Type(0x434d)
	MultisigAccountModificationType = Type(0x4155)
	AddressAliasType                = Type(0x424e)
	MosaicAliasType                 = Type(0x434e)
	NamespaceRegistrationType       = Type(0x414e)
	AccountAddressRestrictionType   = Type(0x4150)
	AccountMosaicRestrictionType    = Type(0x4250)
	AccountOperationRestrictionType = Type(0x4350)
	MosaicAddressRestrictionType    = Type(0x4251)
	MosaicGlobalRestrictionType     = Type(0x4151)
	TransferType                    = Type(0x4154)
)

type typeInfo struct {
	name    string
	version uint8
}

// name and current version of every kind
var registry = map[Type]typeInfo{
	AggregateCompleteType:           {"AGGREGATE_COMPLETE", 2},
	VotingKeyLinkType:               {"VOTING_KEY_LINK", 1},
	AccountMetadataType:             {"ACCOUNT_METADATA", 1},
	HashLockType:                    {"HASH_LOCK", 1},
	AccountKeyLinkType:              {"ACCOUNT_KEY_LINK", 1},
	MosaicDefinitionType:            {"MOSAIC_DEFINITION", 1},
	NamespaceRegistrationType:       {"NAMESPACE_REGISTRATION", 1},
	AccountAddressRestrictionType:   {"ACCOUNT_ADDRESS_RESTRICTION", 1},
	MosaicGlobalRestrictionType:     {"MOSAIC_GLOBAL_RESTRICTION", 1},
	SecretLockType:                  {"SECRET_LOCK", 1},
	TransferType:                    {"TRANSFER", 1},
	MultisigAccountModificationType: {"MULTISIG_ACCOUNT_MODIFICATION", 1},
	AggregateBondedType:             {"AGGREGATE_BONDED", 2},
	VrfKeyLinkType:                  {"VRF_KEY_LINK", 1},
	MosaicMetadataType:              {"MOSAIC_METADATA", 1},
	NodeKeyLinkType:                 {"NODE_KEY_LINK", 1},
	MosaicSupplyChangeType:          {"MOSAIC_SUPPLY_CHANGE", 1},
	AddressAliasType:                {"ADDRESS_ALIAS", 1},
	AccountMosaicRestrictionType:    {"ACCOUNT_MOSAIC_RESTRICTION", 1},
	MosaicAddressRestrictionType:    {"MOSAIC_ADDRESS_RESTRICTION", 1},
	SecretProofType:                 {"SECRET_PROOF", 1},
	NamespaceMetadataType:           {"NAMESPACE_METADATA", 1},
	MosaicSupplyRevocationType:      {"MOSAIC_SUPPLY_REVOCATION", 1},
	MosaicAliasType:                 {"MOSAIC_ALIAS", 1},
	AccountOperationRestrictionType: {"ACCOUNT_OPERATION_RESTRICTION", 1},
}

// aggregates accept both the current and the previous schema
const previousAggregateVersion = 1

// TypeFromRaw - the single lookup used by every decoder
func TypeFromRaw(code uint16) (Type, error) {
	t := Type(code)
	if _, ok := registry[t]; !ok {
		return 0, fmt.Errorf("%w: 0x%04x", fault.ErrUnknownTransactionType, code)
	}
	return t, nil
}

// AllTypes - every registered kind in ascending code order
func AllTypes() []Type {
	types := make([]Type, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// CurrentVersion - schema version written by this library
func (t Type) CurrentVersion() uint8 {
	return registry[t].version
}

// AcceptsVersion - versions that can be decoded
func (t Type) AcceptsVersion(version uint8) bool {
	if t.IsAggregate() && previousAggregateVersion == version {
		return true
	}
	info, ok := registry[t]
	return ok && info.version == version
}

// IsAggregate - complete or bonded
func (t Type) IsAggregate() bool {
	return AggregateCompleteType == t || AggregateBondedType == t
}

// Valid - registered kind
func (t Type) Valid() bool {
	_, ok := registry[t]
	return ok
}

func (t Type) String() string {
	if info, ok := registry[t]; ok {
		return info.name
	}
	return fmt.Sprintf("UNKNOWN(0x%04x)", uint16(t))
}
