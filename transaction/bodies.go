// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/merkle"
	"github.com/bitmark-inc/symbol-sdk-go/message"
	"github.com/bitmark-inc/symbol-sdk-go/mosaic"
	"github.com/bitmark-inc/symbol-sdk-go/namespace"
)

// Transfer - send mosaics and a message
type Transfer struct {
	Recipient account.Address // may be a namespace alias
	Mosaics   []mosaic.Mosaic // ascending id order
	Message   *message.Message
}

// NamespaceRegistration - register a root or child namespace
type NamespaceRegistration struct {
	RegistrationType namespace.RegistrationType
	ID               namespace.ID
	Name             string
	Duration         uint64       // root only
	ParentID         namespace.ID // child only
}

// AddressAlias - link a namespace to an account
type AddressAlias struct {
	Action      namespace.AliasAction
	NamespaceID namespace.ID
	Address     account.Address
}

// MosaicAlias - link a namespace to a mosaic
type MosaicAlias struct {
	Action      namespace.AliasAction
	NamespaceID namespace.ID
	MosaicID    mosaic.ID
}

// MosaicDefinition - create a mosaic
type MosaicDefinition struct {
	ID           mosaic.ID
	Duration     uint64
	Nonce        mosaic.Nonce
	Flags        mosaic.Flags
	Divisibility uint8
}

// MosaicSupplyChange - mint or burn
type MosaicSupplyChange struct {
	MosaicID mosaic.UnresolvedID
	Delta    uint64
	Action   mosaic.SupplyAction
}

// MosaicSupplyRevocation - creator reclaims a revokable mosaic
type MosaicSupplyRevocation struct {
	Source account.Address
	Mosaic mosaic.Mosaic
}

// MultisigAccountModification - change cosignatories and thresholds
type MultisigAccountModification struct {
	MinRemovalDelta  int8
	MinApprovalDelta int8
	Additions        []account.Address
	Deletions        []account.Address
}

// Aggregate - complete or bonded
type Aggregate struct {
	TransactionsHash merkle.Digest
	Inner            []Embedded
	Cosignatures     []Cosignature
}

// IsFullyLoaded - false for an aggregate read without its inner
// transactions, which cannot be serialized again
func (a *Aggregate) IsFullyLoaded() bool {
	return 0 != len(a.Inner)
}

// HashLock - deposit for an announced aggregate bonded
type HashLock struct {
	Mosaic   mosaic.Mosaic
	Duration uint64
	Hash     merkle.Digest
}

// SecretLock - lock funds until a proof is revealed
type SecretLock struct {
	Recipient account.Address
	Secret    merkle.Digest
	Mosaic    mosaic.Mosaic
	Duration  uint64
	Algorithm SecretHashAlgorithm
}

// SecretProof - reveal the proof of a secret lock
type SecretProof struct {
	Recipient account.Address
	Secret    merkle.Digest
	Algorithm SecretHashAlgorithm
	Proof     []byte
}

// AccountAddressRestriction - allow or block addresses
type AccountAddressRestriction struct {
	Flags     RestrictionFlags
	Additions []account.Address
	Deletions []account.Address
}

// AccountMosaicRestriction - allow or block mosaics
type AccountMosaicRestriction struct {
	Flags     RestrictionFlags
	Additions []mosaic.UnresolvedID
	Deletions []mosaic.UnresolvedID
}

// AccountOperationRestriction - allow or block outgoing kinds
type AccountOperationRestriction struct {
	Flags     RestrictionFlags
	Additions []Type
	Deletions []Type
}

// MosaicAddressRestriction - per address restriction value
type MosaicAddressRestriction struct {
	MosaicID      mosaic.UnresolvedID
	Key           uint64
	PreviousValue uint64
	NewValue      uint64
	Target        account.Address
}

// MosaicGlobalRestriction - mosaic wide restriction rule
type MosaicGlobalRestriction struct {
	MosaicID          mosaic.UnresolvedID
	ReferenceMosaicID mosaic.UnresolvedID
	Key               uint64
	PreviousValue     uint64
	NewValue          uint64
	PreviousType      mosaic.RestrictionType
	NewType           mosaic.RestrictionType
}

// Metadata - account, mosaic or namespace metadata
//
// TargetID is the mosaic or namespace id and is not used for account
// metadata.  Value holds the XOR of the previous and new values when
// an existing entry is updated.
type Metadata struct {
	TargetAddress  account.Address
	ScopedKey      uint64
	TargetID       uint64
	ValueSizeDelta int16
	Value          []byte
}

// KeyLink - account, node or VRF key link
type KeyLink struct {
	LinkedKey account.PublicKey
	Action    LinkAction
}

// VotingKeyLink - finalization voting key for a range of epochs
type VotingKeyLink struct {
	LinkedKey  account.PublicKey
	StartEpoch uint32
	EndEpoch   uint32
	Action     LinkAction
}

func (*Transfer) validFor(t Type) bool                  { return TransferType == t }
func (*NamespaceRegistration) validFor(t Type) bool     { return NamespaceRegistrationType == t }
func (*AddressAlias) validFor(t Type) bool              { return AddressAliasType == t }
func (*MosaicAlias) validFor(t Type) bool               { return MosaicAliasType == t }
func (*MosaicDefinition) validFor(t Type) bool          { return MosaicDefinitionType == t }
func (*MosaicSupplyChange) validFor(t Type) bool        { return MosaicSupplyChangeType == t }
func (*MosaicSupplyRevocation) validFor(t Type) bool    { return MosaicSupplyRevocationType == t }
func (*Aggregate) validFor(t Type) bool                 { return t.IsAggregate() }
func (*HashLock) validFor(t Type) bool                  { return HashLockType == t }
func (*SecretLock) validFor(t Type) bool                { return SecretLockType == t }
func (*SecretProof) validFor(t Type) bool               { return SecretProofType == t }
func (*MosaicAddressRestriction) validFor(t Type) bool  { return MosaicAddressRestrictionType == t }
func (*MosaicGlobalRestriction) validFor(t Type) bool   { return MosaicGlobalRestrictionType == t }
func (*VotingKeyLink) validFor(t Type) bool             { return VotingKeyLinkType == t }
func (*AccountAddressRestriction) validFor(t Type) bool { return AccountAddressRestrictionType == t }
func (*AccountMosaicRestriction) validFor(t Type) bool  { return AccountMosaicRestrictionType == t }

func (*MultisigAccountModification) validFor(t Type) bool {
	return MultisigAccountModificationType == t
}

func (*AccountOperationRestriction) validFor(t Type) bool {
	return AccountOperationRestrictionType == t
}

func (*Metadata) validFor(t Type) bool {
	return AccountMetadataType == t || MosaicMetadataType == t || NamespaceMetadataType == t
}

func (*KeyLink) validFor(t Type) bool {
	return AccountKeyLinkType == t || NodeKeyLinkType == t || VrfKeyLinkType == t
}

// ValidBody - the body layout matches the kind
func ValidBody(t Type, b Body) bool {
	return nil != b && b.validFor(t)
}

// shallow copy so later factory changes do not reach a built transaction
func copyBody(b Body) Body {
	switch v := b.(type) {
	case *Transfer:
		c := *v
		return &c
	case *NamespaceRegistration:
		c := *v
		return &c
	case *AddressAlias:
		c := *v
		return &c
	case *MosaicAlias:
		c := *v
		return &c
	case *MosaicDefinition:
		c := *v
		return &c
	case *MosaicSupplyChange:
		c := *v
		return &c
	case *MosaicSupplyRevocation:
		c := *v
		return &c
	case *MultisigAccountModification:
		c := *v
		return &c
	case *Aggregate:
		c := *v
		return &c
	case *HashLock:
		c := *v
		return &c
	case *SecretLock:
		c := *v
		return &c
	case *SecretProof:
		c := *v
		return &c
	case *AccountAddressRestriction:
		c := *v
		return &c
	case *AccountMosaicRestriction:
		c := *v
		return &c
	case *AccountOperationRestriction:
		c := *v
		return &c
	case *MosaicAddressRestriction:
		c := *v
		return &c
	case *MosaicGlobalRestriction:
		c := *v
		return &c
	case *Metadata:
		c := *v
		return &c
	case *KeyLink:
		c := *v
		return &c
	case *VotingKeyLink:
		c := *v
		return &c
	default:
		return b
	}
}
