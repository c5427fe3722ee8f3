// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/hex"
	"sort"

	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/chain"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/merkle"
	"github.com/bitmark-inc/symbol-sdk-go/message"
	"github.com/bitmark-inc/symbol-sdk-go/mosaic"
	"github.com/bitmark-inc/symbol-sdk-go/namespace"
)

// MaxMetadataValueLength - largest metadata value in bytes
const MaxMetadataValueLength = 1024

// NewTransferFactory - send mosaics and an optional message
//
// mosaics are stored in ascending id order, the order used on the wire
func NewTransferFactory(network chain.NetworkType, recipient account.Address, mosaics []mosaic.Mosaic, msg *message.Message) (*Factory, error) {
	if !recipient.IsValid() {
		return nil, fault.ErrInvalidAddress
	}
	if nil != msg && len(msg.Payload) > message.MaxPayloadLength {
		return nil, fault.ErrMessageTooLong
	}
	sorted := make([]mosaic.Mosaic, len(mosaics))
	copy(sorted, mosaics)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	for i := 1; i < len(sorted); i += 1 {
		if sorted[i-1].ID == sorted[i].ID {
			return nil, fault.ErrDuplicateMosaic
		}
	}
	if 0 == len(sorted) {
		sorted = nil
	}

	body := &Transfer{
		Recipient: recipient,
		Mosaics:   sorted,
	}
	if nil != msg {
		m := *msg
		m.Payload = append([]byte(nil), msg.Payload...)
		body.Message = &m
	}
	return newFactory(TransferType, network, body)
}

// NewRootNamespaceFactory - register a top level namespace for a
// number of blocks
func NewRootNamespaceFactory(network chain.NetworkType, name string, duration uint64) (*Factory, error) {
	if 0 == duration {
		return nil, fault.ErrInvalidDuration
	}
	id, err := namespace.IDFromName(name, 0)
	if nil != err {
		return nil, err
	}
	return NewNamespaceRegistrationFactory(network, namespace.Root, name, id, duration, 0)
}

// NewChildNamespaceFactory - register a namespace below an existing one
func NewChildNamespaceFactory(network chain.NetworkType, name string, parent namespace.ID) (*Factory, error) {
	if !namespace.IsNamespace(parent.Uint64()) {
		return nil, fault.ErrInvalidNamespaceName
	}
	id, err := namespace.IDFromName(name, parent)
	if nil != err {
		return nil, err
	}
	return NewNamespaceRegistrationFactory(network, namespace.Child, name, id, 0, parent)
}

// NewNamespaceRegistrationFactory - registration with an id already
// known, as read from the network
func NewNamespaceRegistrationFactory(network chain.NetworkType, registrationType namespace.RegistrationType, name string, id namespace.ID, duration uint64, parent namespace.ID) (*Factory, error) {
	if _, err := namespace.RegistrationTypeFromRaw(uint8(registrationType)); nil != err {
		return nil, err
	}
	if err := namespace.ValidateName(name); nil != err {
		return nil, err
	}
	body := &NamespaceRegistration{
		RegistrationType: registrationType,
		ID:               id,
		Name:             name,
	}
	if namespace.Root == registrationType {
		body.Duration = duration
	} else {
		if 0 == parent {
			return nil, fault.ErrInvalidNamespaceName
		}
		body.ParentID = parent
	}
	return newFactory(NamespaceRegistrationType, network, body)
}

// NewAddressAliasFactory - link or unlink a namespace and an account
func NewAddressAliasFactory(network chain.NetworkType, action namespace.AliasAction, id namespace.ID, address account.Address) (*Factory, error) {
	if _, err := namespace.AliasActionFromRaw(uint8(action)); nil != err {
		return nil, err
	}
	if !address.IsValid() || address.IsAlias() {
		return nil, fault.ErrInvalidAddress
	}
	return newFactory(AddressAliasType, network, &AddressAlias{
		Action:      action,
		NamespaceID: id,
		Address:     address,
	})
}

// NewMosaicAliasFactory - link or unlink a namespace and a mosaic
func NewMosaicAliasFactory(network chain.NetworkType, action namespace.AliasAction, id namespace.ID, mosaicID mosaic.ID) (*Factory, error) {
	if _, err := namespace.AliasActionFromRaw(uint8(action)); nil != err {
		return nil, err
	}
	if _, err := mosaic.IDFromRaw(mosaicID.Uint64()); nil != err {
		return nil, err
	}
	return newFactory(MosaicAliasType, network, &MosaicAlias{
		Action:      action,
		NamespaceID: id,
		MosaicID:    mosaicID,
	})
}

// NewMosaicDefinitionFactory - create a mosaic with a known id
func NewMosaicDefinitionFactory(network chain.NetworkType, nonce mosaic.Nonce, id mosaic.ID, flags mosaic.Flags, divisibility uint8, duration uint64) (*Factory, error) {
	if _, err := mosaic.IDFromRaw(id.Uint64()); nil != err {
		return nil, err
	}
	if _, err := mosaic.FlagsFromRaw(uint8(flags)); nil != err {
		return nil, err
	}
	if divisibility > mosaic.MaxDivisibility {
		return nil, fault.ErrInvalidDivisibility
	}
	return newFactory(MosaicDefinitionType, network, &MosaicDefinition{
		ID:           id,
		Duration:     duration,
		Nonce:        nonce,
		Flags:        flags,
		Divisibility: divisibility,
	})
}

// NewMosaicDefinitionForOwnerFactory - create a mosaic whose id is
// derived from the nonce and the owner's address
func NewMosaicDefinitionForOwnerFactory(network chain.NetworkType, nonce mosaic.Nonce, owner account.Address, flags mosaic.Flags, divisibility uint8, duration uint64) (*Factory, error) {
	if !owner.IsValid() || owner.IsAlias() {
		return nil, fault.ErrInvalidAddress
	}
	return NewMosaicDefinitionFactory(network, nonce, mosaic.IDFromNonce(nonce, owner), flags, divisibility, duration)
}

// NewMosaicSupplyChangeFactory - increase or decrease supply
func NewMosaicSupplyChangeFactory(network chain.NetworkType, id mosaic.UnresolvedID, action mosaic.SupplyAction, delta uint64) (*Factory, error) {
	if _, err := mosaic.SupplyActionFromRaw(uint8(action)); nil != err {
		return nil, err
	}
	return newFactory(MosaicSupplyChangeType, network, &MosaicSupplyChange{
		MosaicID: id,
		Delta:    delta,
		Action:   action,
	})
}

// NewMosaicSupplyRevocationFactory - take back a revokable mosaic
func NewMosaicSupplyRevocationFactory(network chain.NetworkType, source account.Address, m mosaic.Mosaic) (*Factory, error) {
	if !source.IsValid() {
		return nil, fault.ErrInvalidAddress
	}
	if 0 == m.Amount {
		return nil, fault.ErrInvalidAmount
	}
	return newFactory(MosaicSupplyRevocationType, network, &MosaicSupplyRevocation{
		Source: source,
		Mosaic: m,
	})
}

// NewMultisigAccountModificationFactory - change cosignatories and
// the approval and removal thresholds
func NewMultisigAccountModificationFactory(network chain.NetworkType, minApprovalDelta int8, minRemovalDelta int8, additions []account.Address, deletions []account.Address) (*Factory, error) {
	seen := make(map[account.Address]struct{}, len(additions)+len(deletions))
	for _, list := range [][]account.Address{additions, deletions} {
		for _, a := range list {
			if !a.IsValid() {
				return nil, fault.ErrInvalidAddress
			}
			if _, ok := seen[a]; ok {
				return nil, fault.ErrInvalidMultisigModification
			}
			seen[a] = struct{}{}
		}
	}
	return newFactory(MultisigAccountModificationType, network, &MultisigAccountModification{
		MinRemovalDelta:  minRemovalDelta,
		MinApprovalDelta: minApprovalDelta,
		Additions:        copyAddresses(additions),
		Deletions:        copyAddresses(deletions),
	})
}

// NewAggregateFactory - aggregate of either kind with the transactions
// hash derived from the inner transactions
//
// inner transactions must not be aggregates and must be for the same
// network
func NewAggregateFactory(s Serializer, t Type, network chain.NetworkType, inner []Embedded, cosignatures []Cosignature) (*Factory, error) {
	f, err := newAggregateFactory(t, network, inner, cosignatures)
	if nil != err {
		return nil, err
	}
	return f.CalculateTransactionsHash(s)
}

// NewAggregateFactoryWithHash - aggregate carrying the transactions hash
// it was received with
func NewAggregateFactoryWithHash(t Type, network chain.NetworkType, inner []Embedded, cosignatures []Cosignature, hash merkle.Digest) (*Factory, error) {
	if 0 != len(inner) && hash.IsZero() {
		return nil, fault.ErrMissingTransactionsHash
	}
	f, err := newAggregateFactory(t, network, inner, cosignatures)
	if nil != err {
		return nil, err
	}
	f.tx.Body.(*Aggregate).TransactionsHash = hash
	return f, nil
}

// NewAggregateCompleteFactory - aggregate signed by every party before
// announcing
func NewAggregateCompleteFactory(s Serializer, network chain.NetworkType, inner []Embedded, cosignatures []Cosignature) (*Factory, error) {
	return NewAggregateFactory(s, AggregateCompleteType, network, inner, cosignatures)
}

// NewAggregateBondedFactory - aggregate that collects cosignatures on
// the network after a hash lock
func NewAggregateBondedFactory(s Serializer, network chain.NetworkType, inner []Embedded, cosignatures []Cosignature) (*Factory, error) {
	return NewAggregateFactory(s, AggregateBondedType, network, inner, cosignatures)
}

func newAggregateFactory(t Type, network chain.NetworkType, inner []Embedded, cosignatures []Cosignature) (*Factory, error) {
	if !t.IsAggregate() {
		return nil, fault.ErrNotAggregate
	}
	for _, e := range inner {
		if nil == e.Transaction {
			return nil, fault.ErrInvalidTransaction
		}
		if e.Transaction.Type.IsAggregate() {
			return nil, fault.ErrEmbeddedNotAllowed
		}
		if network != e.Transaction.Network {
			return nil, fault.ErrWrongNetwork
		}
	}
	var innerCopy []Embedded
	if 0 != len(inner) {
		innerCopy = make([]Embedded, len(inner))
		copy(innerCopy, inner)
	}
	var cosignaturesCopy []Cosignature
	if 0 != len(cosignatures) {
		cosignaturesCopy = make([]Cosignature, len(cosignatures))
		copy(cosignaturesCopy, cosignatures)
	}
	return newFactory(t, network, &Aggregate{
		Inner:        innerCopy,
		Cosignatures: cosignaturesCopy,
	})
}

// NewHashLockFactory - lock funds against an aggregate bonded hash
func NewHashLockFactory(network chain.NetworkType, m mosaic.Mosaic, duration uint64, hash string) (*Factory, error) {
	if 0 == m.Amount {
		return nil, fault.ErrInvalidAmount
	}
	d, err := merkle.DigestFromHex(hash)
	if nil != err {
		return nil, err
	}
	return newFactory(HashLockType, network, &HashLock{
		Mosaic:   m,
		Duration: duration,
		Hash:     d,
	})
}

// NewHashLockFactoryFromSigned - lock for a signed aggregate bonded
func NewHashLockFactoryFromSigned(network chain.NetworkType, m mosaic.Mosaic, duration uint64, signed *Signed) (*Factory, error) {
	if nil == signed || AggregateBondedType != signed.Type {
		return nil, fault.ErrInvalidTransaction
	}
	return NewHashLockFactory(network, m, duration, signed.Hash.String())
}

// NewSecretLockFactory - lock funds for a recipient until the proof
// of the secret is revealed
func NewSecretLockFactory(network chain.NetworkType, m mosaic.Mosaic, duration uint64, algorithm SecretHashAlgorithm, secret string, recipient account.Address) (*Factory, error) {
	d, err := algorithm.ParseSecret(secret)
	if nil != err {
		return nil, err
	}
	if !recipient.IsValid() {
		return nil, fault.ErrInvalidAddress
	}
	return newFactory(SecretLockType, network, &SecretLock{
		Recipient: recipient,
		Secret:    d,
		Mosaic:    m,
		Duration:  duration,
		Algorithm: algorithm,
	})
}

// NewSecretProofFactory - reveal a proof
func NewSecretProofFactory(network chain.NetworkType, algorithm SecretHashAlgorithm, recipient account.Address, secret string, proof string) (*Factory, error) {
	d, err := algorithm.ParseSecret(secret)
	if nil != err {
		return nil, err
	}
	p, err := hex.DecodeString(proof)
	if nil != err {
		return nil, fault.ErrInvalidProof
	}
	if len(p) > 0xffff {
		return nil, fault.ErrInvalidProof
	}
	if !recipient.IsValid() {
		return nil, fault.ErrInvalidAddress
	}
	return newFactory(SecretProofType, network, &SecretProof{
		Recipient: recipient,
		Secret:    d,
		Algorithm: algorithm,
		Proof:     p,
	})
}

// NewAccountAddressRestrictionFactory - allow or block addresses
func NewAccountAddressRestrictionFactory(network chain.NetworkType, flags RestrictionFlags, additions []account.Address, deletions []account.Address) (*Factory, error) {
	if _, err := RestrictionFlagsFor(AccountAddressRestrictionType, uint16(flags)); nil != err {
		return nil, err
	}
	if 0 == len(additions)+len(deletions) {
		return nil, fault.ErrNoModifications
	}
	for _, list := range [][]account.Address{additions, deletions} {
		for _, a := range list {
			if !a.IsValid() {
				return nil, fault.ErrInvalidAddress
			}
		}
	}
	return newFactory(AccountAddressRestrictionType, network, &AccountAddressRestriction{
		Flags:     flags,
		Additions: copyAddresses(additions),
		Deletions: copyAddresses(deletions),
	})
}

// NewAccountMosaicRestrictionFactory - allow or block mosaics
func NewAccountMosaicRestrictionFactory(network chain.NetworkType, flags RestrictionFlags, additions []mosaic.UnresolvedID, deletions []mosaic.UnresolvedID) (*Factory, error) {
	if _, err := RestrictionFlagsFor(AccountMosaicRestrictionType, uint16(flags)); nil != err {
		return nil, err
	}
	if 0 == len(additions)+len(deletions) {
		return nil, fault.ErrNoModifications
	}
	return newFactory(AccountMosaicRestrictionType, network, &AccountMosaicRestriction{
		Flags:     flags,
		Additions: append([]mosaic.UnresolvedID(nil), additions...),
		Deletions: append([]mosaic.UnresolvedID(nil), deletions...),
	})
}

// NewAccountOperationRestrictionFactory - allow or block outgoing
// transaction kinds
func NewAccountOperationRestrictionFactory(network chain.NetworkType, flags RestrictionFlags, additions []Type, deletions []Type) (*Factory, error) {
	if _, err := RestrictionFlagsFor(AccountOperationRestrictionType, uint16(flags)); nil != err {
		return nil, err
	}
	if 0 == len(additions)+len(deletions) {
		return nil, fault.ErrNoModifications
	}
	for _, list := range [][]Type{additions, deletions} {
		for _, t := range list {
			if !t.Valid() {
				return nil, fault.ErrUnknownTransactionType
			}
		}
	}
	return newFactory(AccountOperationRestrictionType, network, &AccountOperationRestriction{
		Flags:     flags,
		Additions: append([]Type(nil), additions...),
		Deletions: append([]Type(nil), deletions...),
	})
}

// NewMosaicAddressRestrictionFactory - set the restriction value of
// one address
func NewMosaicAddressRestrictionFactory(network chain.NetworkType, id mosaic.UnresolvedID, key uint64, target account.Address, previousValue uint64, newValue uint64) (*Factory, error) {
	if !target.IsValid() {
		return nil, fault.ErrInvalidAddress
	}
	return newFactory(MosaicAddressRestrictionType, network, &MosaicAddressRestriction{
		MosaicID:      id,
		Key:           key,
		PreviousValue: previousValue,
		NewValue:      newValue,
		Target:        target,
	})
}

// NewMosaicGlobalRestrictionFactory - set a mosaic wide rule
//
// a zero reference mosaic means the rule applies to the mosaic itself
func NewMosaicGlobalRestrictionFactory(network chain.NetworkType, id mosaic.UnresolvedID, key uint64, previousValue uint64, previousType mosaic.RestrictionType, newValue uint64, newType mosaic.RestrictionType, reference mosaic.UnresolvedID) (*Factory, error) {
	if _, err := mosaic.RestrictionTypeFromRaw(uint8(previousType)); nil != err {
		return nil, err
	}
	if _, err := mosaic.RestrictionTypeFromRaw(uint8(newType)); nil != err {
		return nil, err
	}
	return newFactory(MosaicGlobalRestrictionType, network, &MosaicGlobalRestriction{
		MosaicID:          id,
		ReferenceMosaicID: reference,
		Key:               key,
		PreviousValue:     previousValue,
		NewValue:          newValue,
		PreviousType:      previousType,
		NewType:           newType,
	})
}

// NewAccountMetadataFactory - metadata attached to an account
func NewAccountMetadataFactory(network chain.NetworkType, target account.Address, key uint64, value []byte) (*Factory, error) {
	return newMetadataFactory(AccountMetadataType, network, target, key, 0, value)
}

// NewMosaicMetadataFactory - metadata attached to a mosaic
func NewMosaicMetadataFactory(network chain.NetworkType, target account.Address, key uint64, id mosaic.UnresolvedID, value []byte) (*Factory, error) {
	return newMetadataFactory(MosaicMetadataType, network, target, key, id.Uint64(), value)
}

// NewNamespaceMetadataFactory - metadata attached to a namespace
func NewNamespaceMetadataFactory(network chain.NetworkType, target account.Address, key uint64, id namespace.ID, value []byte) (*Factory, error) {
	return newMetadataFactory(NamespaceMetadataType, network, target, key, id.Uint64(), value)
}

// the size delta defaults to the value length, which is correct for a
// new entry; updates set it with ValueSizeDelta
func newMetadataFactory(t Type, network chain.NetworkType, target account.Address, key uint64, targetID uint64, value []byte) (*Factory, error) {
	if !target.IsValid() {
		return nil, fault.ErrInvalidAddress
	}
	if len(value) > MaxMetadataValueLength {
		return nil, fault.ErrMetadataValueTooLong
	}
	return newFactory(t, network, &Metadata{
		TargetAddress:  target,
		ScopedKey:      key,
		TargetID:       targetID,
		ValueSizeDelta: int16(len(value)),
		Value:          append([]byte(nil), value...),
	})
}

// NewAccountKeyLinkFactory - delegate harvesting to a remote key
func NewAccountKeyLinkFactory(network chain.NetworkType, key account.PublicKey, action LinkAction) (*Factory, error) {
	return NewKeyLinkFactory(AccountKeyLinkType, network, key, action)
}

// NewNodeKeyLinkFactory - link the TLS key of a node
func NewNodeKeyLinkFactory(network chain.NetworkType, key account.PublicKey, action LinkAction) (*Factory, error) {
	return NewKeyLinkFactory(NodeKeyLinkType, network, key, action)
}

// NewVrfKeyLinkFactory - link a VRF key for harvesting
func NewVrfKeyLinkFactory(network chain.NetworkType, key account.PublicKey, action LinkAction) (*Factory, error) {
	return NewKeyLinkFactory(VrfKeyLinkType, network, key, action)
}

// NewKeyLinkFactory - any of the three kinds sharing the key link layout
func NewKeyLinkFactory(t Type, network chain.NetworkType, key account.PublicKey, action LinkAction) (*Factory, error) {
	if _, err := LinkActionFromRaw(uint8(action)); nil != err {
		return nil, err
	}
	return newFactory(t, network, &KeyLink{
		LinkedKey: key,
		Action:    action,
	})
}

// NewVotingKeyLinkFactory - link a finalization key for a range of epochs
func NewVotingKeyLinkFactory(network chain.NetworkType, key account.PublicKey, startEpoch uint32, endEpoch uint32, action LinkAction) (*Factory, error) {
	if _, err := LinkActionFromRaw(uint8(action)); nil != err {
		return nil, err
	}
	if startEpoch > endEpoch {
		return nil, fault.ErrInvalidEpoch
	}
	return newFactory(VotingKeyLinkType, network, &VotingKeyLink{
		LinkedKey:  key,
		StartEpoch: startEpoch,
		EndEpoch:   endEpoch,
		Action:     action,
	})
}

func copyAddresses(a []account.Address) []account.Address {
	if 0 == len(a) {
		return nil
	}
	c := make([]account.Address, len(a))
	copy(c, a)
	return c
}
