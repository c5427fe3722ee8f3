// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catbuffer

import (
	"encoding/hex"

	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/message"
	"github.com/bitmark-inc/symbol-sdk-go/mosaic"
	"github.com/bitmark-inc/symbol-sdk-go/namespace"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
)

func init() {
	codecs = map[transaction.Type]codec{
		transaction.TransferType:                    {packTransfer, unpackTransfer},
		transaction.NamespaceRegistrationType:       {packNamespaceRegistration, unpackNamespaceRegistration},
		transaction.AddressAliasType:                {packAddressAlias, unpackAddressAlias},
		transaction.MosaicAliasType:                 {packMosaicAlias, unpackMosaicAlias},
		transaction.MosaicDefinitionType:            {packMosaicDefinition, unpackMosaicDefinition},
		transaction.MosaicSupplyChangeType:          {packMosaicSupplyChange, unpackMosaicSupplyChange},
		transaction.MosaicSupplyRevocationType:      {packMosaicSupplyRevocation, unpackMosaicSupplyRevocation},
		transaction.MultisigAccountModificationType: {packMultisig, unpackMultisig},
		transaction.AggregateCompleteType:           {packAggregate, unpackAggregate},
		transaction.AggregateBondedType:             {packAggregate, unpackAggregate},
		transaction.HashLockType:                    {packHashLock, unpackHashLock},
		transaction.SecretLockType:                  {packSecretLock, unpackSecretLock},
		transaction.SecretProofType:                 {packSecretProof, unpackSecretProof},
		transaction.AccountAddressRestrictionType:   {packAccountAddressRestriction, unpackAccountAddressRestriction},
		transaction.AccountMosaicRestrictionType:    {packAccountMosaicRestriction, unpackAccountMosaicRestriction},
		transaction.AccountOperationRestrictionType: {packAccountOperationRestriction, unpackAccountOperationRestriction},
		transaction.MosaicAddressRestrictionType:    {packMosaicAddressRestriction, unpackMosaicAddressRestriction},
		transaction.MosaicGlobalRestrictionType:     {packMosaicGlobalRestriction, unpackMosaicGlobalRestriction},
		transaction.AccountMetadataType:             {packMetadata, unpackMetadata},
		transaction.MosaicMetadataType:              {packMetadata, unpackMetadata},
		transaction.NamespaceMetadataType:           {packMetadata, unpackMetadata},
		transaction.AccountKeyLinkType:              {packKeyLink, unpackKeyLink},
		transaction.NodeKeyLinkType:                 {packKeyLink, unpackKeyLink},
		transaction.VrfKeyLinkType:                  {packKeyLink, unpackKeyLink},
		transaction.VotingKeyLinkType:               {packVotingKeyLink, unpackVotingKeyLink},
	}
}

// transfer:
//   recipient(24) messageSize(2) mosaicsCount(1) reserved(4) reserved(1)
//   mosaics(16 each) message(type byte + payload)
func packTransfer(_ Serializer, buffer []byte, tx *transaction.Transaction) ([]byte, error) {
	b := tx.Body.(*transaction.Transfer)
	if len(b.Mosaics) > 0xff {
		return nil, fault.ErrInvalidCount
	}
	m := b.Message.Bytes()
	buffer = appendBytes(buffer, b.Recipient[:])
	buffer = appendUint16(buffer, uint16(len(m)))
	buffer = appendUint8(buffer, uint8(len(b.Mosaics)))
	buffer = appendUint32(buffer, 0)
	buffer = appendUint8(buffer, 0)
	for _, item := range b.Mosaics {
		buffer = appendUint64(buffer, item.ID.Uint64())
		buffer = appendUint64(buffer, item.Amount)
	}
	return appendBytes(buffer, m), nil
}

func unpackTransfer(_ Serializer, r *reader, h header) (*transaction.Factory, error) {
	recipient := r.address("recipient")
	messageSize := int(r.uint16("messageSize"))
	count := int(r.uint8("mosaicsCount"))
	r.skip("reserved", 5)
	var mosaics []mosaic.Mosaic
	for i := 0; i < count; i += 1 {
		mosaics = append(mosaics, readMosaic(r))
	}
	start := r.position()
	raw := r.take("message", messageSize)
	if nil != r.err {
		return nil, r.err
	}
	msg, err := message.FromBytes(raw)
	if nil != err {
		return nil, fault.Wire("message", start, err)
	}
	return transaction.NewTransferFactory(h.network, recipient, mosaics, msg)
}

// namespace registration:
//   durationOrParent(8) id(8) registrationType(1) nameSize(1) name
func packNamespaceRegistration(_ Serializer, buffer []byte, tx *transaction.Transaction) ([]byte, error) {
	b := tx.Body.(*transaction.NamespaceRegistration)
	if namespace.Root == b.RegistrationType {
		buffer = appendUint64(buffer, b.Duration)
	} else {
		buffer = appendUint64(buffer, b.ParentID.Uint64())
	}
	buffer = appendUint64(buffer, b.ID.Uint64())
	buffer = appendUint8(buffer, uint8(b.RegistrationType))
	buffer = appendUint8(buffer, uint8(len(b.Name)))
	return appendBytes(buffer, []byte(b.Name)), nil
}

func unpackNamespaceRegistration(_ Serializer, r *reader, h header) (*transaction.Factory, error) {
	durationOrParent := r.uint64("durationOrParent")
	id := namespace.ID(r.uint64("id"))
	registrationType := namespace.RegistrationType(r.uint8("registrationType"))
	nameSize := int(r.uint8("nameSize"))
	name := r.take("name", nameSize)
	if nil != r.err {
		return nil, r.err
	}
	if namespace.Root == registrationType {
		return transaction.NewNamespaceRegistrationFactory(h.network, registrationType, string(name), id, durationOrParent, 0)
	}
	return transaction.NewNamespaceRegistrationFactory(h.network, registrationType, string(name), id, 0, namespace.ID(durationOrParent))
}

// address alias: namespaceId(8) address(24) action(1)
func packAddressAlias(_ Serializer, buffer []byte, tx *transaction.Transaction) ([]byte, error) {
	b := tx.Body.(*transaction.AddressAlias)
	buffer = appendUint64(buffer, b.NamespaceID.Uint64())
	buffer = appendBytes(buffer, b.Address[:])
	return appendUint8(buffer, uint8(b.Action)), nil
}

func unpackAddressAlias(_ Serializer, r *reader, h header) (*transaction.Factory, error) {
	id := namespace.ID(r.uint64("namespaceId"))
	address := r.address("address")
	action := namespace.AliasAction(r.uint8("aliasAction"))
	if nil != r.err {
		return nil, r.err
	}
	return transaction.NewAddressAliasFactory(h.network, action, id, address)
}

// mosaic alias: namespaceId(8) mosaicId(8) action(1)
func packMosaicAlias(_ Serializer, buffer []byte, tx *transaction.Transaction) ([]byte, error) {
	b := tx.Body.(*transaction.MosaicAlias)
	buffer = appendUint64(buffer, b.NamespaceID.Uint64())
	buffer = appendUint64(buffer, b.MosaicID.Uint64())
	return appendUint8(buffer, uint8(b.Action)), nil
}

func unpackMosaicAlias(_ Serializer, r *reader, h header) (*transaction.Factory, error) {
	id := namespace.ID(r.uint64("namespaceId"))
	mosaicID := mosaic.ID(r.uint64("mosaicId"))
	action := namespace.AliasAction(r.uint8("aliasAction"))
	if nil != r.err {
		return nil, r.err
	}
	return transaction.NewMosaicAliasFactory(h.network, action, id, mosaicID)
}

// mosaic definition: id(8) duration(8) nonce(4) flags(1) divisibility(1)
func packMosaicDefinition(_ Serializer, buffer []byte, tx *transaction.Transaction) ([]byte, error) {
	b := tx.Body.(*transaction.MosaicDefinition)
	buffer = appendUint64(buffer, b.ID.Uint64())
	buffer = appendUint64(buffer, b.Duration)
	buffer = appendUint32(buffer, uint32(b.Nonce))
	buffer = appendUint8(buffer, uint8(b.Flags))
	return appendUint8(buffer, b.Divisibility), nil
}

func unpackMosaicDefinition(_ Serializer, r *reader, h header) (*transaction.Factory, error) {
	id := mosaic.ID(r.uint64("id"))
	duration := r.uint64("duration")
	nonce := mosaic.Nonce(r.uint32("nonce"))
	flags := mosaic.Flags(r.uint8("flags"))
	divisibility := r.uint8("divisibility")
	if nil != r.err {
		return nil, r.err
	}
	return transaction.NewMosaicDefinitionFactory(h.network, nonce, id, flags, divisibility, duration)
}

// supply change: mosaicId(8) delta(8) action(1)
func packMosaicSupplyChange(_ Serializer, buffer []byte, tx *transaction.Transaction) ([]byte, error) {
	b := tx.Body.(*transaction.MosaicSupplyChange)
	buffer = appendUint64(buffer, b.MosaicID.Uint64())
	buffer = appendUint64(buffer, b.Delta)
	return appendUint8(buffer, uint8(b.Action)), nil
}

func unpackMosaicSupplyChange(_ Serializer, r *reader, h header) (*transaction.Factory, error) {
	id := mosaic.UnresolvedID(r.uint64("mosaicId"))
	delta := r.uint64("delta")
	action := mosaic.SupplyAction(r.uint8("action"))
	if nil != r.err {
		return nil, r.err
	}
	return transaction.NewMosaicSupplyChangeFactory(h.network, id, action, delta)
}

// supply revocation: source(24) mosaicId(8) amount(8)
func packMosaicSupplyRevocation(_ Serializer, buffer []byte, tx *transaction.Transaction) ([]byte, error) {
	b := tx.Body.(*transaction.MosaicSupplyRevocation)
	buffer = appendBytes(buffer, b.Source[:])
	buffer = appendUint64(buffer, b.Mosaic.ID.Uint64())
	return appendUint64(buffer, b.Mosaic.Amount), nil
}

func unpackMosaicSupplyRevocation(_ Serializer, r *reader, h header) (*transaction.Factory, error) {
	source := r.address("sourceAddress")
	m := readMosaic(r)
	if nil != r.err {
		return nil, r.err
	}
	return transaction.NewMosaicSupplyRevocationFactory(h.network, source, m)
}

// multisig:
//   minRemovalDelta(1) minApprovalDelta(1) additionsCount(1)
//   deletionsCount(1) reserved(4) additions(24 each) deletions(24 each)
func packMultisig(_ Serializer, buffer []byte, tx *transaction.Transaction) ([]byte, error) {
	b := tx.Body.(*transaction.MultisigAccountModification)
	if len(b.Additions) > 0xff || len(b.Deletions) > 0xff {
		return nil, fault.ErrInvalidCount
	}
	buffer = appendUint8(buffer, uint8(b.MinRemovalDelta))
	buffer = appendUint8(buffer, uint8(b.MinApprovalDelta))
	buffer = appendUint8(buffer, uint8(len(b.Additions)))
	buffer = appendUint8(buffer, uint8(len(b.Deletions)))
	buffer = appendUint32(buffer, 0)
	buffer = appendAddresses(buffer, b.Additions)
	return appendAddresses(buffer, b.Deletions), nil
}

func unpackMultisig(_ Serializer, r *reader, h header) (*transaction.Factory, error) {
	minRemoval := int8(r.uint8("minRemovalDelta"))
	minApproval := int8(r.uint8("minApprovalDelta"))
	additionsCount := int(r.uint8("addressAdditionsCount"))
	deletionsCount := int(r.uint8("addressDeletionsCount"))
	r.skip("reserved", 4)
	additions := r.addresses("addressAdditions", additionsCount)
	deletions := r.addresses("addressDeletions", deletionsCount)
	if nil != r.err {
		return nil, r.err
	}
	return transaction.NewMultisigAccountModificationFactory(h.network, minApproval, minRemoval, additions, deletions)
}

// hash lock: mosaicId(8) amount(8) duration(8) hash(32)
func packHashLock(_ Serializer, buffer []byte, tx *transaction.Transaction) ([]byte, error) {
	b := tx.Body.(*transaction.HashLock)
	buffer = appendUint64(buffer, b.Mosaic.ID.Uint64())
	buffer = appendUint64(buffer, b.Mosaic.Amount)
	buffer = appendUint64(buffer, b.Duration)
	return appendBytes(buffer, b.Hash[:]), nil
}

func unpackHashLock(_ Serializer, r *reader, h header) (*transaction.Factory, error) {
	m := readMosaic(r)
	duration := r.uint64("duration")
	hash := r.digest("hash")
	if nil != r.err {
		return nil, r.err
	}
	return transaction.NewHashLockFactory(h.network, m, duration, hash.String())
}

// secret lock:
//   recipient(24) secret(32) mosaicId(8) amount(8) duration(8) algorithm(1)
func packSecretLock(_ Serializer, buffer []byte, tx *transaction.Transaction) ([]byte, error) {
	b := tx.Body.(*transaction.SecretLock)
	buffer = appendBytes(buffer, b.Recipient[:])
	buffer = appendBytes(buffer, b.Secret[:])
	buffer = appendUint64(buffer, b.Mosaic.ID.Uint64())
	buffer = appendUint64(buffer, b.Mosaic.Amount)
	buffer = appendUint64(buffer, b.Duration)
	return appendUint8(buffer, uint8(b.Algorithm)), nil
}

func unpackSecretLock(_ Serializer, r *reader, h header) (*transaction.Factory, error) {
	recipient := r.address("recipientAddress")
	secret := r.digest("secret")
	m := readMosaic(r)
	duration := r.uint64("duration")
	start := r.position()
	algorithm, err := transaction.SecretHashAlgorithmFromRaw(r.uint8("hashAlgorithm"))
	if nil != r.err {
		return nil, r.err
	}
	if nil != err {
		return nil, fault.Wire("hashAlgorithm", start, err)
	}
	return transaction.NewSecretLockFactory(h.network, m, duration, algorithm, secret.String(), recipient)
}

// secret proof:
//   recipient(24) secret(32) proofSize(2) algorithm(1) proof
func packSecretProof(_ Serializer, buffer []byte, tx *transaction.Transaction) ([]byte, error) {
	b := tx.Body.(*transaction.SecretProof)
	if len(b.Proof) > 0xffff {
		return nil, fault.ErrInvalidProof
	}
	buffer = appendBytes(buffer, b.Recipient[:])
	buffer = appendBytes(buffer, b.Secret[:])
	buffer = appendUint16(buffer, uint16(len(b.Proof)))
	buffer = appendUint8(buffer, uint8(b.Algorithm))
	return appendBytes(buffer, b.Proof), nil
}

func unpackSecretProof(_ Serializer, r *reader, h header) (*transaction.Factory, error) {
	recipient := r.address("recipientAddress")
	secret := r.digest("secret")
	proofSize := int(r.uint16("proofSize"))
	start := r.position()
	algorithm, err := transaction.SecretHashAlgorithmFromRaw(r.uint8("hashAlgorithm"))
	proof := r.take("proof", proofSize)
	if nil != r.err {
		return nil, r.err
	}
	if nil != err {
		return nil, fault.Wire("hashAlgorithm", start, err)
	}
	return transaction.NewSecretProofFactory(h.network, algorithm, recipient, secret.String(), hex.EncodeToString(proof))
}

// account restrictions:
//   flags(2) additionsCount(1) deletionsCount(1) reserved(4)
//   additions deletions
func packRestrictionHeader(buffer []byte, flags transaction.RestrictionFlags, additions int, deletions int) ([]byte, error) {
	if additions > 0xff || deletions > 0xff {
		return nil, fault.ErrInvalidCount
	}
	buffer = appendUint16(buffer, uint16(flags))
	buffer = appendUint8(buffer, uint8(additions))
	buffer = appendUint8(buffer, uint8(deletions))
	return appendUint32(buffer, 0), nil
}

func readRestrictionHeader(r *reader) (transaction.RestrictionFlags, int, int) {
	flags := transaction.RestrictionFlags(r.uint16("restrictionFlags"))
	additions := int(r.uint8("restrictionAdditionsCount"))
	deletions := int(r.uint8("restrictionDeletionsCount"))
	r.skip("reserved", 4)
	return flags, additions, deletions
}

func packAccountAddressRestriction(_ Serializer, buffer []byte, tx *transaction.Transaction) ([]byte, error) {
	b := tx.Body.(*transaction.AccountAddressRestriction)
	buffer, err := packRestrictionHeader(buffer, b.Flags, len(b.Additions), len(b.Deletions))
	if nil != err {
		return nil, err
	}
	buffer = appendAddresses(buffer, b.Additions)
	return appendAddresses(buffer, b.Deletions), nil
}

func unpackAccountAddressRestriction(_ Serializer, r *reader, h header) (*transaction.Factory, error) {
	flags, additionsCount, deletionsCount := readRestrictionHeader(r)
	additions := r.addresses("restrictionAdditions", additionsCount)
	deletions := r.addresses("restrictionDeletions", deletionsCount)
	if nil != r.err {
		return nil, r.err
	}
	return transaction.NewAccountAddressRestrictionFactory(h.network, flags, additions, deletions)
}

func packAccountMosaicRestriction(_ Serializer, buffer []byte, tx *transaction.Transaction) ([]byte, error) {
	b := tx.Body.(*transaction.AccountMosaicRestriction)
	buffer, err := packRestrictionHeader(buffer, b.Flags, len(b.Additions), len(b.Deletions))
	if nil != err {
		return nil, err
	}
	for _, list := range [][]mosaic.UnresolvedID{b.Additions, b.Deletions} {
		for _, id := range list {
			buffer = appendUint64(buffer, id.Uint64())
		}
	}
	return buffer, nil
}

func unpackAccountMosaicRestriction(_ Serializer, r *reader, h header) (*transaction.Factory, error) {
	flags, additionsCount, deletionsCount := readRestrictionHeader(r)
	additions := make([]mosaic.UnresolvedID, additionsCount)
	for i := range additions {
		additions[i] = mosaic.UnresolvedID(r.uint64("restrictionAdditions"))
	}
	deletions := make([]mosaic.UnresolvedID, deletionsCount)
	for i := range deletions {
		deletions[i] = mosaic.UnresolvedID(r.uint64("restrictionDeletions"))
	}
	if nil != r.err {
		return nil, r.err
	}
	return transaction.NewAccountMosaicRestrictionFactory(h.network, flags, additions, deletions)
}

func packAccountOperationRestriction(_ Serializer, buffer []byte, tx *transaction.Transaction) ([]byte, error) {
	b := tx.Body.(*transaction.AccountOperationRestriction)
	buffer, err := packRestrictionHeader(buffer, b.Flags, len(b.Additions), len(b.Deletions))
	if nil != err {
		return nil, err
	}
	for _, list := range [][]transaction.Type{b.Additions, b.Deletions} {
		for _, t := range list {
			buffer = appendUint16(buffer, uint16(t))
		}
	}
	return buffer, nil
}

func unpackAccountOperationRestriction(_ Serializer, r *reader, h header) (*transaction.Factory, error) {
	flags, additionsCount, deletionsCount := readRestrictionHeader(r)
	additions := make([]transaction.Type, additionsCount)
	for i := range additions {
		additions[i] = transaction.Type(r.uint16("restrictionAdditions"))
	}
	deletions := make([]transaction.Type, deletionsCount)
	for i := range deletions {
		deletions[i] = transaction.Type(r.uint16("restrictionDeletions"))
	}
	if nil != r.err {
		return nil, r.err
	}
	return transaction.NewAccountOperationRestrictionFactory(h.network, flags, additions, deletions)
}

// mosaic address restriction:
//   mosaicId(8) key(8) previousValue(8) newValue(8) target(24)
func packMosaicAddressRestriction(_ Serializer, buffer []byte, tx *transaction.Transaction) ([]byte, error) {
	b := tx.Body.(*transaction.MosaicAddressRestriction)
	buffer = appendUint64(buffer, b.MosaicID.Uint64())
	buffer = appendUint64(buffer, b.Key)
	buffer = appendUint64(buffer, b.PreviousValue)
	buffer = appendUint64(buffer, b.NewValue)
	return appendBytes(buffer, b.Target[:]), nil
}

func unpackMosaicAddressRestriction(_ Serializer, r *reader, h header) (*transaction.Factory, error) {
	id := mosaic.UnresolvedID(r.uint64("mosaicId"))
	key := r.uint64("restrictionKey")
	previous := r.uint64("previousRestrictionValue")
	next := r.uint64("newRestrictionValue")
	target := r.address("targetAddress")
	if nil != r.err {
		return nil, r.err
	}
	return transaction.NewMosaicAddressRestrictionFactory(h.network, id, key, target, previous, next)
}

// mosaic global restriction:
//   mosaicId(8) referenceMosaicId(8) key(8) previousValue(8)
//   newValue(8) previousType(1) newType(1)
func packMosaicGlobalRestriction(_ Serializer, buffer []byte, tx *transaction.Transaction) ([]byte, error) {
	b := tx.Body.(*transaction.MosaicGlobalRestriction)
	buffer = appendUint64(buffer, b.MosaicID.Uint64())
	buffer = appendUint64(buffer, b.ReferenceMosaicID.Uint64())
	buffer = appendUint64(buffer, b.Key)
	buffer = appendUint64(buffer, b.PreviousValue)
	buffer = appendUint64(buffer, b.NewValue)
	buffer = appendUint8(buffer, uint8(b.PreviousType))
	return appendUint8(buffer, uint8(b.NewType)), nil
}

func unpackMosaicGlobalRestriction(_ Serializer, r *reader, h header) (*transaction.Factory, error) {
	id := mosaic.UnresolvedID(r.uint64("mosaicId"))
	reference := mosaic.UnresolvedID(r.uint64("referenceMosaicId"))
	key := r.uint64("restrictionKey")
	previousValue := r.uint64("previousRestrictionValue")
	newValue := r.uint64("newRestrictionValue")
	previousType := mosaic.RestrictionType(r.uint8("previousRestrictionType"))
	newType := mosaic.RestrictionType(r.uint8("newRestrictionType"))
	if nil != r.err {
		return nil, r.err
	}
	return transaction.NewMosaicGlobalRestrictionFactory(h.network, id, key, previousValue, previousType, newValue, newType, reference)
}

// metadata:
//   target(24) scopedKey(8) [targetId(8)] valueSizeDelta(2) valueSize(2) value
//
// targetId is only present for mosaic and namespace metadata
func packMetadata(_ Serializer, buffer []byte, tx *transaction.Transaction) ([]byte, error) {
	b := tx.Body.(*transaction.Metadata)
	if len(b.Value) > transaction.MaxMetadataValueLength {
		return nil, fault.ErrMetadataValueTooLong
	}
	buffer = appendBytes(buffer, b.TargetAddress[:])
	buffer = appendUint64(buffer, b.ScopedKey)
	if transaction.AccountMetadataType != tx.Type {
		buffer = appendUint64(buffer, b.TargetID)
	}
	buffer = appendUint16(buffer, uint16(b.ValueSizeDelta))
	buffer = appendUint16(buffer, uint16(len(b.Value)))
	return appendBytes(buffer, b.Value), nil
}

func unpackMetadata(_ Serializer, r *reader, h header) (*transaction.Factory, error) {
	target := r.address("targetAddress")
	key := r.uint64("scopedMetadataKey")
	targetID := uint64(0)
	if transaction.AccountMetadataType != h.kind {
		targetID = r.uint64("targetId")
	}
	delta := int16(r.uint16("valueSizeDelta"))
	valueSize := int(r.uint16("valueSize"))
	value := r.take("value", valueSize)
	if nil != r.err {
		return nil, r.err
	}

	var f *transaction.Factory
	var err error
	switch h.kind {
	case transaction.AccountMetadataType:
		f, err = transaction.NewAccountMetadataFactory(h.network, target, key, value)
	case transaction.MosaicMetadataType:
		f, err = transaction.NewMosaicMetadataFactory(h.network, target, key, mosaic.UnresolvedID(targetID), value)
	default:
		f, err = transaction.NewNamespaceMetadataFactory(h.network, target, key, namespace.ID(targetID), value)
	}
	if nil != err {
		return nil, err
	}
	return f.ValueSizeDelta(delta), nil
}

// key link: linkedPublicKey(32) linkAction(1)
func packKeyLink(_ Serializer, buffer []byte, tx *transaction.Transaction) ([]byte, error) {
	b := tx.Body.(*transaction.KeyLink)
	buffer = appendBytes(buffer, b.LinkedKey[:])
	return appendUint8(buffer, uint8(b.Action)), nil
}

func unpackKeyLink(_ Serializer, r *reader, h header) (*transaction.Factory, error) {
	key := r.publicKey("linkedPublicKey")
	action := transaction.LinkAction(r.uint8("linkAction"))
	if nil != r.err {
		return nil, r.err
	}
	return transaction.NewKeyLinkFactory(h.kind, h.network, key, action)
}

// voting key link: linkedPublicKey(32) startEpoch(4) endEpoch(4) linkAction(1)
func packVotingKeyLink(_ Serializer, buffer []byte, tx *transaction.Transaction) ([]byte, error) {
	b := tx.Body.(*transaction.VotingKeyLink)
	buffer = appendBytes(buffer, b.LinkedKey[:])
	buffer = appendUint32(buffer, b.StartEpoch)
	buffer = appendUint32(buffer, b.EndEpoch)
	return appendUint8(buffer, uint8(b.Action)), nil
}

func unpackVotingKeyLink(_ Serializer, r *reader, h header) (*transaction.Factory, error) {
	key := r.publicKey("linkedPublicKey")
	start := r.uint32("startEpoch")
	end := r.uint32("endEpoch")
	action := transaction.LinkAction(r.uint8("linkAction"))
	if nil != r.err {
		return nil, r.err
	}
	return transaction.NewVotingKeyLinkFactory(h.network, key, start, end, action)
}

func readMosaic(r *reader) mosaic.Mosaic {
	return mosaic.Mosaic{
		ID:     mosaic.UnresolvedID(r.uint64("mosaicId")),
		Amount: r.uint64("amount"),
	}
}
