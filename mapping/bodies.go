// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mapping

import (
	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/message"
	"github.com/bitmark-inc/symbol-sdk-go/mosaic"
	"github.com/bitmark-inc/symbol-sdk-go/namespace"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
	"github.com/bitmark-inc/symbol-sdk-go/util"
)

// document - the JSON object being printed
type document map[string]interface{}

// body printer for one kind
type bodyPrinter func(tx *transaction.Transaction, out document) error

type kindMapper struct {
	from bodyMapper
	to   bodyPrinter
}

func init() {
	keyLink := kindMapper{mapKeyLink, printKeyLink}
	metadata := kindMapper{mapMetadata, printMetadata}
	aggregate := kindMapper{mapAggregate, printAggregate}

	kinds = map[transaction.Type]kindMapper{
		transaction.TransferType:                    {mapTransfer, printTransfer},
		transaction.NamespaceRegistrationType:       {mapNamespaceRegistration, printNamespaceRegistration},
		transaction.AddressAliasType:                {mapAddressAlias, printAddressAlias},
		transaction.MosaicAliasType:                 {mapMosaicAlias, printMosaicAlias},
		transaction.MosaicDefinitionType:            {mapMosaicDefinition, printMosaicDefinition},
		transaction.MosaicSupplyChangeType:          {mapMosaicSupplyChange, printMosaicSupplyChange},
		transaction.MosaicSupplyRevocationType:      {mapMosaicSupplyRevocation, printMosaicSupplyRevocation},
		transaction.MultisigAccountModificationType: {mapMultisig, printMultisig},
		transaction.AggregateCompleteType:           aggregate,
		transaction.AggregateBondedType:             aggregate,
		transaction.HashLockType:                    {mapHashLock, printHashLock},
		transaction.SecretLockType:                  {mapSecretLock, printSecretLock},
		transaction.SecretProofType:                 {mapSecretProof, printSecretProof},
		transaction.AccountAddressRestrictionType:   {mapAccountAddressRestriction, printAccountAddressRestriction},
		transaction.AccountMosaicRestrictionType:    {mapAccountMosaicRestriction, printAccountMosaicRestriction},
		transaction.AccountOperationRestrictionType: {mapAccountOperationRestriction, printAccountOperationRestriction},
		transaction.MosaicAddressRestrictionType:    {mapMosaicAddressRestriction, printMosaicAddressRestriction},
		transaction.MosaicGlobalRestrictionType:     {mapMosaicGlobalRestriction, printMosaicGlobalRestriction},
		transaction.AccountMetadataType:             metadata,
		transaction.MosaicMetadataType:              metadata,
		transaction.NamespaceMetadataType:           metadata,
		transaction.AccountKeyLinkType:              keyLink,
		transaction.NodeKeyLinkType:                 keyLink,
		transaction.VrfKeyLinkType:                  keyLink,
		transaction.VotingKeyLinkType:               {mapVotingKeyLink, printVotingKeyLink},
	}
}

// transfer:
//   recipientAddress, mosaics[{id, amount}], message
func mapTransfer(n Node, h header) (*transaction.Factory, error) {
	recipient, err := n.First("recipientAddress", "recipient").Address()
	if nil != err {
		return nil, err
	}
	items, err := n.Get("mosaics").Array()
	if nil != err {
		return nil, err
	}
	var mosaics []mosaic.Mosaic
	for _, item := range items {
		m, err := mapMosaic(item)
		if nil != err {
			return nil, err
		}
		mosaics = append(mosaics, m)
	}
	msg, err := mapMessage(n.Get("message"))
	if nil != err {
		return nil, err
	}
	return transaction.NewTransferFactory(h.network, recipient, mosaics, msg)
}

func printTransfer(tx *transaction.Transaction, out document) error {
	b := tx.Body.(*transaction.Transfer)
	out["recipientAddress"] = b.Recipient.Encoded()
	mosaics := make([]document, 0, len(b.Mosaics))
	for _, m := range b.Mosaics {
		mosaics = append(mosaics, printMosaic(m))
	}
	out["mosaics"] = mosaics
	if nil != b.Message {
		out["message"] = hexString(b.Message.Bytes())
	}
	return nil
}

// either the wire form as hex or {type, payload}
func mapMessage(n Node) (*message.Message, error) {
	switch n.Value().(type) {
	case nil:
		return nil, nil
	case string:
		b, err := n.Hex()
		if nil != err {
			return nil, err
		}
		msg, err := message.FromBytes(b)
		if nil != err {
			return nil, n.fail(err)
		}
		return msg, nil
	}
	if _, err := n.Object(); nil != err {
		return nil, err
	}
	t, err := n.Get("type").Uint8()
	if nil != err {
		return nil, err
	}
	payload, err := n.Get("payload").Hex()
	if nil != err {
		return nil, err
	}
	msg, err := message.New(message.Type(t), payload)
	if nil != err {
		return nil, n.fail(err)
	}
	return msg, nil
}

func mapMosaic(n Node) (mosaic.Mosaic, error) {
	id, err := n.Get("id").ID()
	if nil != err {
		return mosaic.Mosaic{}, err
	}
	amount, err := n.Get("amount").Uint64()
	if nil != err {
		return mosaic.Mosaic{}, err
	}
	return mosaic.Mosaic{ID: mosaic.UnresolvedID(id), Amount: amount}, nil
}

func printMosaic(m mosaic.Mosaic) document {
	return document{
		"id":     util.Uint64ToHex(m.ID.Uint64()),
		"amount": util.Uint64ToDecimal(m.Amount),
	}
}

// locks carry either a nested mosaic or flat mosaicId and amount
func mapLockMosaic(n Node) (mosaic.Mosaic, error) {
	if n.Has("mosaic") {
		return mapMosaic(n.Get("mosaic"))
	}
	id, err := n.Get("mosaicId").ID()
	if nil != err {
		return mosaic.Mosaic{}, err
	}
	amount, err := n.Get("amount").Uint64()
	if nil != err {
		return mosaic.Mosaic{}, err
	}
	return mosaic.Mosaic{ID: mosaic.UnresolvedID(id), Amount: amount}, nil
}

func printLockMosaic(m mosaic.Mosaic, out document) {
	out["mosaicId"] = util.Uint64ToHex(m.ID.Uint64())
	out["amount"] = util.Uint64ToDecimal(m.Amount)
}

// namespace registration:
//   registrationType, id, name, duration (root) or parentId (child)
//
// the name is hex in the newer schema and plain text in the older
func mapNamespaceRegistration(n Node, h header) (*transaction.Factory, error) {
	raw, err := n.First("registrationType", "namespaceType").Uint8()
	if nil != err {
		return nil, err
	}
	registrationType, err := namespace.RegistrationTypeFromRaw(raw)
	if nil != err {
		return nil, n.First("registrationType", "namespaceType").fail(err)
	}
	id, err := n.First("id", "namespaceId").ID()
	if nil != err {
		return nil, err
	}
	var name string
	if h.legacy {
		name, err = n.Get("name").Text()
	} else {
		var b []byte
		b, err = n.Get("name").Hex()
		name = string(b)
	}
	if nil != err {
		return nil, err
	}

	duration := uint64(0)
	parent := uint64(0)
	if namespace.Root == registrationType {
		duration, err = n.Get("duration").Uint64()
	} else {
		parent, err = n.Get("parentId").ID()
	}
	if nil != err {
		return nil, err
	}
	return transaction.NewNamespaceRegistrationFactory(h.network, registrationType, name, namespace.ID(id), duration, namespace.ID(parent))
}

func printNamespaceRegistration(tx *transaction.Transaction, out document) error {
	b := tx.Body.(*transaction.NamespaceRegistration)
	out["registrationType"] = b.RegistrationType
	out["id"] = util.Uint64ToHex(b.ID.Uint64())
	out["name"] = hexString([]byte(b.Name))
	if namespace.Root == b.RegistrationType {
		out["duration"] = util.Uint64ToDecimal(b.Duration)
	} else {
		out["parentId"] = util.Uint64ToHex(b.ParentID.Uint64())
	}
	return nil
}

func mapAliasAction(n Node) (namespace.AliasAction, error) {
	raw, err := n.Uint8()
	if nil != err {
		return 0, err
	}
	action, err := namespace.AliasActionFromRaw(raw)
	if nil != err {
		return 0, n.fail(err)
	}
	return action, nil
}

// address alias: aliasAction, namespaceId, address
func mapAddressAlias(n Node, h header) (*transaction.Factory, error) {
	action, err := mapAliasAction(n.Get("aliasAction"))
	if nil != err {
		return nil, err
	}
	id, err := n.Get("namespaceId").ID()
	if nil != err {
		return nil, err
	}
	address, err := n.Get("address").Address()
	if nil != err {
		return nil, err
	}
	return transaction.NewAddressAliasFactory(h.network, action, namespace.ID(id), address)
}

func printAddressAlias(tx *transaction.Transaction, out document) error {
	b := tx.Body.(*transaction.AddressAlias)
	out["aliasAction"] = b.Action
	out["namespaceId"] = util.Uint64ToHex(b.NamespaceID.Uint64())
	out["address"] = b.Address.Encoded()
	return nil
}

// mosaic alias: aliasAction, namespaceId, mosaicId
func mapMosaicAlias(n Node, h header) (*transaction.Factory, error) {
	action, err := mapAliasAction(n.Get("aliasAction"))
	if nil != err {
		return nil, err
	}
	id, err := n.Get("namespaceId").ID()
	if nil != err {
		return nil, err
	}
	mosaicID, err := n.Get("mosaicId").ID()
	if nil != err {
		return nil, err
	}
	return transaction.NewMosaicAliasFactory(h.network, action, namespace.ID(id), mosaic.ID(mosaicID))
}

func printMosaicAlias(tx *transaction.Transaction, out document) error {
	b := tx.Body.(*transaction.MosaicAlias)
	out["aliasAction"] = b.Action
	out["namespaceId"] = util.Uint64ToHex(b.NamespaceID.Uint64())
	out["mosaicId"] = util.Uint64ToHex(b.MosaicID.Uint64())
	return nil
}

// legacy mosaic properties array
const (
	propertyFlags        = 0
	propertyDivisibility = 1
	propertyDuration     = 2
)

// mosaic definition: id, nonce, flags, divisibility, duration;
// the older schema has a properties array instead
func mapMosaicDefinition(n Node, h header) (*transaction.Factory, error) {
	id, err := n.First("id", "mosaicId").ID()
	if nil != err {
		return nil, err
	}
	nonce, err := n.Get("nonce").Uint32()
	if nil != err {
		return nil, err
	}

	flags := uint8(0)
	divisibility := uint8(0)
	duration := uint64(0)
	if n.Has("properties") {
		items, err := n.Get("properties").Array()
		if nil != err {
			return nil, err
		}
		for _, item := range items {
			p, err := item.Get("id").Uint8()
			if nil != err {
				return nil, err
			}
			v, err := item.Get("value").Uint64()
			if nil != err {
				return nil, err
			}
			switch p {
			case propertyFlags:
				flags = uint8(v)
			case propertyDivisibility:
				divisibility = uint8(v)
			case propertyDuration:
				duration = v
			default:
				return nil, item.Get("id").fail(fault.ErrTypeMismatch)
			}
		}
	} else {
		if flags, err = n.Get("flags").Uint8(); nil != err {
			return nil, err
		}
		if divisibility, err = n.Get("divisibility").Uint8(); nil != err {
			return nil, err
		}
		if duration, err = n.Get("duration").Uint64(); nil != err {
			return nil, err
		}
	}

	f, err := mosaic.FlagsFromRaw(flags)
	if nil != err {
		return nil, n.Get("flags").fail(err)
	}
	return transaction.NewMosaicDefinitionFactory(h.network, mosaic.Nonce(nonce), mosaic.ID(id), f, divisibility, duration)
}

func printMosaicDefinition(tx *transaction.Transaction, out document) error {
	b := tx.Body.(*transaction.MosaicDefinition)
	out["id"] = util.Uint64ToHex(b.ID.Uint64())
	out["nonce"] = uint32(b.Nonce)
	out["flags"] = uint8(b.Flags)
	out["divisibility"] = b.Divisibility
	out["duration"] = util.Uint64ToDecimal(b.Duration)
	return nil
}

// supply change: mosaicId, action, delta
func mapMosaicSupplyChange(n Node, h header) (*transaction.Factory, error) {
	id, err := n.Get("mosaicId").ID()
	if nil != err {
		return nil, err
	}
	a := n.First("action", "direction")
	raw, err := a.Uint8()
	if nil != err {
		return nil, err
	}
	action, err := mosaic.SupplyActionFromRaw(raw)
	if nil != err {
		return nil, a.fail(err)
	}
	delta, err := n.Get("delta").Uint64()
	if nil != err {
		return nil, err
	}
	return transaction.NewMosaicSupplyChangeFactory(h.network, mosaic.UnresolvedID(id), action, delta)
}

func printMosaicSupplyChange(tx *transaction.Transaction, out document) error {
	b := tx.Body.(*transaction.MosaicSupplyChange)
	out["mosaicId"] = util.Uint64ToHex(b.MosaicID.Uint64())
	out["action"] = b.Action
	out["delta"] = util.Uint64ToDecimal(b.Delta)
	return nil
}

// supply revocation: sourceAddress, mosaicId, amount
func mapMosaicSupplyRevocation(n Node, h header) (*transaction.Factory, error) {
	source, err := n.Get("sourceAddress").Address()
	if nil != err {
		return nil, err
	}
	m, err := mapLockMosaic(n)
	if nil != err {
		return nil, err
	}
	return transaction.NewMosaicSupplyRevocationFactory(h.network, source, m)
}

func printMosaicSupplyRevocation(tx *transaction.Transaction, out document) error {
	b := tx.Body.(*transaction.MosaicSupplyRevocation)
	out["sourceAddress"] = b.Source.Encoded()
	printLockMosaic(b.Mosaic, out)
	return nil
}

// legacy multisig modification types
const (
	modificationAdd    = 0
	modificationRemove = 1
)

// multisig: minApprovalDelta, minRemovalDelta, addressAdditions,
// addressDeletions; the older schema lists cosignatory public keys
// as modifications
func mapMultisig(n Node, h header) (*transaction.Factory, error) {
	approval, err := n.Get("minApprovalDelta").Int(-128, 127)
	if nil != err {
		return nil, err
	}
	removal, err := n.Get("minRemovalDelta").Int(-128, 127)
	if nil != err {
		return nil, err
	}

	var additions, deletions []account.Address
	if n.Has("modifications") {
		items, err := n.Get("modifications").Array()
		if nil != err {
			return nil, err
		}
		for _, item := range items {
			t := item.First("modificationType", "type")
			kind, err := t.Uint8()
			if nil != err {
				return nil, err
			}
			key, err := item.Get("cosignatoryPublicKey").PublicKey()
			if nil != err {
				return nil, err
			}
			a := account.AddressFromPublicKey(key, h.network)
			switch kind {
			case modificationAdd:
				additions = append(additions, a)
			case modificationRemove:
				deletions = append(deletions, a)
			default:
				return nil, t.fail(fault.ErrInvalidMultisigModification)
			}
		}
	} else {
		if additions, err = n.Get("addressAdditions").Addresses(); nil != err {
			return nil, err
		}
		if deletions, err = n.Get("addressDeletions").Addresses(); nil != err {
			return nil, err
		}
	}
	return transaction.NewMultisigAccountModificationFactory(h.network, int8(approval), int8(removal), additions, deletions)
}

func printMultisig(tx *transaction.Transaction, out document) error {
	b := tx.Body.(*transaction.MultisigAccountModification)
	out["minApprovalDelta"] = b.MinApprovalDelta
	out["minRemovalDelta"] = b.MinRemovalDelta
	out["addressAdditions"] = printAddresses(b.Additions)
	out["addressDeletions"] = printAddresses(b.Deletions)
	return nil
}

func printAddresses(addresses []account.Address) []string {
	s := make([]string, 0, len(addresses))
	for _, a := range addresses {
		s = append(s, a.Encoded())
	}
	return s
}

// hash lock: mosaic, duration, hash
func mapHashLock(n Node, h header) (*transaction.Factory, error) {
	m, err := mapLockMosaic(n)
	if nil != err {
		return nil, err
	}
	duration, err := n.Get("duration").Uint64()
	if nil != err {
		return nil, err
	}
	hash, err := n.Get("hash").Text()
	if nil != err {
		return nil, err
	}
	return transaction.NewHashLockFactory(h.network, m, duration, hash)
}

func printHashLock(tx *transaction.Transaction, out document) error {
	b := tx.Body.(*transaction.HashLock)
	printLockMosaic(b.Mosaic, out)
	out["duration"] = util.Uint64ToDecimal(b.Duration)
	out["hash"] = b.Hash.String()
	return nil
}

// the older schema numbers hash algorithms with Keccak-256 second,
// which has no counterpart on the wire
func mapSecretHashAlgorithm(n Node, h header) (transaction.SecretHashAlgorithm, error) {
	raw, err := n.Uint8()
	if nil != err {
		return 0, err
	}
	if h.legacy {
		lock, err := transaction.LockHashAlgorithmFromRaw(raw)
		if nil != err {
			return 0, n.fail(err)
		}
		a, err := lock.SecretHashAlgorithm()
		if nil != err {
			return 0, n.fail(err)
		}
		return a, nil
	}
	a, err := transaction.SecretHashAlgorithmFromRaw(raw)
	if nil != err {
		return 0, n.fail(err)
	}
	return a, nil
}

// secret lock: mosaic, duration, hashAlgorithm, secret, recipientAddress
func mapSecretLock(n Node, h header) (*transaction.Factory, error) {
	m, err := mapLockMosaic(n)
	if nil != err {
		return nil, err
	}
	duration, err := n.Get("duration").Uint64()
	if nil != err {
		return nil, err
	}
	algorithm, err := mapSecretHashAlgorithm(n.Get("hashAlgorithm"), h)
	if nil != err {
		return nil, err
	}
	secret, err := n.Get("secret").Text()
	if nil != err {
		return nil, err
	}
	recipient, err := n.First("recipientAddress", "recipient").Address()
	if nil != err {
		return nil, err
	}
	return transaction.NewSecretLockFactory(h.network, m, duration, algorithm, secret, recipient)
}

func printSecretLock(tx *transaction.Transaction, out document) error {
	b := tx.Body.(*transaction.SecretLock)
	printLockMosaic(b.Mosaic, out)
	out["duration"] = util.Uint64ToDecimal(b.Duration)
	out["hashAlgorithm"] = b.Algorithm
	out["secret"] = b.Secret.String()
	out["recipientAddress"] = b.Recipient.Encoded()
	return nil
}

// secret proof: hashAlgorithm, secret, recipientAddress, proof
func mapSecretProof(n Node, h header) (*transaction.Factory, error) {
	algorithm, err := mapSecretHashAlgorithm(n.Get("hashAlgorithm"), h)
	if nil != err {
		return nil, err
	}
	secret, err := n.Get("secret").Text()
	if nil != err {
		return nil, err
	}
	recipient, err := n.First("recipientAddress", "recipient").Address()
	if nil != err {
		return nil, err
	}
	proof, err := n.Get("proof").Text()
	if nil != err {
		return nil, err
	}
	return transaction.NewSecretProofFactory(h.network, algorithm, recipient, secret, proof)
}

func printSecretProof(tx *transaction.Transaction, out document) error {
	b := tx.Body.(*transaction.SecretProof)
	out["hashAlgorithm"] = b.Algorithm
	out["secret"] = b.Secret.String()
	out["recipientAddress"] = b.Recipient.Encoded()
	out["proof"] = hexString(b.Proof)
	return nil
}

func mapRestrictionFlags(n Node) (transaction.RestrictionFlags, error) {
	raw, err := n.Get("restrictionFlags").Uint16()
	return transaction.RestrictionFlags(raw), err
}

// account restrictions: restrictionFlags, restrictionAdditions,
// restrictionDeletions
func mapAccountAddressRestriction(n Node, h header) (*transaction.Factory, error) {
	flags, err := mapRestrictionFlags(n)
	if nil != err {
		return nil, err
	}
	additions, err := n.Get("restrictionAdditions").Addresses()
	if nil != err {
		return nil, err
	}
	deletions, err := n.Get("restrictionDeletions").Addresses()
	if nil != err {
		return nil, err
	}
	return transaction.NewAccountAddressRestrictionFactory(h.network, flags, additions, deletions)
}

func printAccountAddressRestriction(tx *transaction.Transaction, out document) error {
	b := tx.Body.(*transaction.AccountAddressRestriction)
	out["restrictionFlags"] = uint16(b.Flags)
	out["restrictionAdditions"] = printAddresses(b.Additions)
	out["restrictionDeletions"] = printAddresses(b.Deletions)
	return nil
}

func mapMosaicIDs(n Node) ([]mosaic.UnresolvedID, error) {
	items, err := n.Array()
	if nil != err {
		return nil, err
	}
	var ids []mosaic.UnresolvedID
	for _, item := range items {
		id, err := item.ID()
		if nil != err {
			return nil, err
		}
		ids = append(ids, mosaic.UnresolvedID(id))
	}
	return ids, nil
}

func printMosaicIDs(ids []mosaic.UnresolvedID) []string {
	s := make([]string, 0, len(ids))
	for _, id := range ids {
		s = append(s, util.Uint64ToHex(id.Uint64()))
	}
	return s
}

func mapAccountMosaicRestriction(n Node, h header) (*transaction.Factory, error) {
	flags, err := mapRestrictionFlags(n)
	if nil != err {
		return nil, err
	}
	additions, err := mapMosaicIDs(n.Get("restrictionAdditions"))
	if nil != err {
		return nil, err
	}
	deletions, err := mapMosaicIDs(n.Get("restrictionDeletions"))
	if nil != err {
		return nil, err
	}
	return transaction.NewAccountMosaicRestrictionFactory(h.network, flags, additions, deletions)
}

func printAccountMosaicRestriction(tx *transaction.Transaction, out document) error {
	b := tx.Body.(*transaction.AccountMosaicRestriction)
	out["restrictionFlags"] = uint16(b.Flags)
	out["restrictionAdditions"] = printMosaicIDs(b.Additions)
	out["restrictionDeletions"] = printMosaicIDs(b.Deletions)
	return nil
}

func mapTypes(n Node) ([]transaction.Type, error) {
	items, err := n.Array()
	if nil != err {
		return nil, err
	}
	var types []transaction.Type
	for _, item := range items {
		code, err := item.Uint16()
		if nil != err {
			return nil, err
		}
		t, err := transaction.TypeFromRaw(code)
		if nil != err {
			return nil, item.fail(err)
		}
		types = append(types, t)
	}
	return types, nil
}

func printTypes(types []transaction.Type) []uint16 {
	codes := make([]uint16, 0, len(types))
	for _, t := range types {
		codes = append(codes, uint16(t))
	}
	return codes
}

func mapAccountOperationRestriction(n Node, h header) (*transaction.Factory, error) {
	flags, err := mapRestrictionFlags(n)
	if nil != err {
		return nil, err
	}
	additions, err := mapTypes(n.Get("restrictionAdditions"))
	if nil != err {
		return nil, err
	}
	deletions, err := mapTypes(n.Get("restrictionDeletions"))
	if nil != err {
		return nil, err
	}
	return transaction.NewAccountOperationRestrictionFactory(h.network, flags, additions, deletions)
}

func printAccountOperationRestriction(tx *transaction.Transaction, out document) error {
	b := tx.Body.(*transaction.AccountOperationRestriction)
	out["restrictionFlags"] = uint16(b.Flags)
	out["restrictionAdditions"] = printTypes(b.Additions)
	out["restrictionDeletions"] = printTypes(b.Deletions)
	return nil
}

// mosaic address restriction: mosaicId, restrictionKey,
// previousRestrictionValue, newRestrictionValue, targetAddress
func mapMosaicAddressRestriction(n Node, h header) (*transaction.Factory, error) {
	id, err := n.Get("mosaicId").ID()
	if nil != err {
		return nil, err
	}
	key, err := n.Get("restrictionKey").ID()
	if nil != err {
		return nil, err
	}
	previous, err := n.Get("previousRestrictionValue").Uint64()
	if nil != err {
		return nil, err
	}
	value, err := n.Get("newRestrictionValue").Uint64()
	if nil != err {
		return nil, err
	}
	target, err := n.Get("targetAddress").Address()
	if nil != err {
		return nil, err
	}
	return transaction.NewMosaicAddressRestrictionFactory(h.network, mosaic.UnresolvedID(id), key, target, previous, value)
}

func printMosaicAddressRestriction(tx *transaction.Transaction, out document) error {
	b := tx.Body.(*transaction.MosaicAddressRestriction)
	out["mosaicId"] = util.Uint64ToHex(b.MosaicID.Uint64())
	out["restrictionKey"] = util.Uint64ToHex(b.Key)
	out["previousRestrictionValue"] = util.Uint64ToDecimal(b.PreviousValue)
	out["newRestrictionValue"] = util.Uint64ToDecimal(b.NewValue)
	out["targetAddress"] = b.Target.Encoded()
	return nil
}

func mapRestrictionType(n Node) (mosaic.RestrictionType, error) {
	raw, err := n.Uint8()
	if nil != err {
		return 0, err
	}
	t, err := mosaic.RestrictionTypeFromRaw(raw)
	if nil != err {
		return 0, n.fail(err)
	}
	return t, nil
}

// mosaic global restriction: mosaicId, referenceMosaicId,
// restrictionKey, previous and new value and type
func mapMosaicGlobalRestriction(n Node, h header) (*transaction.Factory, error) {
	id, err := n.Get("mosaicId").ID()
	if nil != err {
		return nil, err
	}
	reference := uint64(0)
	if n.Has("referenceMosaicId") {
		if reference, err = n.Get("referenceMosaicId").ID(); nil != err {
			return nil, err
		}
	}
	key, err := n.Get("restrictionKey").ID()
	if nil != err {
		return nil, err
	}
	previous, err := n.Get("previousRestrictionValue").Uint64()
	if nil != err {
		return nil, err
	}
	previousType, err := mapRestrictionType(n.Get("previousRestrictionType"))
	if nil != err {
		return nil, err
	}
	value, err := n.Get("newRestrictionValue").Uint64()
	if nil != err {
		return nil, err
	}
	newType, err := mapRestrictionType(n.Get("newRestrictionType"))
	if nil != err {
		return nil, err
	}
	return transaction.NewMosaicGlobalRestrictionFactory(h.network, mosaic.UnresolvedID(id), key, previous, previousType, value, newType, mosaic.UnresolvedID(reference))
}

func printMosaicGlobalRestriction(tx *transaction.Transaction, out document) error {
	b := tx.Body.(*transaction.MosaicGlobalRestriction)
	out["mosaicId"] = util.Uint64ToHex(b.MosaicID.Uint64())
	out["referenceMosaicId"] = util.Uint64ToHex(b.ReferenceMosaicID.Uint64())
	out["restrictionKey"] = util.Uint64ToHex(b.Key)
	out["previousRestrictionValue"] = util.Uint64ToDecimal(b.PreviousValue)
	out["previousRestrictionType"] = b.PreviousType
	out["newRestrictionValue"] = util.Uint64ToDecimal(b.NewValue)
	out["newRestrictionType"] = b.NewType
	return nil
}

// metadata: targetAddress, scopedMetadataKey, value, valueSizeDelta,
// and targetMosaicId or targetNamespaceId
//
// a missing size delta is the value length, as for a new entry
func mapMetadata(n Node, h header) (*transaction.Factory, error) {
	target, err := n.Get("targetAddress").Address()
	if nil != err {
		return nil, err
	}
	key, err := n.Get("scopedMetadataKey").ID()
	if nil != err {
		return nil, err
	}
	value, err := n.Get("value").Hex()
	if nil != err {
		return nil, err
	}

	var f *transaction.Factory
	switch h.kind {
	case transaction.MosaicMetadataType:
		id, err := n.Get("targetMosaicId").ID()
		if nil != err {
			return nil, err
		}
		f, err = transaction.NewMosaicMetadataFactory(h.network, target, key, mosaic.UnresolvedID(id), value)
		if nil != err {
			return nil, err
		}
	case transaction.NamespaceMetadataType:
		id, err := n.Get("targetNamespaceId").ID()
		if nil != err {
			return nil, err
		}
		f, err = transaction.NewNamespaceMetadataFactory(h.network, target, key, namespace.ID(id), value)
		if nil != err {
			return nil, err
		}
	default:
		f, err = transaction.NewAccountMetadataFactory(h.network, target, key, value)
		if nil != err {
			return nil, err
		}
	}

	if n.Has("valueSizeDelta") {
		delta, err := n.Get("valueSizeDelta").Int(-0x8000, 0x7fff)
		if nil != err {
			return nil, err
		}
		f.ValueSizeDelta(int16(delta))
	}
	return f, nil
}

func printMetadata(tx *transaction.Transaction, out document) error {
	b := tx.Body.(*transaction.Metadata)
	out["targetAddress"] = b.TargetAddress.Encoded()
	out["scopedMetadataKey"] = util.Uint64ToHex(b.ScopedKey)
	out["valueSizeDelta"] = b.ValueSizeDelta
	out["valueSize"] = len(b.Value)
	out["value"] = hexString(b.Value)
	switch tx.Type {
	case transaction.MosaicMetadataType:
		out["targetMosaicId"] = util.Uint64ToHex(b.TargetID)
	case transaction.NamespaceMetadataType:
		out["targetNamespaceId"] = util.Uint64ToHex(b.TargetID)
	}
	return nil
}

func mapLinkAction(n Node) (transaction.LinkAction, error) {
	raw, err := n.Uint8()
	if nil != err {
		return 0, err
	}
	action, err := transaction.LinkActionFromRaw(raw)
	if nil != err {
		return 0, n.fail(err)
	}
	return action, nil
}

// key links: linkedPublicKey, linkAction
func mapKeyLink(n Node, h header) (*transaction.Factory, error) {
	key, err := n.First("linkedPublicKey", "remoteAccountKey").PublicKey()
	if nil != err {
		return nil, err
	}
	action, err := mapLinkAction(n.First("linkAction", "action"))
	if nil != err {
		return nil, err
	}
	return transaction.NewKeyLinkFactory(h.kind, h.network, key, action)
}

func printKeyLink(tx *transaction.Transaction, out document) error {
	b := tx.Body.(*transaction.KeyLink)
	out["linkedPublicKey"] = b.LinkedKey.String()
	out["linkAction"] = b.Action
	return nil
}

// voting key link: linkedPublicKey, startEpoch, endEpoch, linkAction
func mapVotingKeyLink(n Node, h header) (*transaction.Factory, error) {
	key, err := n.Get("linkedPublicKey").PublicKey()
	if nil != err {
		return nil, err
	}
	start, err := n.Get("startEpoch").Uint32()
	if nil != err {
		return nil, err
	}
	end, err := n.Get("endEpoch").Uint32()
	if nil != err {
		return nil, err
	}
	action, err := mapLinkAction(n.Get("linkAction"))
	if nil != err {
		return nil, err
	}
	return transaction.NewVotingKeyLinkFactory(h.network, key, start, end, action)
}

func printVotingKeyLink(tx *transaction.Transaction, out document) error {
	b := tx.Body.(*transaction.VotingKeyLink)
	out["linkedPublicKey"] = b.LinkedKey.String()
	out["startEpoch"] = b.StartEpoch
	out["endEpoch"] = b.EndEpoch
	out["linkAction"] = b.Action
	return nil
}
