// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package signing

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/catbuffer"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/merkle"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
)

// layout of the signed part of a payload
const (
	// size, reserved, signature, signer, reserved
	signedHeaderLength = 4 + 4 + account.SignatureLength + account.PublicKeyLength + 4

	// an aggregate only signs its header and transactions hash
	aggregateSignedLength = catbuffer.PayloadSizeOffset - signedHeaderLength
)

// Hash - the transaction hash of a full payload
//
// SHA3-256(signature ‖ signer ‖ generationHash ‖ data), where data is
// everything after the header, or for aggregates only the fixed part
// up to the transactions hash
func Hash(payload []byte, generationHash merkle.Digest) (merkle.Digest, error) {
	data, err := signedData(payload)
	if nil != err {
		return merkle.Digest{}, err
	}
	h := sha3.New256()
	h.Write(payload[catbuffer.SignatureOffset:catbuffer.VersionOffset-4])
	h.Write(generationHash[:])
	h.Write(data)
	var d merkle.Digest
	copy(d[:], h.Sum(nil))
	return d, nil
}

// HashPayloadHex - Hash for hex encoded arguments
func HashPayloadHex(payload string, generationHash string) (merkle.Digest, error) {
	b, err := hex.DecodeString(payload)
	if nil != err {
		return merkle.Digest{}, fault.ErrHexDecode
	}
	g, err := merkle.DigestFromHex(generationHash)
	if nil != err {
		return merkle.Digest{}, fault.ErrInvalidGenerationHash
	}
	return Hash(b, g)
}

// SignBytes - the bytes covered by the initiator's signature
func SignBytes(payload []byte, generationHash merkle.Digest) ([]byte, error) {
	data, err := signedData(payload)
	if nil != err {
		return nil, err
	}
	b := make([]byte, 0, merkle.DigestLength+len(data))
	b = append(b, generationHash[:]...)
	return append(b, data...), nil
}

func signedData(payload []byte) ([]byte, error) {
	if len(payload) < catbuffer.HeaderSize {
		return nil, fault.Wire("header", len(payload), fault.ErrTruncated)
	}
	if int(binary.LittleEndian.Uint32(payload)) != len(payload) {
		return nil, fault.Wire("size", 0, fault.ErrPayloadSize)
	}
	t := transaction.Type(binary.LittleEndian.Uint16(payload[catbuffer.TypeOffset:]))
	if !t.IsAggregate() {
		return payload[signedHeaderLength:], nil
	}
	if len(payload) < catbuffer.PayloadSizeOffset {
		return nil, fault.Wire("transactionsHash", len(payload), fault.ErrTruncated)
	}
	return payload[signedHeaderLength : signedHeaderLength+aggregateSignedLength], nil
}

// SignWith - serialize, sign and hash a transaction
//
// any signature already present on tx is replaced; tx is not modified
func SignWith(s transaction.Serializer, tx *transaction.Transaction, signer *account.Account, generationHash merkle.Digest) (*transaction.Signed, error) {
	if nil == tx || nil == signer {
		return nil, fault.ErrInvalidTransaction
	}
	payload, err := s.Serialize(tx)
	if nil != err {
		return nil, err
	}
	signBytes, err := SignBytes(payload, generationHash)
	if nil != err {
		return nil, err
	}
	signature := signer.Sign(signBytes)
	publicKey := signer.PublicKey()
	copy(payload[catbuffer.SignatureOffset:], signature[:])
	copy(payload[catbuffer.SignerOffset:], publicKey[:])

	hash, err := Hash(payload, generationHash)
	if nil != err {
		return nil, err
	}
	return &transaction.Signed{
		Signer:  signer.PublicAccount(),
		Payload: payload,
		Hash:    hash,
		Type:    tx.Type,
		Network: tx.Network,
	}, nil
}

// VerifyPayload - check the initiator's signature of a full payload
func VerifyPayload(payload []byte, generationHash merkle.Digest) error {
	signBytes, err := SignBytes(payload, generationHash)
	if nil != err {
		return err
	}
	var signature account.Signature
	copy(signature[:], payload[catbuffer.SignatureOffset:catbuffer.SignerOffset])
	var signer account.PublicKey
	copy(signer[:], payload[catbuffer.SignerOffset:catbuffer.SignerOffset+account.PublicKeyLength])
	if !account.Verify(signer, signBytes, signature) {
		return fault.ErrSignatureVerification
	}
	return nil
}
