// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mapping

import (
	"encoding/hex"
	"strings"

	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
	"github.com/bitmark-inc/symbol-sdk-go/util"
)

// ToJSON - the REST document of a transaction in the newer schema:
// separate network and version, decimal strings for amounts and hex
// for ids
func ToJSON(tx *transaction.Transaction) ([]byte, error) {
	if nil == tx {
		return nil, fault.ErrInvalidTransaction
	}
	t, err := printTransaction(tx, false)
	if nil != err {
		return nil, err
	}
	d := document{"transaction": t}
	if nil != tx.Info {
		d["meta"] = printInfo(tx.Info)
		if "" != tx.Info.ID {
			d["id"] = tx.Info.ID
		}
	}
	return codec.Marshal(d)
}

// CosignatureToJSON - the document announced for a cosignature
func CosignatureToJSON(c transaction.CosignatureSigned) ([]byte, error) {
	return codec.Marshal(document{
		"parentHash":      c.ParentHash.String(),
		"version":         util.Uint64ToDecimal(c.Version),
		"signerPublicKey": c.Signer.PublicKey.String(),
		"signature":       c.Signature.String(),
	})
}

// embedded transactions have no fee, deadline or signature of their own
func printTransaction(tx *transaction.Transaction, embedded bool) (document, error) {
	k, ok := kinds[tx.Type]
	if !ok {
		return nil, fault.ErrUnknownTransactionType
	}
	out := document{
		"type":    uint16(tx.Type),
		"version": tx.Version,
		"network": tx.Network.Byte(),
	}
	if !embedded {
		out["maxFee"] = util.Uint64ToDecimal(tx.MaxFee)
		out["deadline"] = util.Uint64ToDecimal(tx.Deadline.Uint64())
		if nil != tx.Signature {
			out["signature"] = tx.Signature.String()
		}
	}
	if nil != tx.Signer {
		out["signerPublicKey"] = tx.Signer.PublicKey.String()
	}
	if err := k.to(tx, out); nil != err {
		return nil, err
	}
	return out, nil
}

func printInfo(info *transaction.Info) document {
	d := document{
		"height": util.Uint64ToDecimal(info.Height),
		"index":  info.Index,
	}
	if nil != info.Hash {
		d["hash"] = info.Hash.String()
	}
	if nil != info.MerkleComponentHash {
		d["merkleComponentHash"] = info.MerkleComponentHash.String()
	}
	if nil != info.AggregateHash {
		d["aggregateHash"] = info.AggregateHash.String()
	}
	if "" != info.AggregateID {
		d["aggregateId"] = info.AggregateID
	}
	return d
}

func hexString(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}
