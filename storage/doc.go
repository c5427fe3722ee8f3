// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk transaction store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++        = concatenation of byte data
// 3. hash      = transaction hash, 32 bytes
// 4. signer    = cosigner public key, 32 bytes
// 5. deadline  = big endian uint64 (8 bytes), milliseconds from the network epoch
// 6. count     = successive index value as big endian uint64 (8 bytes)
// 7. version   = cosignature version as big endian uint64 (8 bytes)
//
// Signed transactions:
//
//   S ++ hash               - announced or to be announced
//                             data: payload
//
// Partial (aggregate bonded) transactions:
//
//   P ++ hash               - waiting for cosignatures
//                             data: payload
//   E ++ deadline ++ hash   - expiry index
//                             data: (none)
//   N ++ hash               - next count value for the cosignatures of a partial
//                             data: count
//   C ++ hash ++ signer     - collected cosignatures
//                             data: count ++ version ++ signature
//
// Testing:
//   Z ++ key                - testing data
package storage
