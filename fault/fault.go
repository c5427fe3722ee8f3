// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type MalformedError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type StateError GenericError

// common errors - keep in alphabetic order
var (
	ErrAddressChecksum             = MalformedError("address checksum mismatch")
	ErrAggregateNotAnnounced       = StateError("aggregate transaction has not been announced")
	ErrAggregateNotFullyLoaded     = StateError("aggregate transaction has no inner transactions")
	ErrAlreadyInitialised          = ExistsError("already initialised")
	ErrConfigurationNotTable       = InvalidError("configuration file must return a table")
	ErrCosignatureExists           = ExistsError("cosignature already stored")
	ErrCosignatureSize             = MalformedError("cosignature block size is invalid")
	ErrCryptoFailed                = ProcessError("encryption failed")
	ErrDecryptionFailed            = InvalidError("message decryption failed")
	ErrDuplicateMosaic             = InvalidError("duplicate mosaic id")
	ErrEmbeddedNotAllowed          = InvalidError("transaction type cannot be embedded")
	ErrHexDecode                   = InvalidError("hex decode failed")
	ErrIdentityExists              = ExistsError("identity already exists")
	ErrIdentityNotFound            = NotFoundError("identity not found")
	ErrInvalidAddress              = InvalidError("invalid address")
	ErrInvalidAliasAction          = InvalidError("invalid alias action")
	ErrInvalidAmount               = InvalidError("invalid amount")
	ErrInvalidChannel              = InvalidError("invalid listener channel")
	ErrInvalidCount                = InvalidError("invalid count")
	ErrInvalidCursor               = InvalidError("invalid cursor")
	ErrInvalidDivisibility         = InvalidError("invalid divisibility")
	ErrInvalidDuration             = InvalidError("invalid duration")
	ErrInvalidEpoch                = InvalidError("invalid epoch range")
	ErrInvalidGenerationHash       = InvalidError("invalid generation hash")
	ErrInvalidHash                 = InvalidError("invalid hash")
	ErrInvalidHashAlgorithm        = InvalidError("invalid hash algorithm")
	ErrInvalidKeyLength            = InvalidError("invalid key length")
	ErrInvalidLinkAction           = InvalidError("invalid link action")
	ErrInvalidLockStatus           = InvalidError("invalid lock status")
	ErrInvalidLoggerChannel        = InvalidError("invalid logger channel")
	ErrInvalidMessage              = InvalidError("invalid message")
	ErrInvalidMosaicFlags          = InvalidError("invalid mosaic flags")
	ErrInvalidMosaicID             = InvalidError("invalid mosaic id")
	ErrInvalidMultisigModification = InvalidError("invalid multisig modification")
	ErrInvalidNamespaceName        = InvalidError("invalid namespace name")
	ErrInvalidNetworkType          = InvalidError("invalid network type")
	ErrInvalidPassword             = InvalidError("invalid password")
	ErrInvalidPrivateKey           = InvalidError("invalid private key")
	ErrInvalidProof                = InvalidError("invalid proof")
	ErrInvalidPublicKey            = InvalidError("invalid public key")
	ErrInvalidRegistrationType     = InvalidError("invalid namespace registration type")
	ErrInvalidRestrictionFlags     = InvalidError("invalid restriction flags")
	ErrInvalidRestrictionType      = InvalidError("invalid mosaic restriction type")
	ErrInvalidSecret               = InvalidError("secret length does not match hash algorithm")
	ErrInvalidSignature            = InvalidError("invalid signature")
	ErrInvalidStructPointer        = InvalidError("invalid struct pointer")
	ErrInvalidSupplyAction         = InvalidError("invalid mosaic supply action")
	ErrInvalidTransaction          = InvalidError("invalid transaction")
	ErrInvalidVersion              = InvalidError("invalid transaction version")
	ErrMessageTooLong              = InvalidError("message too long")
	ErrMessageTooShort             = InvalidError("encrypted message too short")
	ErrMetadataValueTooLong        = InvalidError("metadata value too long")
	ErrMissingAddress              = InvalidError("address is required")
	ErrMissingField                = InvalidError("required field is missing")
	ErrMissingTransactionsHash     = InvalidError("transactions hash is required")
	ErrNotAggregate                = StateError("transaction is not an aggregate")
	ErrNotConnected                = StateError("listener has no connection id")
	ErrNotFoundConfigFile          = NotFoundError("config file is not found")
	ErrNotInitialised              = StateError("not initialised")
	ErrNoModifications             = InvalidError("no modifications")
	ErrPartialNotFound             = NotFoundError("partial transaction not found")
	ErrPayloadSize                 = MalformedError("payload size does not match header")
	ErrPublicOnly                  = StateError("identity has no private key")
	ErrRateLimiting                = ProcessError("rate limiting")
	ErrReadOnly                    = StateError("database is read only")
	ErrRequestFailed               = ProcessError("request failed")
	ErrResourceNotFound            = NotFoundError("resource not found")
	ErrSignatureVerification       = InvalidError("signature verification failed")
	ErrTrailingData                = MalformedError("trailing data after transaction")
	ErrTransactionNotFound         = NotFoundError("transaction not found")
	ErrTruncated                   = MalformedError("buffer truncated")
	ErrTypeMismatch                = InvalidError("type mismatch")
	ErrUint64OutOfRange            = InvalidError("value out of uint64 range")
	ErrUnknownTransactionType      = MalformedError("unknown transaction type")
	ErrUnsigned                    = StateError("transaction is not signed")
	ErrUseAggregateFeeCalculation  = StateError("aggregate fee must be calculated with required cosignatures")
	ErrUseAnnounceBonded           = StateError("bonded aggregate must be announced as partial")
	ErrWrongNetwork                = InvalidError("wrong network")
	ErrWrongPassword               = InvalidError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string    { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e MalformedError) Error() string { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }
func (e StateError) Error() string     { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool    { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool   { var x InvalidError; return errors.As(e, &x) }
func IsErrMalformed(e error) bool { var x MalformedError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool  { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool   { var x ProcessError; return errors.As(e, &x) }
func IsErrState(e error) bool     { var x StateError; return errors.As(e, &x) }
