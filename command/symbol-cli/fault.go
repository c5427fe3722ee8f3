// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/symbol-sdk-go/fault"
)

// command errors - keep in alphabetic order
var (
	ErrInvalidMosaic         = fault.InvalidError("mosaic must be ID:AMOUNT")
	ErrPasswordMismatch      = fault.InvalidError("passwords do not match")
	ErrRecipientKeyMismatch  = fault.InvalidError("public key does not match the recipient")
	ErrRequiredConfigFile    = fault.InvalidError("a configuration file is required")
	ErrRequiredFileName      = fault.InvalidError("file name is required")
	ErrRequiredHash          = fault.InvalidError("hash is required")
	ErrRequiredHashOrPayload = fault.InvalidError("one of hash or payload is required")
	ErrRequiredLockSelection = fault.InvalidError("exactly one of hash, composite hash or secret is required")
	ErrRequiredNetwork       = fault.InvalidError("network is required")
	ErrRequiredNodeURL       = fault.InvalidError("node url is required")
	ErrRequiredPayload       = fault.InvalidError("payload is required")
	ErrRequiredRecipient     = fault.InvalidError("recipient is required")
	ErrRequiredSelection     = fault.InvalidError("exactly one of public key, namespace or address is required")
)
