// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/bitmark-inc/symbol-sdk-go/mosaic"
	"github.com/bitmark-inc/symbol-sdk-go/namespace"
	"github.com/bitmark-inc/symbol-sdk-go/util"
)

// ID:AMOUNT, where ID is hex or a namespace path such as symbol.xym
func checkMosaic(s string) (mosaic.Mosaic, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if 2 != len(parts) || "" == parts[0] || "" == parts[1] {
		return mosaic.Mosaic{}, ErrInvalidMosaic
	}

	amount, err := util.Uint64FromDecimal(parts[1])
	if nil != err {
		return mosaic.Mosaic{}, err
	}

	if id, err := util.Uint64FromHex(parts[0]); nil == err {
		return mosaic.Mosaic{ID: mosaic.UnresolvedID(id), Amount: amount}, nil
	}
	id, err := namespace.IDFromPath(parts[0])
	if nil != err {
		return mosaic.Mosaic{}, err
	}
	return mosaic.Mosaic{ID: mosaic.UnresolvedID(id.Uint64()), Amount: amount}, nil
}

func checkMosaics(items []string) ([]mosaic.Mosaic, error) {
	mosaics := make([]mosaic.Mosaic, 0, len(items))
	for _, s := range items {
		m, err := checkMosaic(s)
		if nil != err {
			return nil, err
		}
		mosaics = append(mosaics, m)
	}
	return mosaics, nil
}

// -1 selects the configured multiplier
func (m *metadata) feeMultiplier(flag int) uint32 {
	switch {
	case flag >= 0:
		return uint32(flag)
	case nil != m.config:
		return uint32(m.config.FeeMultiplier)
	default:
		return defaultFeeMultiplier
	}
}
