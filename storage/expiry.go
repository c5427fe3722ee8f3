// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/symbol-sdk-go/background"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
)

// DefaultExpiryInterval - time between sweeps of the partial pool
const DefaultExpiryInterval = time.Minute

type expiry struct {
	log             *logger.L
	interval        time.Duration
	epochAdjustment time.Duration
}

// StartExpiry - periodically remove partials past their deadline
//
// the caller stops the returned handle before Finalise
func StartExpiry(interval time.Duration, epochAdjustment time.Duration) *background.T {
	if interval <= 0 {
		interval = DefaultExpiryInterval
	}
	e := &expiry{
		log:             logger.New("expiry"),
		interval:        interval,
		epochAdjustment: epochAdjustment,
	}
	return background.Start(background.Processes{e}, nil)
}

func (e *expiry) Run(args interface{}, shutdown <-chan struct{}) {
	e.log.Info("starting…")

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			now := transaction.DeadlineAt(time.Now(), e.epochAdjustment)
			n, err := ExpirePartials(now)
			if nil != err {
				fault.Criticalf("expire partials error: %s", err)
				continue
			}
			if n > 0 {
				e.log.Infof("expired: %d partials", n)
			}
		}
	}
	e.log.Info("shutting down…")
	e.log.Flush()
}
