// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"time"
)

// default values for new transactions
const (
	DefaultDeadlineDuration = 2 * time.Hour

	// seconds between the unix epoch and the main network nemesis block
	DefaultEpochAdjustment = 1615853185 * time.Second
)

// Deadline - milliseconds since the network epoch adjustment
type Deadline uint64

// NewDeadline - now plus a duration
func NewDeadline(epochAdjustment time.Duration, d time.Duration) Deadline {
	return DeadlineAt(time.Now().Add(d), epochAdjustment)
}

// DefaultDeadline - now plus two hours
func DefaultDeadline(epochAdjustment time.Duration) Deadline {
	return NewDeadline(epochAdjustment, DefaultDeadlineDuration)
}

// DeadlineAt - an absolute time, clamped at the epoch
func DeadlineAt(t time.Time, epochAdjustment time.Duration) Deadline {
	ms := t.UnixNano()/int64(time.Millisecond) - int64(epochAdjustment/time.Millisecond)
	if ms < 0 {
		return 0
	}
	return Deadline(ms)
}

// Time - absolute time of the deadline
func (d Deadline) Time(epochAdjustment time.Duration) time.Time {
	ms := int64(d) + int64(epochAdjustment/time.Millisecond)
	return time.Unix(ms/1000, (ms%1000)*int64(time.Millisecond))
}

// Uint64 - wire value
func (d Deadline) Uint64() uint64 {
	return uint64(d)
}
