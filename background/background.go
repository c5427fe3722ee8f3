// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - long running goroutines with an orderly stop
package background

import (
	"sync"
)

// Process - a background task
//
// Run must return soon after shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for a started set of processes
type T struct {
	shutdown chan struct{}
	finished sync.WaitGroup
	once     sync.Once
}

// Start - start up a set of background processes
func Start(processes Processes, args interface{}) *T {
	register := &T{
		shutdown: make(chan struct{}),
	}

	register.finished.Add(len(processes))
	for _, p := range processes {
		go func(p Process) {
			defer register.finished.Done()
			p.Run(args, register.shutdown)
		}(p)
	}
	return register
}

// Stop - signal every process and wait for all of them to return
//
// safe to call more than once
func (t *T) Stop() {
	if nil == t {
		return
	}
	t.once.Do(func() {
		close(t.shutdown)
	})
	t.finished.Wait()
}
