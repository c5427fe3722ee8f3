// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"

	"github.com/bitmark-inc/logger"
)

// channel for the last message before exit
var log *logger.L

// Initialise - setup a log channel for fatal conditions
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("FATAL")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data
func Finalise() {
	if nil != log {
		log.Flush()
	}
	log = nil
}

// Criticalf - log a formatted message prefixed by the caller location
func Criticalf(format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(1); ok {
		a := make([]interface{}, 2, 2+len(arguments))
		a[0] = file
		a[1] = line
		a = append(a, arguments...)
		criticalf("(%q:%d) "+format, a...)
	} else {
		criticalf(format, arguments...)
	}
}

// the channel may not be set up when a command fails early
func criticalf(format string, arguments ...interface{}) {
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush()
}
