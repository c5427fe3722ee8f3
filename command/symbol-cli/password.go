// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/keystore"
)

var passwordConsole *terminal.Terminal

func getTerminal() (*terminal.Terminal, int, *terminal.State, error) {
	oldState, err := terminal.MakeRaw(0)
	if nil != err {
		return nil, 0, nil, err
	}

	if nil != passwordConsole {
		return passwordConsole, 0, oldState, nil
	}

	tmpIO, err := os.OpenFile("/dev/tty", os.O_RDWR, os.ModePerm)
	if nil != err {
		terminal.Restore(0, oldState)
		return nil, 0, nil, err
	}

	passwordConsole = terminal.NewTerminal(tmpIO, "symbol-cli: ")

	return passwordConsole, 0, oldState, nil
}

func readPassword(prompt string) (string, error) {
	console, fd, state, err := getTerminal()
	if nil != err {
		return "", err
	}
	defer terminal.Restore(fd, state)

	return console.ReadPassword(prompt)
}

// new password, entered twice
func promptNewPassword() (string, error) {
	password, err := readPassword("Set identity password(length >= 8): ")
	if nil != err {
		return "", err
	}
	if len(password) < keystore.MinimumPasswordLength {
		return "", fault.ErrInvalidPassword
	}

	verifyPassword, err := readPassword("Verify password: ")
	if nil != err {
		return "", err
	}
	if password != verifyPassword {
		return "", ErrPasswordMismatch
	}
	return password, nil
}

func promptPassword(name string) (string, error) {
	return readPassword("password for " + name + ": ")
}
