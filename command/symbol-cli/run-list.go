// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	network, err := m.networkType(c)
	if nil != err {
		return err
	}
	ks, err := m.keystore(network, false)
	if nil != err {
		return err
	}
	entries, err := ks.List()
	if nil != err {
		return err
	}

	for _, e := range entries {
		flag := "--"
		if e.CanSign {
			flag = "SK"
		}
		if e.Name == ks.DefaultIdentity {
			flag += "*"
		} else {
			flag += " "
		}
		fmt.Fprintf(m.w, "%s %-20s %s  %s\n", flag, e.Name, e.Address.Pretty(), e.Description)
	}
	return nil
}
