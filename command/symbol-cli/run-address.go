// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/namespace"
	"github.com/bitmark-inc/symbol-sdk-go/util"
)

type addressResult struct {
	Network   string `json:"network"`
	Address   string `json:"address"`
	Pretty    string `json:"pretty"`
	Hex       string `json:"hex"`
	PublicKey string `json:"publicKey,omitempty"`
	Namespace string `json:"namespaceId,omitempty"`
}

func runAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	publicKey := c.String("public-key")
	path := c.String("namespace")
	text := c.String("address")

	selected := 0
	for _, s := range []string{publicKey, path, text} {
		if "" != s {
			selected += 1
		}
	}
	if selected > 1 {
		return ErrRequiredSelection
	}

	var a account.Address
	result := addressResult{}

	switch {
	case "" != text:
		var err error
		a, err = account.AddressFromString(text)
		if nil != err {
			return err
		}
		if id, ok := a.NamespaceID(); ok {
			result.Namespace = util.Uint64ToHex(id)
		}

	case "" != path:
		network, err := m.networkType(c)
		if nil != err {
			return err
		}
		id, err := namespace.IDFromPath(path)
		if nil != err {
			return err
		}
		a = account.AddressFromNamespace(id.Uint64(), network)
		result.Namespace = id.String()

	case "" != publicKey:
		network, err := m.networkType(c)
		if nil != err {
			return err
		}
		p, err := account.NewPublicAccount(publicKey, network)
		if nil != err {
			return err
		}
		a = p.Address()
		result.PublicKey = p.PublicKey.String()

	default:
		// an identity from the keystore
		network, err := m.networkType(c)
		if nil != err {
			return err
		}
		ks, err := m.keystore(network, false)
		if nil != err {
			return err
		}
		p, err := ks.Public(c.GlobalString("identity"))
		if nil != err {
			return err
		}
		a = p.Address()
		result.PublicKey = p.PublicKey.String()
	}

	result.Network = a.NetworkType().String()
	result.Address = a.Plain()
	result.Pretty = a.Pretty()
	result.Hex = a.Encoded()
	return printJson(m.w, result)
}
