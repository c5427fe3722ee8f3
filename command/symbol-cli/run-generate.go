// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/symbol-sdk-go/account"
)

type generateResult struct {
	Name       string `json:"name,omitempty"`
	Network    string `json:"network"`
	PrivateKey string `json:"privateKey,omitempty"`
	PublicKey  string `json:"publicKey"`
	Address    string `json:"address"`
	Pretty     string `json:"pretty"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	network, err := m.networkType(c)
	if nil != err {
		return err
	}

	name := c.String("save")
	description := c.String("description")
	privateKey := c.String("private-key")
	publicKey := c.String("public-key")

	if m.verbose {
		fmt.Fprintf(m.e, "network: %s\n", network)
		fmt.Fprintf(m.e, "save as: %q\n", name)
	}

	// receive only identity
	if "" != publicKey {
		if "" == name {
			return fmt.Errorf("public key requires an identity name")
		}
		p, err := account.NewPublicAccount(publicKey, network)
		if nil != err {
			return err
		}
		ks, err := m.keystore(network, true)
		if nil != err {
			return err
		}
		if err := ks.AddPublic(name, description, p); nil != err {
			return err
		}
		if err := ks.Save(m.config.Keystore); nil != err {
			return err
		}
		return printJson(m.w, generateResult{
			Name:      name,
			Network:   network.String(),
			PublicKey: p.PublicKey.String(),
			Address:   p.Address().Plain(),
			Pretty:    p.Address().Pretty(),
		})
	}

	var a *account.Account
	if "" != privateKey {
		a, err = account.AccountFromPrivateHex(privateKey, network)
	} else {
		a, err = account.NewAccount(rand.Reader, network)
	}
	if nil != err {
		return err
	}

	result := generateResult{
		Name:      name,
		Network:   network.String(),
		PublicKey: a.PublicKey().String(),
		Address:   a.Address().Plain(),
		Pretty:    a.Address().Pretty(),
	}

	if "" == name {
		result.PrivateKey = a.PrivateKeyHex()
		return printJson(m.w, result)
	}

	ks, err := m.keystore(network, true)
	if nil != err {
		return err
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptNewPassword()
		if nil != err {
			return err
		}
	}
	if err := ks.Add(name, description, a, password); nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "updating keystore: %s\n", m.config.Keystore)
	}
	if err := ks.Save(m.config.Keystore); nil != err {
		return err
	}
	return printJson(m.w, result)
}
