// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/listener"
	"github.com/bitmark-inc/symbol-sdk-go/merkle"
	"github.com/bitmark-inc/symbol-sdk-go/storage"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
)

// largest frame accepted from the input
const maxFrameSize = 1 << 20

type listenEvent struct {
	Channel string `json:"channel"`
	Address string `json:"address,omitempty"`
	Hash    string `json:"hash,omitempty"`
	Type    string `json:"type,omitempty"`
	Height  uint64 `json:"height,omitempty"`
	Signer  string `json:"signerPublicKey,omitempty"`
	Status  string `json:"status,omitempty"`
	Stored  bool   `json:"stored,omitempty"`
}

// frames are read one per line, as written by a websocket client such
// as websocat; subscribe requests are written to the output once the
// handshake frame has been seen
func runListen(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	// the dispatcher logs
	if _, err := m.requireConfig(); nil != err {
		return err
	}

	network, err := m.networkType(c)
	if nil != err {
		return err
	}

	var address *account.Address
	if s := c.String("address"); "" != s {
		a, err := m.recipient(c, network, s)
		if nil != err {
			return err
		}
		address = &a
	}

	topics := make([]string, 0)
	for _, name := range c.StringSlice("channel") {
		topic, err := listener.Topic(listener.Channel(name), address)
		if nil != err {
			return fmt.Errorf("channel: %q: %s", name, err)
		}
		topics = append(topics, topic)
	}

	store := c.Bool("store")
	if store {
		if err := m.openStorage(storage.ReadWrite); nil != err {
			return err
		}
		defer storage.Finalise()
	}

	d := listener.NewDispatcher(network)
	if err := registerHandlers(d, m, store); nil != err {
		return err
	}

	var in io.Reader = os.Stdin
	if name := c.String("file"); "" != name && "-" != name {
		f, err := os.Open(name)
		if nil != err {
			return err
		}
		defer f.Close()
		in = f
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxFrameSize)

	uid := ""
	for scanner.Scan() {
		frame := strings.TrimSpace(scanner.Text())
		if "" == frame {
			continue
		}

		if "" == uid {
			if id, err := listener.ParseHandshake([]byte(frame)); nil == err && "" != id {
				uid = id
				for _, topic := range topics {
					request, err := listener.SubscribeMessage(uid, topic)
					if nil != err {
						return err
					}
					fmt.Fprintf(m.w, "%s\n", request)
				}
				continue
			}
		}

		if _, err := d.Dispatch([]byte(frame)); nil != err {
			fmt.Fprintf(m.e, "frame error: %s\n", err)
		}
	}
	if err := scanner.Err(); nil != err {
		return err
	}

	if m.verbose {
		s := d.Stats()
		fmt.Fprintf(m.e, "dispatched: %d  unhandled: %d  failed: %d\n", s.Dispatched, s.Unhandled, s.Failed)
	}
	return nil
}

func registerHandlers(d *listener.Dispatcher, m *metadata, store bool) error {

	emit := func(e listenEvent) {
		printJson(m.w, e)
	}

	for _, channel := range []listener.Channel{listener.ConfirmedAdded, listener.UnconfirmedAdded, listener.PartialAdded} {
		channel := channel
		err := d.OnTransaction(channel, func(tx *transaction.Transaction) {
			e := listenEvent{
				Channel: channel.String(),
				Type:    tx.Type.String(),
			}
			if nil != tx.Info && nil != tx.Info.Hash {
				e.Hash = tx.Info.Hash.String()
			}
			if nil != tx.Signer {
				e.Signer = tx.Signer.PublicKey.String()
			}
			if store && listener.PartialAdded == channel {
				if err := storePartial(tx); nil != err {
					fmt.Fprintf(m.e, "store partial: %s\n", err)
				} else {
					e.Stored = true
				}
			}
			emit(e)
		})
		if nil != err {
			return err
		}
	}

	for _, channel := range []listener.Channel{listener.UnconfirmedRemoved, listener.PartialRemoved} {
		channel := channel
		err := d.OnRemoved(channel, func(hash merkle.Digest) {
			emit(listenEvent{
				Channel: channel.String(),
				Hash:    hash.String(),
			})
		})
		if nil != err {
			return err
		}
	}

	err := d.OnCosignature(func(cosignature transaction.CosignatureSigned) {
		e := listenEvent{
			Channel: listener.Cosignature.String(),
			Hash:    cosignature.ParentHash.String(),
			Signer:  cosignature.Signer.PublicKey.String(),
		}
		if store {
			if err := storage.AddCosignature(cosignature); nil != err {
				fmt.Fprintf(m.e, "store cosignature: %s\n", err)
			} else {
				e.Stored = true
			}
		}
		emit(e)
	})
	if nil != err {
		return err
	}

	err = d.OnStatus(func(s listener.StatusError) {
		e := listenEvent{
			Channel: listener.Status.String(),
			Hash:    s.Hash.String(),
			Status:  s.Code,
		}
		if nil != s.Address {
			e.Address = s.Address.Plain()
		}
		emit(e)
	})
	if nil != err {
		return err
	}

	err = d.OnBlock(func(b listener.BlockInfo) {
		emit(listenEvent{
			Channel: listener.Block.String(),
			Hash:    b.Hash.String(),
			Height:  b.Height,
			Signer:  b.Signer.PublicKey.String(),
		})
	})
	if nil != err {
		return err
	}

	return d.OnFinalizedBlock(func(b listener.Finalization) {
		emit(listenEvent{
			Channel: listener.FinalizedBlock.String(),
			Hash:    b.Hash.String(),
			Height:  b.Height,
		})
	})
}

// a partial pushed by the node, kept under the hash the node reported
func storePartial(tx *transaction.Transaction) error {
	if nil == tx.Info || nil == tx.Info.Hash || !tx.IsSigned() {
		return fault.ErrUnsigned
	}
	payload, err := serializer.Serialize(tx)
	if nil != err {
		return err
	}
	return storage.StorePartial(&transaction.Signed{
		Signer:  *tx.Signer,
		Payload: payload,
		Hash:    *tx.Info.Hash,
		Type:    tx.Type,
		Network: tx.Network,
	})
}
