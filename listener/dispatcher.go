// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listener

import (
	"sync"
	"sync/atomic"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/chain"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/mapping"
	"github.com/bitmark-inc/symbol-sdk-go/merkle"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
)

// Message - one decoded notification, only the field matching the
// channel is set
type Message struct {
	Channel     Channel
	Address     *account.Address
	Transaction *transaction.Transaction
	Hash        *merkle.Digest
	Cosignature *transaction.CosignatureSigned
	Status      *StatusError
	Block       *BlockInfo
	Finalized   *Finalization
}

// Handler - called for each message of a channel
type Handler func(m Message)

// Stats - message counts of a dispatcher
type Stats struct {
	Dispatched uint64
	Unhandled  uint64
	Failed     uint64
}

// Dispatcher - route node notifications to handlers
//
// Dispatch may be called from the connection's read loop while
// handlers are being registered
type Dispatcher struct {
	sync.RWMutex
	log      *logger.L
	network  chain.NetworkType
	handlers map[Channel]Handler

	dispatched uint64
	unhandled  uint64
	failed     uint64
}

// NewDispatcher - dispatcher for notifications of one network
func NewDispatcher(network chain.NetworkType) *Dispatcher {
	return &Dispatcher{
		log:      logger.New("listener"),
		network:  network,
		handlers: make(map[Channel]Handler),
	}
}

// Handle - set the handler of a channel, nil removes it
func (d *Dispatcher) Handle(channel Channel, h Handler) error {
	if !channel.Valid() {
		return fault.ErrInvalidChannel
	}
	d.Lock()
	defer d.Unlock()
	if nil == h {
		delete(d.handlers, channel)
	} else {
		d.handlers[channel] = h
	}
	return nil
}

// OnTransaction - handler for one of the transaction channels
func (d *Dispatcher) OnTransaction(channel Channel, f func(tx *transaction.Transaction)) error {
	if transactionPayload != channels[channel].payload || !channel.Valid() {
		return fault.ErrInvalidChannel
	}
	return d.Handle(channel, func(m Message) { f(m.Transaction) })
}

// OnRemoved - handler for the unconfirmed or partial removal channels
func (d *Dispatcher) OnRemoved(channel Channel, f func(hash merkle.Digest)) error {
	if hashPayload != channels[channel].payload || !channel.Valid() {
		return fault.ErrInvalidChannel
	}
	return d.Handle(channel, func(m Message) { f(*m.Hash) })
}

// OnCosignature - handler for added cosignatures
func (d *Dispatcher) OnCosignature(f func(c transaction.CosignatureSigned)) error {
	return d.Handle(Cosignature, func(m Message) { f(*m.Cosignature) })
}

// OnStatus - handler for rejected transactions
func (d *Dispatcher) OnStatus(f func(s StatusError)) error {
	return d.Handle(Status, func(m Message) { f(*m.Status) })
}

// OnBlock - handler for new blocks
func (d *Dispatcher) OnBlock(f func(b BlockInfo)) error {
	return d.Handle(Block, func(m Message) { f(*m.Block) })
}

// OnFinalizedBlock - handler for finalization
func (d *Dispatcher) OnFinalizedBlock(f func(b Finalization)) error {
	return d.Handle(FinalizedBlock, func(m Message) { f(*m.Finalized) })
}

// Stats - counts since creation
func (d *Dispatcher) Stats() Stats {
	return Stats{
		Dispatched: atomic.LoadUint64(&d.dispatched),
		Unhandled:  atomic.LoadUint64(&d.unhandled),
		Failed:     atomic.LoadUint64(&d.failed),
	}
}

// Dispatch - decode a pushed message and call the handler of its
// channel, a message without a handler is counted and dropped
//
// messages are either {topic, data} or, from older nodes, the bare
// data whose shape identifies the channel
func (d *Dispatcher) Dispatch(data []byte) (Message, error) {
	m, err := d.decode(data)
	if nil != err {
		atomic.AddUint64(&d.failed, 1)
		d.log.Warnf("dispatch: %s", err)
		return Message{}, err
	}

	d.RLock()
	h, ok := d.handlers[m.Channel]
	d.RUnlock()

	if !ok {
		atomic.AddUint64(&d.unhandled, 1)
		d.log.Debugf("no handler for: %s", m.Channel)
		return m, nil
	}
	atomic.AddUint64(&d.dispatched, 1)
	h(m)
	return m, nil
}

func (d *Dispatcher) decode(data []byte) (Message, error) {
	n, err := mapping.Parse(data)
	if nil != err {
		return Message{}, err
	}
	if _, err := n.Object(); nil != err {
		return Message{}, err
	}

	if !n.Has("topic") {
		return d.decodeLegacy(n)
	}

	topic, err := n.Get("topic").Text()
	if nil != err {
		return Message{}, err
	}
	channel, address, err := ParseTopic(topic)
	if nil != err {
		return Message{}, n.Get("topic").Fail(err)
	}
	m := Message{
		Channel: channel,
		Address: address,
	}
	return m, d.decodeData(&m, n.Get("data"))
}

func (d *Dispatcher) decodeData(m *Message, n mapping.Node) error {
	var err error
	switch channels[m.Channel].payload {
	case transactionPayload:
		m.Transaction, err = mapTransaction(n, m.Channel)

	case hashPayload:
		var hash merkle.Digest
		hash, err = n.Get("meta").Get("hash").Digest()
		m.Hash = &hash

	case cosignaturePayload:
		var c transaction.CosignatureSigned
		c, err = mapping.MapCosignature(n, d.network)
		m.Cosignature = &c

	case statusPayload:
		m.Status, err = mapStatus(n, m.Address)

	case blockPayload:
		m.Block, err = mapBlock(n)

	case finalizedPayload:
		m.Finalized, err = mapFinalized(n)
	}
	return err
}

// older nodes send the data alone, with the channel of transactions
// and removals in meta.channelName
func (d *Dispatcher) decodeLegacy(n mapping.Node) (Message, error) {
	m := Message{}
	switch {
	case n.Has("transaction"), n.Has("meta") && !n.Has("block"):
		name, err := n.Get("meta").Get("channelName").Text()
		if nil != err {
			return m, err
		}
		m.Channel = legacyChannel(name)
		if !m.Channel.Valid() {
			return m, n.Get("meta").Get("channelName").Fail(fault.ErrInvalidChannel)
		}
		p := channels[m.Channel].payload
		if transactionPayload != p && hashPayload != p {
			return m, n.Get("meta").Get("channelName").Fail(fault.ErrInvalidChannel)
		}

	case n.Has("block"):
		m.Channel = Block

	case n.Has("code"):
		m.Channel = Status
		a, err := n.Get("address").Address()
		if nil != err {
			return m, err
		}
		m.Address = &a

	case n.Has("parentHash"):
		m.Channel = Cosignature

	default:
		return m, n.Fail(fault.ErrInvalidChannel)
	}
	return m, d.decodeData(&m, n)
}

// channel names of older nodes
func legacyChannel(name string) Channel {
	switch name {
	case "aggregateBondedAdded":
		return PartialAdded
	case "aggregateBondedRemoved":
		return PartialRemoved
	}
	return Channel(name)
}
