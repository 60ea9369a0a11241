// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish broadcasts committed ledger events on ZeroMQ PUB
// sockets
//
// each message is two frames: the event kind followed by the JSON
// encoded event
package publish

import (
	"strings"
	"sync"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/kittyd/background"
	"github.com/bitmark-inc/kittyd/event"
	"github.com/bitmark-inc/kittyd/fault"
)

const queueSize = 1000

// Configuration - a block of configuration data
type Configuration struct {
	Broadcast []string `gluamapper:"broadcast" json:"broadcast"`
}

// Publisher - an event sink that broadcasts
type Publisher struct {
	sync.Mutex

	log        *logger.L
	sockets    []*zmq.Socket
	queue      chan event.Event
	background *background.T
}

// New - bind the broadcast addresses and start sending
//
// addresses are HOST:PORT, "*:PORT" binds all interfaces
func New(configuration *Configuration) (*Publisher, error) {
	log := logger.New("publish")
	log.Info("starting…")

	if 0 == len(configuration.Broadcast) {
		log.Error("no broadcast addresses")
		return nil, fault.MissingParameters
	}

	p := &Publisher{
		log:   log,
		queue: make(chan event.Event, queueSize),
	}

	for i, address := range configuration.Broadcast {
		socket, err := bind(address)
		if nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %s", i, address, err)
			p.close()
			return nil, err
		}
		log.Infof("bind[%d]: %q", i, address)
		p.sockets = append(p.sockets, socket)
	}

	p.background = background.Start(background.Processes{p}, nil)
	return p, nil
}

func bind(address string) (*zmq.Socket, error) {
	socket, err := zmq.NewSocket(zmq.PUB)
	if nil != err {
		return nil, err
	}
	_ = socket.SetLinger(0)
	_ = socket.SetIpv6(strings.HasPrefix(address, "[") || strings.HasPrefix(address, "*"))

	if err := socket.Bind("tcp://" + address); nil != err {
		socket.Close()
		return nil, err
	}
	return socket, nil
}

// Notify - queue an event without blocking, implements event.Sink
func (p *Publisher) Notify(e event.Event) {
	select {
	case p.queue <- e:
	default:
		p.log.Warnf("queue full, dropped: %s  kitty: %s", e.Kind, e.KittyId)
	}
}

// Stop - stop sending and close the sockets
func (p *Publisher) Stop() {
	p.Lock()
	defer p.Unlock()

	if nil == p.background {
		return
	}
	p.log.Info("shutting down…")
	p.background.Stop()
	p.background = nil
	p.close()
	p.log.Info("finished")
}

func (p *Publisher) close() {
	for _, socket := range p.sockets {
		socket.Close()
	}
	p.sockets = nil
}
