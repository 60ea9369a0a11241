// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/kittyd/event"
)

// Run - send queued events until shutdown
func (p *Publisher) Run(args interface{}, shutdown <-chan struct{}) {
	log := p.log

	log.Info("broadcasting…")
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case e := <-p.queue:
			p.send(e)
		}
	}
	log.Info("stopped")
}

func (p *Publisher) send(e event.Event) {
	data, err := json.Marshal(e)
	if nil != err {
		p.log.Errorf("encode: %+v  error: %s", e, err)
		return
	}
	kind := e.Kind.String()

	p.log.Debugf("sending: %s  data: %s", kind, data)
	for _, socket := range p.sockets {
		if _, err := socket.Send(kind, zmq.SNDMORE|zmq.DONTWAIT); nil != err {
			p.log.Warnf("send: %s  error: %s", kind, err)
			continue
		}
		if _, err := socket.SendBytes(data, zmq.DONTWAIT); nil != err {
			p.log.Warnf("send: %s  error: %s", kind, err)
		}
	}
}
