// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"github.com/bitmark-inc/logger"
)

// LogSink - writes every notification to a log channel
type LogSink struct {
	log *logger.L
}

// NewLogSink - sink logging on the "events" channel
func NewLogSink() *LogSink {
	return &LogSink{
		log: logger.New("events"),
	}
}

// Notify - implements Sink
func (s *LogSink) Notify(e Event) {
	switch e.Kind {
	case Created:
		s.log.Infof("%s: owner: %s  kitty: %s", e.Kind, e.Owner, e.KittyId)
	case PriceSet:
		s.log.Infof("%s: owner: %s  kitty: %s  price: %d", e.Kind, e.Owner, e.KittyId, e.Price)
	case Transferred:
		s.log.Infof("%s: from: %s  to: %s  kitty: %s", e.Kind, e.From, e.To, e.KittyId)
	case Bought:
		s.log.Infof("%s: buyer: %s  seller: %s  kitty: %s  price: %d", e.Kind, e.To, e.From, e.KittyId, e.Price)
	default:
		s.log.Warnf("unknown event: %+v", e)
	}
}

// Multi - fan out to several sinks in order
type Multi []Sink

// Notify - implements Sink
func (m Multi) Notify(e Event) {
	for _, s := range m {
		s.Notify(e)
	}
}

// Discard - drops every notification
type Discard struct{}

// Notify - implements Sink
func (Discard) Notify(Event) {}
