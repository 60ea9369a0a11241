// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/background"
)

type counting struct {
	ticks    int64
	finished int64
	args     interface{}
}

func (c *counting) Run(args interface{}, shutdown <-chan struct{}) {
	c.args = args
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(time.Millisecond):
			atomic.AddInt64(&c.ticks, 1)
		}
	}
	atomic.StoreInt64(&c.finished, 1)
}

func TestStartStop(t *testing.T) {
	proc1 := &counting{}
	proc2 := &counting{}

	p := background.Start(background.Processes{proc1, proc2}, "arguments")
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	for i, proc := range []*counting{proc1, proc2} {
		assert.Equal(t, int64(1), atomic.LoadInt64(&proc.finished), "process %d did not finish", i)
		assert.True(t, atomic.LoadInt64(&proc.ticks) > 0, "process %d did not run", i)
		assert.Equal(t, "arguments", proc.args, "process %d wrong args", i)
	}

	// stopped processes do not run again
	ticks := atomic.LoadInt64(&proc1.ticks)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, ticks, atomic.LoadInt64(&proc1.ticks), "still running after stop")

	// a second stop is harmless
	p.Stop()
}

func TestEmpty(t *testing.T) {
	p := background.Start(background.Processes{}, nil)
	p.Stop()
}
