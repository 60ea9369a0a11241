// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background starts and stops long running goroutines
package background

import (
	"sync"
)

// Process - a background task that runs until shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start together
type Processes []Process

// T - handle for a started set of processes
type T struct {
	sync.Mutex
	shutdown []chan struct{}
	finished sync.WaitGroup
	stopped  bool
}

// Start - run each process in its own goroutine
func Start(processes Processes, args interface{}) *T {
	t := &T{
		shutdown: make([]chan struct{}, len(processes)),
	}

	t.finished.Add(len(processes))
	for i, p := range processes {
		shutdown := make(chan struct{})
		t.shutdown[i] = shutdown
		go func(p Process) {
			defer t.finished.Done()
			p.Run(args, shutdown)
		}(p)
	}
	return t
}

// Stop - signal every process and wait for all to return
//
// only the first call has any effect
func (t *T) Stop() {
	t.Lock()
	if t.stopped {
		t.Unlock()
		return
	}
	t.stopped = true
	for _, shutdown := range t.shutdown {
		close(shutdown)
	}
	t.Unlock()

	t.finished.Wait()
}
