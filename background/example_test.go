// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"fmt"

	"github.com/bitmark-inc/kittyd/background"
)

type theState struct {
	count int
}

func (state *theState) Run(args interface{}, shutdown <-chan struct{}) {
	fmt.Printf("initialise\n")
	<-shutdown
	fmt.Printf("finalise\n")
}

func Example() {
	processes := background.Processes{
		&theState{},
	}

	p := background.Start(processes, nil)
	p.Stop()
	// Output:
	// initialise
	// finalise
}
