// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittyd/command/kitty-cli/rpccalls"
)

func runGenerate(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	keyPair, err := makeKeyPair(m.testnet)
	if nil != err {
		return err
	}
	return printJson(m.w, keyPair)
}

func runCreate(c *cli.Context) error {
	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.Create()
	})
}

func runSetPrice(c *cli.Context) error {
	id, err := parseIdentifier(c.String("id"))
	if nil != err {
		return err
	}
	price := c.Uint64("price")

	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		if m.verbose {
			fmt.Fprintf(m.e, "kitty: %s\n", id)
			fmt.Fprintf(m.e, "price: %d\n", price)
		}
		return client.SetPrice(id, price)
	})
}

func runTransfer(c *cli.Context) error {
	id, err := parseIdentifier(c.String("id"))
	if nil != err {
		return err
	}
	receiver := c.String("receiver")
	if "" == receiver {
		return fmt.Errorf("missing receiver")
	}

	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		to, err := accountOrKey(m, receiver)
		if nil != err {
			return nil, err
		}
		return client.Transfer(id, to)
	})
}

func runBuy(c *cli.Context) error {
	id, err := parseIdentifier(c.String("id"))
	if nil != err {
		return err
	}
	maxPrice := c.Uint64("max-price")
	if 0 == maxPrice {
		return fmt.Errorf("missing max-price")
	}

	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.Buy(id, maxPrice)
	})
}

func runBreed(c *cli.Context) error {
	a, err := parseIdentifier(c.String("parent-a"))
	if nil != err {
		return err
	}
	b, err := parseIdentifier(c.String("parent-b"))
	if nil != err {
		return err
	}

	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.Breed(a, b)
	})
}

func runGet(c *cli.Context) error {
	id, err := parseIdentifier(c.String("id"))
	if nil != err {
		return err
	}

	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.Get(id)
	})
}

func runList(c *cli.Context) error {
	start := c.Uint64("start")
	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.List(start, count)
	})
}

func runOwned(c *cli.Context) error {
	start := c.Uint64("start")
	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}
	owner := c.String("owner")

	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		a, err := accountOrKey(m, owner)
		if nil != err {
			return nil, err
		}
		if m.verbose {
			fmt.Fprintf(m.e, "owner: %s\n", a)
			fmt.Fprintf(m.e, "start: %d\n", start)
			fmt.Fprintf(m.e, "count: %d\n", count)
		}
		return client.Owned(a, start, count)
	})
}

func runBalance(c *cli.Context) error {
	name := c.String("account")

	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		a, err := accountOrKey(m, name)
		if nil != err {
			return nil, err
		}
		return client.Balance(a)
	})
}

func runInfo(c *cli.Context) error {
	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.Info()
	})
}

// connect, run one call and print its reply
func withClient(c *cli.Context, f func(*metadata, *rpccalls.Client) (interface{}, error)) error {
	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.privateKey, m.testnet, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := f(m, client)
	if nil != err {
		return err
	}
	return printJson(m.w, response)
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
