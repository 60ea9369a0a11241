// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
	"golang.org/x/crypto/ed25519"
)

type metadata struct {
	connect    string
	privateKey ed25519.PrivateKey
	testnet    bool
	verbose    bool
	e          io.Writer
	w          io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	if err := app.Run(os.Args); nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "kitty-cli"
	app.Usage = "client for the kittyd ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	idFlag := cli.StringFlag{
		Name:  "id, i",
		Value: "",
		Usage: "*kitty identifier `HEX`",
	}
	startFlag := cli.Uint64Flag{
		Name:  "start, s",
		Value: 0,
		Usage: " first position to output `NUMBER`",
	}
	countFlag := cli.IntFlag{
		Name:  "count, c",
		Value: 20,
		Usage: " maximum records to output `COUNT`",
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, C",
			Value:  "127.0.0.1:2130",
			Usage:  " kittyd RPC `HOST:PORT`",
			EnvVar: "KITTYD_CONNECT",
		},
		cli.StringFlag{
			Name:   "key, k",
			Value:  "",
			Usage:  " hex ed25519 private key or seed `KEY`, required to sign",
			EnvVar: "KITTY_KEY",
		},
		cli.BoolFlag{
			Name:  "testnet, t",
			Usage: " use test network accounts",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "generate",
			Usage:  "generate key pair, prints the private key and account",
			Action: runGenerate,
		},
		{
			Name:   "create",
			Usage:  "mint a new kitty to the key's account",
			Action: runCreate,
		},
		{
			Name:      "set-price",
			Usage:     "offer a kitty for sale, zero withdraws it",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
				cli.Uint64Flag{
					Name:  "price, p",
					Value: 0,
					Usage: " asking price `AMOUNT`",
				},
			},
			Action: runSetPrice,
		},
		{
			Name:      "transfer",
			Usage:     "give a kitty to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*account to receive the kitty `ACCOUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "buy",
			Usage:     "buy a kitty that is for sale",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				idFlag,
				cli.Uint64Flag{
					Name:  "max-price, m",
					Value: 0,
					Usage: "*most that will be paid `AMOUNT`",
				},
			},
			Action: runBuy,
		},
		{
			Name:      "breed",
			Usage:     "mint the offspring of two kitties",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "parent-a, a",
					Value: "",
					Usage: "*first parent `HEX`",
				},
				cli.StringFlag{
					Name:  "parent-b, b",
					Value: "",
					Usage: "*second parent `HEX`",
				},
			},
			Action: runBreed,
		},
		{
			Name:      "get",
			Usage:     "display a kitty with its owner",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{idFlag},
			Action:    runGet,
		},
		{
			Name:   "list",
			Usage:  "list all kitties in minting order",
			Flags:  []cli.Flag{startFlag, countFlag},
			Action: runList,
		},
		{
			Name:  "owned",
			Usage: "list kitties held by an account",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " `ACCOUNT` default is the key's account",
				},
				startFlag,
				countFlag,
			},
			Action: runOwned,
		},
		{
			Name:  "balance",
			Usage: "display the balance of an account",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " `ACCOUNT` default is the key's account",
				},
			},
			Action: runBalance,
		},
		{
			Name:   "info",
			Usage:  "display kittyd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display kitty-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		m := &metadata{
			connect: c.GlobalString("connect"),
			testnet: c.GlobalBool("testnet"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}

		if key := c.GlobalString("key"); "" != key {
			privateKey, err := parsePrivateKey(key)
			if nil != err {
				return err
			}
			m.privateKey = privateKey
		}

		if m.verbose {
			fmt.Fprintf(m.e, "connect: %s\n", m.connect)
			fmt.Fprintf(m.e, "testnet: %t\n", m.testnet)
		}

		c.App.Metadata["config"] = m
		return nil
	}

	return app
}
