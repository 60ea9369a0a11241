// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpccalls - client side of the kittyd JSON RPC services
package rpccalls

import (
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/kittyd/rpc/signed"
)

// ErrMissingKey - a mutating call was made without a private key
var ErrMissingKey = errors.New("private key is required for this command")

// Client - to hold RPC connections streams
type Client struct {
	conn       net.Conn
	client     *rpc.Client
	privateKey ed25519.PrivateKey
	testnet    bool
	verbose    bool
	handle     io.Writer // if verbose is set output items here
	now        func() time.Time
}

// NewClient - create a RPC connection to a kittyd
//
// privateKey may be nil when only queries will be made
func NewClient(connect string, privateKey ed25519.PrivateKey, testnet bool, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	return newClient(conn, privateKey, testnet, verbose, handle), nil
}

func newClient(conn net.Conn, privateKey ed25519.PrivateKey, testnet bool, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:       conn,
		client:     jsonrpc.NewClient(conn),
		privateKey: privateKey,
		testnet:    testnet,
		verbose:    verbose,
		handle:     handle,
		now:        time.Now,
	}
}

// Close - shutdown the kittyd connection
func (client *Client) Close() {
	client.client.Close()
	client.conn.Close()
}

// sign a request for method, fields must be in the order the server checks them
func (client *Client) sign(method string, fields ...string) (signed.Request, error) {
	if nil == client.privateKey {
		return signed.Request{}, ErrMissingKey
	}
	return signed.Sign(client.privateKey, client.testnet, client.now(), method, fields...)
}

// call with verbose tracing of both directions
func (client *Client) call(method string, args interface{}, reply interface{}) error {
	client.printJson(method+" Request", args)

	if err := client.client.Call(method, args, reply); nil != err {
		return err
	}

	client.printJson(method+" Reply", reply)
	return nil
}

func (client *Client) printJson(title string, message interface{}) {

	if !client.verbose {
		return
	}

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(client.handle, "%s: %s\n", title, err)
		return
	}

	fmt.Fprintf(client.handle, "%s:\n%s\n", title, b)
}
