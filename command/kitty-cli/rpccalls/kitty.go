// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"strconv"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/identifier"
	"github.com/bitmark-inc/kittyd/rpc/kitty"
)

// Create - mint a kitty to the client's account
func (client *Client) Create() (*kitty.KittyReply, error) {
	request, err := client.sign("Kitty.Create")
	if nil != err {
		return nil, err
	}

	reply := &kitty.KittyReply{}
	err = client.call("Kitty.Create", kitty.CreateArguments{Request: request}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// SetPrice - list or withdraw a kitty
func (client *Client) SetPrice(id identifier.Identifier, price uint64) (*kitty.OperationReply, error) {
	request, err := client.sign("Kitty.SetPrice", id.String(), strconv.FormatUint(price, 10))
	if nil != err {
		return nil, err
	}

	args := kitty.SetPriceArguments{
		Request: request,
		Id:      id,
		Price:   price,
	}
	reply := &kitty.OperationReply{}
	err = client.call("Kitty.SetPrice", args, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Transfer - give a kitty away
func (client *Client) Transfer(id identifier.Identifier, to *account.Account) (*kitty.OperationReply, error) {
	request, err := client.sign("Kitty.Transfer", id.String(), to.String())
	if nil != err {
		return nil, err
	}

	args := kitty.TransferArguments{
		Request: request,
		Id:      id,
		To:      to,
	}
	reply := &kitty.OperationReply{}
	err = client.call("Kitty.Transfer", args, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Buy - purchase a kitty paying at most maxPrice
func (client *Client) Buy(id identifier.Identifier, maxPrice uint64) (*kitty.OperationReply, error) {
	request, err := client.sign("Kitty.Buy", id.String(), strconv.FormatUint(maxPrice, 10))
	if nil != err {
		return nil, err
	}

	args := kitty.BuyArguments{
		Request:  request,
		Id:       id,
		MaxPrice: maxPrice,
	}
	reply := &kitty.OperationReply{}
	err = client.call("Kitty.Buy", args, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Breed - mint a child of two kitties
func (client *Client) Breed(parentA identifier.Identifier, parentB identifier.Identifier) (*kitty.KittyReply, error) {
	request, err := client.sign("Kitty.Breed", parentA.String(), parentB.String())
	if nil != err {
		return nil, err
	}

	args := kitty.BreedArguments{
		Request: request,
		ParentA: parentA,
		ParentB: parentB,
	}
	reply := &kitty.KittyReply{}
	err = client.call("Kitty.Breed", args, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Get - one kitty
func (client *Client) Get(id identifier.Identifier) (*kitty.KittyReply, error) {
	reply := &kitty.KittyReply{}
	err := client.call("Kitty.Get", kitty.GetArguments{Id: id}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// List - a page of all kitties in minting order
func (client *Client) List(start uint64, count int) (*kitty.ListReply, error) {
	reply := &kitty.ListReply{}
	err := client.call("Kitty.List", kitty.ListArguments{Start: start, Count: count}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}
