// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry applies the kitty ledger operations
//
// Every operation runs as a single storage transaction: either all of
// its writes are committed or none are.  Events produced by an
// operation are held back until the commit succeeds, so a rejected
// operation is never announced.
//
// Operations are serialised; queries may run concurrently with each
// other but not with an operation.
package registry
