// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LimitError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type UnauthorisedError GenericError

// common errors - keep in alphabetic order
var (
	BalanceOverflow         = LimitError("balance would overflow")
	CannotDecodeAccount     = InvalidError("cannot decode account")
	CertificateFileExists   = ExistsError("certificate file already exists")
	ChecksumMismatch        = InvalidError("checksum mismatch")
	CorruptRecord           = ProcessError("stored record is corrupt")
	DatabaseIsNewer         = ProcessError("database version is newer than this program")
	GenerationOverflow      = LimitError("generation would overflow")
	GlobalCountOverflow     = LimitError("total kitty count would overflow")
	IdentifierCollision     = ExistsError("kitty identifier already exists")
	IdentifierLength        = InvalidError("identifier length is invalid")
	InsufficientFunds       = ProcessError("insufficient funds")
	InvalidAmount           = InvalidError("invalid amount")
	InvalidCount            = InvalidError("invalid count")
	InvalidCursor           = InvalidError("invalid cursor")
	InvalidDNALength        = InvalidError("dna length is invalid")
	InvalidIpAddress        = InvalidError("invalid IP address")
	InvalidKeyLength        = InvalidError("invalid key length")
	InvalidKeyType          = InvalidError("invalid key type")
	InvalidSignature        = UnauthorisedError("invalid signature")
	InvalidTimestamp        = InvalidError("request timestamp outside allowed window")
	KeyFileExists           = ExistsError("key file already exists")
	KittyNotFound           = NotFoundError("kitty does not exist")
	MissingCaller           = UnauthorisedError("request is not signed")
	MissingParameters       = InvalidError("missing parameters")
	NonceOverflow           = LimitError("nonce would overflow")
	NotForSale              = InvalidError("kitty is not for sale")
	NotInitialised          = NotFoundError("not initialised")
	NotOwner                = UnauthorisedError("caller does not own this kitty")
	NotPublicKey            = InvalidError("not a public key")
	OwnedCountOverflow      = LimitError("owned kitty count would overflow")
	OwnedCountUnderflow     = LimitError("no kitty available to transfer from this account")
	OwnerNotFound           = NotFoundError("no owner for this kitty")
	PriceAboveCeiling       = InvalidError("kitty costs more than the price offered")
	RateLimiting            = InvalidError("rate limiting")
	RecordTruncated         = ProcessError("stored record is truncated")
	ReplayedRequest         = UnauthorisedError("request has already been used")
	SameBuyerAndOwner       = InvalidError("cannot buy your own kitty")
	TransactionAlreadyInUse = ProcessError("transaction already in use")
	TransactionNotInUse     = ProcessError("transaction not in use")
	ZeroAccount             = InvalidError("account is empty")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string       { return string(e) }
func (e InvalidError) Error() string      { return string(e) }
func (e LimitError) Error() string        { return string(e) }
func (e NotFoundError) Error() string     { return string(e) }
func (e ProcessError) Error() string      { return string(e) }
func (e UnauthorisedError) Error() string { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool       { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool      { _, ok := e.(InvalidError); return ok }
func IsErrLimit(e error) bool        { _, ok := e.(LimitError); return ok }
func IsErrNotFound(e error) bool     { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool      { _, ok := e.(ProcessError); return ok }
func IsErrUnauthorised(e error) bool { _, ok := e.(UnauthorisedError); return ok }
