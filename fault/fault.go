// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorisationError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrCertificateFileExists = ExistsError("certificate file already exists")
	ErrCorruptRecord         = RecordError("corrupt record")
	ErrDatabaseIsNewer       = InvalidError("database version is newer than this program supports")
	ErrIdentifierOverflow    = ProcessError("lot identifier space is exhausted")
	ErrIdentityTooLong       = LengthError("identity is too long")
	ErrIdentityTooShort      = LengthError("identity is too short")
	ErrInvalidChecksum       = InvalidError("checksum mismatch")
	ErrInvalidCount          = InvalidError("invalid count")
	ErrInvalidCursor         = InvalidError("invalid cursor")
	ErrInvalidDatabaseName   = InvalidError("invalid database name")
	ErrInvalidIdentity       = InvalidError("invalid identity")
	ErrInvalidIPAddress      = InvalidError("invalid IP address")
	ErrInvalidPortNumber     = InvalidError("invalid port number")
	ErrInvalidRegion         = InvalidError("invalid region")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrKeyFileExists         = ExistsError("key file already exists")
	ErrLotNotFound           = NotFoundError("lot not found")
	ErrMissingIdentity       = InvalidError("missing identity")
	ErrMissingParameters     = InvalidError("missing parameters")
	ErrNotAvailable          = ProcessError("not available in current mode")
	ErrNotInitialised        = NotFoundError("not initialised")
	ErrRateLimiting          = InvalidError("rate limit exceeded")
	ErrRecordTooLarge        = LengthError("record exceeds maximum size")
	ErrRegionMismatch        = RecordError("region table does not match declared regions")
	ErrUnauthorised          = AuthorisationError("caller is not registered")
	ErrUnknownRecordTag      = RecordError("unknown record tag")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorisationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LengthError) Error() string        { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e RecordError) Error() string        { return string(e) }

// determine the class of an error
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool        { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool        { _, ok := e.(RecordError); return ok }
