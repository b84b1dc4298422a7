// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/coffeechain/lotledgerd/fault"
)

// size limits
const (
	MinimumLength  = 1
	MaximumLength  = 64
	checksumLength = 4
)

// Identity - the caller of a ledger operation
type Identity struct {
	data []byte
}

// New - create an identity from its raw bytes
//
// the bytes are copied
func New(data []byte) (*Identity, error) {
	if len(data) < MinimumLength {
		return nil, fault.ErrIdentityTooShort
	}
	if len(data) > MaximumLength {
		return nil, fault.ErrIdentityTooLong
	}
	d := make([]byte, len(data))
	copy(d, data)
	return &Identity{data: d}, nil
}

// FromBase58 - decode the text form of an identity
func FromBase58(s string) (*Identity, error) {
	decoded, err := base58.Decode(s)
	if nil != err {
		return nil, fault.ErrInvalidIdentity
	}
	if len(decoded) <= checksumLength {
		return nil, fault.ErrIdentityTooShort
	}

	n := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:n])
	if !bytes.Equal(checksum[:checksumLength], decoded[n:]) {
		return nil, fault.ErrInvalidChecksum
	}
	return New(decoded[:n])
}

// Bytes - a copy of the raw identity
func (identity *Identity) Bytes() []byte {
	d := make([]byte, len(identity.data))
	copy(d, identity.data)
	return d
}

// Equal - compare two identities
func (identity *Identity) Equal(other *Identity) bool {
	if nil == identity || nil == other {
		return identity == other
	}
	return bytes.Equal(identity.data, other.data)
}

// String - base58 text form with checksum
func (identity Identity) String() string {
	checksum := sha3.Sum256(identity.data)
	buffer := make([]byte, 0, len(identity.data)+checksumLength)
	buffer = append(buffer, identity.data...)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// GoString - for %#v
func (identity Identity) GoString() string {
	return "<identity:" + identity.String() + ">"
}

// MarshalText - convert identity to base58 for JSON
func (identity Identity) MarshalText() ([]byte, error) {
	return []byte(identity.String()), nil
}

// UnmarshalText - convert base58 text to an identity
func (identity *Identity) UnmarshalText(s []byte) error {
	i, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	identity.data = i.data
	return nil
}
