// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lotrecord

import (
	"encoding/binary"

	"github.com/coffeechain/lotledgerd/fault"
	"github.com/coffeechain/lotledgerd/identity"
)

// Record - generic record, must cast to the correct type
type Record interface{}

// Packed - packed record
type Packed []byte

// TagType - type code for records
type TagType uint64

// enumerate the possible record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	LotTag          = TagType(iota)
	UpdateTag       = TagType(iota)
	RegistrationTag = TagType(iota)

	// this item must be last
	InvalidTag = TagType(iota)
)

// limits and defaults
const (
	MaxRecordSize = 1024
	InitialStatus = "Harvested"
	lotKeyLength  = 8
)

// Update - one entry in the audit trail of a lot
type Update struct {
	Status    string             `json:"status"`
	Details   string             `json:"details"`
	Timestamp uint64             `json:"timestamp"`
	UpdatedBy *identity.Identity `json:"updated_by"`
}

// CoffeeLot - a tracked lot together with all of its updates
type CoffeeLot struct {
	Id          uint64   `json:"id"`
	Farmer      string   `json:"farmer"`
	HarvestDate string   `json:"harvest_date"`
	Location    string   `json:"location"`
	Status      string   `json:"status"`
	Updates     []Update `json:"updates"`
	Timestamp   uint64   `json:"timestamp"`
}

// Registration - membership flag of the registered user set
type Registration struct {
	Registered bool `json:"registered"`
}

// RecordName - the name of a record for display
func RecordName(record Record) (string, bool) {
	switch record.(type) {
	case *CoffeeLot, CoffeeLot:
		return "CoffeeLot", true
	case *Update, Update:
		return "Update", true
	case *Registration, Registration:
		return "Registration", true
	default:
		return "*unknown*", false
	}
}

// LotKey - storage key for a lot id
//
// big endian so that key order is numeric order
func LotKey(id uint64) []byte {
	key := make([]byte, lotKeyLength)
	binary.BigEndian.PutUint64(key, id)
	return key
}

// LotIdFromKey - recover the lot id from a storage key
func LotIdFromKey(key []byte) (uint64, error) {
	if lotKeyLength != len(key) {
		return 0, fault.ErrCorruptRecord
	}
	return binary.BigEndian.Uint64(key), nil
}
