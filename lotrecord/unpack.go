// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lotrecord

import (
	"github.com/coffeechain/lotledgerd/fault"
	"github.com/coffeechain/lotledgerd/identity"
	"github.com/coffeechain/lotledgerd/util"
)

// Unpack - turn a byte slice into a record
//
// must cast result to correct type
//
// e.g.
//   lot, ok := result.(*lotrecord.CoffeeLot)
// or:
//   switch r := result.(type) {
//   case *lotrecord.Update:
//
// also returns the number of bytes consumed so that nested records can
// be decoded in sequence
func (record Packed) Unpack() (r Record, n int, e error) {

	defer func() {
		if x := recover(); nil != x {
			r = nil
			n = 0
			e = fault.ErrCorruptRecord
		}
	}()

	if len(record) > MaxRecordSize {
		return nil, 0, fault.ErrRecordTooLarge
	}

	recordType, n := util.ClippedVarint64(record, 1, 8192)
	if 0 == n {
		return nil, 0, fault.ErrCorruptRecord
	}

	switch TagType(recordType) {

	case UpdateTag:
		update := &Update{}
		n, e = update.unpackFields(record, n)
		if nil != e {
			return nil, 0, e
		}
		return update, n, nil

	case LotTag:
		lot := &CoffeeLot{}

		id, idLength := util.FromVarint64(record[n:])
		if 0 == idLength {
			return nil, 0, fault.ErrCorruptRecord
		}
		n += idLength
		lot.Id = id

		for _, field := range []*string{&lot.Farmer, &lot.HarvestDate, &lot.Location, &lot.Status} {
			s, length := readBytes(record, n)
			if 0 == length {
				return nil, 0, fault.ErrCorruptRecord
			}
			n += length
			*field = string(s)
		}

		timestamp, timestampLength := util.FromVarint64(record[n:])
		if 0 == timestampLength {
			return nil, 0, fault.ErrCorruptRecord
		}
		n += timestampLength
		lot.Timestamp = timestamp

		// every update needs at least a tag byte so the count is bounded by the record size
		count, countLength := util.ClippedVarint64(record[n:], 0, MaxRecordSize)
		if 0 == countLength {
			return nil, 0, fault.ErrCorruptRecord
		}
		n += countLength

		lot.Updates = make([]Update, 0, count)
		for i := 0; i < count; i += 1 {
			u, updateLength, err := record[n:].Unpack()
			if nil != err {
				return nil, 0, fault.ErrCorruptRecord
			}
			update, ok := u.(*Update)
			if !ok {
				return nil, 0, fault.ErrCorruptRecord
			}
			n += updateLength
			lot.Updates = append(lot.Updates, *update)
		}
		return lot, n, nil

	case RegistrationTag:
		flag, flagLength := util.FromVarint64(record[n:])
		if 0 == flagLength || flag > 1 {
			return nil, 0, fault.ErrCorruptRecord
		}
		n += flagLength
		return &Registration{Registered: 1 == flag}, n, nil

	default:
		return nil, 0, fault.ErrUnknownRecordTag
	}
}

func (update *Update) unpackFields(record Packed, n int) (int, error) {
	status, length := readBytes(record, n)
	if 0 == length {
		return 0, fault.ErrCorruptRecord
	}
	n += length
	update.Status = string(status)

	details, length := readBytes(record, n)
	if 0 == length {
		return 0, fault.ErrCorruptRecord
	}
	n += length
	update.Details = string(details)

	timestamp, timestampLength := util.FromVarint64(record[n:])
	if 0 == timestampLength {
		return 0, fault.ErrCorruptRecord
	}
	n += timestampLength
	update.Timestamp = timestamp

	who, length := readBytes(record, n)
	if 0 == length {
		return 0, fault.ErrCorruptRecord
	}
	n += length
	updatedBy, err := identity.New(who)
	if nil != err {
		return 0, fault.ErrCorruptRecord
	}
	update.UpdatedBy = updatedBy

	return n, nil
}

// UnpackLot - decode a stored lot, the whole buffer must be consumed
func (record Packed) UnpackLot() (*CoffeeLot, error) {
	r, n, err := record.Unpack()
	if nil != err {
		return nil, err
	}
	lot, ok := r.(*CoffeeLot)
	if !ok || n != len(record) {
		return nil, fault.ErrCorruptRecord
	}
	return lot, nil
}

// UnpackRegistration - decode a stored registration flag
func (record Packed) UnpackRegistration() (*Registration, error) {
	r, n, err := record.Unpack()
	if nil != err {
		return nil, err
	}
	registration, ok := r.(*Registration)
	if !ok || n != len(record) {
		return nil, fault.ErrCorruptRecord
	}
	return registration, nil
}

// read a length prefixed field starting at offset n
//
// returns the field and the total bytes consumed, or nil, 0 if truncated
func readBytes(record Packed, n int) ([]byte, int) {
	if n >= len(record) {
		return nil, 0
	}
	length, offset := util.ClippedVarint64(record[n:], 0, MaxRecordSize)
	if 0 == offset {
		return nil, 0
	}
	start := n + offset
	if start+length > len(record) {
		return nil, 0
	}
	data := make([]byte, length)
	copy(data, record[start:start+length])
	return data, offset + length
}
