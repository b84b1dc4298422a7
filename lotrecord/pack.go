// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lotrecord

import (
	"github.com/coffeechain/lotledgerd/fault"
	"github.com/coffeechain/lotledgerd/util"
)

// Pack - pack an Update
//
// Pack Varint64(tag) followed by fields in order as struct above
func (update *Update) Pack() (Packed, error) {
	message, err := update.pack(nil)
	if nil != err {
		return nil, err
	}
	return checkSize(message)
}

func (update *Update) pack(buffer Packed) (Packed, error) {
	if nil == update.UpdatedBy {
		return nil, fault.ErrMissingIdentity
	}

	buffer = appendUint64(buffer, uint64(UpdateTag))
	buffer = appendString(buffer, update.Status)
	buffer = appendString(buffer, update.Details)
	buffer = appendUint64(buffer, update.Timestamp)
	buffer = appendBytes(buffer, update.UpdatedBy.Bytes())
	return buffer, nil
}

// Pack - pack a CoffeeLot including all of its updates
//
// fails with ErrRecordTooLarge rather than dropping any data
func (lot *CoffeeLot) Pack() (Packed, error) {
	message := util.ToVarint64(uint64(LotTag))
	message = appendUint64(message, lot.Id)
	message = appendString(message, lot.Farmer)
	message = appendString(message, lot.HarvestDate)
	message = appendString(message, lot.Location)
	message = appendString(message, lot.Status)
	message = appendUint64(message, lot.Timestamp)
	message = appendUint64(message, uint64(len(lot.Updates)))

	for i := range lot.Updates {
		var err error
		message, err = lot.Updates[i].pack(message)
		if nil != err {
			return nil, err
		}
		if len(message) > MaxRecordSize {
			return nil, fault.ErrRecordTooLarge
		}
	}
	return checkSize(message)
}

// Pack - pack a Registration flag
func (registration *Registration) Pack() (Packed, error) {
	flag := uint64(0)
	if registration.Registered {
		flag = 1
	}
	message := util.ToVarint64(uint64(RegistrationTag))
	message = appendUint64(message, flag)
	return checkSize(message)
}

func checkSize(message Packed) (Packed, error) {
	if len(message) > MaxRecordSize {
		return nil, fault.ErrRecordTooLarge
	}
	return message, nil
}

// append a single field to a buffer
//
// the field is prefixed by Varint64(length)
func appendString(buffer Packed, s string) Packed {
	buffer = util.AppendVarint64(buffer, uint64(len(s)))
	return append(buffer, s...)
}

// append a bytes to a buffer
//
// the field is prefixed by Varint64(length)
func appendBytes(buffer Packed, data []byte) Packed {
	buffer = util.AppendVarint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}

// append a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	return util.AppendVarint64(buffer, value)
}
