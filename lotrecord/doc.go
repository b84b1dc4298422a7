// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package lotrecord - packed lot, update and registration records
//
// Every record starts with Varint64(tag) followed by its fields in the
// order of the struct declaration:
//
//   Update:        UpdateTag ++ status ++ details ++ Varint64(timestamp) ++ updated_by
//   CoffeeLot:     LotTag ++ Varint64(id) ++ farmer ++ harvest_date ++ location
//                  ++ status ++ Varint64(timestamp) ++ Varint64(count) ++ Update...
//   Registration:  RegistrationTag ++ Varint64(0|1)
//
// strings and identities are Varint64(length) ++ bytes
//
// No packed record may exceed MaxRecordSize bytes, oversize values are
// rejected, never truncated.
package lotrecord
