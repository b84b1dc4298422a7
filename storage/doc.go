// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate regions of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of regions.
// Each region is defined by a single byte id that is obtained from the
// region tag in the struct defining the available regions.
//
// Notes:
// 1. each region has a single byte prefix, so region N owns keys [N, N+1)
// 2. ++           = concatenation of byte data
// 3. lot id       = big endian uint64 (8 bytes)
// 4. identity     = raw identity bytes (1..64)
// 5. region 0xff is reserved for the store itself
//
// Lots:
//
//   0x00 ++ lot id             - lot store
//                                data: packed CoffeeLot (with all updates)
//
// Registered users:
//
//   0x01 ++ identity           - members of the access gate
//                                data: packed Registration
//
// Metadata:
//
//   0xff ++ "VERSION"          - database version (big endian uint32)
//   0xff ++ "REGIONS"          - region table
//                                data: [ Varint64(id) ++ Varint64(length) ++ name ]
package storage
