// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - lots, their update trails and the registered users
// allowed to change them
//
// all operations are serialised by a single lock, each mutating
// operation is a complete read-modify-write of one lot record
package ledger
