// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identity - opaque caller identities
//
// An identity is a short byte string supplied by the hosting
// environment with every request.  It is used as the key of the
// registered user set and recorded against every update.  The ledger
// never authenticates it.
//
// Text form:
//
//   base58( bytes ++ SHA3-256(bytes)[:4] )
//
// the trailing four bytes detect typing errors when identities are
// pasted into client commands or configuration files.
package identity
