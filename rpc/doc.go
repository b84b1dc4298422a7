// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients requiring lotledgerd services
//
// standard golang RPC services can be used on the client side to
// access these services, either as JSON-RPC over a raw TLS socket
// or as a single JSON-RPC request POSTed to /lotledger/rpc
package rpc
