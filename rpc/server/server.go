// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/coffeechain/lotledgerd/counter"
	"github.com/coffeechain/lotledgerd/mode"
	"github.com/coffeechain/lotledgerd/rpc/lots"
	"github.com/coffeechain/lotledgerd/rpc/node"
)

// Create - an RPC server with the Lots and Node services registered
func Create(log *logger.L, ledger lots.Ledger, version string, rpcCount *counter.Gauge) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(lots.New(log, ledger, mode.Is))
	_ = server.Register(node.New(log, ledger, start, version, rpcCount, mode.String))

	return server
}
