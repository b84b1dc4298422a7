// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/coffeechain/lotledgerd/counter"
	"github.com/coffeechain/lotledgerd/fault"
	"github.com/coffeechain/lotledgerd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// LotCounter - source of the number of lots
type LotCounter interface {
	LotCount() uint64
}

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Lots    LotCounter
	Mode    func() string
	counter *counter.Gauge
}

// New - create the RPC handler for node information
func New(log *logger.L, lots LotCounter, start time.Time, version string, connections *counter.Gauge, currentMode func() string) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Lots:    lots,
		Mode:    currentMode,
		counter: connections,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Mode        string          `json:"mode"`
	Lots        uint64          `json:"lots"`
	Connections ConnectionsInfo `json:"connections"`
	Version     string          `json:"version"`
	Uptime      string          `json:"uptime"`
}

// ConnectionsInfo - RPC connections now and at most
type ConnectionsInfo struct {
	Current uint64 `json:"current"`
	Peak    uint64 `json:"peak"`
}

// Info - return some information about this node
// only enough for clients to determine node state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Lots {
		return fault.ErrNotInitialised
	}

	reply.Mode = node.Mode()
	reply.Lots = node.Lots.LotCount()
	reply.Connections = ConnectionsInfo{
		Current: node.counter.Uint64(),
		Peak:    node.counter.Peak(),
	}
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
