// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/coffeechain/lotledgerd/counter"
	"github.com/coffeechain/lotledgerd/fault"
	"github.com/coffeechain/lotledgerd/rpc/certificate"
	"github.com/coffeechain/lotledgerd/rpc/handler"
	"github.com/coffeechain/lotledgerd/rpc/listeners"
	"github.com/coffeechain/lotledgerd/rpc/lots"
	"github.com/coffeechain/lotledgerd/rpc/server"
)

const (
	rpcName   = "client_rpc"
	httpsName = "http_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	connections counter.Gauge
	listeners   []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the RPC and HTTPS listeners
func Initialise(
	rpcConfiguration *listeners.RPCConfiguration,
	httpsConfiguration *listeners.HTTPSConfiguration,
	ledger lots.Ledger,
	version string,
) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, fingerprint, err := certificate.Load(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&globalData.connections,
		server.Create(log, ledger, version, &globalData.connections),
		tlsConfig,
		fingerprint,
	)
	if nil != err {
		return err
	}

	httpsListener, err := initialiseHTTPS(log, httpsConfiguration, ledger, version)
	if nil != err {
		return err
	}

	globalData.listeners = []listeners.Listener{rpcListener}
	if nil != httpsListener {
		globalData.listeners = append(globalData.listeners, httpsListener)
	}

	for _, l := range globalData.listeners {
		err := l.Serve()
		if nil != err {
			stopAll()
			return err
		}
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

func initialiseHTTPS(log *logger.L, configuration *listeners.HTTPSConfiguration, ledger lots.Ledger, version string) (listeners.Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsName)
		return nil, nil
	}

	tlsConfig, fingerprint, err := certificate.Load(log, httpsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return nil, err
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, fingerprint)

	hdlr := handler.New(
		log,
		server.Create(log, ledger, version, &globalData.connections),
		time.Now(),
		version,
		configuration.MaximumConnections,
		ledger,
	)

	return listeners.NewHTTPS(configuration, log, tlsConfig, hdlr)
}

func stopAll() {
	for _, l := range globalData.listeners {
		l.Stop()
	}
	globalData.listeners = nil
}

// Finalise - stop all listeners
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	stopAll()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
