// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/coffeechain/lotledgerd/counter"
	"github.com/coffeechain/lotledgerd/mode"
	"github.com/coffeechain/lotledgerd/rpc/node"
)

// Handler - the HTTPS endpoints
type Handler interface {
	Root(http.ResponseWriter, *http.Request)
	RPC(http.ResponseWriter, *http.Request)
	Details(http.ResponseWriter, *http.Request)
	SetAllow(map[string][]*net.IPNet)
}

// type to allow rpc system to interface to http request
type internalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *internalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}
func (c *internalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}
func (c *internalConnection) Close() error {
	return nil
}

type httpHandler struct {
	sync.RWMutex

	log                *logger.L
	server             *rpc.Server
	start              time.Time
	version            string
	lots               node.LotCounter
	allow              map[string][]*net.IPNet
	maximumConnections uint64
	connections        counter.Gauge
}

// New - create the HTTPS handler over an RPC server
func New(log *logger.L, server *rpc.Server, start time.Time, version string, maximumConnections uint64, lots node.LotCounter) Handler {
	return &httpHandler{
		log:                log,
		server:             server,
		start:              start,
		version:            version,
		lots:               lots,
		allow:              make(map[string][]*net.IPNet),
		maximumConnections: maximumConnections,
	}
}

// SetAllow - set the networks allowed per restricted path
func (s *httpHandler) SetAllow(allow map[string][]*net.IPNet) {
	s.Lock()
	s.allow = allow
	s.Unlock()
}

// Root - this matches anything not matched and returns error
func (s *httpHandler) Root(w http.ResponseWriter, r *http.Request) {
	sendNotFound(w)
}

// RPC - performs a call to any normal RPC
func (s *httpHandler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if s.connections.Increment() > s.maximumConnections {
		s.connections.Decrement()
		sendTooManyRequests(w)
		return
	}
	defer s.connections.Decrement()

	serverCodec := jsonrpc.NewServerCodec(&internalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	err := s.server.ServeRequest(serverCodec)
	if nil != err {
		s.log.Warnf("rpc request from: %q  error: %s", r.RemoteAddr, err)
		sendInternalServerError(w)
		return
	}
}

// Details - GET for the same data as the Node.Info RPC
// (restricted to the "details" allow list)
func (s *httpHandler) Details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !s.isAllowed("details", r.RemoteAddr) {
		s.log.Warnf("Deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	if s.connections.Increment() > s.maximumConnections {
		s.connections.Decrement()
		sendTooManyRequests(w)
		return
	}
	defer s.connections.Decrement()

	reply := node.InfoReply{
		Mode: mode.String(),
		Connections: node.ConnectionsInfo{
			Current: s.connections.Uint64(),
			Peak:    s.connections.Peak(),
		},
		Version: s.version,
		Uptime:  time.Since(s.start).String(),
	}
	if nil != s.lots {
		reply.Lots = s.lots.LotCount()
	}

	sendReply(w, reply)
}

// check the host part of a remote address against an allow list
func (s *httpHandler) isAllowed(path string, remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if nil != err {
		return false
	}
	ip := net.ParseIP(host)
	if nil == ip {
		return false
	}

	s.RLock()
	defer s.RUnlock()

	for _, network := range s.allow[path] {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

// selected errors as required above
func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}
func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just incase JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
