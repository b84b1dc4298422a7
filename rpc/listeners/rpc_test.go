// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/coffeechain/lotledgerd/counter"
	"github.com/coffeechain/lotledgerd/fault"
	"github.com/coffeechain/lotledgerd/rpc/certificate"
	"github.com/coffeechain/lotledgerd/rpc/fixtures"
	"github.com/coffeechain/lotledgerd/rpc/listeners"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func testTLS(t *testing.T) (*tls.Config, [32]byte) {
	cert, key := fixtures.CertificatePair()
	tlsConfig, fingerprint, err := certificate.Get(logger.New(fixtures.LogCategory), "test", cert, key)
	if nil != err {
		t.Fatalf("get certificate with error: %s", err)
	}
	return tlsConfig, fingerprint
}

func TestRpcListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port := rand.Intn(30000) + 30000
	listen := fmt.Sprintf("127.0.0.1:%d", port)
	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen},
	}

	count := counter.Gauge{}

	s := rpc.NewServer()
	err := s.Register(Add{})
	if err != nil {
		t.Fatalf("register with error: %s", err)
	}

	tlsConfig, fingerprint := testTLS(t)

	r, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, s, tlsConfig, fingerprint)
	assert.Nil(t, err, "wrong NewRPC")

	err = r.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer r.Stop()

	time.Sleep(20 * time.Millisecond)

	conn, err := tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		t.Fatalf("dial with error: %s", err)
	}
	defer conn.Close()

	client := jsonrpc.NewClient(conn)
	defer client.Close()

	var reply int
	err = client.Call("Add.Add", &AddArg{A: 1, B: 2}, &reply)
	assert.Nil(t, err, "wrong call")
	assert.Equal(t, 3, reply, "wrong reply")
	assert.Equal(t, uint64(1), count.Uint64(), "wrong connection count")
}

func TestRpcListenerRejectsOverLimit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port := rand.Intn(30000) + 30000
	listen := fmt.Sprintf("127.0.0.1:%d", port)
	con := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Listen:             []string{listen},
	}

	count := counter.Gauge{}
	s := rpc.NewServer()
	_ = s.Register(Add{})

	tlsConfig, fingerprint := testTLS(t)

	r, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, s, tlsConfig, fingerprint)
	assert.Nil(t, err, "wrong NewRPC")
	assert.Nil(t, r.Serve(), "wrong Serve")
	defer r.Stop()

	time.Sleep(20 * time.Millisecond)

	first, err := tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		t.Fatalf("dial with error: %s", err)
	}
	defer first.Close()

	var reply int
	err = jsonrpc.NewClient(first).Call("Add.Add", &AddArg{A: 2, B: 2}, &reply)
	assert.Nil(t, err, "wrong first call")

	second, err := tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	if nil == err {
		defer second.Close()
		err = jsonrpc.NewClient(second).Call("Add.Add", &AddArg{A: 2, B: 2}, &reply)
	}
	assert.NotNil(t, err, "second connection was served")

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, uint64(1), count.Uint64(), "rejected connection still counted")
}

func TestNewRpcWhenMaxConnectionInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 0,
		Listen:             []string{"127.0.0.1:1234"},
	}

	_, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &counter.Gauge{}, rpc.NewServer(), &tls.Config{}, [32]byte{})
	assert.Equal(t, fault.ErrMissingParameters, err, "wrong connection limit")
}

func TestNewRpcWhenListenEmpty(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{},
	}

	_, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &counter.Gauge{}, rpc.NewServer(), &tls.Config{}, [32]byte{})
	assert.Equal(t, fault.ErrMissingParameters, err, "wrong listen")
}

func TestNewRpcWhenListenInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	for _, listen := range []string{"", "localhost:1234", "[fe80::1x]:1234"} {
		con := listeners.RPCConfiguration{
			MaximumConnections: 5,
			Listen:             []string{listen},
		}

		_, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &counter.Gauge{}, rpc.NewServer(), &tls.Config{}, [32]byte{})
		assert.Equal(t, fault.ErrInvalidIPAddress, err, "wrong error for: %q", listen)
	}
}
