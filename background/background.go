// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

// Process - a background loop
//
// Run must return soon after shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for a running set of processes
type T struct {
	shutdown chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

// Start - start up a set of background processes
func Start(processes Processes, args interface{}) *T {

	t := &T{
		shutdown: make(chan struct{}),
	}

	// start each background
	for _, p := range processes {
		t.wg.Add(1)
		go func(p Process) {
			defer t.wg.Done()
			p.Run(args, t.shutdown)
		}(p)
	}
	return t
}

// Stop - signal every process and wait for all of them to return
//
// safe to call more than once
func (t *T) Stop() {
	t.once.Do(func() {
		close(t.shutdown)
	})
	t.wg.Wait()
}

// Periodic - a process that runs an action at a fixed interval
type Periodic struct {
	Log      *logger.L
	Interval time.Duration
	Action   func() error
}

// Run - call Action every Interval until shutdown
func (p *Periodic) Run(args interface{}, shutdown <-chan struct{}) {

	p.Log.Info("starting…")

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			err := p.Action()
			if nil != err {
				p.Log.Errorf("action error: %s", err)
			}
		}
	}

	p.Log.Info("shutting down…")
	p.Log.Flush()
}
