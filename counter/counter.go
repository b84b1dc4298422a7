// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Gauge - a count of things currently in use together with the
// highest value it has reached
type Gauge struct {
	current uint64
	peak    uint64
}

// Increment - add 1, returns new value
func (g *Gauge) Increment() uint64 {
	n := atomic.AddUint64(&g.current, 1)
	for {
		peak := atomic.LoadUint64(&g.peak)
		if n <= peak || atomic.CompareAndSwapUint64(&g.peak, peak, n) {
			return n
		}
	}
}

// Decrement - subtract 1, returns new value
func (g *Gauge) Decrement() uint64 {
	return atomic.AddUint64(&g.current, ^uint64(0))
}

// Uint64 - returns current value
func (g *Gauge) Uint64() uint64 {
	return atomic.LoadUint64(&g.current)
}

// Peak - returns highest value reached
func (g *Gauge) Peak() uint64 {
	return atomic.LoadUint64(&g.peak)
}

// IsZero - check if zero
func (g *Gauge) IsZero() bool {
	return 0 == atomic.LoadUint64(&g.current)
}
