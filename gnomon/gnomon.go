// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gnomon

import (
	"sync"
	"time"
)

const nanoSecondsPerSecond = 1000000000

// Cursor - effectively a limited timestamp
//
// This works like erlang:now() and will advance into future if
// called faster than once per nanosecond continuously.
type Cursor struct {
	seconds     int64
	nanoSeconds int32 // 0 .. 999,999,999
}

// this is to prevent duplicate values
var localData struct {
	sync.Mutex
	current Cursor
	clock   func() time.Time
}

func init() {
	localData.clock = time.Now
}

// NewCursor - get a current cursor value
//
// ensure that cannot get duplicate value
func NewCursor() *Cursor {

	localData.Lock()
	defer localData.Unlock()

	now := localData.clock().UTC()
	cursor := Cursor{
		seconds:     now.Unix(),
		nanoSeconds: int32(now.Nanosecond()),
	}

	if !cursor.After(localData.current) {
		cursor = localData.current
		cursor.Next()
	}
	localData.current = cursor
	return &cursor
}

// Next - advance a cursor by one LSB to be the next possible position
// after its current value
func (cursor *Cursor) Next() {
	cursor.nanoSeconds += 1
	if cursor.nanoSeconds >= nanoSecondsPerSecond {
		cursor.nanoSeconds = 0
		cursor.seconds += 1
	}
}

// After - true if cursor is strictly later than other
func (cursor Cursor) After(other Cursor) bool {
	if cursor.seconds != other.seconds {
		return cursor.seconds > other.seconds
	}
	return cursor.nanoSeconds > other.nanoSeconds
}

// UnixNano - nanoseconds since the Unix epoch
func (cursor Cursor) UnixNano() uint64 {
	return uint64(cursor.seconds)*nanoSecondsPerSecond + uint64(cursor.nanoSeconds)
}

// Time - the cursor as a UTC time
func (cursor Cursor) Time() time.Time {
	return time.Unix(cursor.seconds, int64(cursor.nanoSeconds)).UTC()
}
