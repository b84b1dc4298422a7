// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gnomon

import (
	"time"
)

// SetClock - replace the time source, returns a function to restore it
func SetClock(clock func() time.Time) func() {
	localData.Lock()
	defer localData.Unlock()

	previous := localData.clock
	localData.clock = clock
	return func() {
		localData.Lock()
		localData.clock = previous
		localData.Unlock()
	}
}

// MakeCursor - a cursor at a fixed position
func MakeCursor(seconds int64, nanoSeconds int32) Cursor {
	return Cursor{seconds: seconds, nanoSeconds: nanoSeconds}
}
