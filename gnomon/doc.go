// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package gnomon - a strictly increasing timestamp source
//
// consists of:
//   seconds (int64)    -> the UTC unix time
//   nano seconds (int) -> fractional time [0 .. 999,999,999]
//
// successive cursors never repeat and never go backwards, even if
// the system clock is stepped back or two calls land in the same
// nanosecond
package gnomon
