// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// lotledger-cli - command line client for lotledgerd
//
//   lotledger-cli generate
//   lotledger-cli -i IDENTITY register
//   lotledger-cli -i IDENTITY create -f Jane -d 2024-01-01 -l Farm1
//   lotledger-cli -i IDENTITY update -l 0 -s Roasted -d "batch 7"
//   lotledger-cli get -l 0
//   lotledger-cli list -s 0 -c 20
//   lotledger-cli info
package main
