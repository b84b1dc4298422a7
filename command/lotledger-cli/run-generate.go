// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keyPair, err := makeKeyPair(nil)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "keyPair: %#v\n", keyPair)
	}

	return printJson(m.w, keyPair)
}
