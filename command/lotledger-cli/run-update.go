// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/coffeechain/lotledgerd/command/lotledger-cli/rpccalls"
)

func runUpdate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	who, err := callerIdentity(m)
	if nil != err {
		return err
	}

	status, err := checkRequired("status", c.String("status"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Update(&rpccalls.UpdateData{
		Identity: who,
		LotId:    c.Uint64("lot"),
		Status:   status,
		Details:  c.String("details"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
