// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/coffeechain/lotledgerd/command/lotledger-cli/rpccalls"
)

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	who, err := callerIdentity(m)
	if nil != err {
		return err
	}

	farmer, err := checkRequired("farmer", c.String("farmer"))
	if nil != err {
		return err
	}
	harvestDate, err := checkRequired("harvest-date", c.String("harvest-date"))
	if nil != err {
		return err
	}
	location, err := checkRequired("location", c.String("location"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Create(&rpccalls.CreateData{
		Identity:    who,
		Farmer:      farmer,
		HarvestDate: harvestDate,
		Location:    location,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
