// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/coffeechain/lotledgerd/identity"
	"github.com/coffeechain/lotledgerd/rpc/lots"
)

// Register - allow an identity to write to the ledger
func (client *Client) Register(who *identity.Identity) (*lots.RegisterReply, error) {
	var reply lots.RegisterReply
	err := client.call("Lots.Register", &lots.RegisterArguments{Identity: who}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// CreateData - the provenance of a new lot
type CreateData struct {
	Identity    *identity.Identity
	Farmer      string
	HarvestDate string
	Location    string
}

// Create - store a new lot
func (client *Client) Create(data *CreateData) (*lots.CreateReply, error) {
	arguments := lots.CreateArguments{
		Identity:    data.Identity,
		Farmer:      data.Farmer,
		HarvestDate: data.HarvestDate,
		Location:    data.Location,
	}
	var reply lots.CreateReply
	err := client.call("Lots.Create", &arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// UpdateData - a status change for a lot
type UpdateData struct {
	Identity *identity.Identity
	LotId    uint64
	Status   string
	Details  string
}

// Update - append a status update to a lot
func (client *Client) Update(data *UpdateData) (*lots.UpdateReply, error) {
	arguments := lots.UpdateArguments{
		Identity: data.Identity,
		LotId:    data.LotId,
		Status:   data.Status,
		Details:  data.Details,
	}
	var reply lots.UpdateReply
	err := client.call("Lots.Update", &arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Get - fetch a lot
func (client *Client) Get(lotId uint64) (*lots.GetReply, error) {
	var reply lots.GetReply
	err := client.call("Lots.Get", &lots.GetArguments{LotId: lotId}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// List - fetch a page of lots, zero count fetches all
func (client *Client) List(start uint64, count int) (*lots.ListReply, error) {
	var reply lots.ListReply
	err := client.call("Lots.List", &lots.ListArguments{Start: start, Count: count}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
