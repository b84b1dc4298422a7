// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lots

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/coffeechain/lotledgerd/fault"
	"github.com/coffeechain/lotledgerd/identity"
	"github.com/coffeechain/lotledgerd/lotrecord"
	"github.com/coffeechain/lotledgerd/mode"
	"github.com/coffeechain/lotledgerd/rpc/ratelimit"
)

const (
	rateLimitLots = 200
	rateBurstLots = 100

	// limit for count
	maximumLotList = 100

	// reply to a successful update
	UpdateSuccessful = "Update successful"
)

// Ledger - the ledger operations served over RPC
type Ledger interface {
	Register(*identity.Identity) bool
	CreateLot(*identity.Identity, string, string, string) (uint64, error)
	AppendUpdate(*identity.Identity, uint64, string, string) error
	GetLot(uint64) (*lotrecord.CoffeeLot, error)
	ListLots() ([]*lotrecord.CoffeeLot, error)
	ListLotsFrom(uint64, int) ([]*lotrecord.CoffeeLot, uint64, error)
	LotCount() uint64
}

// Lots - type for RPC calls
type Lots struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	Ledger       Ledger
	IsNormalMode func(mode.Mode) bool
}

// New - create the RPC handler for lots
func New(log *logger.L, ledger Ledger, isNormalMode func(mode.Mode) bool) *Lots {
	return &Lots{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitLots, rateBurstLots),
		Ledger:       ledger,
		IsNormalMode: isNormalMode,
	}
}

// ledger failures that the caller only sees as an absent result
func isAbsent(err error) bool {
	return fault.IsErrAuthorisation(err) ||
		fault.IsErrNotFound(err) ||
		fault.IsErrLength(err) ||
		fault.IsErrRecord(err) ||
		fault.IsErrInvalid(err)
}

// mutating calls need the daemon to be fully started
func (lots *Lots) checkMode() error {
	if !lots.IsNormalMode(mode.Normal) {
		return fault.ErrNotAvailable
	}
	return nil
}

// ---

// RegisterArguments - identity to add to the registered set
type RegisterArguments struct {
	Identity *identity.Identity `json:"identity"`
}

// RegisterReply - result of register
type RegisterReply struct {
	Registered bool `json:"registered"`
}

// Register - allow an identity to create and update lots
func (lots *Lots) Register(arguments *RegisterArguments, reply *RegisterReply) error {

	if err := ratelimit.Limit(lots.Limiter); nil != err {
		return err
	}
	if err := lots.checkMode(); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Identity {
		return fault.ErrMissingIdentity
	}

	lots.Log.Infof("register: %s", arguments.Identity)

	reply.Registered = lots.Ledger.Register(arguments.Identity)
	return nil
}

// ---

// CreateArguments - provenance of a new lot
type CreateArguments struct {
	Identity    *identity.Identity `json:"identity"`
	Farmer      string             `json:"farmer"`
	HarvestDate string             `json:"harvest_date"`
	Location    string             `json:"location"`
}

// CreateReply - id of the new lot, null if it was not created
type CreateReply struct {
	Id *uint64 `json:"id"`
}

// Create - store a new lot
func (lots *Lots) Create(arguments *CreateArguments, reply *CreateReply) error {

	if err := ratelimit.Limit(lots.Limiter); nil != err {
		return err
	}
	if err := lots.checkMode(); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	id, err := lots.Ledger.CreateLot(arguments.Identity, arguments.Farmer, arguments.HarvestDate, arguments.Location)
	if nil != err {
		if isAbsent(err) {
			lots.Log.Warnf("create by: %v  rejected: %s", arguments.Identity, err)
			reply.Id = nil
			return nil
		}
		lots.Log.Errorf("create by: %v  error: %s", arguments.Identity, err)
		return err
	}

	reply.Id = &id
	return nil
}

// ---

// UpdateArguments - a new status for a lot
type UpdateArguments struct {
	Identity *identity.Identity `json:"identity"`
	LotId    uint64             `json:"lot_id"`
	Status   string             `json:"status"`
	Details  string             `json:"details"`
}

// UpdateReply - UpdateSuccessful or null
type UpdateReply struct {
	Result *string `json:"result"`
}

// Update - append an update to a lot
func (lots *Lots) Update(arguments *UpdateArguments, reply *UpdateReply) error {

	if err := ratelimit.Limit(lots.Limiter); nil != err {
		return err
	}
	if err := lots.checkMode(); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	err := lots.Ledger.AppendUpdate(arguments.Identity, arguments.LotId, arguments.Status, arguments.Details)
	if nil != err {
		if isAbsent(err) {
			lots.Log.Warnf("update lot: %d  by: %v  rejected: %s", arguments.LotId, arguments.Identity, err)
			reply.Result = nil
			return nil
		}
		lots.Log.Errorf("update lot: %d  by: %v  error: %s", arguments.LotId, arguments.Identity, err)
		return err
	}

	result := UpdateSuccessful
	reply.Result = &result
	return nil
}

// ---

// GetArguments - lot to fetch
type GetArguments struct {
	LotId uint64 `json:"lot_id"`
}

// GetReply - the lot or null
type GetReply struct {
	Lot *lotrecord.CoffeeLot `json:"lot"`
}

// Get - fetch one lot with its updates
func (lots *Lots) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(lots.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	lot, err := lots.Ledger.GetLot(arguments.LotId)
	if nil != err {
		if isAbsent(err) {
			lots.Log.Debugf("get lot: %d  absent: %s", arguments.LotId, err)
			reply.Lot = nil
			return nil
		}
		return err
	}

	reply.Lot = lot
	return nil
}

// ---

// ListArguments - page of lots to fetch, zero count returns every lot
type ListArguments struct {
	Start uint64 `json:"start"`
	Count int    `json:"count"`
}

// ListReply - lots in ascending id order
type ListReply struct {
	Lots []*lotrecord.CoffeeLot `json:"lots"`
	Next uint64                 `json:"next"`
}

// List - list lots
func (lots *Lots) List(arguments *ListArguments, reply *ListReply) error {

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	if 0 == arguments.Count {
		if err := ratelimit.LimitN(lots.Limiter, maximumLotList, maximumLotList); nil != err {
			return err
		}

		all, err := lots.Ledger.ListLots()
		if nil != err {
			lots.Log.Errorf("list lots error: %s", err)
			return err
		}
		reply.Lots = all
		reply.Next = 0
		if n := len(all); n > 0 {
			reply.Next = all[n-1].Id + 1
		}
		return nil
	}

	if err := ratelimit.LimitN(lots.Limiter, arguments.Count, maximumLotList); nil != err {
		return err
	}

	page, next, err := lots.Ledger.ListLotsFrom(arguments.Start, arguments.Count)
	if nil != err {
		lots.Log.Errorf("list lots from: %d  error: %s", arguments.Start, err)
		return err
	}
	reply.Lots = page
	reply.Next = next
	return nil
}
