// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cells

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/fault"
	"github.com/bitmark-inc/daocertificate/ledger"
	"github.com/bitmark-inc/daocertificate/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitCells = 200
	rateBurstCells = ledger.MaximumLimit
)

// Cells - live cell lookup and search
type Cells struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Reader
}

// GetArguments - the out point of a live cell
type GetArguments struct {
	OutPoint cell.OutPoint `json:"out_point"`
}

// GetReply - the live cell
type GetReply struct {
	Cell *cell.LiveCell `json:"cell"`
}

// FindReply - matching live cells in index order
type FindReply struct {
	Cells []*cell.LiveCell `json:"cells"`
}

func New(log *logger.L, l ledger.Reader) *Cells {
	return &Cells{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitCells, rateBurstCells),
		Ledger:  l,
	}
}

// Get - fetch one live cell
func (c *Cells) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	if nil == c.Ledger {
		return fault.ErrMissingLedger
	}

	c.Log.Debugf("get: %s", arguments.OutPoint)

	liveCell, err := c.Ledger.LiveCell(context.Background(), arguments.OutPoint)
	if nil != err {
		return err
	}

	reply.Cell = liveCell
	return nil
}

// Find - search live cells by lock or type
func (c *Cells) Find(arguments *ledger.Query, reply *FindReply) error {

	if nil == arguments || (nil == arguments.Lock && nil == arguments.Type) {
		return fault.ErrMissingParameters
	}

	if 0 == arguments.Limit {
		arguments.Limit = ledger.DefaultLimit
	}
	if err := ratelimit.LimitN(c.Limiter, arguments.Limit, ledger.MaximumLimit); nil != err {
		return err
	}

	if nil == c.Ledger {
		return fault.ErrMissingLedger
	}

	found, err := c.Ledger.FindCells(context.Background(), arguments)
	if nil != err {
		return err
	}

	c.Log.Debugf("find: %d cells", len(found))

	reply.Cells = found
	return nil
}
