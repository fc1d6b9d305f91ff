// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package headers

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/fault"
	"github.com/bitmark-inc/daocertificate/ledger"
	"github.com/bitmark-inc/daocertificate/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitHeaders = 200
	rateBurstHeaders = 100
)

// Headers - block header lookup
type Headers struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Reader
}

// GetArguments - select a header by hash or by number
//
// when both are given the hash is used
type GetArguments struct {
	Hash   *digest.Digest `json:"hash,omitempty"`
	Number *uint64        `json:"number,omitempty"`
}

// GetReply - the header and its hash
type GetReply struct {
	Hash   digest.Digest `json:"hash"`
	Header *cell.Header  `json:"header"`
}

func New(log *logger.L, l ledger.Reader) *Headers {
	return &Headers{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitHeaders, rateBurstHeaders),
		Ledger:  l,
	}
}

// Get - fetch a header
func (h *Headers) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(h.Limiter); nil != err {
		return err
	}

	if nil == h.Ledger {
		return fault.ErrMissingLedger
	}

	var header *cell.Header
	var err error

	ctx := context.Background()
	switch {
	case nil != arguments.Hash:
		header, err = h.Ledger.Header(ctx, *arguments.Hash)
	case nil != arguments.Number:
		header, err = h.Ledger.HeaderByNumber(ctx, *arguments.Number)
	default:
		return fault.ErrMissingParameters
	}
	if nil != err {
		return err
	}

	reply.Hash = header.Hash()
	reply.Header = header
	return nil
}

// TipArguments - empty arguments for the tip request
type TipArguments struct{}

// Tip - the highest header
func (h *Headers) Tip(arguments *TipArguments, reply *GetReply) error {

	if err := ratelimit.Limit(h.Limiter); nil != err {
		return err
	}

	if nil == h.Ledger {
		return fault.ErrMissingLedger
	}

	header := h.Ledger.Tip()
	if nil == header {
		return fault.ErrNotInitialised
	}

	reply.Hash = header.Hash()
	reply.Header = header
	return nil
}
