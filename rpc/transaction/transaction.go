// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"context"
	"sync"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/fault"
	"github.com/bitmark-inc/daocertificate/ledger"
	"github.com/bitmark-inc/daocertificate/rpc/ratelimit"
	"github.com/bitmark-inc/daocertificate/simulator"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitTransaction = 200
	rateBurstTransaction = 100
)

// Transaction - an RPC entry for transaction related functions
type Transaction struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Ledger   ledger.Handle
	Verifier simulator.Verifier

	// one verify and commit at a time so inputs cannot be spent twice
	submit sync.Mutex
}

// Arguments - a complete transaction
type Arguments struct {
	Transaction *cell.Transaction `json:"transaction"`
}

// VerifyReply - the outcome of every script group that ran
//
// a rejected transaction still returns its partial result so the
// caller can read the failing group's exit code and traces
type VerifyReply struct {
	TxHash digest.Digest     `json:"tx_hash"`
	Valid  bool              `json:"valid"`
	Error  string            `json:"error,omitempty"`
	Result *simulator.Result `json:"result,omitempty"`
}

// SubmitReply - the block holding an accepted transaction
type SubmitReply struct {
	TxHash      digest.Digest     `json:"tx_hash"`
	BlockNumber uint64            `json:"block_number"`
	BlockHash   digest.Digest     `json:"block_hash"`
	Result      *simulator.Result `json:"result"`
}

// StatusArguments - a transaction hash
type StatusArguments struct {
	TxHash digest.Digest `json:"tx_hash"`
}

// StatusReply - the block number of a committed transaction
type StatusReply struct {
	BlockNumber uint64 `json:"block_number"`
}

func New(log *logger.L, l ledger.Handle, verifier simulator.Verifier) *Transaction {
	return &Transaction{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitTransaction, rateBurstTransaction),
		Ledger:   l,
		Verifier: verifier,
	}
}

func (t *Transaction) check(arguments *Arguments) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}
	if nil == t.Ledger {
		return fault.ErrMissingLedger
	}
	if nil == t.Verifier {
		return fault.ErrMissingVerifier
	}
	if nil == arguments || nil == arguments.Transaction {
		return fault.ErrMissingParameters
	}
	return nil
}

// Verify - run every predicate without committing
//
// only resolution failures are returned as errors, a rejection by a
// predicate is reported in the reply
func (t *Transaction) Verify(arguments *Arguments, reply *VerifyReply) error {

	if err := t.check(arguments); nil != err {
		return err
	}

	tx := arguments.Transaction
	reply.TxHash = tx.Hash()

	result, err := t.Verifier.Run(context.Background(), t.Ledger, tx)
	if nil != err && nil == result {
		return err
	}

	reply.Result = result
	reply.Valid = nil == err
	if nil != err {
		reply.Error = err.Error()
	}

	t.Log.Infof("verify: %s  valid: %t", reply.TxHash, reply.Valid)
	return nil
}

// Submit - verify and commit a transaction as the next block
func (t *Transaction) Submit(arguments *Arguments, reply *SubmitReply) error {

	if err := t.check(arguments); nil != err {
		return err
	}

	tx := arguments.Transaction
	txHash := tx.Hash()

	t.submit.Lock()
	defer t.submit.Unlock()

	result, err := t.Verifier.Run(context.Background(), t.Ledger, tx)
	if nil != err {
		t.Log.Warnf("submit: %s  rejected: %s", txHash, err)
		return err
	}

	header, err := t.Ledger.Commit(tx)
	if nil != err {
		t.Log.Errorf("submit: %s  commit error: %s", txHash, err)
		return err
	}

	t.Log.Infof("submit: %s  block: %d", txHash, header.Number)

	reply.TxHash = txHash
	reply.BlockNumber = header.Number
	reply.BlockHash = header.Hash()
	reply.Result = result
	return nil
}

// Status - block number of a committed transaction
func (t *Transaction) Status(arguments *StatusArguments, reply *StatusReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	if nil == t.Ledger {
		return fault.ErrMissingLedger
	}

	n, err := t.Ledger.TransactionBlock(context.Background(), arguments.TxHash)
	if nil != err {
		return err
	}

	reply.BlockNumber = n
	return nil
}
