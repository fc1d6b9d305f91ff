// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package simulator

import (
	"context"

	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/fault"
	"github.com/bitmark-inc/daocertificate/script"
	"github.com/bitmark-inc/logger"
)

// ExitCoder - maps a predicate result to its numeric exit code
type ExitCoder func(err error) int

type registration struct {
	name      string
	predicate script.Predicate
	exitCode  ExitCoder
}

// Verifier - run a transaction against chain state
type Verifier interface {
	Run(ctx context.Context, state State, tx *cell.Transaction) (*Result, error)
}

// Simulator - predicates by code hash and a cycle budget
type Simulator struct {
	log        *logger.L
	maxCycles  uint64
	predicates map[digest.Digest]registration
}

// GroupResult - outcome of one script group
type GroupResult struct {
	Kind       string        `json:"kind"`
	Name       string        `json:"name"`
	ScriptHash digest.Digest `json:"script_hash"`
	ExitCode   int           `json:"exit_code"`
	Error      string        `json:"error,omitempty"`
	Traces     []string      `json:"traces,omitempty"`
}

// Result - outcome of verifying a transaction
type Result struct {
	TxHash digest.Digest  `json:"tx_hash"`
	Cycles uint64         `json:"cycles"`
	Groups []*GroupResult `json:"groups"`
}

// New - an empty simulator
func New(maxCycles uint64) *Simulator {
	if 0 == maxCycles {
		maxCycles = script.DefaultCycles
	}
	return &Simulator{
		log:        logger.New("simulator"),
		maxCycles:  maxCycles,
		predicates: make(map[digest.Digest]registration),
	}
}

// Register - run predicate for scripts with codeHash
func (s *Simulator) Register(name string, codeHash digest.Digest, predicate script.Predicate, exitCode ExitCoder) {
	s.predicates[codeHash] = registration{
		name:      name,
		predicate: predicate,
		exitCode:  exitCode,
	}
}

// Run - resolve and verify
func (s *Simulator) Run(ctx context.Context, state State, tx *cell.Transaction) (*Result, error) {
	rtx, err := Resolve(ctx, state, tx)
	if nil != err {
		return nil, err
	}
	return s.Verify(rtx)
}

// Verify - check a resolved transaction
//
// the returned error is the first failure; the result is returned
// whenever any script ran so its traces can be reported
func (s *Simulator) Verify(rtx *script.ResolvedTransaction) (*Result, error) {
	err := checkCapacity(rtx)
	if nil != err {
		return nil, err
	}

	tx := rtx.Transaction
	result := &Result{
		TxHash: tx.Hash(),
		Groups: []*GroupResult{},
	}
	meter := script.NewMeter(s.maxCycles)

	for _, group := range script.Groups(rtx) {
		r, err := s.lookup(rtx, group.Script)
		if nil != err {
			s.log.Warnf("tx: %s  %s script: %s  error: %s", result.TxHash, group.Kind, group.Hash, err)
			return result, err
		}

		err = meter.Consume(script.ScriptCycles)
		if nil != err {
			return result, err
		}

		ctx := script.NewContext(rtx, group, meter)
		err = r.predicate(ctx)

		groupResult := &GroupResult{
			Kind:       group.Kind.String(),
			Name:       r.name,
			ScriptHash: group.Hash,
			ExitCode:   r.exitCode(err),
			Traces:     ctx.Traces(),
		}
		result.Groups = append(result.Groups, groupResult)
		result.Cycles = meter.Used()

		for _, line := range groupResult.Traces {
			s.log.Debugf("tx: %s  %s: %s", result.TxHash, r.name, line)
		}

		if nil != err {
			groupResult.Error = err.Error()
			s.log.Infof("tx: %s  rejected by %s %s  exit code: %d  reason: %s", result.TxHash, r.name, group.Kind, groupResult.ExitCode, err)
			return result, err
		}
	}

	s.log.Debugf("tx: %s  verified  cycles: %d", result.TxHash, result.Cycles)
	return result, nil
}

// find the registered predicate whose code is a cell dep
func (s *Simulator) lookup(rtx *script.ResolvedTransaction, sc *cell.Script) (registration, error) {
	found := false
deps:
	for _, dep := range rtx.CellDeps {
		switch sc.HashType {
		case cell.HashTypeData, cell.HashTypeData1:
			if sc.CodeHash == digest.NewDigest(dep.Data) {
				found = true
				break deps
			}
		case cell.HashTypeType:
			if typeHash, ok := dep.TypeHash(); ok && sc.CodeHash == typeHash {
				found = true
				break deps
			}
		}
	}
	if !found {
		return registration{}, fault.ErrScriptNotFound
	}

	r, ok := s.predicates[sc.CodeHash]
	if !ok {
		return registration{}, fault.ErrScriptNotFound
	}
	return r, nil
}

// occupied capacity of each output and conservation of capacity
func checkCapacity(rtx *script.ResolvedTransaction) error {
	tx := rtx.Transaction
	if len(tx.Outputs) != len(tx.OutputsData) {
		return fault.ErrIndexOutOfRange
	}

	inputs := uint64(0)
	for _, c := range rtx.Inputs {
		total := inputs + c.Output.Capacity
		if total < inputs {
			return fault.ErrCapacityOverflow
		}
		inputs = total
	}

	outputs := uint64(0)
	for i, output := range tx.Outputs {
		occupied, err := output.OccupiedCapacity(len(tx.OutputsData[i]))
		if nil != err {
			return err
		}
		if output.Capacity < occupied {
			return fault.ErrOutputCapacityTooSmall
		}
		total := outputs + output.Capacity
		if total < outputs {
			return fault.ErrCapacityOverflow
		}
		outputs = total
	}

	if inputs < outputs {
		return fault.ErrInsufficientCapacity
	}
	return nil
}
