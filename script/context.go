// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"fmt"

	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/fault"
)

// cycle costs charged by each load
const (
	LoadCycles    = 100
	ByteCycles    = 1
	HashCycles    = 500
	DebugCycles   = 10
	ScriptCycles  = 1000
	DefaultCycles = 70000000
)

// Context - read only view of the transaction being verified
type Context interface {
	Script() *cell.Script
	ScriptHash() digest.Digest
	LoadCell(index int, source Source) (*cell.Output, error)
	LoadCellData(index int, source Source) ([]byte, error)
	LoadInput(index int, source Source) (cell.Input, error)
	LoadHeader(index int, source Source) (*cell.Header, error)
	LoadLockHash(index int, source Source) (digest.Digest, error)
	LoadTypeHash(index int, source Source) (digest.Digest, bool, error)
	Debugf(format string, arguments ...interface{})
}

// Predicate - a lock or type script implementation
type Predicate func(ctx Context) error

// ResolvedTransaction - a transaction with every referenced item loaded
type ResolvedTransaction struct {
	Transaction *cell.Transaction
	Inputs      []*cell.LiveCell
	CellDeps    []*cell.LiveCell
	HeaderDeps  []*cell.Header
}

// GroupContext - one group's view of a resolved transaction
type GroupContext struct {
	rtx    *ResolvedTransaction
	group  *Group
	meter  *Meter
	traces []string
}

// NewContext - context for running the predicate of one group
func NewContext(rtx *ResolvedTransaction, group *Group, meter *Meter) *GroupContext {
	return &GroupContext{
		rtx:   rtx,
		group: group,
		meter: meter,
	}
}

// Traces - debug lines written by the predicate
func (c *GroupContext) Traces() []string {
	return c.traces
}

func (c *GroupContext) Script() *cell.Script {
	return c.group.Script
}

func (c *GroupContext) ScriptHash() digest.Digest {
	return c.group.Hash
}

func (c *GroupContext) Debugf(format string, arguments ...interface{}) {
	if nil != c.meter.Consume(DebugCycles) {
		return
	}
	c.traces = append(c.traces, fmt.Sprintf(format, arguments...))
}

// map a group source to its absolute source and index
func (c *GroupContext) absolute(index int, source Source) (int, Source, error) {
	if index < 0 {
		return 0, source, fault.ErrIndexOutOfBound
	}

	switch source {
	case SourceGroupInput:
		if index >= len(c.group.InputIndices) {
			return 0, source, fault.ErrIndexOutOfBound
		}
		return c.group.InputIndices[index], SourceInput, nil

	case SourceGroupOutput:
		if index >= len(c.group.OutputIndices) {
			return 0, source, fault.ErrIndexOutOfBound
		}
		return c.group.OutputIndices[index], SourceOutput, nil

	default:
		return index, source, nil
	}
}

// locate the output and data for an absolute cell source
func (c *GroupContext) cell(index int, source Source) (*cell.Output, []byte, error) {
	index, source, err := c.absolute(index, source)
	if nil != err {
		return nil, nil, err
	}

	tx := c.rtx.Transaction
	switch source {
	case SourceInput:
		if index >= len(c.rtx.Inputs) {
			return nil, nil, fault.ErrIndexOutOfBound
		}
		return c.rtx.Inputs[index].Output, c.rtx.Inputs[index].Data, nil

	case SourceOutput:
		if index >= len(tx.Outputs) {
			return nil, nil, fault.ErrIndexOutOfBound
		}
		var data []byte
		if index < len(tx.OutputsData) {
			data = tx.OutputsData[index]
		}
		return tx.Outputs[index], data, nil

	case SourceCellDep:
		if index >= len(c.rtx.CellDeps) {
			return nil, nil, fault.ErrIndexOutOfBound
		}
		return c.rtx.CellDeps[index].Output, c.rtx.CellDeps[index].Data, nil

	default:
		return nil, nil, fault.ErrIndexOutOfBound
	}
}

func (c *GroupContext) LoadCell(index int, source Source) (*cell.Output, error) {
	output, _, err := c.cell(index, source)
	if nil != err {
		return nil, err
	}
	err = c.meter.Consume(LoadCycles)
	if nil != err {
		return nil, err
	}
	return output.Clone(), nil
}

func (c *GroupContext) LoadCellData(index int, source Source) ([]byte, error) {
	_, data, err := c.cell(index, source)
	if nil != err {
		return nil, err
	}
	err = c.meter.Consume(LoadCycles + uint64(len(data))*ByteCycles)
	if nil != err {
		return nil, err
	}
	return append([]byte{}, data...), nil
}

func (c *GroupContext) LoadLockHash(index int, source Source) (digest.Digest, error) {
	output, _, err := c.cell(index, source)
	if nil != err {
		return digest.Digest{}, err
	}
	err = c.meter.Consume(LoadCycles + HashCycles)
	if nil != err {
		return digest.Digest{}, err
	}
	return output.Lock.Hash(), nil
}

func (c *GroupContext) LoadTypeHash(index int, source Source) (digest.Digest, bool, error) {
	output, _, err := c.cell(index, source)
	if nil != err {
		return digest.Digest{}, false, err
	}
	err = c.meter.Consume(LoadCycles + HashCycles)
	if nil != err {
		return digest.Digest{}, false, err
	}
	if nil == output.Type {
		return digest.Digest{}, false, nil
	}
	return output.Type.Hash(), true, nil
}

func (c *GroupContext) LoadInput(index int, source Source) (cell.Input, error) {
	index, source, err := c.absolute(index, source)
	if nil != err {
		return cell.Input{}, err
	}
	if SourceInput != source || index >= len(c.rtx.Transaction.Inputs) {
		return cell.Input{}, fault.ErrIndexOutOfBound
	}
	err = c.meter.Consume(LoadCycles)
	if nil != err {
		return cell.Input{}, err
	}
	return c.rtx.Transaction.Inputs[index], nil
}

// LoadHeader - header dep lookup
//
// header_dep reads the slot directly; input and cell_dep read the
// header of the block that created the cell, which must be listed;
// output reads the header dep at the output's absolute index
func (c *GroupContext) LoadHeader(index int, source Source) (*cell.Header, error) {
	index, source, err := c.absolute(index, source)
	if nil != err {
		return nil, err
	}

	var header *cell.Header
	switch source {
	case SourceHeaderDep, SourceOutput:
		if SourceOutput == source && index >= len(c.rtx.Transaction.Outputs) {
			return nil, fault.ErrIndexOutOfBound
		}
		if index >= len(c.rtx.HeaderDeps) {
			return nil, fault.ErrIndexOutOfBound
		}
		header = c.rtx.HeaderDeps[index]

	case SourceInput, SourceCellDep:
		cells := c.rtx.Inputs
		if SourceCellDep == source {
			cells = c.rtx.CellDeps
		}
		if index >= len(cells) {
			return nil, fault.ErrIndexOutOfBound
		}
		header = c.headerByHash(cells[index].BlockHash)
		if nil == header {
			return nil, fault.ErrItemMissing
		}

	default:
		return nil, fault.ErrIndexOutOfBound
	}

	err = c.meter.Consume(LoadCycles)
	if nil != err {
		return nil, err
	}
	h := *header
	return &h, nil
}

func (c *GroupContext) headerByHash(hash digest.Digest) *cell.Header {
	for _, h := range c.rtx.HeaderDeps {
		if hash == h.Hash() {
			return h
		}
	}
	return nil
}
