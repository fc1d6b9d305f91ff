// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assembler

import (
	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/certificate"
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/fault"
)

// Skeleton - a transaction under construction
type Skeleton struct {
	CellDeps    []cell.CellDep
	HeaderDeps  []digest.Digest
	Inputs      []*cell.LiveCell
	Outputs     []*cell.Output
	OutputsData []cell.Bytes
}

// NewSkeleton - an empty transaction
func NewSkeleton() *Skeleton {
	return &Skeleton{
		CellDeps:    []cell.CellDep{},
		HeaderDeps:  []digest.Digest{},
		Inputs:      []*cell.LiveCell{},
		Outputs:     []*cell.Output{},
		OutputsData: []cell.Bytes{},
	}
}

// AddCellDep - add a dep once, returns its index
func (s *Skeleton) AddCellDep(dep cell.CellDep) int {
	for i, d := range s.CellDeps {
		if d == dep {
			return i
		}
	}
	s.CellDeps = append(s.CellDeps, dep)
	return len(s.CellDeps) - 1
}

// HasInput - true if the out point is already consumed
func (s *Skeleton) HasInput(outPoint cell.OutPoint) bool {
	for _, c := range s.Inputs {
		if outPoint == c.OutPoint {
			return true
		}
	}
	return false
}

// AddInput - consume a live cell, returns its index
func (s *Skeleton) AddInput(c *cell.LiveCell) (int, error) {
	if s.HasInput(c.OutPoint) {
		return 0, fault.ErrDuplicateInput
	}
	s.Inputs = append(s.Inputs, c)
	return len(s.Inputs) - 1, nil
}

// Input - a consumed cell by index
func (s *Skeleton) Input(index int) (*cell.LiveCell, error) {
	if index < 0 || index >= len(s.Inputs) {
		return nil, fault.ErrIndexOutOfRange
	}
	return s.Inputs[index], nil
}

// AddOutput - create a cell, returns its index
func (s *Skeleton) AddOutput(output *cell.Output, data []byte) int {
	s.Outputs = append(s.Outputs, output)
	s.OutputsData = append(s.OutputsData, append(cell.Bytes{}, data...))
	return len(s.Outputs) - 1
}

// Output - a created cell and its data by index
func (s *Skeleton) Output(index int) (*cell.Output, cell.Bytes, error) {
	if index < 0 || index >= len(s.Outputs) {
		return nil, nil, fault.ErrIndexOutOfRange
	}
	return s.Outputs[index], s.OutputsData[index], nil
}

// SetHeaderDep - place a header at a slot
//
// lower empty slots are filled with the same header; a slot already
// holding another header is a conflict
func (s *Skeleton) SetHeaderDep(slot int, hash digest.Digest) error {
	if slot < 0 {
		return fault.ErrIndexOutOfRange
	}
	if slot < len(s.HeaderDeps) {
		if hash != s.HeaderDeps[slot] {
			return fault.ErrHeaderDepConflict
		}
		return nil
	}
	for len(s.HeaderDeps) <= slot {
		s.HeaderDeps = append(s.HeaderDeps, hash)
	}
	return nil
}

// TypeID - type id for a cell created at outputIndex
func (s *Skeleton) TypeID(outputIndex int) (digest.Digest, error) {
	if 0 == len(s.Inputs) {
		return digest.Digest{}, fault.ErrEmptyInputs
	}
	first := cell.Input{PreviousOutput: s.Inputs[0].OutPoint}
	return certificate.TypeID(first, uint64(outputIndex)), nil
}

// InputCapacity - total capacity consumed
func (s *Skeleton) InputCapacity() (uint64, error) {
	total := uint64(0)
	for _, c := range s.Inputs {
		sum, err := cell.AddCapacity(total, c.Output.Capacity)
		if nil != err {
			return 0, err
		}
		total = sum
	}
	return total, nil
}

// OutputCapacity - total capacity created
func (s *Skeleton) OutputCapacity() (uint64, error) {
	total := uint64(0)
	for _, o := range s.Outputs {
		sum, err := cell.AddCapacity(total, o.Capacity)
		if nil != err {
			return 0, err
		}
		total = sum
	}
	return total, nil
}

// Transaction - the finished transaction with one empty witness per input
func (s *Skeleton) Transaction() *cell.Transaction {
	tx := &cell.Transaction{
		Version:     0,
		CellDeps:    append([]cell.CellDep{}, s.CellDeps...),
		HeaderDeps:  append([]digest.Digest{}, s.HeaderDeps...),
		Inputs:      make([]cell.Input, len(s.Inputs)),
		Outputs:     make([]*cell.Output, len(s.Outputs)),
		OutputsData: make([]cell.Bytes, len(s.OutputsData)),
		Witnesses:   make([]cell.Bytes, len(s.Inputs)),
	}
	for i, c := range s.Inputs {
		tx.Inputs[i] = cell.Input{PreviousOutput: c.OutPoint}
		tx.Witnesses[i] = cell.Bytes{}
	}
	for i, o := range s.Outputs {
		tx.Outputs[i] = o.Clone()
		tx.OutputsData[i] = append(cell.Bytes{}, s.OutputsData[i]...)
	}
	return tx
}

// sized - an output whose capacity is exactly its occupied capacity
func sized(output *cell.Output, dataLength int) (*cell.Output, error) {
	occupied, err := output.OccupiedCapacity(dataLength)
	if nil != err {
		return nil, err
	}
	output.Capacity = occupied
	return output, nil
}
