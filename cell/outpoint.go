// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cell

import (
	"fmt"

	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/fault"
	"github.com/bitmark-inc/daocertificate/molecule"
)

// byte sizes of the fixed structures
const (
	OutPointSize = digest.Length + 4
	InputSize    = 8 + OutPointSize
	CellDepSize  = OutPointSize + 1
)

// OutPoint - reference to an output of a committed transaction
type OutPoint struct {
	TxHash digest.Digest `json:"tx_hash"`
	Index  uint32        `json:"index"`
}

// Pack - struct: tx_hash ‖ le32 index
func (o OutPoint) Pack() []byte {
	buffer := make([]byte, 0, OutPointSize)
	buffer = append(buffer, o.TxHash[:]...)
	return append(buffer, molecule.PackUint32(o.Index)...)
}

// NullOutPoint - the previous output of a cellbase input
var NullOutPoint = OutPoint{Index: 0xffffffff}

// IsNull - true for the cellbase marker
func (o OutPoint) IsNull() bool {
	return NullOutPoint == o
}

// String - hash:index
func (o OutPoint) String() string {
	return fmt.Sprintf("%s:%d", o.TxHash, o.Index)
}

// UnpackOutPoint - decode a packed out point
func UnpackOutPoint(data []byte) (OutPoint, error) {
	o := OutPoint{}
	if OutPointSize != len(data) {
		return o, fault.ErrNotMoleculeData
	}
	copy(o.TxHash[:], data[:digest.Length])
	o.Index, _ = molecule.UnpackUint32(data[digest.Length:])
	return o, nil
}

// Input - a transaction input
type Input struct {
	Since          uint64   `json:"since"`
	PreviousOutput OutPoint `json:"previous_output"`
}

// Pack - struct: le64 since ‖ out point
func (i Input) Pack() []byte {
	buffer := make([]byte, 0, InputSize)
	buffer = append(buffer, molecule.PackUint64(i.Since)...)
	return append(buffer, i.PreviousOutput.Pack()...)
}

// UnpackInput - decode a packed input
func UnpackInput(data []byte) (Input, error) {
	if InputSize != len(data) {
		return Input{}, fault.ErrNotMoleculeData
	}
	since, _ := molecule.UnpackUint64(data[:8])
	o, err := UnpackOutPoint(data[8:])
	if nil != err {
		return Input{}, err
	}
	return Input{Since: since, PreviousOutput: o}, nil
}

// DepType - what a cell dep provides
type DepType byte

// the dep types
const (
	DepTypeCode     DepType = 0 // the cell data is code
	DepTypeDepGroup DepType = 1 // the cell data is a list of out points
)

// String - name of the dep type
func (d DepType) String() string {
	switch d {
	case DepTypeCode:
		return "code"
	case DepTypeDepGroup:
		return "dep_group"
	default:
		return "unknown"
	}
}

// MarshalText - dep type as its name
func (d DepType) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText - dep type from its name
func (d *DepType) UnmarshalText(s []byte) error {
	switch string(s) {
	case "code":
		*d = DepTypeCode
	case "dep_group":
		*d = DepTypeDepGroup
	default:
		return fault.ErrInvalidDepType
	}
	return nil
}

// CellDep - read only reference to a code or dep group cell
type CellDep struct {
	OutPoint OutPoint `json:"out_point"`
	DepType  DepType  `json:"dep_type"`
}

// Pack - struct: out point ‖ dep type
func (c CellDep) Pack() []byte {
	buffer := make([]byte, 0, CellDepSize)
	buffer = append(buffer, c.OutPoint.Pack()...)
	return append(buffer, byte(c.DepType))
}
