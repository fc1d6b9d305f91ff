// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cell

import (
	"github.com/bitmark-inc/daocertificate/fault"
	"github.com/bitmark-inc/daocertificate/molecule"
)

// ShannonsPerCKB - capacity is measured in shannons, one byte occupies one CKB
const ShannonsPerCKB = 100000000

// Output - a cell without its data
type Output struct {
	Capacity uint64  `json:"capacity"`
	Lock     Script  `json:"lock"`
	Type     *Script `json:"type,omitempty"`
}

// Pack - molecule table: capacity, lock, type option
func (o *Output) Pack() []byte {
	typeScript := []byte{}
	if nil != o.Type {
		typeScript = o.Type.Pack()
	}
	return molecule.PackTable(
		molecule.PackUint64(o.Capacity),
		o.Lock.Pack(),
		molecule.PackOption(typeScript, nil != o.Type),
	)
}

// OccupiedCapacity - minimum capacity for this output holding dataLength bytes
func (o *Output) OccupiedCapacity(dataLength int) (uint64, error) {
	size := uint64(8) + o.Lock.occupied() + uint64(dataLength)
	if nil != o.Type {
		size += o.Type.occupied()
	}
	occupied := size * ShannonsPerCKB
	if occupied/ShannonsPerCKB != size {
		return 0, fault.ErrCapacityOverflow
	}
	return occupied, nil
}

// Clone - deep copy
func (o *Output) Clone() *Output {
	return &Output{
		Capacity: o.Capacity,
		Lock:     *o.Lock.Clone(),
		Type:     o.Type.Clone(),
	}
}

// UnpackOutput - decode a packed output
func UnpackOutput(data []byte) (*Output, error) {
	fields, err := molecule.UnpackTable(data, 3, false)
	if nil != err {
		return nil, err
	}

	capacity, err := molecule.UnpackUint64(fields[0])
	if nil != err {
		return nil, err
	}

	lock, err := UnpackScript(fields[1])
	if nil != err {
		return nil, err
	}

	o := &Output{
		Capacity: capacity,
		Lock:     *lock,
	}

	if packedType, ok := molecule.UnpackOption(fields[2]); ok {
		o.Type, err = UnpackScript(packedType)
		if nil != err {
			return nil, err
		}
	}
	return o, nil
}
