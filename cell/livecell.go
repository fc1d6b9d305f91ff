// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cell

import (
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/fault"
	"github.com/bitmark-inc/daocertificate/molecule"
)

// LiveCell - an unspent output with its data and the block that created it
type LiveCell struct {
	OutPoint    OutPoint      `json:"out_point"`
	Output      *Output       `json:"output"`
	Data        Bytes         `json:"data"`
	BlockHash   digest.Digest `json:"block_hash"`
	BlockNumber uint64        `json:"block_number"`
}

// LockHash - hash of the cell lock
func (c *LiveCell) LockHash() digest.Digest {
	return c.Output.Lock.Hash()
}

// TypeHash - hash of the cell type, false if the cell has none
func (c *LiveCell) TypeHash() (digest.Digest, bool) {
	if nil == c.Output.Type {
		return digest.Digest{}, false
	}
	return c.Output.Type.Hash(), true
}

// Pack - storage record
func (c *LiveCell) Pack() []byte {
	return molecule.PackTable(
		c.OutPoint.Pack(),
		c.Output.Pack(),
		molecule.PackBytes(c.Data),
		c.BlockHash[:],
		molecule.PackUint64(c.BlockNumber),
	)
}

// UnpackLiveCell - decode a storage record
func UnpackLiveCell(data []byte) (*LiveCell, error) {
	fields, err := molecule.UnpackTable(data, 5, false)
	if nil != err {
		return nil, err
	}

	outPoint, err := UnpackOutPoint(fields[0])
	if nil != err {
		return nil, err
	}

	output, err := UnpackOutput(fields[1])
	if nil != err {
		return nil, err
	}

	cellData, err := molecule.UnpackBytes(fields[2])
	if nil != err {
		return nil, err
	}

	c := &LiveCell{
		OutPoint: outPoint,
		Output:   output,
		Data:     append(Bytes{}, cellData...),
	}

	err = digest.FromBytes(&c.BlockHash, fields[3])
	if nil != err {
		return nil, fault.ErrNotMoleculeData
	}

	c.BlockNumber, err = molecule.UnpackUint64(fields[4])
	if nil != err {
		return nil, err
	}

	return c, nil
}
