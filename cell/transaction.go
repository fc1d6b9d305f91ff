// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cell

import (
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/molecule"
)

// Transaction - a complete transaction
type Transaction struct {
	Version     uint32          `json:"version"`
	CellDeps    []CellDep       `json:"cell_deps"`
	HeaderDeps  []digest.Digest `json:"header_deps"`
	Inputs      []Input         `json:"inputs"`
	Outputs     []*Output       `json:"outputs"`
	OutputsData []Bytes         `json:"outputs_data"`
	Witnesses   []Bytes         `json:"witnesses"`
}

// PackRaw - molecule table of everything except the witnesses
func (tx *Transaction) PackRaw() []byte {
	cellDeps := make([][]byte, len(tx.CellDeps))
	for i, d := range tx.CellDeps {
		cellDeps[i] = d.Pack()
	}

	headerDeps := make([][]byte, len(tx.HeaderDeps))
	for i := range tx.HeaderDeps {
		headerDeps[i] = tx.HeaderDeps[i][:]
	}

	inputs := make([][]byte, len(tx.Inputs))
	for i, in := range tx.Inputs {
		inputs[i] = in.Pack()
	}

	outputs := make([][]byte, len(tx.Outputs))
	for i, out := range tx.Outputs {
		outputs[i] = out.Pack()
	}

	outputsData := make([][]byte, len(tx.OutputsData))
	for i, data := range tx.OutputsData {
		outputsData[i] = molecule.PackBytes(data)
	}

	return molecule.PackTable(
		molecule.PackUint32(tx.Version),
		molecule.PackFixVec(cellDeps),
		molecule.PackFixVec(headerDeps),
		molecule.PackFixVec(inputs),
		molecule.PackDynVec(outputs),
		molecule.PackDynVec(outputsData),
	)
}

// Hash - transaction hash, witnesses are excluded
func (tx *Transaction) Hash() digest.Digest {
	return digest.NewDigest(tx.PackRaw())
}

// OutPoint - reference to one of this transaction's outputs
func (tx *Transaction) OutPoint(index int) OutPoint {
	return OutPoint{
		TxHash: tx.Hash(),
		Index:  uint32(index),
	}
}
