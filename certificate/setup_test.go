// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/certificate"
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/script"
	"github.com/bitmark-inc/daocertificate/spore"
	"github.com/bitmark-inc/daocertificate/typeburn"
)

const (
	depositCapacity = 1000
	depositBlock    = 20
)

var (
	certificateCode = digest.NewDigest([]byte("certificate"))
	ownerCode       = digest.NewDigest([]byte("owner"))

	parameters = &certificate.Parameters{
		DaoCodeHash:      digest.NewDigest([]byte("dao")),
		TypeBurnCodeHash: digest.NewDigest([]byte("type-burn")),
		SporeCodeHash:    digest.NewDigest([]byte("spore")),
	}

	clusterID = digest.NewDigest([]byte("cluster"))
	sporeID   = digest.NewDigest([]byte("spore-id"))

	depositHeader = &cell.Header{Number: depositBlock, Timestamp: 1}
)

func ownerLock() cell.Script {
	return cell.Script{CodeHash: ownerCode, HashType: cell.HashTypeData1, Args: cell.Bytes{0x01}}
}

func certificateType(typeID digest.Digest) *cell.Script {
	return &cell.Script{CodeHash: certificateCode, HashType: cell.HashTypeData1, Args: typeID[:]}
}

func daoType() *cell.Script {
	return &cell.Script{CodeHash: parameters.DaoCodeHash, HashType: cell.HashTypeType}
}

func sporeType() *cell.Script {
	return &cell.Script{CodeHash: parameters.SporeCodeHash, HashType: cell.HashTypeData1, Args: sporeID[:]}
}

func burnLink(target *cell.Script) cell.Script {
	return typeburn.Lock(parameters.TypeBurnCodeHash, target.Hash())
}

func live(index uint32, output *cell.Output, data []byte, block *cell.Header) *cell.LiveCell {
	return &cell.LiveCell{
		OutPoint:    cell.OutPoint{TxHash: digest.NewDigest([]byte("funding")), Index: index},
		Output:      output,
		Data:        data,
		BlockHash:   block.Hash(),
		BlockNumber: block.Number,
	}
}

func resolve(inputs []*cell.LiveCell, outputs []*cell.Output, data []cell.Bytes, headers []*cell.Header) *script.ResolvedTransaction {
	tx := &cell.Transaction{
		Outputs:     outputs,
		OutputsData: data,
	}
	for _, in := range inputs {
		tx.Inputs = append(tx.Inputs, cell.Input{PreviousOutput: in.OutPoint})
	}
	for _, h := range headers {
		tx.HeaderDeps = append(tx.HeaderDeps, h.Hash())
	}
	return &script.ResolvedTransaction{
		Transaction: tx,
		Inputs:      inputs,
		HeaderDeps:  headers,
	}
}

// run the certificate predicate on its group
func verify(rtx *script.ResolvedTransaction) error {
	for _, g := range script.Groups(rtx) {
		if script.TypeGroup == g.Kind && certificateCode == g.Script.CodeHash {
			ctx := script.NewContext(rtx, g, script.NewMeter(script.DefaultCycles))
			return parameters.Verify(ctx)
		}
	}
	panic("no certificate group")
}

// deposit: certificate at output 0, deposit cell at output 1, change at 2
func depositTransaction() *script.ResolvedTransaction {
	funding := live(0, &cell.Output{Capacity: 5000, Lock: ownerLock()}, nil, depositHeader)

	firstInput := cell.Input{PreviousOutput: funding.OutPoint}
	certType := certificateType(certificate.TypeID(firstInput, 0))

	outputs := []*cell.Output{
		{Capacity: 200, Lock: ownerLock(), Type: certType},
		{Capacity: depositCapacity, Lock: burnLink(certType), Type: daoType()},
		{Capacity: 3000, Lock: ownerLock()},
	}
	data := []cell.Bytes{
		cell.EncodeCapacity(depositCapacity),
		make([]byte, 8),
		{},
	}
	return resolve([]*cell.LiveCell{funding}, outputs, data, nil)
}

// mint: authorisation and certificate in, authorisation, spore and
// chained certificate out; the deposit header sits at the slot of
// the certificate output
func mintTransaction() *script.ResolvedTransaction {
	certType := certificateType(digest.NewDigest([]byte("type-id")))
	authorisation := &cell.Output{Capacity: 100, Lock: cell.Script{CodeHash: digest.NewDigest([]byte("check-lock"))}}

	inputs := []*cell.LiveCell{
		live(0, authorisation, nil, depositHeader),
		live(1, &cell.Output{Capacity: 200, Lock: ownerLock(), Type: certType}, cell.EncodeCapacity(depositCapacity), depositHeader),
	}

	outputs := []*cell.Output{
		authorisation.Clone(),
		{Capacity: 300, Lock: ownerLock(), Type: sporeType()},
		{Capacity: 200, Lock: burnLink(sporeType()), Type: certType},
	}
	data := []cell.Bytes{
		{},
		spore.NewDOB(depositCapacity, depositBlock, clusterID).Pack(),
		cell.EncodeCapacity(depositCapacity),
	}
	headers := []*cell.Header{depositHeader, depositHeader, depositHeader}
	return resolve(inputs, outputs, data, headers)
}
