// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/certificate"
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/fault"
	"github.com/bitmark-inc/daocertificate/script"
	"github.com/bitmark-inc/daocertificate/spore"
)

func TestClassify(t *testing.T) {
	rtx := depositTransaction()
	empty := &script.Group{Kind: script.TypeGroup, Script: certificateType(digest.Digest{})}

	op, err := certificate.Classify(script.NewContext(rtx, empty, script.NewMeter(script.DefaultCycles)))
	assert.Equal(t, fault.ErrUnknownPattern, err, "empty group")
	assert.Equal(t, certificate.Invalid, op, "empty group operation")

	items := []struct {
		inputs   []int
		outputs  []int
		expected certificate.Operation
	}{
		{nil, []int{0}, certificate.Deposit},
		{[]int{0}, []int{0}, certificate.Mint},
		{[]int{0}, nil, certificate.Withdraw},
	}
	for i, item := range items {
		g := &script.Group{Kind: script.TypeGroup, Script: empty.Script, InputIndices: item.inputs, OutputIndices: item.outputs}
		op, err := certificate.Classify(script.NewContext(rtx, g, script.NewMeter(script.DefaultCycles)))
		assert.Nil(t, err, "%d: classify error", i)
		assert.Equal(t, item.expected, op, "%d: operation", i)
	}
}

func TestDeposit(t *testing.T) {
	rtx := depositTransaction()
	assert.Nil(t, verify(rtx), "valid deposit")

	// 1000 as little endian
	expected := []byte{0xe8, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	assert.Equal(t, cell.Bytes(expected), rtx.Transaction.OutputsData[0], "certificate data")

	certHash := rtx.Transaction.Outputs[0].Type.Hash()
	assert.Equal(t, parameters.TypeBurnCodeHash, rtx.Transaction.Outputs[1].Lock.CodeHash, "burn link code")
	assert.Equal(t, cell.Bytes(certHash[:]), rtx.Transaction.Outputs[1].Lock.Args, "burn link target")
}

func TestDepositTypeID(t *testing.T) {
	rtx := depositTransaction()
	rtx.Transaction.Inputs[0].PreviousOutput.Index = 1
	assert.Equal(t, fault.ErrUnexpectedTypeId, verify(rtx), "first input changed")

	rtx = depositTransaction()
	rtx.Transaction.Inputs[0].Since = 1
	assert.Equal(t, fault.ErrUnexpectedTypeId, verify(rtx), "first input since changed")

	// same certificate moved to a different output index
	rtx = depositTransaction()
	outputs := rtx.Transaction.Outputs
	data := rtx.Transaction.OutputsData
	outputs[0], outputs[2] = outputs[2], outputs[0]
	data[0], data[2] = data[2], data[0]
	assert.Equal(t, fault.ErrUnexpectedTypeId, verify(rtx), "output index changed")
}

func TestDepositWithoutDao(t *testing.T) {
	rtx := depositTransaction()
	rtx.Transaction.Outputs[1].Type = nil
	assert.Equal(t, fault.ErrDaoCellNotFound, verify(rtx), "no deposit cell")
}

func TestDepositCapacity(t *testing.T) {
	rtx := depositTransaction()
	rtx.Transaction.OutputsData[0] = cell.EncodeCapacity(depositCapacity + 1)
	assert.Equal(t, fault.ErrDaoCapacityNotMatch, verify(rtx), "one shannon over")

	rtx = depositTransaction()
	rtx.Transaction.OutputsData[0] = cell.EncodeCapacity(depositCapacity - 1)
	assert.Equal(t, fault.ErrDaoCapacityNotMatch, verify(rtx), "one shannon under")

	rtx = depositTransaction()
	rtx.Transaction.OutputsData[0] = cell.Bytes{0xe8, 0x03}
	assert.Equal(t, fault.ErrInvalidCertificateDataFormat, verify(rtx), "short data")

	rtx = depositTransaction()
	rtx.Transaction.OutputsData[0] = append(cell.EncodeCapacity(depositCapacity), 0xff)
	assert.Nil(t, verify(rtx), "trailing bytes are ignored")
}

func TestDepositNotChained(t *testing.T) {
	rtx := depositTransaction()
	rtx.Transaction.Outputs[1].Lock = ownerLock()
	assert.Equal(t, fault.ErrDaoCellNotLocked, verify(rtx), "owner lock")

	// correct code, wrong target
	rtx = depositTransaction()
	rtx.Transaction.Outputs[1].Lock = burnLink(daoType())
	assert.Equal(t, fault.ErrDaoCellNotLocked, verify(rtx), "wrong target")

	// correct target, wrong code
	rtx = depositTransaction()
	rtx.Transaction.Outputs[1].Lock.CodeHash = ownerCode
	assert.Equal(t, fault.ErrDaoCellNotLocked, verify(rtx), "wrong code")
}

func TestMint(t *testing.T) {
	rtx := mintTransaction()
	assert.Nil(t, verify(rtx), "valid mint")

	data, err := spore.Unpack(rtx.Transaction.OutputsData[1])
	assert.Nil(t, err, "spore data")
	expected := []byte{
		0xe8, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x14, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	assert.Equal(t, cell.Bytes(expected), data.Content, "content")
	assert.Equal(t, "dob/1", data.ContentType, "content type")
	assert.Equal(t, cell.Bytes(clusterID[:]), data.ClusterID, "cluster")
}

func TestMintDoubleMint(t *testing.T) {
	rtx := mintTransaction()
	prior := &cell.Script{CodeHash: parameters.SporeCodeHash, Args: cell.Bytes{0x99}}
	rtx.Inputs[1].Output.Lock = burnLink(prior)
	assert.Equal(t, fault.ErrUnsupportedDoubleMint, verify(rtx), "already chained")
}

func TestMintWithoutSpore(t *testing.T) {
	rtx := mintTransaction()
	rtx.Transaction.Outputs[1].Type = nil
	assert.Equal(t, fault.ErrSporeNotFound, verify(rtx), "no collectible")
}

func TestMintNotChained(t *testing.T) {
	rtx := mintTransaction()
	rtx.Transaction.Outputs[2].Lock = ownerLock()
	assert.Equal(t, fault.ErrSporeCellNotLocked, verify(rtx), "unchained certificate")

	rtx = mintTransaction()
	rtx.Transaction.Outputs[2].Lock = burnLink(daoType())
	assert.Equal(t, fault.ErrSporeCellNotLocked, verify(rtx), "chained to the wrong cell")
}

func TestMintSporeData(t *testing.T) {
	rtx := mintTransaction()
	rtx.Transaction.OutputsData[1] = cell.EncodeCapacity(depositCapacity)
	assert.Equal(t, fault.ErrInvalidSporeData, verify(rtx), "malformed")

	items := []*spore.Data{
		{ContentType: "dob/0", Content: spore.DOBContent(depositCapacity, depositBlock), ClusterID: clusterID[:]},
		{ContentType: "dob/1", Content: spore.DOBContent(depositCapacity, depositBlock)},
		{ContentType: "dob/1", Content: spore.DOBContent(depositCapacity, depositBlock+1), ClusterID: clusterID[:]},
		{ContentType: "dob/1", Content: spore.DOBContent(depositCapacity+1, depositBlock), ClusterID: clusterID[:]},
		{ContentType: "dob/1", Content: spore.DOBContent(depositCapacity, depositBlock)[:15], ClusterID: clusterID[:]},
	}
	for i, item := range items {
		rtx := mintTransaction()
		rtx.Transaction.OutputsData[1] = item.Pack()
		assert.Equal(t, fault.ErrUnexpectedSporeDataFormat, verify(rtx), "%d: wrong data", i)
	}
}

func TestMintHeaderSlot(t *testing.T) {
	other := &cell.Header{Number: depositBlock + 5}

	rtx := mintTransaction()
	rtx.HeaderDeps[2] = other
	rtx.Transaction.HeaderDeps[2] = other.Hash()
	assert.Equal(t, fault.ErrUnexpectedSporeDataFormat, verify(rtx), "header from another block")

	rtx = mintTransaction()
	rtx.HeaderDeps = rtx.HeaderDeps[:2]
	rtx.Transaction.HeaderDeps = rtx.Transaction.HeaderDeps[:2]
	assert.Equal(t, fault.ErrIndexOutOfBound, verify(rtx), "missing header slot")
}

func TestWithdraw(t *testing.T) {
	mint := mintTransaction()
	sporeCell := live(0, mint.Transaction.Outputs[1], mint.Transaction.OutputsData[1], depositHeader)
	certCell := live(1, mint.Transaction.Outputs[2], mint.Transaction.OutputsData[2], depositHeader)
	daoCell := live(2, &cell.Output{Capacity: depositCapacity, Lock: burnLink(certCell.Output.Type), Type: daoType()}, make([]byte, 8), depositHeader)

	rtx := resolve(
		[]*cell.LiveCell{sporeCell, certCell, daoCell},
		[]*cell.Output{{Capacity: depositCapacity + 500, Lock: ownerLock()}},
		[]cell.Bytes{{}},
		nil,
	)
	assert.Nil(t, verify(rtx), "withdraw is never rejected by the certificate")

	// any shape at all
	rtx = resolve([]*cell.LiveCell{certCell}, nil, nil, nil)
	assert.Nil(t, verify(rtx), "certificate alone")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, certificate.ExitCode(nil), "success")
	for i, err := range certificate.Rejections {
		assert.Equal(t, script.CustomErrorStart+i, certificate.ExitCode(err), "%d: %s", i, err)
	}
	assert.Equal(t, 69, certificate.ExitCode(fault.ErrUnsupportedDoubleMint), "double mint code")
}

func TestTypeID(t *testing.T) {
	in := cell.Input{PreviousOutput: cell.OutPoint{TxHash: digest.NewDigest([]byte("tx"))}}
	a := certificate.TypeID(in, 0)
	assert.NotEqual(t, a, certificate.TypeID(in, 1), "index must change the id")

	in.PreviousOutput.Index = 1
	assert.NotEqual(t, a, certificate.TypeID(in, 0), "input must change the id")

	expected := digest.NewDigest(append(cell.Input{PreviousOutput: cell.OutPoint{TxHash: digest.NewDigest([]byte("tx"))}}.Pack(), 0, 0, 0, 0, 0, 0, 0, 0))
	assert.Equal(t, expected, a, "hash of input and le64 index")
}

func TestDepositCopiedCertificate(t *testing.T) {
	rtx := depositTransaction()
	copied := rtx.Transaction.Outputs[0].Clone()
	rtx.Transaction.Outputs = append(rtx.Transaction.Outputs, copied)
	rtx.Transaction.OutputsData = append(rtx.Transaction.OutputsData, cell.EncodeCapacity(depositCapacity*depositCapacity))
	assert.Equal(t, fault.ErrUnexpectedTypeId, verify(rtx), "second cell with the same type id")
}

func TestMintCopiedCertificate(t *testing.T) {
	rtx := mintTransaction()
	copied := rtx.Transaction.Outputs[2].Clone()
	rtx.Transaction.Outputs = append(rtx.Transaction.Outputs, copied)
	rtx.Transaction.OutputsData = append(rtx.Transaction.OutputsData, cell.EncodeCapacity(depositCapacity))
	assert.Equal(t, fault.ErrUnexpectedTypeId, verify(rtx), "certificate output duplicated")

	rtx = mintTransaction()
	second := live(2, rtx.Inputs[1].Output.Clone(), cell.EncodeCapacity(depositCapacity), depositHeader)
	rtx.Inputs = append(rtx.Inputs, second)
	rtx.Transaction.Inputs = append(rtx.Transaction.Inputs, cell.Input{PreviousOutput: second.OutPoint})
	assert.Equal(t, fault.ErrUnexpectedTypeId, verify(rtx), "two certificates consumed")
}

func TestMintCapacityCarriedOver(t *testing.T) {
	inflated := depositCapacity * depositCapacity

	rtx := mintTransaction()
	rtx.Transaction.OutputsData[1] = spore.NewDOB(uint64(inflated), depositBlock, clusterID).Pack()
	rtx.Transaction.OutputsData[2] = cell.EncodeCapacity(uint64(inflated))
	assert.Equal(t, fault.ErrDaoCapacityNotMatch, verify(rtx), "inflated capacity")

	rtx = mintTransaction()
	rtx.Inputs[1].Data = cell.Bytes{0x01}
	assert.Equal(t, fault.ErrInvalidCertificateDataFormat, verify(rtx), "malformed input certificate")
}
