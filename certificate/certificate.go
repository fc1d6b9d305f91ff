// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"bytes"

	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/fault"
	"github.com/bitmark-inc/daocertificate/molecule"
	"github.com/bitmark-inc/daocertificate/script"
	"github.com/bitmark-inc/daocertificate/spore"
)

// Rejections - every rejection in exit code order
var Rejections = []error{
	fault.ErrUnknownPattern,
	fault.ErrUnexpectedTypeId,
	fault.ErrDaoCellNotFound,
	fault.ErrInvalidCertificateDataFormat,
	fault.ErrDaoCapacityNotMatch,
	fault.ErrUnsupportedDoubleMint,
	fault.ErrDaoCellNotLocked,
	fault.ErrSporeNotFound,
	fault.ErrSporeCellNotLocked,
	fault.ErrInvalidSporeData,
	fault.ErrUnexpectedSporeDataFormat,
}

// Parameters - code hashes the predicate is compiled against
type Parameters struct {
	DaoCodeHash      digest.Digest
	TypeBurnCodeHash digest.Digest
	SporeCodeHash    digest.Digest
}

// ExitCode - exit code reported for a verification result
func ExitCode(err error) int {
	return script.ExitCode(err, Rejections)
}

// TypeID - unique identity of a cell created at outputIndex
func TypeID(firstInput cell.Input, outputIndex uint64) digest.Digest {
	return digest.NewDigest(firstInput.Pack(), molecule.PackUint64(outputIndex))
}

// Predicate - the certificate type script
func (p *Parameters) Predicate() script.Predicate {
	return p.Verify
}

// Verify - classify then run the matching check
func (p *Parameters) Verify(ctx script.Context) error {
	ctx.Debugf("verifying root")

	op, err := Classify(ctx)
	if nil != err {
		return err
	}

	ctx.Debugf("verifying %s", op)

	switch op {
	case Deposit:
		return p.verifyDeposit(ctx)
	case Mint:
		return p.verifyMint(ctx)
	case Withdraw:
		return nil
	default:
		return fault.ErrUnknownPattern
	}
}

// true if lock is the burn link parameterised by typeHash
func (p *Parameters) isBurnLink(lock *cell.Script, typeHash digest.Digest) bool {
	return p.TypeBurnCodeHash == lock.CodeHash && bytes.Equal(typeHash[:], lock.Args)
}

// first 8 bytes of the certificate output
func certificateCapacity(ctx script.Context) (uint64, error) {
	data, err := ctx.LoadCellData(0, script.SourceGroupOutput)
	if nil != err {
		return 0, err
	}
	capacity, err := cell.DecodeCapacity(data)
	if nil != err {
		return 0, fault.ErrInvalidCertificateDataFormat
	}
	return capacity, nil
}

// a type id may name only one cell on each side of a transaction
func single(ctx script.Context, sources ...script.Source) error {
	for _, source := range sources {
		extra, err := script.Exists(ctx, 1, source)
		if nil != err {
			return err
		}
		if extra {
			return fault.ErrUnexpectedTypeId
		}
	}
	return nil
}

func (p *Parameters) verifyDeposit(ctx script.Context) error {

	if err := single(ctx, script.SourceGroupOutput); nil != err {
		return err
	}

	// the type id is bound to the first input and this cell's own position
	self := ctx.Script()
	outputIndex, err := script.Find(ctx, script.SourceOutput, script.TypeEqual(self))
	if nil != err {
		return err
	}
	if outputIndex < 0 {
		return fault.ErrUnknownPattern
	}
	firstInput, err := ctx.LoadInput(0, script.SourceInput)
	if nil != err {
		return err
	}
	expectedTypeID := TypeID(firstInput, uint64(outputIndex))
	if !bytes.Equal(expectedTypeID[:], self.Args) {
		return fault.ErrUnexpectedTypeId
	}

	daoIndex, err := script.Find(ctx, script.SourceOutput, script.TypeCodeHash(p.DaoCodeHash))
	if nil != err {
		return err
	}
	if daoIndex < 0 {
		return fault.ErrDaoCellNotFound
	}
	dao, err := ctx.LoadCell(daoIndex, script.SourceOutput)
	if nil != err {
		return err
	}

	capacity, err := certificateCapacity(ctx)
	if nil != err {
		return err
	}
	if capacity != dao.Capacity {
		return fault.ErrDaoCapacityNotMatch
	}

	if !p.isBurnLink(&dao.Lock, ctx.ScriptHash()) {
		return fault.ErrDaoCellNotLocked
	}

	return nil
}

func (p *Parameters) verifyMint(ctx script.Context) error {

	if err := single(ctx, script.SourceGroupInput, script.SourceGroupOutput); nil != err {
		return err
	}

	sporeIndex, err := script.Find(ctx, script.SourceOutput, script.TypeCodeHash(p.SporeCodeHash))
	if nil != err {
		return err
	}
	if sporeIndex < 0 {
		return fault.ErrSporeNotFound
	}
	sporeTypeHash, _, err := ctx.LoadTypeHash(sporeIndex, script.SourceOutput)
	if nil != err {
		return err
	}

	// a certificate that is already chained was minted before
	previous, err := ctx.LoadCell(0, script.SourceGroupInput)
	if nil != err {
		return err
	}
	if p.TypeBurnCodeHash == previous.Lock.CodeHash {
		return fault.ErrUnsupportedDoubleMint
	}

	current, err := ctx.LoadCell(0, script.SourceGroupOutput)
	if nil != err {
		return err
	}
	if !p.isBurnLink(&current.Lock, sporeTypeHash) {
		return fault.ErrSporeCellNotLocked
	}

	sporeData, err := ctx.LoadCellData(sporeIndex, script.SourceOutput)
	if nil != err {
		return err
	}
	data, err := spore.Unpack(sporeData)
	if nil != err {
		return fault.ErrInvalidSporeData
	}
	if spore.ContentTypeDOB != data.ContentType || !data.HasCluster() {
		return fault.ErrUnexpectedSporeDataFormat
	}

	capacity, err := certificateCapacity(ctx)
	if nil != err {
		return err
	}

	// the deposited amount is carried over unchanged
	previousData, err := ctx.LoadCellData(0, script.SourceGroupInput)
	if nil != err {
		return err
	}
	previousCapacity, err := cell.DecodeCapacity(previousData)
	if nil != err {
		return fault.ErrInvalidCertificateDataFormat
	}
	if previousCapacity != capacity {
		return fault.ErrDaoCapacityNotMatch
	}

	header, err := ctx.LoadHeader(0, script.SourceGroupOutput)
	if nil != err {
		return err
	}
	expected := spore.DOBContent(capacity, header.Number)
	if !bytes.Equal(expected, data.Content) {
		return fault.ErrUnexpectedSporeDataFormat
	}

	return nil
}
