// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assembler

import (
	"context"

	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/deployment"
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/fault"
	"github.com/bitmark-inc/daocertificate/ledger"
	"github.com/bitmark-inc/daocertificate/spore"
)

// AddCellDep - add the code cell of a deployed contract
func (a *Assembler) AddCellDep(s *Skeleton, name string) (*deployment.Record, error) {
	r, err := a.table.Get(name)
	if nil != err {
		return nil, err
	}
	index := s.AddCellDep(r.CellDep())
	a.log.Debugf("cell dep: %s  index: %d", name, index)
	return r, nil
}

// AddLockDep - add the code of a lock if it is a deployed contract
//
// other locks are left for the wallet that signs the transaction
func (a *Assembler) AddLockDep(s *Skeleton, lock *cell.Script) {
	for _, r := range a.table.Records() {
		if r.CodeHash == lock.CodeHash && r.HashType == lock.HashType {
			s.AddCellDep(r.CellDep())
			return
		}
	}
}

// script - a deployed contract's script with args
func (a *Assembler) script(name string, args []byte) (*cell.Script, error) {
	r, err := a.table.Get(name)
	if nil != err {
		return nil, err
	}
	sc := r.Script(args)
	return &sc, nil
}

// first live cell matching a query that the skeleton does not already consume
func (a *Assembler) findOne(ctx context.Context, s *Skeleton, query *ledger.Query, notFound error) (*cell.LiveCell, error) {
	cells, err := a.state.FindCells(ctx, query)
	if nil != err {
		return nil, err
	}
	for _, c := range cells {
		if !s.HasInput(c.OutPoint) {
			return c, nil
		}
	}
	return nil, notFound
}

// Collect - add plain owner cells until inputs cover outputs plus amount
//
// at least one input is always present afterwards
func (a *Assembler) Collect(ctx context.Context, s *Skeleton, owner cell.Script, amount uint64) error {
	covered := func() (bool, error) {
		if 0 == len(s.Inputs) {
			return false, nil
		}
		inputs, err := s.InputCapacity()
		if nil != err {
			return false, err
		}
		outputs, err := s.OutputCapacity()
		if nil != err {
			return false, err
		}
		required, err := cell.AddCapacity(outputs, amount)
		if nil != err {
			return false, err
		}
		return inputs >= required, nil
	}
	if ok, err := covered(); nil != err || ok {
		return err
	}

	cells, err := a.state.FindCells(ctx, &ledger.Query{
		Lock:        &owner,
		WithoutType: true,
		WithoutData: true,
		Limit:       ledger.MaximumLimit,
	})
	if nil != err {
		return err
	}

	for _, c := range cells {
		if s.HasInput(c.OutPoint) {
			continue
		}
		index, err := s.AddInput(c)
		if nil != err {
			return err
		}
		a.log.Debugf("collect input: %d  out point: %s  capacity: %d", index, c.OutPoint, c.Output.Capacity)
		if ok, err := covered(); nil != err || ok {
			return err
		}
	}
	return fault.ErrInsufficientCapacity
}

// Balance - collect for the fee and return the surplus to owner
//
// returns the index of the change output
func (a *Assembler) Balance(ctx context.Context, s *Skeleton, owner cell.Script) (int, error) {
	change := &cell.Output{
		Lock: owner,
	}
	occupied, err := change.OccupiedCapacity(0)
	if nil != err {
		return 0, err
	}

	required, err := cell.AddCapacity(a.fee, occupied)
	if nil != err {
		return 0, err
	}
	err = a.Collect(ctx, s, owner, required)
	if nil != err {
		return 0, err
	}

	// Collect guarantees inputs cover outputs plus the fee
	inputs, err := s.InputCapacity()
	if nil != err {
		return 0, err
	}
	outputs, err := s.OutputCapacity()
	if nil != err {
		return 0, err
	}
	change.Capacity = inputs - outputs - a.fee
	index := s.AddOutput(change, nil)
	a.log.Debugf("change output: %d  capacity: %d", index, change.Capacity)
	return index, nil
}

// AddCertificateOutput - certificate whose type id is taken from its own position
func (a *Assembler) AddCertificateOutput(s *Skeleton, depositer cell.Script, amount uint64) (int, error) {
	typeID, err := s.TypeID(len(s.Outputs))
	if nil != err {
		return 0, err
	}
	certificateType, err := a.script(deployment.Certificate, typeID[:])
	if nil != err {
		return 0, err
	}

	data := cell.EncodeCapacity(amount)
	output, err := sized(&cell.Output{
		Lock: depositer,
		Type: certificateType,
	}, len(data))
	if nil != err {
		return 0, err
	}
	return s.AddOutput(output, data), nil
}

// AddDepositOutput - deposit cell burn linked to a certificate output
func (a *Assembler) AddDepositOutput(s *Skeleton, certificateIndex int, amount uint64) (int, error) {
	certificateOutput, _, err := s.Output(certificateIndex)
	if nil != err {
		return 0, err
	}
	if nil == certificateOutput.Type {
		return 0, fault.ErrTypeScriptMissing
	}

	target := certificateOutput.Type.Hash()
	lock, err := a.script(deployment.TypeBurn, target[:])
	if nil != err {
		return 0, err
	}
	daoType, err := a.script(deployment.Dao, nil)
	if nil != err {
		return 0, err
	}

	// the deposit primitive marks a new deposit with zero data
	data := make([]byte, 8)
	output := &cell.Output{
		Capacity: amount,
		Lock:     *lock,
		Type:     daoType,
	}
	occupied, err := output.OccupiedCapacity(len(data))
	if nil != err {
		return 0, err
	}
	if amount < occupied {
		return 0, fault.ErrOutputCapacityTooSmall
	}
	return s.AddOutput(output, data), nil
}

// lock proxy type script delegating to the depositer
func (a *Assembler) lockProxyType(depositer *cell.Script) (*cell.Script, error) {
	owner := depositer.Hash()
	return a.script(deployment.LockProxy, owner[:])
}

// AddLockProxyOutput - authorization cell guarded by the check lock
func (a *Assembler) AddLockProxyOutput(s *Skeleton, depositer cell.Script) (int, error) {
	lock, err := a.script(deployment.CheckLock, nil)
	if nil != err {
		return 0, err
	}
	proxyType, err := a.lockProxyType(&depositer)
	if nil != err {
		return 0, err
	}

	output, err := sized(&cell.Output{
		Lock: *lock,
		Type: proxyType,
	}, 0)
	if nil != err {
		return 0, err
	}
	return s.AddOutput(output, nil), nil
}

// AddLockProxyInput - consume one authorization cell of the depositer
func (a *Assembler) AddLockProxyInput(ctx context.Context, s *Skeleton, depositer cell.Script) (int, error) {
	proxyType, err := a.lockProxyType(&depositer)
	if nil != err {
		return 0, err
	}
	c, err := a.findOne(ctx, s, &ledger.Query{Type: proxyType}, fault.ErrLockProxyCellNotFound)
	if nil != err {
		return 0, err
	}
	return s.AddInput(c)
}

// AddOutputFromInput - re-create a consumed cell unchanged
func (a *Assembler) AddOutputFromInput(s *Skeleton, inputIndex int) (int, error) {
	c, err := s.Input(inputIndex)
	if nil != err {
		return 0, err
	}
	return s.AddOutput(c.Output.Clone(), c.Data), nil
}

// AddCertificateInput - consume a certificate still held by the depositer
func (a *Assembler) AddCertificateInput(ctx context.Context, s *Skeleton, depositer cell.Script) (int, error) {
	r, err := a.table.Get(deployment.Certificate)
	if nil != err {
		return 0, err
	}
	c, err := a.findOne(ctx, s, &ledger.Query{
		Lock:         &depositer,
		TypeCodeHash: &r.CodeHash,
	}, fault.ErrCertificateCellNotFound)
	if nil != err {
		return 0, err
	}
	return s.AddInput(c)
}

// AddClusterDep - reference the cluster cell with the given id
func (a *Assembler) AddClusterDep(ctx context.Context, s *Skeleton, clusterID digest.Digest) (int, error) {
	if _, err := a.AddCellDep(s, deployment.Cluster); nil != err {
		return 0, err
	}
	clusterType, err := a.script(deployment.Cluster, clusterID[:])
	if nil != err {
		return 0, err
	}
	c, err := a.findOne(ctx, s, &ledger.Query{Type: clusterType}, fault.ErrClusterCellNotFound)
	if nil != err {
		return 0, err
	}
	return s.AddCellDep(cell.CellDep{
		OutPoint: c.OutPoint,
		DepType:  cell.DepTypeCode,
	}), nil
}

// AddClusterOutput - cluster cell whose id is taken from its own position
func (a *Assembler) AddClusterOutput(s *Skeleton, owner cell.Script, name string, description string) (int, digest.Digest, error) {
	clusterID, err := s.TypeID(len(s.Outputs))
	if nil != err {
		return 0, clusterID, err
	}
	clusterType, err := a.script(deployment.Cluster, clusterID[:])
	if nil != err {
		return 0, clusterID, err
	}

	data := (&spore.Cluster{Name: name, Description: description}).Pack()
	output, err := sized(&cell.Output{
		Lock: owner,
		Type: clusterType,
	}, len(data))
	if nil != err {
		return 0, clusterID, err
	}
	return s.AddOutput(output, data), clusterID, nil
}

// capacity recorded in a certificate input and the header of its block
func (a *Assembler) certificateOrigin(ctx context.Context, s *Skeleton, certificateIndex int) (*cell.LiveCell, uint64, *cell.Header, error) {
	c, err := s.Input(certificateIndex)
	if nil != err {
		return nil, 0, nil, err
	}
	if nil == c.Output.Type {
		return nil, 0, nil, fault.ErrTypeScriptMissing
	}
	capacity, err := cell.DecodeCapacity(c.Data)
	if nil != err {
		return nil, 0, nil, err
	}
	header, err := a.state.Header(ctx, c.BlockHash)
	if nil != err {
		return nil, 0, nil, err
	}
	return c, capacity, header, nil
}

// AddSporeOutput - collectible recording the deposit of a certificate input
func (a *Assembler) AddSporeOutput(ctx context.Context, s *Skeleton, certificateIndex int, clusterID digest.Digest) (int, digest.Digest, error) {
	c, capacity, header, err := a.certificateOrigin(ctx, s, certificateIndex)
	if nil != err {
		return 0, digest.Digest{}, err
	}

	sporeID, err := s.TypeID(len(s.Outputs))
	if nil != err {
		return 0, digest.Digest{}, err
	}
	sporeType, err := a.script(deployment.Spore, sporeID[:])
	if nil != err {
		return 0, digest.Digest{}, err
	}

	data := spore.NewDOB(capacity, header.Number, clusterID).Pack()
	output, err := sized(&cell.Output{
		Lock: c.Output.Lock,
		Type: sporeType,
	}, len(data))
	if nil != err {
		return 0, digest.Digest{}, err
	}
	index := s.AddOutput(output, data)
	a.log.Debugf("collectible output: %d  id: %s  capacity: %d  block: %d", index, sporeID, capacity, header.Number)
	return index, sporeID, nil
}

// AddChainedCertificateOutput - certificate re-created under a burn link
// to the collectible, with the deposit header at its own index
func (a *Assembler) AddChainedCertificateOutput(ctx context.Context, s *Skeleton, certificateIndex int, sporeIndex int) (int, error) {
	c, capacity, header, err := a.certificateOrigin(ctx, s, certificateIndex)
	if nil != err {
		return 0, err
	}

	sporeOutput, _, err := s.Output(sporeIndex)
	if nil != err {
		return 0, err
	}
	if nil == sporeOutput.Type {
		return 0, fault.ErrTypeScriptMissing
	}

	target := sporeOutput.Type.Hash()
	lock, err := a.script(deployment.TypeBurn, target[:])
	if nil != err {
		return 0, err
	}

	data := cell.EncodeCapacity(capacity)
	output, err := sized(&cell.Output{
		Lock: *lock,
		Type: c.Output.Type.Clone(),
	}, len(data))
	if nil != err {
		return 0, err
	}

	index := len(s.Outputs)
	err = s.SetHeaderDep(index, header.Hash())
	if nil != err {
		return 0, err
	}
	return s.AddOutput(output, data), nil
}

// AddSporeInput - consume a collectible, optionally checking its owner
func (a *Assembler) AddSporeInput(ctx context.Context, s *Skeleton, sporeID digest.Digest, owner *cell.Script) (int, error) {
	sporeType, err := a.script(deployment.Spore, sporeID[:])
	if nil != err {
		return 0, err
	}
	c, err := a.findOne(ctx, s, &ledger.Query{Type: sporeType}, fault.ErrSporeCellNotFound)
	if nil != err {
		return 0, err
	}
	if nil != owner && !owner.Equal(&c.Output.Lock) {
		return 0, fault.ErrNotOwner
	}
	return s.AddInput(c)
}

// AddTypeBurnInput - consume the cell burn linked to an input's type
func (a *Assembler) AddTypeBurnInput(ctx context.Context, s *Skeleton, inputIndex int) (int, error) {
	target, err := s.Input(inputIndex)
	if nil != err {
		return 0, err
	}
	typeHash, ok := target.TypeHash()
	if !ok {
		return 0, fault.ErrTypeScriptMissing
	}

	lock, err := a.script(deployment.TypeBurn, typeHash[:])
	if nil != err {
		return 0, err
	}
	c, err := a.findOne(ctx, s, &ledger.Query{Lock: lock}, fault.ErrTypeBurnCellNotFound)
	if nil != err {
		return 0, err
	}
	return s.AddInput(c)
}
