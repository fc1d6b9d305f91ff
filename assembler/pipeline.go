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
)

// BuildDeposit - lock amount in a deposit cell and issue its certificate
func (a *Assembler) BuildDeposit(ctx context.Context, depositer cell.Script, amount uint64) (*cell.Transaction, error) {
	s := NewSkeleton()

	if _, err := a.AddCellDep(s, deployment.Certificate); nil != err {
		return nil, err
	}
	if _, err := a.AddCellDep(s, deployment.Dao); nil != err {
		return nil, err
	}
	a.AddLockDep(s, &depositer)

	err := a.Collect(ctx, s, depositer, amount)
	if nil != err {
		return nil, err
	}

	certificateIndex, err := a.AddCertificateOutput(s, depositer, amount)
	if nil != err {
		return nil, err
	}

	_, err = a.AddDepositOutput(s, certificateIndex, amount)
	if nil != err {
		return nil, err
	}

	_, err = a.Balance(ctx, s, depositer)
	if nil != err {
		return nil, err
	}

	tx := s.Transaction()
	a.log.Infof("deposit: %d  certificate output: %d  tx: %s", amount, certificateIndex, tx.Hash())
	return tx, nil
}

// BuildLockProxy - create an authorization cell for later mints
func (a *Assembler) BuildLockProxy(ctx context.Context, depositer cell.Script) (*cell.Transaction, error) {
	s := NewSkeleton()

	if _, err := a.AddCellDep(s, deployment.CheckLock); nil != err {
		return nil, err
	}
	if _, err := a.AddCellDep(s, deployment.LockProxy); nil != err {
		return nil, err
	}
	a.AddLockDep(s, &depositer)

	proxyIndex, err := a.AddLockProxyOutput(s, depositer)
	if nil != err {
		return nil, err
	}

	_, err = a.Balance(ctx, s, depositer)
	if nil != err {
		return nil, err
	}

	tx := s.Transaction()
	a.log.Infof("lock proxy output: %d  tx: %s", proxyIndex, tx.Hash())
	return tx, nil
}

// BuildMint - convert an unchained certificate into a collectible
//
// returns the transaction and the id of the new collectible
func (a *Assembler) BuildMint(ctx context.Context, depositer cell.Script, clusterID digest.Digest) (*cell.Transaction, digest.Digest, error) {
	s := NewSkeleton()

	for _, name := range []string{deployment.CheckLock, deployment.LockProxy, deployment.Certificate, deployment.Spore} {
		if _, err := a.AddCellDep(s, name); nil != err {
			return nil, digest.Digest{}, err
		}
	}
	a.AddLockDep(s, &depositer)

	proxyIndex, err := a.AddLockProxyInput(ctx, s, depositer)
	if nil != err {
		return nil, digest.Digest{}, err
	}
	_, err = a.AddOutputFromInput(s, proxyIndex)
	if nil != err {
		return nil, digest.Digest{}, err
	}

	certificateInput, err := a.AddCertificateInput(ctx, s, depositer)
	if nil != err {
		return nil, digest.Digest{}, err
	}

	_, err = a.AddClusterDep(ctx, s, clusterID)
	if nil != err {
		return nil, digest.Digest{}, err
	}

	sporeIndex, sporeID, err := a.AddSporeOutput(ctx, s, certificateInput, clusterID)
	if nil != err {
		return nil, digest.Digest{}, err
	}

	certificateOutput, err := a.AddChainedCertificateOutput(ctx, s, certificateInput, sporeIndex)
	if nil != err {
		return nil, digest.Digest{}, err
	}

	_, err = a.Balance(ctx, s, depositer)
	if nil != err {
		return nil, digest.Digest{}, err
	}

	tx := s.Transaction()
	a.log.Infof("mint: collectible: %s  output: %d  certificate output: %d  tx: %s", sporeID, sporeIndex, certificateOutput, tx.Hash())
	return tx, sporeID, nil
}

// BuildWithdraw - consume a collectible and unwind its chain
func (a *Assembler) BuildWithdraw(ctx context.Context, depositer cell.Script, sporeID digest.Digest) (*cell.Transaction, error) {
	s := NewSkeleton()

	for _, name := range []string{deployment.Spore, deployment.Certificate, deployment.TypeBurn, deployment.Dao} {
		if _, err := a.AddCellDep(s, name); nil != err {
			return nil, err
		}
	}
	a.AddLockDep(s, &depositer)

	sporeIndex, err := a.AddSporeInput(ctx, s, sporeID, &depositer)
	if nil != err {
		return nil, err
	}

	certificateIndex, err := a.AddTypeBurnInput(ctx, s, sporeIndex)
	if nil != err {
		return nil, err
	}

	depositIndex, err := a.AddTypeBurnInput(ctx, s, certificateIndex)
	if nil != err {
		return nil, err
	}

	_, err = a.Balance(ctx, s, depositer)
	if nil != err {
		return nil, err
	}

	tx := s.Transaction()
	a.log.Infof("withdraw: inputs collectible: %d  certificate: %d  deposit: %d  tx: %s", sporeIndex, certificateIndex, depositIndex, tx.Hash())
	return tx, nil
}

// BuildCluster - create a cluster cell for collectibles to reference
func (a *Assembler) BuildCluster(ctx context.Context, owner cell.Script, name string, description string) (*cell.Transaction, digest.Digest, error) {
	s := NewSkeleton()

	if _, err := a.AddCellDep(s, deployment.Cluster); nil != err {
		return nil, digest.Digest{}, err
	}
	a.AddLockDep(s, &owner)

	// any input fixes the cluster id
	err := a.Collect(ctx, s, owner, 0)
	if nil != err {
		return nil, digest.Digest{}, err
	}

	clusterIndex, clusterID, err := a.AddClusterOutput(s, owner, name, description)
	if nil != err {
		return nil, digest.Digest{}, err
	}

	_, err = a.Balance(ctx, s, owner)
	if nil != err {
		return nil, digest.Digest{}, err
	}

	tx := s.Transaction()
	a.log.Infof("cluster: %s  output: %d  tx: %s", clusterID, clusterIndex, tx.Hash())
	return tx, clusterID, nil
}
