// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assembler_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/daocertificate/assembler"
	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/certificate"
	"github.com/bitmark-inc/daocertificate/chain"
	"github.com/bitmark-inc/daocertificate/deployment"
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/fault"
	"github.com/bitmark-inc/daocertificate/fixtures"
	"github.com/bitmark-inc/daocertificate/spore"
)

func TestBuildDepositShape(t *testing.T) {
	alice := owner("alice")
	funds := liveCell("funds", 0, 5000*ckb, alice, nil, nil)
	a, _, ctl := setupAssembler(t, funds)
	defer teardownAssembler(ctl)

	amount := uint64(1000 * ckb)
	tx, err := a.BuildDeposit(context.Background(), alice, amount)
	require.Nil(t, err, "build error")

	require.Equal(t, 1, len(tx.Inputs), "inputs")
	require.Equal(t, 3, len(tx.Outputs), "outputs: certificate, deposit, change")

	certificateOutput := tx.Outputs[0]
	typeID := certificate.TypeID(tx.Inputs[0], 0)
	assert.Equal(t, deployed(deployment.Certificate, typeID[:]), certificateOutput.Type, "certificate type")
	assert.Equal(t, alice, certificateOutput.Lock, "certificate owner")
	assert.Equal(t, cell.Bytes(cell.EncodeCapacity(amount)), tx.OutputsData[0], "certificate data")

	deposit := tx.Outputs[1]
	target := certificateOutput.Type.Hash()
	assert.Equal(t, amount, deposit.Capacity, "deposit capacity")
	assert.Equal(t, *deployed(deployment.TypeBurn, target[:]), deposit.Lock, "deposit burn link")
	assert.Equal(t, deployed(deployment.Dao, nil), deposit.Type, "deposit type")
	assert.Equal(t, cell.Bytes(make([]byte, 8)), tx.OutputsData[1], "deposit marker")

	change := tx.Outputs[2]
	assert.Equal(t, alice, change.Lock, "change owner")
	total := certificateOutput.Capacity + deposit.Capacity + change.Capacity + fee
	assert.Equal(t, funds.Output.Capacity, total, "capacity not conserved")

	assert.Contains(t, tx.CellDeps, record(deployment.Certificate).CellDep(), "certificate code")
	assert.Contains(t, tx.CellDeps, record(deployment.AlwaysSuccess).CellDep(), "owner lock code")
}

func TestBuildDepositCollectsSeveralCells(t *testing.T) {
	alice := owner("alice")
	a, _, ctl := setupAssembler(t,
		liveCell("one", 0, 600*ckb, alice, nil, nil),
		liveCell("two", 0, 600*ckb, alice, nil, nil),
		liveCell("typed", 0, 9000*ckb, alice, deployed(deployment.Spore, []byte{1}), nil),
		liveCell("data", 0, 9000*ckb, alice, nil, []byte{1}),
	)
	defer teardownAssembler(ctl)

	tx, err := a.BuildDeposit(context.Background(), alice, 1000*ckb)
	require.Nil(t, err, "build error")
	assert.Equal(t, 2, len(tx.Inputs), "plain cells only")

	// the certificate type id follows the first input
	typeID := certificate.TypeID(tx.Inputs[0], 0)
	assert.Equal(t, cell.Bytes(typeID[:]), tx.Outputs[0].Type.Args, "type id")
}

func TestBuildDepositInsufficient(t *testing.T) {
	alice := owner("alice")
	a, _, ctl := setupAssembler(t, liveCell("small", 0, 500*ckb, alice, nil, nil))
	defer teardownAssembler(ctl)

	_, err := a.BuildDeposit(context.Background(), alice, 1000*ckb)
	assert.Equal(t, fault.ErrInsufficientCapacity, err, "built without funds")

	_, err = a.BuildDeposit(context.Background(), alice, 10*ckb)
	assert.Equal(t, fault.ErrOutputCapacityTooSmall, err, "deposit below occupied capacity")
}

func TestBuildDepositCapacityOverflow(t *testing.T) {
	alice := owner("alice")
	a, _, ctl := setupAssembler(t, liveCell("everything", 0, math.MaxUint64, alice, nil, nil))
	defer teardownAssembler(ctl)

	// the certificate output pushes the output total past the maximum
	_, err := a.BuildDeposit(context.Background(), alice, math.MaxUint64-10*ckb)
	assert.Equal(t, fault.ErrCapacityOverflow, err, "change computed from wrapped outputs")
}

func TestBuildLockProxyShape(t *testing.T) {
	alice := owner("alice")
	a, _, ctl := setupAssembler(t, liveCell("funds", 0, 500*ckb, alice, nil, nil))
	defer teardownAssembler(ctl)

	tx, err := a.BuildLockProxy(context.Background(), alice)
	require.Nil(t, err, "build error")
	require.Equal(t, 2, len(tx.Outputs), "outputs: proxy, change")

	aliceHash := alice.Hash()
	proxy := tx.Outputs[0]
	assert.Equal(t, *deployed(deployment.CheckLock, nil), proxy.Lock, "proxy lock")
	assert.Equal(t, deployed(deployment.LockProxy, aliceHash[:]), proxy.Type, "proxy type")
	assert.Contains(t, tx.CellDeps, record(deployment.CheckLock).CellDep(), "check lock code")
}

// cells of a depositer who has deposited but not yet minted
func depositedCells(depositer cell.Script, amount uint64) (*cell.LiveCell, *cell.LiveCell) {
	depositerHash := depositer.Hash()
	proxy := liveCell("proxy", 0, 106*ckb, *deployed(deployment.CheckLock, nil), deployed(deployment.LockProxy, depositerHash[:]), nil)
	typeID := digest.NewDigest([]byte("type id"))
	certificateCell := liveCell("deposit", 0, 200*ckb, depositer, deployed(deployment.Certificate, typeID[:]), cell.EncodeCapacity(amount))
	return proxy, certificateCell
}

func clusterCell(id digest.Digest) *cell.LiveCell {
	return liveCell("cluster", 0, 200*ckb, owner("artist"), deployed(deployment.Cluster, id[:]), nil)
}

func TestBuildMintShape(t *testing.T) {
	alice := owner("alice")
	clusterID := digest.NewDigest([]byte("cluster"))
	amount := uint64(1000 * ckb)
	proxy, certificateCell := depositedCells(alice, amount)
	cluster := clusterCell(clusterID)

	a, _, ctl := setupAssembler(t, proxy, certificateCell, cluster, liveCell("funds", 0, 1000*ckb, alice, nil, nil))
	defer teardownAssembler(ctl)

	tx, sporeID, err := a.BuildMint(context.Background(), alice, clusterID)
	require.Nil(t, err, "build error")

	assert.Equal(t, proxy.OutPoint, tx.Inputs[0].PreviousOutput, "proxy is the first input")
	assert.Equal(t, certificateCell.OutPoint, tx.Inputs[1].PreviousOutput, "certificate input")
	require.Equal(t, 4, len(tx.Outputs), "outputs: proxy, collectible, certificate, change")

	assert.Equal(t, proxy.Output, tx.Outputs[0], "proxy re-created")

	sporeOutput := tx.Outputs[1]
	assert.Equal(t, certificate.TypeID(tx.Inputs[0], 1), sporeID, "returned collectible id")
	assert.Equal(t, deployed(deployment.Spore, sporeID[:]), sporeOutput.Type, "collectible id")
	assert.Equal(t, alice, sporeOutput.Lock, "collectible owner")

	data, err := spore.Unpack(tx.OutputsData[1])
	require.Nil(t, err, "collectible data")
	assert.Equal(t, spore.ContentTypeDOB, data.ContentType, "content type")
	assert.Equal(t, cell.Bytes(clusterID[:]), data.ClusterID, "cluster")
	assert.Equal(t, cell.Bytes(spore.DOBContent(amount, depositHeader.Number)), data.Content, "content")

	chained := tx.Outputs[2]
	sporeHash := sporeOutput.Type.Hash()
	assert.Equal(t, *deployed(deployment.TypeBurn, sporeHash[:]), chained.Lock, "certificate burn link")
	assert.Equal(t, certificateCell.Output.Type, chained.Type, "certificate type kept")
	assert.Equal(t, cell.Bytes(cell.EncodeCapacity(amount)), tx.OutputsData[2], "certificate data kept")

	require.Equal(t, 3, len(tx.HeaderDeps), "header dep at the certificate index")
	assert.Equal(t, depositHeader.Hash(), tx.HeaderDeps[2], "deposit header")

	assert.Contains(t, tx.CellDeps, cell.CellDep{OutPoint: cluster.OutPoint, DepType: cell.DepTypeCode}, "cluster dep")
}

func TestBuildMintMissingCells(t *testing.T) {
	alice := owner("alice")
	clusterID := digest.NewDigest([]byte("cluster"))
	proxy, certificateCell := depositedCells(alice, 1000*ckb)
	funds := liveCell("funds", 0, 1000*ckb, alice, nil, nil)

	tests := []struct {
		cells []*cell.LiveCell
		err   error
	}{
		{[]*cell.LiveCell{certificateCell, clusterCell(clusterID), funds}, fault.ErrLockProxyCellNotFound},
		{[]*cell.LiveCell{proxy, clusterCell(clusterID), funds}, fault.ErrCertificateCellNotFound},
		{[]*cell.LiveCell{proxy, certificateCell, funds}, fault.ErrClusterCellNotFound},
		{[]*cell.LiveCell{proxy, certificateCell, clusterCell(digest.NewDigest([]byte("other"))), funds}, fault.ErrClusterCellNotFound},
	}

	for i, test := range tests {
		a, _, ctl := setupAssembler(t, test.cells...)
		_, _, err := a.BuildMint(context.Background(), alice, clusterID)
		assert.Equal(t, test.err, err, "%d: wrong error", i)
		teardownAssembler(ctl)
	}
}

func TestBuildMintChainedCertificateNotFound(t *testing.T) {
	alice := owner("alice")
	clusterID := digest.NewDigest([]byte("cluster"))
	proxy, certificateCell := depositedCells(alice, 1000*ckb)

	// already minted: the certificate is no longer locked by the depositer
	sporeHash := digest.NewDigest([]byte("earlier collectible"))
	certificateCell.Output.Lock = *deployed(deployment.TypeBurn, sporeHash[:])

	a, _, ctl := setupAssembler(t, proxy, certificateCell, clusterCell(clusterID), liveCell("funds", 0, 1000*ckb, alice, nil, nil))
	defer teardownAssembler(ctl)

	_, _, err := a.BuildMint(context.Background(), alice, clusterID)
	assert.Equal(t, fault.ErrCertificateCellNotFound, err, "chained certificate minted again")
}

func TestBuildMintMalformedCertificate(t *testing.T) {
	alice := owner("alice")
	clusterID := digest.NewDigest([]byte("cluster"))
	proxy, certificateCell := depositedCells(alice, 1000*ckb)
	certificateCell.Data = cell.Bytes{0x01, 0x02}

	a, _, ctl := setupAssembler(t, proxy, certificateCell, clusterCell(clusterID), liveCell("funds", 0, 1000*ckb, alice, nil, nil))
	defer teardownAssembler(ctl)

	_, _, err := a.BuildMint(context.Background(), alice, clusterID)
	assert.Equal(t, fault.ErrInvalidCellData, err, "short certificate data")
}

// cells of a depositer who has minted
func mintedCells(depositer cell.Script, sporeID digest.Digest, amount uint64) []*cell.LiveCell {
	sporeCell := liveCell("spore", 1, 200*ckb, depositer, deployed(deployment.Spore, sporeID[:]), nil)
	sporeHash := sporeCell.Output.Type.Hash()

	typeID := digest.NewDigest([]byte("type id"))
	certificateCell := liveCell("mint", 2, 200*ckb, *deployed(deployment.TypeBurn, sporeHash[:]), deployed(deployment.Certificate, typeID[:]), cell.EncodeCapacity(amount))
	certificateHash := certificateCell.Output.Type.Hash()

	depositCell := liveCell("deposit", 1, amount, *deployed(deployment.TypeBurn, certificateHash[:]), deployed(deployment.Dao, nil), make([]byte, 8))
	return []*cell.LiveCell{sporeCell, certificateCell, depositCell}
}

func TestBuildWithdrawShape(t *testing.T) {
	alice := owner("alice")
	sporeID := digest.NewDigest([]byte("spore id"))
	amount := uint64(1000 * ckb)
	cells := mintedCells(alice, sporeID, amount)

	a, _, ctl := setupAssembler(t, cells...)
	defer teardownAssembler(ctl)

	tx, err := a.BuildWithdraw(context.Background(), alice, sporeID)
	require.Nil(t, err, "build error")

	require.Equal(t, 3, len(tx.Inputs), "inputs")
	for i, c := range cells {
		assert.Equal(t, c.OutPoint, tx.Inputs[i].PreviousOutput, "%d: chain order", i)
	}
	require.Equal(t, 1, len(tx.Outputs), "change only")
	assert.Equal(t, alice, tx.Outputs[0].Lock, "change owner")
	assert.Equal(t, 400*ckb+amount-fee, tx.Outputs[0].Capacity, "change capacity")
	assert.Contains(t, tx.CellDeps, record(deployment.TypeBurn).CellDep(), "type burn code")
}

func TestBuildWithdrawChecks(t *testing.T) {
	alice := owner("alice")
	sporeID := digest.NewDigest([]byte("spore id"))
	cells := mintedCells(alice, sporeID, 1000*ckb)

	tests := []struct {
		depositer cell.Script
		sporeID   digest.Digest
		cells     []*cell.LiveCell
		err       error
	}{
		{owner("bob"), sporeID, cells, fault.ErrNotOwner},
		{alice, digest.NewDigest([]byte("unknown")), cells, fault.ErrSporeCellNotFound},
		{alice, sporeID, cells[:1], fault.ErrTypeBurnCellNotFound},
		{alice, sporeID, cells[:2], fault.ErrTypeBurnCellNotFound},
	}

	for i, test := range tests {
		a, _, ctl := setupAssembler(t, test.cells...)
		_, err := a.BuildWithdraw(context.Background(), test.depositer, test.sporeID)
		assert.Equal(t, test.err, err, "%d: wrong error", i)
		teardownAssembler(ctl)
	}
}

func TestBuildClusterShape(t *testing.T) {
	artist := owner("artist")
	a, _, ctl := setupAssembler(t, liveCell("funds", 0, 500*ckb, artist, nil, nil))
	defer teardownAssembler(ctl)

	tx, id, err := a.BuildCluster(context.Background(), artist, "deposits", "certified deposits")
	require.Nil(t, err, "build error")

	assert.Equal(t, certificate.TypeID(tx.Inputs[0], 0), id, "cluster id")
	assert.Equal(t, deployed(deployment.Cluster, id[:]), tx.Outputs[0].Type, "cluster type")

	data, err := spore.UnpackCluster(tx.OutputsData[0])
	require.Nil(t, err, "cluster data")
	assert.Equal(t, "deposits", data.Name, "cluster name")
}

func TestUnknownDeployment(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	table, err := deployment.New(chain.Mainnet, nil, nil)
	require.Nil(t, err, "table error")
	a := assembler.New(table, nil, fee)

	_, err = a.AddCellDep(assembler.NewSkeleton(), deployment.Certificate)
	assert.Equal(t, fault.ErrDeploymentNotFound, err, "missing deployment")

	_, err = a.BuildDeposit(context.Background(), owner("alice"), 1000*ckb)
	assert.Equal(t, fault.ErrDeploymentNotFound, err, "deposit without deployment")
}
