// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package deployment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/chain"
	"github.com/bitmark-inc/daocertificate/deployment"
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/fault"
)

const txHash = "0x1111111111111111111111111111111111111111111111111111111111111111"

func TestFakenetPlaceholders(t *testing.T) {
	table, err := deployment.New(chain.Fakenet, nil, nil)
	require.Nil(t, err, "new error")

	for _, name := range deployment.Names {
		r, err := table.Get(name)
		require.Nil(t, err, "%s: get error", name)
		assert.Equal(t, digest.NewDigest([]byte("fakenet-deployment:"+name)), r.OutPoint.TxHash, "%s: tx hash", name)
		assert.Equal(t, uint32(0), r.OutPoint.Index, "%s: index", name)
		assert.Equal(t, digest.NewDigest(deployment.PlaceholderCode(name)), r.CodeHash, "%s: code hash", name)
	}

	again, err := deployment.New(chain.Fakenet, nil, nil)
	require.Nil(t, err, "second new error")
	a, _ := table.Get(deployment.Certificate)
	b, _ := again.Get(deployment.Certificate)
	assert.Equal(t, a, b, "placeholders are deterministic")
}

func TestMainnetMissing(t *testing.T) {
	table, err := deployment.New(chain.Mainnet, nil, nil)
	require.Nil(t, err, "new error")

	_, err = table.Get(deployment.Certificate)
	assert.Equal(t, fault.ErrDeploymentNotFound, err, "no mainnet record")

	_, err = table.CertificateParameters()
	assert.Equal(t, fault.ErrDeploymentNotFound, err, "no parameters")
}

func TestExplicitCodeHash(t *testing.T) {
	codeHash := digest.NewDigest([]byte("code"))
	entries := map[string]deployment.Entry{
		deployment.Certificate: {
			TxHash:   txHash,
			Index:    2,
			DepType:  "dep_group",
			CodeHash: codeHash.String(),
		},
	}
	table, err := deployment.New(chain.Testnet, entries, nil)
	require.Nil(t, err, "new error")

	r, err := table.Get(deployment.Certificate)
	require.Nil(t, err, "get error")
	assert.Equal(t, uint32(2), r.OutPoint.Index, "index")
	assert.Equal(t, cell.DepTypeDepGroup, r.DepType, "dep type")
	assert.Equal(t, codeHash, r.CodeHash, "code hash")
	assert.Equal(t, cell.HashTypeType, r.HashType, "hash type defaults to type")

	dep := r.CellDep()
	assert.Equal(t, r.OutPoint, dep.OutPoint, "cell dep out point")

	s := r.Script([]byte{1})
	assert.Equal(t, codeHash, s.CodeHash, "script code hash")
	assert.Equal(t, cell.Bytes{1}, s.Args, "script args")
}

func TestLoadedCodeHash(t *testing.T) {
	code := []byte("binary")
	loaded := []cell.OutPoint{}
	loader := func(o cell.OutPoint) ([]byte, error) {
		loaded = append(loaded, o)
		return code, nil
	}
	entries := map[string]deployment.Entry{
		deployment.CheckLock: {TxHash: txHash, Index: 0},
	}
	table, err := deployment.New(chain.Mainnet, entries, loader)
	require.Nil(t, err, "new error")
	assert.Equal(t, 1, len(loaded), "loader calls")

	r, err := table.Get(deployment.CheckLock)
	require.Nil(t, err, "get error")
	assert.Equal(t, digest.NewDigest(code), r.CodeHash, "data hash")
	assert.Equal(t, cell.HashTypeData1, r.HashType, "data1 hash type")

	_, err = deployment.New(chain.Mainnet, entries, nil)
	assert.Equal(t, fault.ErrMissingParameters, err, "no loader")
}

func TestInvalidEntries(t *testing.T) {
	_, err := deployment.New("bitmark", nil, nil)
	assert.Equal(t, fault.ErrInvalidNetwork, err, "network")

	items := []struct {
		entry    deployment.Entry
		expected error
	}{
		{deployment.Entry{}, fault.ErrMissingParameters},
		{deployment.Entry{TxHash: "0x12"}, fault.ErrInvalidLength},
		{deployment.Entry{TxHash: txHash, DepType: "library"}, fault.ErrInvalidDepType},
		{deployment.Entry{TxHash: txHash, CodeHash: txHash, HashType: "sha"}, fault.ErrInvalidHashType},
	}
	for i, item := range items {
		entries := map[string]deployment.Entry{deployment.Spore: item.entry}
		_, err := deployment.New(chain.Testnet, entries, nil)
		assert.Equal(t, item.expected, err, "%d: error", i)
	}
}

func TestParameters(t *testing.T) {
	table, err := deployment.New(chain.Fakenet, nil, nil)
	require.Nil(t, err, "new error")

	p, err := table.CertificateParameters()
	require.Nil(t, err, "certificate parameters")
	assert.Equal(t, digest.NewDigest(deployment.PlaceholderCode(deployment.Dao)), p.DaoCodeHash, "dao")
	assert.Equal(t, digest.NewDigest(deployment.PlaceholderCode(deployment.TypeBurn)), p.TypeBurnCodeHash, "type burn")
	assert.Equal(t, digest.NewDigest(deployment.PlaceholderCode(deployment.Spore)), p.SporeCodeHash, "spore")

	c, err := table.CheckLockParameters()
	require.Nil(t, err, "check lock parameters")
	assert.Equal(t, digest.NewDigest(deployment.PlaceholderCode(deployment.Certificate)), c.CertificateCodeHash, "certificate")

	assert.Equal(t, len(deployment.Names), len(table.Records()), "records")
}
