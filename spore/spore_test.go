// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package spore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/fault"
	"github.com/bitmark-inc/daocertificate/molecule"
	"github.com/bitmark-inc/daocertificate/spore"
)

func TestDOBContent(t *testing.T) {
	expected := []byte{
		0xe8, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x14, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	assert.Equal(t, expected, spore.DOBContent(1000, 20), "content of 1000 at block 20")
}

func TestPackUnpack(t *testing.T) {
	cluster := digest.NewDigest([]byte("cluster"))
	d := spore.NewDOB(1000, 20, cluster)

	unpacked, err := spore.Unpack(d.Pack())
	require.Nil(t, err, "unpack error")
	assert.Equal(t, spore.ContentTypeDOB, unpacked.ContentType, "content type")
	assert.Equal(t, d.Content, unpacked.Content, "content")
	assert.True(t, unpacked.HasCluster(), "cluster present")
	assert.Equal(t, cell.Bytes(cluster[:]), unpacked.ClusterID, "cluster id")
}

func TestNoCluster(t *testing.T) {
	d := &spore.Data{
		ContentType: spore.ContentTypeDOB,
		Content:     spore.DOBContent(1, 2),
	}

	unpacked, err := spore.Unpack(d.Pack())
	require.Nil(t, err, "unpack error")
	assert.False(t, unpacked.HasCluster(), "cluster absent")
}

func TestCompatibleExtraField(t *testing.T) {
	packed := molecule.PackTable(
		molecule.PackBytes([]byte("dob/1")),
		molecule.PackBytes([]byte{1}),
		molecule.PackBytes([]byte{2}),
		molecule.PackBytes([]byte{3}),
	)
	unpacked, err := spore.Unpack(packed)
	require.Nil(t, err, "unpack error")
	assert.Equal(t, "dob/1", unpacked.ContentType, "content type")
}

func TestMalformed(t *testing.T) {
	_, err := spore.Unpack([]byte{0x01, 0x02})
	assert.Equal(t, fault.ErrNotMoleculeData, err, "short data")

	_, err = spore.Unpack(cell.EncodeCapacity(1000))
	assert.Equal(t, fault.ErrNotMoleculeData, err, "capacity is not collectible data")
}

func TestID(t *testing.T) {
	id := digest.NewDigest([]byte("spore"))
	s := &cell.Script{Args: id[:]}

	actual, err := spore.ID(s)
	require.Nil(t, err, "id error")
	assert.Equal(t, id, actual, "spore id")

	_, err = spore.ID(nil)
	assert.Equal(t, fault.ErrTypeScriptMissing, err, "missing type")
}

func TestCluster(t *testing.T) {
	c := &spore.Cluster{Name: "deposits", Description: "certified deposits"}

	decoded, err := spore.UnpackCluster(c.Pack())
	require.Nil(t, err, "unpack error")
	assert.Equal(t, c, decoded, "cluster data")

	_, err = spore.UnpackCluster([]byte{0x00})
	assert.Equal(t, fault.ErrNotMoleculeData, err, "short data")
}
