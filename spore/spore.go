// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package spore

import (
	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/fault"
	"github.com/bitmark-inc/daocertificate/molecule"
)

// ContentTypeDOB - the content type of a certificate collectible
const ContentTypeDOB = "dob/1"

// ContentSize - capacity followed by block number
const ContentSize = 16

// Data - collectible cell data
type Data struct {
	ContentType string     `json:"content_type"`
	Content     cell.Bytes `json:"content"`
	ClusterID   cell.Bytes `json:"cluster_id,omitempty"`
}

// Pack - molecule table: content_type, content, cluster_id option
func (d *Data) Pack() []byte {
	return molecule.PackTable(
		molecule.PackBytes([]byte(d.ContentType)),
		molecule.PackBytes(d.Content),
		molecule.PackOption(molecule.PackBytes(d.ClusterID), nil != d.ClusterID),
	)
}

// HasCluster - true if a cluster id is present
func (d *Data) HasCluster() bool {
	return nil != d.ClusterID
}

// Unpack - decode collectible data, extra trailing fields are accepted
func Unpack(data []byte) (*Data, error) {
	fields, err := molecule.UnpackTable(data, 3, true)
	if nil != err {
		return nil, err
	}

	contentType, err := molecule.UnpackBytes(fields[0])
	if nil != err {
		return nil, err
	}

	content, err := molecule.UnpackBytes(fields[1])
	if nil != err {
		return nil, err
	}

	d := &Data{
		ContentType: string(contentType),
		Content:     append(cell.Bytes{}, content...),
	}

	if packed, ok := molecule.UnpackOption(fields[2]); ok {
		clusterID, err := molecule.UnpackBytes(packed)
		if nil != err {
			return nil, err
		}
		d.ClusterID = append(cell.Bytes{}, clusterID...)
	}
	return d, nil
}

// DOBContent - le64 capacity followed by le64 block number
func DOBContent(capacity uint64, blockNumber uint64) []byte {
	content := make([]byte, 0, ContentSize)
	content = append(content, molecule.PackUint64(capacity)...)
	return append(content, molecule.PackUint64(blockNumber)...)
}

// NewDOB - collectible data recording a deposit
func NewDOB(capacity uint64, blockNumber uint64, clusterID digest.Digest) *Data {
	return &Data{
		ContentType: ContentTypeDOB,
		Content:     DOBContent(capacity, blockNumber),
		ClusterID:   append(cell.Bytes{}, clusterID[:]...),
	}
}

// ID - the spore id is the type args of the collectible cell
func ID(typeScript *cell.Script) (digest.Digest, error) {
	id := digest.Digest{}
	if nil == typeScript {
		return id, fault.ErrTypeScriptMissing
	}
	err := digest.FromBytes(&id, typeScript.Args)
	return id, err
}
