// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package spore

import (
	"github.com/bitmark-inc/daocertificate/molecule"
)

// Cluster - cluster cell data
type Cluster struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Pack - molecule table: name, description
func (c *Cluster) Pack() []byte {
	return molecule.PackTable(
		molecule.PackBytes([]byte(c.Name)),
		molecule.PackBytes([]byte(c.Description)),
	)
}

// UnpackCluster - decode cluster data, extra trailing fields are accepted
func UnpackCluster(data []byte) (*Cluster, error) {
	fields, err := molecule.UnpackTable(data, 2, true)
	if nil != err {
		return nil, err
	}
	name, err := molecule.UnpackBytes(fields[0])
	if nil != err {
		return nil, err
	}
	description, err := molecule.UnpackBytes(fields[1])
	if nil != err {
		return nil, err
	}
	return &Cluster{
		Name:        string(name),
		Description: string(description),
	}, nil
}
