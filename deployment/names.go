// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package deployment

// contract names
const (
	Certificate   = "dao-certificate-type"
	CheckLock     = "dao-certificate-check-lock"
	TypeBurn      = "type-burn-lock"
	LockProxy     = "lock-proxy-lock"
	Dao           = "dao"
	Spore         = "spore"
	Cluster       = "cluster"
	AlwaysSuccess = "always-success"
)

// Names - every contract the protocol refers to
var Names = []string{
	Certificate,
	CheckLock,
	TypeBurn,
	LockProxy,
	Dao,
	Spore,
	Cluster,
	AlwaysSuccess,
}
