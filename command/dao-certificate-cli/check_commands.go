// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/deployment"
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/fault"
)

// command line errors - keep in alphabetic order
var (
	ErrInvalidNetwork      = fault.InvalidError("network can only be mainnet/testnet/fakenet")
	ErrRequiredAmount      = fault.InvalidError("amount is required")
	ErrRequiredCluster     = fault.InvalidError("cluster id is required")
	ErrRequiredDeployments = fault.InvalidError("deployments file is required for this network")
	ErrRequiredFileName    = fault.InvalidError("file name is required")
	ErrRequiredName        = fault.InvalidError("name is required")
	ErrRequiredOwner       = fault.InvalidError("one of owner or lock is required")
	ErrRequiredSpore       = fault.InvalidError("collectible id is required")
	ErrRequiredTransaction = fault.InvalidError("transaction is required")
	ErrRequiredTxId        = fault.InvalidError("transaction id is required")
)

// owner lock from either a name or a JSON script
func checkOwner(c *cli.Context, table *deployment.Table) (cell.Script, error) {
	name := c.String("owner")
	lock := c.String("lock")

	switch {
	case "" != name && "" == lock:
		r, err := table.Get(deployment.AlwaysSuccess)
		if nil != err {
			return cell.Script{}, err
		}
		return r.Script([]byte(name)), nil

	case "" == name && "" != lock:
		s := cell.Script{}
		err := json.Unmarshal([]byte(lock), &s)
		if nil != err {
			return cell.Script{}, err
		}
		return s, nil

	default:
		return cell.Script{}, ErrRequiredOwner
	}
}

// capacity in CKB converted to shannons
func checkCapacity(ckb uint64) (uint64, error) {
	if 0 == ckb {
		return 0, ErrRequiredAmount
	}
	shannons := ckb * cell.ShannonsPerCKB
	if shannons/cell.ShannonsPerCKB != ckb {
		return 0, fault.ErrCapacityOverflow
	}
	return shannons, nil
}

// a required hash
func checkDigest(s string, missing error) (digest.Digest, error) {
	if "" == s {
		return digest.Digest{}, missing
	}
	return digest.FromHex(s)
}

// check for non-blank file name
func checkFileName(fileName string) (string, error) {
	if "" == fileName {
		return "", ErrRequiredFileName
	}
	return fileName, nil
}
