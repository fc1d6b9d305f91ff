// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package lockproxy - predicate delegating authority to an owner lock
//
// the args are an owner lock hash; the predicate passes when some
// input is locked by that owner
package lockproxy

import (
	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/fault"
	"github.com/bitmark-inc/daocertificate/script"
)

// Rejections - every rejection in exit code order
var Rejections = []error{
	fault.ErrInvalidLockProxyArgs,
	fault.ErrLockProxyOwnerNotFound,
}

// ExitCode - numeric code reported for a verification result
func ExitCode(err error) int {
	return script.ExitCode(err, Rejections)
}

// Script - lock proxy script delegating to owner
func Script(codeHash digest.Digest, owner *cell.Script) cell.Script {
	ownerHash := owner.Hash()
	return cell.Script{
		CodeHash: codeHash,
		HashType: cell.HashTypeData1,
		Args:     append(cell.Bytes{}, ownerHash[:]...),
	}
}

// Verify - the owner lock must be present in the inputs
func Verify(ctx script.Context) error {
	owner := digest.Digest{}
	err := digest.FromBytes(&owner, ctx.Script().Args)
	if nil != err {
		return fault.ErrInvalidLockProxyArgs
	}

	for i := 0; ; i += 1 {
		lockHash, err := ctx.LoadLockHash(i, script.SourceInput)
		if fault.ErrIndexOutOfBound == err {
			return fault.ErrLockProxyOwnerNotFound
		}
		if nil != err {
			return err
		}
		if owner == lockHash {
			return nil
		}
	}
}
