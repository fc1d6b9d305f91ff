// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package typeburn - burn link lock predicate
//
// the args are the type hash of a target cell; the locked cell can
// only be spent together with the target, and the target must not be
// re-created, so spending the lock burns the target
package typeburn

import (
	"bytes"

	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/fault"
	"github.com/bitmark-inc/daocertificate/script"
)

// Rejections - every rejection in exit code order
var Rejections = []error{
	fault.ErrInvalidTypeBurnArgs,
	fault.ErrTypeBurnTargetNotFound,
}

// ExitCode - numeric code reported for a verification result
func ExitCode(err error) int {
	return script.ExitCode(err, Rejections)
}

// Lock - burn link lock script chained to targetTypeHash
func Lock(codeHash digest.Digest, targetTypeHash digest.Digest) cell.Script {
	return cell.Script{
		CodeHash: codeHash,
		HashType: cell.HashTypeData1,
		Args:     append(cell.Bytes{}, targetTypeHash[:]...),
	}
}

// Target - the type hash a burn link lock is chained to
func Target(lock *cell.Script) (digest.Digest, error) {
	target := digest.Digest{}
	err := digest.FromBytes(&target, lock.Args)
	if nil != err {
		return target, fault.ErrInvalidTypeBurnArgs
	}
	return target, nil
}

// Verify - target consumed as an input and absent from the outputs
func Verify(ctx script.Context) error {
	target, err := Target(ctx.Script())
	if nil != err {
		return err
	}

	consumed := false
	for _, source := range []script.Source{script.SourceInput, script.SourceOutput} {
		for i := 0; ; i += 1 {
			typeHash, ok, err := ctx.LoadTypeHash(i, source)
			if fault.ErrIndexOutOfBound == err {
				break
			}
			if nil != err {
				return err
			}
			if !ok || !bytes.Equal(typeHash[:], target[:]) {
				continue
			}
			if script.SourceOutput == source {
				ctx.Debugf("target re-created at output %d", i)
				return fault.ErrTypeBurnTargetNotFound
			}
			consumed = true
		}
	}

	if !consumed {
		return fault.ErrTypeBurnTargetNotFound
	}
	return nil
}
