// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lockproxy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/fault"
	"github.com/bitmark-inc/daocertificate/lockproxy"
	"github.com/bitmark-inc/daocertificate/script"
)

var (
	proxyCode = digest.NewDigest([]byte("lock-proxy"))
	owner     = &cell.Script{CodeHash: digest.NewDigest([]byte("owner")), Args: cell.Bytes{1}}
	stranger  = &cell.Script{CodeHash: digest.NewDigest([]byte("owner")), Args: cell.Bytes{2}}
)

func run(proxy cell.Script, locks ...*cell.Script) error {
	inputs := []*cell.LiveCell{}
	for _, l := range locks {
		inputs = append(inputs, &cell.LiveCell{Output: &cell.Output{Capacity: 1, Lock: *l}})
	}
	rtx := &script.ResolvedTransaction{
		Transaction: &cell.Transaction{
			Inputs:  make([]cell.Input, len(inputs)),
			Outputs: []*cell.Output{{Capacity: 1, Type: &proxy}},
		},
		Inputs: inputs,
	}
	g := &script.Group{Kind: script.TypeGroup, Script: &proxy, Hash: proxy.Hash(), OutputIndices: []int{0}}
	return lockproxy.Verify(script.NewContext(rtx, g, script.NewMeter(script.DefaultCycles)))
}

func TestOwnerPresent(t *testing.T) {
	assert.Nil(t, run(lockproxy.Script(proxyCode, owner), stranger, owner), "owner spends")
}

func TestOwnerAbsent(t *testing.T) {
	assert.Equal(t, fault.ErrLockProxyOwnerNotFound, run(lockproxy.Script(proxyCode, owner), stranger), "stranger only")
}

func TestInvalidArgs(t *testing.T) {
	proxy := lockproxy.Script(proxyCode, owner)
	proxy.Args = proxy.Args[:4]
	assert.Equal(t, fault.ErrInvalidLockProxyArgs, run(proxy, owner), "short args")
}

func TestExitCodes(t *testing.T) {
	assert.Equal(t, 65, lockproxy.ExitCode(fault.ErrLockProxyOwnerNotFound), "owner missing")
	assert.Equal(t, 1, lockproxy.ExitCode(fault.ErrIndexOutOfBound), "out of bound")
}
