// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package simulator

import (
	"github.com/bitmark-inc/daocertificate/certificate"
	"github.com/bitmark-inc/daocertificate/checklock"
	"github.com/bitmark-inc/daocertificate/deployment"
	"github.com/bitmark-inc/daocertificate/lockproxy"
	"github.com/bitmark-inc/daocertificate/script"
	"github.com/bitmark-inc/daocertificate/typeburn"
)

// contracts treated as always succeeding
var external = []string{
	deployment.Dao,
	deployment.Spore,
	deployment.Cluster,
	deployment.AlwaysSuccess,
}

// AlwaysSuccess - a predicate that accepts every transaction
func AlwaysSuccess(ctx script.Context) error {
	return nil
}

func noRejections(err error) int {
	return script.ExitCode(err, nil)
}

// NewFromDeployment - a simulator running every contract of a
// deployment table
func NewFromDeployment(table *deployment.Table, maxCycles uint64) (*Simulator, error) {
	s := New(maxCycles)

	certificateParameters, err := table.CertificateParameters()
	if nil != err {
		return nil, err
	}
	checkLockParameters, err := table.CheckLockParameters()
	if nil != err {
		return nil, err
	}

	r, err := table.Get(deployment.Certificate)
	if nil != err {
		return nil, err
	}
	s.Register(r.Name, r.CodeHash, certificateParameters.Predicate(), certificate.ExitCode)

	r, err = table.Get(deployment.CheckLock)
	if nil != err {
		return nil, err
	}
	s.Register(r.Name, r.CodeHash, checkLockParameters.Predicate(), checklock.ExitCode)

	r, err = table.Get(deployment.TypeBurn)
	if nil != err {
		return nil, err
	}
	s.Register(r.Name, r.CodeHash, typeburn.Verify, typeburn.ExitCode)

	r, err = table.Get(deployment.LockProxy)
	if nil != err {
		return nil, err
	}
	s.Register(r.Name, r.CodeHash, lockproxy.Verify, lockproxy.ExitCode)

	for _, name := range external {
		r, err := table.Get(name)
		if nil != err {
			return nil, err
		}
		s.Register(r.Name, r.CodeHash, AlwaysSuccess, noRejections)
	}

	return s, nil
}
