// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package deployment

import (
	"github.com/bitmark-inc/daocertificate/certificate"
	"github.com/bitmark-inc/daocertificate/checklock"
)

// CertificateParameters - code hashes the certificate type checks against
func (t *Table) CertificateParameters() (*certificate.Parameters, error) {
	dao, err := t.Get(Dao)
	if nil != err {
		return nil, err
	}
	typeBurn, err := t.Get(TypeBurn)
	if nil != err {
		return nil, err
	}
	spore, err := t.Get(Spore)
	if nil != err {
		return nil, err
	}
	return &certificate.Parameters{
		DaoCodeHash:      dao.CodeHash,
		TypeBurnCodeHash: typeBurn.CodeHash,
		SporeCodeHash:    spore.CodeHash,
	}, nil
}

// CheckLockParameters - code hash the check lock looks for
func (t *Table) CheckLockParameters() (*checklock.Parameters, error) {
	c, err := t.Get(Certificate)
	if nil != err {
		return nil, err
	}
	return &checklock.Parameters{
		CertificateCodeHash: c.CodeHash,
	}, nil
}
