// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package checklock - lock predicate that opens only when a
// certificate cell is spent in the same transaction
package checklock

import (
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/fault"
	"github.com/bitmark-inc/daocertificate/script"
)

// Rejections - every rejection in exit code order
var Rejections = []error{
	fault.ErrNoDaoCertificateFound,
}

// Parameters - code hash of the certificate type
type Parameters struct {
	CertificateCodeHash digest.Digest
}

// ExitCode - exit code reported for a verification result
func ExitCode(err error) int {
	return script.ExitCode(err, Rejections)
}

// Predicate - the check lock script
func (p *Parameters) Predicate() script.Predicate {
	return p.Verify
}

// Verify - some input must carry a certificate type
func (p *Parameters) Verify(ctx script.Context) error {
	ctx.Debugf("verifying root")

	index, err := script.Find(ctx, script.SourceInput, script.TypeCodeHash(p.CertificateCodeHash))
	if nil != err {
		return err
	}
	if index < 0 {
		return fault.ErrNoDaoCertificateFound
	}
	return nil
}
