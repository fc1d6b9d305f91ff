// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"github.com/bitmark-inc/daocertificate/fault"
)

// exit codes of runtime failures
const (
	ExitSuccess         = 0
	ExitIndexOutOfBound = 1
	ExitItemMissing     = 2
	ExitEncoding        = 4
	ExitUnknown         = -1

	// first exit code available to a predicate's own rejections
	CustomErrorStart = 64
)

// ExitCode - numeric code for err
//
// rejections are numbered from CustomErrorStart in the order given
func ExitCode(err error, rejections []error) int {
	if nil == err {
		return ExitSuccess
	}
	for i, e := range rejections {
		if e == err {
			return CustomErrorStart + i
		}
	}
	switch err {
	case fault.ErrIndexOutOfBound:
		return ExitIndexOutOfBound
	case fault.ErrItemMissing:
		return ExitItemMissing
	case fault.ErrNotMoleculeData:
		return ExitEncoding
	default:
		return ExitUnknown
	}
}
