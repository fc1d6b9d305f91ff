// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package deployment

import (
	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/digest"
)

const (
	placeholderTxPrefix   = "fakenet-deployment:"
	placeholderCodePrefix = "fakenet-code:"
)

// PlaceholderCode - data of the simulated code cell of a contract
func PlaceholderCode(name string) []byte {
	return []byte(placeholderCodePrefix + name)
}

// Placeholder - deterministic simulated deployment of a contract
func Placeholder(name string) *Record {
	return &Record{
		Name: name,
		OutPoint: cell.OutPoint{
			TxHash: digest.NewDigest([]byte(placeholderTxPrefix + name)),
			Index:  0,
		},
		DepType:  cell.DepTypeCode,
		CodeHash: digest.NewDigest(PlaceholderCode(name)),
		HashType: cell.HashTypeData1,
	}
}
