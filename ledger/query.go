// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/digest"
)

// Query - live cell search
//
// at least one of Lock or Type must be set, the remaining fields
// narrow the result
type Query struct {
	Lock         *cell.Script   `json:"lock,omitempty"`
	Type         *cell.Script   `json:"type,omitempty"`
	TypeCodeHash *digest.Digest `json:"type_code_hash,omitempty"`
	WithoutType  bool           `json:"without_type"`
	WithoutData  bool           `json:"without_data"`
	Limit        int            `json:"limit"`
}

// default and maximum number of returned cells
const (
	DefaultLimit = 100
	MaximumLimit = 1000
)

// Match - check a cell against every set field
func (q *Query) Match(c *cell.LiveCell) bool {
	if nil != q.Lock && !q.Lock.Equal(&c.Output.Lock) {
		return false
	}
	if nil != q.Type && !q.Type.Equal(c.Output.Type) {
		return false
	}
	if nil != q.TypeCodeHash && (nil == c.Output.Type || *q.TypeCodeHash != c.Output.Type.CodeHash) {
		return false
	}
	if q.WithoutType && nil != c.Output.Type {
		return false
	}
	if q.WithoutData && 0 != len(c.Data) {
		return false
	}
	return true
}

func (q *Query) limit() int {
	if q.Limit <= 0 {
		return DefaultLimit
	}
	if q.Limit > MaximumLimit {
		return MaximumLimit
	}
	return q.Limit
}
