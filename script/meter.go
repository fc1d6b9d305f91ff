// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"github.com/bitmark-inc/daocertificate/fault"
)

// Meter - cycle budget shared by every group of a transaction
type Meter struct {
	limit uint64
	used  uint64
}

// NewMeter - a meter allowing at most limit cycles
func NewMeter(limit uint64) *Meter {
	return &Meter{
		limit: limit,
	}
}

// Consume - charge cycles, fails once the budget is exceeded
func (m *Meter) Consume(cycles uint64) error {
	if m.used+cycles < m.used || m.used+cycles > m.limit {
		m.used = m.limit
		return fault.ErrExceededMaximumCycles
	}
	m.used += cycles
	return nil
}

// Used - cycles consumed so far
func (m *Meter) Used() uint64 {
	return m.used
}
