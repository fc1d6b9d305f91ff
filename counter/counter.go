// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - connection and request counts shared between
// goroutines
package counter

import (
	"sync/atomic"
)

// Counter - an unsigned count updated atomically
type Counter uint64

// Increment - add one and return the new count
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(c), 1)
}

// Decrement - subtract one and return the new count
func (c *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(c), ^uint64(0))
}

// Acquire - take one slot if fewer than limit are in use
func (c *Counter) Acquire(limit uint64) bool {
	if c.Increment() <= limit {
		return true
	}
	c.Decrement()
	return false
}

// Uint64 - current count
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}
