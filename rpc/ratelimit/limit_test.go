// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/daocertificate/fault"
	"github.com/bitmark-inc/daocertificate/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(rate.Inf, 1)
	assert.Nil(t, ratelimit.Limit(limiter), "unlimited")

	blocked := rate.NewLimiter(0, 0)
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.Limit(blocked), "zero burst")
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(1000, 100)

	assert.Nil(t, ratelimit.LimitN(limiter, 10, 100), "within maximum")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 0, 100), "zero count")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 101, 100), "above maximum")
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.LimitN(limiter, 200, 1000), "above burst")
}
