// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package spore - collectible cell data
//
// only the three fields read by the certificate protocol are modelled:
// content type, content and the optional cluster id
package spore
