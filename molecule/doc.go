// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package molecule - the chain's canonical binary serialisation
//
// fixed size items are little endian; variable items carry a
// 4 byte little endian header:
//   bytes/fixvec:  item_count ‖ items
//   dynvec/table:  total_size ‖ offset[0] … offset[n-1] ‖ items
//   option:        empty for none, otherwise the inner item
package molecule
