// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package assembler - build certificate lifecycle transactions
//
// A pipeline is a fixed sequence of steps over one Skeleton.  Every
// step that adds an input or output returns its index and later steps
// take that index as a parameter.
//
// Inputs are only ever appended, so once the first input is present
// the type ids computed from it stay valid however many inputs the
// final capacity balancing adds.
//
//   deposit:    certificate code dep
//               owner cells covering the amount
//               certificate output (type id args, le64 amount data)
//               deposit output burn linked to the certificate
//               change
//
//   lock proxy: check lock code dep
//               authorization output (check lock, lock proxy type)
//               change
//
//   mint:       authorization input and its re-created output
//               unchained certificate input
//               cluster code dep
//               collectible output (le64 capacity ++ le64 block)
//               certificate output burn linked to the collectible
//               deposit header dep at the certificate output index
//               change
//
//   withdraw:   collectible input
//               certificate input found by its burn link
//               deposit input found by its burn link
//               change
package assembler
