// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/fault"
)

// Matcher - test a cell at an index of a source
type Matcher func(index int, output *cell.Output) bool

// Find - index of the first cell in source accepted by match
//
// returns -1 when no cell matches
func Find(ctx Context, source Source, match Matcher) (int, error) {
	for i := 0; ; i += 1 {
		output, err := ctx.LoadCell(i, source)
		if fault.ErrIndexOutOfBound == err {
			return -1, nil
		}
		if nil != err {
			return -1, err
		}
		if match(i, output) {
			return i, nil
		}
	}
}

// Exists - true if the source has a cell at index
func Exists(ctx Context, index int, source Source) (bool, error) {
	_, err := ctx.LoadCell(index, source)
	if fault.ErrIndexOutOfBound == err {
		return false, nil
	}
	if nil != err {
		return false, err
	}
	return true, nil
}

// TypeCodeHash - matcher for cells whose type has the given code hash
func TypeCodeHash(codeHash digest.Digest) Matcher {
	return func(_ int, output *cell.Output) bool {
		return nil != output.Type && codeHash == output.Type.CodeHash
	}
}

// TypeEqual - matcher for cells whose type equals s
func TypeEqual(s *cell.Script) Matcher {
	return func(_ int, output *cell.Output) bool {
		return s.Equal(output.Type)
	}
}
