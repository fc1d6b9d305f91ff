// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

// Source - where a load reads from
type Source int

// the sources
const (
	SourceInput Source = iota
	SourceOutput
	SourceCellDep
	SourceHeaderDep
	SourceGroupInput
	SourceGroupOutput
)

var sourceNames = []string{
	"input",
	"output",
	"cell_dep",
	"header_dep",
	"group_input",
	"group_output",
}

// String - name of the source
func (s Source) String() string {
	if s < 0 || int(s) >= len(sourceNames) {
		return "unknown"
	}
	return sourceNames[s]
}
