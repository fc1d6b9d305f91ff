// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/digest"
)

// GroupKind - lock or type
type GroupKind int

// the group kinds
const (
	LockGroup GroupKind = iota
	TypeGroup
)

// String - name of the kind
func (k GroupKind) String() string {
	if LockGroup == k {
		return "lock"
	}
	return "type"
}

// Group - cells sharing the same script
type Group struct {
	Kind          GroupKind
	Script        *cell.Script
	Hash          digest.Digest
	InputIndices  []int
	OutputIndices []int
}

// Groups - the script groups of a resolved transaction
//
// lock groups come first in input order, followed by type groups
// in order of first appearance in inputs then outputs
func Groups(rtx *ResolvedTransaction) []*Group {
	locks := make(map[digest.Digest]*Group)
	types := make(map[digest.Digest]*Group)
	groups := []*Group{}
	typeGroups := []*Group{}

	typeGroup := func(s *cell.Script) *Group {
		hash := s.Hash()
		g, ok := types[hash]
		if !ok {
			g = &Group{
				Kind:   TypeGroup,
				Script: s,
				Hash:   hash,
			}
			types[hash] = g
			typeGroups = append(typeGroups, g)
		}
		return g
	}

	for i, input := range rtx.Inputs {
		lock := &input.Output.Lock
		hash := lock.Hash()
		g, ok := locks[hash]
		if !ok {
			g = &Group{
				Kind:   LockGroup,
				Script: lock,
				Hash:   hash,
			}
			locks[hash] = g
			groups = append(groups, g)
		}
		g.InputIndices = append(g.InputIndices, i)

		if nil != input.Output.Type {
			g := typeGroup(input.Output.Type)
			g.InputIndices = append(g.InputIndices, i)
		}
	}

	for i, output := range rtx.Transaction.Outputs {
		if nil != output.Type {
			g := typeGroup(output.Type)
			g.OutputIndices = append(g.OutputIndices, i)
		}
	}

	return append(groups, typeGroups...)
}
