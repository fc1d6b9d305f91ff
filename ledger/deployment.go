// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/deployment"
)

// DeploymentCells - code cells backing the placeholder records of a
// simulated network
//
// the cells carry an unspendable lock so code can never be removed
func DeploymentCells(table *deployment.Table) ([]GenesisCell, error) {
	cells := []GenesisCell{}
	for _, r := range table.Records() {
		if *r != *deployment.Placeholder(r.Name) {
			continue
		}

		data := deployment.PlaceholderCode(r.Name)
		output := &cell.Output{
			Lock: cell.Script{
				HashType: cell.HashTypeData1,
			},
		}
		occupied, err := output.OccupiedCapacity(len(data))
		if nil != err {
			return nil, err
		}
		output.Capacity = occupied

		cells = append(cells, GenesisCell{
			OutPoint: r.OutPoint,
			Output:   output,
			Data:     data,
		})
	}
	return cells, nil
}
