// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package deployment

import (
	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/chain"
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/fault"
)

// Entry - deployment as written in the configuration file
type Entry struct {
	TxHash   string `gluamapper:"tx_hash" json:"tx_hash"`
	Index    int    `gluamapper:"index" json:"index"`
	DepType  string `gluamapper:"dep_type" json:"dep_type"`
	CodeHash string `gluamapper:"code_hash" json:"code_hash,omitempty"`
	HashType string `gluamapper:"hash_type" json:"hash_type,omitempty"`
}

// Record - resolved deployment of one contract
type Record struct {
	Name     string        `json:"name"`
	OutPoint cell.OutPoint `json:"out_point"`
	DepType  cell.DepType  `json:"dep_type"`
	CodeHash digest.Digest `json:"code_hash"`
	HashType cell.HashType `json:"hash_type"`
}

// CellDep - the dependency that brings this contract's code into a transaction
func (r *Record) CellDep() cell.CellDep {
	return cell.CellDep{
		OutPoint: r.OutPoint,
		DepType:  r.DepType,
	}
}

// Script - a script running this contract with args
func (r *Record) Script(args []byte) cell.Script {
	return cell.Script{
		CodeHash: r.CodeHash,
		HashType: r.HashType,
		Args:     append(cell.Bytes{}, args...),
	}
}

// DataLoader - fetch the data of a deployed code cell
type DataLoader func(outPoint cell.OutPoint) ([]byte, error)

// Table - immutable deployments of one network
type Table struct {
	network string
	records map[string]*Record
}

// New - build the table for a network
//
// entries without a code hash are resolved by hashing the deployed
// cell data fetched through loader
func New(network string, entries map[string]Entry, loader DataLoader) (*Table, error) {
	if !chain.Valid(network) {
		return nil, fault.ErrInvalidNetwork
	}

	t := &Table{
		network: network,
		records: make(map[string]*Record),
	}

	if chain.Simulated(network) {
		for _, name := range Names {
			t.records[name] = Placeholder(name)
		}
	}

	for name, entry := range entries {
		r, err := resolve(name, entry, loader)
		if nil != err {
			return nil, err
		}
		t.records[name] = r
	}

	return t, nil
}

// Network - name of the network
func (t *Table) Network() string {
	return t.network
}

// Get - deployment of a contract
func (t *Table) Get(name string) (*Record, error) {
	r, ok := t.records[name]
	if !ok {
		return nil, fault.ErrDeploymentNotFound
	}
	result := *r
	return &result, nil
}

// Records - all deployments sorted by contract name order
func (t *Table) Records() []*Record {
	records := make([]*Record, 0, len(t.records))
	for _, name := range Names {
		if r, ok := t.records[name]; ok {
			result := *r
			records = append(records, &result)
		}
	}
	return records
}

func resolve(name string, entry Entry, loader DataLoader) (*Record, error) {
	if "" == entry.TxHash || entry.Index < 0 {
		return nil, fault.ErrMissingParameters
	}

	txHash, err := digest.FromHex(entry.TxHash)
	if nil != err {
		return nil, err
	}

	r := &Record{
		Name: name,
		OutPoint: cell.OutPoint{
			TxHash: txHash,
			Index:  uint32(entry.Index),
		},
		DepType: cell.DepTypeCode,
	}

	if "" != entry.DepType {
		err := r.DepType.UnmarshalText([]byte(entry.DepType))
		if nil != err {
			return nil, err
		}
	}

	if "" != entry.CodeHash {
		r.CodeHash, err = digest.FromHex(entry.CodeHash)
		if nil != err {
			return nil, err
		}
		r.HashType = cell.HashTypeType
		if "" != entry.HashType {
			err := r.HashType.UnmarshalText([]byte(entry.HashType))
			if nil != err {
				return nil, err
			}
		}
		return r, nil
	}

	if nil == loader {
		return nil, fault.ErrMissingParameters
	}
	data, err := loader(r.OutPoint)
	if nil != err {
		return nil, err
	}
	r.CodeHash = digest.NewDigest(data)
	r.HashType = cell.HashTypeData1
	return r, nil
}
