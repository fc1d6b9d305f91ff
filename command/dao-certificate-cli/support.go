// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/bitmark-inc/daocertificate/assembler"
	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/chain"
	"github.com/bitmark-inc/daocertificate/configuration"
	"github.com/bitmark-inc/daocertificate/deployment"
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/rpc/client"
)

// the Lua deployment file returns this table
type deploymentsFile struct {
	Deployments map[string]map[string]deployment.Entry `gluamapper:"deployments"`
}

// built transaction as printed and as read back by submit/verify
type builtTransaction struct {
	TxHash      digest.Digest     `json:"tx_hash"`
	ClusterID   *digest.Digest    `json:"cluster_id,omitempty"`
	SporeID     *digest.Digest    `json:"spore_id,omitempty"`
	Transaction *cell.Transaction `json:"transaction"`
}

func connect(m *metadata) (*client.Client, error) {
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", m.connect)
	}
	return client.Dial(m.connect)
}

// the deployment table for the selected network
//
// code hashes not given in the file are computed from the deployed
// cell data fetched through the node
func deployments(m *metadata, c *client.Client) (*deployment.Table, error) {
	if chain.Simulated(m.network) {
		return deployment.New(m.network, nil, nil)
	}
	if "" == m.deployments {
		return nil, ErrRequiredDeployments
	}

	file := deploymentsFile{}
	err := configuration.ParseConfigurationFile(m.deployments, &file)
	if nil != err {
		return nil, err
	}

	loader := func(outPoint cell.OutPoint) ([]byte, error) {
		liveCell, err := c.LiveCell(context.Background(), outPoint)
		if nil != err {
			return nil, err
		}
		return liveCell.Data, nil
	}
	return deployment.New(m.network, file.Deployments[m.network], loader)
}

// connect and build an assembler for the network
func setup(m *metadata) (*client.Client, *assembler.Assembler, error) {
	c, err := connect(m)
	if nil != err {
		return nil, nil, err
	}

	table, err := deployments(m, c)
	if nil != err {
		_ = c.Close()
		return nil, nil, err
	}

	return c, assembler.New(table, c, m.fee), nil
}

// print a built transaction or submit it
func output(m *metadata, c *client.Client, built *builtTransaction, submit bool) error {
	built.TxHash = built.Transaction.Hash()

	if !submit {
		return printJson(m.w, built)
	}

	reply, err := c.Submit(context.Background(), built.Transaction)
	if nil != err {
		return err
	}
	if nil != built.ClusterID || nil != built.SporeID {
		return printJson(m.w, struct {
			ClusterID *digest.Digest `json:"cluster_id,omitempty"`
			SporeID   *digest.Digest `json:"spore_id,omitempty"`
			Submitted interface{}    `json:"submitted"`
		}{
			ClusterID: built.ClusterID,
			SporeID:   built.SporeID,
			Submitted: reply,
		})
	}
	return printJson(m.w, reply)
}

// read a transaction printed by one of the build commands
func readTransaction(fileName string) (*cell.Transaction, error) {
	var data []byte
	var err error
	if "-" == fileName {
		data, err = ioutil.ReadAll(os.Stdin)
	} else {
		data, err = ioutil.ReadFile(fileName)
	}
	if nil != err {
		return nil, err
	}

	built := builtTransaction{}
	err = json.Unmarshal(data, &built)
	if nil != err {
		return nil, err
	}
	if nil == built.Transaction {
		return nil, ErrRequiredTransaction
	}
	return built.Transaction, nil
}
