// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"github.com/urfave/cli"
)

func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName, err := checkFileName(c.String("file"))
	if nil != err {
		return err
	}

	tx, err := readTransaction(fileName)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Verify(context.Background(), tx)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runSubmit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName, err := checkFileName(c.String("file"))
	if nil != err {
		return err
	}

	tx, err := readTransaction(fileName)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	return output(m, client, &builtTransaction{Transaction: tx}, true)
}

func runStatus(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	txHash, err := checkDigest(c.String("txid"), ErrRequiredTxId)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	n, err := client.Status(context.Background(), txHash)
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		TxHash      string `json:"tx_hash"`
		BlockNumber uint64 `json:"block_number"`
	}{
		TxHash:      txHash.String(),
		BlockNumber: n,
	})
}
