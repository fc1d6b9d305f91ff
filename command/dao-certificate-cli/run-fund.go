// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/daocertificate/ledger"
)

func runFund(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	capacity, err := checkCapacity(c.Uint64("capacity"))
	if nil != err {
		return err
	}

	client, a, err := setup(m)
	if nil != err {
		return err
	}
	defer client.Close()

	owner, err := checkOwner(c, a.Table())
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "fund: %d shannons to lock: %s\n", capacity, owner.Hash())
	}

	outPoint, err := client.Fund(context.Background(), owner, capacity)
	if nil != err {
		return err
	}

	return printJson(m.w, outPoint)
}

func runCells(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, a, err := setup(m)
	if nil != err {
		return err
	}
	defer client.Close()

	owner, err := checkOwner(c, a.Table())
	if nil != err {
		return err
	}

	found, err := client.FindCells(context.Background(), &ledger.Query{
		Lock:  &owner,
		Limit: c.Int("limit"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, found)
}
