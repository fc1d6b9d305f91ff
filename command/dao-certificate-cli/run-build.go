// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli"
)

func runLockProxy(c *cli.Context) error {

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

	tx, err := a.BuildLockProxy(context.Background(), owner)
	if nil != err {
		return err
	}

	return output(m, client, &builtTransaction{Transaction: tx}, c.Bool("submit"))
}

func runDeposit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	amount, err := checkCapacity(c.Uint64("amount"))
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
		fmt.Fprintf(m.e, "deposit: %d shannons from lock: %s\n", amount, owner.Hash())
	}

	tx, err := a.BuildDeposit(context.Background(), owner, amount)
	if nil != err {
		return err
	}

	return output(m, client, &builtTransaction{Transaction: tx}, c.Bool("submit"))
}

func runCluster(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.String("name")
	if "" == name {
		return ErrRequiredName
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

	tx, clusterID, err := a.BuildCluster(context.Background(), owner, name, c.String("description"))
	if nil != err {
		return err
	}

	return output(m, client, &builtTransaction{ClusterID: &clusterID, Transaction: tx}, c.Bool("submit"))
}

func runMint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	clusterID, err := checkDigest(c.String("cluster"), ErrRequiredCluster)
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

	tx, sporeID, err := a.BuildMint(context.Background(), owner, clusterID)
	if nil != err {
		return err
	}

	return output(m, client, &builtTransaction{SporeID: &sporeID, Transaction: tx}, c.Bool("submit"))
}

func runWithdraw(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	sporeID, err := checkDigest(c.String("spore"), ErrRequiredSpore)
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

	tx, err := a.BuildWithdraw(context.Background(), owner, sporeID)
	if nil != err {
		return err
	}

	return output(m, client, &builtTransaction{Transaction: tx}, c.Bool("submit"))
}
