// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/daocertificate/assembler"
	"github.com/bitmark-inc/daocertificate/chain"
	"github.com/bitmark-inc/logger"
)

type metadata struct {
	connect     string
	network     string
	deployments string
	fee         uint64
	verbose     bool
	e           io.Writer
	w           io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "dao-certificate-cli"
	app.Usage = "build and submit certificate backed deposit transactions"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	ownerFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "owner, o",
			Value: "",
			Usage: "+always success lock with args `NAME`",
		},
		cli.StringFlag{
			Name:  "lock, l",
			Value: "",
			Usage: "+lock script as `JSON`",
		},
	}
	submitFlag := cli.BoolFlag{
		Name:  "submit, s",
		Usage: " submit instead of printing the transaction",
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:2150",
			Usage: " node JSON RPC `HOST:PORT`",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: chain.Fakenet,
			Usage: " chain `NETWORK` [mainnet|testnet|fakenet]",
		},
		cli.StringFlag{
			Name:  "deployments, d",
			Value: "",
			Usage: " Lua deployment table `FILE` (required except on fakenet)",
		},
		cli.Uint64Flag{
			Name:  "fee, f",
			Value: assembler.DefaultFee,
			Usage: " transaction fee in `SHANNONS` taken from the owner's change",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "info",
			Usage:  "display node status",
			Action: runInfo,
		},
		{
			Name:   "deployments",
			Usage:  "display the resolved deployment table",
			Action: runDeployments,
		},
		{
			Name:      "fund",
			Usage:     "create a plain cell on a simulated network",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: append([]cli.Flag{
				cli.Uint64Flag{
					Name:  "capacity, a",
					Value: 0,
					Usage: "*capacity in `CKB`",
				},
			}, ownerFlags...),
			Action: runFund,
		},
		{
			Name:      "cells",
			Usage:     "list live cells of an owner",
			ArgsUsage: "\n   (+ = select one)",
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "limit",
					Value: 0,
					Usage: " maximum `COUNT` of cells",
				},
			}, ownerFlags...),
			Action: runCells,
		},
		{
			Name:      "lock-proxy",
			Usage:     "create the authorization cell needed to mint",
			ArgsUsage: "\n   (+ = select one)",
			Flags:     append([]cli.Flag{submitFlag}, ownerFlags...),
			Action:    runLockProxy,
		},
		{
			Name:      "deposit",
			Usage:     "deposit capacity and receive a certificate",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: append([]cli.Flag{
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*deposit amount in `CKB`",
				},
				submitFlag,
			}, ownerFlags...),
			Action: runDeposit,
		},
		{
			Name:      "cluster",
			Usage:     "create a collectible cluster",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "name",
					Value: "",
					Usage: "*cluster `NAME`",
				},
				cli.StringFlag{
					Name:  "description",
					Value: "",
					Usage: " cluster `TEXT`",
				},
				submitFlag,
			}, ownerFlags...),
			Action: runCluster,
		},
		{
			Name:      "mint",
			Usage:     "mint a collectible recording a deposit certificate",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "cluster",
					Value: "",
					Usage: "*cluster `ID`",
				},
				submitFlag,
			}, ownerFlags...),
			Action: runMint,
		},
		{
			Name:      "withdraw",
			Usage:     "burn a collectible and release its deposit",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "spore",
					Value: "",
					Usage: "*collectible `ID`",
				},
				submitFlag,
			}, ownerFlags...),
			Action: runWithdraw,
		},
		{
			Name:      "verify",
			Usage:     "run every predicate on a transaction without committing",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*transaction JSON `FILE` (- for stdin)",
				},
			},
			Action: runVerify,
		},
		{
			Name:      "submit",
			Usage:     "submit a transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*transaction JSON `FILE` (- for stdin)",
				},
			},
			Action: runSubmit,
		},
		{
			Name:      "status",
			Usage:     "block number of a committed transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: "*transaction `HASH`",
				},
			},
			Action: runStatus,
		},
		{
			Name: "version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		network := c.GlobalString("network")
		if !chain.Valid(network) {
			return ErrInvalidNetwork
		}

		// predicate traces and assembler steps are debug messages
		level := "critical"
		if c.GlobalBool("verbose") {
			level = "debug"
		}
		logging := logger.Configuration{
			Directory: os.TempDir(),
			File:      app.Name + ".log",
			Size:      1048576,
			Count:     2,
			Console:   c.GlobalBool("verbose"),
			Levels: map[string]string{
				logger.DefaultTag: level,
			},
		}
		if err := logger.Initialise(logging); nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			connect:     c.GlobalString("connect"),
			network:     network,
			deployments: c.GlobalString("deployments"),
			fee:         c.GlobalUint64("fee"),
			verbose:     c.GlobalBool("verbose"),
			e:           c.App.ErrWriter,
			w:           c.App.Writer,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
