// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/chain"
	"github.com/bitmark-inc/daocertificate/deployment"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// Deployments - fakenet table shared by tests
var Deployments *deployment.Table

func init() {
	var err error
	Deployments, err = deployment.New(chain.Fakenet, nil, nil)
	if nil != err {
		panic(fmt.Sprintf("fakenet deployment: %s", err))
	}
}

// Owner - an always-success lock distinguished by its args
func Owner(name string) cell.Script {
	r, _ := Deployments.Get(deployment.AlwaysSuccess)
	return r.Script([]byte(name))
}

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
