// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/daocertificate/configuration"
	"github.com/bitmark-inc/daocertificate/deployment"
	"github.com/bitmark-inc/daocertificate/fault"
)

type testConfiguration struct {
	Network     string                                 `gluamapper:"network"`
	Fee         uint64                                 `gluamapper:"fee"`
	Listen      []string                               `gluamapper:"listen"`
	Deployments map[string]map[string]deployment.Entry `gluamapper:"deployments"`
}

const testFile = `
local fee = 1000 * 2
return {
    network = "testnet",
    fee = fee,
    listen = { "127.0.0.1:2150", "[::1]:2150" },
    deployments = {
        testnet = {
            ["dao-certificate-type"] = {
                tx_hash = "0x1111111111111111111111111111111111111111111111111111111111111111",
                index = 3,
                dep_type = "code",
            },
        },
    },
}
`

func writeFile(t *testing.T, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	require.Nil(t, err, "temp dir")
	fileName := filepath.Join(dir, "test.conf")
	err = ioutil.WriteFile(fileName, []byte(content), 0600)
	require.Nil(t, err, "write file")
	return fileName, func() { os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, cleanup := writeFile(t, testFile)
	defer cleanup()

	options := &testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, options)
	require.Nil(t, err, "parse error")

	assert.Equal(t, "testnet", options.Network, "network")
	assert.Equal(t, uint64(2000), options.Fee, "computed fee")
	assert.Equal(t, []string{"127.0.0.1:2150", "[::1]:2150"}, options.Listen, "listen")

	entry := options.Deployments["testnet"][deployment.Certificate]
	assert.Equal(t, 3, entry.Index, "deployment index")
	assert.Equal(t, "code", entry.DepType, "deployment dep type")
}

func TestParseInvalidPointer(t *testing.T) {
	options := testConfiguration{}
	err := configuration.ParseConfigurationFile("unused", options)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a pointer")
}

func TestParseNoTable(t *testing.T) {
	fileName, cleanup := writeFile(t, `local x = 1`)
	defer cleanup()

	err := configuration.ParseConfigurationFile(fileName, &testConfiguration{})
	assert.Equal(t, fault.ErrMissingParameters, err, "nothing returned")
}

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/log", configuration.EnsureAbsolute("/data", "log"), "relative")
	assert.Equal(t, "/var/log", configuration.EnsureAbsolute("/data", "/var/log"), "absolute")
}
