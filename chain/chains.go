// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

// names of all chains
const (
	Mainnet = "mainnet"
	Testnet = "testnet"
	Fakenet = "fakenet"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Mainnet, Testnet, Fakenet:
		return true
	default:
		return false
	}
}

// Simulated - true for the chain whose deployments are placeholders
func Simulated(name string) bool {
	return Fakenet == name
}
