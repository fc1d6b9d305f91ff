// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cell

import (
	"encoding/binary"

	"github.com/bitmark-inc/daocertificate/fault"
)

// CapacitySize - bytes in an encoded capacity
const CapacitySize = 8

// EncodeCapacity - 8 byte little endian
func EncodeCapacity(capacity uint64) []byte {
	buffer := make([]byte, CapacitySize)
	binary.LittleEndian.PutUint64(buffer, capacity)
	return buffer
}

// AddCapacity - sum of two capacities
func AddCapacity(a uint64, b uint64) (uint64, error) {
	total := a + b
	if total < a {
		return 0, fault.ErrCapacityOverflow
	}
	return total, nil
}

// DecodeCapacity - little endian value from the first 8 bytes
func DecodeCapacity(data []byte) (uint64, error) {
	if len(data) < CapacitySize {
		return 0, fault.ErrInvalidCellData
	}
	return binary.LittleEndian.Uint64(data[:CapacitySize]), nil
}
