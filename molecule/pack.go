// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package molecule

import (
	"encoding/binary"
)

// HeaderSize - bytes in a length or offset word
const HeaderSize = 4

// PackUint32 - little endian 32 bit
func PackUint32(value uint32) []byte {
	buffer := make([]byte, 4)
	binary.LittleEndian.PutUint32(buffer, value)
	return buffer
}

// PackUint64 - little endian 64 bit
func PackUint64(value uint64) []byte {
	buffer := make([]byte, 8)
	binary.LittleEndian.PutUint64(buffer, value)
	return buffer
}

// PackBytes - fixvec of bytes
func PackBytes(data []byte) []byte {
	buffer := make([]byte, 0, HeaderSize+len(data))
	buffer = append(buffer, PackUint32(uint32(len(data)))...)
	return append(buffer, data...)
}

// PackFixVec - vector of items that all have the same fixed size
func PackFixVec(items [][]byte) []byte {
	size := HeaderSize
	for _, item := range items {
		size += len(item)
	}
	buffer := make([]byte, 0, size)
	buffer = append(buffer, PackUint32(uint32(len(items)))...)
	for _, item := range items {
		buffer = append(buffer, item...)
	}
	return buffer
}

// PackDynVec - vector of variable sized items
func PackDynVec(items [][]byte) []byte {
	headerSize := HeaderSize * (1 + len(items))
	if 0 == len(items) {
		headerSize = HeaderSize
	}

	totalSize := headerSize
	for _, item := range items {
		totalSize += len(item)
	}

	buffer := make([]byte, 0, totalSize)
	buffer = append(buffer, PackUint32(uint32(totalSize))...)
	offset := headerSize
	for _, item := range items {
		buffer = append(buffer, PackUint32(uint32(offset))...)
		offset += len(item)
	}
	for _, item := range items {
		buffer = append(buffer, item...)
	}
	return buffer
}

// PackTable - table of fields, same layout as a dynvec
func PackTable(fields ...[]byte) []byte {
	return PackDynVec(fields)
}

// PackOption - empty when absent
func PackOption(item []byte, present bool) []byte {
	if !present {
		return []byte{}
	}
	return item
}
