// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package molecule

import (
	"encoding/binary"

	"github.com/bitmark-inc/daocertificate/fault"
)

// UnpackUint64 - exactly 8 little endian bytes
func UnpackUint64(data []byte) (uint64, error) {
	if 8 != len(data) {
		return 0, fault.ErrNotMoleculeData
	}
	return binary.LittleEndian.Uint64(data), nil
}

// UnpackUint32 - exactly 4 little endian bytes
func UnpackUint32(data []byte) (uint32, error) {
	if 4 != len(data) {
		return 0, fault.ErrNotMoleculeData
	}
	return binary.LittleEndian.Uint32(data), nil
}

// UnpackBytes - fixvec of bytes; returns the raw item bytes
func UnpackBytes(data []byte) ([]byte, error) {
	if len(data) < HeaderSize {
		return nil, fault.ErrNotMoleculeData
	}
	count := binary.LittleEndian.Uint32(data[:HeaderSize])
	if uint64(len(data)) != uint64(HeaderSize)+uint64(count) {
		return nil, fault.ErrNotMoleculeData
	}
	return data[HeaderSize:], nil
}

// UnpackFixVec - split a fixvec whose items are itemSize bytes
func UnpackFixVec(data []byte, itemSize int) ([][]byte, error) {
	if len(data) < HeaderSize || itemSize <= 0 {
		return nil, fault.ErrNotMoleculeData
	}
	count := int(binary.LittleEndian.Uint32(data[:HeaderSize]))
	if len(data)-HeaderSize != count*itemSize {
		return nil, fault.ErrNotMoleculeData
	}
	items := make([][]byte, count)
	n := HeaderSize
	for i := 0; i < count; i += 1 {
		items[i] = data[n : n+itemSize]
		n += itemSize
	}
	return items, nil
}

// UnpackDynVec - split a dynvec into its items
func UnpackDynVec(data []byte) ([][]byte, error) {
	if len(data) < HeaderSize {
		return nil, fault.ErrNotMoleculeData
	}
	totalSize := int(binary.LittleEndian.Uint32(data[:HeaderSize]))
	if totalSize != len(data) {
		return nil, fault.ErrNotMoleculeData
	}
	if HeaderSize == totalSize {
		return [][]byte{}, nil
	}
	if totalSize < 2*HeaderSize {
		return nil, fault.ErrNotMoleculeData
	}

	firstOffset := int(binary.LittleEndian.Uint32(data[HeaderSize : 2*HeaderSize]))
	if 0 != firstOffset%HeaderSize || firstOffset < 2*HeaderSize || firstOffset > totalSize {
		return nil, fault.ErrNotMoleculeData
	}
	count := firstOffset/HeaderSize - 1

	offsets := make([]int, count+1)
	for i := 0; i < count; i += 1 {
		start := HeaderSize * (1 + i)
		offsets[i] = int(binary.LittleEndian.Uint32(data[start : start+HeaderSize]))
	}
	offsets[count] = totalSize

	items := make([][]byte, count)
	for i := 0; i < count; i += 1 {
		if offsets[i] > offsets[i+1] {
			return nil, fault.ErrNotMoleculeData
		}
		items[i] = data[offsets[i]:offsets[i+1]]
	}
	return items, nil
}

// UnpackTable - split a table into fields
//
// compatible permits extra trailing fields written by a newer schema
func UnpackTable(data []byte, fieldCount int, compatible bool) ([][]byte, error) {
	fields, err := UnpackDynVec(data)
	if nil != err {
		return nil, err
	}
	if len(fields) < fieldCount {
		return nil, fault.ErrNotMoleculeData
	}
	if len(fields) > fieldCount && !compatible {
		return nil, fault.ErrNotMoleculeData
	}
	return fields[:fieldCount], nil
}

// UnpackOption - an empty slice is none
func UnpackOption(data []byte) ([]byte, bool) {
	if 0 == len(data) {
		return nil, false
	}
	return data, true
}
