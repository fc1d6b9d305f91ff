// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cell

import (
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/fault"
	"github.com/bitmark-inc/daocertificate/molecule"
)

// HeaderSize - bytes in a packed header
const HeaderSize = 4 + 4 + 8 + 8 + 8 + 5*digest.Length + 16

// Header - block header
type Header struct {
	Version          uint32        `json:"version"`
	CompactTarget    uint32        `json:"compact_target"`
	Timestamp        uint64        `json:"timestamp"`
	Number           uint64        `json:"number"`
	Epoch            uint64        `json:"epoch"`
	ParentHash       digest.Digest `json:"parent_hash"`
	TransactionsRoot digest.Digest `json:"transactions_root"`
	ProposalsHash    digest.Digest `json:"proposals_hash"`
	ExtraHash        digest.Digest `json:"extra_hash"`
	Dao              digest.Digest `json:"dao"`
	Nonce            uint64        `json:"nonce"`
}

// Pack - struct of raw header fields followed by a 128 bit nonce
func (h *Header) Pack() []byte {
	buffer := make([]byte, 0, HeaderSize)
	buffer = append(buffer, molecule.PackUint32(h.Version)...)
	buffer = append(buffer, molecule.PackUint32(h.CompactTarget)...)
	buffer = append(buffer, molecule.PackUint64(h.Timestamp)...)
	buffer = append(buffer, molecule.PackUint64(h.Number)...)
	buffer = append(buffer, molecule.PackUint64(h.Epoch)...)
	buffer = append(buffer, h.ParentHash[:]...)
	buffer = append(buffer, h.TransactionsRoot[:]...)
	buffer = append(buffer, h.ProposalsHash[:]...)
	buffer = append(buffer, h.ExtraHash[:]...)
	buffer = append(buffer, h.Dao[:]...)
	buffer = append(buffer, molecule.PackUint64(h.Nonce)...)
	return append(buffer, make([]byte, 8)...)
}

// Hash - block hash
func (h *Header) Hash() digest.Digest {
	return digest.NewDigest(h.Pack())
}

// UnpackHeader - decode a packed header
func UnpackHeader(data []byte) (*Header, error) {
	if HeaderSize != len(data) {
		return nil, fault.ErrNotMoleculeData
	}

	h := &Header{}
	n := 0
	u32 := func() uint32 {
		v, _ := molecule.UnpackUint32(data[n : n+4])
		n += 4
		return v
	}
	u64 := func() uint64 {
		v, _ := molecule.UnpackUint64(data[n : n+8])
		n += 8
		return v
	}
	d := func(to *digest.Digest) {
		copy(to[:], data[n:n+digest.Length])
		n += digest.Length
	}

	h.Version = u32()
	h.CompactTarget = u32()
	h.Timestamp = u64()
	h.Number = u64()
	h.Epoch = u64()
	d(&h.ParentHash)
	d(&h.TransactionsRoot)
	d(&h.ProposalsHash)
	d(&h.ExtraHash)
	d(&h.Dao)
	h.Nonce = u64()

	return h, nil
}
