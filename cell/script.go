// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cell

import (
	"bytes"

	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/fault"
	"github.com/bitmark-inc/daocertificate/molecule"
)

// HashType - how a script's code hash is matched against cell deps
type HashType byte

// the hash types
const (
	HashTypeData  HashType = 0 // code hash is the hash of the code cell data
	HashTypeType  HashType = 1 // code hash is the type hash of the code cell
	HashTypeData1 HashType = 2 // data hash, newer virtual machine
)

var hashTypeNames = map[HashType]string{
	HashTypeData:  "data",
	HashTypeType:  "type",
	HashTypeData1: "data1",
}

// String - name of the hash type
func (h HashType) String() string {
	if name, ok := hashTypeNames[h]; ok {
		return name
	}
	return "unknown"
}

// MarshalText - hash type as its name
func (h HashType) MarshalText() ([]byte, error) {
	if _, ok := hashTypeNames[h]; !ok {
		return nil, fault.ErrInvalidHashType
	}
	return []byte(h.String()), nil
}

// UnmarshalText - hash type from its name
func (h *HashType) UnmarshalText(s []byte) error {
	for k, v := range hashTypeNames {
		if v == string(s) {
			*h = k
			return nil
		}
	}
	return fault.ErrInvalidHashType
}

// Script - a lock or type predicate reference
type Script struct {
	CodeHash digest.Digest `json:"code_hash"`
	HashType HashType      `json:"hash_type"`
	Args     Bytes         `json:"args"`
}

// Pack - molecule table: code_hash, hash_type, args
func (s *Script) Pack() []byte {
	return molecule.PackTable(
		s.CodeHash[:],
		[]byte{byte(s.HashType)},
		molecule.PackBytes(s.Args),
	)
}

// Hash - the script hash
func (s *Script) Hash() digest.Digest {
	return digest.NewDigest(s.Pack())
}

// Equal - same code, hash type and args
func (s *Script) Equal(other *Script) bool {
	if nil == s || nil == other {
		return s == other
	}
	return s.CodeHash == other.CodeHash &&
		s.HashType == other.HashType &&
		bytes.Equal(s.Args, other.Args)
}

// Clone - deep copy
func (s *Script) Clone() *Script {
	if nil == s {
		return nil
	}
	args := make(Bytes, len(s.Args))
	copy(args, s.Args)
	return &Script{
		CodeHash: s.CodeHash,
		HashType: s.HashType,
		Args:     args,
	}
}

// occupied bytes of the script
func (s *Script) occupied() uint64 {
	return digest.Length + 1 + uint64(len(s.Args))
}

// UnpackScript - decode a packed script
func UnpackScript(data []byte) (*Script, error) {
	fields, err := molecule.UnpackTable(data, 3, false)
	if nil != err {
		return nil, err
	}

	s := &Script{}
	err = digest.FromBytes(&s.CodeHash, fields[0])
	if nil != err {
		return nil, fault.ErrNotMoleculeData
	}

	if 1 != len(fields[1]) {
		return nil, fault.ErrNotMoleculeData
	}
	s.HashType = HashType(fields[1][0])
	if _, ok := hashTypeNames[s.HashType]; !ok {
		return nil, fault.ErrInvalidHashType
	}

	args, err := molecule.UnpackBytes(fields[2])
	if nil != err {
		return nil, err
	}
	s.Args = make(Bytes, len(args))
	copy(s.Args, args)

	return s, nil
}
