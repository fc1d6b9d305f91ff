// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest

import (
	"encoding/hex"
	"fmt"
	"hash"
	"strings"

	"github.com/minio/blake2b-simd"

	"github.com/bitmark-inc/daocertificate/fault"
)

// Length - number of bytes in the digest
const Length = 32

// personalisation string shared by every hash on the chain
const personal = "ckb-default-hash"

// Digest - type for a digest
// stored in natural byte order
// represented as 0x prefixed hex for print and JSON encoding
// to convert to bytes just use d[:]
type Digest [Length]byte

// NewHasher - create a personalised blake2b-256 hash state
func NewHasher() hash.Hash {
	h, err := blake2b.New(&blake2b.Config{
		Size:   Length,
		Person: []byte(personal),
	})
	if nil != err {
		// only possible with an invalid static configuration
		panic(fmt.Sprintf("blake2b setup failed: %s", err))
	}
	return h
}

// NewDigest - create a digest from the concatenation of byte slices
func NewDigest(items ...[]byte) Digest {
	h := NewHasher()
	for _, item := range items {
		h.Write(item)
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// IsZero - true if all bytes are zero
func (digest Digest) IsZero() bool {
	return Digest{} == digest
}

// String - convert a binary digest to hex string for use by the fmt package (for %s)
func (digest Digest) String() string {
	return "0x" + hex.EncodeToString(digest[:])
}

// GoString - convert a binary digest to hex string for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<blake2b-256:" + hex.EncodeToString(digest[:]) + ">"
}

// Scan - convert a hex representation to a digest for use by the format package scan routines
func (digest *Digest) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return 'x' == c || 'X' == c
	})
	if nil != err {
		return err
	}
	return digest.UnmarshalText(token)
}

// MarshalText - convert digest to 0x prefixed hex text
func (digest Digest) MarshalText() ([]byte, error) {
	return []byte(digest.String()), nil
}

// UnmarshalText - convert hex text with optional 0x prefix into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	text := strings.TrimPrefix(strings.TrimPrefix(string(s), "0x"), "0X")
	if 2*Length != len(text) {
		return fault.ErrInvalidLength
	}
	buffer, err := hex.DecodeString(text)
	if nil != err {
		return fault.ErrInvalidHexString
	}
	copy(digest[:], buffer)
	return nil
}

// FromBytes - convert and validate a binary byte slice to a digest
func FromBytes(digest *Digest, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrInvalidLength
	}
	copy(digest[:], buffer)
	return nil
}

// FromHex - decode a hex string with optional 0x prefix
func FromHex(s string) (Digest, error) {
	var d Digest
	err := d.UnmarshalText([]byte(s))
	return d, err
}
