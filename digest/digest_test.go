// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/fault"
)

func TestEmptyHash(t *testing.T) {
	d := digest.NewDigest()
	assert.Equal(t, "0x44f4c69744d5f8c55d642062949dcae49bc4e7ef43d388c5a12f42b5633d163e", d.String(), "wrong empty hash")
}

func TestSplitInputMatchesConcatenation(t *testing.T) {
	whole := digest.NewDigest([]byte("hello world"))
	split := digest.NewDigest([]byte("hello"), []byte(" "), []byte("world"))
	assert.Equal(t, whole, split, "split hash differs")

	other := digest.NewDigest([]byte("hello world!"))
	assert.NotEqual(t, whole, other, "different data hashed equal")
}

func TestTextRoundTrip(t *testing.T) {
	d := digest.NewDigest([]byte("round trip"))

	buffer, err := json.Marshal(d)
	assert.Nil(t, err, "marshal error")

	var decoded digest.Digest
	err = json.Unmarshal(buffer, &decoded)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, d, decoded, "decoded digest differs")

	// also accepted without prefix
	noPrefix, err := digest.FromHex(d.String()[2:])
	assert.Nil(t, err, "from hex error")
	assert.Equal(t, d, noPrefix, "unprefixed digest differs")
}

func TestScan(t *testing.T) {
	d := digest.NewDigest([]byte("scan"))
	var scanned digest.Digest
	n, err := fmt.Sscan(d.String(), &scanned)
	assert.Nil(t, err, "scan error")
	assert.Equal(t, 1, n, "scan count")
	assert.Equal(t, d, scanned, "scanned digest differs")
}

func TestInvalidText(t *testing.T) {
	_, err := digest.FromHex("0x1234")
	assert.Equal(t, fault.ErrInvalidLength, err, "short hex accepted")

	_, err = digest.FromHex("0x" + strings.Repeat("ab", digest.Length) + "c")
	assert.Equal(t, fault.ErrInvalidLength, err, "odd length accepted")

	_, err = digest.FromHex("0xzz4c69744d5f8c55d642062949dcae49bc4e7ef43d388c5a12f42b5633d163e0")
	assert.Equal(t, fault.ErrInvalidHexString, err, "invalid hex accepted")

	_, err = digest.FromHex("0x" + strings.Repeat("g", 2*digest.Length))
	assert.Equal(t, fault.ErrInvalidHexString, err, "non-hex digits accepted")

	var d digest.Digest
	assert.Equal(t, fault.ErrInvalidLength, digest.FromBytes(&d, []byte{1, 2, 3}), "short bytes accepted")
}
