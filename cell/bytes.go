// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cell

import (
	"encoding/hex"
	"strings"

	"github.com/bitmark-inc/daocertificate/fault"
)

// Bytes - byte slice that encodes as 0x prefixed hex text
type Bytes []byte

// String - hex representation
func (b Bytes) String() string {
	return "0x" + hex.EncodeToString(b)
}

// MarshalText - convert to 0x prefixed hex text
func (b Bytes) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText - convert hex text with optional 0x prefix
func (b *Bytes) UnmarshalText(s []byte) error {
	text := strings.TrimPrefix(strings.TrimPrefix(string(s), "0x"), "0X")
	buffer, err := hex.DecodeString(text)
	if nil != err {
		return fault.ErrInvalidHexString
	}
	*b = buffer
	return nil
}
