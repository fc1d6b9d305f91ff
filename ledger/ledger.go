// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/fault"
	"github.com/bitmark-inc/daocertificate/storage"
	"github.com/bitmark-inc/logger"
)

// milliseconds between consecutive block timestamps
const blockInterval = 8000

const (
	headerExpiration = 10 * time.Minute
	headerCleanup    = 20 * time.Minute
)

// Ledger - chain state held in the storage pools
type Ledger struct {
	sync.RWMutex

	log     *logger.L
	headers *cache.Cache
	tip     *cell.Header
}

// New - attach to the storage pools and find the current tip
//
// storage must already be initialised
func New() (*Ledger, error) {
	if nil == storage.Pool.BlockNumber {
		return nil, fault.ErrDatabaseIsNotSet
	}

	l := &Ledger{
		log:     logger.New("ledger"),
		headers: cache.New(headerExpiration, headerCleanup),
	}

	err := storage.Pool.BlockNumber.NewFetchCursor().Map(func(key []byte, value []byte) error {
		h, err := l.header(value)
		if nil != err {
			return err
		}
		l.tip = h
		return nil
	})
	if nil != err {
		return nil, err
	}

	if nil == l.tip {
		l.log.Info("empty chain")
	} else {
		l.log.Infof("tip: %d  hash: %s", l.tip.Number, l.tip.Hash())
	}
	return l, nil
}

// Tip - the highest block, nil before Genesis
func (l *Ledger) Tip() *cell.Header {
	l.RLock()
	defer l.RUnlock()

	if nil == l.tip {
		return nil
	}
	h := *l.tip
	return &h
}

// header from the cache or the Headers pool
func (l *Ledger) header(hash []byte) (*cell.Header, error) {
	if h, ok := l.headers.Get(string(hash)); ok {
		return h.(*cell.Header), nil
	}

	packed := storage.Pool.Headers.Get(hash)
	if nil == packed {
		return nil, fault.ErrHeaderNotFound
	}
	h, err := cell.UnpackHeader(packed)
	logger.PanicIfError("ledger.header", err)

	l.headers.Set(string(hash), h, cache.DefaultExpiration)
	return h, nil
}

// key for the block number pool
func blockNumberKey(n uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, n)
	return key
}

// index keys: hash ++ out point
func indexKey(hash digest.Digest, outPoint cell.OutPoint) []byte {
	key := make([]byte, 0, digest.Length+cell.OutPointSize)
	key = append(key, hash[:]...)
	return append(key, outPoint.Pack()...)
}
