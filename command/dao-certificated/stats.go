// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// periodically log memory usage until the program exits
func memstats() {

	log := logger.New("memory")

	for {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		text, err := json.Marshal(struct {
			Alloc      uint64 `json:"alloc"`
			TotalAlloc uint64 `json:"total_alloc"`
			Sys        uint64 `json:"sys"`
			NumGC      uint32 `json:"num_gc"`
			Goroutines int    `json:"goroutines"`
		}{
			Alloc:      m.Alloc,
			TotalAlloc: m.TotalAlloc,
			Sys:        m.Sys,
			NumGC:      m.NumGC,
			Goroutines: runtime.NumGoroutine(),
		})
		if nil != err {
			log.Errorf("marshal error: %s", err)
		} else {
			log.Infof("stats: %s", text)
		}
		log.Warnf("allocated: %d M  cumulative: %d M  OS virtual: %d M", m.Alloc/mega, m.TotalAlloc/mega, m.Sys/mega)

		time.Sleep(statsDelay)
	}
}
