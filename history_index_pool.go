// SPDX-License-Identifier: MIT
// Copyright (c) 2026 gopglz authors

package pglz

import "sync"

// historyIndexPool reuses historyIndex structs (heads+entries arrays,
// ~80KiB) across Compress calls. The index is purely per-invocation
// state: every field the algorithm reads is reinitialized by reset()
// before use, so handing out a previously-used struct from the pool is
// safe.
var historyIndexPool = sync.Pool{
	New: func() any {
		return &historyIndex{}
	},
}

func acquireHistoryIndex() *historyIndex {
	return historyIndexPool.Get().(*historyIndex)
}

func releaseHistoryIndex(h *historyIndex) {
	if h == nil {
		return
	}
	historyIndexPool.Put(h)
}
