// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package zopfli

import "sync"

// lmcPool recycles LongestMatchCache buffers across blocks. Each block gets
// its own cache (spec §5: "independent blocks own disjoint LMCs"), but the
// underlying slices are expensive enough (O(blocksize*(4+3K)) bytes) that
// reusing them across blocks and across squeeze iterations within a block
// avoids repeated large allocations.
var lmcPool = sync.Pool{
	New: func() any {
		return &LongestMatchCache{}
	},
}

// acquireLMC acquires a LongestMatchCache sized for blocksize positions and
// cacheLength sub-length slots, reinitializing it to the "not yet filled"
// sentinel state.
func acquireLMC(blocksize, cacheLength int) *LongestMatchCache {
	lmc := lmcPool.Get().(*LongestMatchCache)
	lmc.init(blocksize, cacheLength)
	return lmc
}

// releaseLMC returns lmc to the pool. The caller must not use lmc after
// calling releaseLMC.
func releaseLMC(lmc *LongestMatchCache) {
	if lmc == nil {
		return
	}
	lmcPool.Put(lmc)
}

// matcherPool recycles matcher ring-buffer state across blocks, mirroring
// the teacher's acquireSlidingWindowDict/releaseSlidingWindowDict pair.
var matcherPool = sync.Pool{
	New: func() any {
		return &matcher{}
	},
}

// acquireMatcher acquires a matcher bound to data, reusing its pooled
// hash-chain buffers when they're already large enough (see matcher.reset).
func acquireMatcher(data []byte, niceLength, maxChainHits int) *matcher {
	m := matcherPool.Get().(*matcher)
	m.niceLength = niceLength
	m.maxChainHits = maxChainHits
	m.reset(data)
	return m
}

func releaseMatcher(m *matcher) {
	if m == nil {
		return
	}
	m.data = nil
	matcherPool.Put(m)
}
