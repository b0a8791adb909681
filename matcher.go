// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package zopfli

import "github.com/cespare/xxhash/v2"

const (
	hashBits = 16
	hashSize = 1 << hashBits
	hashMask = hashSize - 1
)

// matcher is a hash-chain longest-match finder over a single contiguous
// byte slice, re-expressed from the teacher's ring-buffer sliding-window
// dictionary (sliding_window.go) for DEFLATE's single match class: length
// in [minMatch, maxMatch], distance in [1, windowSize]. Unlike the
// teacher's streaming ring buffer, a block's data is held in memory in
// full, so chain heads/links are plain slices indexed by absolute position
// rather than a wrapped byte ring (spec §5: "LZ77 store lives until the
// block's bitstream is emitted").
type matcher struct {
	data []byte

	head []int32 // hashSize entries; head[h] = most recent position with hash h, or -1
	prev []int32 // len(data) entries; prev[pos] = previous position sharing pos's hash, or -1

	niceLength   int
	maxChainHits int
}

// newMatcher returns a matcher ready to insert positions into data.
func newMatcher(data []byte, niceLength, maxChainHits int) *matcher {
	m := &matcher{
		niceLength:   niceLength,
		maxChainHits: maxChainHits,
	}
	m.reset(data)
	return m
}

// reset rebinds the matcher to a new data slice, reusing its backing
// arrays when they're already large enough (mirrors acquireLMC's
// pool-friendly init pattern in cache.go).
func (m *matcher) reset(data []byte) {
	m.data = data

	if cap(m.head) >= hashSize {
		m.head = m.head[:hashSize]
	} else {
		m.head = make([]int32, hashSize)
	}
	for i := range m.head {
		m.head[i] = -1
	}

	if cap(m.prev) >= len(data) {
		m.prev = m.prev[:len(data)]
	} else {
		m.prev = make([]int32, len(data))
	}
}

// hash3 returns the chain-table slot for the 3-byte prefix at data[pos:pos+3].
func hash3(data []byte) uint32 {
	return uint32(xxhash.Sum64(data[:3])) & hashMask
}

// Insert records pos in the hash chain for its 3-byte prefix. Positions
// must be inserted in increasing order, and only once each, so that chain
// traversal during a later FindLongestMatch only ever reaches earlier
// positions (spec §5: "all cache reads for position p happen after any
// writes for p produced by the same matching pass").
func (m *matcher) Insert(pos int) {
	if pos+3 > len(m.data) {
		return
	}
	h := hash3(m.data[pos:])
	m.prev[pos] = m.head[h]
	m.head[h] = int32(pos)
}

// FindLongestMatch returns the longest back-reference available at pos
// (length 0 if none qualifies, i.e. below minMatch), consulting lmc first
// and populating it with the result otherwise. lmcPos is pos translated
// into the cache's own position space (spec §4.B: the LMC is addressed by
// block-relative position, not absolute data offset).
func (m *matcher) FindLongestMatch(pos, lmcPos int, lmc *LongestMatchCache) (length, dist int) {
	if cached := lmc.LengthAt(lmcPos); cached != 1 || lmc.DistAt(lmcPos) != 0 {
		return int(cached), int(lmc.DistAt(lmcPos))
	}

	remaining := len(m.data) - pos
	maxLen := remaining
	if maxLen > maxMatch {
		maxLen = maxMatch
	}
	if maxLen < minMatch {
		lmc.setBest(lmcPos, 0, 0)
		return 0, 0
	}

	sublen := make([]uint16, maxLen+2)
	bestLength, bestDist := 0, 0

	h := hash3(m.data[pos:])
	hits := 0
	for chainPos := m.head[h]; chainPos >= 0 && hits < m.maxChainHits; chainPos = m.prev[chainPos] {
		candidateDist := pos - int(chainPos)
		if candidateDist <= 0 || candidateDist > windowSize {
			break
		}

		l := matchLength(m.data, int(chainPos), pos, maxLen)
		if l >= minMatch {
			// Chain traversal visits nearest positions (smallest distance)
			// first, so the first candidate to reach a given length is
			// already its cheapest distance; later, farther candidates
			// must not overwrite it.
			for i := minMatch; i <= l && i < len(sublen); i++ {
				if sublen[i] == 0 {
					sublen[i] = uint16(candidateDist)
				}
			}
			if l > bestLength {
				bestLength = l
				bestDist = candidateDist
				if l >= m.niceLength {
					break
				}
			}
		}
		hits++
	}

	if bestLength < minMatch {
		lmc.setBest(lmcPos, 0, 0)
		return 0, 0
	}

	lmc.SublenToCache(sublen, lmcPos, bestLength)
	lmc.setBest(lmcPos, uint16(bestLength), uint16(bestDist))
	return bestLength, bestDist
}

// matchLength returns how many leading bytes of data[a:] and data[b:]
// agree, up to maxLen.
func matchLength(data []byte, a, b, maxLen int) int {
	n := 0
	for n < maxLen && data[a+n] == data[b+n] {
		n++
	}
	return n
}
