// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package zopfli

// LongestMatchCache memoizes ZopfliFindLongestMatch-style results so that
// repeated squeeze iterations over the same block don't re-run the string
// matcher for positions whose neighborhood hasn't changed. It owns three
// contiguous buffers sized once at construction and scoped to one block's
// lifetime (spec §5, §9 "Raw pointers with manual allocation" note: this is
// the owning-struct-with-contiguous-buffers re-expression of the original's
// malloc'd arrays).
type LongestMatchCache struct {
	cacheLength int // K: max sub-length transitions memoized per position

	length []uint16 // best cached match length per position
	dist   []uint16 // best cached match distance per position
	sublen []byte   // packed (len-3, dist_lo, dist_hi) triples, cacheLength*3 per position
}

// NewLongestMatchCache allocates a cache for a block of blocksize positions.
// length[p] and dist[p] start at the sentinel (1, 0) meaning "not yet
// filled" (spec §9: keep this exact encoding, downstream callers test for it).
func NewLongestMatchCache(blocksize, cacheLength int) *LongestMatchCache {
	lmc := &LongestMatchCache{}
	lmc.init(blocksize, cacheLength)
	return lmc
}

// init resets lmc in place for reuse via the pool (acquireLMC/releaseLMC).
func (lmc *LongestMatchCache) init(blocksize, cacheLength int) {
	lmc.cacheLength = cacheLength

	if cap(lmc.length) >= blocksize {
		lmc.length = lmc.length[:blocksize]
	} else {
		lmc.length = make([]uint16, blocksize)
	}
	if cap(lmc.dist) >= blocksize {
		lmc.dist = lmc.dist[:blocksize]
	} else {
		lmc.dist = make([]uint16, blocksize)
	}
	sublenSize := cacheLength * 3 * blocksize
	if cap(lmc.sublen) >= sublenSize {
		lmc.sublen = lmc.sublen[:sublenSize]
	} else {
		lmc.sublen = make([]byte, sublenSize)
	}

	for i := range lmc.length {
		lmc.length[i] = 1
		lmc.dist[i] = 0
	}
	for i := range lmc.sublen {
		lmc.sublen[i] = 0
	}
}

// entryStart returns the offset into sublen where position p's table begins.
func (lmc *LongestMatchCache) entryStart(p int) int {
	return lmc.cacheLength * p * 3
}

// MaxCachedSublen returns the maximum match length (in bytes) for which a
// sub-length distance is cached at position p, or 0 if none is cached.
// "None cached" is detected by the dist bytes of the first sublen entry
// both being zero (spec §4.B).
func (lmc *LongestMatchCache) MaxCachedSublen(p int) int {
	start := lmc.entryStart(p)
	if lmc.sublen[start+1] == 0 && lmc.sublen[start+2] == 0 {
		return 0
	}
	return int(lmc.sublen[start+(lmc.cacheLength-1)*3]) + 3
}

// CacheToSublen populates out[prev+1 ..= storedLen] with the distance
// recorded at each sublen entry in turn, stopping once an entry's length
// equals the recorded maximum. out must be indexable at least up to length.
// Short-circuits when length < 3 (spec §4.B).
func (lmc *LongestMatchCache) CacheToSublen(p, length int, out []uint16) {
	if length < 3 {
		return
	}

	maxlength := lmc.MaxCachedSublen(p)
	prevlength := 0
	start := lmc.entryStart(p)

	for j := 0; j < lmc.cacheLength; j++ {
		entryLength := int(lmc.sublen[start+j*3]) + 3
		dist := uint16(lmc.sublen[start+j*3+1]) + 256*uint16(lmc.sublen[start+j*3+2])

		for i := prevlength; i <= entryLength; i++ {
			out[i] = dist
		}
		if entryLength == maxlength {
			break
		}
		prevlength = entryLength + 1
	}
}

// SublenToCache scans in[3 ..= length] and records an entry each time the
// distance changes (or the final index is reached), filling at most
// cacheLength slots. If fewer than cacheLength entries were needed, the
// ceiling marker (length-3) is written into the last slot so
// MaxCachedSublen reports the true best length (spec §4.B).
func (lmc *LongestMatchCache) SublenToCache(in []uint16, p, length int) {
	if length < 3 {
		return
	}

	start := lmc.entryStart(p)
	j := 0
	bestlength := 0

	for i := 3; i <= length; i++ {
		if i == length || in[i] != in[i+1] {
			lmc.sublen[start+j*3] = byte(i - 3)
			lmc.sublen[start+j*3+1] = byte(in[i] % 256)
			lmc.sublen[start+j*3+2] = byte((in[i] >> 8) % 256)
			bestlength = i
			j++
			if j >= lmc.cacheLength {
				break
			}
		}
	}

	if j < lmc.cacheLength {
		if bestlength != length {
			panic("zopfli: SublenToCache invariant violated: bestlength != length")
		}
		lmc.sublen[start+(lmc.cacheLength-1)*3] = byte(bestlength - 3)
	} else if bestlength > length {
		panic("zopfli: SublenToCache invariant violated: bestlength > length")
	}
}

// LengthAt returns the cached best match length at position p.
func (lmc *LongestMatchCache) LengthAt(p int) uint16 {
	return lmc.length[p]
}

// DistAt returns the cached best match distance at position p.
func (lmc *LongestMatchCache) DistAt(p int) uint16 {
	return lmc.dist[p]
}

// setBest records the best match found for position p (not part of the
// original spec's narrow contract, but needed by the matcher to fill the
// cache it then queries via LengthAt/DistAt).
func (lmc *LongestMatchCache) setBest(p int, length, dist uint16) {
	lmc.length[p] = length
	lmc.dist[p] = dist
}
