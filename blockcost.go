// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package zopfli

import lru "github.com/hashicorp/golang-lru/v2"

// smallRangeThreshold is the crossover point (spec §4.F) below which
// iterating tokens directly beats building a histogram first.
const smallRangeThreshold = 3 * numLL

// BlockBitSize returns the number of bits needed to encode tokens
// [lstart, lend) of store under the given literal/length and distance code
// length tables, including the end-of-block symbol 256 (spec §4.F). The two
// internal strategies (direct scan, histogram-based) are chosen purely for
// speed and must agree bit-for-bit on any range.
func BlockBitSize(llLengths, dLengths []int, store *Store, lstart, lend int) int {
	if lend-lstart < smallRangeThreshold {
		return blockBitSizeSmall(llLengths, dLengths, store, lstart, lend)
	}
	llCounts, dCounts := store.Histogram(lstart, lend)
	return blockBitSizeGivenCounts(llCounts, dCounts, llLengths, dLengths)
}

func blockBitSizeSmall(llLengths, dLengths []int, store *Store, lstart, lend int) int {
	result := 0
	for i := lstart; i < lend; i++ {
		tok := store.Token(i)
		if tok.IsLiteral() {
			result += llLengths[tok.LitLen]
			continue
		}
		llSymbol := LengthSymbol(int(tok.LitLen))
		dSymbol := DistSymbol(int(tok.Dist))
		result += llLengths[llSymbol]
		result += dLengths[dSymbol]
		result += LengthSymbolExtraBits(llSymbol)
		result += DistSymbolExtraBits(dSymbol)
	}
	result += llLengths[256]
	return result
}

func blockBitSizeGivenCounts(llCounts [numLL]int, dCounts [numD]int, llLengths, dLengths []int) int {
	result := 0
	for i := 0; i < 256; i++ {
		result += llLengths[i] * llCounts[i]
	}
	for i := 257; i < 286; i++ {
		result += llLengths[i] * llCounts[i]
		result += LengthSymbolExtraBits(i) * llCounts[i]
	}
	for i := 0; i < 30; i++ {
		result += dLengths[i] * dCounts[i]
		result += DistSymbolExtraBits(i) * dCounts[i]
	}
	result += llLengths[256]
	return result
}

// histKey identifies a memoized histogram: a store, the generation at which
// it was computed (bumped on every mutation, see lz77.go), and the range.
type histKey struct {
	store      *Store
	generation uint64
	lstart     int
	lend       int
}

type histVal struct {
	ll [numLL]int
	d  [numD]int
}

// CostAccountant memoizes the histograms behind BlockBitSize's large-range
// path. A squeeze pass (spec §4.G) calls BlockBitSize many times over the
// same candidate split ranges as it tries different Huffman tables; since
// the histogram depends only on store contents, not on the tables, a
// bounded LRU keyed by (store generation, range) turns most of those calls
// into a cache hit instead of a full histogram rescan.
type CostAccountant struct {
	cache *lru.Cache[histKey, histVal]
}

// NewCostAccountant returns an accountant with a bounded histogram cache of
// the given capacity.
func NewCostAccountant(size int) *CostAccountant {
	cache, _ := lru.New[histKey, histVal](size)
	return &CostAccountant{cache: cache}
}

// BlockBitSize behaves exactly like the package-level BlockBitSize, but
// serves the large-range histogram from its cache when available.
func (a *CostAccountant) BlockBitSize(llLengths, dLengths []int, store *Store, lstart, lend int) int {
	if lend-lstart < smallRangeThreshold {
		return blockBitSizeSmall(llLengths, dLengths, store, lstart, lend)
	}

	key := histKey{store: store, generation: store.Generation(), lstart: lstart, lend: lend}
	v, ok := a.cache.Get(key)
	if !ok {
		ll, d := store.Histogram(lstart, lend)
		v = histVal{ll: ll, d: d}
		a.cache.Add(key, v)
	}
	return blockBitSizeGivenCounts(v.ll, v.d, llLengths, dLengths)
}
