// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package zopfli

// Result is the parse Squeeze converged on: the LZ77 token sequence plus
// the Huffman code-length tables it was costed against.
type Result struct {
	Store     *Store
	LLLengths []int
	DLengths  []int
	Bits      int
}

// Squeeze runs the cost-model-guided re-parse loop (spec §2 "Data flow"):
// the matcher (out of this spec's scope, but wired here per its contract
// with the LMC) proposes matches, a greedy accept/reject decision is made
// against the current cost model, the resulting token stream is costed
// under its own derived Huffman tables via D, E and F, and the cost model
// is refreshed from those tables for the next pass. Iteration stops when
// either MaxSqueezeIterations is reached or a pass fails to reduce the
// total bit cost.
func Squeeze(data []byte, opts *Options) (*Result, error) {
	opts = opts.withDefaults()
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	lmc := acquireLMC(len(data), opts.CacheLength)
	defer releaseLMC(lmc)

	m := acquireMatcher(data, opts.NiceMatchLength, opts.MaxChainHits)
	defer releaseMatcher(m)
	for i := range data {
		m.Insert(i)
	}

	store := NewStore()
	acc := NewCostAccountant(64)

	var cost CostModel = FixedCost
	var best *Result

	for iter := 0; iter < opts.MaxSqueezeIterations; iter++ {
		store.Reset()
		parseOnce(data, m, lmc, cost, store)

		llLengths, dLengths, err := deriveHuffmanTables(store)
		if err != nil {
			return nil, err
		}

		bits := acc.BlockBitSize(llLengths, dLengths, store, 0, store.Len())
		if best != nil && bits >= best.Bits {
			break
		}

		best = &Result{
			Store:     cloneStore(store),
			LLLengths: llLengths,
			DLengths:  dLengths,
			Bits:      bits,
		}
		cost = DynamicCost(llLengths, dLengths)
	}

	return best, nil
}

// parseOnce performs a single greedy left-to-right parse of data into
// store: at each position, a candidate match is accepted only if it costs
// less under the current model than emitting its length in literals.
func parseOnce(data []byte, m *matcher, lmc *LongestMatchCache, cost CostModel, store *Store) {
	pos := 0
	for pos < len(data) {
		length, dist := m.FindLongestMatch(pos, pos, lmc)
		if length >= minMatch {
			matchCost := cost(uint16(length), uint16(dist))
			literalCost := 0.0
			for i := 0; i < length; i++ {
				literalCost += cost(uint16(data[pos+i]), 0)
			}
			if matchCost < literalCost {
				store.Append(uint16(length), uint16(dist), pos)
				pos += length
				continue
			}
		}
		store.Append(uint16(data[pos]), 0, pos)
		pos++
	}
}

// deriveHuffmanTables computes length-limited, RLE-shaped, buggy-decoder-
// patched code-length tables from store's current token histogram
// (components D, E).
func deriveHuffmanTables(store *Store) (llLengths, dLengths []int, err error) {
	llCounts, dCounts := store.Histogram(0, store.Len())

	llFreqs := make([]uint64, numLL)
	for i, c := range llCounts {
		llFreqs[i] = uint64(c)
	}
	if llFreqs[256] == 0 {
		llFreqs[256] = 1 // the end-of-block symbol always appears exactly once
	}

	OptimizeHuffmanForRLE(llFreqs)
	llLengths, err = LengthLimitedCodeLengths(llFreqs, maxBits)
	if err != nil {
		return nil, nil, err
	}

	dFreqs := make([]uint64, numD)
	for i, c := range dCounts {
		dFreqs[i] = uint64(c)
	}
	OptimizeHuffmanForRLE(dFreqs)
	dLengths, err = LengthLimitedCodeLengths(dFreqs, maxBits)
	if err != nil {
		return nil, nil, err
	}
	PatchDistanceCodesForBuggyDecoders(dLengths)

	return llLengths, dLengths, nil
}

// cloneStore copies s's tokens into a fresh store, used to snapshot the
// best parse found so far before the next iteration mutates s in place.
func cloneStore(s *Store) *Store {
	clone := NewStore()
	for i := 0; i < s.Len(); i++ {
		t := s.Token(i)
		clone.Append(t.LitLen, t.Dist, t.Pos)
	}
	return clone
}
