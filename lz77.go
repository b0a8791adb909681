// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package zopfli

// Token is a single LZ77 symbol: either a literal byte (Dist == 0, LitLen
// in [0,255]) or a back-reference (Dist > 0, LitLen the match length in
// [3,258] and Dist the distance in [1,32768]).
type Token struct {
	LitLen   uint16 // literal byte, or match length
	Dist     uint16 // 0 for a literal, else back-reference distance
	Pos      int    // offset in the source data where this token begins
	LLSymbol uint16 // DEFLATE literal/length alphabet index (0-285)
	DSymbol  uint16 // DEFLATE distance alphabet index (0-29), 0 for literals
}

// IsLiteral reports whether t represents a literal byte rather than a match.
func (t Token) IsLiteral() bool {
	return t.Dist == 0
}

// Store holds the ordered LZ77 token sequence for a block plus rolling
// cumulative histograms over the literal/length (size numLL) and distance
// (size numD) alphabets. For any index i that is a multiple of numLL
// (respectively numD), the store holds a snapshot of cumulative counts up
// to but not including token i; histogram queries reconstruct any range in
// O(numLL + remainder) time instead of rescanning the whole store (spec §3, §4.C).
type Store struct {
	tokens []Token

	llCounts []int // len = numLL * ceil(size/numLL), chunked cumulative snapshots
	dCounts  []int // len = numD * ceil(size/numD)

	generation uint64 // bumped on every mutation; lets callers cache per-range histograms
}

// NewStore returns an empty LZ77 store.
func NewStore() *Store {
	return &Store{}
}

// Reset empties the store for reuse, retaining underlying capacity.
func (s *Store) Reset() {
	s.tokens = s.tokens[:0]
	s.llCounts = s.llCounts[:0]
	s.dCounts = s.dCounts[:0]
	s.generation++
}

// Generation returns a counter bumped on every mutation (Append or Reset).
// Callers may use it to invalidate histogram caches keyed by range without
// holding a copy of the store's contents.
func (s *Store) Generation() uint64 {
	return s.generation
}

// Len returns the number of tokens currently in the store.
func (s *Store) Len() int {
	return len(s.tokens)
}

// Token returns the token at index i.
func (s *Store) Token(i int) Token {
	return s.tokens[i]
}

// Append adds a (litlen, dist, pos) token, deriving its LL/D alphabet
// symbols and updating the rolling histograms (spec §4.C).
//
// Before appending, if the previous size is a multiple of numLL
// (respectively numD), a fresh chunk of numLL (respectively numD) histogram
// slots is seeded with the previous chunk's values (zero for the very
// first chunk). The new token's symbol count is then incremented within
// its chunk.
func (s *Store) Append(litlen, dist uint16, pos int) {
	origsize := len(s.tokens)
	llStart := numLL * (origsize / numLL)
	dStart := numD * (origsize / numD)

	if origsize%numLL == 0 {
		for i := 0; i < numLL; i++ {
			if origsize == 0 {
				s.llCounts = append(s.llCounts, 0)
			} else {
				s.llCounts = append(s.llCounts, s.llCounts[origsize-numLL+i])
			}
		}
	}
	if origsize%numD == 0 {
		for i := 0; i < numD; i++ {
			if origsize == 0 {
				s.dCounts = append(s.dCounts, 0)
			} else {
				s.dCounts = append(s.dCounts, s.dCounts[origsize-numD+i])
			}
		}
	}

	t := Token{LitLen: litlen, Dist: dist, Pos: pos}
	if dist == 0 {
		t.LLSymbol = litlen
		t.DSymbol = 0
		s.llCounts[llStart+int(litlen)]++
	} else {
		llSym := uint16(LengthSymbol(int(litlen)))
		dSym := uint16(DistSymbol(int(dist)))
		t.LLSymbol = llSym
		t.DSymbol = dSym
		s.llCounts[llStart+int(llSym)]++
		s.dCounts[dStart+int(dSym)]++
	}

	s.tokens = append(s.tokens, t)
	s.generation++
}

// llCumulativeAtBoundary returns the cumulative LL counts over [0, x) for x
// a multiple of numLL (0 <= x <= size). Append() keeps each chunk "live"
// (incrementing in place) until a later chunk is created, at which point
// the chunk's final value freezes at exactly the cumulative count through
// its own end boundary — so chunk (x/numLL - 1), not chunk (x/numLL),
// holds the snapshot for boundary x.
func (s *Store) llCumulativeAtBoundary(x int) []int {
	if x == 0 {
		return make([]int, numLL)
	}
	return s.llCounts[x-numLL : x]
}

func (s *Store) dCumulativeAtBoundary(x int) []int {
	if x == 0 {
		return make([]int, numD)
	}
	return s.dCounts[x-numD : x]
}

// cumulativeLL returns LL symbol counts over [0, x) for arbitrary x,
// combining the nearest frozen chunk boundary with a scan of the
// remainder tokens between that boundary and x.
func (s *Store) cumulativeLL(x int) (out [numLL]int) {
	aligned := numLL * (x / numLL)
	copy(out[:], s.llCumulativeAtBoundary(aligned))
	for i := aligned; i < x; i++ {
		out[s.tokens[i].LLSymbol]++
	}
	return
}

func (s *Store) cumulativeD(x int) (out [numD]int) {
	aligned := numD * (x / numD)
	copy(out[:], s.dCumulativeAtBoundary(aligned))
	for i := aligned; i < x; i++ {
		if !s.tokens[i].IsLiteral() {
			out[s.tokens[i].DSymbol]++
		}
	}
	return
}

// Histogram returns LL and D symbol counts over tokens [start, end). It
// combines the frozen cumulative chunk snapshots with a scan of the
// boundary remainder tokens, producing identical results to a naive
// per-token loop over [start,end) in O(numLL + (end mod numLL)) time
// (spec §4.C).
func (s *Store) Histogram(start, end int) (llCounts [numLL]int, dCounts [numD]int) {
	if start == end {
		return
	}

	llEnd := s.cumulativeLL(end)
	llStart := s.cumulativeLL(start)
	for i := 0; i < numLL; i++ {
		llCounts[i] = llEnd[i] - llStart[i]
	}

	dEnd := s.cumulativeD(end)
	dStart := s.cumulativeD(start)
	for i := 0; i < numD; i++ {
		dCounts[i] = dEnd[i] - dStart[i]
	}

	return
}
