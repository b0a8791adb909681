// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package zopfli

// CostModel is the capability the squeeze pass needs from a Huffman tree:
// given a candidate (litlen, dist) pair, the bit cost of emitting it.
// Both the fixed-tree and dynamic-tree variants satisfy this signature
// (spec §4.G, §9 "Polymorphic cost model").
type CostModel func(litlen, dist uint16) float64

// FixedCost is a CostModel matching the fixed DEFLATE Huffman tree exactly:
// literals under 144 cost 8 bits, the rest 9; matches cost a 7- or 8-bit
// length-symbol base (depending on whether the symbol exceeds 279) plus a
// flat 5 bits for the distance symbol, plus both symbols' extra bits.
func FixedCost(litlen, dist uint16) float64 {
	if dist == 0 {
		if litlen <= 143 {
			return 8
		}
		return 9
	}

	lsym := LengthSymbol(int(litlen))
	cost := 5 // every distance symbol costs 5 bits under the fixed tree
	if lsym <= 279 {
		cost += 7
	} else {
		cost += 8
	}
	cost += LengthExtraBits(int(litlen))
	cost += DistExtraBits(int(dist))
	return float64(cost)
}

// DynamicCost builds a CostModel from a pair of actual code-length tables
// (as produced by LengthLimitedCodeLengths for the current LL/D
// histograms), rather than the fixed tree's constants.
func DynamicCost(llLengths, dLengths []int) CostModel {
	return func(litlen, dist uint16) float64 {
		if dist == 0 {
			return float64(llLengths[litlen])
		}
		lsym := LengthSymbol(int(litlen))
		dsym := DistSymbol(int(dist))
		cost := llLengths[lsym] + dLengths[dsym]
		cost += LengthExtraBits(int(litlen))
		cost += DistExtraBits(int(dist))
		return float64(cost)
	}
}
