// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package zopfli

// OptimizeHuffmanForRLE rewrites counts in place so the Huffman code-length
// table that follows from them compresses better under DEFLATE's own
// run-length encoding of code lengths (spec §4.E). It never changes len(counts);
// trailing zeros are left untouched so the rewrite cannot fabricate codes
// past the table's real extent.
func OptimizeHuffmanForRLE(counts []uint64) {
	n := len(counts)

	// 1) Trim trailing zeros: we must not introduce data past the real
	// end of the table.
	for n > 0 && counts[n-1] == 0 {
		n--
	}
	if n == 0 {
		return
	}

	// 2) Mark positions that already form a good run-length-encodable run:
	// 5+ repeats of zero, or 7+ repeats of any nonzero value.
	goodForRLE := make([]bool, n)
	symbol := counts[0]
	stride := 0
	for i := 0; i <= n; i++ {
		if i == n || counts[i] != symbol {
			if (symbol == 0 && stride >= 5) || (symbol != 0 && stride >= 7) {
				for k := 0; k < stride; k++ {
					goodForRLE[i-k-1] = true
				}
			}
			stride = 1
			if i != n {
				symbol = counts[i]
			}
		} else {
			stride++
		}
	}

	// 3) Replace stretches of counts with their rounded average wherever
	// doing so will not spoil an already-good-for-rle run and the counts
	// stay within a heuristic tolerance of a rolling limit.
	stride = 0
	limit := counts[0]
	var sum uint64
	for i := 0; i <= n; i++ {
		boundary := i == n || goodForRLE[i] || absDiff(counts[i], limit) >= 4
		if boundary {
			if stride >= 4 || (stride >= 3 && sum == 0) {
				count := (sum + uint64(stride)/2) / uint64(stride)
				if sum == 0 {
					count = 0
				} else if count < 1 {
					count = 1
				}
				for k := 0; k < stride; k++ {
					counts[i-k-1] = count
				}
			}

			stride = 0
			sum = 0
			switch {
			case n > 2 && i < n-3:
				limit = (counts[i] + counts[i+1] + counts[i+2] + counts[i+3] + 2) / 4
			case i < n:
				limit = counts[i]
			default:
				limit = 0
			}
		}

		stride++
		if i != n {
			sum += counts[i]
		}
	}
}

func absDiff(a, b uint64) int64 {
	d := int64(a) - int64(b)
	if d < 0 {
		return -d
	}
	return d
}

// PatchDistanceCodesForBuggyDecoders ensures at least 2 distance codes have
// nonzero length. Some decoders (zlib <= 1.2.1, certain mobile phones)
// reject a valid DEFLATE stream with fewer than 2 distance codes even
// though the format permits it (spec §4.E).
func PatchDistanceCodesForBuggyDecoders(dLengths []int) {
	numDistCodes := 0
	for i := 0; i < 30; i++ {
		if dLengths[i] != 0 {
			numDistCodes++
		}
		if numDistCodes >= 2 {
			return
		}
	}

	switch numDistCodes {
	case 0:
		dLengths[0] = 1
		dLengths[1] = 1
	case 1:
		if dLengths[0] == 0 {
			dLengths[0] = 1
		} else {
			dLengths[1] = 1
		}
	}
}
