// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

/*
Package zopfli implements the core compression kernel of a DEFLATE-compatible
encoder that searches the LZ77 space exhaustively by repeatedly re-encoding a
block under a cost model derived from the previous iteration's Huffman tree
("squeeze"), converging on a near-optimal token sequence for the block.

# Store and cache

[Store] holds the LZ77 token sequence for a block along with incrementally
maintained literal/length and distance histograms. [LongestMatchCache]
memoizes longest-match queries by block position so that repeated squeeze
iterations don't re-run the string matcher from scratch.

# Huffman modeling

[LengthLimitedCodeLengths] assigns optimal length-limited Huffman code
lengths via the Katajainen/Moffat/Turpin bounded package-merge algorithm.
[OptimizeHuffmanForRLE] and [PatchDistanceCodesForBuggyDecoders] reshape the
resulting code-length tables for better RLE compressibility and decoder
compatibility, matching zlib's own behavior.

# Cost accounting and squeeze

[BlockBitSize] computes the exact bit cost of an LZ77 token range under a
pair of code-length tables. [Squeeze] drives the iterate-until-convergence
loop: match under a [CostModel], rebuild the Huffman model, and re-measure
cost, stopping once cost stops decreasing. [SqueezeBlocks] runs [Squeeze]
over independent blocks concurrently.

	res, err := zopfli.Squeeze(data, nil)
	if err != nil {
		// ...
	}
	bits := zopfli.BlockBitSize(res.LLLengths, res.DLengths, res.Store, 0, res.Store.Len())
*/
package zopfli
