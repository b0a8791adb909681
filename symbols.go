// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package zopfli

// Fixed DEFLATE (RFC 1951 §3.2.5) code and extra-bit lookup tables for the
// literal/length and distance alphabets. These tables are constant data
// derived from the standard, not tunable: they are out of scope as
// "container framing" but the symbol/extra-bit mapping itself is the leaf
// dependency every other component in this package relies on.

// lengthBase/lengthExtra index by (length-symbol - 257): the smallest
// length representable by that symbol, and the number of extra bits that
// follow it in the bitstream.
var lengthBase = [29]uint16{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13,
	15, 17, 19, 23, 27, 31, 35, 43, 51, 59,
	67, 83, 99, 115, 131, 163, 195, 227, 258,
}

var lengthExtra = [29]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1,
	1, 1, 2, 2, 2, 2, 3, 3, 3, 3,
	4, 4, 4, 4, 5, 5, 5, 5, 0,
}

// distBase/distExtra index by distance symbol (0-29): the smallest
// distance representable by that symbol, and its extra-bit count.
var distBase = [30]uint32{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25,
	33, 49, 65, 97, 129, 193, 257, 385, 513, 769,
	1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577,
}

var distExtra = [30]uint8{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3,
	4, 4, 5, 5, 6, 6, 7, 7, 8, 8,
	9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

// LengthSymbol returns the DEFLATE literal/length alphabet symbol (257-285)
// for a match length in [3, 258]. Length 258 maps to symbol 285, which has
// zero extra bits (the only length symbol that exactly determines length).
func LengthSymbol(length int) int {
	for i := len(lengthBase) - 1; i >= 0; i-- {
		if length >= int(lengthBase[i]) {
			return 257 + i
		}
	}
	return 257
}

// LengthExtraBits returns the number of extra bits following the length
// symbol for the given match length.
func LengthExtraBits(length int) int {
	return int(lengthExtra[LengthSymbol(length)-257])
}

// LengthSymbolExtraBits returns the number of extra bits for a given
// length *symbol* (257-285) directly, avoiding a length->symbol lookup
// when the symbol is already known (used by the histogram-based large-range
// cost accountant).
func LengthSymbolExtraBits(symbol int) int {
	return int(lengthExtra[symbol-257])
}

// DistSymbol returns the DEFLATE distance alphabet symbol (0-29) for a
// back-reference distance in [1, 32768].
func DistSymbol(dist int) int {
	if dist <= 256 {
		return int(smallDistSymbol[dist-1])
	}
	for i := len(distBase) - 1; i >= 0; i-- {
		if uint32(dist) >= distBase[i] {
			return i
		}
	}
	return 0
}

// DistExtraBits returns the number of extra bits following the distance
// symbol for the given distance.
func DistExtraBits(dist int) int {
	return int(distExtra[DistSymbol(dist)])
}

// DistSymbolExtraBits returns the number of extra bits for a given
// distance *symbol* (0-29) directly.
func DistSymbolExtraBits(symbol int) int {
	return int(distExtra[symbol])
}

// smallDistSymbol memoizes DistSymbol for distances 1..256 (the common
// case), built once from distBase so the hot path (called once per match
// token) avoids the linear scan below 256.
var smallDistSymbol = func() [256]uint8 {
	var table [256]uint8
	sym := 0
	for dist := 1; dist <= 256; dist++ {
		for sym+1 < len(distBase) && uint32(dist) >= distBase[sym+1] {
			sym++
		}
		table[dist-1] = uint8(sym)
	}
	return table
}()
