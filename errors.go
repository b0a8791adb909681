// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package zopfli

import "errors"

// Sentinel errors for the squeeze pipeline.
var (
	// ErrMaxBitsTooSmall is returned by LengthLimitedCodeLengths when maxbits
	// is smaller than ceil(log2(number of non-zero frequencies)), making a
	// length-limited prefix code infeasible. Callers can recover by widening
	// maxbits and retrying.
	ErrMaxBitsTooSmall = errors.New("zopfli: maxbits too small for number of used symbols")

	// ErrEmptyInput is returned when Squeeze or SqueezeBlocks is given no data.
	ErrEmptyInput = errors.New("zopfli: empty input")
)
