// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package zopfli

// DEFLATE alphabet and window constants (RFC 1951). These are not overridable:
// they are the wire format, not a tuning knob.
const (
	numLL      = 288   // literal/length alphabet size
	numD       = 32    // distance alphabet size
	minMatch   = 3     // shortest representable match length
	maxMatch   = 258   // longest representable match length
	windowSize = 32768 // maximum back-reference distance
	maxBits    = 15    // maximum DEFLATE Huffman code length
)

// Options configures the squeeze pipeline. A nil *Options is equivalent to
// DefaultOptions().
type Options struct {
	// CacheLength is the number of sub-length transitions memoized per
	// position in the longest-match cache (spec's K, default 8).
	CacheLength int

	// BlockSize is the number of input bytes handed to a single call of
	// Squeeze by SqueezeBlocks. Blocks are squeezed independently and
	// concurrently; a larger BlockSize improves the ratio at the cost of
	// less parallelism and more memory per block.
	BlockSize int

	// MaxSqueezeIterations bounds how many re-encode passes Squeeze performs
	// before giving up on further convergence, even if cost is still
	// decreasing. Matches the "nice number of iterations" knob zlib-family
	// encoders expose at their highest effort levels.
	MaxSqueezeIterations int

	// NiceMatchLength is the match length at which the matcher stops
	// searching the hash chain for a longer one (spec's "nice length").
	NiceMatchLength int

	// MaxChainHits bounds how many hash-chain entries the matcher follows
	// per position before giving up and taking the best match found so far.
	MaxChainHits int
}

// DefaultOptions returns the standard DEFLATE-compatible tuning: cache
// length 8, 128 KiB blocks, up to 15 squeeze iterations, nice length equal
// to the maximum match length (258, i.e. search until a maximal match is
// found), and an unlimited-feeling chain search bound suitable for small
// to medium inputs.
func DefaultOptions() *Options {
	return &Options{
		CacheLength:          8,
		BlockSize:            1 << 17,
		MaxSqueezeIterations: 15,
		NiceMatchLength:      maxMatch,
		MaxChainHits:         8192,
	}
}

// withDefaults fills any zero-valued field of opts with DefaultOptions(),
// returning a fully populated copy. A nil opts is treated as DefaultOptions().
func (o *Options) withDefaults() *Options {
	d := DefaultOptions()
	if o == nil {
		return d
	}
	merged := *o
	if merged.CacheLength <= 0 {
		merged.CacheLength = d.CacheLength
	}
	if merged.BlockSize <= 0 {
		merged.BlockSize = d.BlockSize
	}
	if merged.MaxSqueezeIterations <= 0 {
		merged.MaxSqueezeIterations = d.MaxSqueezeIterations
	}
	if merged.NiceMatchLength <= 0 {
		merged.NiceMatchLength = d.NiceMatchLength
	}
	if merged.MaxChainHits <= 0 {
		merged.MaxChainHits = d.MaxChainHits
	}
	return &merged
}
