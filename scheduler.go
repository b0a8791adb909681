// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package zopfli

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BlockResult pairs a Squeeze result with the byte range of data it covers.
type BlockResult struct {
	Start, End int
	*Result
}

// SqueezeBlocks splits data into opts.BlockSize-sized chunks and squeezes
// each independently and concurrently (spec §5: "Parallelism, if
// introduced, must be at block granularity; independent blocks own
// disjoint LMCs and stores"). Results are returned in input order
// regardless of completion order.
func SqueezeBlocks(data []byte, opts *Options) ([]BlockResult, error) {
	opts = opts.withDefaults()
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	var ranges [][2]int
	for start := 0; start < len(data); start += opts.BlockSize {
		end := start + opts.BlockSize
		if end > len(data) {
			end = len(data)
		}
		ranges = append(ranges, [2]int{start, end})
	}

	results := make([]BlockResult, len(ranges))

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, rg := range ranges {
		i, rg := i, rg
		g.Go(func() error {
			res, err := Squeeze(data[rg[0]:rg[1]], opts)
			if err != nil {
				return err
			}
			results[i] = BlockResult{Start: rg[0], End: rg[1], Result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
