// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package zopfli

import "sort"

// pmLeaf is a (weight, original-symbol-index) pair used as package-merge
// input. Weight widths: at least 64 bits, since the sum of all frequencies
// in a block can be large (spec §9 "Integer widths").
type pmLeaf struct {
	weight uint64
	index  int
}

// pmNode is a chain node: its weight is the total weight of everything
// merged into the chain so far, count is the number of leaves accounted
// for by the chain (spec §3 "Package-merge working set"), and tail is a
// back-reference to the previous node in the chain, or -1 if none. Nodes
// live in a flat arena (pmArena below); tail is an index into that arena,
// never an owning pointer (spec §9 "Cyclic relationships": a pool plus
// integer indices, no pointer cycles are possible since tail only ever
// points to already-allocated, earlier nodes).
type pmNode struct {
	weight uint64
	count  int
	tail   int
}

const noTail = -1

// LengthLimitedCodeLengths assigns code lengths to frequencies such that
// the total weighted length is minimized subject to length <= maxbits and
// the Kraft equality for a valid prefix code (spec §4.D). Symbols with
// zero frequency always get length 0. Returns ErrMaxBitsTooSmall if
// maxbits is too small to fit all used symbols in a valid prefix code.
func LengthLimitedCodeLengths(frequencies []uint64, maxbits int) ([]int, error) {
	lengths := make([]int, len(frequencies))

	var leaves []pmLeaf
	for i, f := range frequencies {
		if f != 0 {
			leaves = append(leaves, pmLeaf{weight: f, index: i})
		}
	}

	numsymbols := len(leaves)
	if numsymbols == 0 {
		return lengths, nil
	}
	if numsymbols <= 2 {
		// spec §4.D step 3: with at most two used symbols, a single bit each
		// is optimal and the general boundary-package-merge loop below
		// degenerates (there is no list below list 0 to package from).
		for _, l := range leaves {
			lengths[l.index] = 1
		}
		return lengths, nil
	}

	if (1 << uint(maxbits)) < numsymbols {
		return nil, ErrMaxBitsTooSmall
	}

	// Sort ascending by weight, tying by original index for stability
	// (spec §4.D step 2; spec §9 recommends an explicit comparator over
	// the original's weight<<9|index packing trick).
	sort.Slice(leaves, func(i, j int) bool {
		if leaves[i].weight != leaves[j].weight {
			return leaves[i].weight < leaves[j].weight
		}
		return leaves[i].index < leaves[j].index
	})

	// No tree needs more than numsymbols-1 levels even when maxbits allows
	// more; clamp so the list/pool sizing below stays tight.
	if numsymbols-1 < maxbits {
		maxbits = numsymbols - 1
	}

	arena := make([]pmNode, 0, 2*(maxbits*numsymbols-maxbits)+maxbits)
	lists := make([][2]int, maxbits)

	node0 := len(arena)
	arena = append(arena, pmNode{weight: leaves[0].weight, count: 1, tail: noTail})
	node1 := len(arena)
	arena = append(arena, pmNode{weight: leaves[1].weight, count: 2, tail: noTail})
	for i := range lists {
		lists[i] = [2]int{node0, node1}
	}

	// spec §4.D step 5: 2m-2 boundary package-merge steps on the last list;
	// the final step does not recurse (boundaryPMFinal), it only decides
	// whether the last list's lookahead2 becomes a fresh leaf-node or
	// packages the list below it.
	numRuns := 2*numsymbols - 2
	for i := 1; i < numRuns; i++ {
		boundaryPM(lists, leaves, numsymbols, &arena, maxbits-1)
	}
	boundaryPMFinal(lists, leaves, numsymbols, &arena, maxbits-1)

	extractBitLengths(arena, lists[maxbits-1][1], leaves, lengths, maxbits)

	return lengths, nil
}

// boundaryPM advances list[index] by one boundary package-merge step: its
// lookahead2 either becomes the next unused leaf, or packages the top two
// nodes of list[index-1] (spec §4.D step 5). list 0 can only advance via
// leaves, since there is no list -1 to package.
func boundaryPM(lists [][2]int, leaves []pmLeaf, numsymbols int, arena *[]pmNode, index int) {
	lastcount := (*arena)[lists[index][1]].count

	if index == 0 && lastcount >= numsymbols {
		return
	}

	oldchain := lists[index][1]
	newchain := len(*arena)
	*arena = append(*arena, pmNode{})

	lists[index][0] = oldchain
	lists[index][1] = newchain

	if index == 0 {
		(*arena)[newchain] = pmNode{weight: leaves[lastcount].weight, count: lastcount + 1, tail: noTail}
		return
	}

	sum := (*arena)[lists[index-1][0]].weight + (*arena)[lists[index-1][1]].weight
	if lastcount < numsymbols && sum > leaves[lastcount].weight {
		(*arena)[newchain] = pmNode{weight: leaves[lastcount].weight, count: lastcount + 1, tail: (*arena)[oldchain].tail}
		return
	}

	(*arena)[newchain] = pmNode{weight: sum, count: lastcount, tail: lists[index-1][1]}
	boundaryPM(lists, leaves, numsymbols, arena, index-1)
	boundaryPM(lists, leaves, numsymbols, arena, index-1)
}

// boundaryPMFinal performs the last of the 2m-2 steps: it never recurses,
// since there is no need to prepare list[index-1] for a further step that
// will never come.
func boundaryPMFinal(lists [][2]int, leaves []pmLeaf, numsymbols int, arena *[]pmNode, index int) {
	lastcount := (*arena)[lists[index][1]].count
	sum := (*arena)[lists[index-1][0]].weight + (*arena)[lists[index-1][1]].weight

	if lastcount < numsymbols && sum > leaves[lastcount].weight {
		oldTail := (*arena)[lists[index][1]].tail
		newchain := len(*arena)
		*arena = append(*arena, pmNode{count: lastcount + 1, tail: oldTail})
		lists[index][1] = newchain
		return
	}

	(*arena)[lists[index][1]].tail = lists[index-1][1]
}

// extractBitLengths walks the final chain's tail pointers to recover, per
// spec §4.D step 6, each list's completed leaf-count in reverse order, then
// scans from the deepest level to the shallowest assigning bit length
// maxbits-ptr+1 to every leaf index in (counts[ptr-1], counts[ptr]].
func extractBitLengths(arena []pmNode, chainHead int, leaves []pmLeaf, lengths []int, maxbits int) {
	counts := make([]int, maxbits+1)
	end := maxbits + 1
	ptr := maxbits
	value := 1

	for node := chainHead; node != noTail; node = arena[node].tail {
		end--
		counts[end] = arena[node].count
	}

	val := counts[maxbits]
	for ptr >= end {
		var prev int
		if ptr > 0 {
			prev = counts[ptr-1]
		}
		for val > prev {
			lengths[leaves[val-1].index] = value
			val--
		}
		ptr--
		value++
	}
}
