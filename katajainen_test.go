// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package zopfli

import "testing"

// TestLengthLimitedCodeLengthsS1 is spec's S1: frequencies [1,1,5,7,10,14],
// maxbits=3, expected lengths [3,3,3,3,2,2].
func TestLengthLimitedCodeLengthsS1(t *testing.T) {
	freqs := []uint64{1, 1, 5, 7, 10, 14}
	want := []int{3, 3, 3, 3, 2, 2}

	got, err := LengthLimitedCodeLengths(freqs, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !intSliceEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// TestLengthLimitedCodeLengthsS2 is spec's S2: same frequencies as S1, but
// maxbits=4, expected lengths [4,4,3,2,2,2].
func TestLengthLimitedCodeLengthsS2(t *testing.T) {
	freqs := []uint64{1, 1, 5, 7, 10, 14}
	want := []int{4, 4, 3, 2, 2, 2}

	got, err := LengthLimitedCodeLengths(freqs, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !intSliceEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// TestLengthLimitedCodeLengthsS3 is spec's S3: a 19-entry code-length
// alphabet frequency vector with maxbits=7.
func TestLengthLimitedCodeLengthsS3(t *testing.T) {
	freqs := []uint64{252, 0, 1, 6, 9, 10, 6, 3, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	want := []int{1, 0, 6, 4, 3, 3, 3, 5, 6, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	got, err := LengthLimitedCodeLengths(freqs, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !intSliceEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// TestLengthLimitedCodeLengthsZeroSymbols covers the all-zero-frequency edge
// case: every length stays 0, no error.
func TestLengthLimitedCodeLengthsZeroSymbols(t *testing.T) {
	freqs := []uint64{0, 0, 0, 0}
	got, err := LengthLimitedCodeLengths(freqs, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, l := range got {
		if l != 0 {
			t.Errorf("lengths[%d] = %d, want 0", i, l)
		}
	}
}

// TestLengthLimitedCodeLengthsSingleSymbol covers the one-used-symbol edge
// case: that symbol gets length 1 (spec §4.D step 3).
func TestLengthLimitedCodeLengthsSingleSymbol(t *testing.T) {
	freqs := []uint64{0, 0, 42, 0}
	got, err := LengthLimitedCodeLengths(freqs, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{0, 0, 1, 0}
	if !intSliceEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// TestLengthLimitedCodeLengthsTwoSymbols covers the two-used-symbols edge
// case: both symbols get length 1, regardless of their relative weights.
func TestLengthLimitedCodeLengthsTwoSymbols(t *testing.T) {
	freqs := []uint64{0, 100, 0, 1}
	got, err := LengthLimitedCodeLengths(freqs, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{0, 1, 0, 1}
	if !intSliceEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// TestLengthLimitedCodeLengthsInfeasible checks that too few bits to cover
// the number of used symbols is reported as ErrMaxBitsTooSmall rather than
// silently producing an invalid code.
func TestLengthLimitedCodeLengthsInfeasible(t *testing.T) {
	freqs := make([]uint64, 300)
	for i := range freqs {
		freqs[i] = uint64(i + 1)
	}
	_, err := LengthLimitedCodeLengths(freqs, 4) // 1<<4 = 16 < 300 used symbols
	if err != ErrMaxBitsTooSmall {
		t.Fatalf("err = %v, want ErrMaxBitsTooSmall", err)
	}
}

// TestLengthLimitedCodeLengthsInvariants checks the general-purpose
// invariants from spec §8 invariant 5 across a handful of frequency
// vectors: the Kraft sum never exceeds 1, every assigned length is within
// maxbits, and unused symbols always get length 0.
func TestLengthLimitedCodeLengthsInvariants(t *testing.T) {
	cases := []struct {
		freqs   []uint64
		maxbits int
	}{
		{[]uint64{1, 1, 5, 7, 10, 14}, 3},
		{[]uint64{1, 1, 5, 7, 10, 14}, 4},
		{[]uint64{1, 1, 5, 7, 10, 14}, 15},
		{[]uint64{252, 0, 1, 6, 9, 10, 6, 3, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, 7},
		{[]uint64{5, 9, 12, 13, 16, 45, 1, 0, 3, 100}, 6},
		{[]uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17}, 15},
	}

	for ci, c := range cases {
		got, err := LengthLimitedCodeLengths(c.freqs, c.maxbits)
		if err != nil {
			t.Fatalf("case %d: unexpected error: %v", ci, err)
		}

		var kraftNum, kraftDen uint64 = 0, 1 << uint(c.maxbits)
		for i, l := range got {
			if l > c.maxbits {
				t.Errorf("case %d: lengths[%d] = %d exceeds maxbits %d", ci, i, l, c.maxbits)
			}
			if c.freqs[i] == 0 && l != 0 {
				t.Errorf("case %d: lengths[%d] = %d, want 0 (zero frequency)", ci, i, l)
			}
			if c.freqs[i] != 0 && l == 0 {
				t.Errorf("case %d: lengths[%d] = 0, want > 0 (nonzero frequency)", ci, i)
			}
			if l > 0 {
				kraftNum += uint64(1) << uint(c.maxbits-l)
			}
		}
		if kraftNum > kraftDen {
			t.Errorf("case %d: Kraft sum %d/%d exceeds 1", ci, kraftNum, kraftDen)
		}
	}
}

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
