// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package zopfli

import "testing"

// TestFixedCostScenarios is spec's S5.
func TestFixedCostScenarios(t *testing.T) {
	cases := []struct {
		litlen, dist uint16
		want         float64
	}{
		{140, 0, 8},
		{200, 0, 9},
		{3, 1, 12},
		{258, 32768, 26},
	}
	for _, c := range cases {
		got := FixedCost(c.litlen, c.dist)
		if got != c.want {
			t.Errorf("FixedCost(%d, %d) = %v, want %v", c.litlen, c.dist, got, c.want)
		}
	}
}

// TestDynamicCostMatchesLengthsTable checks that a dynamic model built from
// a concrete code-length table sums the expected table entries and extra
// bits, for both a literal and a match.
func TestDynamicCostMatchesLengthsTable(t *testing.T) {
	llLengths := make([]int, numLL)
	dLengths := make([]int, numD)
	for i := range llLengths {
		llLengths[i] = 10
	}
	for i := range dLengths {
		dLengths[i] = 6
	}

	model := DynamicCost(llLengths, dLengths)

	if got, want := model(65, 0), float64(10); got != want {
		t.Errorf("literal cost = %v, want %v", got, want)
	}

	lsym := LengthSymbol(10)
	dsym := DistSymbol(100)
	want := float64(llLengths[lsym] + dLengths[dsym] + LengthExtraBits(10) + DistExtraBits(100))
	if got := model(10, 100); got != want {
		t.Errorf("match cost = %v, want %v", got, want)
	}
}

// TestCostModelSatisfiesSignature checks that both variants are usable
// wherever a CostModel value is expected.
func TestCostModelSatisfiesSignature(t *testing.T) {
	var models []CostModel
	models = append(models, FixedCost, DynamicCost(make([]int, numLL), make([]int, numD)))
	for i, m := range models {
		if got := m(1, 0); got <= 0 {
			t.Errorf("model %d: literal cost = %v, want > 0", i, got)
		}
	}
}
