// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package zopfli

import "testing"

func insertAll(m *matcher, upto int) {
	for i := 0; i < upto; i++ {
		m.Insert(i)
	}
}

// TestFindLongestMatchFindsRepeat checks that a repeated run is recognized
// as a back-reference of the expected length and distance.
func TestFindLongestMatchFindsRepeat(t *testing.T) {
	data := []byte("abcdefgh" + "abcdefgh")
	m := newMatcher(data, maxMatch, 8192)
	insertAll(m, 8)

	lmc := NewLongestMatchCache(len(data), 8)
	length, dist := m.FindLongestMatch(8, 8, lmc)

	if length != 8 {
		t.Errorf("length = %d, want 8", length)
	}
	if dist != 8 {
		t.Errorf("dist = %d, want 8", dist)
	}
}

// TestFindLongestMatchNoRepeat checks that unique data never yields a
// qualifying match.
func TestFindLongestMatchNoRepeat(t *testing.T) {
	data := []byte("abcdefghijklmnop")
	m := newMatcher(data, maxMatch, 8192)
	insertAll(m, len(data))

	lmc := NewLongestMatchCache(len(data), 8)
	for i := 3; i < len(data); i++ {
		length, _ := m.FindLongestMatch(i, i, lmc)
		if length != 0 {
			t.Errorf("pos %d: length = %d, want 0 (no repeats in input)", i, length)
		}
	}
}

// TestFindLongestMatchUsesCache checks that a second lookup at the same
// position returns the cached result without needing the chain again.
func TestFindLongestMatchUsesCache(t *testing.T) {
	data := []byte("xyzxyzxyzxyz")
	m := newMatcher(data, maxMatch, 8192)
	insertAll(m, len(data))

	lmc := NewLongestMatchCache(len(data), 8)
	l1, d1 := m.FindLongestMatch(3, 3, lmc)
	l2, d2 := m.FindLongestMatch(3, 3, lmc)

	if l1 != l2 || d1 != d2 {
		t.Fatalf("cached lookup mismatch: (%d,%d) vs (%d,%d)", l1, d1, l2, d2)
	}
}

// TestFindLongestMatchRespectsWindowSize checks distances beyond windowSize
// are never returned.
func TestFindLongestMatchRespectsWindowSize(t *testing.T) {
	n := windowSize + 20
	data := make([]byte, n)
	copy(data[0:10], []byte("0123456789"))
	copy(data[n-10:], []byte("0123456789"))

	m := newMatcher(data, maxMatch, 8192)
	insertAll(m, n)

	lmc := NewLongestMatchCache(n, 8)
	_, dist := m.FindLongestMatch(n-10, n-10, lmc)
	if dist > windowSize {
		t.Errorf("dist = %d, exceeds windowSize %d", dist, windowSize)
	}
}
