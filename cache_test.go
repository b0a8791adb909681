// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package zopfli

import "testing"

func TestLongestMatchCacheSentinel(t *testing.T) {
	lmc := NewLongestMatchCache(16, 8)
	for p := 0; p < 16; p++ {
		if lmc.LengthAt(p) != 1 || lmc.DistAt(p) != 0 {
			t.Fatalf("position %d: want sentinel (1,0), got (%d,%d)", p, lmc.LengthAt(p), lmc.DistAt(p))
		}
		if got := lmc.MaxCachedSublen(p); got != 0 {
			t.Fatalf("position %d: MaxCachedSublen = %d, want 0", p, got)
		}
	}
}

// TestLongestMatchCacheRoundtrip is spec's S4: v = [_,_,_,5,5,5,7,7,9], L=8,
// K=3. After SublenToCache then CacheToSublen, positions 3..=8 recover
// [5,5,5,7,7,9].
func TestLongestMatchCacheRoundtrip(t *testing.T) {
	lmc := NewLongestMatchCache(1, 3)

	in := make([]uint16, 9+2)
	vals := map[int]uint16{3: 5, 4: 5, 5: 5, 6: 7, 7: 7, 8: 9}
	for i, v := range vals {
		in[i] = v
	}

	lmc.SublenToCache(in, 0, 8)

	out := make([]uint16, 9+1)
	lmc.CacheToSublen(0, 8, out)

	for i := 3; i <= 8; i++ {
		if out[i] != vals[i] {
			t.Errorf("out[%d] = %d, want %d", i, out[i], vals[i])
		}
	}
}

func TestLongestMatchCacheRoundtripGeneral(t *testing.T) {
	lmc := NewLongestMatchCache(1, 8)

	length := 40
	in := make([]uint16, length+2)
	// Simulate a realistic sub-length curve: distance improves in plateaus.
	for i := 3; i <= length; i++ {
		switch {
		case i < 10:
			in[i] = 100
		case i < 20:
			in[i] = 50
		case i < 30:
			in[i] = 25
		default:
			in[i] = 10
		}
	}
	in[length+1] = in[length]

	lmc.SublenToCache(in, 0, length)

	maxCached := lmc.MaxCachedSublen(0)
	if maxCached > length {
		t.Fatalf("MaxCachedSublen = %d, want <= %d", maxCached, length)
	}

	out := make([]uint16, length+1)
	lmc.CacheToSublen(0, length, out)

	for i := 3; i <= maxCached; i++ {
		if out[i] != in[i] {
			t.Errorf("out[%d] = %d, want %d (maxCached=%d)", i, out[i], in[i], maxCached)
		}
	}
}

func TestLongestMatchCacheShortLengthIsNoop(t *testing.T) {
	lmc := NewLongestMatchCache(1, 8)
	in := make([]uint16, 8)
	lmc.SublenToCache(in, 0, 2) // length < 3: should not touch the cache

	if got := lmc.MaxCachedSublen(0); got != 0 {
		t.Fatalf("MaxCachedSublen after short SublenToCache = %d, want 0", got)
	}

	out := make([]uint16, 8)
	lmc.CacheToSublen(0, 2, out) // should also be a no-op, and must not panic
}
