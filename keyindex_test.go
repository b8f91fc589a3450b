package keyline

import "testing"

func TestSplitKeyIndex(t *testing.T) {
	counts := []int{2, 0, 3}

	cases := []struct {
		flat, subTrack, local int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2, 2, 0},
		{3, 2, 1},
		{4, 2, 2},
	}
	for _, c := range cases {
		sub, local, ok := splitKeyIndex(counts, c.flat)
		if !ok {
			t.Fatalf("splitKeyIndex(%d) not ok", c.flat)
		}
		if sub != c.subTrack || local != c.local {
			t.Errorf("splitKeyIndex(%d) = (%d, %d), want (%d, %d)", c.flat, sub, local, c.subTrack, c.local)
		}
	}
}

func TestSplitKeyIndexOutOfRange(t *testing.T) {
	counts := []int{2, 1}
	for _, flat := range []int{-1, 3, 100} {
		if _, _, ok := splitKeyIndex(counts, flat); ok {
			t.Errorf("splitKeyIndex(%d) ok, want out of range", flat)
		}
	}
	if _, _, ok := splitKeyIndex(nil, 0); ok {
		t.Error("splitKeyIndex on empty counts ok, want out of range")
	}
}

func TestKeyIndexRoundTrip(t *testing.T) {
	counts := []int{3, 1, 0, 2}
	total := 6
	for flat := 0; flat < total; flat++ {
		sub, local, ok := splitKeyIndex(counts, flat)
		if !ok {
			t.Fatalf("splitKeyIndex(%d) not ok", flat)
		}
		if back := joinKeyIndex(counts, sub, local); back != flat {
			t.Errorf("joinKeyIndex(split(%d)) = %d", flat, back)
		}
	}
}
