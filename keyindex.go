package keyline

// splitKeyIndex translates a flat key index into a (sub-track, local) pair
// by walking the per-sub-track key counts in order. Returns ok=false when
// flat is outside [0, sum(counts)).
//
// Pure on purpose: the caller's index is never overwritten, so a stale flat
// index can't be mistaken for a local one.
func splitKeyIndex(counts []int, flat int) (subTrack, local int, ok bool) {
	if flat < 0 {
		return 0, 0, false
	}
	total := 0
	for i, n := range counts {
		if flat < total+n {
			return i, flat - total, true
		}
		total += n
	}
	return 0, 0, false
}

// joinKeyIndex recombines a (sub-track, local) pair into a flat index. The
// inverse of splitKeyIndex for valid inputs.
func joinKeyIndex(counts []int, subTrack, local int) int {
	flat := local
	for i := 0; i < subTrack; i++ {
		flat += counts[i]
	}
	return flat
}
