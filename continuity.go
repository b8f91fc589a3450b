package keyline

import "math"

// preferContinuousAngle chooses which 360°-equivalent of target to store so
// that rewriting a rotation key never pops relative to the previously stored
// angle. target is a freshly decomposed Euler angle in (-181, 181); previous
// is whatever the track currently holds at that key and may sit many full
// turns outside the principal range.
//
// The previous angle's turn count is preserved: storing principal-range
// angles naively would snap a track that had wound past ±180° back into
// range and produce a visible spin on playback.
func preferContinuousAngle(target, previous float64) float64 {
	principal := math.Mod(previous, 360)
	turns := math.Round((previous - principal) / 360)

	alt := target + 360
	if target >= 0 {
		alt = target - 360
	}
	if math.Abs(alt-principal) < math.Abs(target-principal) {
		return alt + turns*360
	}
	return target + turns*360
}
