package scenes

import (
	"math"
	"sort"
)

// nearTieWindow is how close the two midpoint distances have to be, in
// seconds, for the earlier keyframe to win when both candidates fall
// outside the transition.
const nearTieWindow = 0.5

// Snap maps a transition interval to the single keyframe to cut at. Cuts
// must land on a keyframe so the cutter can copy streams without
// re-encoding; near ties resolve to the earlier keyframe, which keeps
// trailing black frames out of the next scene.
//
// The branch order below is load-bearing: reordering the inside/outside
// checks changes which keyframe wins on boundary-equal timestamps.
func Snap(keyframes []float64, start, end float64) (float64, bool) {
	mid := (start + end) / 2

	// Largest keyframe <= mid and smallest keyframe >= mid. A keyframe
	// exactly at the midpoint is a candidate on both sides.
	i := sort.SearchFloat64s(keyframes, mid)

	var before, after float64
	hasBefore, hasAfter := false, false
	if i < len(keyframes) {
		after, hasAfter = keyframes[i], true
	}
	switch {
	case i < len(keyframes) && keyframes[i] == mid:
		before, hasBefore = keyframes[i], true
	case i > 0:
		before, hasBefore = keyframes[i-1], true
	}

	if !hasBefore && !hasAfter {
		return 0, false
	}
	if !hasBefore {
		return after, true
	}
	if !hasAfter {
		return before, true
	}

	distBefore := mid - before
	distAfter := after - mid

	// Both candidates inside the transition: plain nearest-to-midpoint,
	// earlier on an exact tie.
	if before >= start && after <= end {
		if distBefore <= distAfter {
			return before, true
		}
		return after, true
	}
	if before >= start {
		return before, true
	}
	if after <= end {
		return after, true
	}

	// Neither candidate is inside the transition.
	if math.Abs(distBefore-distAfter) <= nearTieWindow {
		return before, true
	}
	if distBefore <= distAfter {
		return before, true
	}
	return after, true
}
