package scenes

import "github.com/forPelevin/scenecut/internal/types"

// SelectResult is the outcome of boundary selection. Splits are strictly
// increasing; MergedScenes lists the pre-merge scene indices whose ending
// boundary was suppressed by a merge range.
type SelectResult struct {
	Splits       []float64
	MergedScenes []int
}

// SelectSplitPoints reduces snapped transitions to the final split points.
//
// Both policies share one reduction loop: find the first candidate at least
// minScene past the cursor, let the policy extend it into a cluster, then
// merge-or-emit the cluster's last member. Earliest never extends, so every
// cluster is a singleton; Defer extends while later candidates stay within
// deferLimit of the first qualifying one (anchored to the first, not
// chained gap-to-gap).
func SelectSplitPoints(
	transitions []types.TransitionInterval,
	keyframes []float64,
	introEnd float64,
	minScene float64,
	merges MergeRanges,
	policy types.Policy,
	deferLimit float64,
) SelectResult {
	var candidates []float64
	for _, tr := range transitions {
		cut, ok := Snap(keyframes, tr.Start, tr.End)
		if ok && cut > introEnd {
			candidates = append(candidates, cut)
		}
	}

	extend := func(first, next float64) bool { return false }
	if policy == types.PolicyDefer {
		extend = func(first, next float64) bool { return next-first <= deferLimit }
	}

	var res SelectResult
	cursor := introEnd
	sceneIdx := 1
	for i := 0; i < len(candidates); i++ {
		if candidates[i]-cursor < minScene {
			continue
		}
		j := i
		for j+1 < len(candidates) && extend(candidates[i], candidates[j+1]) {
			j++
		}
		t := candidates[j]
		if merges.Suppressed(sceneIdx) {
			res.MergedScenes = append(res.MergedScenes, sceneIdx)
		} else {
			res.Splits = append(res.Splits, t)
		}
		cursor = t
		sceneIdx++
		i = j
	}
	return res
}
