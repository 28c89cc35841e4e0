package scenes

import (
	"testing"

	"github.com/forPelevin/scenecut/internal/types"
)

// transitionsAt builds zero-length-ish transitions centered on keyframes so
// snapping returns exactly the given timestamps.
func transitionsAt(ts ...float64) ([]types.TransitionInterval, []float64) {
	var trs []types.TransitionInterval
	for _, t := range ts {
		trs = append(trs, types.TransitionInterval{Start: t - 0.1, End: t + 0.1})
	}
	return trs, ts
}

func TestSelectSplitPoints_EarliestRespectsMinScene(t *testing.T) {
	t.Parallel()

	trs, kfs := transitionsAt(3, 6, 8, 13, 14, 20)
	res := SelectSplitPoints(trs, kfs, 0, 5, nil, types.PolicyEarliest, 0)

	want := []float64{6, 13, 20}
	if len(res.Splits) != len(want) {
		t.Fatalf("splits = %v, want %v", res.Splits, want)
	}
	prev := 0.0
	for i, s := range res.Splits {
		if s != want[i] {
			t.Fatalf("splits = %v, want %v", res.Splits, want)
		}
		if s-prev < 5 {
			t.Fatalf("scene ending at %v is shorter than the minimum", s)
		}
		prev = s
	}
}

func TestSelectSplitPoints_CandidatesBeforeIntroExcluded(t *testing.T) {
	t.Parallel()

	trs, kfs := transitionsAt(10, 30, 60)
	res := SelectSplitPoints(trs, kfs, 10, 15, nil, types.PolicyEarliest, 0)

	// 10 equals introEnd and is excluded; 30 and 60 qualify.
	want := []float64{30, 60}
	if len(res.Splits) != 2 || res.Splits[0] != want[0] || res.Splits[1] != want[1] {
		t.Fatalf("splits = %v, want %v", res.Splits, want)
	}
}

func TestSelectSplitPoints_NoKeyframesMeansNoSplits(t *testing.T) {
	t.Parallel()

	trs, _ := transitionsAt(10, 30, 60)
	res := SelectSplitPoints(trs, nil, 0, 5, nil, types.PolicyEarliest, 0)
	if len(res.Splits) != 0 {
		t.Fatalf("expected no splits, got %v", res.Splits)
	}
}

func TestSelectSplitPoints_DeferPicksClusterLast(t *testing.T) {
	t.Parallel()

	trs, kfs := transitionsAt(6, 7, 8.5, 12)
	res := SelectSplitPoints(trs, kfs, 0, 5, nil, types.PolicyDefer, 3)

	// 6 is the first qualifying candidate; 7 and 8.5 lie within 3s of it,
	// 12 does not. The cluster's last member wins.
	if len(res.Splits) != 1 || res.Splits[0] != 8.5 {
		t.Fatalf("splits = %v, want [8.5]", res.Splits)
	}
}

func TestSelectSplitPoints_DeferClusterAnchoredToFirst(t *testing.T) {
	t.Parallel()

	// Chained gap-to-gap extension would swallow 10 and 12 too (each within
	// 3s of its predecessor); anchoring to the first qualifying candidate
	// stops the cluster at 8.
	trs, kfs := transitionsAt(6, 8, 10, 12, 30)
	res := SelectSplitPoints(trs, kfs, 0, 5, nil, types.PolicyDefer, 3)

	want := []float64{8, 30}
	if len(res.Splits) != 2 || res.Splits[0] != want[0] || res.Splits[1] != want[1] {
		t.Fatalf("splits = %v, want %v", res.Splits, want)
	}
}

func TestSelectSplitPoints_DeferContainment(t *testing.T) {
	t.Parallel()

	trs, kfs := transitionsAt(5.5, 6, 7, 8.5, 9, 14, 15, 16, 40)
	const deferLimit = 3.0
	res := SelectSplitPoints(trs, kfs, 0, 5, nil, types.PolicyDefer, deferLimit)

	// Every chosen split must lie within deferLimit of the first candidate
	// that satisfied the gap test in its cluster.
	cursor := 0.0
	for _, s := range res.Splits {
		var first float64
		for _, c := range kfs {
			if c > cursor && c-cursor >= 5 {
				first = c
				break
			}
		}
		if s-first > deferLimit {
			t.Fatalf("split %v is %vs past its cluster anchor %v", s, s-first, first)
		}
		cursor = s
	}
}

func TestSelectSplitPoints_MergeSuppression(t *testing.T) {
	t.Parallel()

	trs, kfs := transitionsAt(10, 20, 30, 40, 50, 60)
	merges, err := ParseMergeRanges("3-5")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	res := SelectSplitPoints(trs, kfs, 0, 10, merges, types.PolicyEarliest, 0)

	// Scenes 3 and 4 are fused into their successors; emission resumes at
	// scene 5.
	want := []float64{10, 20, 50, 60}
	if len(res.Splits) != len(want) {
		t.Fatalf("splits = %v, want %v", res.Splits, want)
	}
	for i := range want {
		if res.Splits[i] != want[i] {
			t.Fatalf("splits = %v, want %v", res.Splits, want)
		}
	}
	if len(res.MergedScenes) != 2 || res.MergedScenes[0] != 3 || res.MergedScenes[1] != 4 {
		t.Fatalf("merged = %v, want [3 4]", res.MergedScenes)
	}
}

func TestSelectSplitPoints_MergeAdvancesCursor(t *testing.T) {
	t.Parallel()

	// After a merged boundary the cursor still moves, so the next split is
	// measured from the suppressed point, not from the last emitted one.
	trs, kfs := transitionsAt(10, 14, 20)
	merges, _ := ParseMergeRanges("1-2")

	res := SelectSplitPoints(trs, kfs, 0, 10, merges, types.PolicyEarliest, 0)
	if len(res.Splits) != 1 || res.Splits[0] != 20 {
		t.Fatalf("splits = %v, want [20]", res.Splits)
	}
}
