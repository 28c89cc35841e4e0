package scenes

import (
	"context"
	"math"

	"github.com/forPelevin/scenecut/internal/types"
)

// AnalyzeFunc re-runs frame analysis over [windowStart, windowStart+windowDur)
// with the given pic threshold and returns window-relative transitions. A
// failed analysis should surface as an empty result.
type AnalyzeFunc func(ctx context.Context, windowStart, windowDur, picThreshold float64) []types.TransitionInterval

type RefineOptions struct {
	// PicThreshold is the ratio threshold the original detection ran with;
	// each attempt tightens it halfway toward 1.0.
	PicThreshold float64
	// MaxTransition is the longest transition trusted as a single cut.
	MaxTransition float64
	// Attempts caps the number of tightening passes. Zero means the
	// default of 2.
	Attempts int
}

const (
	refinePad             = 0.5
	defaultRefineAttempts = 2
)

// Refine decomposes an anomalously long transition into shorter
// sub-intervals. Overlong black segments usually mean a fade, or several
// contiguous transitions blurring into one; a stricter ratio threshold
// carves out the true short transition without re-scanning the whole file.
// When no trustworthy sub-interval emerges the original interval is
// returned unchanged.
func Refine(ctx context.Context, analyze AnalyzeFunc, in types.TransitionInterval, opts RefineOptions) []types.TransitionInterval {
	attempts := opts.Attempts
	if attempts <= 0 {
		attempts = defaultRefineAttempts
	}

	winStart := in.Start - refinePad
	if winStart < 0 {
		winStart = 0
	}
	winDur := in.End + refinePad - winStart

	th := opts.PicThreshold
	for attempt := 0; attempt < attempts; attempt++ {
		th = tighten(th)

		var kept []types.TransitionInterval
		for _, f := range analyze(ctx, winStart, winDur, th) {
			// Results are window-relative; shift, drop anything that
			// misses the original interval, clamp the rest to it.
			s := f.Start + winStart
			e := f.End + winStart
			if e <= in.Start || s >= in.End {
				continue
			}
			if s < in.Start {
				s = in.Start
			}
			if e > in.End {
				e = in.End
			}
			kept = append(kept, types.TransitionInterval{Start: s, End: e})
		}
		if len(kept) == 0 {
			return []types.TransitionInterval{in}
		}

		var short []types.TransitionInterval
		for _, k := range kept {
			if k.Duration() < opts.MaxTransition {
				short = append(short, k)
			}
		}
		if len(short) > 0 {
			return short
		}
	}
	return []types.TransitionInterval{in}
}

// tighten moves the ratio threshold halfway toward 1.0, rounded to 4
// decimals so the value round-trips cleanly through the analyzer command
// line.
func tighten(th float64) float64 {
	return math.Round((th+1.0)/2*10000) / 10000
}
