package ports

import (
	"context"

	"github.com/forPelevin/scenecut/internal/types"
)

// FrameAnalyzer reports black/white transition segments inside a window of
// the input. windowDur <= 0 means "analyze the whole file".
type FrameAnalyzer interface {
	DetectTransitions(ctx context.Context, in string, windowStart, windowDur float64, opts types.AnalyzeOptions) ([]types.TransitionInterval, error)
}

// KeyframeIndex lists the timestamps at which the input can be cut without
// re-encoding, sorted ascending and duplicate-free.
type KeyframeIndex interface {
	ListKeyframes(ctx context.Context, in string) ([]float64, error)
}

type VideoTool interface {
	ProbeDuration(ctx context.Context, in string) (float64, error)
	// CutCopy extracts [start, start+duration) losslessly. toEnd cuts
	// from start to the end of the stream and ignores duration.
	CutCopy(ctx context.Context, in, out string, start, duration float64, toEnd bool) error
}

// RunRecorder persists run results. Implementations may be nil-safe no-ops;
// the usecase skips recording when no recorder is configured.
type RunRecorder interface {
	RecordRun(ctx context.Context, run types.RunRecord) (int64, error)
	RecordScene(ctx context.Context, runID int64, sc types.Scene) error
}
