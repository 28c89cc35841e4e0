package usecase

import (
	"context"
	"path/filepath"
	"sort"
	"time"

	"github.com/forPelevin/scenecut/internal/domain/scenes"
	"github.com/forPelevin/scenecut/internal/ports"
	"github.com/forPelevin/scenecut/internal/types"
)

type Deps struct {
	Analyzer  ports.FrameAnalyzer
	Keyframes ports.KeyframeIndex
	Video     ports.VideoTool
	// Recorder is optional; nil disables the run catalog.
	Recorder ports.RunRecorder
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

type Input struct {
	InputPath string
	OutDir    string

	Analyze       types.AnalyzeOptions
	MinScene      float64
	IntroLimit    float64
	Merges        scenes.MergeRanges
	Policy        types.Policy
	DeferLimit    float64
	MaxTransition float64
	AutoAdjust    bool

	Logf func(format string, args ...any)
}

type Result struct {
	Manifest types.Manifest
	Scenes   []types.Scene
	IntroEnd float64
}

// Run drives one splitting pass: detect transitions and keyframes, refine
// overlong transitions, find the intro, select split points, and cut one
// output file per planned scene.
//
// Analyzer and keyframe failures degrade to an empty result so a broken
// detection pass yields a single-scene output instead of aborting; cut
// failures are logged per scene and the run continues.
func (u Usecase) Run(ctx context.Context, in Input) (Result, error) {
	logf := in.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	logf("detecting transitions")
	transitions, err := u.d.Analyzer.DetectTransitions(ctx, in.InputPath, 0, 0, in.Analyze)
	if err != nil {
		logf("frame analysis failed, continuing with no transitions: %v", err)
		transitions = nil
	}
	sort.Slice(transitions, func(i, j int) bool { return transitions[i].Start < transitions[j].Start })
	logf("found %d transitions", len(transitions))

	logf("indexing keyframes")
	keyframes, err := u.d.Keyframes.ListKeyframes(ctx, in.InputPath)
	if err != nil {
		logf("keyframe probe failed, continuing with no keyframes: %v", err)
		keyframes = nil
	}
	logf("found %d keyframes", len(keyframes))

	if in.AutoAdjust {
		transitions = u.refineLong(ctx, in, transitions, logf)
	}

	introEnd := scenes.DetectIntroEnd(transitions, keyframes, in.IntroLimit)
	if introEnd > 0 {
		logf("intro ends at %.3fs", introEnd)
	}

	sel := scenes.SelectSplitPoints(transitions, keyframes, introEnd, in.MinScene, in.Merges, in.Policy, in.DeferLimit)
	for _, idx := range sel.MergedScenes {
		logf("scene %d merged into the next scene", idx)
	}

	total, err := u.d.Video.ProbeDuration(ctx, in.InputPath)
	if err != nil {
		return Result{}, err
	}

	ext := filepath.Ext(in.InputPath)
	plan := scenes.Plan(sel.Splits, introEnd, total, in.MinScene, in.Merges, ext)

	var runID int64
	if u.d.Recorder != nil {
		runID, err = u.d.Recorder.RecordRun(ctx, types.RunRecord{
			Input:      in.InputPath,
			Policy:     in.Policy,
			MinScene:   in.MinScene,
			IntroLimit: in.IntroLimit,
			StartedAt:  time.Now().UTC(),
		})
		if err != nil {
			logf("catalog: record run failed: %v", err)
			runID = 0
		}
	}

	m := types.Manifest{
		Input:       in.InputPath,
		Policy:      string(in.Policy),
		IntroEndSec: introEnd,
		TotalSec:    total,
	}
	for _, sc := range plan {
		out := filepath.Join(in.OutDir, sc.File)
		logf("cutting %s (start %.3fs, %.3fs)", sc.Label, sc.Start, sc.Duration)
		if err := u.d.Video.CutCopy(ctx, in.InputPath, out, sc.Start, sc.Duration, sc.ToEnd); err != nil {
			logf("cut %s failed: %v", sc.Label, err)
			continue
		}
		m.Scenes = append(m.Scenes, types.ManifestScene{
			Label:       sc.Label,
			StartSec:    sc.Start,
			DurationSec: sc.Duration,
			File:        sc.File,
		})
		if u.d.Recorder != nil && runID != 0 {
			if err := u.d.Recorder.RecordScene(ctx, runID, sc); err != nil {
				logf("catalog: record scene failed: %v", err)
			}
		}
	}

	return Result{Manifest: m, Scenes: plan, IntroEnd: introEnd}, nil
}

// refineLong replaces every transition longer than MaxTransition with the
// shorter sub-intervals a stricter detection pass finds inside it.
// Transitions already short enough pass through untouched.
func (u Usecase) refineLong(ctx context.Context, in Input, transitions []types.TransitionInterval, logf func(string, ...any)) []types.TransitionInterval {
	analyze := func(ctx context.Context, windowStart, windowDur, picTh float64) []types.TransitionInterval {
		opts := in.Analyze
		opts.PicThreshold = picTh
		found, err := u.d.Analyzer.DetectTransitions(ctx, in.InputPath, windowStart, windowDur, opts)
		if err != nil {
			logf("refine analysis failed: %v", err)
			return nil
		}
		return found
	}

	var out []types.TransitionInterval
	for _, tr := range transitions {
		if tr.Duration() <= in.MaxTransition {
			out = append(out, tr)
			continue
		}
		logf("refining long transition %.3f-%.3f", tr.Start, tr.End)
		sub := scenes.Refine(ctx, analyze, tr, scenes.RefineOptions{
			PicThreshold:  in.Analyze.PicThreshold,
			MaxTransition: in.MaxTransition,
		})
		if len(sub) > 1 || (len(sub) == 1 && sub[0] != tr) {
			logf("refined into %d sub-transitions", len(sub))
		}
		out = append(out, sub...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}
