package types

import "time"

// TransitionInterval is one detected black (or white) segment, in seconds
// from the start of the stream.
type TransitionInterval struct {
	Start float64
	End   float64
}

func (t TransitionInterval) Duration() float64 { return t.End - t.Start }

// AnalyzeOptions tunes the frame-analysis pass.
type AnalyzeOptions struct {
	// MinDuration is the shortest black segment reported, in seconds.
	MinDuration float64
	// PicThreshold is the minimum ratio of black pixels for a frame to
	// count as black (0..1).
	PicThreshold float64
	// PixThreshold is the maximum brightness for a pixel to count as
	// black (0..1).
	PixThreshold float64
	// InvertPolarity negates the picture first, so white segments are
	// detected instead of black ones.
	InvertPolarity bool
}

type Policy string

const (
	PolicyEarliest Policy = "earliest"
	PolicyDefer    Policy = "defer"
)

// MergeRange suppresses the boundaries ending scenes in [Start, End).
// Scene indices are 1-based; index 0 is the intro.
type MergeRange struct {
	Start int
	End   int
}

// Scene is one planned output range.
type Scene struct {
	Index    int
	Label    string
	Start    float64
	Duration float64
	// ToEnd means the scene runs to the end of the stream; the cutter
	// omits the duration argument in that case.
	ToEnd bool
	File  string
}

// RunRecord describes one splitting run for the catalog.
type RunRecord struct {
	Input      string
	Policy     Policy
	MinScene   float64
	IntroLimit float64
	StartedAt  time.Time
}

type Manifest struct {
	Input       string          `json:"input"`
	Policy      string          `json:"policy"`
	IntroEndSec float64         `json:"intro_end_sec"`
	TotalSec    float64         `json:"total_sec"`
	Scenes      []ManifestScene `json:"scenes"`
}

type ManifestScene struct {
	Label       string  `json:"label"`
	StartSec    float64 `json:"start_sec"`
	DurationSec float64 `json:"duration_sec"`
	File        string  `json:"file"`
}
