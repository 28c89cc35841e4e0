package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/forPelevin/scenecut/internal/catalog"
	"github.com/forPelevin/scenecut/internal/domain/scenes"
	"github.com/forPelevin/scenecut/internal/ports"
	"github.com/forPelevin/scenecut/internal/ports/adapters/ffmpeg"
	"github.com/forPelevin/scenecut/internal/types"
	"github.com/forPelevin/scenecut/internal/usecase"
)

type Config struct {
	Input  string
	OutDir string

	// Duration is the minimum transition length passed to blackdetect.
	Duration     float64
	PicThreshold float64
	PixThreshold float64

	SceneLimit float64
	IntroLimit float64
	MergeSpec  string
	White      bool

	Policy     types.Policy
	DeferLimit float64

	MaxTransition float64
	AutoAdjust    bool

	CatalogPath string

	FFmpegPath  string
	FFprobePath string

	Logf func(format string, args ...any)
}

func (c Config) Validate() error {
	if c.Input == "" {
		return errors.New("input is empty")
	}
	if _, err := os.Stat(c.Input); err != nil {
		return fmt.Errorf("stat input: %w", err)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be > 0")
	}
	if c.PicThreshold <= 0 || c.PicThreshold > 1 {
		return fmt.Errorf("pic threshold must be in (0, 1]")
	}
	if c.PixThreshold < 0 || c.PixThreshold > 1 {
		return fmt.Errorf("pix threshold must be in [0, 1]")
	}
	if c.SceneLimit <= 0 {
		return fmt.Errorf("scene limit must be > 0")
	}
	if c.IntroLimit < 0 {
		return fmt.Errorf("intro limit must be >= 0")
	}
	switch c.Policy {
	case types.PolicyEarliest, types.PolicyDefer:
	default:
		return fmt.Errorf("policy must be %q or %q", types.PolicyEarliest, types.PolicyDefer)
	}
	if c.Policy == types.PolicyDefer && c.DeferLimit <= 0 {
		return fmt.Errorf("defer limit must be > 0")
	}
	if c.AutoAdjust && c.MaxTransition <= c.Duration {
		return fmt.Errorf("max transition (%.3g) must exceed duration (%.3g) when auto adjustment is enabled", c.MaxTransition, c.Duration)
	}
	if _, err := scenes.ParseMergeRanges(c.MergeSpec); err != nil {
		return err
	}
	return nil
}

func Run(ctx context.Context, cfg Config) error {
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	merges, err := scenes.ParseMergeRanges(cfg.MergeSpec)
	if err != nil {
		return err
	}

	outDir := cfg.OutDir
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	// adapters
	v := ffmpeg.New(cfg.FFmpegPath, cfg.FFprobePath)

	var recorder ports.RunRecorder
	if cfg.CatalogPath != "" {
		repo, err := catalog.Open(cfg.CatalogPath)
		if err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
		defer repo.Close()
		recorder = repo
	}

	uc := usecase.New(usecase.Deps{
		Analyzer:  v,
		Keyframes: v,
		Video:     v,
		Recorder:  recorder,
	})

	res, err := uc.Run(ctx, usecase.Input{
		InputPath: cfg.Input,
		OutDir:    outDir,
		Analyze: types.AnalyzeOptions{
			MinDuration:    cfg.Duration,
			PicThreshold:   cfg.PicThreshold,
			PixThreshold:   cfg.PixThreshold,
			InvertPolarity: cfg.White,
		},
		MinScene:      cfg.SceneLimit,
		IntroLimit:    cfg.IntroLimit,
		Merges:        merges,
		Policy:        cfg.Policy,
		DeferLimit:    cfg.DeferLimit,
		MaxTransition: cfg.MaxTransition,
		AutoAdjust:    cfg.AutoAdjust,
		Logf:          logf,
	})
	if err != nil {
		return err
	}

	b, err := json.MarshalIndent(res.Manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	manifestPath := filepath.Join(outDir, "manifest.json")
	if err := os.WriteFile(manifestPath, b, 0o644); err != nil {
		return err
	}
	logf("manifest written (%d scenes): %s", len(res.Manifest.Scenes), manifestPath)
	return nil
}

// ensure adapters implement ports
var _ ports.FrameAnalyzer = (*ffmpeg.Adapter)(nil)
var _ ports.KeyframeIndex = (*ffmpeg.Adapter)(nil)
var _ ports.VideoTool = (*ffmpeg.Adapter)(nil)
var _ ports.RunRecorder = (*catalog.Repository)(nil)
