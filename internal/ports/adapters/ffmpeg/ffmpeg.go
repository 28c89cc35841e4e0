package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/forPelevin/scenecut/internal/types"
)

type Adapter struct {
	ffmpeg  string
	ffprobe string
}

func New(ffmpegPath, ffprobePath string) *Adapter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &Adapter{ffmpeg: ffmpegPath, ffprobe: ffprobePath}
}

// DetectTransitions runs the blackdetect filter over a window of the input
// and parses the black_start/black_end pairs it logs. windowDur <= 0 scans
// the whole file. Reported times are relative to the window start.
func (a *Adapter) DetectTransitions(ctx context.Context, in string, windowStart, windowDur float64, opts types.AnalyzeOptions) ([]types.TransitionInterval, error) {
	filter := fmt.Sprintf("blackdetect=d=%s:pic_th=%s:pix_th=%s",
		fmtFloat(opts.MinDuration),
		fmtFloat(opts.PicThreshold),
		fmtFloat(opts.PixThreshold),
	)
	if opts.InvertPolarity {
		// White segments: negate the picture first, then detect black.
		filter = "negate," + filter
	}

	args := []string{"-hide_banner", "-nostats"}
	if windowDur > 0 {
		args = append(args, "-ss", fmtFloat(windowStart), "-t", fmtFloat(windowDur))
	}
	args = append(args,
		"-i", in,
		"-vf", filter,
		"-an",
		"-f", "null",
		"-",
	)
	cmd := exec.CommandContext(ctx, a.ffmpeg, args...)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("ffmpeg blackdetect: %w\n%s", err, string(b))
	}
	return parseBlackdetect(string(b)), nil
}

// ListKeyframes asks ffprobe for the pts of every keyframe in the video
// stream, sorted and duplicate-free.
func (a *Adapter) ListKeyframes(ctx context.Context, in string) ([]float64, error) {
	cmd := exec.CommandContext(ctx, a.ffprobe,
		"-v", "error",
		"-select_streams", "v",
		"-skip_frame", "nokey",
		"-show_frames",
		"-show_entries", "frame=pts_time",
		"-of", "csv=p=0",
		in,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("ffprobe keyframes: %w\n%s", err, string(b))
	}
	return parseKeyframes(string(b)), nil
}

func (a *Adapter) ProbeDuration(ctx context.Context, in string) (float64, error) {
	cmd := exec.CommandContext(ctx, a.ffprobe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		in,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w\n%s", err, string(b))
	}
	s := strings.TrimSpace(string(b))
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", s, err)
	}
	return sec, nil
}

// CutCopy extracts a range without re-encoding. toEnd omits the duration so
// the cut runs to the end of the stream.
func (a *Adapter) CutCopy(ctx context.Context, in, out string, start, duration float64, toEnd bool) error {
	args := []string{
		"-y",
		"-ss", fmtFloat(start),
		"-i", in,
	}
	if !toEnd {
		args = append(args, "-t", fmtFloat(duration))
	}
	args = append(args, "-c", "copy", out)
	cmd := exec.CommandContext(ctx, a.ffmpeg, args...)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg cut: %w\n%s", err, string(b))
	}
	return nil
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
