package scenes

import (
	"fmt"

	"github.com/forPelevin/scenecut/internal/types"
)

// Plan turns split points into concrete output ranges covering the whole
// timeline: an optional intro, numbered scenes, and a trailing scene that
// is labeled Outro when it is shorter than minScene. The trailing scene is
// always emitted when it has positive length; the minimum-duration rule is
// never applied retroactively to it.
//
// When merge range 0 covers the intro, no intro file is planned and the
// first scene starts at time 0 instead of introEnd.
func Plan(splits []float64, introEnd, total, minScene float64, merges MergeRanges, ext string) []types.Scene {
	var out []types.Scene

	start := introEnd
	if introEnd > 0 {
		if merges.Suppressed(0) {
			start = 0
		} else {
			out = append(out, types.Scene{
				Index:    0,
				Label:    "Intro",
				Start:    0,
				Duration: introEnd,
				File:     "Intro" + ext,
			})
		}
	}

	n := 1
	for _, t := range splits {
		label := fmt.Sprintf("Scene %d", n)
		out = append(out, types.Scene{
			Index:    n,
			Label:    label,
			Start:    start,
			Duration: t - start,
			File:     label + ext,
		})
		start = t
		n++
	}

	if total-start > 0 {
		label := fmt.Sprintf("Scene %d", n)
		if total-start < minScene {
			label = "Outro"
		}
		out = append(out, types.Scene{
			Index:    n,
			Label:    label,
			Start:    start,
			Duration: total - start,
			ToEnd:    true,
			File:     label + ext,
		})
	}
	return out
}
