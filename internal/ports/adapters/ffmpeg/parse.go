package ffmpeg

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/forPelevin/scenecut/internal/types"
)

var reBlack = regexp.MustCompile(`black_start:(\d+(?:\.\d+)?).*?black_end:(\d+(?:\.\d+)?)`)

// parseBlackdetect pulls (start, end) pairs out of the blackdetect filter's
// log lines, sorted by start. Lines without both markers are ignored.
func parseBlackdetect(out string) []types.TransitionInterval {
	var res []types.TransitionInterval
	for _, m := range reBlack.FindAllStringSubmatch(out, -1) {
		start, err1 := strconv.ParseFloat(m[1], 64)
		end, err2 := strconv.ParseFloat(m[2], 64)
		if err1 != nil || err2 != nil || end <= start {
			continue
		}
		res = append(res, types.TransitionInterval{Start: start, End: end})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Start < res[j].Start })
	return res
}

// parseKeyframes reads ffprobe csv=p=0 output, one pts_time per line. Some
// builds append trailing fields or bare commas; only the first field counts.
func parseKeyframes(out string) []float64 {
	seen := make(map[float64]struct{})
	var res []float64
	for _, line := range strings.Split(out, "\n") {
		field, _, _ := strings.Cut(strings.TrimSpace(line), ",")
		if field == "" || field == "N/A" {
			continue
		}
		ts, err := strconv.ParseFloat(field, 64)
		if err != nil {
			continue
		}
		if _, ok := seen[ts]; ok {
			continue
		}
		seen[ts] = struct{}{}
		res = append(res, ts)
	}
	sort.Float64s(res)
	return res
}
