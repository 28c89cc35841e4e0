package scenes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/forPelevin/scenecut/internal/types"
)

// MergeRanges is a set of half-open scene-index ranges whose ending
// boundaries are suppressed, fusing the covered scenes into the next one.
type MergeRanges []types.MergeRange

// ParseMergeRanges parses a spec like "3-5,6-7". An empty spec means no
// merging. Index 0 addresses the intro.
func ParseMergeRanges(spec string) (MergeRanges, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}
	var out MergeRanges
	for _, part := range strings.Split(spec, ",") {
		lo, hi, ok := strings.Cut(strings.TrimSpace(part), "-")
		if !ok {
			return nil, fmt.Errorf("merge range %q: expected start-end", part)
		}
		start, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("merge range %q: %w", part, err)
		}
		end, err := strconv.Atoi(strings.TrimSpace(hi))
		if err != nil {
			return nil, fmt.Errorf("merge range %q: %w", part, err)
		}
		if start < 0 {
			return nil, fmt.Errorf("merge range %q: start must be >= 0", part)
		}
		out = append(out, types.MergeRange{Start: start, End: end})
	}
	return out, nil
}

// Suppressed reports whether the boundary ending scene idx should be
// dropped. A scene is suppressed when it falls in any [start, end) range.
func (m MergeRanges) Suppressed(idx int) bool {
	for _, r := range m {
		if idx >= r.Start && idx < r.End {
			return true
		}
	}
	return false
}
