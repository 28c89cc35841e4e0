package scenes

import "github.com/forPelevin/scenecut/internal/types"

// DetectIntroEnd returns the timestamp at which the intro ends, or 0 when
// there is no intro. It is a prefix scan: transitions must be sorted by
// start, and the first transition starting at or past introLimit stops the
// scan for good.
func DetectIntroEnd(transitions []types.TransitionInterval, keyframes []float64, introLimit float64) float64 {
	introEnd := 0.0
	for _, tr := range transitions {
		if tr.Start >= introLimit {
			break
		}
		cut, ok := Snap(keyframes, tr.Start, tr.End)
		if !ok {
			cut = tr.End
		}
		if cut > introEnd {
			introEnd = cut
		}
	}
	return introEnd
}
