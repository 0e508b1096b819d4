// Package confidence maps the job's success factors to a bounded score.
package confidence

import "token-promo-lab/internal/domain"

// Score bounds.
const (
	MinLevel = 1
	MaxLevel = 4
)

// Score counts true factors and clamps the result to [1,4]. Every factor
// weighs the same, and the score is monotonic in each: flipping a factor
// from false to true never decreases it. The floor of 1 means a fully
// degraded job still reports the lowest confidence rather than zero.
func Score(f domain.ConfidenceFactors) int {
	score := 0
	for _, ok := range []bool{f.WebsiteFound, f.OfficialLogo, f.AllClipsOK, f.NoFallbacks} {
		if ok {
			score++
		}
	}

	if score < MinLevel {
		return MinLevel
	}
	if score > MaxLevel {
		return MaxLevel
	}
	return score
}
