package pacing

import (
	"github.com/asante/codeweave/internal/session"
)

// Difficulty bounds for challenges.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// AdjustInput carries the session performance signals for one
// adjustment decision.
type AdjustInput struct {
	TimeSpentSecs int
	ErrorsCount   int
	HintsUsed     int

	// ConceptProficiency, when non-nil, lets proficiency in the current
	// concept nudge the difficulty.
	ConceptProficiency *float64
}

// AdjustDifficulty proposes the next difficulty level. Individual rules
// each contribute ±1 to an accumulator, but the final step is hard-capped
// to one level up or down from current no matter how many rules fired —
// a single noisy session should never swing difficulty by more than one.
func AdjustDifficulty(current int, s *session.Session, in AdjustInput) int {
	current = clampI(current, MinDifficulty, MaxDifficulty)

	adjustment := 0
	rate := s.SuccessRate()

	if in.TimeSpentSecs > 300 {
		adjustment--
	}
	if in.TimeSpentSecs < 60 && rate > 0.7 {
		adjustment++
	}

	if in.ErrorsCount > 5 || in.HintsUsed > 3 {
		adjustment--
	}

	frustration := DetectFrustration(s, in.ErrorsCount, in.TimeSpentSecs, in.HintsUsed)
	if frustration > 0.7 {
		adjustment--
	} else if frustration < 0.2 && rate > 0.8 {
		adjustment++
	}

	if in.ConceptProficiency != nil {
		p := *in.ConceptProficiency
		if p > 0.8 && current < 4 {
			adjustment++
		} else if p < 0.3 && current > 2 {
			adjustment--
		}
	}

	// Hysteresis: cap the step at ±1.
	if adjustment > 1 {
		adjustment = 1
	}
	if adjustment < -1 {
		adjustment = -1
	}

	return clampI(current+adjustment, MinDifficulty, MaxDifficulty)
}

func clampI(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
