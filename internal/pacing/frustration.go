// Package pacing derives the control signals that keep challenges in a
// learner's comfortable band: a frustration scalar and a bounded
// difficulty adjustment.
package pacing

import (
	"github.com/asante/codeweave/internal/session"
)

// DetectFrustration combines session counters into a frustration scalar
// in [0,1]. It is a pure function: it starts from the frustration level
// carried on the session and layers the current signals on top without
// mutating anything.
//
// The five-factor formula is canonical; older three-factor variants are
// superseded.
func DetectFrustration(s *session.Session, recentErrors, timeOnChallengeSecs, hintsRequested int) float64 {
	level := s.FrustrationLevel

	level += 0.1 * clampF(float64(recentErrors), 0, 5)

	if timeOnChallengeSecs > 180 {
		over := float64(timeOnChallengeSecs-180) / 60.0
		level += 0.1 * clampF(over, 0, 3)
	}

	if hintsRequested > 1 {
		level += 0.05 * clampF(float64(hintsRequested), 0, 5)
	}

	if s.ChallengesAttempted > 2 {
		if rate := s.SuccessRate(); rate < 0.5 {
			level += 0.2 * (1 - rate)
		}
	}

	if s.ChallengesAttempted > 0 {
		if errRate := s.AverageErrorsPerChallenge(); errRate > 3 {
			level += 0.1 * clampF(errRate/5, 0, 1)
		}
	}

	if s.IsUserStruggling() {
		level += 0.1
	}

	return clampF(level, 0, 1)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
