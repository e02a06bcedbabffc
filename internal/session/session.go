// Package session tracks one continuous learning interaction: attempt,
// hint and error counters plus the derived engagement and frustration
// signals the pacing layer reads.
package session

import (
	"time"

	"github.com/google/uuid"
)

// Struggling/excelling bands over the session success rate. Both
// require a few attempts before they mean anything.
const (
	minAttemptsForSignal = 3
	strugglingBelow      = 0.4
	excellingAbove       = 0.8
)

// Session is the ephemeral counter bundle for one active session.
type Session struct {
	ID     string
	UserID string

	ChallengesAttempted int
	ChallengesCompleted int
	HintsRequested      int
	ErrorsMade          int

	// EngagementScore in [0,1] grows with activity.
	EngagementScore float64

	// FrustrationLevel in [0,1] is carried between detector calls so
	// frustration can build over a session.
	FrustrationLevel float64

	// MasteryLevel in [0,1] mirrors the learner's average proficiency
	// over the concepts touched this session.
	MasteryLevel float64

	// RecommendedDifficultyAdjustment is the last step proposed by the
	// difficulty controller: -1, 0 or +1.
	RecommendedDifficultyAdjustment int

	Active    bool
	StartedAt time.Time
	EndedAt   time.Time
}

// New starts a session for a user.
func New(userID string, now time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Active:    true,
		StartedAt: now,
	}
}

// RecordChallengeAttempt counts an attempt and, on success, a completion.
func (s *Session) RecordChallengeAttempt(success bool) {
	s.ChallengesAttempted++
	if success {
		s.ChallengesCompleted++
		s.bumpEngagement(0.05)
	} else {
		s.bumpEngagement(0.02)
	}
}

// RecordHintRequest counts a hint request.
func (s *Session) RecordHintRequest() {
	s.HintsRequested++
}

// RecordError counts an error the learner made.
func (s *Session) RecordError() {
	s.ErrorsMade++
}

// SuccessRate returns completed/attempted, 0 with no attempts.
func (s *Session) SuccessRate() float64 {
	if s.ChallengesAttempted == 0 {
		return 0
	}
	return float64(s.ChallengesCompleted) / float64(s.ChallengesAttempted)
}

// AverageErrorsPerChallenge returns errors/attempted, 0 with no attempts.
func (s *Session) AverageErrorsPerChallenge() float64 {
	if s.ChallengesAttempted == 0 {
		return 0
	}
	return float64(s.ErrorsMade) / float64(s.ChallengesAttempted)
}

// IsUserStruggling reports a low success rate over enough attempts, or
// frustration already running high.
func (s *Session) IsUserStruggling() bool {
	if s.FrustrationLevel > 0.7 {
		return true
	}
	return s.ChallengesAttempted >= minAttemptsForSignal && s.SuccessRate() < strugglingBelow
}

// IsUserExcelling reports a high success rate over enough attempts.
func (s *Session) IsUserExcelling() bool {
	return s.ChallengesAttempted >= minAttemptsForSignal && s.SuccessRate() > excellingAbove
}

// Elapsed returns the session duration against now (or EndedAt once closed).
func (s *Session) Elapsed(now time.Time) time.Duration {
	if !s.Active && !s.EndedAt.IsZero() {
		return s.EndedAt.Sub(s.StartedAt)
	}
	return now.Sub(s.StartedAt)
}

// End closes the session. A closed session is immutable by convention;
// callers discard it after folding the summary into durable progress.
func (s *Session) End(now time.Time) Summary {
	s.Active = false
	s.EndedAt = now
	return Summary{
		SessionID:           s.ID,
		UserID:              s.UserID,
		ChallengesAttempted: s.ChallengesAttempted,
		ChallengesCompleted: s.ChallengesCompleted,
		HintsRequested:      s.HintsRequested,
		ErrorsMade:          s.ErrorsMade,
		EngagementScore:     s.EngagementScore,
		FrustrationLevel:    s.FrustrationLevel,
		Duration:            s.EndedAt.Sub(s.StartedAt),
	}
}

func (s *Session) bumpEngagement(delta float64) {
	s.EngagementScore += delta
	if s.EngagementScore > 1 {
		s.EngagementScore = 1
	}
}

// Summary is the immutable fold of a finished session.
type Summary struct {
	SessionID           string
	UserID              string
	ChallengesAttempted int
	ChallengesCompleted int
	HintsRequested      int
	ErrorsMade          int
	EngagementScore     float64
	FrustrationLevel    float64
	Duration            time.Duration
}
