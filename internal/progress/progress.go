// Package progress owns the durable per-user learner state: proficiency
// scalars, mastery classification, experience, streaks and attempt history.
package progress

import (
	"time"
)

// Proficiency tuning constants. The mastery threshold and deltas are the
// canonical values; older revisions of the curriculum used different
// numbers, which are superseded.
const (
	MasteryThreshold = 0.8

	// SuccessDelta is multiplied by the challenge difficulty on success.
	SuccessDelta = 0.1

	// FailureDelta is applied flat on failure.
	FailureDelta = -0.05

	// QualityBonusScale scales an optional solution-quality score in [0,1].
	QualityBonusScale = 0.1

	// PerfectBonus applies when a solve used zero hints and made zero errors.
	PerfectBonus = 0.05

	// SloppyPenalty applies when a solve leaned hard on hints or churned errors.
	SloppyPenalty = -0.03

	// HistoryCap bounds the attempt history; oldest entries evict first.
	HistoryCap = 100
)

// XPPerLevel is the experience points needed per level.
const XPPerLevel = 100

// MasteryStatus classifies a concept for one user.
type MasteryStatus string

const (
	StatusNotIntroduced MasteryStatus = "not_introduced"
	StatusInProgress    MasteryStatus = "in_progress"
	StatusMastered      MasteryStatus = "mastered"
)

// ChallengeAttempt is one entry in the bounded attempt history.
type ChallengeAttempt struct {
	ChallengeID string    `json:"challengeId"`
	Concepts    []string  `json:"concepts"`
	Success     bool      `json:"success"`
	Difficulty  float64   `json:"difficulty"`
	Timestamp   time.Time `json:"timestamp"`
}

// UserProgress is the durable aggregate for one user. It is owned
// exclusively by the engine for the duration of a call and persisted
// whole after each mutating operation (read-modify-write, last write
// wins — see the concurrency notes on Service).
type UserProgress struct {
	UserID string

	// Proficiency holds a scalar in [0,1] per concept ID.
	Proficiency map[string]float64

	// Mastered and InProgress partition the attempted concepts.
	// A concept is never in both at once.
	Mastered   map[string]bool
	InProgress map[string]bool

	CompletedChallenges []string
	CompletedStories    []string
	CompletedMilestones map[string]bool

	XP     int
	Level  int
	Streak int

	LastActiveDate time.Time

	// Preferences is a free-form bag the host can stash labels in
	// (preferred path type, display options).
	Preferences map[string]string

	// AttemptHistory is capped at HistoryCap entries.
	AttemptHistory []ChallengeAttempt

	// Demonstrations records, per concept, the challenge IDs on which
	// mastery was demonstrated.
	Demonstrations map[string][]string

	// StylePoints holds the learning-style classifier's accumulated
	// points, keyed by style label.
	StylePoints map[string]int

	PatternsCreated      int
	CulturalExplorations int
}

// NewUserProgress returns a fresh aggregate for a user.
func NewUserProgress(userID string) *UserProgress {
	return &UserProgress{
		UserID:              userID,
		Proficiency:         make(map[string]float64),
		Mastered:            make(map[string]bool),
		InProgress:          make(map[string]bool),
		CompletedMilestones: make(map[string]bool),
		Preferences:         make(map[string]string),
		Demonstrations:      make(map[string][]string),
		StylePoints:         make(map[string]int),
		Level:               1,
	}
}

// ProficiencyFor returns the stored proficiency for a concept, 0 if absent.
func (up *UserProgress) ProficiencyFor(conceptID string) float64 {
	return up.Proficiency[conceptID]
}

// StatusFor classifies a concept for this user.
func (up *UserProgress) StatusFor(conceptID string) MasteryStatus {
	switch {
	case up.Mastered[conceptID]:
		return StatusMastered
	case up.InProgress[conceptID]:
		return StatusInProgress
	default:
		return StatusNotIntroduced
	}
}

// MasteredSet returns a copy of the mastered concept set.
func (up *UserProgress) MasteredSet() map[string]bool {
	out := make(map[string]bool, len(up.Mastered))
	for id := range up.Mastered {
		out[id] = true
	}
	return out
}

// applyDelta adds delta to a concept's proficiency, clamps to [0,1], and
// reclassifies. It reports the new proficiency value.
func (up *UserProgress) applyDelta(conceptID string, delta float64) float64 {
	p := clamp01(up.Proficiency[conceptID] + delta)
	up.Proficiency[conceptID] = p
	up.reclassify(conceptID, p)
	return p
}

// reclassify moves a concept between the InProgress and Mastered sets.
// Mastery is one-directional: once mastered, a concept never demotes.
func (up *UserProgress) reclassify(conceptID string, p float64) {
	switch {
	case p >= MasteryThreshold:
		if !up.Mastered[conceptID] {
			delete(up.InProgress, conceptID)
			up.Mastered[conceptID] = true
		}
	case p > 0:
		if !up.Mastered[conceptID] && !up.InProgress[conceptID] {
			up.InProgress[conceptID] = true
		}
	}
}

// recordAttempt appends to the bounded history, evicting oldest first.
func (up *UserProgress) recordAttempt(a ChallengeAttempt) {
	up.AttemptHistory = append(up.AttemptHistory, a)
	if len(up.AttemptHistory) > HistoryCap {
		up.AttemptHistory = up.AttemptHistory[len(up.AttemptHistory)-HistoryCap:]
	}
}

// AddXP grants experience points and recomputes the level.
func (up *UserProgress) AddXP(points int) {
	if points < 0 {
		return
	}
	up.XP += points
	up.Level = up.XP/XPPerLevel + 1
}

// TouchActivity updates the daily streak against the previous active date.
func (up *UserProgress) TouchActivity(now time.Time) {
	today := now.Truncate(24 * time.Hour)
	last := up.LastActiveDate.Truncate(24 * time.Hour)

	switch {
	case up.LastActiveDate.IsZero():
		up.Streak = 1
	case today.Equal(last):
		// Same day, streak unchanged.
	case today.Sub(last) == 24*time.Hour:
		up.Streak++
	default:
		up.Streak = 1
	}
	up.LastActiveDate = now
}

// RecentChallengeIDs returns the challenge IDs of the n most recent
// attempts, newest first.
func (up *UserProgress) RecentChallengeIDs(n int) []string {
	if n <= 0 || len(up.AttemptHistory) == 0 {
		return nil
	}
	if n > len(up.AttemptHistory) {
		n = len(up.AttemptHistory)
	}
	out := make([]string, 0, n)
	for i := len(up.AttemptHistory) - 1; i >= len(up.AttemptHistory)-n; i-- {
		out = append(out, up.AttemptHistory[i].ChallengeID)
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
