package progress

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"golang.org/x/mod/semver"
)

// FormatVersion is the persisted snapshot format version. Bump the major
// version for incompatible layout changes; loading a snapshot with a
// different major version falls back to a fresh aggregate.
const FormatVersion = "v1.0.0"

// snapshot is the JSON shape persisted to the storage collaborator.
type snapshot struct {
	Version             string              `json:"version"`
	UserID              string              `json:"userId"`
	Proficiency         map[string]float64  `json:"proficiency"`
	Mastered            []string            `json:"mastered"`
	InProgress          []string            `json:"inProgress"`
	CompletedChallenges []string            `json:"completedChallenges"`
	CompletedStories    []string            `json:"completedStories"`
	CompletedMilestones []string            `json:"completedMilestones"`
	XP                  int                 `json:"xp"`
	Level               int                 `json:"level"`
	Streak              int                 `json:"streak"`
	LastActiveDate      *time.Time          `json:"lastActiveDate,omitempty"`
	Preferences         map[string]string   `json:"preferences"`
	AttemptHistory      []ChallengeAttempt  `json:"attemptHistory"`
	Demonstrations      map[string][]string `json:"demonstrations"`
	StylePoints         map[string]int      `json:"stylePoints"`
	PatternsCreated     int                 `json:"patternsCreated"`
	CulturalExplored    int                 `json:"culturalExplorations"`
}

// Marshal serializes the aggregate for persistence.
func Marshal(up *UserProgress) ([]byte, error) {
	snap := snapshot{
		Version:             FormatVersion,
		UserID:              up.UserID,
		Proficiency:         up.Proficiency,
		Mastered:            setToSorted(up.Mastered),
		InProgress:          setToSorted(up.InProgress),
		CompletedChallenges: up.CompletedChallenges,
		CompletedStories:    up.CompletedStories,
		CompletedMilestones: setToSorted(up.CompletedMilestones),
		XP:                  up.XP,
		Level:               up.Level,
		Streak:              up.Streak,
		Preferences:         up.Preferences,
		AttemptHistory:      up.AttemptHistory,
		Demonstrations:      up.Demonstrations,
		StylePoints:         up.StylePoints,
		PatternsCreated:     up.PatternsCreated,
		CulturalExplored:    up.CulturalExplorations,
	}
	if !up.LastActiveDate.IsZero() {
		t := up.LastActiveDate
		snap.LastActiveDate = &t
	}
	return json.Marshal(snap)
}

// Unmarshal deserializes a persisted aggregate. It returns an error for
// malformed JSON or an incompatible format version; callers recover by
// substituting a fresh aggregate.
func Unmarshal(data []byte) (*UserProgress, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode progress snapshot: %w", err)
	}

	if !semver.IsValid(snap.Version) {
		return nil, fmt.Errorf("invalid snapshot version %q", snap.Version)
	}
	if semver.Major(snap.Version) != semver.Major(FormatVersion) {
		return nil, fmt.Errorf("incompatible snapshot version %s (want major %s)",
			snap.Version, semver.Major(FormatVersion))
	}

	up := NewUserProgress(snap.UserID)
	if snap.Proficiency != nil {
		up.Proficiency = snap.Proficiency
	}
	for _, id := range snap.Mastered {
		up.Mastered[id] = true
	}
	for _, id := range snap.InProgress {
		// Mastery wins if a hand-edited snapshot lists a concept in both.
		if !up.Mastered[id] {
			up.InProgress[id] = true
		}
	}
	up.CompletedChallenges = snap.CompletedChallenges
	up.CompletedStories = snap.CompletedStories
	for _, id := range snap.CompletedMilestones {
		up.CompletedMilestones[id] = true
	}
	up.XP = snap.XP
	up.Level = snap.Level
	if up.Level < 1 {
		up.Level = 1
	}
	up.Streak = snap.Streak
	if snap.LastActiveDate != nil {
		up.LastActiveDate = *snap.LastActiveDate
	}
	if snap.Preferences != nil {
		up.Preferences = snap.Preferences
	}
	up.AttemptHistory = snap.AttemptHistory
	if snap.Demonstrations != nil {
		up.Demonstrations = snap.Demonstrations
	}
	if snap.StylePoints != nil {
		up.StylePoints = snap.StylePoints
	}
	up.PatternsCreated = snap.PatternsCreated
	up.CulturalExplorations = snap.CulturalExplored

	// Re-clamp on load; hand-edited or legacy snapshots may drift.
	for id, p := range up.Proficiency {
		up.Proficiency[id] = clamp01(p)
	}

	return up, nil
}

func setToSorted(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
