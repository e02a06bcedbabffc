package progress

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/asante/codeweave/internal/storage"
)

// Service loads, mutates and persists UserProgress aggregates.
//
// Concurrency: the engine assumes at most one in-flight mutation per
// user at a time. Concurrent writes for the same user are last-write-wins
// on the whole aggregate; there is no merge.
type Service struct {
	store storage.Store

	// cache holds the most recently loaded aggregate per user. It is a
	// performance optimization only: every mutating operation writes
	// through, and a failed write leaves the cache as the best-effort
	// state until the next successful write.
	cache map[string]*UserProgress

	now func() time.Time
}

// NewService creates a progress service over the given store.
func NewService(store storage.Store) *Service {
	return &Service{
		store: store,
		cache: make(map[string]*UserProgress),
		now:   time.Now,
	}
}

// Load returns the aggregate for a user, reading through the cache.
// A missing or corrupt persisted snapshot yields a fresh default
// aggregate, never an error.
func (s *Service) Load(ctx context.Context, userID string) (*UserProgress, error) {
	if up, ok := s.cache[userID]; ok {
		return up, nil
	}

	data, err := s.store.Get(ctx, storage.UserProgressKey(userID))
	if err != nil {
		return nil, fmt.Errorf("load progress for %q: %w", userID, err)
	}

	var up *UserProgress
	if data == nil {
		up = NewUserProgress(userID)
	} else {
		up, err = Unmarshal(data)
		if err != nil {
			// Corrupt or incompatible state: start fresh rather than
			// surfacing a data problem to the caller.
			fmt.Fprintf(os.Stderr, "warning: resetting progress for %q: %v\n", userID, err)
			up = NewUserProgress(userID)
		}
	}

	s.cache[userID] = up
	return up, nil
}

// Save persists the aggregate and refreshes the cache. A storage failure
// is logged, not returned: the in-memory aggregate remains the
// best-effort source of truth until the next successful write.
func (s *Service) Save(ctx context.Context, up *UserProgress) {
	s.cache[up.UserID] = up

	data, err := Marshal(up)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to encode progress for %q: %v\n", up.UserID, err)
		return
	}
	if err := s.store.Put(ctx, storage.UserProgressKey(up.UserID), data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to persist progress for %q: %v\n", up.UserID, err)
	}
}

// Reset deletes a user's durable progress and drops the cached aggregate.
func (s *Service) Reset(ctx context.Context, userID string) error {
	delete(s.cache, userID)
	if err := s.store.Delete(ctx, storage.UserProgressKey(userID)); err != nil {
		return fmt.Errorf("reset progress for %q: %w", userID, err)
	}
	return nil
}

// Invalidate drops a user's cached aggregate, forcing the next Load to
// hit the store.
func (s *Service) Invalidate(userID string) {
	delete(s.cache, userID)
}

// UpdateProficiency applies one challenge outcome to a concept:
// success adds SuccessDelta scaled by difficulty, failure subtracts a
// flat penalty. The result is clamped to [0,1] and the concept is
// reclassified. The updated aggregate is persisted and returned.
func (s *Service) UpdateProficiency(ctx context.Context, userID, conceptID string, success bool, difficulty float64) (*UserProgress, error) {
	up, err := s.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	delta := FailureDelta
	if success {
		delta = SuccessDelta * difficulty
	}
	up.applyDelta(conceptID, delta)
	up.TouchActivity(s.now())

	s.Save(ctx, up)
	return up, nil
}

// Assessment is the input for AssessConceptMastery.
type Assessment struct {
	ConceptID   string
	ChallengeID string
	Success     bool
	Difficulty  float64

	// SolutionQuality, when non-nil, is a quality score in [0,1] that
	// adds up to QualityBonusScale on top of the base delta.
	SolutionQuality *float64

	HintsUsed  int
	ErrorsMade int
}

// ConceptMastery is the outcome of a mastery assessment.
type ConceptMastery struct {
	ConceptID      string
	Proficiency    float64
	Status         MasteryStatus
	Demonstrations []string
}

// AssessConceptMastery applies the base proficiency delta plus secondary
// adjustments (solution quality, perfect-solve bonus, sloppy-solve
// penalty), records the demonstration, and reclassifies. All adjustments
// fold into one delta so the final value clamps once before
// classification.
func (s *Service) AssessConceptMastery(ctx context.Context, userID string, a Assessment) (*ConceptMastery, error) {
	up, err := s.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	delta := FailureDelta
	if a.Success {
		delta = SuccessDelta * a.Difficulty
	}

	if a.SolutionQuality != nil {
		q := clamp01(*a.SolutionQuality)
		delta += QualityBonusScale * q
	}
	if a.HintsUsed == 0 && a.ErrorsMade == 0 {
		delta += PerfectBonus
	}
	if a.HintsUsed > 2 || a.ErrorsMade > 3 {
		delta += SloppyPenalty
	}

	p := up.applyDelta(a.ConceptID, delta)

	if a.ChallengeID != "" {
		up.Demonstrations[a.ConceptID] = append(up.Demonstrations[a.ConceptID], a.ChallengeID)
	}
	up.recordAttempt(ChallengeAttempt{
		ChallengeID: a.ChallengeID,
		Concepts:    []string{a.ConceptID},
		Success:     a.Success,
		Difficulty:  a.Difficulty,
		Timestamp:   s.now(),
	})
	up.TouchActivity(s.now())

	s.Save(ctx, up)

	return &ConceptMastery{
		ConceptID:      a.ConceptID,
		Proficiency:    p,
		Status:         up.StatusFor(a.ConceptID),
		Demonstrations: up.Demonstrations[a.ConceptID],
	}, nil
}

// CompleteChallenge records a finished challenge in the aggregate and
// grants XP scaled by difficulty.
func (s *Service) CompleteChallenge(ctx context.Context, userID, challengeID string, difficulty int) (*UserProgress, error) {
	up, err := s.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	up.CompletedChallenges = append(up.CompletedChallenges, challengeID)
	up.AddXP(10 * difficulty)
	up.TouchActivity(s.now())
	s.Save(ctx, up)
	return up, nil
}
