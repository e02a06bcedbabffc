package engine

import (
	"context"
	"fmt"

	"github.com/asante/codeweave/internal/pacing"
	"github.com/asante/codeweave/internal/progress"
	"github.com/asante/codeweave/internal/session"
)

// StartSession opens a session for the user, replacing any session
// still marked active. The engine keeps one active session per user.
func (e *Engine) StartSession(userID string) *session.Session {
	s := session.New(userID, e.now())
	e.sessions[userID] = s
	return s
}

// ActiveSession returns the user's active session or ErrNoActiveSession.
func (e *Engine) ActiveSession(userID string) (*session.Session, error) {
	s, ok := e.sessions[userID]
	if !ok || !s.Active {
		return nil, fmt.Errorf("user %q: %w", userID, ErrNoActiveSession)
	}
	return s, nil
}

// RecordChallengeAttempt folds one challenge attempt into the active
// session and the durable aggregate: session counters, per-concept
// proficiency, completion credit on success. Session-scoped — the host
// must have called StartSession.
func (e *Engine) RecordChallengeAttempt(ctx context.Context, userID, challengeID string, conceptIDs []string, success bool, difficulty int) error {
	s, err := e.ActiveSession(userID)
	if err != nil {
		return err
	}

	s.RecordChallengeAttempt(success)

	var up *progress.UserProgress
	for _, conceptID := range conceptIDs {
		up, err = e.UpdateSkillProficiency(ctx, userID, conceptID, success, float64(difficulty))
		if err != nil {
			return err
		}
	}

	if success && challengeID != "" {
		up, err = e.progress.CompleteChallenge(ctx, userID, challengeID, difficulty)
		if err != nil {
			return err
		}
	}

	// Mirror the learner's average proficiency over the attempted
	// concepts into the session's mastery signal.
	if up != nil && len(conceptIDs) > 0 {
		total := 0.0
		for _, id := range conceptIDs {
			total += up.ProficiencyFor(id)
		}
		s.MasteryLevel = total / float64(len(conceptIDs))
	}
	return nil
}

// RecordHintRequest counts a hint request in the active session.
func (e *Engine) RecordHintRequest(userID string) error {
	s, err := e.ActiveSession(userID)
	if err != nil {
		return err
	}
	s.RecordHintRequest()
	return nil
}

// RecordError counts a learner error in the active session.
func (e *Engine) RecordError(userID string) error {
	s, err := e.ActiveSession(userID)
	if err != nil {
		return err
	}
	s.RecordError()
	return nil
}

// DetectFrustration refreshes the active session's frustration level
// from the latest challenge signals and returns it.
func (e *Engine) DetectFrustration(userID string, recentErrors, timeOnChallengeSecs, hintsRequested int) (float64, error) {
	s, err := e.ActiveSession(userID)
	if err != nil {
		return 0, err
	}
	s.FrustrationLevel = pacing.DetectFrustration(s, recentErrors, timeOnChallengeSecs, hintsRequested)
	return s.FrustrationLevel, nil
}

// CalculateDifficultyLevel proposes the next difficulty for the user
// given the current level and the latest performance signals. The step
// is bounded to ±1 and the result stays in [1,5]. Session-scoped.
func (e *Engine) CalculateDifficultyLevel(ctx context.Context, userID string, current int, in pacing.AdjustInput) (int, error) {
	s, err := e.ActiveSession(userID)
	if err != nil {
		return 0, err
	}

	next := pacing.AdjustDifficulty(current, s, in)
	s.RecommendedDifficultyAdjustment = next - current
	return next, nil
}

// EndSession closes the user's session, folds activity into the durable
// aggregate and returns the frozen summary.
func (e *Engine) EndSession(ctx context.Context, userID string) (session.Summary, error) {
	s, err := e.ActiveSession(userID)
	if err != nil {
		return session.Summary{}, err
	}

	summary := s.End(e.now())
	delete(e.sessions, userID)

	up, err := e.progress.Load(ctx, userID)
	if err != nil {
		return summary, err
	}
	up.TouchActivity(e.now())
	e.progress.Save(ctx, up)

	return summary, nil
}
