package pacing

import (
	"testing"
)

func TestAdjustDifficulty_StepCappedDespiteManyNegativeRules(t *testing.T) {
	// Slow (−1), error-heavy (−1), frustrating (−1): raw accumulator −3,
	// but the step caps at one level down.
	s := newSession()
	s.FrustrationLevel = 0.9

	got := AdjustDifficulty(3, s, AdjustInput{
		TimeSpentSecs: 400,
		ErrorsCount:   6,
		HintsUsed:     0,
	})
	if got != 2 {
		t.Errorf("difficulty = %d, want 2 (capped single step down)", got)
	}
}

func TestAdjustDifficulty_StepCappedUp(t *testing.T) {
	// Fast with a high success rate and high proficiency: multiple +1
	// rules, still only one level up.
	s := newSession()
	for i := 0; i < 5; i++ {
		s.RecordChallengeAttempt(true)
	}
	p := 0.9
	got := AdjustDifficulty(3, s, AdjustInput{
		TimeSpentSecs:      30,
		ConceptProficiency: &p,
	})
	if got != 4 {
		t.Errorf("difficulty = %d, want 4 (capped single step up)", got)
	}
}

func TestAdjustDifficulty_StepBoundInvariant(t *testing.T) {
	inputs := []AdjustInput{
		{},
		{TimeSpentSecs: 1000, ErrorsCount: 50, HintsUsed: 10},
		{TimeSpentSecs: 5},
	}
	for current := 1; current <= 5; current++ {
		for _, in := range inputs {
			s := newSession()
			got := AdjustDifficulty(current, s, in)
			if got < MinDifficulty || got > MaxDifficulty {
				t.Errorf("AdjustDifficulty(%d, %+v) = %d, out of [1,5]", current, in, got)
			}
			if diff := got - current; diff > 1 || diff < -1 {
				t.Errorf("AdjustDifficulty(%d, %+v) = %d, step exceeds ±1", current, in, got)
			}
		}
	}
}

func TestAdjustDifficulty_ClampAtBounds(t *testing.T) {
	s := newSession()
	s.FrustrationLevel = 0.9
	got := AdjustDifficulty(1, s, AdjustInput{TimeSpentSecs: 400, ErrorsCount: 6})
	if got != 1 {
		t.Errorf("difficulty at floor = %d, want 1", got)
	}

	e := newSession()
	for i := 0; i < 5; i++ {
		e.RecordChallengeAttempt(true)
	}
	got = AdjustDifficulty(5, e, AdjustInput{TimeSpentSecs: 30})
	if got != 5 {
		t.Errorf("difficulty at ceiling = %d, want 5", got)
	}
}

func TestAdjustDifficulty_LowProficiencyNudgesDown(t *testing.T) {
	s := newSession()
	s.RecordChallengeAttempt(true)
	s.RecordChallengeAttempt(false) // rate 0.5 keeps the calm +1 rule quiet
	p := 0.2
	got := AdjustDifficulty(3, s, AdjustInput{
		TimeSpentSecs:      120,
		ConceptProficiency: &p,
	})
	if got != 2 {
		t.Errorf("low proficiency: difficulty = %d, want 2", got)
	}
}

func TestAdjustDifficulty_SteadyStateHolds(t *testing.T) {
	// Moderate time, few errors, middling proficiency: no rule fires.
	s := newSession()
	s.RecordChallengeAttempt(true)
	s.RecordChallengeAttempt(false)
	p := 0.5
	got := AdjustDifficulty(3, s, AdjustInput{
		TimeSpentSecs:      120,
		ErrorsCount:        1,
		ConceptProficiency: &p,
	})
	if got != 3 {
		t.Errorf("steady state: difficulty = %d, want 3", got)
	}
}
