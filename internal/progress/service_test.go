package progress

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/asante/codeweave/internal/storage"
)

func newTestService() (*Service, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	svc := NewService(store)
	svc.now = func() time.Time { return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC) }
	return svc, store
}

func TestUpdateProficiency_SuccessScalesWithDifficulty(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	// Scenario: 0.0 + success at difficulty 3.0 = 0.3 → in progress.
	up, err := svc.UpdateProficiency(ctx, "u1", "loops", true, 3.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := up.ProficiencyFor("loops"); !almostEqual(got, 0.3) {
		t.Errorf("proficiency = %v, want 0.3", got)
	}
	if up.StatusFor("loops") != StatusInProgress {
		t.Errorf("status = %s, want in_progress", up.StatusFor("loops"))
	}
}

func TestUpdateProficiency_FailureFlatPenalty(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	svc.UpdateProficiency(ctx, "u1", "loops", true, 3.0)
	up, _ := svc.UpdateProficiency(ctx, "u1", "loops", false, 5.0)
	if got := up.ProficiencyFor("loops"); !almostEqual(got, 0.25) {
		t.Errorf("proficiency = %v, want 0.25 (failure penalty is flat)", got)
	}
}

func TestUpdateProficiency_ClampInvariant(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	// Hammer failures from zero: must never go below 0.
	for i := 0; i < 10; i++ {
		up, _ := svc.UpdateProficiency(ctx, "u1", "loops", false, 1.0)
		if p := up.ProficiencyFor("loops"); p < 0 || p > 1 {
			t.Fatalf("proficiency %v out of [0,1] after %d failures", p, i+1)
		}
	}

	// Hammer successes: must never exceed 1.
	for i := 0; i < 20; i++ {
		up, _ := svc.UpdateProficiency(ctx, "u1", "loops", true, 5.0)
		if p := up.ProficiencyFor("loops"); p < 0 || p > 1 {
			t.Fatalf("proficiency %v out of [0,1] after %d successes", p, i+1)
		}
	}
}

func TestUpdateProficiency_MasteryExclusivity(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	var up *UserProgress
	for i := 0; i < 10; i++ {
		up, _ = svc.UpdateProficiency(ctx, "u1", "loops", true, 2.0)
		if up.Mastered["loops"] && up.InProgress["loops"] {
			t.Fatal("concept simultaneously mastered and in progress")
		}
	}
	if !up.Mastered["loops"] {
		t.Error("concept not mastered after repeated successes")
	}
	if up.InProgress["loops"] {
		t.Error("mastered concept still in InProgress set")
	}
}

func TestUpdateProficiency_NoDemotion(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		svc.UpdateProficiency(ctx, "u1", "loops", true, 2.0)
	}
	// Mastered. Now fail repeatedly: proficiency drops but mastery holds.
	var up *UserProgress
	for i := 0; i < 30; i++ {
		up, _ = svc.UpdateProficiency(ctx, "u1", "loops", false, 1.0)
	}
	if !up.Mastered["loops"] {
		t.Error("mastery was demoted by failures")
	}
	if up.InProgress["loops"] {
		t.Error("mastered concept re-entered InProgress")
	}
}

func TestAssessConceptMastery_PerfectSolve(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	// Scenario: 0.75 + base 0.1 + quality 0.1 + perfect 0.05 → clamp 1.0.
	up, _ := svc.Load(ctx, "u1")
	up.Proficiency["loops"] = 0.75
	up.InProgress["loops"] = true

	quality := 1.0
	cm, err := svc.AssessConceptMastery(ctx, "u1", Assessment{
		ConceptID:       "loops",
		ChallengeID:     "ch-42",
		Success:         true,
		Difficulty:      1.0,
		SolutionQuality: &quality,
		HintsUsed:       0,
		ErrorsMade:      0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cm.Proficiency != 1.0 {
		t.Errorf("proficiency = %v, want 1.0", cm.Proficiency)
	}
	if cm.Status != StatusMastered {
		t.Errorf("status = %s, want mastered", cm.Status)
	}
	up, _ = svc.Load(ctx, "u1")
	if up.InProgress["loops"] {
		t.Error("mastered concept still in InProgress")
	}
	if len(cm.Demonstrations) != 1 || cm.Demonstrations[0] != "ch-42" {
		t.Errorf("demonstrations = %v, want [ch-42]", cm.Demonstrations)
	}
}

func TestAssessConceptMastery_SloppyPenalty(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	up, _ := svc.Load(ctx, "u1")
	up.Proficiency["loops"] = 0.5
	up.InProgress["loops"] = true

	cm, _ := svc.AssessConceptMastery(ctx, "u1", Assessment{
		ConceptID:  "loops",
		Success:    true,
		Difficulty: 1.0,
		HintsUsed:  3, // >2 triggers the penalty
	})
	// 0.5 + 0.1 - 0.03 = 0.57
	if !almostEqual(cm.Proficiency, 0.57) {
		t.Errorf("proficiency = %v, want 0.57", cm.Proficiency)
	}
}

func TestAssessConceptMastery_HistoryCap(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for i := 0; i < HistoryCap+20; i++ {
		svc.AssessConceptMastery(ctx, "u1", Assessment{
			ConceptID:   "loops",
			ChallengeID: fmt.Sprintf("ch-%d", i),
			Success:     true,
			Difficulty:  1.0,
		})
	}
	up, _ := svc.Load(ctx, "u1")
	if len(up.AttemptHistory) != HistoryCap {
		t.Errorf("history length = %d, want %d", len(up.AttemptHistory), HistoryCap)
	}
	// Oldest evicted: first remaining entry is ch-20.
	if up.AttemptHistory[0].ChallengeID != "ch-20" {
		t.Errorf("oldest entry = %s, want ch-20", up.AttemptHistory[0].ChallengeID)
	}
}

func TestLoad_CorruptSnapshotYieldsFreshAggregate(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	store.Put(ctx, storage.UserProgressKey("u1"), []byte("{not json"))

	svc := NewService(store)
	up, err := svc.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("corrupt snapshot surfaced an error: %v", err)
	}
	if up.UserID != "u1" || len(up.Proficiency) != 0 {
		t.Errorf("expected fresh aggregate, got %+v", up)
	}
}

func TestLoad_IncompatibleVersionYieldsFreshAggregate(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	store.Put(ctx, storage.UserProgressKey("u1"),
		[]byte(`{"version":"v2.0.0","userId":"u1","proficiency":{"loops":0.9}}`))

	svc := NewService(store)
	up, _ := svc.Load(ctx, "u1")
	if len(up.Proficiency) != 0 {
		t.Error("incompatible major version should not load old proficiency")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	svc := NewService(store)

	up, _ := svc.UpdateProficiency(ctx, "u1", "loops", true, 3.0)
	up.CompletedStories = append(up.CompletedStories, "story-1")
	up.AddXP(250)
	svc.Save(ctx, up)

	// Force a re-read from the store.
	svc.Invalidate("u1")
	loaded, err := svc.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := loaded.ProficiencyFor("loops"); !almostEqual(got, 0.3) {
		t.Errorf("proficiency = %v, want 0.3", got)
	}
	if loaded.XP != 250 || loaded.Level != 3 {
		t.Errorf("xp/level = %d/%d, want 250/3", loaded.XP, loaded.Level)
	}
	if len(loaded.CompletedStories) != 1 {
		t.Errorf("stories = %v, want one entry", loaded.CompletedStories)
	}
}

func TestTouchActivity_Streak(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, 3, d, 9, 0, 0, 0, time.UTC) }

	up := NewUserProgress("u1")
	up.TouchActivity(day(1))
	if up.Streak != 1 {
		t.Errorf("first activity streak = %d, want 1", up.Streak)
	}
	up.TouchActivity(day(1))
	if up.Streak != 1 {
		t.Errorf("same-day streak = %d, want 1", up.Streak)
	}
	up.TouchActivity(day(2))
	if up.Streak != 2 {
		t.Errorf("next-day streak = %d, want 2", up.Streak)
	}
	up.TouchActivity(day(5))
	if up.Streak != 1 {
		t.Errorf("gap resets streak: got %d, want 1", up.Streak)
	}
}

func TestReset(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	svc.UpdateProficiency(ctx, "u1", "loops", true, 3.0)
	if store.Len() != 1 {
		t.Fatalf("expected one stored key, got %d", store.Len())
	}
	if err := svc.Reset(ctx, "u1"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if store.Len() != 0 {
		t.Error("reset did not delete the stored aggregate")
	}
	up, _ := svc.Load(ctx, "u1")
	if len(up.Proficiency) != 0 {
		t.Error("reset did not drop the cached aggregate")
	}
}

func almostEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
