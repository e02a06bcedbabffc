package milestones

import (
	"testing"

	"github.com/asante/codeweave/internal/progress"
)

func TestEvaluate_AwardsNewlySatisfied(t *testing.T) {
	up := progress.NewUserProgress("ama")
	up.CompletedChallenges = []string{"ch-1"}

	completed := Evaluate(up)
	if len(completed) != 1 {
		t.Fatalf("completed = %d milestones, want 1", len(completed))
	}
	if completed[0].ID != "first_thread" {
		t.Errorf("completed %q, want first_thread", completed[0].ID)
	}
	if !up.CompletedMilestones["first_thread"] {
		t.Error("first_thread not recorded in CompletedMilestones")
	}
	if up.XP != 25 {
		t.Errorf("XP = %d, want 25", up.XP)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	up := progress.NewUserProgress("ama")
	up.CompletedChallenges = []string{"ch-1"}

	Evaluate(up)
	xp := up.XP

	completed := Evaluate(up)
	if len(completed) != 0 {
		t.Fatalf("second evaluation completed %d milestones, want 0", len(completed))
	}
	if up.XP != xp {
		t.Errorf("XP changed on re-evaluation: %d -> %d", xp, up.XP)
	}
}

func TestEvaluate_MultipleAtOnce(t *testing.T) {
	up := progress.NewUserProgress("ama")
	up.CompletedChallenges = []string{"ch-1"}
	up.Mastered["sequencing"] = true

	completed := Evaluate(up)
	ids := map[string]bool{}
	for _, m := range completed {
		ids[m.ID] = true
	}
	if !ids["first_thread"] || !ids["first_mastery"] {
		t.Fatalf("completed = %v, want first_thread and first_mastery", ids)
	}
	if up.XP != 75 {
		t.Errorf("XP = %d, want 75", up.XP)
	}
}

func TestEvaluate_RewardXPCanChainIntoLevelMilestone(t *testing.T) {
	up := progress.NewUserProgress("ama")
	up.AddXP(380) // level 4
	for i := 0; i < 50; i++ {
		up.CompletedChallenges = append(up.CompletedChallenges, "ch")
	}

	// fifty_challenges pays 150 XP (plus the cheaper challenge
	// milestones), crossing into level 5 before level_five is checked.
	completed := Evaluate(up)
	found := false
	for _, m := range completed {
		if m.ID == "level_five" {
			found = true
		}
	}
	if !found {
		t.Fatalf("level_five not completed; got %v, level %d", completed, up.Level)
	}
}

func TestSatisfied_UnknownRequirementNeverFires(t *testing.T) {
	up := progress.NewUserProgress("ama")
	m := Milestone{
		ID:          "bogus",
		Requirement: Requirement{Type: "unknown_counter", Value: 1},
	}
	if m.Satisfied(up) {
		t.Error("milestone with unknown requirement type satisfied")
	}
}

func TestBadgeIDs_CatalogOrder(t *testing.T) {
	up := progress.NewUserProgress("ama")
	up.CompletedMilestones["first_mastery"] = true
	up.CompletedMilestones["first_thread"] = true

	badges := BadgeIDs(up)
	want := []string{"badge_first_thread", "badge_concept_keeper"}
	if len(badges) != len(want) {
		t.Fatalf("badges = %v, want %v", badges, want)
	}
	for i := range want {
		if badges[i] != want[i] {
			t.Errorf("badge %d = %q, want %q", i, badges[i], want[i])
		}
	}
}

func TestCatalog_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range Catalog() {
		if seen[m.ID] {
			t.Errorf("duplicate milestone ID %q", m.ID)
		}
		seen[m.ID] = true
		if m.Reward.XP <= 0 {
			t.Errorf("milestone %q has non-positive XP reward", m.ID)
		}
	}
}
