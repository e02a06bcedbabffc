package paths

import (
	"testing"
	"time"

	"github.com/asante/codeweave/internal/concepts"
	"github.com/asante/codeweave/internal/progress"
	"github.com/asante/codeweave/internal/session"
)

func TestTemplate_CoversCatalogInOrder(t *testing.T) {
	items := Template(concepts.PathLogic)

	want := concepts.TopologicalOrder()
	if len(items) != len(want) {
		t.Fatalf("len = %d, want %d", len(items), len(want))
	}
	for i, c := range want {
		if items[i].ConceptID != c.ID {
			t.Errorf("item %d = %q, want %q", i, items[i].ConceptID, c.ID)
		}
		if items[i].Title != c.Name {
			t.Errorf("item %d title = %q, want %q", i, items[i].Title, c.Name)
		}
		if items[i].Difficulty != 2 {
			t.Errorf("item %d difficulty = %d, want 2", i, items[i].Difficulty)
		}
	}
}

func TestTemplate_PrefersFavoredChallengeTypes(t *testing.T) {
	// loops carries [pattern_creation, block_puzzle, code_tracing]; the
	// first entry favored by the path should win.
	tests := []struct {
		pathType concepts.PathType
		want     concepts.ChallengeType
	}{
		{concepts.PathCreativity, concepts.ChallengePatternCreation},
		{concepts.PathLogic, concepts.ChallengeBlockPuzzle},
		{concepts.PathChallenge, concepts.ChallengeBlockPuzzle},
	}
	for _, tt := range tests {
		items := Template(tt.pathType)
		var got concepts.ChallengeType
		for _, it := range items {
			if it.ConceptID == "loops" {
				got = it.ChallengeType
			}
		}
		if got != tt.want {
			t.Errorf("%s path: loops challenge type = %q, want %q", tt.pathType, got, tt.want)
		}
	}
}

func TestPersonalize_NilProgressIsIdentity(t *testing.T) {
	items := Template(concepts.PathLogic)
	got := Personalize(items, nil)
	for i := range items {
		if got[i].ConceptID != items[i].ConceptID {
			t.Fatalf("item %d = %q, want %q", i, got[i].ConceptID, items[i].ConceptID)
		}
	}
}

func TestPersonalize_MasteredThenInProgressThenShallow(t *testing.T) {
	up := progress.NewUserProgress("ama")
	up.Mastered["functions"] = true
	up.InProgress["operators"] = true

	got := Personalize(Template(concepts.PathLogic), up)

	// Mastered first, in-progress next, remainder by prerequisite
	// count ascending keeping topological order within equal counts.
	want := []string{
		"functions", "operators",
		"sequencing",
		"conditionals", "events", "loops", "variables", "debugging", "nested_loops", "parameters",
		"lists", "patterns",
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ConceptID != id {
			t.Errorf("item %d = %q, want %q", i, got[i].ConceptID, id)
		}
	}
}

func TestPersonalize_DoesNotMutateInput(t *testing.T) {
	up := progress.NewUserProgress("ama")
	up.Mastered["patterns"] = true

	items := Template(concepts.PathLogic)
	first := items[0].ConceptID
	Personalize(items, up)
	if items[0].ConceptID != first {
		t.Fatalf("input slice mutated: first item now %q", items[0].ConceptID)
	}
}

func TestRecommendPathType_PreferenceWins(t *testing.T) {
	up := progress.NewUserProgress("ama")
	got := RecommendPathType(up, concepts.PathCreativity, nil)
	if got != concepts.PathCreativity {
		t.Fatalf("got %q, want creativity", got)
	}
}

func TestRecommendPathType_StrugglingOverridesPreference(t *testing.T) {
	s := session.New("ama", time.Now())
	s.RecordChallengeAttempt(false)
	s.RecordChallengeAttempt(false)
	s.RecordChallengeAttempt(false)
	if !s.IsUserStruggling() {
		t.Fatal("session should be struggling")
	}

	up := progress.NewUserProgress("ama")
	got := RecommendPathType(up, concepts.PathChallenge, s)
	if got != concepts.PathLogic {
		t.Fatalf("got %q, want logic for a struggling beginner", got)
	}
}

func TestRecommendPathType_BeginnerGetsLogic(t *testing.T) {
	got := RecommendPathType(nil, "", nil)
	if got != concepts.PathLogic {
		t.Fatalf("got %q, want logic", got)
	}
}

func TestRecommendPathType_AdvancedGetsChallenge(t *testing.T) {
	up := progress.NewUserProgress("ama")
	for _, id := range []string{"sequencing", "loops", "variables", "conditionals", "events"} {
		up.Proficiency[id] = 0.9
		up.Mastered[id] = true
	}
	got := RecommendPathType(up, "", nil)
	if got != concepts.PathChallenge {
		t.Fatalf("got %q, want challenge", got)
	}
}

func TestRecommendPathType_LowEngagementGetsCreativity(t *testing.T) {
	up := progress.NewUserProgress("ama")
	up.Proficiency["loops"] = 0.5
	up.Mastered["sequencing"] = true

	s := session.New("ama", time.Now())
	// No attempts: neither struggling nor excelling, engagement stays 0.
	got := RecommendPathType(up, "", s)
	if got != concepts.PathCreativity {
		t.Fatalf("got %q, want creativity", got)
	}
}

func TestRecommendPathType_TieBreaksTowardLogic(t *testing.T) {
	// Mid-band proficiency scores logic and creativity one point each;
	// the tie must resolve to logic.
	up := progress.NewUserProgress("ama")
	up.Proficiency["loops"] = 0.5
	up.Mastered["sequencing"] = true

	got := RecommendPathType(up, "", nil)
	if got != concepts.PathLogic {
		t.Fatalf("got %q, want logic", got)
	}
}
