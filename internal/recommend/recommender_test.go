package recommend

import (
	"testing"

	"github.com/asante/codeweave/internal/concepts"
	"github.com/asante/codeweave/internal/progress"
)

func TestRank_WeakAreaVsPreferredPath(t *testing.T) {
	// loops is weak (0.1), patterns is strong (0.9), and the creativity
	// path favors pattern-flavored types. The weak-area term lifts the
	// loops-related types, but the 1.5× path boost pushes
	// pattern_creation (related to both) to the top. Exact expected
	// ranking, not just "some order":
	//
	//   pattern_creation  (0.47+0.23) × 1.5 = 1.05
	//   block_puzzle       0.47  (loops term only)
	//   code_tracing       0.47  (tie → first-seen order)
	//   story_builder      0.23 × 1.5 = 0.345
	//   free_build         0.23 × 1.5 = 0.345 (tie → first-seen order)
	got := Rank(RankInput{
		Proficiency: map[string]float64{
			"loops":    0.1,
			"patterns": 0.9,
		},
		PreferredPath: concepts.PathCreativity,
		Count:         5,
	})

	want := []concepts.ChallengeType{
		concepts.ChallengePatternCreation,
		concepts.ChallengeBlockPuzzle,
		concepts.ChallengeCodeTracing,
		concepts.ChallengeStoryBuilder,
		concepts.ChallengeFreeBuild,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d types, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rank[%d] = %s, want %s (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestRank_RecentRepetitionDamped(t *testing.T) {
	prof := map[string]float64{"loops": 0.1}

	fresh := Rank(RankInput{Proficiency: prof, Count: 1})
	if fresh[0] != concepts.ChallengePatternCreation {
		t.Fatalf("baseline top = %s, want pattern_creation", fresh[0])
	}

	damped := Rank(RankInput{
		Proficiency:      prof,
		RecentChallenges: []concepts.ChallengeType{concepts.ChallengePatternCreation},
		Count:            1,
	})
	if damped[0] == concepts.ChallengePatternCreation {
		t.Error("recently attempted type still ranked first")
	}
}

func TestRank_InProgressBoost(t *testing.T) {
	up := progress.NewUserProgress("u1")
	up.InProgress["debugging"] = true

	prof := map[string]float64{"conditionals": 0.5, "debugging": 0.5}

	got := Rank(RankInput{Proficiency: prof, Progress: up, Count: 2})
	// debugging and code_tracing both relate to conditionals+debugging
	// (score 0.7 each); quiz relates only to conditionals (0.35). The
	// 1.3× in-progress boost applies equally, so first-seen order
	// decides: code_tracing precedes debugging in the catalog.
	if got[0] != concepts.ChallengeCodeTracing || got[1] != concepts.ChallengeDebugging {
		t.Errorf("got %v, want [code_tracing debugging]", got)
	}
}

func TestRank_AllMasteredDamped(t *testing.T) {
	up := progress.NewUserProgress("u1")
	// Master every concept related to quiz.
	for _, c := range concepts.ConceptsForChallengeType(concepts.ChallengeQuiz) {
		up.Mastered[c.ID] = true
		up.Proficiency[c.ID] = 0.9
	}

	prof := map[string]float64{"conditionals": 0.9}

	withoutProgress := Rank(RankInput{Proficiency: prof, Count: 8})
	withProgress := Rank(RankInput{Proficiency: prof, Progress: up, Count: 8})

	posWithout := indexOf(withoutProgress, concepts.ChallengeQuiz)
	posWith := indexOf(withProgress, concepts.ChallengeQuiz)
	if posWith < posWithout {
		t.Errorf("fully mastered type improved its rank: %d → %d", posWithout, posWith)
	}
}

func TestRank_CountBound(t *testing.T) {
	got := Rank(RankInput{Proficiency: map[string]float64{"loops": 0.5}, Count: 3})
	if len(got) != 3 {
		t.Errorf("got %d types, want 3", len(got))
	}
}

func TestRank_EmptyProficiencyStillAnswers(t *testing.T) {
	// No data must still yield a usable (generic) answer.
	got := Rank(RankInput{Count: 4})
	if len(got) != 4 {
		t.Fatalf("got %d types, want 4", len(got))
	}
	// All scores zero → pure first-seen order.
	if got[0] != concepts.ChallengeBlockPuzzle {
		t.Errorf("first = %s, want block_puzzle (first-seen)", got[0])
	}
}

func indexOf(list []concepts.ChallengeType, ct concepts.ChallengeType) int {
	for i, v := range list {
		if v == ct {
			return i
		}
	}
	return len(list)
}
