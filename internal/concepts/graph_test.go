package concepts

import (
	"testing"
)

func TestGet_Exists(t *testing.T) {
	c, err := Get("loops")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "Loops" {
		t.Errorf("got name %q, want %q", c.Name, "Loops")
	}
	if c.Category != CategoryControlFlow {
		t.Errorf("got category %q, want %q", c.Category, CategoryControlFlow)
	}
}

func TestGet_NotFound(t *testing.T) {
	_, err := Get("nonexistent")
	if err == nil {
		t.Fatal("expected error for nonexistent concept, got nil")
	}
}

func TestAll_Count(t *testing.T) {
	all := All()
	if len(all) != 12 {
		t.Errorf("got %d concepts, want 12", len(all))
	}
}

func TestRoots(t *testing.T) {
	roots := Roots()
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(roots))
	}
	if roots[0].ID != "sequencing" {
		t.Errorf("root = %q, want sequencing", roots[0].ID)
	}
}

func TestTopologicalOrder_PrereqsFirst(t *testing.T) {
	order := TopologicalOrder()
	pos := make(map[string]int, len(order))
	for i, c := range order {
		pos[c.ID] = i
	}
	for _, c := range order {
		for _, prereq := range c.Prerequisites {
			if pos[prereq] >= pos[c.ID] {
				t.Errorf("concept %q appears before prerequisite %q", c.ID, prereq)
			}
		}
	}
}

func TestIsUnlocked(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		mastered map[string]bool
		want     bool
	}{
		{"root always unlocked", "sequencing", nil, true},
		{"prereq missing", "loops", nil, false},
		{"prereq mastered", "loops", map[string]bool{"sequencing": true}, true},
		{"partial prereqs", "patterns", map[string]bool{"nested_loops": true}, false},
		{"unknown concept", "nonexistent", map[string]bool{"sequencing": true}, false},
	}
	for _, tt := range tests {
		if got := IsUnlocked(tt.id, tt.mastered); got != tt.want {
			t.Errorf("%s: IsUnlocked(%q) = %v, want %v", tt.name, tt.id, got, tt.want)
		}
	}
}

func TestAvailable_ExcludesMasteredAndLocked(t *testing.T) {
	mastered := map[string]bool{"sequencing": true}
	available := Available(mastered)
	for _, c := range available {
		if mastered[c.ID] {
			t.Errorf("mastered concept %q in available set", c.ID)
		}
		if !IsUnlocked(c.ID, mastered) {
			t.Errorf("locked concept %q in available set", c.ID)
		}
	}
	// loops, conditionals, variables, events unlock after sequencing.
	if len(available) != 4 {
		t.Errorf("got %d available concepts, want 4", len(available))
	}
}

func TestConceptsForChallengeType(t *testing.T) {
	cs := ConceptsForChallengeType(ChallengePatternCreation)
	if len(cs) == 0 {
		t.Fatal("no concepts for pattern_creation")
	}
	for _, c := range cs {
		found := false
		for _, ct := range c.ChallengeTypes {
			if ct == ChallengePatternCreation {
				found = true
			}
		}
		if !found {
			t.Errorf("concept %q lacks pattern_creation", c.ID)
		}
	}
}

func TestDependents(t *testing.T) {
	deps := Dependents("loops")
	want := map[string]bool{"nested_loops": true, "lists": true, "functions": true}
	if len(deps) != len(want) {
		t.Fatalf("got %d dependents, want %d", len(deps), len(want))
	}
	for _, d := range deps {
		if !want[d.ID] {
			t.Errorf("unexpected dependent %q", d.ID)
		}
	}
}

func TestValidate_Seed(t *testing.T) {
	if err := Validate(); err != nil {
		t.Errorf("seed catalog invalid: %v", err)
	}
}

func TestValidateConcepts_Errors(t *testing.T) {
	bad := []Concept{
		{ID: "a", Category: CategoryFoundations, Prerequisites: []string{"missing"}, ChallengeTypes: []ChallengeType{ChallengeQuiz}},
		{ID: "a", Category: CategoryFoundations, ChallengeTypes: []ChallengeType{ChallengeQuiz}},
	}
	if err := validateConcepts(bad); err == nil {
		t.Error("expected validation error for duplicate ID and dangling prerequisite")
	}

	cycle := []Concept{
		{ID: "x", Category: CategoryFoundations, Prerequisites: []string{"y"}, ChallengeTypes: []ChallengeType{ChallengeQuiz}},
		{ID: "y", Category: CategoryFoundations, Prerequisites: []string{"x"}, ChallengeTypes: []ChallengeType{ChallengeQuiz}},
	}
	if err := validateConcepts(cycle); err == nil {
		t.Error("expected validation error for cycle")
	}
}

func TestParsePathType(t *testing.T) {
	tests := []struct {
		in   string
		want PathType
	}{
		{"logic", PathLogic},
		{"logic-based", PathLogic},
		{"creativity-based", PathCreativity},
		{"creative", PathCreativity},
		{"challenge", PathChallenge},
		{"bogus", PathLogic},
	}
	for _, tt := range tests {
		if got := ParsePathType(tt.in); got != tt.want {
			t.Errorf("ParsePathType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
