package concepts

func init() {
	g = buildGraph(seedConcepts())
	if err := Validate(); err != nil {
		panic(err)
	}
}

// seedConcepts returns the static concept catalog.
//
// The catalog is the curriculum for the pattern-story coding course:
// learners weave textile patterns out of code blocks, so most concepts
// carry at least one pattern- or story-flavored challenge type alongside
// the purely logical ones.
func seedConcepts() []Concept {
	return []Concept{
		{
			ID:          "sequencing",
			Name:        "Sequencing",
			Description: "Ordering instructions so they run one after another.",
			Category:    CategoryFoundations,
			ChallengeTypes: []ChallengeType{
				ChallengeBlockPuzzle, ChallengeStoryBuilder,
			},
			Keywords: []string{"order", "steps", "first", "next"},
		},
		{
			ID:            "events",
			Name:          "Events",
			Description:   "Starting a program in response to something happening.",
			Category:      CategoryFoundations,
			Prerequisites: []string{"sequencing"},
			ChallengeTypes: []ChallengeType{
				ChallengeBlockPuzzle, ChallengeFreeBuild,
			},
			Keywords: []string{"trigger", "when", "start"},
		},
		{
			ID:            "loops",
			Name:          "Loops",
			Description:   "Repeating instructions to build rhythm and repetition.",
			Category:      CategoryControlFlow,
			Prerequisites: []string{"sequencing"},
			ChallengeTypes: []ChallengeType{
				ChallengePatternCreation, ChallengeBlockPuzzle, ChallengeCodeTracing,
			},
			Keywords: []string{"repeat", "times", "again"},
		},
		{
			ID:            "conditionals",
			Name:          "Conditionals",
			Description:   "Choosing between branches based on a condition.",
			Category:      CategoryControlFlow,
			Prerequisites: []string{"sequencing"},
			ChallengeTypes: []ChallengeType{
				ChallengeCodeTracing, ChallengeQuiz, ChallengeDebugging,
			},
			Keywords: []string{"if", "else", "branch", "decision"},
		},
		{
			ID:            "nested_loops",
			Name:          "Nested Loops",
			Description:   "Loops inside loops for grids and woven rows.",
			Category:      CategoryControlFlow,
			Prerequisites: []string{"loops"},
			ChallengeTypes: []ChallengeType{
				ChallengePatternCreation, ChallengeCodeTracing,
			},
			Keywords: []string{"grid", "rows", "inner", "outer"},
		},
		{
			ID:            "variables",
			Name:          "Variables",
			Description:   "Naming and remembering values as the program runs.",
			Category:      CategoryData,
			Prerequisites: []string{"sequencing"},
			ChallengeTypes: []ChallengeType{
				ChallengeQuiz, ChallengeCodeTracing, ChallengeBlockPuzzle,
			},
			Keywords: []string{"name", "value", "store", "change"},
		},
		{
			ID:            "operators",
			Name:          "Operators",
			Description:   "Combining and comparing values.",
			Category:      CategoryData,
			Prerequisites: []string{"variables"},
			ChallengeTypes: []ChallengeType{
				ChallengeQuiz, ChallengeCodeTracing,
			},
			Keywords: []string{"add", "compare", "greater", "equal"},
		},
		{
			ID:            "lists",
			Name:          "Lists",
			Description:   "Keeping many values in order, like beads on a thread.",
			Category:      CategoryData,
			Prerequisites: []string{"variables", "loops"},
			ChallengeTypes: []ChallengeType{
				ChallengeBlockPuzzle, ChallengeRemix,
			},
			Keywords: []string{"collection", "index", "each"},
		},
		{
			ID:            "functions",
			Name:          "Functions",
			Description:   "Naming a motif once and reusing it everywhere.",
			Category:      CategoryAbstraction,
			Prerequisites: []string{"loops", "variables"},
			ChallengeTypes: []ChallengeType{
				ChallengePatternCreation, ChallengeRemix, ChallengeFreeBuild,
			},
			Keywords: []string{"reuse", "define", "call", "motif"},
		},
		{
			ID:            "parameters",
			Name:          "Parameters",
			Description:   "Making a motif flexible with inputs.",
			Category:      CategoryAbstraction,
			Prerequisites: []string{"functions"},
			ChallengeTypes: []ChallengeType{
				ChallengeRemix, ChallengeQuiz,
			},
			Keywords: []string{"input", "argument", "vary"},
		},
		{
			ID:            "debugging",
			Name:          "Debugging",
			Description:   "Finding and fixing the broken thread in a program.",
			Category:      CategoryCraft,
			Prerequisites: []string{"conditionals"},
			ChallengeTypes: []ChallengeType{
				ChallengeDebugging, ChallengeCodeTracing,
			},
			Keywords: []string{"bug", "fix", "trace", "test"},
		},
		{
			ID:            "patterns",
			Name:          "Patterns",
			Description:   "Composing loops, motifs and symmetry into full designs.",
			Category:      CategoryCraft,
			Prerequisites: []string{"nested_loops", "functions"},
			ChallengeTypes: []ChallengeType{
				ChallengePatternCreation, ChallengeFreeBuild, ChallengeStoryBuilder,
			},
			Keywords: []string{"symmetry", "motif", "design", "weave"},
		},
	}
}
