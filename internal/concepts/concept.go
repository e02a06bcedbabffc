package concepts

// Category groups concepts into curriculum areas.
type Category string

const (
	CategoryFoundations Category = "foundations"
	CategoryControlFlow Category = "control-flow"
	CategoryData        Category = "data-and-state"
	CategoryAbstraction Category = "abstraction"
	CategoryCraft       Category = "craft"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryFoundations,
		CategoryControlFlow,
		CategoryData,
		CategoryAbstraction,
		CategoryCraft,
	}
}

// CategoryDisplayName returns a human-readable name for a category.
func CategoryDisplayName(c Category) string {
	switch c {
	case CategoryFoundations:
		return "Foundations"
	case CategoryControlFlow:
		return "Control Flow"
	case CategoryData:
		return "Data & State"
	case CategoryAbstraction:
		return "Abstraction"
	case CategoryCraft:
		return "Craft"
	default:
		return string(c)
	}
}

// ChallengeType identifies a kind of scored task a learner can attempt.
type ChallengeType string

const (
	ChallengePatternCreation ChallengeType = "pattern_creation"
	ChallengeBlockPuzzle     ChallengeType = "block_puzzle"
	ChallengeCodeTracing     ChallengeType = "code_tracing"
	ChallengeDebugging       ChallengeType = "debugging"
	ChallengeStoryBuilder    ChallengeType = "story_builder"
	ChallengeRemix           ChallengeType = "remix"
	ChallengeQuiz            ChallengeType = "quiz"
	ChallengeFreeBuild       ChallengeType = "free_build"
)

// AllChallengeTypes returns every challenge type in declaration order.
// This order is the stable tie-break for recommendation ranking.
func AllChallengeTypes() []ChallengeType {
	return []ChallengeType{
		ChallengePatternCreation,
		ChallengeBlockPuzzle,
		ChallengeCodeTracing,
		ChallengeDebugging,
		ChallengeStoryBuilder,
		ChallengeRemix,
		ChallengeQuiz,
		ChallengeFreeBuild,
	}
}

// PathType identifies the flavor of a personalized learning path.
type PathType string

const (
	PathLogic      PathType = "logic"
	PathCreativity PathType = "creativity"
	PathChallenge  PathType = "challenge"
)

// AllPathTypes returns path types in tie-break precedence order
// (logic beats creativity beats challenge on equal scores).
func AllPathTypes() []PathType {
	return []PathType{PathLogic, PathCreativity, PathChallenge}
}

// ParsePathType maps a stored label to a PathType, defaulting to logic
// for unknown or legacy labels.
func ParsePathType(s string) PathType {
	switch s {
	case "logic", "logic-based":
		return PathLogic
	case "creativity", "creativity-based", "creative":
		return PathCreativity
	case "challenge", "challenge-based":
		return PathChallenge
	default:
		return PathLogic
	}
}

// FavoredChallengeTypes returns the challenge types a path type leans on.
func (p PathType) FavoredChallengeTypes() []ChallengeType {
	switch p {
	case PathLogic:
		return []ChallengeType{ChallengeCodeTracing, ChallengeDebugging, ChallengeBlockPuzzle}
	case PathCreativity:
		return []ChallengeType{ChallengePatternCreation, ChallengeStoryBuilder, ChallengeFreeBuild, ChallengeRemix}
	case PathChallenge:
		return []ChallengeType{ChallengeQuiz, ChallengeBlockPuzzle, ChallengeDebugging}
	default:
		return nil
	}
}

// Favors reports whether ct is in the path's favored set.
func (p PathType) Favors(ct ChallengeType) bool {
	for _, f := range p.FavoredChallengeTypes() {
		if f == ct {
			return true
		}
	}
	return false
}

// Concept represents a single learnable unit in the curriculum graph.
type Concept struct {
	ID             string
	Name           string
	Description    string
	Category       Category
	Prerequisites  []string
	ChallengeTypes []ChallengeType
	Keywords       []string
}
