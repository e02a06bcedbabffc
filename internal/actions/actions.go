// Package actions defines the learner action events the engine consumes.
package actions

// Type identifies a kind of learner action.
type Type string

const (
	PatternCreation     Type = "pattern_creation"
	CulturalExploration Type = "cultural_exploration"
	DebugSuccess        Type = "debug_success"
	DebugFailure        Type = "debug_failure"
	StoryProgress       Type = "story_progress"
	BlockConnection     Type = "block_connection"
	ChallengeCompletion Type = "challenge_completion"
)

// AllTypes returns every action type.
func AllTypes() []Type {
	return []Type{
		PatternCreation,
		CulturalExploration,
		DebugSuccess,
		DebugFailure,
		StoryProgress,
		BlockConnection,
		ChallengeCompletion,
	}
}

// Known reports whether t is a recognized action type.
func Known(t Type) bool {
	for _, k := range AllTypes() {
		if k == t {
			return true
		}
	}
	return false
}

// HintType labels the flavor of a hint the learner viewed.
type HintType string

const (
	HintVisual  HintType = "visual"
	HintVerbal  HintType = "verbal"
	HintLogical HintType = "logical"
)

// Metadata carries the optional measurements attached to an action.
// Zero means "not supplied" for the numeric fields; consumers must not
// read meaning into an absent measurement.
type Metadata struct {
	// CompletionTimeSeconds is how long a challenge took, when known.
	CompletionTimeSeconds int

	// Attempts is how many tries the challenge took, when known.
	Attempts int

	// BlockCount is the size of the submitted block program, when known.
	BlockCount int

	// Shared is true when the learner shared their creation.
	Shared bool

	// ViewedHint is true when the learner viewed a hint; HintType then
	// says which flavor.
	ViewedHint bool
	HintType   HintType
}
