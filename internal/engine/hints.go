package engine

import (
	"context"

	"github.com/asante/codeweave/internal/actions"
	"github.com/asante/codeweave/internal/learnstyle"
)

// Hint priority tiers on the [0,10] scale.
const (
	hintPriorityPrimary     = 9
	hintPrioritySignificant = 6
	hintPriorityDefault     = 3
)

// hintAffinity maps each learning style to the hint flavor that serves
// it best. Practical learners respond to shown examples, social
// learners to talked-through help, reflective learners to reasoning.
var hintAffinity = map[learnstyle.Style]actions.HintType{
	learnstyle.Visual:     actions.HintVisual,
	learnstyle.Logical:    actions.HintLogical,
	learnstyle.Practical:  actions.HintVisual,
	learnstyle.Verbal:     actions.HintVerbal,
	learnstyle.Social:     actions.HintVerbal,
	learnstyle.Reflective: actions.HintLogical,
}

// GetHintPriority scores a hint flavor for the user on a 0–10 scale:
// the flavor matching the primary learning style ranks highest, flavors
// matching any other significant style rank above the rest. Unknown
// hint types score zero.
func (e *Engine) GetHintPriority(ctx context.Context, userID string, hintType actions.HintType) (int, error) {
	switch hintType {
	case actions.HintVisual, actions.HintVerbal, actions.HintLogical:
	default:
		return 0, nil
	}

	up, err := e.progress.Load(ctx, userID)
	if err != nil {
		return 0, err
	}

	cls := learnstyle.FromPoints(up.StylePoints)
	if hintAffinity[cls.PrimaryStyle()] == hintType {
		return hintPriorityPrimary, nil
	}
	for _, s := range cls.SignificantStyles() {
		if hintAffinity[s] == hintType {
			return hintPrioritySignificant, nil
		}
	}
	return hintPriorityDefault, nil
}
