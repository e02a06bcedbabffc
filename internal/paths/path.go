// Package paths assembles and personalizes ordered learning paths over
// the concept catalog.
package paths

import (
	"context"
	"time"

	"github.com/asante/codeweave/internal/concepts"
)

// Item is one step in a learning path.
type Item struct {
	ConceptID     string                 `json:"conceptId"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	ChallengeType concepts.ChallengeType `json:"challengeType"`
	Difficulty    int                    `json:"difficulty"`

	// Enrichment is the cultural/narrative framing for this step,
	// supplied by the enrichment collaborator. Empty when unavailable.
	Enrichment string `json:"enrichment,omitempty"`
}

// Path is an ordered sequence of items for one user.
type Path struct {
	UserID      string            `json:"userId"`
	Type        concepts.PathType `json:"type"`
	Items       []Item            `json:"items"`
	GeneratedAt time.Time         `json:"generatedAt"`
}

// Enricher supplies cultural/narrative content for a concept. It is an
// external collaborator: callers must tolerate errors and empty
// strings, falling back to an unenriched item.
type Enricher interface {
	Enrich(ctx context.Context, c concepts.Concept) (string, error)
}

// Template builds the canonical (unpersonalized) path for a path type:
// every concept in topological order, challenge types chosen from the
// path's favored set where possible.
func Template(pathType concepts.PathType) []Item {
	var items []Item
	for _, c := range concepts.TopologicalOrder() {
		items = append(items, Item{
			ConceptID:     c.ID,
			Title:         c.Name,
			Description:   c.Description,
			ChallengeType: pickType(c, pathType),
			Difficulty:    2,
		})
	}
	return items
}

func pickType(c concepts.Concept, pathType concepts.PathType) concepts.ChallengeType {
	if pathType != "" {
		for _, ct := range c.ChallengeTypes {
			if pathType.Favors(ct) {
				return ct
			}
		}
	}
	if len(c.ChallengeTypes) > 0 {
		return c.ChallengeTypes[0]
	}
	return concepts.ChallengeBlockPuzzle
}
