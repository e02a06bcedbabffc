package concepts

import (
	"fmt"
	"slices"
	"sort"
)

// graph holds the concept DAG with precomputed indices.
type graph struct {
	concepts   []Concept
	byID       map[string]*Concept
	byCategory map[Category][]Concept
	roots      []Concept
	dependents map[string][]string
	topoOrder  []Concept
	topoIndex  map[string]int
}

// g is the package-level graph singleton, set by init() in seed.go.
var g *graph

// buildGraph constructs the graph from a slice of concepts.
// It builds all indices including topological order (Kahn's algorithm).
func buildGraph(concepts []Concept) *graph {
	gr := &graph{
		concepts:   concepts,
		byID:       make(map[string]*Concept, len(concepts)),
		byCategory: make(map[Category][]Concept),
		dependents: make(map[string][]string),
		topoIndex:  make(map[string]int, len(concepts)),
	}

	for i := range gr.concepts {
		gr.byID[gr.concepts[i].ID] = &gr.concepts[i]
	}

	// Reverse edges (dependents).
	for i := range gr.concepts {
		for _, prereqID := range gr.concepts[i].Prerequisites {
			gr.dependents[prereqID] = append(gr.dependents[prereqID], gr.concepts[i].ID)
		}
	}

	// Topological sort (Kahn's algorithm).
	inDegree := make(map[string]int, len(concepts))
	for i := range concepts {
		inDegree[concepts[i].ID] = len(concepts[i].Prerequisites)
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	// Sort initial queue for deterministic ordering.
	sort.Strings(queue)

	var topoOrder []Concept
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		c := gr.byID[id]
		topoOrder = append(topoOrder, *c)

		deps := gr.dependents[id]
		sorted := make([]string, len(deps))
		copy(sorted, deps)
		sort.Strings(sorted)
		for _, depID := range sorted {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	gr.topoOrder = topoOrder
	for i, c := range gr.topoOrder {
		gr.topoIndex[c.ID] = i
	}

	for i := range gr.concepts {
		if len(gr.concepts[i].Prerequisites) == 0 {
			gr.roots = append(gr.roots, gr.concepts[i])
		}
	}

	// Group by category, sorted by topological position.
	catGroups := make(map[Category][]Concept)
	for i := range gr.concepts {
		c := gr.concepts[i]
		catGroups[c.Category] = append(catGroups[c.Category], c)
	}
	for cat, cs := range catGroups {
		sorted := make([]Concept, len(cs))
		copy(sorted, cs)
		sort.Slice(sorted, func(i, j int) bool {
			return gr.topoIndex[sorted[i].ID] < gr.topoIndex[sorted[j].ID]
		})
		gr.byCategory[cat] = sorted
	}

	return gr
}

// Get returns a concept by ID, or an error if not found.
func Get(id string) (Concept, error) {
	c, ok := g.byID[id]
	if !ok {
		return Concept{}, fmt.Errorf("concept not found: %q", id)
	}
	return *c, nil
}

// Known reports whether a concept ID exists in the catalog.
func Known(id string) bool {
	_, ok := g.byID[id]
	return ok
}

// All returns all concepts in the graph.
func All() []Concept {
	return slices.Clone(g.concepts)
}

// ByCategory returns all concepts in a category, in topological order.
func ByCategory(cat Category) []Concept {
	return slices.Clone(g.byCategory[cat])
}

// Roots returns all concepts with no prerequisites.
func Roots() []Concept {
	return slices.Clone(g.roots)
}

// Prerequisites returns the direct prerequisite concepts for a concept ID.
// Unknown IDs yield an empty slice.
func Prerequisites(id string) []Concept {
	c, ok := g.byID[id]
	if !ok {
		return nil
	}
	result := make([]Concept, 0, len(c.Prerequisites))
	for _, prereqID := range c.Prerequisites {
		if p, ok := g.byID[prereqID]; ok {
			result = append(result, *p)
		}
	}
	return result
}

// PrerequisiteIDs returns the direct prerequisite IDs for a concept ID.
func PrerequisiteIDs(id string) []string {
	c, ok := g.byID[id]
	if !ok {
		return nil
	}
	return slices.Clone(c.Prerequisites)
}

// Dependents returns concepts that directly depend on the given concept ID.
func Dependents(id string) []Concept {
	depIDs := g.dependents[id]
	result := make([]Concept, 0, len(depIDs))
	for _, depID := range depIDs {
		if c, ok := g.byID[depID]; ok {
			result = append(result, *c)
		}
	}
	return result
}

// IsUnlocked returns true if all prerequisites of the concept are in the
// mastered set. Unknown concepts are never unlocked.
func IsUnlocked(id string, mastered map[string]bool) bool {
	c, ok := g.byID[id]
	if !ok {
		return false
	}
	for _, prereqID := range c.Prerequisites {
		if !mastered[prereqID] {
			return false
		}
	}
	return true
}

// Available returns all concepts that are unlocked but not yet mastered,
// in topological order.
func Available(mastered map[string]bool) []Concept {
	var result []Concept
	for _, c := range g.topoOrder {
		if !mastered[c.ID] && IsUnlocked(c.ID, mastered) {
			result = append(result, c)
		}
	}
	return result
}

// RelatedChallengeTypes returns the challenge types associated with a concept.
func RelatedChallengeTypes(id string) []ChallengeType {
	c, ok := g.byID[id]
	if !ok {
		return nil
	}
	return slices.Clone(c.ChallengeTypes)
}

// ConceptsForChallengeType returns all concepts whose related challenge type
// set contains ct, in topological order.
func ConceptsForChallengeType(ct ChallengeType) []Concept {
	var result []Concept
	for _, c := range g.topoOrder {
		for _, t := range c.ChallengeTypes {
			if t == ct {
				result = append(result, c)
				break
			}
		}
	}
	return result
}

// TopologicalOrder returns all concepts in a valid topological order.
func TopologicalOrder() []Concept {
	return slices.Clone(g.topoOrder)
}

// Validate checks the catalog for structural issues.
func Validate() error {
	return validateConcepts(g.concepts)
}
