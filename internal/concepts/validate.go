package concepts

import (
	"fmt"
	"strings"
)

// validateConcepts performs all structural checks on the given catalog.
// Returns a combined error describing all problems found, or nil if valid.
func validateConcepts(concepts []Concept) error {
	var errs []string

	idSet := make(map[string]bool, len(concepts))
	catSet := make(map[Category]bool)

	// Duplicate IDs.
	for _, c := range concepts {
		if idSet[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate concept ID: %q", c.ID))
		}
		idSet[c.ID] = true
		catSet[c.Category] = true
	}

	// Dangling prerequisites.
	for _, c := range concepts {
		for _, prereqID := range c.Prerequisites {
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("concept %q references nonexistent prerequisite %q", c.ID, prereqID))
			}
		}
	}

	// Cycle check via Kahn's algorithm.
	inDegree := make(map[string]int, len(concepts))
	adjList := make(map[string][]string)
	for _, c := range concepts {
		inDegree[c.ID] = len(c.Prerequisites)
		for _, prereqID := range c.Prerequisites {
			adjList[prereqID] = append(adjList[prereqID], c.ID)
		}
	}

	var queue []string
	for _, c := range concepts {
		if inDegree[c.ID] == 0 {
			queue = append(queue, c.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adjList[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(concepts) {
		var cycleNodes []string
		for _, c := range concepts {
			if inDegree[c.ID] > 0 {
				cycleNodes = append(cycleNodes, c.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving concepts: %s", strings.Join(cycleNodes, ", ")))
	}

	// At least one root.
	hasRoot := false
	for _, c := range concepts {
		if len(c.Prerequisites) == 0 {
			hasRoot = true
			break
		}
	}
	if !hasRoot {
		errs = append(errs, "no root concepts found (at least one concept must have no prerequisites)")
	}

	// All declared categories populated.
	for _, cat := range AllCategories() {
		if !catSet[cat] {
			errs = append(errs, fmt.Sprintf("category %q has no concepts", cat))
		}
	}

	// Every concept needs at least one challenge type, all of them known.
	known := make(map[ChallengeType]bool)
	for _, ct := range AllChallengeTypes() {
		known[ct] = true
	}
	for _, c := range concepts {
		if len(c.ChallengeTypes) == 0 {
			errs = append(errs, fmt.Sprintf("concept %q has no challenge types", c.ID))
		}
		for _, ct := range c.ChallengeTypes {
			if !known[ct] {
				errs = append(errs, fmt.Sprintf("concept %q references unknown challenge type %q", c.ID, ct))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("concept catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
