package recommend

import (
	"sort"

	"github.com/asante/codeweave/internal/concepts"
	"github.com/asante/codeweave/internal/pacing"
	"github.com/asante/codeweave/internal/progress"
)

// SequenceEntry is one step in a generated challenge sequence.
type SequenceEntry struct {
	ConceptID  string
	Type       concepts.ChallengeType
	Difficulty int
}

// defaultSequenceDifficulty is used when the caller opts out of
// proficiency-adapted difficulty.
const defaultSequenceDifficulty = 2

// GenerateSequence builds an ordered run of challenge entries toward a
// target concept: the target and its direct prerequisites, weakest
// proficiency first, then filler entries on the target at climbing
// difficulty until count is met.
//
// An unknown target yields an empty sequence.
func GenerateSequence(up *progress.UserProgress, targetConcept string, count int, pathType concepts.PathType, adaptToDifficulty bool) []SequenceEntry {
	if count <= 0 || !concepts.Known(targetConcept) {
		return nil
	}

	ids := append(concepts.PrerequisiteIDs(targetConcept), targetConcept)
	sort.SliceStable(ids, func(i, j int) bool {
		return up.ProficiencyFor(ids[i]) < up.ProficiencyFor(ids[j])
	})

	if len(ids) > count {
		ids = ids[:count]
	}

	var seq []SequenceEntry
	for _, id := range ids {
		seq = append(seq, SequenceEntry{
			ConceptID:  id,
			Type:       typeForConcept(id, pathType),
			Difficulty: entryDifficulty(up.ProficiencyFor(id), pathType, adaptToDifficulty),
		})
	}

	// Fill remaining slots with the target at increasing difficulty.
	base := entryDifficulty(up.ProficiencyFor(targetConcept), pathType, adaptToDifficulty)
	for i := 1; len(seq) < count; i++ {
		seq = append(seq, SequenceEntry{
			ConceptID:  targetConcept,
			Type:       typeForConcept(targetConcept, pathType),
			Difficulty: clampDifficulty(base + i),
		})
	}

	return seq
}

// entryDifficulty derives a difficulty from proficiency bands, bumped
// one level on challenge-flavored paths.
func entryDifficulty(p float64, pathType concepts.PathType, adapt bool) int {
	d := defaultSequenceDifficulty
	if adapt {
		switch {
		case p < 0.3:
			d = 1
		case p < 0.6:
			d = 2
		case p < 0.9:
			d = 3
		default:
			d = 4
		}
	}
	if pathType == concepts.PathChallenge {
		d++
	}
	return clampDifficulty(d)
}

// typeForConcept picks a challenge type for a concept, preferring the
// path's favored types when one matches.
func typeForConcept(conceptID string, pathType concepts.PathType) concepts.ChallengeType {
	related := concepts.RelatedChallengeTypes(conceptID)
	if len(related) == 0 {
		return concepts.ChallengeBlockPuzzle
	}
	if pathType != "" {
		for _, ct := range related {
			if pathType.Favors(ct) {
				return ct
			}
		}
	}
	return related[0]
}

func clampDifficulty(d int) int {
	if d < pacing.MinDifficulty {
		return pacing.MinDifficulty
	}
	if d > pacing.MaxDifficulty {
		return pacing.MaxDifficulty
	}
	return d
}
