package paths

import (
	"sort"

	"github.com/asante/codeweave/internal/concepts"
	"github.com/asante/codeweave/internal/progress"
	"github.com/asante/codeweave/internal/session"
)

// Personalize orders a template path for one user. Without progress it
// returns the items unchanged.
//
// The order is a total order via sequential tie-break, not a weighted
// score: mastered concepts sort first (quick wins and review), then
// in-progress concepts (momentum), then everything else by prerequisite
// count ascending (shallower concepts before deeper ones).
func Personalize(items []Item, up *progress.UserProgress) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	if up == nil {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]

		am, bm := up.Mastered[a.ConceptID], up.Mastered[b.ConceptID]
		if am != bm {
			return am
		}

		ap, bp := up.InProgress[a.ConceptID], up.InProgress[b.ConceptID]
		if ap != bp {
			return ap
		}

		return len(concepts.PrerequisiteIDs(a.ConceptID)) < len(concepts.PrerequisiteIDs(b.ConceptID))
	})
	return out
}

// Path-type scoring weights for RecommendPathType.
const (
	lowProficiencyBand  = 0.3
	highProficiencyBand = 0.7
)

// RecommendPathType picks a path type for the user. An explicit
// preference wins unless the session shows the user struggling; in that
// case (or with no preference) three additive scores decide, with ties
// breaking logic > creativity > challenge.
func RecommendPathType(up *progress.UserProgress, preference concepts.PathType, s *session.Session) concepts.PathType {
	if preference != "" && (s == nil || !s.IsUserStruggling()) {
		return preference
	}

	scores := map[concepts.PathType]int{}

	// Average proficiency band.
	avg := averageProficiency(up)
	switch {
	case avg < lowProficiencyBand:
		scores[concepts.PathLogic] += 2
	case avg < highProficiencyBand:
		scores[concepts.PathLogic]++
		scores[concepts.PathCreativity]++
	default:
		scores[concepts.PathChallenge] += 2
	}

	// Session signals.
	if s != nil {
		if s.IsUserStruggling() {
			scores[concepts.PathLogic] += 2
		}
		if s.IsUserExcelling() {
			scores[concepts.PathChallenge] += 2
		}
		if s.EngagementScore < 0.3 {
			scores[concepts.PathCreativity] += 2
		}
		if s.MasteryLevel > highProficiencyBand {
			scores[concepts.PathChallenge]++
		}
	}

	// Track record.
	if up != nil {
		if len(up.CompletedChallenges) >= 20 {
			scores[concepts.PathChallenge]++
		}
		switch {
		case len(up.Mastered) >= 5:
			scores[concepts.PathChallenge]++
		case len(up.Mastered) == 0:
			scores[concepts.PathLogic]++
		}
	}

	// AllPathTypes is in tie-break precedence order; strict > keeps the
	// earlier type on equal scores.
	best := concepts.AllPathTypes()[0]
	for _, pt := range concepts.AllPathTypes()[1:] {
		if scores[pt] > scores[best] {
			best = pt
		}
	}
	return best
}

func averageProficiency(up *progress.UserProgress) float64 {
	if up == nil || len(up.Proficiency) == 0 {
		return 0
	}
	total := 0.0
	for _, p := range up.Proficiency {
		total += p
	}
	return total / float64(len(up.Proficiency))
}
