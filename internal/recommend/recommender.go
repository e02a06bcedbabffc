// Package recommend scores candidate challenge types against a
// learner's skill gaps and ranks personalized challenge sequences.
package recommend

import (
	"sort"

	"github.com/asante/codeweave/internal/concepts"
	"github.com/asante/codeweave/internal/progress"
)

// Scoring weights. The base term biases toward weak areas while still
// reinforcing strengths; the multipliers layer preference, momentum,
// saturation and anti-repetition on top.
const (
	gapWeight           = 0.5
	reinforceWeight     = 0.2
	preferredPathBoost  = 1.5
	inProgressBoost     = 1.3
	allMasteredDamping  = 0.7
	recentRepeatDamping = 0.5
)

// RankInput carries everything the ranking considers.
type RankInput struct {
	// Proficiency maps concept IDs to [0,1] proficiency. Only concepts
	// present here contribute to the base score.
	Proficiency map[string]float64

	// PreferredPath, when non-empty, boosts that path's favored types.
	PreferredPath concepts.PathType

	// Progress, when non-nil, supplies the in-progress and mastered
	// sets for the momentum and saturation multipliers.
	Progress *progress.UserProgress

	// RecentChallenges dampens types attempted recently.
	RecentChallenges []concepts.ChallengeType

	// Count bounds the returned list.
	Count int
}

// Rank scores every challenge type in the concept catalog and returns
// the top Count, descending by score. Ties keep the first-seen order of
// the catalog's concept→type table, so equal-scored types rank
// deterministically.
func Rank(in RankInput) []concepts.ChallengeType {
	candidates := firstSeenTypes()

	recent := make(map[concepts.ChallengeType]bool, len(in.RecentChallenges))
	for _, ct := range in.RecentChallenges {
		recent[ct] = true
	}

	scores := make(map[concepts.ChallengeType]float64, len(candidates))
	for _, ct := range candidates {
		related := concepts.ConceptsForChallengeType(ct)

		score := 0.0
		for _, c := range related {
			p, ok := in.Proficiency[c.ID]
			if !ok {
				continue
			}
			score += (1-p)*gapWeight + p*reinforceWeight
		}

		if in.PreferredPath != "" && in.PreferredPath.Favors(ct) {
			score *= preferredPathBoost
		}

		if in.Progress != nil {
			allMastered := len(related) > 0
			for _, c := range related {
				if in.Progress.InProgress[c.ID] {
					score *= inProgressBoost
				}
				if !in.Progress.Mastered[c.ID] {
					allMastered = false
				}
			}
			if allMastered {
				score *= allMasteredDamping
			}
		}

		if recent[ct] {
			score *= recentRepeatDamping
		}

		scores[ct] = score
	}

	// Stable sort keeps first-seen order on ties.
	ranked := make([]concepts.ChallengeType, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})

	if in.Count > 0 && in.Count < len(ranked) {
		ranked = ranked[:in.Count]
	}
	return ranked
}

// firstSeenTypes returns every challenge type in the order it first
// appears while walking the concept catalog.
func firstSeenTypes() []concepts.ChallengeType {
	seen := make(map[concepts.ChallengeType]bool)
	var out []concepts.ChallengeType
	for _, c := range concepts.All() {
		for _, ct := range c.ChallengeTypes {
			if !seen[ct] {
				seen[ct] = true
				out = append(out, ct)
			}
		}
	}
	return out
}
