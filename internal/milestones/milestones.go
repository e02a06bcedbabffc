// Package milestones defines the reward catalog and evaluates it
// against a user's durable progress counters.
package milestones

import (
	"github.com/asante/codeweave/internal/progress"
)

// RequirementType names the counter a milestone requirement reads.
type RequirementType string

const (
	ReqStoryCount          RequirementType = "story_count"
	ReqPatternCount        RequirementType = "pattern_count"
	ReqChallengeCount      RequirementType = "challenge_count"
	ReqConceptMastery      RequirementType = "concept_mastery"
	ReqStreak              RequirementType = "streak"
	ReqCulturalExploration RequirementType = "cultural_exploration"
	ReqLevel               RequirementType = "level"
)

// Requirement is the condition side of a milestone: one counter, one
// threshold. Satisfied when the counter reaches Value.
type Requirement struct {
	Type  RequirementType `json:"type"`
	Value int             `json:"value"`
}

// Reward is what completing a milestone grants.
type Reward struct {
	XP      int    `json:"xp"`
	BadgeID string `json:"badgeId"`
}

// Milestone is one entry in the reward catalog.
type Milestone struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Requirement Requirement `json:"requirement"`
	Reward      Reward      `json:"reward"`
}

// counterFor reads the progress counter a requirement type watches.
// Unknown types read as zero, so a malformed milestone can never fire.
func counterFor(rt RequirementType, up *progress.UserProgress) int {
	switch rt {
	case ReqStoryCount:
		return len(up.CompletedStories)
	case ReqPatternCount:
		return up.PatternsCreated
	case ReqChallengeCount:
		return len(up.CompletedChallenges)
	case ReqConceptMastery:
		return len(up.Mastered)
	case ReqStreak:
		return up.Streak
	case ReqCulturalExploration:
		return up.CulturalExplorations
	case ReqLevel:
		return up.Level
	default:
		return 0
	}
}

// Satisfied reports whether the milestone's requirement is met.
func (m Milestone) Satisfied(up *progress.UserProgress) bool {
	return counterFor(m.Requirement.Type, up) >= m.Requirement.Value
}

// Evaluate walks the catalog and completes every newly satisfied
// milestone: the ID enters CompletedMilestones and the reward XP is
// granted. Already-completed milestones are skipped, so re-running with
// unchanged counters awards nothing.
func Evaluate(up *progress.UserProgress) []Milestone {
	var completed []Milestone
	for _, m := range Catalog() {
		if up.CompletedMilestones[m.ID] {
			continue
		}
		if !m.Satisfied(up) {
			continue
		}
		up.CompletedMilestones[m.ID] = true
		up.AddXP(m.Reward.XP)
		completed = append(completed, m)
	}
	return completed
}

// BadgeIDs returns the badge IDs of the user's completed milestones,
// in catalog order.
func BadgeIDs(up *progress.UserProgress) []string {
	var badges []string
	for _, m := range Catalog() {
		if up.CompletedMilestones[m.ID] && m.Reward.BadgeID != "" {
			badges = append(badges, m.Reward.BadgeID)
		}
	}
	return badges
}
