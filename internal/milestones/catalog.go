package milestones

// Catalog returns the static milestone catalog in award order. Early
// milestones are cheap on purpose: a new learner should hit one within
// the first session or two.
func Catalog() []Milestone {
	return []Milestone{
		{
			ID:          "first_thread",
			Name:        "First Thread",
			Description: "Complete your first challenge.",
			Requirement: Requirement{Type: ReqChallengeCount, Value: 1},
			Reward:      Reward{XP: 25, BadgeID: "badge_first_thread"},
		},
		{
			ID:          "first_story",
			Name:        "Story Weaver",
			Description: "Finish your first pattern story.",
			Requirement: Requirement{Type: ReqStoryCount, Value: 1},
			Reward:      Reward{XP: 25, BadgeID: "badge_story_weaver"},
		},
		{
			ID:          "first_pattern",
			Name:        "Pattern Maker",
			Description: "Create your first pattern.",
			Requirement: Requirement{Type: ReqPatternCount, Value: 1},
			Reward:      Reward{XP: 25, BadgeID: "badge_pattern_maker"},
		},
		{
			ID:          "ten_challenges",
			Name:        "Steady Hands",
			Description: "Complete ten challenges.",
			Requirement: Requirement{Type: ReqChallengeCount, Value: 10},
			Reward:      Reward{XP: 50, BadgeID: "badge_steady_hands"},
		},
		{
			ID:          "first_mastery",
			Name:        "Concept Keeper",
			Description: "Master your first concept.",
			Requirement: Requirement{Type: ReqConceptMastery, Value: 1},
			Reward:      Reward{XP: 50, BadgeID: "badge_concept_keeper"},
		},
		{
			ID:          "five_masteries",
			Name:        "Loom Apprentice",
			Description: "Master five concepts.",
			Requirement: Requirement{Type: ReqConceptMastery, Value: 5},
			Reward:      Reward{XP: 100, BadgeID: "badge_loom_apprentice"},
		},
		{
			ID:          "week_streak",
			Name:        "Daily Rhythm",
			Description: "Practice seven days in a row.",
			Requirement: Requirement{Type: ReqStreak, Value: 7},
			Reward:      Reward{XP: 75, BadgeID: "badge_daily_rhythm"},
		},
		{
			ID:          "explorer",
			Name:        "Cloth Explorer",
			Description: "Explore five cultural patterns.",
			Requirement: Requirement{Type: ReqCulturalExploration, Value: 5},
			Reward:      Reward{XP: 50, BadgeID: "badge_cloth_explorer"},
		},
		{
			ID:          "fifty_challenges",
			Name:        "Weaver",
			Description: "Complete fifty challenges.",
			Requirement: Requirement{Type: ReqChallengeCount, Value: 50},
			Reward:      Reward{XP: 150, BadgeID: "badge_weaver"},
		},
		{
			ID:          "level_five",
			Name:        "Rising Artisan",
			Description: "Reach level five.",
			Requirement: Requirement{Type: ReqLevel, Value: 5},
			Reward:      Reward{XP: 100, BadgeID: "badge_rising_artisan"},
		},
		{
			ID:          "full_catalog",
			Name:        "Master Weaver",
			Description: "Master every concept in the catalog.",
			Requirement: Requirement{Type: ReqConceptMastery, Value: 12},
			Reward:      Reward{XP: 500, BadgeID: "badge_master_weaver"},
		},
	}
}
