package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asante/codeweave/internal/concepts"
	"github.com/asante/codeweave/internal/learnstyle"
	"github.com/asante/codeweave/internal/milestones"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a learner's progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e := newEngine(cmd, s)
		up, err := e.Progress(cmd.Context(), userID(cmd))
		if err != nil {
			return err
		}

		fmt.Printf("Learner: %s\n", up.UserID)
		fmt.Printf("Level %d — %d XP, %d-day streak\n", up.Level, up.XP, up.Streak)
		fmt.Printf("Challenges: %d   Stories: %d   Patterns: %d\n\n",
			len(up.CompletedChallenges), len(up.CompletedStories), up.PatternsCreated)

		cls := learnstyle.FromPoints(up.StylePoints)
		fmt.Printf("Learning style: %s\n\n", cls.PrimaryStyle())

		if len(up.Proficiency) > 0 {
			fmt.Printf("%-16s  %-11s  %s\n", "Concept", "Proficiency", "Status")
			fmt.Println(strings.Repeat("─", 44))

			ids := make([]string, 0, len(up.Proficiency))
			for id := range up.Proficiency {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			for _, id := range ids {
				name := id
				if c, err := concepts.Get(id); err == nil {
					name = c.Name
				}
				fmt.Printf("%-16s  %11.2f  %s\n", name, up.Proficiency[id], up.StatusFor(id))
			}
			fmt.Println()
		}

		if badges := milestones.BadgeIDs(up); len(badges) > 0 {
			fmt.Printf("Badges: %s\n", strings.Join(badges, ", "))
		}
		return nil
	},
}
