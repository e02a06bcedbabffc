package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asante/codeweave/internal/concepts"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend challenges and next concepts",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e := newEngine(cmd, s)
		uid := userID(cmd)
		ctx := cmd.Context()

		next, err := e.RecommendNextConcepts(ctx, uid, count)
		if err != nil {
			return err
		}
		fmt.Println("Next concepts:")
		for _, id := range next {
			name := id
			if c, err := concepts.Get(id); err == nil {
				name = c.Name
			}
			fmt.Printf("  - %s\n", name)
		}

		types, err := e.RecommendChallenges(ctx, uid, count)
		if err != nil {
			return err
		}
		fmt.Println("\nChallenge types:")
		for i, ct := range types {
			fmt.Printf("  %d. %s\n", i+1, ct)
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().Int("count", 5, "How many recommendations to show")
}
