package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asante/codeweave/internal/concepts"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Generate a personalized learning path",
	RunE: func(cmd *cobra.Command, args []string) error {
		typeLabel, _ := cmd.Flags().GetString("type")
		force, _ := cmd.Flags().GetBool("force")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e := newEngine(cmd, s)
		uid := userID(cmd)

		pathType := concepts.ParsePathType(typeLabel)
		if typeLabel == "" {
			pathType, err = e.RecommendLearningPathType(cmd.Context(), uid, "")
			if err != nil {
				return err
			}
		}

		p, err := e.GenerateLearningPath(cmd.Context(), uid, pathType, force)
		if err != nil {
			return err
		}

		fmt.Printf("Learning path for %s (%s, generated %s)\n\n",
			p.UserID, p.Type, p.GeneratedAt.Local().Format("2006-01-02 15:04"))

		for i, item := range p.Items {
			fmt.Printf("%2d. %-16s  %-16s  difficulty %d\n",
				i+1, item.Title, item.ChallengeType, item.Difficulty)
			if item.Enrichment != "" {
				fmt.Printf("    %s\n", strings.TrimSpace(item.Enrichment))
			}
		}
		return nil
	},
}

func init() {
	pathCmd.Flags().String("type", "", "Path type: logic, creativity or challenge (default: recommended)")
	pathCmd.Flags().Bool("force", false, "Regenerate even if a stored path exists")
}
