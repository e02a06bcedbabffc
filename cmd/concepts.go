package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asante/codeweave/internal/concepts"
)

var conceptsCmd = &cobra.Command{
	Use:   "concepts",
	Short: "Browse the concept catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")

		var list []concepts.Concept
		if category != "" {
			list = concepts.ByCategory(concepts.Category(category))
			if len(list) == 0 {
				return fmt.Errorf("no concepts found for category %q", category)
			}
		} else {
			list = concepts.TopologicalOrder()
		}

		fmt.Printf("%-14s  %-14s  %-14s  %s\n", "ID", "Name", "Category", "Prerequisites")
		fmt.Println(strings.Repeat("─", 70))

		for _, c := range list {
			prereqs := strings.Join(c.Prerequisites, ", ")
			if prereqs == "" {
				prereqs = "-"
			}
			fmt.Printf("%-14s  %-14s  %-14s  %s\n",
				c.ID, c.Name, concepts.CategoryDisplayName(c.Category), prereqs)
		}

		fmt.Printf("\n%d concepts\n", len(list))
		return nil
	},
}

func init() {
	conceptsCmd.Flags().String("category", "", "Filter by category (e.g. control-flow)")
}
