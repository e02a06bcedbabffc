package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asante/codeweave/internal/llm"
	"github.com/asante/codeweave/internal/storage"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect logged LLM requests",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		keys, err := s.ListKeys(ctx, storage.LLMLogPrefix)
		if err != nil {
			return fmt.Errorf("list log records: %w", err)
		}
		if len(keys) == 0 {
			fmt.Println("No LLM requests logged.")
			return nil
		}

		fmt.Printf("%-20s  %-16s  %-24s  %-6s  %-6s  %-7s  %s\n",
			"At", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 95))

		for _, key := range keys {
			raw, err := s.Get(ctx, key)
			if err != nil || raw == nil {
				continue
			}
			var rec llm.LogRecord
			if err := json.Unmarshal(raw, &rec); err != nil {
				continue
			}
			if purpose != "" && rec.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !rec.Success {
				ok = "✗"
			}
			model := rec.Model
			if len(model) > 24 {
				model = model[:24]
			}
			fmt.Printf("%-20s  %-16s  %-24s  %-6d  %-6d  %-7d  %s\n",
				rec.At, rec.Purpose, model, rec.InputTokens, rec.OutputTokens, rec.LatencyMs, ok)
		}
		return nil
	},
}

func init() {
	llmListCmd.Flags().String("purpose", "", "Filter by purpose label")
	llmCmd.AddCommand(llmListCmd)
}
