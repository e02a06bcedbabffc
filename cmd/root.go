package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/asante/codeweave/internal/engine"
	"github.com/asante/codeweave/internal/llm"
	"github.com/asante/codeweave/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "codeweave",
	Short: "Adaptive engine for learning to code through cultural patterns",
	Long:  "Codeweave — adaptive-learning engine that teaches coding concepts through textile pattern stories, tracking proficiency, learning style and pacing per learner.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CODEWEAVE_DB env var)")
	rootCmd.PersistentFlags().String("user", "default", "Learner ID to operate on")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(conceptsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using the --db flag (highest
// priority), then CODEWEAVE_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, storage.EnsureDir(p)
	}
	return storage.DefaultDBPath()
}

// openStore opens the SQLite store behind the engine.
func openStore(cmd *cobra.Command) (*storage.SQLiteStore, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// newEngine builds an engine over the store, discovering an LLM
// provider from the environment. Without one the engine runs fully
// deterministic.
func newEngine(cmd *cobra.Command, s storage.Store) *engine.Engine {
	cfg, found := llm.DiscoverConfig()
	if !found {
		return engine.New(s, nil)
	}
	provider, err := llm.NewProvider(cmd.Context(), cfg, s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: LLM provider unavailable, using deterministic fallbacks: %v\n", err)
		return engine.New(s, nil)
	}
	return engine.New(s, provider)
}

func userID(cmd *cobra.Command) string {
	u, _ := cmd.Flags().GetString("user")
	if u == "" {
		return "default"
	}
	return u
}
