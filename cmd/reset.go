package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asante/codeweave/internal/progress"
	"github.com/asante/codeweave/internal/storage"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete a learner's progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		uid := userID(cmd)

		svc := progress.NewService(s)
		if err := svc.Reset(ctx, uid); err != nil {
			return err
		}
		if err := s.Delete(ctx, storage.LearningPathKey(uid)); err != nil {
			return fmt.Errorf("delete stored path for %q: %w", uid, err)
		}

		fmt.Printf("Progress for %q deleted.\n", uid)
		return nil
	},
}
