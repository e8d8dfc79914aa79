// ABOUTME: CLI command for starting a workout session from a template.
// ABOUTME: Seeds the editable working copy and checkpoints it to disk.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/orionmayta1234/Workout-app/internal/session"
	"github.com/orionmayta1234/Workout-app/internal/storage"
)

var startCmd = &cobra.Command{
	Use:     "start <template>",
	Aliases: []string{"begin"},
	Short:   "Start a workout session",
	Long: `Start a workout session from a template.

The template can be named by ID, ID prefix, or name. Each planned
exercise is seeded with its target number of empty sets. Only one
session can be active at a time.

Examples:
  workout start "Push Day"
  workout start a1b2c3d4`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := storage.FindTemplate(repo, args[0])
		if err != nil {
			return fmt.Errorf("template not found: %s", args[0])
		}

		sess, err := ctrl.Start(t)
		if err != nil {
			if errors.Is(err, session.ErrSessionInProgress) {
				return fmt.Errorf("a session is already active; run 'workout finish' or 'workout discard' first")
			}
			return err
		}

		color.Green("✓ Started %s", sess.TemplateName)
		for i, ex := range sess.Exercises {
			fmt.Printf("  %d. %s  %d sets x %s\n", i+1, ex.Name, len(ex.Sets), ex.TargetReps)
		}
		fmt.Println()
		color.New(color.Faint).Println("Log sets with 'workout log <exercise> <set> <reps> [weight]'.")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
