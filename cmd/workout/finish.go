// ABOUTME: CLI command for finishing the active session.
// ABOUTME: Builds the immutable log from completed sets and saves it.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/orionmayta1234/Workout-app/internal/session"
)

var (
	finishBodyWeight float64
	finishNotes      string
)

var finishCmd = &cobra.Command{
	Use:     "finish",
	Aliases: []string{"done"},
	Short:   "Finish the active session",
	Long: `Finish the active session and save it to workout history.

Only completed sets are recorded; pending sets are dropped. If saving
fails the session stays active so nothing is lost.

Examples:
  workout finish
  workout finish --body-weight 82.5 --notes "felt strong"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("body-weight") {
			if err := ctrl.SetBodyWeight(finishBodyWeight); err != nil {
				return describeSessionError(err)
			}
		}
		if cmd.Flags().Changed("notes") {
			if err := ctrl.SetNotes(finishNotes); err != nil {
				return describeSessionError(err)
			}
		}

		log, err := ctrl.Finish()
		if err != nil {
			if errors.Is(err, session.ErrNoSession) {
				return fmt.Errorf("no active session; run 'workout start <template>' first")
			}
			return err
		}

		color.Green("✓ Finished %s", log.TemplateName)
		fmt.Printf("  %s %d min, %d sets\n",
			color.New(color.Faint).Sprint(log.ID.String()[:8]),
			log.DurationMinutes, log.CompletedSets())

		return nil
	},
}

func init() {
	finishCmd.Flags().Float64Var(&finishBodyWeight, "body-weight", 0, "record body weight on the workout")
	finishCmd.Flags().StringVar(&finishNotes, "notes", "", "notes for the workout")
	rootCmd.AddCommand(finishCmd)
}
