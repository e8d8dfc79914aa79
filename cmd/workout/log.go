// ABOUTME: CLI command for logging a completed set.
// ABOUTME: Records values, marks the set done, and runs the rest countdown.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/orionmayta1234/Workout-app/internal/session"
)

var logNoRest bool

var logCmd = &cobra.Command{
	Use:     "log <exercise> <set> [reps] [weight]",
	Aliases: []string{"l"},
	Short:   "Log a completed set",
	Long: `Mark a set completed and start the rest countdown.

Reps and weight can be given inline, or beforehand with 'workout set'.
At least one of the two must be recorded before a set can be logged.
Logging a set that is already logged changes nothing.

Examples:
  workout log 1 1 10 60     # Exercise 1, set 1: 10 reps at 60
  workout log 1 2 9         # Just reps
  workout log 2 1 --no-rest # Use values recorded earlier, skip countdown`,
	Args: cobra.RangeArgs(2, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		exNum, err := parseIndex(args[0])
		if err != nil {
			return fmt.Errorf("invalid exercise number: %s", args[0])
		}
		setNum, err := parseIndex(args[1])
		if err != nil {
			return fmt.Errorf("invalid set number: %s", args[1])
		}

		sess := ctrl.Session()
		if sess == nil {
			return fmt.Errorf("no active session; run 'workout start <template>' first")
		}

		// Re-logging a completed set is a no-op: no edits, no countdown.
		if exNum-1 < len(sess.Exercises) && setNum-1 < len(sess.Exercises[exNum-1].Sets) &&
			sess.Exercises[exNum-1].Sets[setNum-1].Completed {
			fmt.Println("Set already logged; nothing changed.")
			return nil
		}

		if len(args) > 2 {
			reps, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid reps: %s", args[2])
			}
			if err := ctrl.SetReps(exNum-1, setNum-1, &reps); err != nil {
				return describeSessionError(err)
			}
		}
		if len(args) > 3 {
			weight, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return fmt.Errorf("invalid weight: %s", args[3])
			}
			if err := ctrl.SetWeight(exNum-1, setNum-1, &weight); err != nil {
				return describeSessionError(err)
			}
		}

		if err := ctrl.LogSet(exNum-1, setNum-1); err != nil {
			if errors.Is(err, session.ErrEmptySet) {
				return fmt.Errorf("record reps or weight first: 'workout log %d %d <reps> [weight]'", exNum, setNum)
			}
			if errors.Is(err, session.ErrIncompleteSet) {
				return fmt.Errorf("both reps and weight are required: 'workout log %d %d <reps> <weight>'", exNum, setNum)
			}
			return describeSessionError(err)
		}

		cur := ctrl.Session()
		color.Green("✓ Logged %s set %d", sess.Exercises[exNum-1].Name, setNum)
		fmt.Printf("  %d/%d sets done\n", cur.CompletedSets(), cur.TotalSets())

		if logNoRest {
			return nil
		}
		return runCountdown(cmd.Context(), restTimer)
	},
}

func init() {
	logCmd.Flags().BoolVar(&logNoRest, "no-rest", false, "skip the rest countdown")
	rootCmd.AddCommand(logCmd)
}
