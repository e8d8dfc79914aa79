// ABOUTME: CLI command for showing the active workout session.
// ABOUTME: Renders per-set progress across all exercises.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/orionmayta1234/Workout-app/internal/models"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"st"},
	Short:   "Show the active session",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess := ctrl.Session()
		if sess == nil {
			fmt.Println("No active session.")
			fmt.Println()
			color.New(color.Faint).Println("Start one with 'workout start <template>'.")
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s %s\n",
			color.New(color.Bold).Sprint(sess.TemplateName),
			faint.Sprint(sess.ID.String()[:8]))
		fmt.Printf("Started %s (%d min ago)\n",
			sess.StartedAt.Format("15:04"),
			int(time.Since(sess.StartedAt).Minutes()))
		if sess.BodyWeight != nil {
			fmt.Printf("Body weight: %s\n", trimFloat(*sess.BodyWeight))
		}
		if sess.Notes != "" {
			fmt.Printf("Notes: %s\n", sess.Notes)
		}
		fmt.Println()

		for i, ex := range sess.Exercises {
			fmt.Printf("%d. %s  %s\n", i+1, ex.Name, faint.Sprintf("target %s", ex.TargetReps))
			for j, set := range ex.Sets {
				mark := faint.Sprint("·")
				if set.Completed {
					mark = color.GreenString("✓")
				}
				fmt.Printf("   %s set %d: %s\n", mark, j+1, describeSet(set))
			}
		}

		fmt.Printf("\n%d/%d sets done\n", sess.CompletedSets(), sess.TotalSets())

		return nil
	},
}

// describeSet renders a set's recorded values, "-" when still empty.
func describeSet(set models.LoggedSet) string {
	switch {
	case set.Reps != nil && set.Weight != nil:
		return fmt.Sprintf("%d reps @ %s", *set.Reps, trimFloat(*set.Weight))
	case set.Reps != nil:
		return fmt.Sprintf("%d reps", *set.Reps)
	case set.Weight != nil:
		return fmt.Sprintf("@ %s", trimFloat(*set.Weight))
	default:
		return "-"
	}
}

// trimFloat renders a weight without trailing zeros: 60, 62.5.
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
