// ABOUTME: CLI command for adding an extra set to an exercise.
// ABOUTME: Target sets only seed the session; extras are unbounded.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var addSetCmd = &cobra.Command{
	Use:   "add-set <exercise>",
	Short: "Add an extra set to an exercise",
	Long: `Add one empty set to an exercise in the active session.

Use this when you do more sets than the template planned. The new set
starts empty; log it like any other.

Example:
  workout add-set 1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exNum, err := parseIndex(args[0])
		if err != nil {
			return fmt.Errorf("invalid exercise number: %s", args[0])
		}

		idx, err := ctrl.AddSet(exNum - 1)
		if err != nil {
			return describeSessionError(err)
		}

		sess := ctrl.Session()
		color.Green("✓ Added set %d to %s", idx+1, sess.Exercises[exNum-1].Name)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(addSetCmd)
}
