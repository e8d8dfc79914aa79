// ABOUTME: CLI command for recording body weight on the active session.
// ABOUTME: The value lands on the workout log when the session finishes.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var bodyWeightCmd = &cobra.Command{
	Use:   "body-weight <value>",
	Short: "Record body weight for the active session",
	Long: `Record your body weight on the active session.

The value is carried onto the workout log when you finish. Running the
command again replaces the previous value.

Example:
  workout body-weight 82.5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid weight: %s", args[0])
		}

		if err := ctrl.SetBodyWeight(weight); err != nil {
			return describeSessionError(err)
		}

		color.Green("✓ Body weight %s recorded", trimFloat(weight))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(bodyWeightCmd)
}
