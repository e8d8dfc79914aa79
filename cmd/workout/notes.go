// ABOUTME: CLI command for attaching notes to the active session.
// ABOUTME: Notes are carried onto the workout log at finish.
package main

import (
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var notesCmd = &cobra.Command{
	Use:   "notes <text>",
	Short: "Attach notes to the active session",
	Long: `Attach free-form notes to the active session.

Notes are carried onto the workout log when you finish. Running the
command again replaces the previous notes; pass nothing to clear them.

Examples:
  workout notes "Felt strong, new bench PR"
  workout notes`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")

		if err := ctrl.SetNotes(text); err != nil {
			return describeSessionError(err)
		}

		if text == "" {
			color.Green("✓ Notes cleared")
		} else {
			color.Green("✓ Notes updated")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(notesCmd)
}
