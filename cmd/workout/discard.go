// ABOUTME: CLI command for discarding the active session.
// ABOUTME: Drops the working copy without writing any history.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var discardYes bool

var discardCmd = &cobra.Command{
	Use:   "discard",
	Short: "Discard the active session",
	Long: `Abandon the active session without saving anything.

No workout log is written and the logged sets are lost. Use 'workout
finish' instead if you want to keep what you logged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess := ctrl.Session()
		if sess == nil {
			return fmt.Errorf("no active session")
		}

		if !discardYes {
			fmt.Printf("This will discard the active %s session (%d sets logged).\n",
				sess.TemplateName, sess.CompletedSets())
			fmt.Print("Continue? [y/N]: ")
			var confirm string
			fmt.Scanln(&confirm)
			if confirm != "y" && confirm != "Y" {
				fmt.Println("Canceled.")
				return nil
			}
		}

		if err := ctrl.Discard(); err != nil {
			return describeSessionError(err)
		}

		color.Yellow("✗ Session discarded")
		fmt.Println("  No workout was saved.")

		return nil
	},
}

func init() {
	discardCmd.Flags().BoolVarP(&discardYes, "yes", "y", false, "skip confirmation prompt")
	rootCmd.AddCommand(discardCmd)
}
