// ABOUTME: CLI command for editing a pending set in the active session.
// ABOUTME: Updates reps or weight; an omitted value clears the field.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/orionmayta1234/Workout-app/internal/session"
)

var setCmd = &cobra.Command{
	Use:   "set <exercise> <set> <field> [value]",
	Short: "Edit a pending set",
	Long: `Edit the reps or weight of a pending set in the active session.

Exercise and set numbers match 'workout status'. Omitting the value
clears the field. Completed sets cannot be edited.

Examples:
  workout set 1 2 reps 9        # Exercise 1, set 2: 9 reps
  workout set 1 2 weight 62.5
  workout set 1 2 reps          # Clear the rep count`,
	Args: cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		exNum, err := parseIndex(args[0])
		if err != nil {
			return fmt.Errorf("invalid exercise number: %s", args[0])
		}
		setNum, err := parseIndex(args[1])
		if err != nil {
			return fmt.Errorf("invalid set number: %s", args[1])
		}

		value := ""
		if len(args) == 4 {
			value = args[3]
		}

		if err := ctrl.UpdateSetField(exNum-1, setNum-1, session.Field(args[2]), value); err != nil {
			return describeSessionError(err)
		}

		if value == "" {
			color.Green("✓ Cleared %s on exercise %d set %d", args[2], exNum, setNum)
		} else {
			color.Green("✓ Set %s to %s on exercise %d set %d", args[2], value, exNum, setNum)
		}

		return nil
	},
}

// parseIndex parses a 1-based exercise or set number.
func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid number: %s", s)
	}
	return n, nil
}

// describeSessionError turns controller errors into messages that name
// the fix.
func describeSessionError(err error) error {
	switch {
	case errors.Is(err, session.ErrNoSession):
		return fmt.Errorf("no active session; run 'workout start <template>' first")
	case errors.Is(err, session.ErrSetCompleted):
		return fmt.Errorf("that set is already logged and cannot be changed")
	case errors.Is(err, session.ErrIndexOutOfRange):
		return fmt.Errorf("no such set; check the numbers against 'workout status'")
	default:
		return err
	}
}

func init() {
	rootCmd.AddCommand(setCmd)
}
