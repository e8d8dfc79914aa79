// ABOUTME: CLI command for running a standalone rest countdown.
// ABOUTME: Holds the shared inline countdown renderer used by log too.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/orionmayta1234/Workout-app/internal/rest"
)

var restCmd = &cobra.Command{
	Use:   "rest [seconds]",
	Short: "Run a rest countdown",
	Long: `Run a rest countdown in the terminal.

Without an argument the configured rest period is used (default 3:00,
see 'workout config set rest <seconds>'). Ctrl+C skips the rest.

Examples:
  workout rest        # Configured rest period
  workout rest 90     # 90 seconds`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := cfg.GetRestDuration()
		if len(args) == 1 {
			secs, err := strconv.Atoi(args[0])
			if err != nil || secs < 1 {
				return fmt.Errorf("invalid seconds: %s", args[0])
			}
			d = time.Duration(secs) * time.Second
		}

		restTimer.Start(d)
		return runCountdown(cmd.Context(), restTimer)
	},
}

// runCountdown drives the rest timer to zero, redrawing one line per
// second. Ctrl+C stops the countdown; nothing else is affected.
func runCountdown(ctx context.Context, t *rest.Timer) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fmt.Printf("\r  Rest %s ", t.State().Clock())
	t.OnTick(func(snap rest.Snapshot) {
		fmt.Printf("\r  Rest %s ", snap.Clock())
	})
	t.OnDone(func() {
		fmt.Print("\r")
		color.Green("✓ Rest complete      ")
	})
	defer t.OnTick(nil)
	defer t.OnDone(nil)

	t.Run(ctx)

	if ctx.Err() != nil {
		t.Stop()
		fmt.Println()
		color.New(color.Faint).Println("  Countdown skipped.")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(restCmd)
}
