// ABOUTME: CLI commands for browsing workout history.
// ABOUTME: Lists finished workouts, shows one in detail, or watches the feed.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/orionmayta1234/Workout-app/internal/models"
)

var (
	historyLimit int
	historyWatch bool
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"hist"},
	Short:   "List finished workouts",
	Long: `List finished workouts, most recent first.

OUTPUT FORMAT:

  Each line shows: ID  DATE  TEMPLATE  DURATION  SETS

  The ID is an 8-character prefix you can use with 'history show'.

EXAMPLES:

  workout history                # Last 20 workouts
  workout history -n 5           # Last 5
  workout history show a1b2c3d4  # One workout in detail
  workout history --watch        # Keep following the feed`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if historyWatch {
			return watchHistory(cmd.Context())
		}

		logs, err := feed.Logs(historyLimit)
		if err != nil {
			return fmt.Errorf("failed to list history: %w", err)
		}

		printHistory(logs)
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a workout in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := repo.GetLog(args[0])
		if err != nil {
			return fmt.Errorf("workout not found: %s", args[0])
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s %s\n",
			color.New(color.Bold).Sprint(log.TemplateName),
			faint.Sprint(log.ID.String()[:8]))
		fmt.Printf("Date: %s\n", log.StartedAt.Format("2006-01-02 15:04"))
		fmt.Printf("Duration: %d min\n", log.DurationMinutes)
		if log.BodyWeight != nil {
			fmt.Printf("Body weight: %s\n", trimFloat(*log.BodyWeight))
		}
		if log.Notes != nil && *log.Notes != "" {
			fmt.Printf("Notes: %s\n", *log.Notes)
		}

		fmt.Println()
		for _, ex := range log.Exercises {
			if len(ex.Sets) == 0 {
				fmt.Printf("%s  %s\n", ex.Name, faint.Sprint("skipped"))
				continue
			}
			fmt.Println(ex.Name)
			for j, set := range ex.Sets {
				fmt.Printf("  set %d: %s\n", j+1, describeSet(set))
			}
		}

		return nil
	},
}

func printHistory(logs []*models.WorkoutLog) {
	if len(logs) == 0 {
		fmt.Println("No workouts logged yet.")
		return
	}

	faint := color.New(color.Faint)
	for _, log := range logs {
		fmt.Printf("%s %s %s %s %d sets\n",
			faint.Sprint(log.ID.String()[:8]),
			faint.Sprint(log.StartedAt.Format("2006-01-02 15:04")),
			padRight(log.TemplateName, 16),
			padRight(fmt.Sprintf("%d min", log.DurationMinutes), 7),
			log.CompletedSets())
	}
}

// watchHistory subscribes to the history feed and reprints the list
// whenever it changes, polling the store for external writes.
func watchHistory(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var lastSig string
	unsubscribe, err := feed.Subscribe(func(logs []*models.WorkoutLog) {
		sig := fmt.Sprintf("%d", len(logs))
		if len(logs) > 0 {
			sig += logs[0].ID.String()
		}
		if sig == lastSig {
			return
		}
		lastSig = sig

		printHistory(logs)
		fmt.Println()
		color.New(color.Faint).Println("Watching for new workouts (Ctrl+C to stop)...")
	})
	if err != nil {
		return err
	}
	defer unsubscribe()

	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Println()
			return nil
		case <-ticker.C:
			if err := feed.Refresh(); err != nil {
				color.Yellow("⚠ Refresh failed: %v", err)
			}
		}
	}
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "max number of results")
	historyCmd.Flags().BoolVar(&historyWatch, "watch", false, "keep following the history feed")
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}
