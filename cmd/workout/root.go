// ABOUTME: Root Cobra command for workout CLI.
// ABOUTME: Wires config, storage, the session controller, and the rest timer.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/orionmayta1234/Workout-app/internal/config"
	"github.com/orionmayta1234/Workout-app/internal/history"
	"github.com/orionmayta1234/Workout-app/internal/rest"
	"github.com/orionmayta1234/Workout-app/internal/session"
	"github.com/orionmayta1234/Workout-app/internal/storage"
)

var (
	cfg       *config.Config
	repo      storage.Repository
	feed      *history.Syncer
	restTimer *rest.Timer
	ctrl      *session.Controller
)

var rootCmd = &cobra.Command{
	Use:     "workout",
	Version: "1.0.0",
	Short:   "Personal workout session tracker",
	Long: `Workout is a CLI for planning workout templates and logging training
sessions set by set.

QUICK START:

  $ workout template add "Push Day" \
      -e "Bench Press:3x8-12" -e "Overhead Press:2x6-8"
  $ workout start "Push Day"       # Begin a session from the template
  $ workout log 1 1 10 60          # Exercise 1, set 1: 10 reps at 60
  $ workout status                 # Progress across all exercises
  $ workout finish                 # Save the workout to history

LIVE SESSION:

  Starting a session seeds one editable set per planned target set.
  Only one session can be active at a time; it survives across CLI
  invocations until you finish or discard it.

  $ workout set 1 2 reps 9         # Edit a pending set
  $ workout add-set 1              # Extra set beyond the plan
  $ workout discard                # Abandon without saving

REST TIMER:

  Logging a set starts a rest countdown (default 3:00, configurable).
  'workout log' shows it inline; skip with --no-rest, or run one
  standalone with 'workout rest [seconds]'.

SYNC (OPTIONAL):

  With the charm backend your data syncs across devices via Charm
  Cloud, E2E encrypted with your SSH key.

  $ workout config set backend charm
  $ workout sync link              # Link device to your Charm account
  $ workout sync status            # Check sync status

MCP INTEGRATION:

  Run 'workout mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "workout": { "command": "workout", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data lives in SQLite at ~/.local/share/workout/workout.db by default.
  Config is at ~/.config/workout/config.json; see 'workout config'.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if !needsStorage(cmd) {
			return nil
		}
		return openRuntime()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			err := repo.Close()
			repo = nil
			return err
		}
		return nil
	},
}

// needsStorage reports whether the command requires an open backend.
// Config edits must work even when the configured backend cannot open,
// and install-skill only touches the home directory.
func needsStorage(cmd *cobra.Command) bool {
	if cmd.Name() == "install-skill" {
		return false
	}
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "config" {
			return false
		}
	}
	return true
}

// openRuntime opens the storage backend and builds the session
// controller over it. An unreadable checkpoint warns instead of
// blocking every command.
func openRuntime() error {
	var err error
	repo, err = cfg.OpenStorage()
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}

	feed = history.NewSyncer(repo)
	restTimer = rest.New(rest.WithDefault(cfg.GetRestDuration()))
	ctrl = session.NewController(feed, restTimer,
		session.WithCheckpoint(session.NewFileCheckpoint(cfg.CheckpointPath())),
		session.WithRestDuration(cfg.GetRestDuration()),
		session.WithRequireRepsAndWeight(cfg.RequireRepsAndWeight),
	)

	if err := ctrl.Restore(); err != nil {
		color.Yellow("⚠ Could not restore the active session: %v", err)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
