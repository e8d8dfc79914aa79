// ABOUTME: CLI command for migrating data between storage backends.
// ABOUTME: Copies templates and history from the active backend to another.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/orionmayta1234/Workout-app/internal/config"
	"github.com/orionmayta1234/Workout-app/internal/storage"
)

var (
	migrateTo     string
	migrateDryRun bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy data to another storage backend",
	Long: `Copy all templates and workout history from the active backend to
another one.

Records already present in the destination (matched by ID) are left
alone, so an interrupted migration is safe to rerun.

USAGE:

  workout migrate --to charm --dry-run   # Preview what would be copied
  workout migrate --to charm             # Copy sqlite data to Charm KV
  workout migrate --to sqlite            # Copy Charm KV data to sqlite

AFTER MIGRATION:

  Switch the active backend with:
    workout config set backend <name>`,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch migrateTo {
		case "sqlite", "charm":
		case "":
			return fmt.Errorf("specify the destination: --to sqlite or --to charm")
		default:
			return fmt.Errorf("unknown backend: %q (use sqlite or charm)", migrateTo)
		}
		if migrateTo == cfg.GetBackend() {
			return fmt.Errorf("already using the %s backend", migrateTo)
		}

		if migrateDryRun {
			data, err := repo.GetAllData()
			if err != nil {
				return fmt.Errorf("failed to read data: %w", err)
			}
			color.Yellow("Dry run mode - no changes will be made")
			fmt.Printf("  Would copy %d templates and %d workouts to %s\n",
				len(data.Templates), len(data.Logs), migrateTo)
			return nil
		}

		dstCfg := &config.Config{
			Backend:   migrateTo,
			DataDir:   cfg.DataDir,
			CharmHost: cfg.CharmHost,
		}
		dst, err := dstCfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open %s backend: %w", migrateTo, err)
		}
		defer func() { _ = dst.Close() }()

		summary, err := storage.MigrateData(repo, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.Green("✓ Migrated to %s", migrateTo)
		fmt.Printf("  Templates: %d\n", summary.Templates)
		fmt.Printf("  Workouts: %d\n", summary.Logs)
		fmt.Println()
		color.New(color.Faint).Printf("Switch over with 'workout config set backend %s'.\n", migrateTo)

		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "destination backend: sqlite or charm")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	rootCmd.AddCommand(migrateCmd)
}
