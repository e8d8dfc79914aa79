// ABOUTME: CLI commands for Charm-based sync.
// ABOUTME: Supports link, unlink, status, now, and reset operations.
package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/orionmayta1234/Workout-app/internal/charm"
)

var syncCmd = &cobra.Command{
	Use:     "sync",
	Aliases: []string{"s"},
	Short:   "Sync workout data across devices",
	Long: `Sync workout data across devices using Charm Cloud.

Requires the charm backend ('workout config set backend charm').
Your data is E2E encrypted with your SSH key before upload; the server
never sees your unencrypted workouts.

GETTING STARTED:

  1. Link your device (creates/uses SSH key automatically):
     workout sync link

  2. On other devices, link with the same Charm account:
     workout sync link

  3. Check sync status:
     workout sync status

COMMANDS:

  link        Link this device to your Charm account
  unlink      Disconnect this device from Charm
  status      Show sync status and account info
  now         Push and pull changes immediately
  reset       Reset local data and restore from cloud (destructive)

Data syncs automatically after each write unless auto_sync is off.`,
}

// charmRepo returns the active backend as a Charm client, or an error
// telling the user how to switch.
func charmRepo() (*charm.Client, error) {
	cc, ok := repo.(*charm.Client)
	if !ok {
		return nil, fmt.Errorf("sync requires the charm backend; run 'workout config set backend charm'")
	}
	return cc, nil
}

var syncLinkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link this device to Charm",
	Long: `Link this device to your Charm account.

If you don't have a Charm account, one will be created using your SSH
key. If you already have an account, you'll be prompted to link via
charm.sh.

Example:
  workout sync link`,
	RunE: func(cmd *cobra.Command, args []string) error {
		charmCmd := exec.Command("charm", "link")
		charmCmd.Stdin = os.Stdin
		charmCmd.Stdout = os.Stdout
		charmCmd.Stderr = os.Stderr

		if err := charmCmd.Run(); err != nil {
			return fmt.Errorf("failed to link: %w\n\nMake sure 'charm' CLI is installed: go install github.com/charmbracelet/charm@latest", err)
		}

		color.Green("\n✓ Device linked to Charm")

		if cc, err := charmRepo(); err == nil {
			if err := cc.Sync(); err != nil {
				color.Yellow("⚠ Initial sync failed: %v", err)
			} else {
				color.Green("✓ Initial sync complete")
			}
		} else {
			fmt.Println("Switch to the charm backend to start syncing:")
			fmt.Println("  workout config set backend charm")
		}

		return nil
	},
}

var syncUnlinkCmd = &cobra.Command{
	Use:   "unlink",
	Short: "Disconnect from Charm",
	Long: `Disconnect this device from Charm.

This does not delete your local workout data.
You can link again later with 'workout sync link'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		charmCmd := exec.Command("charm", "unlink")
		charmCmd.Stdin = os.Stdin
		charmCmd.Stdout = os.Stdout
		charmCmd.Stderr = os.Stderr

		if err := charmCmd.Run(); err != nil {
			return fmt.Errorf("failed to unlink: %w", err)
		}

		color.Green("✓ Device unlinked from Charm")
		fmt.Println("Your local workout data is preserved.")

		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	Long: `Show current sync status including:
- Charm account info
- Connection status
- Local data counts`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cc, err := charmRepo()
		if err != nil {
			return err
		}

		id, err := cc.ID()
		if err != nil {
			color.Yellow("Not linked to Charm")
			fmt.Println("\nRun 'workout sync link' to connect to Charm.")
			return nil
		}

		host := cfg.CharmHost
		if host == "" {
			host = "cloud.charm.sh"
		}
		fmt.Println("Charm ID:", id)
		fmt.Println("Server:", host)
		fmt.Println()

		templates, _ := cc.ListTemplates()
		logs, _ := cc.ListLogs(0)

		color.Green("✓ Connected to Charm")
		fmt.Printf("  Templates: %d\n", len(templates))
		fmt.Printf("  Workouts: %d\n", len(logs))

		return nil
	},
}

var syncNowCmd = &cobra.Command{
	Use:   "now",
	Short: "Sync immediately",
	Long:  `Push local changes and pull remote ones right now.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cc, err := charmRepo()
		if err != nil {
			return err
		}

		if err := cc.Sync(); err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}

		color.Green("✓ Synced with Charm Cloud")
		return nil
	},
}

var syncResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset local data and restore from cloud",
	Long: `Delete all local data and restore from Charm Cloud.

This is a destructive operation. All local data will be lost and
restored from cloud. Use this to:
- Fix sync conflicts
- Reset a device to cloud state
- Start fresh on a device`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cc, err := charmRepo()
		if err != nil {
			return err
		}

		fmt.Println("This will DELETE all local workout data and restore from cloud.")
		fmt.Print("Continue? [y/N]: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "y" && confirm != "Y" {
			fmt.Println("Canceled.")
			return nil
		}

		if err := cc.Reset(); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}

		color.Green("✓ Local data reset and restored from cloud")

		return nil
	},
}

func init() {
	syncCmd.AddCommand(syncLinkCmd)
	syncCmd.AddCommand(syncUnlinkCmd)
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncNowCmd)
	syncCmd.AddCommand(syncResetCmd)

	rootCmd.AddCommand(syncCmd)
}
