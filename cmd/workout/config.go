// ABOUTME: CLI commands for viewing and changing configuration.
// ABOUTME: Edits the JSON config file; works even when storage cannot open.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/orionmayta1234/Workout-app/internal/config"
	"github.com/orionmayta1234/Workout-app/internal/rest"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
	Long: `Show the resolved configuration, or change a setting.

KEYS:

  backend                  Storage backend: sqlite or charm
  data-dir                 Data directory (supports ~)
  charm-host               Charm Cloud server override
  rest                     Rest countdown in seconds
  require-reps-and-weight  true: logging a set needs both fields
  auto-sync                true/false: charm pushes after every write

EXAMPLES:

  workout config                           # Show current settings
  workout config set backend charm
  workout config set rest 120
  workout config set require-reps-and-weight true`,
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		fmt.Println("Config file:", config.GetConfigPath())
		fmt.Println()
		fmt.Println("Backend:", cfg.GetBackend())
		fmt.Println("Data dir:", cfg.GetDataDir())
		fmt.Println("Rest timer:", rest.Format(int(cfg.GetRestDuration()/time.Second)))
		fmt.Println("Require reps and weight:", cfg.RequireRepsAndWeight)
		if cfg.GetBackend() == "charm" {
			host := cfg.CharmHost
			if host == "" {
				host = "cloud.charm.sh"
			}
			fmt.Println("Charm host:", host)
			fmt.Println("Auto sync:", cfg.GetAutoSync())
		}
		fmt.Println()
		faint.Println("Change a setting with 'workout config set <key> <value>'.")

		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a configuration setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		switch key {
		case "backend":
			if value != "sqlite" && value != "charm" {
				return fmt.Errorf("unknown backend: %q (use sqlite or charm)", value)
			}
			cfg.Backend = value
		case "data-dir":
			cfg.DataDir = value
		case "charm-host":
			cfg.CharmHost = value
		case "rest":
			secs, err := strconv.Atoi(value)
			if err != nil || secs < 1 {
				return fmt.Errorf("invalid rest seconds: %s", value)
			}
			cfg.RestSeconds = secs
		case "require-reps-and-weight":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid value: %s (use true or false)", value)
			}
			cfg.RequireRepsAndWeight = b
		case "auto-sync":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid value: %s (use true or false)", value)
			}
			cfg.AutoSync = &b
		default:
			return fmt.Errorf("unknown key: %s (see 'workout config --help')", key)
		}

		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		color.Green("✓ Set %s", key)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
