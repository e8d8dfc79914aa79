// ABOUTME: Workout tool configuration with backend selection.
// ABOUTME: Handles settings, rest timer defaults, and storage backend factory.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/orionmayta1234/Workout-app/internal/charm"
	"github.com/orionmayta1234/Workout-app/internal/rest"
	"github.com/orionmayta1234/Workout-app/internal/storage"
)

// Config stores workout tool configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default) or "charm".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage. SQLite puts
	// workout.db here; the active-session checkpoint lives here too.
	// Supports ~ expansion. Defaults to ~/.local/share/workout.
	DataDir string `json:"data_dir,omitempty"`

	// CharmHost overrides the Charm Cloud server for the charm backend.
	CharmHost string `json:"charm_host,omitempty"`

	// RestSeconds is the rest timer countdown started after each logged
	// set. Defaults to 180.
	RestSeconds int `json:"rest_seconds,omitempty"`

	// RequireRepsAndWeight makes logging a set demand both fields
	// instead of at least one.
	RequireRepsAndWeight bool `json:"require_reps_and_weight,omitempty"`

	// AutoSync controls whether the charm backend pushes after every
	// write. Unset means enabled.
	AutoSync *bool `json:"auto_sync,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "sqlite"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetRestDuration returns the configured rest period.
func (c *Config) GetRestDuration() time.Duration {
	if c.RestSeconds <= 0 {
		return rest.DefaultDuration
	}
	return time.Duration(c.RestSeconds) * time.Second
}

// GetAutoSync reports whether the charm backend should sync after writes.
func (c *Config) GetAutoSync() bool {
	if c.AutoSync == nil {
		return true
	}
	return *c.AutoSync
}

// CheckpointPath returns where the active-session checkpoint is stored.
func (c *Config) CheckpointPath() string {
	return filepath.Join(c.GetDataDir(), "session.json")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage creates a Repository implementation based on the configured backend.
func (c *Config) OpenStorage() (storage.Repository, error) {
	switch backend := c.GetBackend(); backend {
	case "sqlite":
		dbPath := filepath.Join(c.GetDataDir(), "workout.db")
		return storage.Open(dbPath)
	case "charm":
		cl, err := charm.Open(c.CharmHost)
		if err != nil {
			return nil, err
		}
		cl.SetAutoSync(c.GetAutoSync())
		return cl, nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "workout", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
