// ABOUTME: Checkpoint persistence for the active session across CLI runs.
// ABOUTME: One JSON file in the data dir; removed on finish or discard.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/orionmayta1234/Workout-app/internal/models"
)

// Checkpointer persists the active session between process runs.
// Load returns (nil, nil) when no checkpoint exists.
type Checkpointer interface {
	Save(s *models.ActiveSession) error
	Load() (*models.ActiveSession, error)
	Clear() error
}

// FileCheckpoint stores the session as a JSON file.
type FileCheckpoint struct {
	path string
}

// NewFileCheckpoint creates a checkpoint at the given file path.
func NewFileCheckpoint(path string) *FileCheckpoint {
	return &FileCheckpoint{path: path}
}

// Path returns the checkpoint file location.
func (f *FileCheckpoint) Path() string {
	return f.path
}

// Save writes the session to disk, creating parent directories.
func (f *FileCheckpoint) Save(s *models.ActiveSession) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0750); err != nil {
		return fmt.Errorf("create checkpoint directory: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0600); err != nil {
		return fmt.Errorf("write checkpoint: %w", err)
	}
	return nil
}

// Load reads the checkpointed session, or (nil, nil) when none exists.
func (f *FileCheckpoint) Load() (*models.ActiveSession, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read checkpoint: %w", err)
	}
	var s models.ActiveSession
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse checkpoint: %w", err)
	}
	return &s, nil
}

// Clear removes the checkpoint file. Missing file is not an error.
func (f *FileCheckpoint) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove checkpoint: %w", err)
	}
	return nil
}
