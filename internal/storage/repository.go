// ABOUTME: Repository interface for workout data storage.
// ABOUTME: Defines the contract for templates and the append-only log history.
package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/orionmayta1234/Workout-app/internal/models"
)

// ErrNotFound is returned when an ID or prefix matches no record.
var ErrNotFound = errors.New("not found")

// Repository defines the storage interface for workout data.
// This interface allows swapping implementations (SQLite, Charm Cloud,
// or fakes for testing).
type Repository interface {
	// Template operations. Templates are the blueprints sessions are
	// started from; Update replaces the stored revision wholesale.
	CreateTemplate(t *models.WorkoutTemplate) error
	GetTemplate(idOrPrefix string) (*models.WorkoutTemplate, error)
	ListTemplates() ([]*models.WorkoutTemplate, error)
	UpdateTemplate(t *models.WorkoutTemplate) error
	DeleteTemplate(idOrPrefix string) error

	// Workout log operations. History is append-only: logs are never
	// deleted, and deleting a template leaves its logs in place.
	PutLog(log *models.WorkoutLog) error
	GetLog(idOrPrefix string) (*models.WorkoutLog, error)
	ListLogs(limit int) ([]*models.WorkoutLog, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) (*ImportSummary, error)

	// Lifecycle
	Close() error
}

// FindTemplate resolves a template by ID, ID prefix, or exact name
// (case-insensitive). Name lookup lets the CLI say
// `workout start "Push Day"`.
func FindTemplate(r Repository, ref string) (*models.WorkoutTemplate, error) {
	t, err := r.GetTemplate(ref)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	templates, listErr := r.ListTemplates()
	if listErr != nil {
		return nil, listErr
	}
	for _, tpl := range templates {
		if strings.EqualFold(tpl.Name, ref) {
			return tpl, nil
		}
	}
	return nil, fmt.Errorf("template %q: %w", ref, ErrNotFound)
}
