// ABOUTME: Workout log persistence for Charm KV storage.
// ABOUTME: Logs are append-only JSON records sorted by start time on read.
package charm

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/orionmayta1234/Workout-app/internal/models"
	"github.com/orionmayta1234/Workout-app/internal/storage"
)

// PutLog stores a finished workout log in the KV store.
func (c *Client) PutLog(log *models.WorkoutLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}

	key := LogPrefix + log.ID.String()
	data, err := marshalJSON(log)
	if err != nil {
		return fmt.Errorf("marshal log: %w", err)
	}
	return c.set(key, data)
}

// GetLog retrieves a workout log by ID or ID prefix.
func (c *Client) GetLog(idOrPrefix string) (*models.WorkoutLog, error) {
	data, err := c.getByIDPrefix(LogPrefix, idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("get log: %w", err)
	}

	log, err := unmarshalJSON[models.WorkoutLog](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal log: %w", err)
	}

	return log, nil
}

// ListLogs retrieves workout logs sorted by start time, most recent
// first. limit <= 0 returns all logs.
func (c *Client) ListLogs(limit int) ([]*models.WorkoutLog, error) {
	allData, err := c.listByPrefix(LogPrefix)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	var logs []*models.WorkoutLog
	for _, data := range allData {
		log, err := unmarshalJSON[models.WorkoutLog](data)
		if err != nil {
			continue
		}
		logs = append(logs, log)
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].StartedAt.After(logs[j].StartedAt)
	})

	if limit > 0 && len(logs) > limit {
		logs = logs[:limit]
	}

	return logs, nil
}

// GetAllData retrieves all data for export.
func (c *Client) GetAllData() (*storage.ExportData, error) {
	templates, err := c.ListTemplates()
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	logs, err := c.ListLogs(0)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	return &storage.ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "workout",
		Templates:  templates,
		Logs:       logs,
	}, nil
}

// ImportData imports data from an export file, skipping records whose
// ID already exists.
func (c *Client) ImportData(data *storage.ExportData) (*storage.ImportSummary, error) {
	return storage.MergeImport(c, data)
}
