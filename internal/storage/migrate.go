// ABOUTME: Data migration between workout storage backends.
// ABOUTME: Copies templates and workout logs from source to destination.

package storage

import (
	"fmt"
)

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Templates int
	Logs      int
}

// MigrateData copies all data from src to dst storage.
// Records already present in the destination (matched by ID) are left
// alone, so migrating into a non-empty backend is safe to retry.
func MigrateData(src, dst Repository) (*MigrateSummary, error) {
	summary := &MigrateSummary{}

	data, err := src.GetAllData()
	if err != nil {
		return nil, fmt.Errorf("read source data: %w", err)
	}

	imported, err := MergeImport(dst, data)
	if err != nil {
		return nil, fmt.Errorf("write destination data: %w", err)
	}

	summary.Templates = imported.Templates
	summary.Logs = imported.Logs
	return summary, nil
}
