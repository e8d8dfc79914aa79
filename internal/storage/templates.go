// ABOUTME: SQLite CRUD operations for workout templates.
// ABOUTME: Handles template and template exercise persistence with prefix-based ID resolution.
package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/orionmayta1234/Workout-app/internal/models"
)

// CreateTemplate stores a new workout template with its exercises.
func (d *DB) CreateTemplate(t *models.WorkoutTemplate) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("invalid template: %w", err)
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`INSERT INTO templates (id, name, created_at) VALUES (?, ?, ?)`,
		t.ID.String(), t.Name, t.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert template: %w", err)
	}

	if err := insertTemplateExercises(tx, t); err != nil {
		return err
	}

	return tx.Commit()
}

// GetTemplate retrieves a template by full ID or unique ID prefix.
func (d *DB) GetTemplate(idOrPrefix string) (*models.WorkoutTemplate, error) {
	id, err := d.resolveTemplateID(idOrPrefix)
	if err != nil {
		return nil, err
	}

	row := d.db.QueryRow(`SELECT id, name, created_at FROM templates WHERE id = ?`, id)
	t, err := scanTemplate(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("template %s: %w", idOrPrefix, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	if err := d.loadTemplateExercises(t); err != nil {
		return nil, err
	}
	return t, nil
}

// ListTemplates returns all templates ordered by name.
func (d *DB) ListTemplates() ([]*models.WorkoutTemplate, error) {
	rows, err := d.db.Query(`SELECT id, name, created_at FROM templates ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	var templates []*models.WorkoutTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate templates: %w", err)
	}

	for _, t := range templates {
		if err := d.loadTemplateExercises(t); err != nil {
			return nil, err
		}
	}
	return templates, nil
}

// UpdateTemplate replaces a stored template's name and exercises.
func (d *DB) UpdateTemplate(t *models.WorkoutTemplate) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("invalid template: %w", err)
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.Exec(`UPDATE templates SET name = ? WHERE id = ?`, t.Name, t.ID.String())
	if err != nil {
		return fmt.Errorf("failed to update template: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("template %s: %w", t.ID, ErrNotFound)
	}

	_, err = tx.Exec(`DELETE FROM template_exercises WHERE template_id = ?`, t.ID.String())
	if err != nil {
		return fmt.Errorf("failed to clear template exercises: %w", err)
	}

	if err := insertTemplateExercises(tx, t); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteTemplate removes a template by full ID or unique ID prefix.
// Workout logs recorded from the template are not touched.
func (d *DB) DeleteTemplate(idOrPrefix string) error {
	id, err := d.resolveTemplateID(idOrPrefix)
	if err != nil {
		return err
	}

	result, err := d.db.Exec(`DELETE FROM templates WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("template %s: %w", idOrPrefix, ErrNotFound)
	}
	return nil
}

// resolveTemplateID resolves a full UUID or unique prefix to a template ID.
func (d *DB) resolveTemplateID(idOrPrefix string) (string, error) {
	if len(idOrPrefix) == 36 && strings.Count(idOrPrefix, "-") == 4 {
		return idOrPrefix, nil
	}

	rows, err := d.db.Query(`SELECT id FROM templates WHERE id LIKE ?`, idOrPrefix+"%")
	if err != nil {
		return "", fmt.Errorf("failed to resolve template ID: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("failed to scan template ID: %w", err)
		}
		matches = append(matches, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("failed to iterate template IDs: %w", err)
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("template %s: %w", idOrPrefix, ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous template ID prefix %s matches %d templates", idOrPrefix, len(matches))
	}
}

func insertTemplateExercises(tx *sql.Tx, t *models.WorkoutTemplate) error {
	for i, ex := range t.Exercises {
		id := ex.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		var notes sql.NullString
		if ex.Notes != nil {
			notes = sql.NullString{String: *ex.Notes, Valid: true}
		}
		_, err := tx.Exec(
			`INSERT INTO template_exercises (id, template_id, position, name, target_sets, target_reps, notes)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id.String(), t.ID.String(), i, ex.Name, ex.TargetSets, ex.TargetReps, notes)
		if err != nil {
			return fmt.Errorf("failed to insert template exercise: %w", err)
		}
	}
	return nil
}

func (d *DB) loadTemplateExercises(t *models.WorkoutTemplate) error {
	rows, err := d.db.Query(
		`SELECT id, name, target_sets, target_reps, notes
		 FROM template_exercises WHERE template_id = ? ORDER BY position`,
		t.ID.String())
	if err != nil {
		return fmt.Errorf("failed to load template exercises: %w", err)
	}
	defer rows.Close()

	t.Exercises = nil
	for rows.Next() {
		var (
			idStr string
			ex    models.TemplateExercise
			notes sql.NullString
		)
		if err := rows.Scan(&idStr, &ex.Name, &ex.TargetSets, &ex.TargetReps, &notes); err != nil {
			return fmt.Errorf("failed to scan template exercise: %w", err)
		}
		id, err := uuid.Parse(idStr)
		if err != nil {
			return fmt.Errorf("failed to parse exercise ID: %w", err)
		}
		ex.ID = id
		if notes.Valid {
			ex.Notes = &notes.String
		}
		t.Exercises = append(t.Exercises, ex)
	}
	return rows.Err()
}

// scanner abstracts sql.Row and sql.Rows for shared scan helpers.
type scanner interface {
	Scan(dest ...any) error
}

func scanTemplate(s scanner) (*models.WorkoutTemplate, error) {
	var (
		idStr        string
		t            models.WorkoutTemplate
		createdAtStr string
	)
	if err := s.Scan(&idStr, &t.Name, &createdAtStr); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template ID: %w", err)
	}
	t.ID = id

	createdAt, err := parseStoredTime(createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	t.CreatedAt = createdAt

	return &t, nil
}

// parseStoredTime parses timestamps written by this tool (RFC3339) and
// tolerates the bare DATETIME format SQLite may hand back.
func parseStoredTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", s)
}
