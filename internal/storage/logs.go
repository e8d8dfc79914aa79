// ABOUTME: SQLite persistence for finished workout logs.
// ABOUTME: Stores logs with nested exercises and sets, listed most recent first.
package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/orionmayta1234/Workout-app/internal/models"
)

// PutLog stores a finished workout log with its exercises and sets.
func (d *DB) PutLog(log *models.WorkoutLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var bodyWeight sql.NullFloat64
	if log.BodyWeight != nil {
		bodyWeight = sql.NullFloat64{Float64: *log.BodyWeight, Valid: true}
	}
	var notes sql.NullString
	if log.Notes != nil {
		notes = sql.NullString{String: *log.Notes, Valid: true}
	}

	_, err = tx.Exec(
		`INSERT INTO workout_logs (id, template_id, template_name, started_at, ended_at, duration_minutes, body_weight, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		log.ID.String(), log.TemplateID.String(), log.TemplateName,
		log.StartedAt.Format(time.RFC3339), log.EndedAt.Format(time.RFC3339),
		log.DurationMinutes, bodyWeight, notes, log.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert workout log: %w", err)
	}

	for i, ex := range log.Exercises {
		exID := uuid.New()
		_, err = tx.Exec(
			`INSERT INTO log_exercises (id, log_id, position, name) VALUES (?, ?, ?, ?)`,
			exID.String(), log.ID.String(), i, ex.Name)
		if err != nil {
			return fmt.Errorf("failed to insert log exercise: %w", err)
		}

		for j, set := range ex.Sets {
			var reps sql.NullInt64
			if set.Reps != nil {
				reps = sql.NullInt64{Int64: int64(*set.Reps), Valid: true}
			}
			var weight sql.NullFloat64
			if set.Weight != nil {
				weight = sql.NullFloat64{Float64: *set.Weight, Valid: true}
			}
			completed := 0
			if set.Completed {
				completed = 1
			}
			_, err = tx.Exec(
				`INSERT INTO log_sets (id, log_exercise_id, position, reps, weight, completed)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				uuid.New().String(), exID.String(), j, reps, weight, completed)
			if err != nil {
				return fmt.Errorf("failed to insert log set: %w", err)
			}
		}
	}

	return tx.Commit()
}

// GetLog retrieves a workout log by full ID or unique ID prefix.
func (d *DB) GetLog(idOrPrefix string) (*models.WorkoutLog, error) {
	id, err := d.resolveLogID(idOrPrefix)
	if err != nil {
		return nil, err
	}

	row := d.db.QueryRow(
		`SELECT id, template_id, template_name, started_at, ended_at, duration_minutes, body_weight, notes, created_at
		 FROM workout_logs WHERE id = ?`, id)
	log, err := scanLog(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("workout log %s: %w", idOrPrefix, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get workout log: %w", err)
	}

	if err := d.loadLogExercises(log); err != nil {
		return nil, err
	}
	return log, nil
}

// ListLogs returns workout logs ordered by start time, most recent first.
// limit <= 0 returns all logs.
func (d *DB) ListLogs(limit int) ([]*models.WorkoutLog, error) {
	query := `SELECT id, template_id, template_name, started_at, ended_at, duration_minutes, body_weight, notes, created_at
	 FROM workout_logs ORDER BY started_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list workout logs: %w", err)
	}
	defer rows.Close()

	var logs []*models.WorkoutLog
	for rows.Next() {
		log, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workout log: %w", err)
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate workout logs: %w", err)
	}

	for _, log := range logs {
		if err := d.loadLogExercises(log); err != nil {
			return nil, err
		}
	}
	return logs, nil
}

// resolveLogID resolves a full UUID or unique prefix to a workout log ID.
func (d *DB) resolveLogID(idOrPrefix string) (string, error) {
	if len(idOrPrefix) == 36 && strings.Count(idOrPrefix, "-") == 4 {
		return idOrPrefix, nil
	}

	rows, err := d.db.Query(`SELECT id FROM workout_logs WHERE id LIKE ?`, idOrPrefix+"%")
	if err != nil {
		return "", fmt.Errorf("failed to resolve log ID: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("failed to scan log ID: %w", err)
		}
		matches = append(matches, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("failed to iterate log IDs: %w", err)
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("workout log %s: %w", idOrPrefix, ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous log ID prefix %s matches %d logs", idOrPrefix, len(matches))
	}
}

func (d *DB) loadLogExercises(log *models.WorkoutLog) error {
	rows, err := d.db.Query(
		`SELECT id, name FROM log_exercises WHERE log_id = ? ORDER BY position`,
		log.ID.String())
	if err != nil {
		return fmt.Errorf("failed to load log exercises: %w", err)
	}
	defer rows.Close()

	type exRow struct {
		id   string
		name string
	}
	var exRows []exRow
	for rows.Next() {
		var r exRow
		if err := rows.Scan(&r.id, &r.name); err != nil {
			return fmt.Errorf("failed to scan log exercise: %w", err)
		}
		exRows = append(exRows, r)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate log exercises: %w", err)
	}

	log.Exercises = nil
	for _, r := range exRows {
		sets, err := d.loadLogSets(r.id)
		if err != nil {
			return err
		}
		log.Exercises = append(log.Exercises, models.LogExercise{Name: r.name, Sets: sets})
	}
	return nil
}

func (d *DB) loadLogSets(logExerciseID string) ([]models.LoggedSet, error) {
	rows, err := d.db.Query(
		`SELECT reps, weight, completed FROM log_sets WHERE log_exercise_id = ? ORDER BY position`,
		logExerciseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load log sets: %w", err)
	}
	defer rows.Close()

	var sets []models.LoggedSet
	for rows.Next() {
		var (
			reps      sql.NullInt64
			weight    sql.NullFloat64
			completed int
		)
		if err := rows.Scan(&reps, &weight, &completed); err != nil {
			return nil, fmt.Errorf("failed to scan log set: %w", err)
		}
		var set models.LoggedSet
		if reps.Valid {
			v := int(reps.Int64)
			set.Reps = &v
		}
		if weight.Valid {
			v := weight.Float64
			set.Weight = &v
		}
		set.Completed = completed != 0
		sets = append(sets, set)
	}
	return sets, rows.Err()
}

func scanLog(s scanner) (*models.WorkoutLog, error) {
	var (
		idStr         string
		templateIDStr string
		log           models.WorkoutLog
		startedAtStr  string
		endedAtStr    string
		bodyWeight    sql.NullFloat64
		notes         sql.NullString
		createdAtStr  string
	)
	err := s.Scan(&idStr, &templateIDStr, &log.TemplateName, &startedAtStr, &endedAtStr,
		&log.DurationMinutes, &bodyWeight, &notes, &createdAtStr)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log ID: %w", err)
	}
	log.ID = id

	templateID, err := uuid.Parse(templateIDStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template ID: %w", err)
	}
	log.TemplateID = templateID

	if log.StartedAt, err = parseStoredTime(startedAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse started_at: %w", err)
	}
	if log.EndedAt, err = parseStoredTime(endedAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse ended_at: %w", err)
	}
	if log.CreatedAt, err = parseStoredTime(createdAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	if bodyWeight.Valid {
		log.BodyWeight = &bodyWeight.Float64
	}
	if notes.Valid {
		log.Notes = &notes.String
	}

	return &log, nil
}
