// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for templates, logs, and their exercises and sets.
package storage

// initSchema creates or updates the database schema.
// workout_logs has no foreign key to templates: logs survive template
// deletion and carry template_name denormalized for display.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS templates (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS template_exercises (
		id TEXT PRIMARY KEY,
		template_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		target_sets INTEGER NOT NULL,
		target_reps TEXT NOT NULL,
		notes TEXT,
		FOREIGN KEY (template_id) REFERENCES templates(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS workout_logs (
		id TEXT PRIMARY KEY,
		template_id TEXT NOT NULL,
		template_name TEXT NOT NULL,
		started_at DATETIME NOT NULL,
		ended_at DATETIME NOT NULL,
		duration_minutes INTEGER NOT NULL,
		body_weight REAL,
		notes TEXT,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS log_exercises (
		id TEXT PRIMARY KEY,
		log_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		FOREIGN KEY (log_id) REFERENCES workout_logs(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS log_sets (
		id TEXT PRIMARY KEY,
		log_exercise_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		reps INTEGER,
		weight REAL,
		completed INTEGER NOT NULL DEFAULT 1,
		FOREIGN KEY (log_exercise_id) REFERENCES log_exercises(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_templates_name ON templates(name);
	CREATE INDEX IF NOT EXISTS idx_template_exercises_template ON template_exercises(template_id, position);
	CREATE INDEX IF NOT EXISTS idx_workout_logs_started ON workout_logs(started_at DESC);
	CREATE INDEX IF NOT EXISTS idx_log_exercises_log ON log_exercises(log_id, position);
	CREATE INDEX IF NOT EXISTS idx_log_sets_exercise ON log_sets(log_exercise_id, position);
	`

	_, err := d.db.Exec(schema)
	return err
}
