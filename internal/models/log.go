// ABOUTME: WorkoutLog and LogExercise models for finished workout records.
// ABOUTME: Logs are immutable history entries containing only completed sets.
package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// WorkoutLog is the immutable record of a finished session. TemplateID
// is informational only; deleting the template leaves the log intact,
// which is why TemplateName is denormalized here.
type WorkoutLog struct {
	ID              uuid.UUID
	TemplateID      uuid.UUID
	TemplateName    string
	StartedAt       time.Time
	EndedAt         time.Time
	DurationMinutes int
	BodyWeight      *float64
	Notes           *string
	Exercises       []LogExercise
	CreatedAt       time.Time
}

// LogExercise is one exercise entry in a finished log. Sets holds only
// the sets that were marked completed; it may be empty when the user
// skipped the exercise.
type LogExercise struct {
	Name string
	Sets []LoggedSet
}

// NewLogFromSession builds the immutable record for a session finished
// at end. Uncompleted sets are dropped; exercise order is preserved.
func NewLogFromSession(s *ActiveSession, end time.Time) *WorkoutLog {
	log := &WorkoutLog{
		ID:              uuid.New(),
		TemplateID:      s.TemplateID,
		TemplateName:    s.TemplateName,
		StartedAt:       s.StartedAt,
		EndedAt:         end,
		DurationMinutes: durationMinutes(s.StartedAt, end),
		Notes:           optionalString(s.Notes),
		CreatedAt:       time.Now(),
	}
	if s.BodyWeight != nil {
		w := *s.BodyWeight
		log.BodyWeight = &w
	}
	log.Exercises = make([]LogExercise, len(s.Exercises))
	for i, ex := range s.Exercises {
		var completed []LoggedSet
		for _, set := range ex.Sets {
			if set.Completed {
				completed = append(completed, set)
			}
		}
		log.Exercises[i] = LogExercise{
			Name: ex.Name,
			Sets: cloneSets(completed),
		}
	}
	return log
}

// CompletedSets counts the sets recorded across all exercises.
func (l *WorkoutLog) CompletedSets() int {
	n := 0
	for _, ex := range l.Exercises {
		n += len(ex.Sets)
	}
	return n
}

// Clone returns a deep copy of the log.
func (l *WorkoutLog) Clone() *WorkoutLog {
	if l == nil {
		return nil
	}
	c := *l
	if l.BodyWeight != nil {
		w := *l.BodyWeight
		c.BodyWeight = &w
	}
	if l.Notes != nil {
		n := *l.Notes
		c.Notes = &n
	}
	c.Exercises = make([]LogExercise, len(l.Exercises))
	for i, ex := range l.Exercises {
		c.Exercises[i] = LogExercise{
			Name: ex.Name,
			Sets: cloneSets(ex.Sets),
		}
	}
	return &c
}

// durationMinutes rounds the elapsed time to whole minutes, never
// negative.
func durationMinutes(start, end time.Time) int {
	mins := end.Sub(start).Minutes()
	if mins < 0 {
		return 0
	}
	return int(math.Round(mins))
}

// optionalString converts "" to nil for storage of optional text.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
