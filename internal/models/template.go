// ABOUTME: WorkoutTemplate and TemplateExercise models for predefined workouts.
// ABOUTME: Templates are the blueprints that live sessions are seeded from.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// WorkoutTemplate represents a predefined workout blueprint.
// The engine treats templates as read-only; editing a template
// produces a new stored revision under the same ID.
type WorkoutTemplate struct {
	ID        uuid.UUID
	Name      string
	Exercises []TemplateExercise
	CreatedAt time.Time
}

// TemplateExercise represents one planned exercise within a template.
// TargetSets only seeds the initial number of editable sets when a
// session starts; it is not a cap and not a requirement.
type TemplateExercise struct {
	ID         uuid.UUID
	Name       string
	TargetSets int
	TargetReps string // display text, e.g. "8-12"
	Notes      *string
}

// NewTemplate creates a new WorkoutTemplate with generated UUID and current timestamp.
func NewTemplate(name string) *WorkoutTemplate {
	return &WorkoutTemplate{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now(),
	}
}

// AddExercise appends a planned exercise and returns the template for chaining.
func (t *WorkoutTemplate) AddExercise(name string, targetSets int, targetReps string) *WorkoutTemplate {
	t.Exercises = append(t.Exercises, TemplateExercise{
		ID:         uuid.New(),
		Name:       name,
		TargetSets: targetSets,
		TargetReps: targetReps,
	})
	return t
}

// WithNotes sets notes on the most recently added exercise.
func (t *WorkoutTemplate) WithNotes(notes string) *WorkoutTemplate {
	if len(t.Exercises) > 0 {
		t.Exercises[len(t.Exercises)-1].Notes = &notes
	}
	return t
}

// Validate checks that the template is usable as a session blueprint.
func (t *WorkoutTemplate) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("template name is required")
	}
	if len(t.Exercises) == 0 {
		return fmt.Errorf("template %q has no exercises", t.Name)
	}
	for i, ex := range t.Exercises {
		if ex.Name == "" {
			return fmt.Errorf("template %q: exercise %d has no name", t.Name, i)
		}
		if ex.TargetSets < 1 {
			return fmt.Errorf("template %q: exercise %q needs at least 1 target set", t.Name, ex.Name)
		}
	}
	return nil
}

// Clone returns a deep copy. Callers may mutate the copy freely
// without affecting the stored template.
func (t *WorkoutTemplate) Clone() *WorkoutTemplate {
	if t == nil {
		return nil
	}
	c := *t
	c.Exercises = make([]TemplateExercise, len(t.Exercises))
	for i, ex := range t.Exercises {
		c.Exercises[i] = ex
		if ex.Notes != nil {
			n := *ex.Notes
			c.Exercises[i].Notes = &n
		}
	}
	return &c
}
