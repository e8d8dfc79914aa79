// ABOUTME: ActiveSession, SessionExercise, and LoggedSet models for live workouts.
// ABOUTME: A session is the mutable working copy seeded from a template at start.
package models

import (
	"time"

	"github.com/google/uuid"
)

// ActiveSession is the mutable working copy of an in-progress workout.
// It is owned by the session controller; everything handed outward is
// a deep copy.
type ActiveSession struct {
	ID           uuid.UUID
	TemplateID   uuid.UUID
	TemplateName string
	StartedAt    time.Time
	Exercises    []SessionExercise
	BodyWeight   *float64
	Notes        string
}

// SessionExercise is one exercise within an active session. Sets is
// seeded to the template's TargetSets length and only ever grows.
type SessionExercise struct {
	ID                 uuid.UUID
	TemplateExerciseID uuid.UUID
	Name               string
	TargetReps         string
	Sets               []LoggedSet
}

// LoggedSet is a single set entry. Nil Reps/Weight mean the field is
// still empty. Completed flips false to true exactly once and never
// reverts.
type LoggedSet struct {
	Reps      *int
	Weight    *float64
	Completed bool
}

// NewSession seeds a working copy from a template. Each exercise gets
// TargetSets empty sets; no template memory is aliased.
func NewSession(t *WorkoutTemplate) *ActiveSession {
	s := &ActiveSession{
		ID:           uuid.New(),
		TemplateID:   t.ID,
		TemplateName: t.Name,
		StartedAt:    time.Now(),
		Exercises:    make([]SessionExercise, len(t.Exercises)),
	}
	for i, ex := range t.Exercises {
		s.Exercises[i] = SessionExercise{
			ID:                 uuid.New(),
			TemplateExerciseID: ex.ID,
			Name:               ex.Name,
			TargetReps:         ex.TargetReps,
			Sets:               make([]LoggedSet, ex.TargetSets),
		}
	}
	return s
}

// TotalSets counts every set across all exercises.
func (s *ActiveSession) TotalSets() int {
	n := 0
	for _, ex := range s.Exercises {
		n += len(ex.Sets)
	}
	return n
}

// CompletedSets counts the sets marked completed.
func (s *ActiveSession) CompletedSets() int {
	n := 0
	for _, ex := range s.Exercises {
		for _, set := range ex.Sets {
			if set.Completed {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the session.
func (s *ActiveSession) Clone() *ActiveSession {
	if s == nil {
		return nil
	}
	c := *s
	if s.BodyWeight != nil {
		w := *s.BodyWeight
		c.BodyWeight = &w
	}
	c.Exercises = make([]SessionExercise, len(s.Exercises))
	for i, ex := range s.Exercises {
		c.Exercises[i] = ex
		c.Exercises[i].Sets = cloneSets(ex.Sets)
	}
	return &c
}

// cloneSets deep-copies a set list, including pointer fields.
func cloneSets(sets []LoggedSet) []LoggedSet {
	out := make([]LoggedSet, len(sets))
	for i, set := range sets {
		out[i] = set
		if set.Reps != nil {
			r := *set.Reps
			out[i].Reps = &r
		}
		if set.Weight != nil {
			w := *set.Weight
			out[i].Weight = &w
		}
	}
	return out
}
