// ABOUTME: Tests for ActiveSession, SessionExercise, and LoggedSet models.
// ABOUTME: Validates template seeding, set counting, and deep cloning.
package models

import (
	"testing"
)

func TestNewSessionSeedsSets(t *testing.T) {
	tpl := NewTemplate("Push Day").
		AddExercise("Bench Press", 3, "8-12").
		AddExercise("Overhead Press", 4, "6-8")

	s := NewSession(tpl)

	if s.TemplateID != tpl.ID {
		t.Error("expected TemplateID to match template")
	}
	if s.TemplateName != "Push Day" {
		t.Errorf("TemplateName = %s, want Push Day", s.TemplateName)
	}
	if s.StartedAt.IsZero() {
		t.Error("expected StartedAt to be set")
	}
	if len(s.Exercises) != 2 {
		t.Fatalf("expected 2 exercises, got %d", len(s.Exercises))
	}
	if len(s.Exercises[0].Sets) != 3 {
		t.Errorf("expected 3 seeded sets, got %d", len(s.Exercises[0].Sets))
	}
	if len(s.Exercises[1].Sets) != 4 {
		t.Errorf("expected 4 seeded sets, got %d", len(s.Exercises[1].Sets))
	}
	for i, set := range s.Exercises[0].Sets {
		if set.Completed {
			t.Errorf("seeded set %d should not be completed", i)
		}
		if set.Reps != nil || set.Weight != nil {
			t.Errorf("seeded set %d should have empty fields", i)
		}
	}
}

func TestNewSessionDoesNotAliasTemplate(t *testing.T) {
	tpl := NewTemplate("Push Day").AddExercise("Bench Press", 2, "8-12")
	s := NewSession(tpl)

	s.Exercises[0].Name = "Edited"
	s.TemplateName = "Edited"

	if tpl.Name != "Push Day" || tpl.Exercises[0].Name != "Bench Press" {
		t.Error("session mutation leaked into template")
	}
}

func TestSetCounts(t *testing.T) {
	tpl := NewTemplate("Push Day").
		AddExercise("Bench Press", 3, "8-12").
		AddExercise("Overhead Press", 2, "6-8")
	s := NewSession(tpl)

	if s.TotalSets() != 5 {
		t.Errorf("TotalSets = %d, want 5", s.TotalSets())
	}
	if s.CompletedSets() != 0 {
		t.Errorf("CompletedSets = %d, want 0", s.CompletedSets())
	}

	s.Exercises[0].Sets[0].Completed = true
	s.Exercises[1].Sets[1].Completed = true

	if s.CompletedSets() != 2 {
		t.Errorf("CompletedSets = %d, want 2", s.CompletedSets())
	}
}

func TestSessionClone(t *testing.T) {
	tpl := NewTemplate("Push Day").AddExercise("Bench Press", 2, "8-12")
	s := NewSession(tpl)

	reps := 10
	weight := 60.5
	s.Exercises[0].Sets[0] = LoggedSet{Reps: &reps, Weight: &weight, Completed: true}
	bw := 82.5
	s.BodyWeight = &bw

	c := s.Clone()
	*c.Exercises[0].Sets[0].Reps = 99
	*c.Exercises[0].Sets[0].Weight = 1.0
	c.Exercises[0].Sets[1].Completed = true
	*c.BodyWeight = 70.0

	if *s.Exercises[0].Sets[0].Reps != 10 {
		t.Error("clone shares reps pointer with original")
	}
	if *s.Exercises[0].Sets[0].Weight != 60.5 {
		t.Error("clone shares weight pointer with original")
	}
	if s.Exercises[0].Sets[1].Completed {
		t.Error("clone mutation changed original set")
	}
	if *s.BodyWeight != 82.5 {
		t.Error("clone shares body weight pointer with original")
	}
}

func TestSessionCloneNil(t *testing.T) {
	var s *ActiveSession
	if s.Clone() != nil {
		t.Error("expected nil clone of nil session")
	}
}
