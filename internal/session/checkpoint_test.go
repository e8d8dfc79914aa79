// ABOUTME: Tests for the JSON file session checkpoint.
// ABOUTME: Covers roundtrip fidelity, missing files, and clearing.
package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/orionmayta1234/Workout-app/internal/models"
)

func TestFileCheckpointRoundTrip(t *testing.T) {
	cp := NewFileCheckpoint(filepath.Join(t.TempDir(), "session.json"))

	tpl := models.NewTemplate("Push Day").AddExercise("Bench Press", 2, "8-12")
	sess := models.NewSession(tpl)
	reps := 10
	weight := 62.5
	sess.Exercises[0].Sets[0] = models.LoggedSet{Reps: &reps, Weight: &weight, Completed: true}
	bw := 82.5
	sess.BodyWeight = &bw
	sess.Notes = "shoulder felt fine"

	if err := cp.Save(sess); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := cp.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected a session, got nil")
	}
	if got.ID != sess.ID {
		t.Error("expected session ID to survive the roundtrip")
	}
	if got.TemplateName != "Push Day" {
		t.Errorf("TemplateName = %s, want Push Day", got.TemplateName)
	}
	if !got.StartedAt.Equal(sess.StartedAt) {
		t.Error("expected StartedAt to survive the roundtrip")
	}
	set := got.Exercises[0].Sets[0]
	if set.Reps == nil || *set.Reps != 10 {
		t.Error("expected reps 10")
	}
	if set.Weight == nil || *set.Weight != 62.5 {
		t.Error("expected weight 62.5")
	}
	if !set.Completed {
		t.Error("expected completed set")
	}
	if got.Exercises[0].Sets[1].Reps != nil {
		t.Error("expected second set still empty")
	}
	if got.BodyWeight == nil || *got.BodyWeight != 82.5 {
		t.Error("expected body weight 82.5")
	}
	if got.Notes != "shoulder felt fine" {
		t.Errorf("Notes = %s, want shoulder felt fine", got.Notes)
	}
}

func TestFileCheckpointLoadMissing(t *testing.T) {
	cp := NewFileCheckpoint(filepath.Join(t.TempDir(), "absent.json"))

	got, err := cp.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != nil {
		t.Error("expected nil session for missing checkpoint")
	}
}

func TestFileCheckpointLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("not json"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cp := NewFileCheckpoint(path)
	if _, err := cp.Load(); err == nil {
		t.Error("expected error for corrupt checkpoint")
	}
}

func TestFileCheckpointClear(t *testing.T) {
	cp := NewFileCheckpoint(filepath.Join(t.TempDir(), "session.json"))

	tpl := models.NewTemplate("Push Day").AddExercise("Bench Press", 1, "8-12")
	if err := cp.Save(models.NewSession(tpl)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := cp.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	got, err := cp.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != nil {
		t.Error("expected no session after clear")
	}

	// Clearing again is not an error.
	if err := cp.Clear(); err != nil {
		t.Errorf("second Clear = %v, want nil", err)
	}
}

func TestFileCheckpointCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "session.json")
	cp := NewFileCheckpoint(path)

	tpl := models.NewTemplate("Push Day").AddExercise("Bench Press", 1, "8-12")
	if err := cp.Save(models.NewSession(tpl)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected checkpoint file to exist: %v", err)
	}
}
