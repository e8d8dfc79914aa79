// ABOUTME: Unit tests for Charm-based workout storage.
// ABOUTME: Tests key formats and JSON record round-trips without a live server.
package charm

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/orionmayta1234/Workout-app/internal/models"
)

func TestTemplateKeyFormat(t *testing.T) {
	tmpl := models.NewTemplate("Push Day")
	key := TemplatePrefix + tmpl.ID.String()

	if key[:9] != "template:" {
		t.Errorf("Expected key to start with 'template:', got: %s", key[:9])
	}
}

func TestLogKeyFormat(t *testing.T) {
	logID := uuid.New()
	key := LogPrefix + logID.String()

	if key[:4] != "log:" {
		t.Errorf("Expected key to start with 'log:', got: %s", key[:4])
	}
}

func TestExtractID(t *testing.T) {
	id := "abc12345-1234-1234-1234-123456789abc"
	key := TemplatePrefix + id

	extracted := extractID(key, TemplatePrefix)
	if extracted != id {
		t.Errorf("Expected extracted ID %q, got %q", id, extracted)
	}
}

func TestTemplateRecordRoundTrip(t *testing.T) {
	tmpl := models.NewTemplate("Push Day").
		AddExercise("Bench Press", 3, "8-12").WithNotes("pause at chest")

	data, err := marshalJSON(tmpl)
	if err != nil {
		t.Fatalf("marshalJSON failed: %v", err)
	}

	got, err := unmarshalJSON[models.WorkoutTemplate](data)
	if err != nil {
		t.Fatalf("unmarshalJSON failed: %v", err)
	}

	if got.ID != tmpl.ID {
		t.Errorf("ID mismatch: got %v, want %v", got.ID, tmpl.ID)
	}
	if got.Name != tmpl.Name {
		t.Errorf("Name mismatch: got %v, want %v", got.Name, tmpl.Name)
	}
	if len(got.Exercises) != 1 {
		t.Fatalf("Expected 1 exercise, got %d", len(got.Exercises))
	}
	if got.Exercises[0].Notes == nil || *got.Exercises[0].Notes != "pause at chest" {
		t.Errorf("Notes mismatch: got %v", got.Exercises[0].Notes)
	}
}

func TestLogRecordRoundTrip(t *testing.T) {
	reps := 10
	weight := 62.5
	log := &models.WorkoutLog{
		ID:              uuid.New(),
		TemplateID:      uuid.New(),
		TemplateName:    "Push Day",
		StartedAt:       time.Now().Add(-45 * time.Minute).Truncate(time.Second),
		EndedAt:         time.Now().Truncate(time.Second),
		DurationMinutes: 45,
		Exercises: []models.LogExercise{
			{
				Name: "Bench Press",
				Sets: []models.LoggedSet{{Reps: &reps, Weight: &weight, Completed: true}},
			},
		},
		CreatedAt: time.Now().Truncate(time.Second),
	}

	data, err := marshalJSON(log)
	if err != nil {
		t.Fatalf("marshalJSON failed: %v", err)
	}

	got, err := unmarshalJSON[models.WorkoutLog](data)
	if err != nil {
		t.Fatalf("unmarshalJSON failed: %v", err)
	}

	if got.ID != log.ID {
		t.Errorf("ID mismatch: got %v, want %v", got.ID, log.ID)
	}
	if !got.StartedAt.Equal(log.StartedAt) {
		t.Errorf("StartedAt mismatch: got %v, want %v", got.StartedAt, log.StartedAt)
	}
	if len(got.Exercises) != 1 || len(got.Exercises[0].Sets) != 1 {
		t.Fatalf("Exercise structure mismatch: %+v", got.Exercises)
	}
	set := got.Exercises[0].Sets[0]
	if set.Reps == nil || *set.Reps != 10 {
		t.Errorf("Reps mismatch: got %v", set.Reps)
	}
	if set.Weight == nil || *set.Weight != 62.5 {
		t.Errorf("Weight mismatch: got %v", set.Weight)
	}
	if !set.Completed {
		t.Error("Expected set to remain completed")
	}
}
