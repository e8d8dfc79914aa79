// ABOUTME: Tests for the session controller state machine.
// ABOUTME: Covers start conflicts, discard, finish, retry after failure, restore.
package session

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/orionmayta1234/Workout-app/internal/models"
)

// fakeAppender records appended logs and can fail on demand.
type fakeAppender struct {
	logs []*models.WorkoutLog
	err  error
}

func (f *fakeAppender) Append(log *models.WorkoutLog) error {
	if f.err != nil {
		return f.err
	}
	f.logs = append(f.logs, log)
	return nil
}

// fakeTimer records rest countdown starts and stops.
type fakeTimer struct {
	starts []time.Duration
	stops  int
}

func (f *fakeTimer) Start(d time.Duration) { f.starts = append(f.starts, d) }

func (f *fakeTimer) Stop() { f.stops++ }

func pushDay() *models.WorkoutTemplate {
	return models.NewTemplate("Push Day").
		AddExercise("Bench Press", 3, "8-12").
		AddExercise("Overhead Press", 2, "6-8")
}

func TestStartSeedsSession(t *testing.T) {
	ctrl := NewController(&fakeAppender{}, &fakeTimer{})

	sess, err := ctrl.Start(pushDay())
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if ctrl.State() != StateActive {
		t.Errorf("State = %s, want active", ctrl.State())
	}
	if sess.TemplateName != "Push Day" {
		t.Errorf("TemplateName = %s, want Push Day", sess.TemplateName)
	}
	if len(sess.Exercises) != 2 {
		t.Fatalf("expected 2 exercises, got %d", len(sess.Exercises))
	}
	if len(sess.Exercises[0].Sets) != 3 {
		t.Errorf("expected 3 seeded sets, got %d", len(sess.Exercises[0].Sets))
	}
	if sess.CompletedSets() != 0 {
		t.Errorf("expected no completed sets, got %d", sess.CompletedSets())
	}
}

func TestStartWhileActiveConflict(t *testing.T) {
	ctrl := NewController(&fakeAppender{}, &fakeTimer{})
	if _, err := ctrl.Start(pushDay()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	other := models.NewTemplate("Pull Day").AddExercise("Deadlift", 3, "5")
	_, err := ctrl.Start(other)

	if !errors.Is(err, ErrSessionInProgress) {
		t.Errorf("second Start = %v, want ErrSessionInProgress", err)
	}
	if got := ctrl.Session().TemplateName; got != "Push Day" {
		t.Errorf("running session changed to %s, want Push Day", got)
	}
}

func TestStartInvalidTemplate(t *testing.T) {
	ctrl := NewController(&fakeAppender{}, &fakeTimer{})

	_, err := ctrl.Start(models.NewTemplate("Empty"))

	if err == nil {
		t.Fatal("expected error for template without exercises")
	}
	if ctrl.Active() {
		t.Error("failed start should leave the controller idle")
	}
}

func TestSessionReturnsDeepCopy(t *testing.T) {
	ctrl := NewController(&fakeAppender{}, &fakeTimer{})
	if _, err := ctrl.Start(pushDay()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	copy1 := ctrl.Session()
	copy1.Exercises[0].Sets[0].Completed = true
	copy1.TemplateName = "mangled"

	copy2 := ctrl.Session()
	if copy2.Exercises[0].Sets[0].Completed {
		t.Error("mutating a returned session leaked into the controller")
	}
	if copy2.TemplateName != "Push Day" {
		t.Errorf("TemplateName = %s, want Push Day", copy2.TemplateName)
	}
}

func TestSessionNilWhenIdle(t *testing.T) {
	ctrl := NewController(&fakeAppender{}, &fakeTimer{})
	if ctrl.Session() != nil {
		t.Error("expected nil session when idle")
	}
}

func TestSetBodyWeightAndNotes(t *testing.T) {
	ctrl := NewController(&fakeAppender{}, &fakeTimer{})

	if err := ctrl.SetBodyWeight(82.5); !errors.Is(err, ErrNoSession) {
		t.Errorf("SetBodyWeight when idle = %v, want ErrNoSession", err)
	}
	if err := ctrl.SetNotes("hi"); !errors.Is(err, ErrNoSession) {
		t.Errorf("SetNotes when idle = %v, want ErrNoSession", err)
	}

	if _, err := ctrl.Start(pushDay()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if err := ctrl.SetBodyWeight(-1); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("negative body weight = %v, want ErrInvalidValue", err)
	}
	if err := ctrl.SetBodyWeight(82.5); err != nil {
		t.Fatalf("SetBodyWeight failed: %v", err)
	}
	if err := ctrl.SetNotes("felt strong"); err != nil {
		t.Fatalf("SetNotes failed: %v", err)
	}

	sess := ctrl.Session()
	if sess.BodyWeight == nil || *sess.BodyWeight != 82.5 {
		t.Error("expected body weight 82.5")
	}
	if sess.Notes != "felt strong" {
		t.Errorf("Notes = %s, want felt strong", sess.Notes)
	}
}

func TestDiscardDropsSession(t *testing.T) {
	app := &fakeAppender{}
	timer := &fakeTimer{}
	ctrl := NewController(app, timer)
	if _, err := ctrl.Start(pushDay()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if err := ctrl.Discard(); err != nil {
		t.Fatalf("Discard failed: %v", err)
	}

	if ctrl.Active() {
		t.Error("expected idle after discard")
	}
	if ctrl.Session() != nil {
		t.Error("expected no session after discard")
	}
	if len(app.logs) != 0 {
		t.Errorf("discard must not record history, got %d logs", len(app.logs))
	}
	if timer.stops != 1 {
		t.Errorf("expected rest timer stopped once, got %d", timer.stops)
	}
}

func TestDiscardWhenIdle(t *testing.T) {
	ctrl := NewController(&fakeAppender{}, &fakeTimer{})
	if err := ctrl.Discard(); !errors.Is(err, ErrNoSession) {
		t.Errorf("Discard when idle = %v, want ErrNoSession", err)
	}
}

func TestFinishAppendsCompletedOnly(t *testing.T) {
	app := &fakeAppender{}
	timer := &fakeTimer{}
	ctrl := NewController(app, timer)
	if _, err := ctrl.Start(pushDay()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	reps := 10
	if err := ctrl.SetReps(0, 0, &reps); err != nil {
		t.Fatalf("SetReps failed: %v", err)
	}
	if err := ctrl.LogSet(0, 0); err != nil {
		t.Fatalf("LogSet failed: %v", err)
	}

	log, err := ctrl.Finish()
	if err != nil {
		t.Fatalf("Finish failed: %v", err)
	}

	if ctrl.Active() {
		t.Error("expected idle after finish")
	}
	if len(app.logs) != 1 {
		t.Fatalf("expected 1 appended log, got %d", len(app.logs))
	}
	if log.CompletedSets() != 1 {
		t.Errorf("log CompletedSets = %d, want 1", log.CompletedSets())
	}
	if len(log.Exercises[0].Sets) != 1 {
		t.Errorf("expected exactly 1 set in the first exercise, got %d", len(log.Exercises[0].Sets))
	}
	for _, ex := range log.Exercises {
		for _, set := range ex.Sets {
			if !set.Completed {
				t.Error("finished log contains an uncompleted set")
			}
		}
	}
	if timer.stops != 1 {
		t.Errorf("expected rest timer stopped once, got %d", timer.stops)
	}
}

func TestFinishWhenIdle(t *testing.T) {
	ctrl := NewController(&fakeAppender{}, &fakeTimer{})
	if _, err := ctrl.Finish(); !errors.Is(err, ErrNoSession) {
		t.Errorf("Finish when idle = %v, want ErrNoSession", err)
	}
}

func TestFinishAppendFailureKeepsSessionActive(t *testing.T) {
	sentinel := errors.New("store offline")
	app := &fakeAppender{err: sentinel}
	ctrl := NewController(app, &fakeTimer{})
	if _, err := ctrl.Start(pushDay()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	reps := 8
	if err := ctrl.SetReps(0, 0, &reps); err != nil {
		t.Fatalf("SetReps failed: %v", err)
	}
	if err := ctrl.LogSet(0, 0); err != nil {
		t.Fatalf("LogSet failed: %v", err)
	}

	_, err := ctrl.Finish()
	if !errors.Is(err, sentinel) {
		t.Errorf("Finish error = %v, want wrapped %v", err, sentinel)
	}
	if !ctrl.Active() {
		t.Fatal("failed finish must keep the session active")
	}
	sess := ctrl.Session()
	if sess == nil || sess.CompletedSets() != 1 {
		t.Error("failed finish must preserve the working copy")
	}

	// The store comes back and the same finish succeeds.
	app.err = nil
	log, err := ctrl.Finish()
	if err != nil {
		t.Fatalf("retried Finish failed: %v", err)
	}
	if log.CompletedSets() != 1 {
		t.Errorf("retried log CompletedSets = %d, want 1", log.CompletedSets())
	}
	if ctrl.Active() {
		t.Error("expected idle after successful retry")
	}
}

func TestFinishWithNoCompletedSets(t *testing.T) {
	app := &fakeAppender{}
	ctrl := NewController(app, &fakeTimer{})
	if _, err := ctrl.Start(pushDay()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	log, err := ctrl.Finish()
	if err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	if log.CompletedSets() != 0 {
		t.Errorf("CompletedSets = %d, want 0", log.CompletedSets())
	}
}

func TestLifecycleLoop(t *testing.T) {
	ctrl := NewController(&fakeAppender{}, &fakeTimer{})

	if _, err := ctrl.Start(pushDay()); err != nil {
		t.Fatalf("first Start failed: %v", err)
	}
	if err := ctrl.Discard(); err != nil {
		t.Fatalf("Discard failed: %v", err)
	}
	if _, err := ctrl.Start(pushDay()); err != nil {
		t.Fatalf("Start after discard failed: %v", err)
	}
	if _, err := ctrl.Finish(); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	if _, err := ctrl.Start(pushDay()); err != nil {
		t.Fatalf("Start after finish failed: %v", err)
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	cp := NewFileCheckpoint(filepath.Join(t.TempDir(), "session.json"))

	first := NewController(&fakeAppender{}, &fakeTimer{}, WithCheckpoint(cp))
	if _, err := first.Start(pushDay()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	reps := 10
	if err := first.SetReps(0, 0, &reps); err != nil {
		t.Fatalf("SetReps failed: %v", err)
	}
	if err := first.LogSet(0, 0); err != nil {
		t.Fatalf("LogSet failed: %v", err)
	}

	// A new process picks the session back up.
	second := NewController(&fakeAppender{}, &fakeTimer{}, WithCheckpoint(cp))
	if err := second.Restore(); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if !second.Active() {
		t.Fatal("expected restored session to be active")
	}
	sess := second.Session()
	if sess.TemplateName != "Push Day" {
		t.Errorf("TemplateName = %s, want Push Day", sess.TemplateName)
	}
	if sess.CompletedSets() != 1 {
		t.Errorf("CompletedSets = %d, want 1", sess.CompletedSets())
	}

	if _, err := second.Finish(); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}

	// Finish cleared the checkpoint; nothing left to restore.
	third := NewController(&fakeAppender{}, &fakeTimer{}, WithCheckpoint(cp))
	if err := third.Restore(); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if third.Active() {
		t.Error("expected no session after checkpoint was cleared")
	}
}

func TestRestoreWhenActive(t *testing.T) {
	cp := NewFileCheckpoint(filepath.Join(t.TempDir(), "session.json"))
	ctrl := NewController(&fakeAppender{}, &fakeTimer{}, WithCheckpoint(cp))
	if _, err := ctrl.Start(pushDay()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if err := ctrl.Restore(); !errors.Is(err, ErrSessionInProgress) {
		t.Errorf("Restore while active = %v, want ErrSessionInProgress", err)
	}
}

func TestRestoreWithoutCheckpointer(t *testing.T) {
	ctrl := NewController(&fakeAppender{}, &fakeTimer{})
	if err := ctrl.Restore(); err != nil {
		t.Errorf("Restore without checkpointer = %v, want nil", err)
	}
	if ctrl.Active() {
		t.Error("expected idle")
	}
}

// failingCheckpoint always fails to save.
type failingCheckpoint struct{ err error }

func (f *failingCheckpoint) Save(*models.ActiveSession) error { return f.err }

func (f *failingCheckpoint) Load() (*models.ActiveSession, error) { return nil, nil }

func (f *failingCheckpoint) Clear() error { return nil }

func TestStartCheckpointFailure(t *testing.T) {
	sentinel := errors.New("disk full")
	ctrl := NewController(&fakeAppender{}, &fakeTimer{}, WithCheckpoint(&failingCheckpoint{err: sentinel}))

	_, err := ctrl.Start(pushDay())
	if !errors.Is(err, sentinel) {
		t.Errorf("Start error = %v, want wrapped %v", err, sentinel)
	}
	if ctrl.Active() {
		t.Error("failed start should leave the controller idle")
	}
}
