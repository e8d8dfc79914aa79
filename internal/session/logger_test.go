// ABOUTME: Tests for the set logger: field edits, completion, and add-set.
// ABOUTME: Covers idempotency, index errors, validation modes, and the timer hook.
package session

import (
	"errors"
	"testing"
	"time"
)

// activeController starts a Push Day session and returns the controller
// with its recording timer.
func activeController(t *testing.T, opts ...Option) (*Controller, *fakeTimer) {
	t.Helper()
	timer := &fakeTimer{}
	ctrl := NewController(&fakeAppender{}, timer, opts...)
	if _, err := ctrl.Start(pushDay()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	return ctrl, timer
}

func TestUpdateSetFieldParsesValues(t *testing.T) {
	ctrl, _ := activeController(t)

	if err := ctrl.UpdateSetField(0, 0, FieldReps, "10"); err != nil {
		t.Fatalf("UpdateSetField reps failed: %v", err)
	}
	if err := ctrl.UpdateSetField(0, 0, FieldWeight, "62.5"); err != nil {
		t.Fatalf("UpdateSetField weight failed: %v", err)
	}

	set := ctrl.Session().Exercises[0].Sets[0]
	if set.Reps == nil || *set.Reps != 10 {
		t.Error("expected reps 10")
	}
	if set.Weight == nil || *set.Weight != 62.5 {
		t.Error("expected weight 62.5")
	}
}

func TestUpdateSetFieldEmptyClears(t *testing.T) {
	ctrl, _ := activeController(t)

	if err := ctrl.UpdateSetField(0, 0, FieldReps, "10"); err != nil {
		t.Fatalf("UpdateSetField failed: %v", err)
	}
	if err := ctrl.UpdateSetField(0, 0, FieldReps, ""); err != nil {
		t.Fatalf("clearing reps failed: %v", err)
	}

	set := ctrl.Session().Exercises[0].Sets[0]
	if set.Reps != nil {
		t.Error("expected reps cleared back to empty")
	}
}

func TestUpdateSetFieldUnknown(t *testing.T) {
	ctrl, _ := activeController(t)

	err := ctrl.UpdateSetField(0, 0, Field("tempo"), "3")
	if !errors.Is(err, ErrUnknownField) {
		t.Errorf("unknown field = %v, want ErrUnknownField", err)
	}
}

func TestUpdateSetFieldBadNumber(t *testing.T) {
	ctrl, _ := activeController(t)

	if err := ctrl.UpdateSetField(0, 0, FieldReps, "ten"); err == nil {
		t.Error("expected parse error for reps")
	}
	if err := ctrl.UpdateSetField(0, 0, FieldWeight, "heavy"); err == nil {
		t.Error("expected parse error for weight")
	}
}

func TestUpdateSetIdempotent(t *testing.T) {
	ctrl, _ := activeController(t)
	reps := 10

	if err := ctrl.SetReps(0, 0, &reps); err != nil {
		t.Fatalf("SetReps failed: %v", err)
	}
	if err := ctrl.SetReps(0, 0, &reps); err != nil {
		t.Fatalf("repeated SetReps failed: %v", err)
	}

	set := ctrl.Session().Exercises[0].Sets[0]
	if set.Reps == nil || *set.Reps != 10 {
		t.Error("expected reps 10 after repeated update")
	}
	if set.Completed {
		t.Error("field edits must not complete the set")
	}
}

func TestUpdateCompletedSetRejected(t *testing.T) {
	ctrl, _ := activeController(t)
	reps := 10
	if err := ctrl.SetReps(0, 0, &reps); err != nil {
		t.Fatalf("SetReps failed: %v", err)
	}
	if err := ctrl.LogSet(0, 0); err != nil {
		t.Fatalf("LogSet failed: %v", err)
	}

	other := 12
	if err := ctrl.SetReps(0, 0, &other); !errors.Is(err, ErrSetCompleted) {
		t.Errorf("SetReps on completed set = %v, want ErrSetCompleted", err)
	}
	w := 60.0
	if err := ctrl.SetWeight(0, 0, &w); !errors.Is(err, ErrSetCompleted) {
		t.Errorf("SetWeight on completed set = %v, want ErrSetCompleted", err)
	}

	set := ctrl.Session().Exercises[0].Sets[0]
	if *set.Reps != 10 {
		t.Errorf("completed set reps changed to %d, want 10", *set.Reps)
	}
}

func TestIndexOutOfRange(t *testing.T) {
	ctrl, _ := activeController(t)
	reps := 10

	tests := []struct {
		name   string
		exIdx  int
		setIdx int
	}{
		{"negative exercise", -1, 0},
		{"exercise too high", 2, 0},
		{"negative set", 0, -1},
		{"set too high", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ctrl.SetReps(tt.exIdx, tt.setIdx, &reps); !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("SetReps(%d, %d) = %v, want ErrIndexOutOfRange", tt.exIdx, tt.setIdx, err)
			}
			if err := ctrl.LogSet(tt.exIdx, tt.setIdx); !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("LogSet(%d, %d) = %v, want ErrIndexOutOfRange", tt.exIdx, tt.setIdx, err)
			}
		})
	}
}

func TestSetOpsWhenIdle(t *testing.T) {
	ctrl := NewController(&fakeAppender{}, &fakeTimer{})
	reps := 10

	if err := ctrl.SetReps(0, 0, &reps); !errors.Is(err, ErrNoSession) {
		t.Errorf("SetReps when idle = %v, want ErrNoSession", err)
	}
	if err := ctrl.LogSet(0, 0); !errors.Is(err, ErrNoSession) {
		t.Errorf("LogSet when idle = %v, want ErrNoSession", err)
	}
	if _, err := ctrl.AddSet(0); !errors.Is(err, ErrNoSession) {
		t.Errorf("AddSet when idle = %v, want ErrNoSession", err)
	}
}

func TestNegativeValuesRejected(t *testing.T) {
	ctrl, _ := activeController(t)

	reps := -1
	if err := ctrl.SetReps(0, 0, &reps); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("negative reps = %v, want ErrInvalidValue", err)
	}
	weight := -20.0
	if err := ctrl.SetWeight(0, 0, &weight); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("negative weight = %v, want ErrInvalidValue", err)
	}
}

func TestLogSetCompletesAndStartsTimer(t *testing.T) {
	ctrl, timer := activeController(t)
	reps := 10
	if err := ctrl.SetReps(0, 0, &reps); err != nil {
		t.Fatalf("SetReps failed: %v", err)
	}

	if err := ctrl.LogSet(0, 0); err != nil {
		t.Fatalf("LogSet failed: %v", err)
	}

	if !ctrl.Session().Exercises[0].Sets[0].Completed {
		t.Error("expected set completed")
	}
	if len(timer.starts) != 1 {
		t.Fatalf("expected 1 timer start, got %d", len(timer.starts))
	}
}

func TestLogSetAlreadyCompletedIsNoOp(t *testing.T) {
	ctrl, timer := activeController(t)
	reps := 10
	if err := ctrl.SetReps(0, 0, &reps); err != nil {
		t.Fatalf("SetReps failed: %v", err)
	}
	if err := ctrl.LogSet(0, 0); err != nil {
		t.Fatalf("LogSet failed: %v", err)
	}

	if err := ctrl.LogSet(0, 0); err != nil {
		t.Errorf("repeated LogSet = %v, want nil no-op", err)
	}

	if len(timer.starts) != 1 {
		t.Errorf("repeated LogSet restarted the timer: %d starts, want 1", len(timer.starts))
	}
	set := ctrl.Session().Exercises[0].Sets[0]
	if !set.Completed || *set.Reps != 10 {
		t.Error("no-op LogSet changed the set")
	}
}

func TestLogSetEmptyRejected(t *testing.T) {
	ctrl, timer := activeController(t)

	err := ctrl.LogSet(0, 0)
	if !errors.Is(err, ErrEmptySet) {
		t.Errorf("LogSet on empty set = %v, want ErrEmptySet", err)
	}
	if len(timer.starts) != 0 {
		t.Error("rejected LogSet must not start the timer")
	}
}

func TestLogSetPermissiveAllowsOneField(t *testing.T) {
	ctrl, _ := activeController(t)

	weight := 60.0
	if err := ctrl.SetWeight(0, 0, &weight); err != nil {
		t.Fatalf("SetWeight failed: %v", err)
	}
	if err := ctrl.LogSet(0, 0); err != nil {
		t.Errorf("LogSet with only weight = %v, want nil in permissive mode", err)
	}
}

func TestLogSetStrictRequiresBoth(t *testing.T) {
	ctrl, _ := activeController(t, WithRequireRepsAndWeight(true))

	reps := 10
	if err := ctrl.SetReps(0, 0, &reps); err != nil {
		t.Fatalf("SetReps failed: %v", err)
	}

	if err := ctrl.LogSet(0, 0); !errors.Is(err, ErrIncompleteSet) {
		t.Errorf("strict LogSet with reps only = %v, want ErrIncompleteSet", err)
	}

	weight := 60.0
	if err := ctrl.SetWeight(0, 0, &weight); err != nil {
		t.Fatalf("SetWeight failed: %v", err)
	}
	if err := ctrl.LogSet(0, 0); err != nil {
		t.Errorf("strict LogSet with both fields = %v, want nil", err)
	}
}

func TestLogSetUsesConfiguredRestDuration(t *testing.T) {
	ctrl, timer := activeController(t, WithRestDuration(90*time.Second))
	reps := 10
	if err := ctrl.SetReps(0, 0, &reps); err != nil {
		t.Fatalf("SetReps failed: %v", err)
	}

	if err := ctrl.LogSet(0, 0); err != nil {
		t.Fatalf("LogSet failed: %v", err)
	}

	if len(timer.starts) != 1 || timer.starts[0] != 90*time.Second {
		t.Errorf("timer starts = %v, want [90s]", timer.starts)
	}
}

func TestAddSetGrowsExercise(t *testing.T) {
	ctrl, _ := activeController(t)

	idx, err := ctrl.AddSet(0)
	if err != nil {
		t.Fatalf("AddSet failed: %v", err)
	}
	if idx != 3 {
		t.Errorf("new set index = %d, want 3", idx)
	}

	sess := ctrl.Session()
	if len(sess.Exercises[0].Sets) != 4 {
		t.Fatalf("expected 4 sets, got %d", len(sess.Exercises[0].Sets))
	}
	added := sess.Exercises[0].Sets[3]
	if added.Completed || added.Reps != nil || added.Weight != nil {
		t.Error("added set should be empty and uncompleted")
	}

	// The extra set is fully usable.
	reps := 12
	if err := ctrl.SetReps(0, idx, &reps); err != nil {
		t.Fatalf("SetReps on added set failed: %v", err)
	}
	if err := ctrl.LogSet(0, idx); err != nil {
		t.Fatalf("LogSet on added set failed: %v", err)
	}
}

func TestAddSetOutOfRange(t *testing.T) {
	ctrl, _ := activeController(t)

	if _, err := ctrl.AddSet(5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("AddSet(5) = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := ctrl.AddSet(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("AddSet(-1) = %v, want ErrIndexOutOfRange", err)
	}
}

func TestCompletedNeverReverts(t *testing.T) {
	ctrl, _ := activeController(t)
	reps := 10
	if err := ctrl.SetReps(0, 0, &reps); err != nil {
		t.Fatalf("SetReps failed: %v", err)
	}
	if err := ctrl.LogSet(0, 0); err != nil {
		t.Fatalf("LogSet failed: %v", err)
	}

	// Neither edits nor repeated logging can flip Completed back.
	_ = ctrl.UpdateSetField(0, 0, FieldReps, "")
	_ = ctrl.LogSet(0, 0)

	set := ctrl.Session().Exercises[0].Sets[0]
	if !set.Completed {
		t.Error("completed set reverted to uncompleted")
	}
	if set.Reps == nil || *set.Reps != 10 {
		t.Error("completed set fields changed")
	}
}
